package pdf

import (
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

// markdownWalker translates a goldmark AST into fpdf drawing calls. Reports
// only use headings, paragraphs, emphasis, lists, and tables, so the walker
// covers exactly that surface.
type markdownWalker struct {
	doc      *fpdf.Fpdf
	source   []byte
	baseSize float64

	bold      bool
	italic    bool
	listDepth int
}

func (w *markdownWalker) resetFont() {
	style := ""
	if w.bold {
		style += "B"
	}
	if w.italic {
		style += "I"
	}
	w.doc.SetFont("Arial", style, w.baseSize)
}

func (w *markdownWalker) walk(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node := n.(type) {
	case *ast.Heading:
		w.heading(node, entering)
	case *ast.Paragraph:
		if !entering {
			w.doc.Ln(7)
		}
	case *ast.Text:
		if entering {
			w.doc.Write(5, string(node.Text(w.source)))
		}
	case *ast.Emphasis:
		if node.Level == 2 {
			w.bold = entering
		} else {
			w.italic = entering
		}
		w.resetFont()
	case *ast.List:
		if entering {
			w.listDepth++
		} else {
			w.listDepth--
			if w.listDepth == 0 {
				w.doc.Ln(2)
			}
		}
	case *ast.ListItem:
		if entering {
			w.doc.Ln(5)
			w.doc.SetX(14 + float64(w.listDepth)*4)
			w.doc.Write(5, "- ")
		}
	case *ast.ThematicBreak:
		if entering {
			w.doc.Ln(3)
			left, _, right, _ := w.doc.GetMargins()
			pageWidth, _ := w.doc.GetPageSize()
			w.doc.Line(left, w.doc.GetY(), pageWidth-right, w.doc.GetY())
			w.doc.Ln(3)
		}
	case *extast.Table:
		if entering {
			w.table(node)
			return ast.WalkSkipChildren, nil
		}
	}
	return ast.WalkContinue, nil
}

func (w *markdownWalker) heading(n *ast.Heading, entering bool) {
	if entering {
		w.doc.Ln(5)
		size := w.baseSize + 2
		switch n.Level {
		case 1:
			size = w.baseSize + 6
		case 2:
			size = w.baseSize + 3
		}
		w.doc.SetFont("Arial", "B", size)
		return
	}
	w.doc.Ln(6)
	w.resetFont()
}

// table draws a bordered grid with a shaded header row. Column widths come
// from measured cell widths, scaled to fit the printable width.
func (w *markdownWalker) table(n *extast.Table) {
	rows := w.collectRows(n)
	if len(rows) == 0 || len(rows[0]) == 0 {
		return
	}

	const (
		fontSize   = 8.0
		lineHeight = 5.0
		padding    = 2.0
	)

	left, _, right, _ := w.doc.GetMargins()
	pageWidth, _ := w.doc.GetPageSize()
	printable := pageWidth - left - right

	widths := w.columnWidths(rows, printable, fontSize, padding)

	w.doc.Ln(2)
	for i, row := range rows {
		header := i == 0
		if header {
			w.doc.SetFont("Arial", "B", fontSize)
			w.doc.SetFillColor(232, 232, 232)
		} else {
			w.doc.SetFont("Arial", "", fontSize)
		}

		w.doc.SetX(left)
		for j, cell := range row {
			if j >= len(widths) {
				break
			}
			w.doc.CellFormat(widths[j], lineHeight+1, cell, "1", 0, "L", header, 0, "")
		}
		w.doc.Ln(lineHeight + 1)
	}
	w.doc.Ln(3)
	w.resetFont()
}

func (w *markdownWalker) collectRows(n *extast.Table) [][]string {
	var rows [][]string
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch child.(type) {
		case *extast.TableHeader, *extast.TableRow:
			if cells := w.cellTexts(child); len(cells) > 0 {
				rows = append(rows, cells)
			}
		}
	}
	return rows
}

// cellTexts gathers the cell strings of a header or body row. A header may
// wrap its cells in a nested row node, so one level of nesting is followed.
func (w *markdownWalker) cellTexts(row ast.Node) []string {
	var cells []string
	for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
		switch cell.(type) {
		case *extast.TableCell:
			cells = append(cells, strings.TrimSpace(string(cell.Text(w.source))))
		case *extast.TableRow:
			cells = append(cells, w.cellTexts(cell)...)
		}
	}
	return cells
}

// columnWidths measures the widest cell per column and scales the result so
// the table always fits the printable width.
func (w *markdownWalker) columnWidths(rows [][]string, printable, fontSize, padding float64) []float64 {
	numCols := len(rows[0])
	widths := make([]float64, numCols)

	w.doc.SetFont("Arial", "B", fontSize)
	for i, row := range rows {
		if i == 1 {
			w.doc.SetFont("Arial", "", fontSize)
		}
		for j, cell := range row {
			if j >= numCols {
				break
			}
			if width := w.doc.GetStringWidth(cell) + 2*padding; width > widths[j] {
				widths[j] = width
			}
		}
	}

	total := 0.0
	for _, width := range widths {
		total += width
	}
	if total == 0 {
		return widths
	}

	scale := printable / total
	for j := range widths {
		widths[j] *= scale
	}
	return widths
}
