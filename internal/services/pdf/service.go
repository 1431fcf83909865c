// Package pdf renders composed reports as PDF documents. The report's
// Markdown rendering is parsed with goldmark and walked into fpdf drawing
// calls, so the PDF and the on-screen report always agree.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/ternarybob/aestimo/internal/models"
	"github.com/ternarybob/aestimo/internal/services/report"
	"github.com/ternarybob/arbor"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Service renders reports to PDF.
type Service struct {
	logger arbor.ILogger
}

// NewService creates a PDF rendering service.
func NewService(logger arbor.ILogger) *Service {
	return &Service{logger: logger}
}

// RenderReport renders one composed report as a single PDF document.
func (s *Service) RenderReport(r models.Report) ([]byte, error) {
	return s.RenderReports([]models.Report{r})
}

// RenderReports renders multiple reports into one document, each starting
// on a fresh page.
func (s *Service) RenderReports(reports []models.Report) ([]byte, error) {
	if len(reports) == 0 {
		return nil, fmt.Errorf("no reports to render")
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(12, 12, 12)
	doc.SetAutoPageBreak(true, 12)
	doc.SetTitle("Fundamentals Research", false)

	md := goldmark.New(goldmark.WithExtensions(extension.Table))

	s.renderCover(doc, reports)

	for _, r := range reports {
		doc.AddPage()

		source := []byte(report.Markdown(r))
		root := md.Parser().Parse(text.NewReader(source))

		walker := &markdownWalker{doc: doc, source: source, baseSize: 9}
		walker.resetFont()
		if err := ast.Walk(root, walker.walk); err != nil {
			if s.logger != nil {
				s.logger.Error().Err(err).Str("company", r.Company).Msg("PDF render failed")
			}
			return nil, fmt.Errorf("failed to render report for %s: %w", r.Company, err)
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF output: %w", err)
	}

	if s.logger != nil {
		s.logger.Debug().Int("reports", len(reports)).Int("bytes", buf.Len()).Msg("PDF generated")
	}
	return buf.Bytes(), nil
}

// renderCover draws a cover page listing every company in the pack with
// its headline rating. Each report's own title comes from its markdown H1.
func (s *Service) renderCover(doc *fpdf.Fpdf, reports []models.Report) {
	doc.AddPage()

	doc.SetFont("Arial", "B", 20)
	doc.Ln(30)
	doc.CellFormat(0, 12, "Fundamentals Research", "", 1, "C", false, 0, "")

	doc.SetFont("Arial", "", 10)
	doc.SetTextColor(90, 90, 90)
	doc.CellFormat(0, 6, reports[0].AsOf.Format("2 January 2006"), "", 1, "C", false, 0, "")
	doc.SetTextColor(0, 0, 0)
	doc.Ln(14)

	doc.SetFont("Arial", "", 11)
	for _, r := range reports {
		line := fmt.Sprintf("%s (%s)  -  %s, %d warning(s)",
			r.Company, r.Sector, r.Rating.Rating, r.Rating.WarningCount)
		doc.CellFormat(0, 7, line, "", 1, "C", false, 0, "")
	}
}
