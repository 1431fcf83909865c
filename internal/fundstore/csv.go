package fundstore

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ternarybob/aestimo/internal/models"
)

// columnAliases maps canonical field names to the header spellings seen in
// exported fundamentals sheets. Headers are normalized (lowercased, spaces
// and punctuation collapsed to underscores) before lookup.
var columnAliases = map[string][]string{
	"company": {"company", "name", "company_name", "ticker", "symbol"},
	"sector":  {"sector", "industry", "segment"},
	"year":    {"year", "fiscal_year", "fy", "period"},
	"revenue": {"revenue", "sales", "total_revenue", "net_sales", "total_income"},
	"ebit":    {"ebit", "operating_profit", "operating_income", "op_profit"},
	"pat":     {"pat", "net_profit", "net_income", "profit_after_tax"},
	"ocf":     {"ocf", "operating_cash_flow", "cash_from_operations", "cfo"},
	"debt":    {"debt", "total_debt", "borrowings", "total_borrowings"},
}

// requiredColumns must resolve for a file to be usable. The metric columns
// are optional; missing ones leave the field nil on every row.
var requiredColumns = []string{"company", "year"}

// NewCSVStore loads fundamentals from a CSV file at path.
func NewCSVStore(path string) (Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fundamentals file: %w", err)
	}
	defer f.Close()

	rows, err := parseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return newMemoryStore("csv:"+path, rows)
}

// parseCSV reads fundamentals rows from r, resolving columns by alias so
// files from different exports load without manual renaming.
func parseCSV(r io.Reader) ([]models.FundamentalRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var rows []models.FundamentalRow
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record at line %d: %w", line+1, err)
		}
		line++

		row, err := recordToRow(record, columns)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no data rows found")
	}
	return rows, nil
}

// resolveColumns maps canonical field names to header indexes via the alias
// table. Unresolvable optional columns are simply absent from the map.
func resolveColumns(header []string) (map[string]int, error) {
	normalized := make(map[string]int, len(header))
	for i, h := range header {
		normalized[normalizeHeader(h)] = i
	}

	columns := make(map[string]int)
	for field, aliases := range columnAliases {
		for _, alias := range aliases {
			if idx, ok := normalized[alias]; ok {
				columns[field] = idx
				break
			}
		}
	}

	for _, field := range requiredColumns {
		if _, ok := columns[field]; !ok {
			return nil, fmt.Errorf("no column found for %q (header: %s)", field, strings.Join(header, ", "))
		}
	}
	return columns, nil
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	replacer := strings.NewReplacer(" ", "_", "-", "_", "(", "", ")", "", ".", "", "/", "_")
	return replacer.Replace(h)
}

func recordToRow(record []string, columns map[string]int) (models.FundamentalRow, error) {
	cell := func(field string) string {
		idx, ok := columns[field]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	company := cell("company")
	if company == "" {
		return models.FundamentalRow{}, fmt.Errorf("empty company name")
	}

	year, err := strconv.Atoi(strings.TrimPrefix(cell("year"), "FY"))
	if err != nil {
		return models.FundamentalRow{}, fmt.Errorf("invalid year %q", cell("year"))
	}

	row := models.FundamentalRow{
		Company: company,
		Sector:  models.NormalizeSector(cell("sector")),
		Year:    year,
	}

	numeric := []struct {
		field string
		dst   **float64
	}{
		{"revenue", &row.Revenue},
		{"ebit", &row.EBIT},
		{"pat", &row.PAT},
		{"ocf", &row.OCF},
		{"debt", &row.Debt},
	}
	for _, n := range numeric {
		v, err := parseAmount(cell(n.field))
		if err != nil {
			return models.FundamentalRow{}, fmt.Errorf("invalid %s value %q", n.field, cell(n.field))
		}
		*n.dst = v
	}

	return row, nil
}

// parseAmount parses a numeric cell, tolerating thousands separators.
// Empty cells are missing data, not zero.
func parseAmount(s string) (*float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" || strings.EqualFold(s, "na") || strings.EqualFold(s, "n/a") {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
