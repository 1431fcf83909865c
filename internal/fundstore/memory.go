package fundstore

import (
	"context"
	"strings"

	"github.com/ternarybob/aestimo/internal/models"
)

// memoryStore serves a fixed set of fundamentals loaded at construction.
// Both the embedded dataset and CSV files resolve to this type.
type memoryStore struct {
	source string
	order  []string
	rows   map[string][]models.FundamentalRow
}

func newMemoryStore(source string, rows []models.FundamentalRow) (*memoryStore, error) {
	s := &memoryStore{
		source: source,
		rows:   make(map[string][]models.FundamentalRow),
	}

	for _, row := range rows {
		key := companyKey(row.Company)
		if _, seen := s.rows[key]; !seen {
			s.order = append(s.order, row.Company)
		}
		s.rows[key] = append(s.rows[key], row)
	}

	for _, series := range s.rows {
		if err := models.SortRowsByYear(series); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func companyKey(company string) string {
	return strings.ToUpper(strings.TrimSpace(company))
}

func (s *memoryStore) Companies(ctx context.Context) ([]models.CompanyInfo, error) {
	infos := make([]models.CompanyInfo, 0, len(s.order))
	for _, name := range s.order {
		series := s.rows[companyKey(name)]
		info := models.CompanyInfo{Company: name, Years: len(series)}
		if len(series) > 0 {
			info.Sector = series[0].Sector
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func (s *memoryStore) Rows(ctx context.Context, company string) ([]models.FundamentalRow, error) {
	series, ok := s.rows[companyKey(company)]
	if !ok {
		return nil, &DataUnavailableError{Company: company, Source: s.source}
	}
	out := make([]models.FundamentalRow, len(series))
	copy(out, series)
	return out, nil
}
