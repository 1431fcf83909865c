package fundstore

import (
	"context"
	"sync"

	"github.com/ternarybob/aestimo/internal/common"
	"github.com/ternarybob/aestimo/internal/eodhd"
	"github.com/ternarybob/aestimo/internal/models"
	"github.com/ternarybob/arbor"
)

// eodhdStore serves fundamentals from the EODHD API. Companies are
// addressed by exchange-qualified ticker; the listing is limited to
// companies already fetched because the API has no cheap enumeration.
type eodhdStore struct {
	client *eodhd.Client
	logger arbor.ILogger

	mu    sync.RWMutex
	known []models.CompanyInfo
}

// NewEODHDStore wraps an EODHD client as a fundamentals store.
func NewEODHDStore(client *eodhd.Client, logger arbor.ILogger) Store {
	return &eodhdStore{client: client, logger: logger}
}

func (s *eodhdStore) Companies(ctx context.Context) ([]models.CompanyInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.CompanyInfo, len(s.known))
	copy(out, s.known)
	return out, nil
}

func (s *eodhdStore) Rows(ctx context.Context, company string) ([]models.FundamentalRow, error) {
	ticker := common.ParseTicker(company)
	if ticker.Code == "" {
		return nil, &DataUnavailableError{Company: company, Source: "eodhd"}
	}

	resp, err := s.client.GetFundamentals(ctx, ticker.EODHDSymbol())
	if err != nil {
		if s.logger != nil {
			s.logger.Warn().Err(err).Str("ticker", ticker.String()).Msg("Fundamentals fetch failed")
		}
		return nil, &DataUnavailableError{Company: company, Source: "eodhd", Err: err}
	}

	rows := mapFundamentals(ticker.Code, resp)
	if len(rows) == 0 {
		return nil, &DataUnavailableError{Company: company, Source: "eodhd"}
	}
	if err := models.SortRowsByYear(rows); err != nil {
		return nil, &DataUnavailableError{Company: company, Source: "eodhd", Err: err}
	}

	s.remember(ticker.Code, resp, len(rows))
	return rows, nil
}

func (s *eodhdStore) remember(code string, resp *eodhd.FundamentalsResponse, years int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, info := range s.known {
		if info.Company == code {
			return
		}
	}
	s.known = append(s.known, models.CompanyInfo{
		Company: code,
		Sector:  models.NormalizeSector(resp.General.Sector),
		Years:   years,
	})
}

// mapFundamentals joins the three yearly statements on fiscal year. A year
// present in any statement produces a row; line items absent from the
// payload stay nil.
func mapFundamentals(code string, resp *eodhd.FundamentalsResponse) []models.FundamentalRow {
	sector := models.NormalizeSector(resp.General.Sector)

	byYear := make(map[int]*models.FundamentalRow)
	rowFor := func(year int) *models.FundamentalRow {
		if year == 0 {
			return nil
		}
		if row, ok := byYear[year]; ok {
			return row
		}
		row := &models.FundamentalRow{Company: code, Sector: sector, Year: year}
		byYear[year] = row
		return row
	}

	for _, entry := range resp.Financials.IncomeStatement.Yearly {
		if row := rowFor(entry.FiscalYear()); row != nil {
			row.Revenue = entry.TotalRevenue.Float()
			row.EBIT = entry.OperatingProfit()
			row.PAT = entry.NetIncome.Float()
		}
	}
	for _, entry := range resp.Financials.CashFlow.Yearly {
		if row := rowFor(entry.FiscalYear()); row != nil {
			row.OCF = entry.TotalCashFromOperatingActivities.Float()
		}
	}
	for _, entry := range resp.Financials.BalanceSheet.Yearly {
		if row := rowFor(entry.FiscalYear()); row != nil {
			row.Debt = entry.TotalDebt()
		}
	}

	rows := make([]models.FundamentalRow, 0, len(byYear))
	for _, row := range byYear {
		rows = append(rows, *row)
	}
	return rows
}
