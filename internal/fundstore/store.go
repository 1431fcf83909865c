// Package fundstore provides access to company fundamentals from multiple
// backends: an embedded dataset, external CSV files, and the EODHD API.
// Stores return rows sorted ascending by fiscal year with missing line
// items left nil.
package fundstore

import (
	"context"
	"fmt"

	"github.com/ternarybob/aestimo/internal/models"
)

// Store serves per-company fundamentals series.
type Store interface {
	// Companies lists the companies this store can serve, in stable order.
	Companies(ctx context.Context) ([]models.CompanyInfo, error)

	// Rows returns the company's fundamentals sorted ascending by year.
	// An unknown company is a DataUnavailableError.
	Rows(ctx context.Context, company string) ([]models.FundamentalRow, error)
}

// DataUnavailableError reports that a company's fundamentals could not be
// retrieved from a backend. It is a per-company condition; callers report
// it inline and continue with other companies.
type DataUnavailableError struct {
	Company string
	Source  string
	Err     error
}

func (e *DataUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fundamentals unavailable for %s from %s: %v", e.Company, e.Source, e.Err)
	}
	return fmt.Sprintf("fundamentals unavailable for %s from %s", e.Company, e.Source)
}

func (e *DataUnavailableError) Unwrap() error {
	return e.Err
}
