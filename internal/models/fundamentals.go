// Package models defines the core data types shared across the application.
package models

import "fmt"

// Sector categorizes companies for sector-specific report templates.
type Sector string

const (
	SectorBanking      Sector = "Banking"
	SectorITServices   Sector = "IT Services"
	SectorFMCG         Sector = "FMCG"
	SectorConglomerate Sector = "Conglomerate"
	SectorGeneral      Sector = "General"
)

// NormalizeSector maps a free-form sector string onto a known Sector.
// Unknown values fall back to SectorGeneral so report composition never fails.
func NormalizeSector(s string) Sector {
	switch Sector(s) {
	case SectorBanking, SectorITServices, SectorFMCG, SectorConglomerate:
		return Sector(s)
	default:
		return SectorGeneral
	}
}

// FundamentalRow is one company's reported line items for one fiscal year.
// Magnitudes are in the company's reporting currency units. Missing fields
// are nil, never zero - downstream consumers must treat nil as unavailable.
type FundamentalRow struct {
	Company string   `json:"company"`
	Sector  Sector   `json:"sector"`
	Year    int      `json:"year"`
	Revenue *float64 `json:"revenue,omitempty"`
	EBIT    *float64 `json:"ebit,omitempty"`
	PAT     *float64 `json:"pat,omitempty"`
	OCF     *float64 `json:"ocf,omitempty"`
	Debt    *float64 `json:"debt,omitempty"`
}

// CompanyInfo summarizes one company available from a fundamentals store.
type CompanyInfo struct {
	Company string `json:"company"`
	Sector  Sector `json:"sector"`
	Years   int    `json:"years"`
}

// Float returns a pointer to v. Convenience for literal row construction.
func Float(v float64) *float64 {
	return &v
}

// SortRowsByYear sorts rows ascending by year in place and returns an error
// when two rows share a year, which would corrupt delta-based metrics.
func SortRowsByYear(rows []FundamentalRow) error {
	for i := 1; i < len(rows); i++ {
		for j := i; j > 0 && rows[j-1].Year > rows[j].Year; j-- {
			rows[j-1], rows[j] = rows[j], rows[j-1]
		}
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].Year == rows[i-1].Year {
			return fmt.Errorf("duplicate fiscal year %d for company %s", rows[i].Year, rows[i].Company)
		}
	}
	return nil
}
