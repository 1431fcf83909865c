// Package metrics derives per-year financial ratios from raw fundamentals.
// All functions are pure and perform no I/O. Metrics that cannot be computed
// (no prior year, zero divisor, missing input) are nil, never zero - callers
// must render nil as "n/a" and must not feed it to threshold comparisons.
package metrics

import (
	"fmt"

	"github.com/ternarybob/aestimo/internal/models"
)

// capitalEmployedRevenueWeight is the fixed heuristic weight applied to
// revenue when approximating capital employed: debt + 0.3 * revenue.
const capitalEmployedRevenueWeight = 0.30

// DerivedMetrics holds the computed ratios for one fiscal year.
type DerivedMetrics struct {
	Year int `json:"year"`

	// Delta metrics; nil on the first row of a series.
	RevenueGrowthPct *float64 `json:"revenue_growth_pct,omitempty"`
	LeverageDelta    *float64 `json:"leverage_delta,omitempty"`
	// EarningsCashDivergence is true when PAT rose year-over-year while
	// OCF fell. Nil when either series is missing a value.
	EarningsCashDivergence *bool `json:"earnings_cash_divergence,omitempty"`

	// Point-in-time metrics; nil when an input is missing or a divisor is zero.
	EBITMarginPct   *float64 `json:"ebit_margin_pct,omitempty"`
	CapitalEmployed *float64 `json:"capital_employed,omitempty"`
	ROICPct         *float64 `json:"roic_pct,omitempty"`
}

// Summary holds series-level aggregates used by the rating policy.
type Summary struct {
	Years      int `json:"years"`
	FirstYear  int `json:"first_year"`
	LatestYear int `json:"latest_year"`

	// FullPeriodRevenueGrowthPct is the growth from the first to the last
	// reported revenue, nil when either endpoint is missing or zero.
	FullPeriodRevenueGrowthPct *float64 `json:"full_period_revenue_growth_pct,omitempty"`
}

// Series pairs the input rows with their derived metrics, aligned 1:1.
type Series struct {
	Rows    []models.FundamentalRow `json:"rows"`
	Metrics []DerivedMetrics        `json:"metrics"`
	Summary Summary                 `json:"summary"`
}

// Latest returns the most recent year's metrics and the one before it.
// previous is nil when the series has a single row.
func (s Series) Latest() (latest DerivedMetrics, previous *DerivedMetrics) {
	n := len(s.Metrics)
	latest = s.Metrics[n-1]
	if n >= 2 {
		previous = &s.Metrics[n-2]
	}
	return latest, previous
}

// InsufficientHistoryError reports that a company has too little history for
// the requested computation. It degrades specific metrics, not whole reports.
type InsufficientHistoryError struct {
	Company string
	Years   int
}

func (e *InsufficientHistoryError) Error() string {
	return fmt.Sprintf("insufficient history for %s: %d year(s) of data", e.Company, e.Years)
}

// Derive computes DerivedMetrics for each row. Rows must be sorted ascending
// by year (stores guarantee this). A single-row series succeeds with all
// delta metrics nil; an empty series is an InsufficientHistoryError.
func Derive(rows []models.FundamentalRow) (Series, error) {
	if len(rows) == 0 {
		return Series{}, &InsufficientHistoryError{Years: 0}
	}

	derived := make([]DerivedMetrics, len(rows))
	for i, row := range rows {
		m := DerivedMetrics{Year: row.Year}

		m.EBITMarginPct = ratioPct(row.EBIT, row.Revenue)
		m.CapitalEmployed = capitalEmployed(row.Debt, row.Revenue)
		m.ROICPct = ratioPct(row.EBIT, m.CapitalEmployed)

		if i > 0 {
			prev := rows[i-1]
			m.RevenueGrowthPct = growthPct(prev.Revenue, row.Revenue)
			m.LeverageDelta = delta(prev.Debt, row.Debt)
			m.EarningsCashDivergence = divergence(prev.PAT, row.PAT, prev.OCF, row.OCF)
		}

		derived[i] = m
	}

	first, last := rows[0], rows[len(rows)-1]
	summary := Summary{
		Years:      len(rows),
		FirstYear:  first.Year,
		LatestYear: last.Year,
	}
	// Full-period growth needs a real span; a single year has no period.
	if len(rows) >= 2 {
		summary.FullPeriodRevenueGrowthPct = growthPct(first.Revenue, last.Revenue)
	}

	return Series{Rows: rows, Metrics: derived, Summary: summary}, nil
}

// growthPct computes (new/old - 1) * 100, nil when old is missing or zero.
func growthPct(old, current *float64) *float64 {
	if old == nil || current == nil || *old == 0 {
		return nil
	}
	v := (*current / *old - 1) * 100
	return &v
}

// ratioPct computes numerator/denominator * 100, nil on missing or zero divisor.
func ratioPct(numerator, denominator *float64) *float64 {
	if numerator == nil || denominator == nil || *denominator == 0 {
		return nil
	}
	v := *numerator / *denominator * 100
	return &v
}

func capitalEmployed(debt, revenue *float64) *float64 {
	if debt == nil || revenue == nil {
		return nil
	}
	v := *debt + capitalEmployedRevenueWeight**revenue
	return &v
}

func delta(old, current *float64) *float64 {
	if old == nil || current == nil {
		return nil
	}
	v := *current - *old
	return &v
}

func divergence(prevPAT, pat, prevOCF, ocf *float64) *bool {
	if prevPAT == nil || pat == nil || prevOCF == nil || ocf == nil {
		return nil
	}
	v := *pat > *prevPAT && *ocf < *prevOCF
	return &v
}
