// Package report composes analyst-style research reports from derived
// metrics, classified signals, and the aggregated rating. Composition is
// deterministic: identical inputs produce byte-identical output.
package report

import (
	"time"

	"github.com/ternarybob/aestimo/internal/metrics"
	"github.com/ternarybob/aestimo/internal/models"
	"github.com/ternarybob/aestimo/internal/services/macro"
	"github.com/ternarybob/aestimo/internal/services/rating"
	"github.com/ternarybob/aestimo/internal/signals"
)

// Input carries everything a report needs. Macro is optional; when nil the
// macro overlay section is omitted.
type Input struct {
	Company string
	Sector  models.Sector
	Series  metrics.Series
	Signals signals.SignalSet
	Rating  rating.Result
	Macro   *macro.Assessment
	AsOf    time.Time
}

// Compose builds the full report for one company.
func Compose(in Input) models.Report {
	latest, _ := in.Series.Latest()

	r := models.Report{
		Company:  in.Company,
		Sector:   in.Sector,
		AsOf:     in.AsOf,
		Snapshot: buildSnapshot(in.Series),
		Badges:   buildBadges(in.Signals, latest),
		Rating: models.RatingSummary{
			Rating:       string(in.Rating.Rating),
			WarningCount: in.Rating.WarningCount,
			ChecksRun:    in.Rating.ChecksRun,
			Warnings:     in.Rating.Warnings,
			Reasoning:    in.Rating.Reasoning,
		},
		Sections: buildSections(in, latest),
	}

	return r
}

func buildSnapshot(series metrics.Series) []models.SnapshotRow {
	rows := make([]models.SnapshotRow, len(series.Rows))
	for i, raw := range series.Rows {
		m := series.Metrics[i]
		rows[i] = models.SnapshotRow{
			Year:             raw.Year,
			Revenue:          fmtAmount(raw.Revenue),
			EBIT:             fmtAmount(raw.EBIT),
			PAT:              fmtAmount(raw.PAT),
			OCF:              fmtAmount(raw.OCF),
			Debt:             fmtAmount(raw.Debt),
			RevenueGrowthPct: fmtPct(m.RevenueGrowthPct),
			EBITMarginPct:    fmtPct(m.EBITMarginPct),
			ROICPct:          fmtPct(m.ROICPct),
		}
	}
	return rows
}

func buildBadges(set signals.SignalSet, latest metrics.DerivedMetrics) []models.Badge {
	badges := make([]models.Badge, 0, 5)
	for _, sig := range set.All() {
		badges = append(badges, models.Badge{
			Metric:       string(sig.Metric),
			Label:        sig.Label,
			Warning:      sig.Warning,
			Insufficient: sig.Insufficient,
			Comment: signals.Comment(sig,
				latest.RevenueGrowthPct, latest.EBITMarginPct,
				latest.ROICPct, latest.LeverageDelta),
		})
	}
	return badges
}
