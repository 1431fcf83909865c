package rating

import (
	"fmt"
	"strings"

	"github.com/ternarybob/aestimo/internal/metrics"
	"github.com/ternarybob/aestimo/internal/signals"
)

// Rating gate thresholds, in percent of full-period revenue growth.
const (
	positiveGrowthPct = 40.0
	neutralGrowthPct  = 20.0
)

// Conviction degrades at the first warning and again at the second.
const weakeningWarningCount = 2

// Aggregate combines the series summary, the latest year's metrics, and the
// classified signals into a Result. An undefined input always fails the gate
// it feeds; it is never treated as zero.
func Aggregate(summary metrics.Summary, latest metrics.DerivedMetrics, set signals.SignalSet, cfg Config) Result {
	checks := cfg.Checks
	if len(checks) == 0 {
		checks = DefaultChecks
	}

	var warnings []string
	checksRun := 0
	for _, metric := range checks {
		sig, ok := set.ByMetric(metric)
		if !ok || sig.Insufficient {
			continue
		}
		checksRun++
		if sig.Warning {
			warnings = append(warnings, sig.Label)
		}
	}

	rating, reasoning := applyGates(summary.FullPeriodRevenueGrowthPct, latest.LeverageDelta, set.Margin)

	return Result{
		Rating:       rating,
		Conviction:   convictionFor(len(warnings)),
		WarningCount: len(warnings),
		ChecksRun:    checksRun,
		Warnings:     warnings,
		Reasoning:    reasoning,
	}
}

func applyGates(fullPeriodGrowthPct, leverageDelta *float64, margin signals.Signal) (Rating, string) {
	if fullPeriodGrowthPct == nil {
		return RatingCautious, "Cautious: full-period revenue growth is unavailable, so the growth gates cannot pass."
	}

	growth := *fullPeriodGrowthPct
	marginExpanding := margin.Label == signals.LabelMarginExpanding
	leverageContained := leverageDelta != nil && *leverageDelta <= 0

	if growth > positiveGrowthPct && marginExpanding && leverageContained {
		return RatingPositive, fmt.Sprintf(
			"Positive: %.1f%% full-period revenue growth with expanding margins and contained leverage.", growth)
	}

	if growth > neutralGrowthPct {
		return RatingNeutral, fmt.Sprintf(
			"Neutral: %.1f%% full-period revenue growth, but %s.", growth,
			blockedGateReason(growth, marginExpanding, leverageContained, leverageDelta, margin))
	}

	return RatingCautious, fmt.Sprintf(
		"Cautious: %.1f%% full-period revenue growth is below the %.0f%% bar.", growth, neutralGrowthPct)
}

func blockedGateReason(growth float64, marginExpanding, leverageContained bool, leverageDelta *float64, margin signals.Signal) string {
	var reasons []string
	if growth <= positiveGrowthPct {
		reasons = append(reasons, fmt.Sprintf("growth does not clear the %.0f%% positive bar", positiveGrowthPct))
	}
	if !marginExpanding {
		if margin.Insufficient {
			reasons = append(reasons, "margin direction is unavailable")
		} else {
			reasons = append(reasons, "margins are not expanding")
		}
	}
	if !leverageContained {
		if leverageDelta == nil {
			reasons = append(reasons, "leverage movement is unavailable")
		} else {
			reasons = append(reasons, "leverage is rising")
		}
	}
	return strings.Join(reasons, " and ")
}

func convictionFor(warningCount int) Conviction {
	switch {
	case warningCount >= weakeningWarningCount:
		return ConvictionWeakening
	case warningCount == 1:
		return ConvictionNeutral
	default:
		return ConvictionStrong
	}
}
