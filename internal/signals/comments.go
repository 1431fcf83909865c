package signals

import "fmt"

// Comment returns a one-line analyst remark for a signal, using the
// underlying metric values where available. Values are percentages except
// leverageDelta, which is in reporting currency units.
func Comment(sig Signal, growthPct, marginPct, roicPct, leverageDelta *float64) string {
	switch sig.Metric {
	case MetricRevenue:
		return generateRevenueComment(sig, growthPct)
	case MetricMargin:
		return generateMarginComment(sig, marginPct)
	case MetricEarnings:
		return generateEarningsComment(sig)
	case MetricLeverage:
		return generateLeverageComment(sig, leverageDelta)
	case MetricEfficiency:
		return generateEfficiencyComment(sig, roicPct)
	default:
		return ""
	}
}

func generateRevenueComment(sig Signal, growthPct *float64) string {
	switch sig.Label {
	case LabelStrongMomentum:
		return fmt.Sprintf("Revenue grew %.1f%% year over year, well above the 10%% momentum bar.", *growthPct)
	case LabelModeratingGrow:
		return fmt.Sprintf("Revenue grew %.1f%% year over year; growth is positive but no longer strong.", *growthPct)
	case LabelRevenueSlowdown:
		return fmt.Sprintf("Revenue changed %.1f%% year over year; the top line is stalling.", *growthPct)
	default:
		return "Revenue trend cannot be assessed without a prior year of data."
	}
}

func generateMarginComment(sig Signal, marginPct *float64) string {
	switch sig.Label {
	case LabelMarginExpanding:
		return fmt.Sprintf("Operating margin expanded to %.1f%%, a sign of improving unit economics.", *marginPct)
	case LabelMarginCompressing:
		if marginPct != nil {
			return fmt.Sprintf("Operating margin compressed to %.1f%%; cost pressure is outpacing pricing.", *marginPct)
		}
		return "Operating margin is compressing against the prior year."
	default:
		return "Margin direction cannot be assessed with the available data."
	}
}

func generateEarningsComment(sig Signal) string {
	switch sig.Label {
	case LabelEarningsDivergence:
		return "Reported profit rose while operating cash flow fell; earnings quality deserves scrutiny."
	case LabelEarningsSupported:
		return "Reported profit is backed by operating cash flow."
	default:
		return "Earnings quality cannot be assessed without cash flow data."
	}
}

func generateLeverageComment(sig Signal, leverageDelta *float64) string {
	switch sig.Label {
	case LabelLeverageRising:
		return fmt.Sprintf("Debt increased by %.0f over the year; the balance sheet is adding risk.", *leverageDelta)
	case LabelLeverageStable:
		return "Debt is flat or reducing; the balance sheet is not adding risk."
	default:
		return "Leverage cannot be assessed without debt data."
	}
}

func generateEfficiencyComment(sig Signal, roicPct *float64) string {
	switch sig.Label {
	case LabelROICExcellent:
		return fmt.Sprintf("ROIC of %.1f%% signals excellent capital allocation.", *roicPct)
	case LabelROICAcceptable:
		return fmt.Sprintf("ROIC of %.1f%% is acceptable but not a moat on its own.", *roicPct)
	case LabelROICWeak:
		return fmt.Sprintf("ROIC of %.1f%% is below the cost-of-capital comfort zone.", *roicPct)
	default:
		return "Capital efficiency cannot be assessed without a capital base."
	}
}
