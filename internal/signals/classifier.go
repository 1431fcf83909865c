package signals

import (
	"github.com/ternarybob/aestimo/internal/metrics"
)

// Thresholds in percent. Strong growth requires strictly more than 10,
// so a reading of exactly 10.0 classifies as moderating.
const (
	strongGrowthPct     = 10.0
	roicExcellentPct    = 20.0
	roicAcceptableFloor = 12.0
)

// Classify maps the latest year's derived metrics onto a SignalSet.
// previous supplies the prior year's margin for the direction comparison
// and may be nil for single-year series.
func Classify(latest metrics.DerivedMetrics, previous *metrics.DerivedMetrics) SignalSet {
	return SignalSet{
		Revenue:    classifyRevenue(latest.RevenueGrowthPct),
		Margin:     classifyMargin(latest.EBITMarginPct, previousMargin(previous)),
		Earnings:   classifyEarnings(latest.EarningsCashDivergence),
		Leverage:   classifyLeverage(latest.LeverageDelta),
		Efficiency: classifyEfficiency(latest.ROICPct),
	}
}

func previousMargin(previous *metrics.DerivedMetrics) *float64 {
	if previous == nil {
		return nil
	}
	return previous.EBITMarginPct
}

func classifyRevenue(growthPct *float64) Signal {
	if growthPct == nil {
		return Signal{Metric: MetricRevenue, Label: LabelNoGrowthHistory, Insufficient: true}
	}
	switch {
	case *growthPct > strongGrowthPct:
		return Signal{Metric: MetricRevenue, Label: LabelStrongMomentum}
	case *growthPct > 0:
		return Signal{Metric: MetricRevenue, Label: LabelModeratingGrow}
	default:
		return Signal{Metric: MetricRevenue, Label: LabelRevenueSlowdown, Warning: true}
	}
}

func classifyMargin(latest, previous *float64) Signal {
	if latest == nil || previous == nil {
		return Signal{Metric: MetricMargin, Label: LabelNoMarginData, Insufficient: true}
	}
	if *latest > *previous {
		return Signal{Metric: MetricMargin, Label: LabelMarginExpanding}
	}
	// Flat margins classify as compressing. Direction is informational for
	// the rating gate, not a counted warning.
	return Signal{Metric: MetricMargin, Label: LabelMarginCompressing}
}

func classifyEarnings(divergence *bool) Signal {
	if divergence == nil {
		return Signal{Metric: MetricEarnings, Label: LabelNoCashFlowData, Insufficient: true}
	}
	if *divergence {
		return Signal{Metric: MetricEarnings, Label: LabelEarningsDivergence, Warning: true}
	}
	return Signal{Metric: MetricEarnings, Label: LabelEarningsSupported}
}

func classifyLeverage(delta *float64) Signal {
	if delta == nil {
		return Signal{Metric: MetricLeverage, Label: LabelNoDebtData, Insufficient: true}
	}
	if *delta > 0 {
		return Signal{Metric: MetricLeverage, Label: LabelLeverageRising, Warning: true}
	}
	return Signal{Metric: MetricLeverage, Label: LabelLeverageStable}
}

func classifyEfficiency(roicPct *float64) Signal {
	if roicPct == nil {
		return Signal{Metric: MetricEfficiency, Label: LabelNoEfficiencyData, Insufficient: true}
	}
	switch {
	case *roicPct > roicExcellentPct:
		return Signal{Metric: MetricEfficiency, Label: LabelROICExcellent}
	case *roicPct >= roicAcceptableFloor:
		return Signal{Metric: MetricEfficiency, Label: LabelROICAcceptable}
	default:
		return Signal{Metric: MetricEfficiency, Label: LabelROICWeak, Warning: true}
	}
}
