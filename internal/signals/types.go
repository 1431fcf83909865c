// Package signals classifies derived metrics into qualitative labels.
// Classification is pure and total: every metric state, including an
// undefined one, maps to exactly one label. Undefined inputs produce an
// insufficient-data label, never a warning and never a healthy label.
package signals

// Metric identifies which fundamental dimension a signal describes.
type Metric string

const (
	MetricRevenue    Metric = "revenue_trend"
	MetricMargin     Metric = "margin_direction"
	MetricEarnings   Metric = "earnings_quality"
	MetricLeverage   Metric = "leverage"
	MetricEfficiency Metric = "capital_efficiency"
)

// Revenue trend labels. Growth above 10 percent is strong, positive but at
// or below 10 is moderating, zero or negative is a slowdown.
const (
	LabelStrongMomentum  = "Strong momentum"
	LabelModeratingGrow  = "Moderating growth"
	LabelRevenueSlowdown = "Revenue slowdown"
)

// Margin direction labels, latest year against the one before.
const (
	LabelMarginExpanding   = "Expanding"
	LabelMarginCompressing = "Compressing"
)

// Earnings quality labels. Profit rising while operating cash flow falls is
// the classic divergence warning.
const (
	LabelEarningsDivergence = "Profit rising, cash flow weakening"
	LabelEarningsSupported  = "Supported by cash flow"
)

// Leverage labels, based on year-over-year debt movement.
const (
	LabelLeverageRising = "Rising leverage"
	LabelLeverageStable = "Stable"
)

// Capital efficiency labels, based on return on invested capital.
const (
	LabelROICExcellent  = "Excellent"
	LabelROICAcceptable = "Acceptable"
	LabelROICWeak       = "Weak"
)

// Insufficient-data labels. These carry no warning weight.
const (
	LabelNoGrowthHistory  = "Insufficient history"
	LabelNoMarginData     = "Margin data unavailable"
	LabelNoCashFlowData   = "Cash flow data unavailable"
	LabelNoDebtData       = "Debt data unavailable"
	LabelNoEfficiencyData = "Capital base unavailable"
)

// Signal is one classified metric with its qualitative label.
type Signal struct {
	Metric Metric `json:"metric"`
	Label  string `json:"label"`
	// Warning marks the label as a red flag for the rating aggregator.
	Warning bool `json:"warning"`
	// Insufficient marks the label as a data gap rather than a verdict.
	// Warning and Insufficient are mutually exclusive.
	Insufficient bool `json:"insufficient"`
}

// SignalSet holds the full classification for one company's latest year.
type SignalSet struct {
	Revenue    Signal `json:"revenue"`
	Margin     Signal `json:"margin"`
	Earnings   Signal `json:"earnings"`
	Leverage   Signal `json:"leverage"`
	Efficiency Signal `json:"efficiency"`
}

// All returns the signals in fixed display order.
func (s SignalSet) All() []Signal {
	return []Signal{s.Revenue, s.Margin, s.Earnings, s.Leverage, s.Efficiency}
}

// ByMetric returns the signal for the given metric, false when unknown.
func (s SignalSet) ByMetric(m Metric) (Signal, bool) {
	for _, sig := range s.All() {
		if sig.Metric == m {
			return sig, true
		}
	}
	return Signal{}, false
}
