package rating

import (
	"reflect"
	"testing"

	"github.com/ternarybob/aestimo/internal/metrics"
	"github.com/ternarybob/aestimo/internal/models"
	"github.com/ternarybob/aestimo/internal/signals"
)

func cleanSignals() signals.SignalSet {
	return signals.SignalSet{
		Revenue:    signals.Signal{Metric: signals.MetricRevenue, Label: signals.LabelStrongMomentum},
		Margin:     signals.Signal{Metric: signals.MetricMargin, Label: signals.LabelMarginExpanding},
		Earnings:   signals.Signal{Metric: signals.MetricEarnings, Label: signals.LabelEarningsSupported},
		Leverage:   signals.Signal{Metric: signals.MetricLeverage, Label: signals.LabelLeverageStable},
		Efficiency: signals.Signal{Metric: signals.MetricEfficiency, Label: signals.LabelROICExcellent},
	}
}

func TestAggregateRatingGates(t *testing.T) {
	tests := []struct {
		name            string
		fullPeriodPct   *float64
		leverageDelta   *float64
		marginLabel     string
		marginInsuff    bool
		want            Rating
	}{
		{"positive when all gates pass", models.Float(55.0), models.Float(-1000), signals.LabelMarginExpanding, false, RatingPositive},
		{"exactly 40 fails positive gate", models.Float(40.0), models.Float(-1000), signals.LabelMarginExpanding, false, RatingNeutral},
		{"compressing margin blocks positive", models.Float(49.12), models.Float(-1000), signals.LabelMarginCompressing, false, RatingNeutral},
		{"rising leverage blocks positive", models.Float(55.0), models.Float(500), signals.LabelMarginExpanding, false, RatingNeutral},
		{"zero leverage delta passes", models.Float(55.0), models.Float(0), signals.LabelMarginExpanding, false, RatingPositive},
		{"missing leverage blocks positive", models.Float(55.0), nil, signals.LabelMarginExpanding, false, RatingNeutral},
		{"missing margin blocks positive", models.Float(55.0), models.Float(-1000), signals.LabelNoMarginData, true, RatingNeutral},
		{"exactly 20 is cautious", models.Float(20.0), models.Float(-1000), signals.LabelMarginExpanding, false, RatingCautious},
		{"just above 20 is neutral", models.Float(20.01), models.Float(500), signals.LabelMarginCompressing, false, RatingNeutral},
		{"low growth is cautious", models.Float(8.0), models.Float(-1000), signals.LabelMarginExpanding, false, RatingCautious},
		{"missing growth is cautious", nil, models.Float(-1000), signals.LabelMarginExpanding, false, RatingCautious},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := cleanSignals()
			set.Margin = signals.Signal{Metric: signals.MetricMargin, Label: tt.marginLabel, Insufficient: tt.marginInsuff}
			summary := metrics.Summary{FullPeriodRevenueGrowthPct: tt.fullPeriodPct}
			latest := metrics.DerivedMetrics{LeverageDelta: tt.leverageDelta}

			got := Aggregate(summary, latest, set, Config{})
			if got.Rating != tt.want {
				t.Errorf("rating: got %s, want %s (reasoning: %s)", got.Rating, tt.want, got.Reasoning)
			}
			if got.Reasoning == "" {
				t.Error("reasoning must never be empty")
			}
		})
	}
}

func TestAggregateWarningCount(t *testing.T) {
	set := cleanSignals()
	set.Earnings = signals.Signal{Metric: signals.MetricEarnings, Label: signals.LabelEarningsDivergence, Warning: true}
	set.Leverage = signals.Signal{Metric: signals.MetricLeverage, Label: signals.LabelLeverageRising, Warning: true}

	summary := metrics.Summary{FullPeriodRevenueGrowthPct: models.Float(30.0)}
	latest := metrics.DerivedMetrics{LeverageDelta: models.Float(500)}

	got := Aggregate(summary, latest, set, Config{})
	if got.WarningCount != 2 {
		t.Errorf("warning count: got %d, want 2", got.WarningCount)
	}
	if got.ChecksRun != 3 {
		t.Errorf("checks run: got %d, want 3", got.ChecksRun)
	}
	if got.Conviction != ConvictionWeakening {
		t.Errorf("conviction: got %s, want %s", got.Conviction, ConvictionWeakening)
	}
	wantWarnings := []string{signals.LabelEarningsDivergence, signals.LabelLeverageRising}
	if !reflect.DeepEqual(got.Warnings, wantWarnings) {
		t.Errorf("warnings: got %v, want %v", got.Warnings, wantWarnings)
	}
}

func TestAggregateInsufficientExcludedFromCount(t *testing.T) {
	set := cleanSignals()
	set.Earnings = signals.Signal{Metric: signals.MetricEarnings, Label: signals.LabelNoCashFlowData, Insufficient: true}

	summary := metrics.Summary{FullPeriodRevenueGrowthPct: models.Float(30.0)}
	got := Aggregate(summary, metrics.DerivedMetrics{}, set, Config{})

	if got.WarningCount != 0 {
		t.Errorf("warning count: got %d, want 0 (data gap is not a warning)", got.WarningCount)
	}
	if got.ChecksRun != 2 {
		t.Errorf("checks run: got %d, want 2 (insufficient check skipped)", got.ChecksRun)
	}
	if got.Conviction != ConvictionStrong {
		t.Errorf("conviction: got %s, want %s", got.Conviction, ConvictionStrong)
	}
}

func TestAggregateConfigurableChecks(t *testing.T) {
	set := cleanSignals()
	set.Efficiency = signals.Signal{Metric: signals.MetricEfficiency, Label: signals.LabelROICWeak, Warning: true}

	summary := metrics.Summary{FullPeriodRevenueGrowthPct: models.Float(30.0)}
	cfg := Config{Checks: []signals.Metric{signals.MetricEarnings, signals.MetricLeverage}}

	got := Aggregate(summary, metrics.DerivedMetrics{}, set, cfg)
	if got.WarningCount != 0 {
		t.Errorf("warning count: got %d, want 0 (efficiency not in configured checks)", got.WarningCount)
	}
	if got.ChecksRun != 2 {
		t.Errorf("checks run: got %d, want 2", got.ChecksRun)
	}
}

func TestAggregateSingleWarningIsNeutralConviction(t *testing.T) {
	set := cleanSignals()
	set.Efficiency = signals.Signal{Metric: signals.MetricEfficiency, Label: signals.LabelROICWeak, Warning: true}

	summary := metrics.Summary{FullPeriodRevenueGrowthPct: models.Float(50.0)}
	latest := metrics.DerivedMetrics{LeverageDelta: models.Float(-100)}

	got := Aggregate(summary, latest, set, Config{})
	if got.Conviction != ConvictionNeutral {
		t.Errorf("conviction: got %s, want %s", got.Conviction, ConvictionNeutral)
	}
	// Rating gates are independent of the warning count.
	if got.Rating != RatingPositive {
		t.Errorf("rating: got %s, want %s", got.Rating, RatingPositive)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	set := cleanSignals()
	summary := metrics.Summary{FullPeriodRevenueGrowthPct: models.Float(49.12)}
	latest := metrics.DerivedMetrics{LeverageDelta: models.Float(-2000)}

	first := Aggregate(summary, latest, set, Config{})
	second := Aggregate(summary, latest, set, Config{})
	if !reflect.DeepEqual(first, second) {
		t.Errorf("aggregation must be deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
