// Package rating aggregates classified signals into a headline rating and
// a conviction reading. The policy is deterministic and side-effect free.
package rating

import "github.com/ternarybob/aestimo/internal/signals"

// Rating is the headline stance on a company.
type Rating string

const (
	RatingPositive Rating = "Positive"
	RatingNeutral  Rating = "Neutral"
	RatingCautious Rating = "Cautious"
)

// Conviction grades how clean the signal set is, driven purely by the
// number of counted warnings.
type Conviction string

const (
	ConvictionStrong    Conviction = "Strong"
	ConvictionNeutral   Conviction = "Neutral"
	ConvictionWeakening Conviction = "Weakening"
)

// Config selects which signal metrics participate in the warning count.
// An empty Checks slice means the default set.
type Config struct {
	Checks []signals.Metric
}

// DefaultChecks is the canonical warning subset. Revenue and margin feed
// the rating gates directly and are deliberately not double-counted here.
var DefaultChecks = []signals.Metric{
	signals.MetricEarnings,
	signals.MetricLeverage,
	signals.MetricEfficiency,
}

// Result is the aggregated verdict for one company.
type Result struct {
	Rating     Rating     `json:"rating"`
	Conviction Conviction `json:"conviction"`
	// WarningCount counts warning signals among the configured checks.
	// Insufficient-data signals are excluded, never counted as warnings.
	WarningCount int `json:"warning_count"`
	// ChecksRun is how many configured checks had enough data to evaluate.
	ChecksRun int      `json:"checks_run"`
	Warnings  []string `json:"warnings,omitempty"`
	Reasoning string   `json:"reasoning"`
}
