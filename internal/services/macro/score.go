// Package macro turns a qualitative reading of the economic backdrop into
// a single stance used by the report's optional macro overlay section.
package macro

import "fmt"

// Level is a qualitative reading of one macro dimension.
type Level string

const (
	LevelLow      Level = "low"
	LevelModerate Level = "moderate"
	LevelHigh     Level = "high"
)

// Stance is the overall macro verdict.
type Stance string

const (
	StanceSupportive  Stance = "Supportive"
	StanceBalanced    Stance = "Balanced"
	StanceRestrictive Stance = "Restrictive"
)

// Conditions is the caller-supplied macro backdrop. Unset dimensions are
// treated as moderate.
type Conditions struct {
	InterestRates Level `json:"interest_rates"`
	Inflation     Level `json:"inflation"`
	GDPGrowth     Level `json:"gdp_growth"`
}

// Assessment is the scored macro backdrop.
type Assessment struct {
	Score      float64 `json:"score"`
	Stance     Stance  `json:"stance"`
	Commentary string  `json:"commentary"`
}

// Dimension weights. Rates dominate because they hit both discount rates
// and corporate funding costs.
const (
	ratesWeight     = 0.40
	inflationWeight = 0.35
	gdpWeight       = 0.25
)

// Stance cutoffs on the weighted score in [-1, 1].
const (
	supportiveCutoff  = 0.25
	restrictiveCutoff = -0.25
)

// Assess scores the conditions with a weighted sum. Low rates and low
// inflation score positive, high GDP growth scores positive.
func Assess(c Conditions) Assessment {
	score := ratesWeight*inverted(c.InterestRates) +
		inflationWeight*inverted(c.Inflation) +
		gdpWeight*direct(c.GDPGrowth)

	stance := StanceBalanced
	switch {
	case score > supportiveCutoff:
		stance = StanceSupportive
	case score < restrictiveCutoff:
		stance = StanceRestrictive
	}

	return Assessment{
		Score:      score,
		Stance:     stance,
		Commentary: commentary(c, stance),
	}
}

// inverted maps levels where high is bad: rates and inflation.
func inverted(l Level) float64 {
	switch l {
	case LevelLow:
		return 1
	case LevelHigh:
		return -1
	default:
		return 0
	}
}

// direct maps levels where high is good: GDP growth.
func direct(l Level) float64 {
	switch l {
	case LevelHigh:
		return 1
	case LevelLow:
		return -1
	default:
		return 0
	}
}

func commentary(c Conditions, stance Stance) string {
	rates := orModerate(c.InterestRates)
	inflation := orModerate(c.Inflation)
	gdp := orModerate(c.GDPGrowth)

	base := fmt.Sprintf("Interest rates are %s, inflation is %s, and GDP growth is %s.", rates, inflation, gdp)
	switch stance {
	case StanceSupportive:
		return base + " The backdrop is supportive for earnings and multiples."
	case StanceRestrictive:
		return base + " The backdrop is a headwind; discount rates and input costs both bite."
	default:
		return base + " The backdrop is balanced with no dominant driver."
	}
}

func orModerate(l Level) Level {
	if l == "" {
		return LevelModerate
	}
	return l
}
