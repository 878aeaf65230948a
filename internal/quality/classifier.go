package quality

import "math"

// Tier is the qualitative classification of a confidence score.
type Tier struct {
	Label string `json:"label"`
	Token string `json:"token"`
	Rank  int    `json:"rank"` // 0 = Poor .. 3 = Excellent
}

// Tier table, scanned from the highest threshold down. Lower bounds are
// inclusive: 0.9 classifies as Excellent, 0.7 as Good, 0.5 as Fair.
var tiers = []struct {
	min  float64
	tier Tier
}{
	{0.9, Tier{Label: "Excellent", Token: TokenGreen, Rank: 3}},
	{0.7, Tier{Label: "Good", Token: TokenGreen, Rank: 2}},
	{0.5, Tier{Label: "Fair", Token: TokenYellow, Rank: 1}},
}

// Classify maps a confidence value to its quality tier.
// The caller is responsible for clamping confidence to [0,1] first
// (ValidateMetrics rejects out-of-range values at the boundary); values
// above 1 classify as Excellent and values below 0 as Poor.
func Classify(confidence float64) Tier {
	for _, t := range tiers {
		if confidence >= t.min {
			return t.tier
		}
	}
	return Tier{Label: "Poor", Token: TokenRed, Rank: 0}
}

// Percent converts a [0,1] ratio to a whole percentage using
// round-half-up: 0.893 -> 89, 0.876 -> 88, 0.881 -> 88, 0.923 -> 92.
func Percent(v float64) int {
	return int(math.Round(v * 100))
}
