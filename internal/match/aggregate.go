package match

import "math"

// WeightedMatch pairs a priority with the match it produced for a home
type WeightedMatch struct {
	Priority Priority
	Match    Match
}

// AggregateScore combines per-priority matches into one 0-100
// percentage. The denominator is the maximum achievable score (10 per
// weight unit), so matching every priority perfectly yields exactly
// 100. An empty or zero-weight set yields 0.
func AggregateScore(ms []WeightedMatch) int {
	var achieved, possible int
	for _, m := range ms {
		achieved += m.Match.Score * m.Priority.Weight
		possible += m.Priority.Weight * 10
	}
	if possible == 0 {
		return 0
	}
	return int(math.Round(float64(achieved) / float64(possible) * 100))
}
