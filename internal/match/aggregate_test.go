package match

import "testing"

func TestAggregateScore(t *testing.T) {
	tests := []struct {
		name     string
		ms       []WeightedMatch
		expected int
	}{
		{
			name:     "empty set",
			ms:       nil,
			expected: 0,
		},
		{
			name: "perfect match is exactly 100",
			ms: []WeightedMatch{
				{Priority{Weight: 10}, Match{Score: 10}},
				{Priority{Weight: 7}, Match{Score: 10}},
				{Priority{Weight: 3}, Match{Score: 10}},
			},
			expected: 100,
		},
		{
			name: "zero scores",
			ms: []WeightedMatch{
				{Priority{Weight: 10}, Match{Score: 0}},
			},
			expected: 0,
		},
		{
			name: "weighted mix",
			// (10*10 + 5*5) / ((10+5)*10) = 125/150 = 83.33 -> 83
			ms: []WeightedMatch{
				{Priority{Weight: 10}, Match{Score: 10}},
				{Priority{Weight: 5}, Match{Score: 5}},
			},
			expected: 83,
		},
		{
			name: "rounds to nearest",
			// (8*9 + 3*7) / ((9+7)*10) = 93/160 = 58.125 -> 58
			ms: []WeightedMatch{
				{Priority{Weight: 9}, Match{Score: 8}},
				{Priority{Weight: 7}, Match{Score: 3}},
			},
			expected: 58,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AggregateScore(tt.ms); got != tt.expected {
				t.Errorf("AggregateScore() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestAggregateScoreOrderIndependent(t *testing.T) {
	ms := []WeightedMatch{
		{Priority{Weight: 10}, Match{Score: 7}},
		{Priority{Weight: 9}, Match{Score: 4}},
		{Priority{Weight: 8}, Match{Score: 10}},
		{Priority{Weight: 7}, Match{Score: 0}},
	}
	reversed := []WeightedMatch{ms[3], ms[2], ms[1], ms[0]}

	if AggregateScore(ms) != AggregateScore(reversed) {
		t.Errorf("aggregate depends on iteration order: %d vs %d",
			AggregateScore(ms), AggregateScore(reversed))
	}

	// Idempotent: same input, same output.
	if AggregateScore(ms) != AggregateScore(ms) {
		t.Error("aggregate is not idempotent")
	}
}
