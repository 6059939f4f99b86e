package match

import (
	"testing"

	"github.com/carewise/carematch/internal/homes"
)

func boolPtr(b bool) *bool { return &b }

func TestMatchCQCRule(t *testing.T) {
	pr := Priority{ID: "care_type_nursing", Source: SourceCareTypes, Weight: 10}

	tests := []struct {
		name       string
		cqc        *homes.CQCReport
		wantScore  int
		wantStatus Status
	}{
		{"outstanding", &homes.CQCReport{OverallRating: homes.CQCOutstanding}, 10, StatusFull},
		{"good", &homes.CQCReport{OverallRating: homes.CQCGood}, 10, StatusFull},
		{"requires improvement", &homes.CQCReport{OverallRating: homes.CQCRequiresImprovement}, 5, StatusPartial},
		{"inadequate", &homes.CQCReport{OverallRating: homes.CQCInadequate}, 3, StatusPartial},
		{"no inspection data", nil, 3, StatusPartial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchPriority(pr, &homes.Record{CQC: tt.cqc})
			if got.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", got.Score, tt.wantScore)
			}
			if got.Status != tt.wantStatus {
				t.Errorf("Status = %s, want %s", got.Status, tt.wantStatus)
			}
		})
	}
}

func TestMatchProviderScoreRule(t *testing.T) {
	pr := Priority{ID: "condition_dementia", Source: SourceConditions, Weight: 9}

	tests := []struct {
		score      int
		wantScore  int
		wantStatus Status
	}{
		{92, 10, StatusFull},
		{85, 10, StatusFull},
		{70, 8, StatusFull},
		{50, 5, StatusPartial},
		{10, 3, StatusPartial},
		{0, 3, StatusPartial},
	}

	for _, tt := range tests {
		got := MatchPriority(pr, &homes.Record{MatchScore: tt.score})
		if got.Score != tt.wantScore || got.Status != tt.wantStatus {
			t.Errorf("MatchScore %d => (%d, %s), want (%d, %s)",
				tt.score, got.Score, got.Status, tt.wantScore, tt.wantStatus)
		}
	}
}

func TestMatchAccessibilityRule(t *testing.T) {
	pr := Priority{ID: "mobility_wheelchair", Source: SourceMobility, Weight: 9}

	tests := []struct {
		name       string
		safety     *homes.SafetyAnalysis
		wantScore  int
		wantStatus Status
	}{
		{"accessible", &homes.SafetyAnalysis{WheelchairAccessible: boolPtr(true)}, 10, StatusFull},
		{"not accessible", &homes.SafetyAnalysis{WheelchairAccessible: boolPtr(false)}, 2, StatusNone},
		{"not assessed", &homes.SafetyAnalysis{}, 3, StatusPartial},
		{"no safety analysis", nil, 3, StatusPartial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchPriority(pr, &homes.Record{SafetyAnalysis: tt.safety})
			if got.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", got.Score, tt.wantScore)
			}
			if got.Status != tt.wantStatus {
				t.Errorf("Status = %s, want %s", got.Status, tt.wantStatus)
			}
		})
	}
}

func TestMatchFSARule(t *testing.T) {
	pr := Priority{ID: "diet_diabetic_diet", Source: SourceDietary, Weight: 7}

	tests := []struct {
		name       string
		fsa        *homes.FSARating
		wantScore  int
		wantStatus Status
	}{
		{"rating 5", &homes.FSARating{Rating: 5}, 10, StatusFull},
		{"rating 4", &homes.FSARating{Rating: 4}, 8, StatusFull},
		{"rating 3", &homes.FSARating{Rating: 3}, 5, StatusPartial},
		{"rating 1", &homes.FSARating{Rating: 1}, 3, StatusPartial},
		{"no rating", nil, 3, StatusPartial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchPriority(pr, &homes.Record{FSA: tt.fsa})
			if got.Score != tt.wantScore || got.Status != tt.wantStatus {
				t.Errorf("got (%d, %s), want (%d, %s)", got.Score, got.Status, tt.wantScore, tt.wantStatus)
			}
		})
	}
}

func TestMatchDistanceRule(t *testing.T) {
	pr := Priority{ID: "location_york", Source: SourceLocation, Weight: 8}

	tests := []struct {
		distance   string
		wantStatus Status
	}{
		{"2 km", StatusFull},
		{"4.2 km", StatusFull}, // within 5 km
		{"8 km", StatusPartial},
		{"15 km", StatusPartial},
		{"35 km", StatusNone},
		// Unparseable distances score as closest. Pinned behavior.
		{"", StatusFull},
		{"unknown", StatusFull},
	}

	for _, tt := range tests {
		got := MatchPriority(pr, &homes.Record{Distance: tt.distance})
		if got.Status != tt.wantStatus {
			t.Errorf("distance %q => status %s, want %s", tt.distance, got.Status, tt.wantStatus)
		}
	}
}

func TestMatchScoreRangeAndStatusConsistency(t *testing.T) {
	records := []*homes.Record{
		{},
		{MatchScore: 100, CQC: &homes.CQCReport{OverallRating: homes.CQCOutstanding}},
		{MatchScore: 40, FSA: &homes.FSARating{Rating: 2}, Distance: "12.5 km"},
		{SafetyAnalysis: &homes.SafetyAnalysis{WheelchairAccessible: boolPtr(false)}},
	}
	sources := []SourceField{
		SourceCareTypes, SourceConditions, SourceMobility,
		SourceDietary, SourceLocation, SourceDefault,
	}

	for _, h := range records {
		for _, src := range sources {
			m := MatchPriority(Priority{ID: string(src), Source: src, Weight: 5}, h)

			if m.Score < 0 || m.Score > 10 {
				t.Errorf("%s: score %d out of range", src, m.Score)
			}

			var want Status
			switch {
			case m.Score >= 8:
				want = StatusFull
			case m.Score >= 3:
				want = StatusPartial
			default:
				want = StatusNone
			}
			if m.Status != want {
				t.Errorf("%s: score %d has status %s, want %s", src, m.Score, m.Status, want)
			}
		}
	}
}

func TestParseDistanceKm(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"4.2 km", 4.2},
		{"12km", 12},
		{"approx. 7 km away", 7},
		{"0.8 km", 0.8},
		{"", 0},
		{"unknown", 0},
		{"n/a", 0},
	}

	for _, tt := range tests {
		if got := ParseDistanceKm(tt.input); got != tt.expected {
			t.Errorf("ParseDistanceKm(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
