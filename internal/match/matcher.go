package match

import (
	"github.com/carewise/carematch/internal/homes"
)

// Status is the derived tri-state of a priority match
type Status string

const (
	StatusFull    Status = "full"
	StatusPartial Status = "partial"
	StatusNone    Status = "none"
)

// Status breakpoints: score >= 8 is a full match, 3..7 partial.
const (
	fullThreshold    = 8
	partialThreshold = 3
)

// Match is the outcome of scoring one home against one priority
type Match struct {
	Score  int    `json:"score"` // 0..10
	Status Status `json:"status"`
	Note   string `json:"note,omitempty"`
}

// MatchPriority scores a home against a single priority. Each source
// field has its own rule reading a different part of the record; a
// missing sub-record degrades to the rule's bottom branch, never to an
// error.
func MatchPriority(pr Priority, h *homes.Record) Match {
	switch pr.Source {
	case SourceCareTypes:
		return matchCQC(h)
	case SourceConditions:
		return matchProviderScore(h)
	case SourceMobility:
		return matchAccessibility(h)
	case SourceDietary:
		return matchFSA(h)
	case SourceLocation:
		return matchDistance(h)
	default:
		return scored(h.MatchScore/10, "based on overall suitability score")
	}
}

// matchCQC maps the regulator tier to a score
func matchCQC(h *homes.Record) Match {
	if h.CQC == nil {
		return scored(3, "no inspection data available")
	}
	switch h.CQC.OverallRating {
	case homes.CQCOutstanding, homes.CQCGood:
		return scored(10, "")
	case homes.CQCRequiresImprovement:
		return scored(5, "CQC rating: requires improvement")
	default:
		return scored(3, "CQC rating below good")
	}
}

// matchProviderScore maps the provider's 0-100 aggregate to a score
func matchProviderScore(h *homes.Record) Match {
	switch s := h.MatchScore; {
	case s >= 85:
		return scored(10, "")
	case s >= 70:
		return scored(8, "")
	case s >= 50:
		return scored(5, "moderate overall suitability")
	default:
		return scored(3, "low overall suitability")
	}
}

// matchAccessibility checks wheelchair access. Unknown is scored above
// a recorded "not accessible": absence of an assessment is not a fault.
func matchAccessibility(h *homes.Record) Match {
	if h.SafetyAnalysis == nil || h.SafetyAnalysis.WheelchairAccessible == nil {
		return scored(3, "accessibility not assessed")
	}
	if *h.SafetyAnalysis.WheelchairAccessible {
		return scored(10, "")
	}
	return scored(2, "not wheelchair accessible")
}

// matchFSA maps the hygiene rating (0-5) to a score
func matchFSA(h *homes.Record) Match {
	if h.FSA == nil {
		return scored(3, "no hygiene rating available")
	}
	switch r := h.FSA.Rating; {
	case r >= 5:
		return scored(10, "")
	case r == 4:
		return scored(8, "")
	case r == 3:
		return scored(5, "hygiene rating 3 of 5")
	default:
		return scored(3, "hygiene rating below 3")
	}
}

// matchDistance scores proximity from the free-text distance field
func matchDistance(h *homes.Record) Match {
	switch km := ParseDistanceKm(h.Distance); {
	case km <= 3:
		return scored(10, "")
	case km <= 5:
		return scored(9, "")
	case km <= 10:
		return scored(6, "within 10 km")
	case km <= 20:
		return scored(4, "within 20 km")
	default:
		return scored(2, "over 20 km away")
	}
}

// scored derives the tri-state status from the score
func scored(score int, note string) Match {
	if score < 0 {
		score = 0
	}
	if score > 10 {
		score = 10
	}

	status := StatusNone
	switch {
	case score >= fullThreshold:
		status = StatusFull
	case score >= partialThreshold:
		status = StatusPartial
	}

	return Match{Score: score, Status: status, Note: note}
}
