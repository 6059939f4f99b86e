// Package funding estimates NHS Continuing Healthcare likelihood and
// local-authority means-test outcomes from the questionnaire. All
// threshold figures come from configuration; the point table below is
// fixed and mirrored by the intake team's assessment sheet.
package funding

import (
	"github.com/carewise/carematch/internal/profile"
)

// Probability is the CHC likelihood band
type Probability string

const (
	ProbabilityHigh   Probability = "High"
	ProbabilityMedium Probability = "Medium"
	ProbabilityLow    Probability = "Low"
)

// CHC banding thresholds over the additive point score
const (
	chcHighThreshold   = 6
	chcMediumThreshold = 3
)

// CHCEstimate is an indicative Continuing Healthcare screening result.
// It approximates the checklist stage only; a real DST assessment is
// always required for a funding decision.
type CHCEstimate struct {
	Probability     Probability `json:"probability"`
	Score           int         `json:"score"`
	MatchedCriteria []string    `json:"matchedCriteria"`
}

// EstimateCHC scores the medical section against the fixed point
// table. A nil section scores 0 and bands Low with no criteria; that
// is the defined answer when information is missing, not an error.
func EstimateCHC(m *profile.MedicalSection) CHCEstimate {
	est := CHCEstimate{MatchedCriteria: []string{}}

	if m == nil {
		est.Probability = ProbabilityLow
		return est
	}

	add := func(points int, criteria string) {
		est.Score += points
		est.MatchedCriteria = append(est.MatchedCriteria, criteria)
	}

	if m.HasCondition("dementia") || m.HasCondition("alzheimer") {
		add(3, "Dementia or Alzheimer's diagnosis")
	}
	if m.UsesWheelchair() {
		add(2, "Permanent wheelchair use")
	}
	if m.MedicationManagement == profile.MedicationComplex || m.MedicationManagement == profile.MedicationRoutine {
		add(2, "Managed medication regime")
	}
	if m.HasCareType("nursing") {
		add(2, "Nursing care required")
	}
	if len(m.RealConditions()) >= 3 {
		add(2, "Three or more medical conditions")
	}
	if m.HasCondition("heart") {
		add(1, "Heart condition")
	}
	if m.HasCondition("diabetes") {
		add(1, "Diabetes")
	}

	switch {
	case est.Score >= chcHighThreshold:
		est.Probability = ProbabilityHigh
	case est.Score >= chcMediumThreshold:
		est.Probability = ProbabilityMedium
	default:
		est.Probability = ProbabilityLow
	}

	return est
}
