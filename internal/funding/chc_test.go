package funding

import (
	"testing"

	"github.com/carewise/carematch/internal/profile"
)

func TestEstimateCHC_AbsentSection(t *testing.T) {
	got := EstimateCHC(nil)

	if got.Score != 0 {
		t.Errorf("Score = %d, want 0", got.Score)
	}
	if got.Probability != ProbabilityLow {
		t.Errorf("Probability = %s, want Low", got.Probability)
	}
	if len(got.MatchedCriteria) != 0 {
		t.Errorf("MatchedCriteria = %v, want empty", got.MatchedCriteria)
	}
}

func TestEstimateCHC_DementiaWheelchairComplexMeds(t *testing.T) {
	// dementia +3, wheelchair +2, complex medication +2 = 7 points
	m := &profile.MedicalSection{
		CareTypes:            []string{"residential"},
		Conditions:           []string{"dementia"},
		MobilityLevel:        profile.MobilityWheelchair,
		MedicationManagement: profile.MedicationComplex,
	}

	got := EstimateCHC(m)

	if got.Score != 7 {
		t.Errorf("Score = %d, want 7", got.Score)
	}
	if got.Probability != ProbabilityHigh {
		t.Errorf("Probability = %s, want High", got.Probability)
	}
	if len(got.MatchedCriteria) != 3 {
		t.Errorf("MatchedCriteria = %v, want 3 entries", got.MatchedCriteria)
	}
}

func TestEstimateCHC_PointTable(t *testing.T) {
	tests := []struct {
		name      string
		medical   *profile.MedicalSection
		wantScore int
		wantBand  Probability
	}{
		{
			name: "no flags",
			medical: &profile.MedicalSection{
				CareTypes:     []string{"residential"},
				Conditions:    []string{profile.NoSeriousCondition},
				MobilityLevel: profile.MobilityIndependent,
			},
			wantScore: 0,
			wantBand:  ProbabilityLow,
		},
		{
			name: "nursing plus routine medication",
			medical: &profile.MedicalSection{
				CareTypes:            []string{"nursing"},
				MobilityLevel:        profile.MobilityWalkingAid,
				MedicationManagement: profile.MedicationRoutine,
			},
			wantScore: 4,
			wantBand:  ProbabilityMedium,
		},
		{
			name: "three conditions with heart and diabetes",
			medical: &profile.MedicalSection{
				CareTypes:     []string{"residential"},
				Conditions:    []string{"heart failure", "diabetes", "arthritis"},
				MobilityLevel: profile.MobilityWalkingAid,
			},
			// conditions>=3 +2, heart +1, diabetes +1
			wantScore: 4,
			wantBand:  ProbabilityMedium,
		},
		{
			name: "alzheimers alone",
			medical: &profile.MedicalSection{
				CareTypes:     []string{"residential"},
				Conditions:    []string{"Alzheimer's disease"},
				MobilityLevel: profile.MobilityWalkingAid,
			},
			wantScore: 3,
			wantBand:  ProbabilityMedium,
		},
		{
			name: "everything",
			medical: &profile.MedicalSection{
				CareTypes:            []string{"nursing"},
				Conditions:           []string{"dementia", "heart disease", "diabetes"},
				MobilityLevel:        profile.MobilityBedbound,
				MedicationManagement: profile.MedicationComplex,
			},
			// 3+2+2+2+2+1+1
			wantScore: 13,
			wantBand:  ProbabilityHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateCHC(tt.medical)
			if got.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d (criteria: %v)", got.Score, tt.wantScore, got.MatchedCriteria)
			}
			if got.Probability != tt.wantBand {
				t.Errorf("Probability = %s, want %s", got.Probability, tt.wantBand)
			}
		})
	}
}
