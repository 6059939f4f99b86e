package funding

import (
	"testing"

	"github.com/carewise/carematch/internal/config"
	"github.com/carewise/carematch/internal/profile"
)

func thresholds() config.ThresholdsConfig {
	return config.Default().Thresholds
}

func TestMeansTestBand(t *testing.T) {
	tests := []struct {
		capital  float64
		expected CapitalBand
	}{
		{0, BandUndeclared},
		{-100, BandUndeclared},
		{30000, BandSelfFunded},
		{23250.01, BandSelfFunded},
		{23250, BandTariff},
		{18000, BandTariff},
		{14250, BandFullyAssessed},
		{5000, BandFullyAssessed},
	}

	for _, tt := range tests {
		if got := MeansTestBand(tt.capital, thresholds()); got != tt.expected {
			t.Errorf("MeansTestBand(%v) = %s, want %s", tt.capital, got, tt.expected)
		}
	}
}

func TestSelectAttendanceRate(t *testing.T) {
	tests := []struct {
		name     string
		medical  *profile.MedicalSection
		wantTier AttendanceTier
	}{
		{
			name:     "no medical section",
			medical:  nil,
			wantTier: TierLower,
		},
		{
			name: "low needs",
			medical: &profile.MedicalSection{
				CareTypes:     []string{"residential"},
				MobilityLevel: profile.MobilityWalkingAid,
			},
			wantTier: TierLower,
		},
		{
			name: "wheelchair user",
			medical: &profile.MedicalSection{
				CareTypes:     []string{"residential"},
				MobilityLevel: profile.MobilityWheelchair,
			},
			wantTier: TierHigher,
		},
		{
			name: "dementia diagnosis",
			medical: &profile.MedicalSection{
				CareTypes:     []string{"residential"},
				Conditions:    []string{"vascular dementia"},
				MobilityLevel: profile.MobilityWalkingAid,
			},
			wantTier: TierHigher,
		},
		{
			name: "nursing care type",
			medical: &profile.MedicalSection{
				CareTypes:     []string{"nursing"},
				MobilityLevel: profile.MobilityIndependent,
			},
			wantTier: TierHigher,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectAttendanceRate(tt.medical, thresholds())

			if got.Tier != tt.wantTier {
				t.Errorf("Tier = %s, want %s", got.Tier, tt.wantTier)
			}

			wantWeekly := thresholds().AttendanceLowerWeekly
			if tt.wantTier == TierHigher {
				wantWeekly = thresholds().AttendanceHigherWeekly
			}
			if got.Weekly != wantWeekly {
				t.Errorf("Weekly = %v, want %v", got.Weekly, wantWeekly)
			}
			if got.Annual != wantWeekly*52 {
				t.Errorf("Annual = %v, want %v", got.Annual, wantWeekly*52)
			}
		})
	}
}

func TestAssess(t *testing.T) {
	p := &profile.Profile{
		LocationBudget: profile.LocationBudgetSection{DeclaredCapital: 20000},
		Medical: &profile.MedicalSection{
			CareTypes:     []string{"nursing"},
			Conditions:    []string{"dementia"},
			MobilityLevel: profile.MobilityWheelchair,
		},
	}

	got := Assess(p, thresholds())

	if got.CapitalBand != BandTariff {
		t.Errorf("CapitalBand = %s, want tariff", got.CapitalBand)
	}
	if got.AttendanceAllowance.Tier != TierHigher {
		t.Errorf("attendance tier = %s, want higher", got.AttendanceAllowance.Tier)
	}
	if got.CHC.Probability != ProbabilityHigh {
		t.Errorf("CHC probability = %s, want High", got.CHC.Probability)
	}
	if got.TaxYear != "2025/26" {
		t.Errorf("TaxYear = %s, want 2025/26", got.TaxYear)
	}
}

func TestAssessNilProfile(t *testing.T) {
	got := Assess(nil, thresholds())

	if got.CapitalBand != BandUndeclared {
		t.Errorf("CapitalBand = %s, want undeclared", got.CapitalBand)
	}
	if got.AttendanceAllowance.Tier != TierLower {
		t.Errorf("attendance tier = %s, want lower", got.AttendanceAllowance.Tier)
	}
	if got.CHC.Probability != ProbabilityLow {
		t.Errorf("CHC probability = %s, want Low", got.CHC.Probability)
	}
}
