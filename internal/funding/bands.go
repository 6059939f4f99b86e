package funding

import (
	"github.com/carewise/carematch/internal/config"
	"github.com/carewise/carematch/internal/profile"
)

// CapitalBand is the means-test outcome against the capital limits
type CapitalBand string

const (
	BandSelfFunded    CapitalBand = "self_funded"    // above the upper limit
	BandTariff        CapitalBand = "tariff"         // between the limits, tariff income applies
	BandFullyAssessed CapitalBand = "fully_assessed" // below the lower limit
	BandUndeclared    CapitalBand = "undeclared"     // no capital figure supplied
)

// AttendanceTier selects which of the two weekly rates applies
type AttendanceTier string

const (
	TierHigher AttendanceTier = "higher"
	TierLower  AttendanceTier = "lower"
)

// AttendanceAward is the selected attendance-allowance entitlement
type AttendanceAward struct {
	Tier   AttendanceTier `json:"tier"`
	Weekly float64        `json:"weekly"`
	Annual float64        `json:"annual"`
}

// Assessment is the combined funding picture for one client
type Assessment struct {
	TaxYear             string          `json:"taxYear"`
	CapitalBand         CapitalBand     `json:"capitalBand"`
	CapitalUpperLimit   float64         `json:"capitalUpperLimit"`
	CapitalLowerLimit   float64         `json:"capitalLowerLimit"`
	AttendanceAllowance AttendanceAward `json:"attendanceAllowance"`
	CHC                 CHCEstimate     `json:"chc"`
}

// SevereCareNeeds reports whether the questionnaire shows the
// day-and-night care indicators that qualify for the higher
// attendance-allowance rate
func SevereCareNeeds(m *profile.MedicalSection) bool {
	if m == nil {
		return false
	}
	return m.UsesWheelchair() ||
		m.MedicationManagement == profile.MedicationComplex ||
		m.HasCareType("nursing") ||
		m.HasCondition("dementia") || m.HasCondition("alzheimer")
}

// SelectAttendanceRate picks the higher or lower weekly rate from the
// configured thresholds
func SelectAttendanceRate(m *profile.MedicalSection, t config.ThresholdsConfig) AttendanceAward {
	weekly := t.AttendanceLowerWeekly
	tier := TierLower
	if SevereCareNeeds(m) {
		weekly = t.AttendanceHigherWeekly
		tier = TierHigher
	}
	return AttendanceAward{
		Tier:   tier,
		Weekly: weekly,
		Annual: weekly * 52,
	}
}

// MeansTestBand compares declared capital to the configured limits.
// Zero capital means "not declared": the intake form never records an
// actual zero, and guessing a band from silence would be misleading.
func MeansTestBand(capital float64, t config.ThresholdsConfig) CapitalBand {
	switch {
	case capital <= 0:
		return BandUndeclared
	case capital > t.CapitalUpperLimit:
		return BandSelfFunded
	case capital > t.CapitalLowerLimit:
		return BandTariff
	default:
		return BandFullyAssessed
	}
}

// Assess builds the full funding picture for a client. A nil profile
// yields the no-information defaults throughout.
func Assess(p *profile.Profile, t config.ThresholdsConfig) Assessment {
	var medical *profile.MedicalSection
	var capital float64
	if p != nil {
		medical = p.Medical
		capital = p.LocationBudget.DeclaredCapital
	}

	return Assessment{
		TaxYear:             t.TaxYear,
		CapitalBand:         MeansTestBand(capital, t),
		CapitalUpperLimit:   t.CapitalUpperLimit,
		CapitalLowerLimit:   t.CapitalLowerLimit,
		AttendanceAllowance: SelectAttendanceRate(medical, t),
		CHC:                 EstimateCHC(medical),
	}
}
