// Package profile defines the client questionnaire consumed by the
// scoring pipeline. Profiles arrive as JSON from the intake form and
// are validated once before any scoring runs; the scoring functions
// themselves accept a nil profile and fall back to defaults.
package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// MobilityLevel describes how the client gets around
type MobilityLevel string

const (
	MobilityIndependent MobilityLevel = "independent"
	MobilityWalkingAid  MobilityLevel = "walking_aid"
	MobilityWheelchair  MobilityLevel = "wheelchair"
	MobilityBedbound    MobilityLevel = "bedbound"
)

// MedicationManagement describes how medication is handled
type MedicationManagement string

const (
	MedicationNone    MedicationManagement = "none"
	MedicationSelf    MedicationManagement = "self_managed"
	MedicationRoutine MedicationManagement = "routine"
	MedicationComplex MedicationManagement = "complex"
)

// Sentinel answers the intake form offers for "no issue here". These
// must never become priorities or eligibility criteria.
const (
	NoSeriousCondition = "no serious medical condition"
	NoSpecialDiet      = "no special dietary requirements"
	NoSpecialNeeds     = "no special needs"
)

// Profile is the normalized questionnaire: five fixed sections
type Profile struct {
	Contact        ContactSection        `json:"contact"`
	LocationBudget LocationBudgetSection `json:"locationBudget"`
	Medical        *MedicalSection       `json:"medical"`
	Safety         *SafetySection        `json:"safety"`
	Timeline       TimelineSection       `json:"timeline"`
}

// ContactSection identifies who the report is for
type ContactSection struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Relationship string `json:"relationship,omitempty"` // self, child, spouse, ...
}

// LocationBudgetSection holds location and financial answers
type LocationBudgetSection struct {
	PreferredLocation string  `json:"preferredLocation"`
	LocalAuthority    string  `json:"localAuthority,omitempty"`
	MaxDistanceKm     float64 `json:"maxDistanceKm,omitempty"`
	WeeklyBudget      float64 `json:"weeklyBudget,omitempty"`
	DeclaredCapital   float64 `json:"declaredCapital,omitempty"`
	FundingSource     string  `json:"fundingSource,omitempty"` // self, council, mixed, unsure
}

// MedicalSection holds the medical-needs answers
type MedicalSection struct {
	CareTypes            []string             `json:"careTypes"` // residential, nursing, dementia, respite
	Conditions           []string             `json:"conditions"`
	MobilityLevel        MobilityLevel        `json:"mobilityLevel"`
	MedicationManagement MedicationManagement `json:"medicationManagement,omitempty"`
}

// SafetySection holds safety and special-needs answers
type SafetySection struct {
	DietaryRequirements []string `json:"dietaryRequirements"`
	WanderingRisk       bool     `json:"wanderingRisk,omitempty"`
	SpecialNeeds        []string `json:"specialNeeds,omitempty"`
}

// TimelineSection holds urgency answers
type TimelineSection struct {
	Urgency  string `json:"urgency"` // immediate, within_month, within_three_months, planning
	MoveInBy string `json:"moveInBy,omitempty"`
}

// LoadFile reads and validates a profile from a JSON file
func LoadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	return &p, nil
}

// Validate checks that every section's required answers are present.
// A missing required answer is a rejection, not a default.
func (p *Profile) Validate() error {
	var errs []error

	if p.Contact.FullName == "" {
		errs = append(errs, errors.New("contact: full name is required"))
	}

	if p.LocationBudget.PreferredLocation == "" {
		errs = append(errs, errors.New("location: preferred location is required"))
	}

	if p.Medical == nil {
		errs = append(errs, errors.New("medical: section is required"))
	} else {
		if len(p.Medical.CareTypes) == 0 {
			errs = append(errs, errors.New("medical: at least one care type is required"))
		}
		if p.Medical.MobilityLevel == "" {
			errs = append(errs, errors.New("medical: mobility level is required"))
		}
	}

	if p.Safety == nil {
		errs = append(errs, errors.New("safety: section is required"))
	}

	if p.Timeline.Urgency == "" {
		errs = append(errs, errors.New("timeline: urgency is required"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// IsSentinel reports whether an answer is one of the "no issue" options
func IsSentinel(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case NoSeriousCondition, NoSpecialDiet, NoSpecialNeeds, "none", "n/a":
		return true
	}
	return false
}

// RealConditions returns the recorded conditions minus sentinel answers
func (m *MedicalSection) RealConditions() []string {
	if m == nil {
		return nil
	}
	var out []string
	for _, c := range m.Conditions {
		if !IsSentinel(c) {
			out = append(out, c)
		}
	}
	return out
}

// HasCondition reports whether any recorded condition mentions the
// given term (case-insensitive substring, matching the intake form's
// free-text condition entries)
func (m *MedicalSection) HasCondition(term string) bool {
	if m == nil {
		return false
	}
	term = strings.ToLower(term)
	for _, c := range m.Conditions {
		if strings.Contains(strings.ToLower(c), term) {
			return true
		}
	}
	return false
}

// HasCareType reports whether the given care type was requested
func (m *MedicalSection) HasCareType(careType string) bool {
	if m == nil {
		return false
	}
	careType = strings.ToLower(careType)
	for _, ct := range m.CareTypes {
		if strings.Contains(strings.ToLower(ct), careType) {
			return true
		}
	}
	return false
}

// UsesWheelchair reports whether the client permanently depends on a
// wheelchair (bedbound clients count: they cannot transfer unaided)
func (m *MedicalSection) UsesWheelchair() bool {
	if m == nil {
		return false
	}
	return m.MobilityLevel == MobilityWheelchair || m.MobilityLevel == MobilityBedbound
}
