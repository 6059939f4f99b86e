package profile

import (
	"strings"
	"testing"
)

func validProfile() *Profile {
	return &Profile{
		Contact: ContactSection{FullName: "Margaret Hill"},
		LocationBudget: LocationBudgetSection{
			PreferredLocation: "York",
			LocalAuthority:    "City of York Council",
			DeclaredCapital:   18000,
		},
		Medical: &MedicalSection{
			CareTypes:     []string{"residential"},
			Conditions:    []string{"arthritis"},
			MobilityLevel: MobilityWalkingAid,
		},
		Safety: &SafetySection{
			DietaryRequirements: []string{"diabetic diet"},
		},
		Timeline: TimelineSection{Urgency: "within_month"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Profile)
		wantErr string
	}{
		{
			name:   "valid profile",
			modify: func(p *Profile) {},
		},
		{
			name:    "missing name",
			modify:  func(p *Profile) { p.Contact.FullName = "" },
			wantErr: "full name is required",
		},
		{
			name:    "missing location",
			modify:  func(p *Profile) { p.LocationBudget.PreferredLocation = "" },
			wantErr: "preferred location is required",
		},
		{
			name:    "missing medical section",
			modify:  func(p *Profile) { p.Medical = nil },
			wantErr: "medical: section is required",
		},
		{
			name:    "missing care types",
			modify:  func(p *Profile) { p.Medical.CareTypes = nil },
			wantErr: "care type is required",
		},
		{
			name:    "missing mobility",
			modify:  func(p *Profile) { p.Medical.MobilityLevel = "" },
			wantErr: "mobility level is required",
		},
		{
			name:    "missing safety section",
			modify:  func(p *Profile) { p.Safety = nil },
			wantErr: "safety: section is required",
		},
		{
			name:    "missing urgency",
			modify:  func(p *Profile) { p.Timeline.Urgency = "" },
			wantErr: "urgency is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.modify(p)

			err := p.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestIsSentinel(t *testing.T) {
	tests := []struct {
		answer   string
		expected bool
	}{
		{"no serious medical condition", true},
		{"No Serious Medical Condition", true},
		{"  none  ", true},
		{"n/a", true},
		{"dementia", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsSentinel(tt.answer); got != tt.expected {
			t.Errorf("IsSentinel(%q) = %v, want %v", tt.answer, got, tt.expected)
		}
	}
}

func TestRealConditions(t *testing.T) {
	m := &MedicalSection{
		Conditions: []string{"dementia", "no serious medical condition", "diabetes"},
	}

	got := m.RealConditions()
	if len(got) != 2 {
		t.Fatalf("RealConditions() = %v, want 2 entries", got)
	}
	if got[0] != "dementia" || got[1] != "diabetes" {
		t.Errorf("RealConditions() = %v, want [dementia diabetes]", got)
	}

	var nilSection *MedicalSection
	if nilSection.RealConditions() != nil {
		t.Error("nil section should have no conditions")
	}
}

func TestHasCondition(t *testing.T) {
	m := &MedicalSection{
		Conditions: []string{"Early-stage Alzheimer's", "Type 2 diabetes"},
	}

	if !m.HasCondition("alzheimer") {
		t.Error("expected alzheimer match")
	}
	if !m.HasCondition("diabetes") {
		t.Error("expected diabetes match")
	}
	if m.HasCondition("heart") {
		t.Error("unexpected heart match")
	}
}

func TestUsesWheelchair(t *testing.T) {
	tests := []struct {
		level    MobilityLevel
		expected bool
	}{
		{MobilityIndependent, false},
		{MobilityWalkingAid, false},
		{MobilityWheelchair, true},
		{MobilityBedbound, true},
	}

	for _, tt := range tests {
		m := &MedicalSection{MobilityLevel: tt.level}
		if got := m.UsesWheelchair(); got != tt.expected {
			t.Errorf("UsesWheelchair(%s) = %v, want %v", tt.level, got, tt.expected)
		}
	}
}
