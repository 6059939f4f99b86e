// Package match derives client priorities from the questionnaire and
// scores care homes against them.
package match

import (
	"sort"
	"strings"

	"github.com/carewise/carematch/internal/config"
	"github.com/carewise/carematch/internal/profile"
)

// SourceField identifies which questionnaire field produced a priority.
// The matcher dispatches on this closed set.
type SourceField string

const (
	SourceCareTypes  SourceField = "care_types"
	SourceConditions SourceField = "medical_conditions"
	SourceMobility   SourceField = "mobility_level"
	SourceDietary    SourceField = "dietary_requirements"
	SourceLocation   SourceField = "preferred_location"
	SourceDefault    SourceField = "default"
)

// Per-source weights. Fixed by the intake design, not tunable.
const (
	weightCareTypes  = 10
	weightConditions = 9
	weightMobility   = 9
	weightDietary    = 7
	weightLocation   = 8
)

// MaxPriorities caps how many priorities a report carries
const MaxPriorities = 5

// Priority is one weighted concern derived from the questionnaire
type Priority struct {
	ID     string      `json:"id"`
	Label  string      `json:"label"`
	Source SourceField `json:"source"`
	Weight int         `json:"weight"` // 1..10
}

// ExtractPriorities maps questionnaire answers to at most MaxPriorities
// weighted priorities, highest weight first. A nil profile yields the
// configured default list; this function cannot fail.
func ExtractPriorities(p *profile.Profile, defaults []config.DefaultPriority) []Priority {
	if p == nil {
		return defaultPriorities(defaults)
	}

	var out []Priority

	if p.Medical != nil {
		for _, ct := range p.Medical.CareTypes {
			if profile.IsSentinel(ct) {
				continue
			}
			out = append(out, Priority{
				ID:     "care_type_" + slug(ct),
				Label:  "Care type: " + ct,
				Source: SourceCareTypes,
				Weight: weightCareTypes,
			})
		}

		for _, c := range p.Medical.RealConditions() {
			out = append(out, Priority{
				ID:     "condition_" + slug(c),
				Label:  "Support for " + c,
				Source: SourceConditions,
				Weight: weightConditions,
			})
		}

		if lvl := p.Medical.MobilityLevel; lvl != "" && lvl != profile.MobilityIndependent {
			out = append(out, Priority{
				ID:     "mobility_" + slug(string(lvl)),
				Label:  "Mobility support (" + strings.ReplaceAll(string(lvl), "_", " ") + ")",
				Source: SourceMobility,
				Weight: weightMobility,
			})
		}
	}

	if p.Safety != nil {
		for _, d := range p.Safety.DietaryRequirements {
			if profile.IsSentinel(d) {
				continue
			}
			out = append(out, Priority{
				ID:     "diet_" + slug(d),
				Label:  "Dietary: " + d,
				Source: SourceDietary,
				Weight: weightDietary,
			})
		}
	}

	if loc := p.LocationBudget.PreferredLocation; loc != "" {
		out = append(out, Priority{
			ID:     "location_" + slug(loc),
			Label:  "Close to " + loc,
			Source: SourceLocation,
			Weight: weightLocation,
		})
	}

	// Stable: ties keep questionnaire declaration order.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Weight > out[j].Weight })

	if len(out) > MaxPriorities {
		out = out[:MaxPriorities]
	}
	return out
}

func defaultPriorities(defaults []config.DefaultPriority) []Priority {
	out := make([]Priority, 0, len(defaults))
	for _, d := range defaults {
		out = append(out, Priority{
			ID:     d.ID,
			Label:  d.Label,
			Source: SourceDefault,
			Weight: d.Weight,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Weight > out[j].Weight })
	if len(out) > MaxPriorities {
		out = out[:MaxPriorities]
	}
	return out
}

func slug(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('_')
		}
	}
	return b.String()
}
