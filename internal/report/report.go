// Package report assembles the full placement report from a validated
// questionnaire and the imported care-home records. Everything here is
// a pure derivation: the same inputs always produce the same report
// (modulo the generated id and timestamp).
package report

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/carewise/carematch/internal/config"
	"github.com/carewise/carematch/internal/funding"
	"github.com/carewise/carematch/internal/homes"
	"github.com/carewise/carematch/internal/match"
	"github.com/carewise/carematch/internal/plan"
	"github.com/carewise/carematch/internal/profile"
)

// Ranking is one home's aggregate result
type Ranking struct {
	HomeID   string `json:"homeId"`
	Name     string `json:"name"`
	Score    int    `json:"score"` // 0..100
	Distance string `json:"distance,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// Report is the complete output consumed by the renderers
type Report struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generatedAt"`
	ClientName  string    `json:"clientName,omitempty"`

	Priorities []match.Priority `json:"priorities"`

	// Matches maps home id -> priority id -> match outcome
	Matches map[string]map[string]match.Match `json:"matches"`

	Rankings []Ranking          `json:"rankings"`
	Funding  funding.Assessment `json:"funding"`
	Plan     []plan.Task        `json:"plan"`
}

// Build runs the whole pipeline. The profile may be nil (default
// priorities, no-information funding answers); the home list may be
// empty (empty rankings, fallback action plan).
func Build(p *profile.Profile, records []homes.Record, cfg *config.Config) *Report {
	r := &Report{
		ID:          uuid.New().String(),
		GeneratedAt: time.Now(),
		Matches:     make(map[string]map[string]match.Match),
	}
	if p != nil {
		r.ClientName = p.Contact.FullName
	}

	r.Priorities = match.ExtractPriorities(p, cfg.Priorities.Defaults)

	for i := range records {
		h := &records[i]

		perHome := make(map[string]match.Match, len(r.Priorities))
		weighted := make([]match.WeightedMatch, 0, len(r.Priorities))
		for _, pr := range r.Priorities {
			m := match.MatchPriority(pr, h)
			perHome[pr.ID] = m
			weighted = append(weighted, match.WeightedMatch{Priority: pr, Match: m})
		}

		r.Matches[h.ID] = perHome
		r.Rankings = append(r.Rankings, Ranking{
			HomeID:   h.ID,
			Name:     h.Name,
			Score:    match.AggregateScore(weighted),
			Distance: h.Distance,
			Phone:    h.ContactPhone,
		})
	}

	// Stable: equal scores keep the provider's original order.
	sort.SliceStable(r.Rankings, func(i, j int) bool {
		return r.Rankings[i].Score > r.Rankings[j].Score
	})
	if cfg.Report.RankingLimit > 0 && len(r.Rankings) > cfg.Report.RankingLimit {
		r.Rankings = r.Rankings[:cfg.Report.RankingLimit]
	}

	r.Funding = funding.Assess(p, cfg.Thresholds)
	r.Plan = plan.Generate(topContacts(r.Rankings, cfg.Report.TopHomes), localAuthority(p))

	return r
}

// topContacts carries the leading homes into the action plan
func topContacts(rankings []Ranking, n int) []plan.HomeContact {
	if n > len(rankings) {
		n = len(rankings)
	}
	out := make([]plan.HomeContact, 0, n)
	for _, rk := range rankings[:n] {
		out = append(out, plan.HomeContact{Name: rk.Name, Phone: rk.Phone})
	}
	return out
}

func localAuthority(p *profile.Profile) string {
	if p == nil {
		return ""
	}
	return p.LocationBudget.LocalAuthority
}
