package database

import "time"

// HomeRow is the stored form of an imported care-home record. The
// scalar columns exist for listing and ordering; the full record JSON
// is the source of truth for scoring.
type HomeRow struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	LocalAuthority string    `json:"localAuthority,omitempty"`
	ContactPhone   string    `json:"contactPhone,omitempty"`
	Distance       string    `json:"distance,omitempty"`
	WeeklyCost     float64   `json:"weeklyCost,omitempty"`
	MatchScore     int       `json:"matchScore"`
	ImportedAt     time.Time `json:"importedAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ReportSummary is a saved report without its payload
type ReportSummary struct {
	ID          string    `json:"id"`
	ClientName  string    `json:"clientName,omitempty"`
	GeneratedAt time.Time `json:"generatedAt"`
	HomeCount   int       `json:"homeCount"`
	TopHome     string    `json:"topHome,omitempty"`
	TopScore    int       `json:"topScore"`
	CreatedAt   time.Time `json:"createdAt"`
}
