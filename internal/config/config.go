package config

// Config represents the application configuration
type Config struct {
	Database   DatabaseConfig   `toml:"database"`
	Report     ReportConfig     `toml:"report"`
	Thresholds ThresholdsConfig `toml:"thresholds"`
	Priorities PrioritiesConfig `toml:"priorities"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// ReportConfig contains report generation settings
type ReportConfig struct {
	TopHomes     int `toml:"top_homes"`     // homes carried into the action plan
	RankingLimit int `toml:"ranking_limit"` // homes shown in the ranking table
}

// ThresholdsConfig holds the government funding figures.
//
// These are legally mandated amounts that change every April with the
// new tax year, so they live in config.toml rather than in the binary.
// The defaults below are the 2025/26 figures.
type ThresholdsConfig struct {
	TaxYear                string  `toml:"tax_year"`
	CapitalUpperLimit      float64 `toml:"capital_upper_limit"`
	CapitalLowerLimit      float64 `toml:"capital_lower_limit"`
	AttendanceHigherWeekly float64 `toml:"attendance_higher_weekly"`
	AttendanceLowerWeekly  float64 `toml:"attendance_lower_weekly"`
}

// PrioritiesConfig contains the fallback priorities used when no
// questionnaire is available
type PrioritiesConfig struct {
	Defaults []DefaultPriority `toml:"defaults"`
}

// DefaultPriority is one entry of the fallback priority list
type DefaultPriority struct {
	ID     string `toml:"id"`
	Label  string `toml:"label"`
	Weight int    `toml:"weight"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: "~/.local/share/carematch/carematch.db",
		},
		Report: ReportConfig{
			TopHomes:     3,
			RankingLimit: 10,
		},
		Thresholds: ThresholdsConfig{
			TaxYear:                "2025/26",
			CapitalUpperLimit:      23250,
			CapitalLowerLimit:      14250,
			AttendanceHigherWeekly: 110.40,
			AttendanceLowerWeekly:  73.90,
		},
		Priorities: PrioritiesConfig{
			Defaults: []DefaultPriority{
				{ID: "quality", Label: "Quality of care", Weight: 9},
				{ID: "safety", Label: "Safety record", Weight: 8},
				{ID: "location", Label: "Convenient location", Weight: 7},
				{ID: "price", Label: "Affordable fees", Weight: 6},
				{ID: "facilities", Label: "Facilities and lifestyle", Weight: 5},
			},
		},
	}
}
