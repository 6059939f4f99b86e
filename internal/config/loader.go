package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	// Expand path
	expandedPath, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	// Read file
	data, err := os.ReadFile(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s (run 'carematch config init' to create)", expandedPath)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Parse TOML
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Expand paths in config
	if err := cfg.expandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads config or exits with error
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// expandPath expands ~ to home directory
func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}

// expandPaths expands ~ in all path fields
func (c *Config) expandPaths() error {
	var err error

	c.Database.Path, err = expandPath(c.Database.Path)
	if err != nil {
		return err
	}

	return nil
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	// Database validation
	if c.Database.Path == "" {
		errs = append(errs, errors.New("database.path is required"))
	}

	// Report validation
	if c.Report.TopHomes < 1 || c.Report.TopHomes > 10 {
		errs = append(errs, errors.New("report.top_homes must be between 1 and 10"))
	}
	if c.Report.RankingLimit < 1 {
		errs = append(errs, errors.New("report.ranking_limit must be at least 1"))
	}

	// Threshold validation: the figures come from external publications
	// and a bad edit here silently corrupts every funding estimate.
	if c.Thresholds.CapitalUpperLimit <= 0 {
		errs = append(errs, errors.New("thresholds.capital_upper_limit must be positive"))
	}
	if c.Thresholds.CapitalLowerLimit <= 0 {
		errs = append(errs, errors.New("thresholds.capital_lower_limit must be positive"))
	}
	if c.Thresholds.CapitalLowerLimit >= c.Thresholds.CapitalUpperLimit {
		errs = append(errs, errors.New("thresholds.capital_lower_limit must be below capital_upper_limit"))
	}
	if c.Thresholds.AttendanceHigherWeekly <= 0 || c.Thresholds.AttendanceLowerWeekly <= 0 {
		errs = append(errs, errors.New("thresholds attendance allowance rates must be positive"))
	}
	if c.Thresholds.AttendanceLowerWeekly >= c.Thresholds.AttendanceHigherWeekly {
		errs = append(errs, errors.New("thresholds.attendance_lower_weekly must be below attendance_higher_weekly"))
	}

	// Priority validation
	for i, p := range c.Priorities.Defaults {
		if p.ID == "" {
			errs = append(errs, fmt.Errorf("priorities.defaults[%d].id is required", i))
		}
		if p.Weight < 1 || p.Weight > 10 {
			errs = append(errs, fmt.Errorf("priorities.defaults[%d].weight must be between 1 and 10", i))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// EnsureDirectories creates necessary directories for the database
func (c *Config) EnsureDirectories() error {
	dir := filepath.Dir(c.Database.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}
