package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(home, ".config", "carematch")
	dataDir := filepath.Join(home, ".local", "share", "carematch")

	// Create directories
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	configFile := filepath.Join(configDir, "config.toml")

	// Check if config already exists
	if _, err := os.Stat(configFile); err == nil {
		fmt.Printf("Config file already exists at %s\n", configFile)
		fmt.Println("Use 'carematch config show' to view current configuration")
		return nil
	}

	// Write default config
	if err := os.WriteFile(configFile, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created config file at %s\n", configFile)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Run 'carematch import <homes.json>' to load care-home records")
	fmt.Println("  2. Run 'carematch report --profile <profile.json>' to generate a report")
	fmt.Println()
	fmt.Println("The [thresholds] section holds government figures that change each")
	fmt.Println("April; update them there when the new tax year rates are published.")

	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("No config file found. Run 'carematch config init' to create one.")
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	fmt.Printf("# Config file: %s\n\n", configPath)
	fmt.Println(string(data))
	return nil
}

const defaultConfig = `# carematch configuration

[database]
path = "~/.local/share/carematch/carematch.db"

[report]
top_homes = 3       # homes carried into the action plan
ranking_limit = 10  # homes shown in the ranking table

# Government funding figures. These are set annually; the values below
# are the 2025/26 rates. Update them each April rather than waiting for
# a new release.
[thresholds]
tax_year = "2025/26"
capital_upper_limit = 23250.0      # above this: self-funding
capital_lower_limit = 14250.0      # below this: capital disregarded
attendance_higher_weekly = 110.40  # day and night care needs
attendance_lower_weekly = 73.90    # day or night care needs

# Fallback priorities used when no questionnaire is supplied.
[[priorities.defaults]]
id = "quality"
label = "Quality of care"
weight = 9

[[priorities.defaults]]
id = "safety"
label = "Safety record"
weight = 8

[[priorities.defaults]]
id = "location"
label = "Convenient location"
weight = 7

[[priorities.defaults]]
id = "price"
label = "Affordable fees"
weight = 6

[[priorities.defaults]]
id = "facilities"
label = "Facilities and lifestyle"
weight = 5
`
