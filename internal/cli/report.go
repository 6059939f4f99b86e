package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carewise/carematch/internal/config"
	"github.com/carewise/carematch/internal/database"
	"github.com/carewise/carematch/internal/output"
	"github.com/carewise/carematch/internal/profile"
	"github.com/carewise/carematch/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a placement report",
	Long: `Run the full scoring pipeline: derive priorities from the
questionnaire, score every imported home against them, estimate the
funding position, and build the action plan.

Without --profile the report uses the configured default priorities.

Examples:
  carematch report --profile profile.json
  carematch report --profile profile.json --save
  carematch report -o json > report.json`,
	RunE: runReport,
}

var (
	reportProfilePath string
	reportSave        bool
	reportTop         int
)

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVar(&reportProfilePath, "profile", "", "Questionnaire profile JSON file")
	reportCmd.Flags().BoolVar(&reportSave, "save", false, "Save the generated report to the database")
	reportCmd.Flags().IntVar(&reportTop, "top", 0, "Number of top homes fed into the action plan (default from config)")
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if reportTop > 0 {
		cfg.Report.TopHomes = reportTop
	}

	// Profile is optional: without one the default priorities apply.
	var p *profile.Profile
	if reportProfilePath != "" {
		p, err = profile.LoadFile(reportProfilePath)
		if err != nil {
			return err
		}
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	records, err := db.ListHomes(ctx, 0)
	if err != nil {
		return fmt.Errorf("failed to load homes: %w", err)
	}

	r := report.Build(p, records, cfg)

	if reportSave {
		if err := db.SaveReport(ctx, r); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
	}

	return output.Output(outputFmt, r)
}
