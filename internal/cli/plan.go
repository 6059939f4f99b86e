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

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the 14-day action plan",
	Long: `Build the two-week action plan around the top-ranked homes. The
schedule itself is fixed; the home names, phone numbers and local
authority are filled in from the current data.

Examples:
  carematch plan --profile profile.json
  carematch plan -o json`,
	RunE: runPlan,
}

var planProfilePath string

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.Flags().StringVar(&planProfilePath, "profile", "", "Questionnaire profile JSON file")
}

func runPlan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	var p *profile.Profile
	if planProfilePath != "" {
		p, err = profile.LoadFile(planProfilePath)
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
	return output.Output(outputFmt, r.Plan)
}
