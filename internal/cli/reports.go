package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carewise/carematch/internal/config"
	"github.com/carewise/carematch/internal/database"
	"github.com/carewise/carematch/internal/output"
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "List saved reports",
	RunE:  runReports,
}

func init() {
	rootCmd.AddCommand(reportsCmd)
}

func runReports(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	summaries, err := db.ListReports(ctx)
	if err != nil {
		return fmt.Errorf("failed to list reports: %w", err)
	}

	return output.Output(outputFmt, summaries)
}
