package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carewise/carematch/internal/config"
	"github.com/carewise/carematch/internal/database"
	"github.com/carewise/carematch/internal/output"
)

var homesCmd = &cobra.Command{
	Use:   "homes",
	Short: "List imported care homes",
	Long: `List the imported care-home records, best provider score first.

Examples:
  carematch homes
  carematch homes --limit=5
  carematch homes -o json`,
	RunE: runHomes,
}

var homesLimit int

func init() {
	rootCmd.AddCommand(homesCmd)
	homesCmd.Flags().IntVar(&homesLimit, "limit", 0, "Maximum number of homes to show (0 = all)")
}

func runHomes(cmd *cobra.Command, args []string) error {
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

	rows, err := db.ListHomeRows(ctx, homesLimit)
	if err != nil {
		return fmt.Errorf("failed to list homes: %w", err)
	}

	return output.Output(outputFmt, rows)
}
