package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carewise/carematch/internal/config"
	"github.com/carewise/carematch/internal/database"
	"github.com/carewise/carematch/internal/homes"
)

var importCmd = &cobra.Command{
	Use:   "import <homes.json>",
	Short: "Import care-home records",
	Long: `Import care-home records from a JSON file produced by the report
service. Records with an existing id are updated in place.

Examples:
  carematch import homes.json
  carematch import --replace homes.json`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var importReplace bool

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().BoolVar(&importReplace, "replace", false, "Delete existing records before importing")
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	var records []homes.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("failed to parse %s: %w", args[0], err)
	}
	if len(records) == 0 {
		return errors.New("no records found in file")
	}
	for i, r := range records {
		if r.Name == "" {
			return fmt.Errorf("record %d has no name", i)
		}
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if importReplace {
		if _, err := db.ExecContext(ctx, `DELETE FROM homes`); err != nil {
			return fmt.Errorf("failed to clear existing records: %w", err)
		}
	}

	n, err := db.ImportHomes(ctx, records)
	if err != nil {
		return err
	}

	total, err := db.CountHomes(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d records (%d total in database)\n", n, total)
	return nil
}
