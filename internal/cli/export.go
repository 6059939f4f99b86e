package cli

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/carewise/carematch/internal/config"
	"github.com/carewise/carematch/internal/database"
	"github.com/carewise/carematch/internal/output"
	"github.com/carewise/carematch/internal/report"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a saved report to CSV or JSON",
	Long: `Export a saved report. CSV output contains the ranking rows;
JSON output contains the full report.

Examples:
  carematch export > rankings.csv
  carematch export --report 1a2b3c4d --format=json > report.json`,
	RunE: runExport,
}

var (
	exportFormat   string
	exportReportID string
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Export format (csv, json)")
	exportCmd.Flags().StringVar(&exportReportID, "report", "", "Report id (default: most recent)")
}

func runExport(cmd *cobra.Command, args []string) error {
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

	var r *report.Report
	if exportReportID != "" {
		r, err = db.GetReport(ctx, exportReportID)
	} else {
		r, err = db.LatestReport(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to load report: %w", err)
	}
	if r == nil {
		return fmt.Errorf("no saved report found (generate one with 'carematch report --save')")
	}

	switch exportFormat {
	case "json":
		return output.JSON(r)
	case "csv":
		return exportCSV(r)
	default:
		return fmt.Errorf("unknown export format: %s", exportFormat)
	}
}

func exportCSV(r *report.Report) error {
	w := csv.NewWriter(os.Stdout)

	header := []string{"rank", "home", "score"}
	for _, p := range r.Priorities {
		header = append(header, p.ID)
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, rk := range r.Rankings {
		row := []string{
			strconv.Itoa(i + 1),
			rk.Name,
			strconv.Itoa(rk.Score),
		}
		for _, p := range r.Priorities {
			row = append(row, string(r.Matches[rk.HomeID][p.ID].Status))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
