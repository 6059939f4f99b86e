package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/olekukonko/tablewriter"

	"github.com/carewise/carematch/internal/database"
	"github.com/carewise/carematch/internal/funding"
	"github.com/carewise/carematch/internal/match"
	"github.com/carewise/carematch/internal/plan"
	"github.com/carewise/carematch/internal/report"
)

// Table writes data as a formatted table to stdout
func Table(data interface{}) error {
	return TableTo(os.Stdout, data)
}

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case *report.Report:
		return reportDetail(w, v)
	case []database.HomeRow:
		return homesTable(w, v)
	case []database.ReportSummary:
		return reportsTable(w, v)
	case funding.Assessment:
		return fundingDetail(w, v)
	case funding.CHCEstimate:
		return chcDetail(w, v)
	case []plan.Task:
		return planTable(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func reportDetail(w io.Writer, r *report.Report) error {
	if r.ClientName != "" {
		fmt.Fprintf(w, "Placement report for %s\n", r.ClientName)
	} else {
		fmt.Fprintln(w, "Placement report")
	}
	fmt.Fprintf(w, "Generated: %s  (id %s)\n\n", r.GeneratedAt.Format("Jan 02, 2006 15:04"), shortID(r.ID))

	// Priorities
	fmt.Fprintln(w, "Priorities:")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, p := range r.Priorities {
		fmt.Fprintf(tw, "  %d.\t%s\t(weight %d)\n", i+1, p.Label, p.Weight)
	}
	tw.Flush()
	fmt.Fprintln(w)

	// Ranking with per-priority statuses
	if len(r.Rankings) == 0 {
		fmt.Fprintln(w, "No care homes imported. Run 'carematch import' first.")
	} else {
		tbl := tablewriter.NewTable(w)
		header := []string{"#", "HOME", "MATCH"}
		for i := range r.Priorities {
			header = append(header, fmt.Sprintf("P%d", i+1))
		}
		tbl.Header(header)

		for i, rk := range r.Rankings {
			row := []string{
				fmt.Sprint(i + 1),
				truncate(rk.Name, 25),
				fmt.Sprintf("%d%%", rk.Score),
			}
			for _, p := range r.Priorities {
				row = append(row, statusMark(r.Matches[rk.HomeID][p.ID].Status))
			}
			tbl.Append(row)
		}
		if err := tbl.Render(); err != nil {
			return err
		}
		fmt.Fprintln(w, "  (P columns follow priority order; ✓ full, ~ partial, ✗ none)")
	}
	fmt.Fprintln(w)

	if err := fundingDetail(w, r.Funding); err != nil {
		return err
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Action plan: %d tasks over 14 days (run 'carematch plan' for details)\n", len(r.Plan))
	return nil
}

func homesTable(w io.Writer, rows []database.HomeRow) error {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No care homes imported.")
		return nil
	}

	tbl := tablewriter.NewTable(w)
	tbl.Header("NAME", "AUTHORITY", "DISTANCE", "WEEKLY £", "SCORE")

	for _, r := range rows {
		cost := ""
		if r.WeeklyCost > 0 {
			cost = fmt.Sprintf("%.0f", r.WeeklyCost)
		}
		tbl.Append([]string{
			truncate(r.Name, 25),
			truncate(r.LocalAuthority, 22),
			r.Distance,
			cost,
			fmt.Sprint(r.MatchScore),
		})
	}
	return tbl.Render()
}

func reportsTable(w io.Writer, rows []database.ReportSummary) error {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No saved reports.")
		return nil
	}

	tbl := tablewriter.NewTable(w)
	tbl.Header("ID", "CLIENT", "GENERATED", "HOMES", "TOP HOME", "TOP %")

	for _, r := range rows {
		tbl.Append([]string{
			shortID(r.ID),
			truncate(r.ClientName, 20),
			r.GeneratedAt.Format("Jan 02, 2006"),
			fmt.Sprint(r.HomeCount),
			truncate(r.TopHome, 25),
			fmt.Sprint(r.TopScore),
		})
	}
	return tbl.Render()
}

func fundingDetail(w io.Writer, f funding.Assessment) error {
	fmt.Fprintf(w, "Funding (%s figures)\n", f.TaxYear)
	fmt.Fprintln(w, strings.Repeat("-", 30))
	fmt.Fprintf(w, "Means test:        %s\n", capitalBandText(f))
	fmt.Fprintf(w, "Attendance allowance: %s rate, £%.2f/week (£%.2f/year)\n",
		f.AttendanceAllowance.Tier, f.AttendanceAllowance.Weekly, f.AttendanceAllowance.Annual)
	return chcDetail(w, f.CHC)
}

func chcDetail(w io.Writer, e funding.CHCEstimate) error {
	fmt.Fprintf(w, "CHC likelihood:    %s (score %d)\n", e.Probability, e.Score)
	for _, c := range e.MatchedCriteria {
		fmt.Fprintf(w, "  - %s\n", c)
	}
	if len(e.MatchedCriteria) == 0 {
		fmt.Fprintln(w, "  (no qualifying indicators recorded)")
	}
	return nil
}

func planTable(w io.Writer, tasks []plan.Task) error {
	week := 0
	for _, t := range tasks {
		if w2 := (t.Day-1)/7 + 1; w2 != week {
			week = w2
			fmt.Fprintf(w, "\nWeek %d\n%s\n", week, strings.Repeat("-", 40))
		}
		fmt.Fprintf(w, "Day %-2d [%s] %s (%dm)\n", t.Day, t.Priority, t.Title, t.EstimatedMinutes)
		fmt.Fprintf(w, "        %s\n", t.Description)
	}
	return nil
}

func capitalBandText(f funding.Assessment) string {
	switch f.CapitalBand {
	case funding.BandSelfFunded:
		return fmt.Sprintf("self-funded (capital above £%.0f)", f.CapitalUpperLimit)
	case funding.BandTariff:
		return fmt.Sprintf("council contribution with tariff income (capital between £%.0f and £%.0f)",
			f.CapitalLowerLimit, f.CapitalUpperLimit)
	case funding.BandFullyAssessed:
		return fmt.Sprintf("capital fully disregarded for fees (below £%.0f)", f.CapitalLowerLimit)
	default:
		return "no capital declared"
	}
}

func statusMark(s match.Status) string {
	switch s {
	case match.StatusFull:
		return "✓"
	case match.StatusPartial:
		return "~"
	case match.StatusNone:
		return "✗"
	default:
		return "?"
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
