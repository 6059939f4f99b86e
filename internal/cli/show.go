package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carewise/carematch/internal/config"
	"github.com/carewise/carematch/internal/database"
	"github.com/carewise/carematch/internal/output"
)

var showCmd = &cobra.Command{
	Use:   "show <home-id>",
	Short: "Show one care home in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
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

	h, err := db.GetHome(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to load home: %w", err)
	}
	if h == nil {
		return fmt.Errorf("no home found with id %s", args[0])
	}

	if outputFmt == "json" {
		return output.JSON(h)
	}

	t := NewTerminal()

	fmt.Printf("%s\n", h.Name)
	if h.Address != "" {
		fmt.Printf("Address:     %s\n", h.Address)
	}
	if h.LocalAuthority != "" {
		fmt.Printf("Authority:   %s\n", h.LocalAuthority)
	}
	if h.ContactPhone != "" {
		fmt.Printf("Phone:       %s\n", h.ContactPhone)
	}
	if h.Distance != "" {
		fmt.Printf("Distance:    %s\n", h.Distance)
	}
	if h.WeeklyCost > 0 {
		fmt.Printf("Weekly cost: £%.0f\n", h.WeeklyCost)
	}
	fmt.Printf("Provider score: %d/100\n", h.MatchScore)

	if h.CQC != nil {
		fmt.Printf("CQC rating:  %s", t.Color(RatingColor(h.CQC.OverallRating), string(h.CQC.OverallRating)))
		if h.CQC.LastInspection != "" {
			fmt.Printf(" (inspected %s)", h.CQC.LastInspection)
		}
		fmt.Println()
	} else {
		fmt.Println("CQC rating:  not available")
	}

	if h.FSA != nil {
		fmt.Printf("FSA hygiene: %d/5\n", h.FSA.Rating)
	}
	if h.SafetyAnalysis != nil && h.SafetyAnalysis.WheelchairAccessible != nil {
		access := "no"
		if *h.SafetyAnalysis.WheelchairAccessible {
			access = "yes"
		}
		fmt.Printf("Wheelchair access: %s\n", access)
	}
	if h.FundingOptions != nil {
		fmt.Printf("Accepts council funding: %v, CHC: %v\n",
			h.FundingOptions.AcceptsLocalAuthority, h.FundingOptions.AcceptsCHC)
	}

	return nil
}
