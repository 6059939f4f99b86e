package cli

import (
	"github.com/spf13/cobra"

	"github.com/carewise/carematch/internal/config"
	"github.com/carewise/carematch/internal/funding"
	"github.com/carewise/carematch/internal/output"
	"github.com/carewise/carematch/internal/profile"
)

var fundingCmd = &cobra.Command{
	Use:   "funding",
	Short: "Show the funding position",
	Long: `Work out the means-test band, attendance-allowance tier and CHC
likelihood for a questionnaire profile, using the threshold figures
from the config file.

Examples:
  carematch funding --profile profile.json
  carematch funding --profile profile.json --capital 30000`,
	RunE: runFunding,
}

var (
	fundingProfilePath string
	fundingCapital     float64
)

func init() {
	rootCmd.AddCommand(fundingCmd)
	fundingCmd.Flags().StringVar(&fundingProfilePath, "profile", "", "Questionnaire profile JSON file (required)")
	fundingCmd.Flags().Float64Var(&fundingCapital, "capital", 0, "Override the declared capital figure")
	fundingCmd.MarkFlagRequired("profile")
}

func runFunding(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	p, err := profile.LoadFile(fundingProfilePath)
	if err != nil {
		return err
	}

	if fundingCapital > 0 {
		p.LocationBudget.DeclaredCapital = fundingCapital
	}

	return output.Output(outputFmt, funding.Assess(p, cfg.Thresholds))
}
