package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carewise/carematch/internal/funding"
	"github.com/carewise/carematch/internal/output"
	"github.com/carewise/carematch/internal/profile"
)

var chcCmd = &cobra.Command{
	Use:   "chc",
	Short: "Estimate NHS Continuing Healthcare likelihood",
	Long: `Score the questionnaire's medical section against the CHC
checklist indicators. This approximates the screening stage only; a
Decision Support Tool assessment is always needed for an actual award.

Examples:
  carematch chc --profile profile.json`,
	RunE: runCHC,
}

var chcProfilePath string

func init() {
	rootCmd.AddCommand(chcCmd)
	chcCmd.Flags().StringVar(&chcProfilePath, "profile", "", "Questionnaire profile JSON file (required)")
	chcCmd.MarkFlagRequired("profile")
}

func runCHC(cmd *cobra.Command, args []string) error {
	p, err := profile.LoadFile(chcProfilePath)
	if err != nil {
		return err
	}

	est := funding.EstimateCHC(p.Medical)

	if outputFmt == "json" {
		return output.JSON(est)
	}

	t := NewTerminal()
	fmt.Printf("CHC likelihood for %s: %s (score %d)\n",
		p.Contact.FullName, t.Color(ProbabilityColor(est.Probability), string(est.Probability)), est.Score)
	for _, c := range est.MatchedCriteria {
		fmt.Printf("  - %s\n", c)
	}
	if len(est.MatchedCriteria) == 0 {
		fmt.Println("  (no qualifying indicators recorded)")
	}
	return nil
}
