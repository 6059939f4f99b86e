package cli

import (
	"os"

	"golang.org/x/term"

	"github.com/carewise/carematch/internal/funding"
	"github.com/carewise/carematch/internal/homes"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
	ColorGray   = "\033[90m"
)

// Terminal provides terminal-aware output utilities
type Terminal struct {
	IsTerminal bool
	UseColor   bool
}

// NewTerminal creates a new Terminal instance
func NewTerminal() *Terminal {
	isTerminal := term.IsTerminal(int(os.Stdout.Fd()))
	return &Terminal{
		IsTerminal: isTerminal,
		UseColor:   isTerminal, // Only use color in terminal
	}
}

// Color wraps text in ANSI color codes (terminal only)
func (t *Terminal) Color(color, text string) string {
	if !t.UseColor {
		return text
	}
	return color + text + ColorReset
}

// RatingColor returns the color for a CQC rating tier
func RatingColor(r homes.CQCRating) string {
	switch r {
	case homes.CQCOutstanding:
		return ColorCyan
	case homes.CQCGood:
		return ColorGreen
	case homes.CQCRequiresImprovement:
		return ColorYellow
	case homes.CQCInadequate:
		return ColorRed
	default:
		return ColorGray
	}
}

// ProbabilityColor returns the color for a CHC likelihood band
func ProbabilityColor(p funding.Probability) string {
	switch p {
	case funding.ProbabilityHigh:
		return ColorGreen
	case funding.ProbabilityMedium:
		return ColorYellow
	default:
		return ColorGray
	}
}
