package match

import (
	"strconv"
	"strings"
)

// ParseDistanceKm extracts a kilometre figure from the provider's
// free-text distance field ("4.2 km", "approx. 7km away").
//
// An empty or unparseable string yields 0, i.e. the home scores as if
// it were next door. That matches long-standing report behavior and is
// pinned by tests; changing it would reshuffle existing rankings.
func ParseDistanceKm(s string) float64 {
	var b strings.Builder
	seenDigit := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			seenDigit = true
		case r == '.' && seenDigit:
			b.WriteRune(r)
		default:
			if seenDigit {
				// First number wins; ignore trailing text.
				goto done
			}
		}
	}
done:
	if !seenDigit {
		return 0
	}

	km, err := strconv.ParseFloat(strings.TrimSuffix(b.String(), "."), 64)
	if err != nil {
		return 0
	}
	return km
}
