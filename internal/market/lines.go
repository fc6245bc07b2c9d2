package market

import (
	"strconv"
	"strings"
)

// NormalizeLine applies the Asian-line averaging rule from spec.md §3: a
// split/Asian line is two comma- or slash-separated values averaged to one
// quarter-step line (e.g. "+1, +1.5" -> +1.25); the symbol "½" maps to .5.
// Grounded on original_source/backend/utils/pod_utils.py:normalize_total_line.
func NormalizeLine(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "½", ".5")

	var sep string
	switch {
	case strings.Contains(s, ","):
		sep = ","
	case strings.Contains(s, "/"):
		sep = "/"
	}

	if sep == "" {
		v, err := parseSignedFloat(s)
		if err != nil {
			return 0, false
		}
		return v, true
	}

	parts := strings.SplitN(s, sep, 2)
	if len(parts) != 2 {
		return 0, false
	}
	a, errA := parseSignedFloat(strings.TrimSpace(parts[0]))
	b, errB := parseSignedFloat(strings.TrimSpace(parts[1]))
	if errA != nil || errB != nil {
		return 0, false
	}
	return (a + b) / 2.0, true
}

func parseSignedFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "+")
	return strconv.ParseFloat(s, 64)
}

const lineTolerance = 0.01

// linesEqual reports whether two lines match within the 0.01 tolerance spec.md
// §4.5 requires for spread/total pairing.
func linesEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= lineTolerance
}
