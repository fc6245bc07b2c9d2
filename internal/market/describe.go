package market

import "fmt"

// Describe renders the human-readable bet string for one EV row, per
// spec.md §4.5 step 6: "ML - <team>", "<team> <signed line>", "Over <line>",
// "Under <line>". Grounded on
// original_source/backend/utils/pod_utils.py:format_bet_description.
func Describe(market string, selection string, team string, line *float64) string {
	switch market {
	case "moneyline":
		return fmt.Sprintf("ML - %s", team)
	case "spread":
		return fmt.Sprintf("%s %s", team, signedLine(line))
	case "total":
		if selection == "Over" {
			return fmt.Sprintf("Over %s", formatLine(line))
		}
		return fmt.Sprintf("Under %s", formatLine(line))
	default:
		return team
	}
}

func signedLine(line *float64) string {
	if line == nil {
		return ""
	}
	if *line >= 0 {
		return fmt.Sprintf("+%s", formatLine(line))
	}
	return formatLine(line)
}

func formatLine(line *float64) string {
	if line == nil {
		return ""
	}
	return fmt.Sprintf("%g", *line)
}
