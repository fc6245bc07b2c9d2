package matcher

import "strings"

// nameSuffixes are trailing generational suffixes stripped before taking the
// last name, ported from extract_last_name.
var nameSuffixes = []string{" jr.", " sr.", " iii", " ii", " iv", " v", " jr", " sr"}

// extractLastName is grounded on
// original_source/backend/betbck_scraper.py:603 (extract_last_name): strip a
// trailing suffix, then take the last single-space-delimited token (a
// hyphenated last name stays intact since the hyphen sits inside that
// token).
func extractLastName(full string) string {
	name := strings.TrimSpace(full)
	if name == "" {
		return ""
	}
	lower := strings.ToLower(name)
	for _, suf := range nameSuffixes {
		if strings.HasSuffix(lower, suf) {
			name = strings.TrimSpace(name[:len(name)-len(suf)])
			break
		}
	}
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return ""
	}
	return strings.ToLower(parts[len(parts)-1])
}

// tennisLastNameMatch is the "Tennis special case" of spec.md §4.4, grounded
// on betbck_scraper.py:431-470's TENNIS-LASTNAME branch: before falling back
// to token_set_ratio, try matching both players by last name alone, in both
// orientations.
func tennisLastNameMatch(gHome, gAway, eHome, eAway string) (matched, flipped bool) {
	gHomeLast := extractLastName(gHome)
	gAwayLast := extractLastName(gAway)
	eHomeLast := extractLastName(eHome)
	eAwayLast := extractLastName(eAway)

	if gHomeLast == "" || gAwayLast == "" || eHomeLast == "" || eAwayLast == "" {
		return false, false
	}

	if gHomeLast == eHomeLast && gAwayLast == eAwayLast {
		return true, false
	}
	if gHomeLast == eAwayLast && gAwayLast == eHomeLast {
		return true, true
	}
	return false, false
}

// looksLikeTennis mirrors the HTML wrapper class check the original branches
// the TENNIS-LASTNAME path on ('tennis' in game_wrapper_table's class list);
// the nearest equivalent field this port carries through is the league
// string attached to the secondary game and reference event.
func looksLikeTennis(league string) bool {
	return strings.Contains(strings.ToLower(league), "tennis")
}
