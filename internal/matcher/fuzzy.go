package matcher

import (
	"sort"
	"strings"

	edlib "github.com/hbollon/go-edlib"
)

// simpleRatio scores two strings on a 0-100 scale using go-edlib's
// Jaro-Winkler similarity as the base metric (grounded on
// alwwithu-multiScraperAPI/scraper/normalizer.go's findBestSimilarTeam, which
// picks the best of Levenshtein/Jaro/JaroWinkler for team-name comparison;
// JaroWinkler alone is used here since it already favors common prefixes,
// which matters for team names more than edit distance does).
func simpleRatio(a, b string) float64 {
	if a == "" && b == "" {
		return 100
	}
	sim, err := edlib.StringsSimilarity(a, b, edlib.JaroWinkler)
	if err != nil {
		return 0
	}
	return float64(sim) * 100.0
}

// tokenSetRatio reproduces rapidfuzz's token_set_ratio definition: split both
// strings into token sets, score the sorted shared-token string against each
// side's shared-plus-leftover string, and those two strings against each
// other, and take the best of the three comparisons. This is the Go-native
// equivalent the original Python's match_games.py leans on via fuzzywuzzy.
func tokenSetRatio(a, b string) float64 {
	tokensA := tokenSet(a)
	tokensB := tokenSet(b)

	intersection, onlyA, onlyB := splitTokens(tokensA, tokensB)

	sortedSect := strings.Join(intersection, " ")
	sectDiffA := strings.TrimSpace(sortedSect + " " + strings.Join(onlyA, " "))
	sectDiffB := strings.TrimSpace(sortedSect + " " + strings.Join(onlyB, " "))

	best := simpleRatio(sortedSect, sectDiffA)
	if r := simpleRatio(sortedSect, sectDiffB); r > best {
		best = r
	}
	if r := simpleRatio(sectDiffA, sectDiffB); r > best {
		best = r
	}
	return best
}

func tokenSet(s string) []string {
	fields := strings.Fields(strings.ToLower(s))
	seen := make(map[string]bool, len(fields))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out
}

func splitTokens(a, b []string) (intersection, onlyA, onlyB []string) {
	bSet := make(map[string]bool, len(b))
	for _, t := range b {
		bSet[t] = true
	}
	aSet := make(map[string]bool, len(a))
	for _, t := range a {
		aSet[t] = true
	}
	for _, t := range a {
		if bSet[t] {
			intersection = append(intersection, t)
		} else {
			onlyA = append(onlyA, t)
		}
	}
	for _, t := range b {
		if !aSet[t] {
			onlyB = append(onlyB, t)
		}
	}
	return intersection, onlyA, onlyB
}
