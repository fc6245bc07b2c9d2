// Package matcher implements the Event Matcher from spec.md §4.4: given a
// secondary-book game and a pool of reference events, select the best
// reference event (if any) by sport partition, time/league compatibility,
// and fuzzy team-name similarity in both orientations.
package matcher

import (
	"math"
	"strings"

	"github.com/XavierBriggs/pricedge/internal/sportclass"
	"github.com/XavierBriggs/pricedge/internal/teamname"
	"github.com/XavierBriggs/pricedge/pkg/models"
)

// Config holds every tunable named in spec.md §6.
type Config struct {
	FuzzyMatchThreshold         float64
	MinComponentMatchScore      float64
	OrientationConfidenceMargin float64
	TimeWindowSeconds           int64
	AliasTable                  *teamname.AliasTable
	MinorLeagueDenylist         map[string]bool
	// ManualOverrides pins a secondary game ref directly to a reference event
	// id, bypassing fuzzy matching (grounded on
	// original_source/backend/match_games.py's MANUAL_EVENT_OVERRIDES).
	ManualOverrides map[string]string
}

// DefaultConfig matches the defaults listed in spec.md §6.
func DefaultConfig() Config {
	return Config{
		FuzzyMatchThreshold:         65,
		MinComponentMatchScore:      60,
		OrientationConfidenceMargin: 10,
		TimeWindowSeconds:           86400,
		AliasTable:                  teamname.DefaultAliasTable(),
		MinorLeagueDenylist:         map[string]bool{},
		ManualOverrides:             map[string]string{},
	}
}

type candidate struct {
	event         models.ReferenceEvent
	normHome      string
	normAway      string
	sport         sportclass.Sport
}

// scored is one candidate's fuzzy-match result: the orientation it scored
// best under, that orientation's total score, and the two component scores
// (home-to-home, away-to-away under that orientation) the tie-break rule in
// bestMatch needs.
type scored struct {
	c           candidate
	score       float64
	orientation models.Orientation
	homeScore   float64
	awayScore   float64
}

// promote folds a newly scored candidate into the running best/runner-up
// pair, keeping the top two scores seen so far.
func promote(best, runnerUp *scored, s scored) (*scored, *scored) {
	if best == nil || s.score > best.score {
		return &s, best
	}
	if runnerUp == nil || s.score > runnerUp.score {
		return best, &s
	}
	return best, runnerUp
}

// Match runs the per-game algorithm of spec.md §4.4 over every secondary
// game, enforcing that each reference event id and each secondary game id
// appears in at most one MatchRecord.
func Match(cfg Config, referenceEvents []models.ReferenceEvent, secondaryGames []models.SecondaryGame) (
	matched []models.MatchRecord,
	unmatchedSecondary []models.UnmatchedSecondary,
	unmatchedReference []models.UnmatchedReference,
) {
	candidates := buildCandidates(cfg, referenceEvents)
	consumedEvents := make(map[string]bool, len(candidates))
	consumedSecondary := make(map[string]bool, len(secondaryGames))

	for _, g := range secondaryGames {
		secondaryRef := g.BetbckGameID

		if refID, ok := cfg.ManualOverrides[secondaryRef]; ok {
			if !consumedEvents[refID] {
				if rec, ok := matchFromOverride(cfg, candidates, refID, g); ok {
					matched = append(matched, rec)
					consumedEvents[refID] = true
					consumedSecondary[secondaryRef] = true
					continue
				}
			}
		}

		normHome := teamname.NormalizeWithAliases(g.HomeTeamRaw, cfg.AliasTable)
		normAway := teamname.NormalizeWithAliases(g.AwayTeamRaw, cfg.AliasTable)

		if normHome == "" || normAway == "" {
			unmatchedSecondary = append(unmatchedSecondary, models.UnmatchedSecondary{
				SecondaryGameRef: secondaryRef,
				Reason:           models.UnmatchedNormalizationFailed,
			})
			continue
		}

		sport := sportclass.Classify(normHome, normAway)
		if looksLikeTennis(g.League) {
			sport = sportclass.SportTennis
		}

		rec, reason, bestID, bestScore := bestMatch(cfg, candidates, consumedEvents, g, normHome, normAway, sport)
		if rec != nil {
			matched = append(matched, *rec)
			consumedEvents[rec.ReferenceEventID] = true
			consumedSecondary[secondaryRef] = true
			continue
		}

		unmatchedSecondary = append(unmatchedSecondary, models.UnmatchedSecondary{
			SecondaryGameRef:     secondaryRef,
			Reason:               reason,
			BestCandidateEventID: bestID,
			BestScore:            bestScore,
		})
	}

	for _, c := range candidates {
		if !consumedEvents[c.event.EventID] {
			unmatchedReference = append(unmatchedReference, models.UnmatchedReference{ReferenceEventID: c.event.EventID})
		}
	}

	return matched, unmatchedSecondary, unmatchedReference
}

func buildCandidates(cfg Config, events []models.ReferenceEvent) []candidate {
	out := make([]candidate, 0, len(events))
	for _, e := range events {
		normHome := teamname.NormalizeWithAliases(e.HomeTeam, cfg.AliasTable)
		normAway := teamname.NormalizeWithAliases(e.AwayTeam, cfg.AliasTable)

		if isMinorLeague(cfg.MinorLeagueDenylist, normHome, normAway) {
			continue // "already minor-league-filtered" input, per spec.md §4.4
		}

		s := sportclass.Classify(normHome, normAway)
		if looksLikeTennis(e.League) {
			s = sportclass.SportTennis
		}

		out = append(out, candidate{
			event:    e,
			normHome: normHome,
			normAway: normAway,
			sport:    s,
		})
	}
	return out
}

func isMinorLeague(denylist map[string]bool, normHome, normAway string) bool {
	if len(denylist) == 0 {
		return false
	}
	for _, tok := range strings.Fields(normHome + " " + normAway) {
		if denylist[tok] {
			return true
		}
	}
	return false
}

// isPropMarketByName flags reference "events" whose name carries a prop
// indicator rather than two competing teams (e.g. "Player to score 2+
// touchdowns"), grounded on match_games.py's is_prop_market_by_name.
func isPropMarketByName(home, away string) bool {
	indicators := []string{"to score", "to win mvp", "to lift the trophy", "props", "over/under"}
	joined := strings.ToLower(home + " " + away)
	for _, ind := range indicators {
		if strings.Contains(joined, ind) {
			return true
		}
	}
	return false
}

func bestMatch(
	cfg Config,
	candidates []candidate,
	consumed map[string]bool,
	g models.SecondaryGame,
	normHome, normAway string,
	sport sportclass.Sport,
) (*models.MatchRecord, models.UnmatchedReason, string, float64) {
	gJoined := normHome + " " + normAway
	gFlippedJoined := normAway + " " + normHome

	var best *scored
	var runnerUp *scored

	for _, c := range candidates {
		if consumed[c.event.EventID] {
			continue
		}
		if c.sport != sport {
			continue
		}
		if isPropMarketByName(c.normHome, c.normAway) {
			continue
		}
		if !withinTimeWindow(cfg.TimeWindowSeconds, g.EventDatetime, c.event.EventDatetime) {
			continue
		}
		if !leagueCompatible(g.League, c.event.League) {
			continue
		}
		if !englishDivisionsCompatible(normHome, normAway, c.normHome, c.normAway) {
			continue
		}

		var s scored

		// Tennis special case: try last-name matching in both orientations
		// before falling back to token_set_ratio.
		if sport == sportclass.SportTennis {
			if matched, flipped := tennisLastNameMatch(normHome, normAway, c.normHome, c.normAway); matched {
				orientation := models.OrientationDirect
				if flipped {
					orientation = models.OrientationFlipped
				}
				s = scored{c: c, score: 100, orientation: orientation, homeScore: 100, awayScore: 100}
				best, runnerUp = promote(best, runnerUp, s)
				if best.score >= 95 {
					break
				}
				continue
			}
		}

		eJoined := c.normHome + " " + c.normAway
		eFlipped := c.normAway + " " + c.normHome

		scoreDirect := tokenSetRatio(gJoined, eJoined)
		scoreFlipped := tokenSetRatio(gFlippedJoined, eFlipped)

		// token_set_ratio ignores token order, so the two joined scores are
		// equal; the orientation comes from which pairing of the component
		// names (home-to-home or home-to-away) scores higher.
		directHome, directAway := tokenSetRatio(normHome, c.normHome), tokenSetRatio(normAway, c.normAway)
		flipHome, flipAway := tokenSetRatio(normHome, c.normAway), tokenSetRatio(normAway, c.normHome)

		if directHome+directAway >= flipHome+flipAway {
			s = scored{c: c, score: scoreDirect, orientation: models.OrientationDirect,
				homeScore: directHome, awayScore: directAway}
		} else {
			s = scored{c: c, score: scoreFlipped, orientation: models.OrientationFlipped,
				homeScore: flipHome, awayScore: flipAway}
		}

		best, runnerUp = promote(best, runnerUp, s)

		if best.score >= 95 {
			break
		}
	}

	if best == nil {
		return nil, models.UnmatchedNoCandidateEvent, "", 0
	}

	best = applyComponentTieBreak(cfg, best, runnerUp)

	if best.score < cfg.FuzzyMatchThreshold {
		return nil, models.UnmatchedNoCandidateEvent, best.c.event.EventID, best.score
	}

	rec := &models.MatchRecord{
		ReferenceEventID:  best.c.event.EventID,
		SecondaryGameRef:  g.BetbckGameID,
		Orientation:       best.orientation,
		Score:             best.score,
		Sport:             string(sport),
		ReferenceHomeTeam: best.c.event.HomeTeam,
		ReferenceAwayTeam: best.c.event.AwayTeam,
		SecondaryHomeTeam: g.HomeTeamRaw,
		SecondaryAwayTeam: g.AwayTeamRaw,
	}
	return rec, "", "", 0
}

// applyComponentTieBreak is the tie-break/margin rule of spec.md §4.4: when
// two candidates score within OrientationConfidenceMargin of each other,
// prefer the one matching on both component names at >= MinComponentMatchScore;
// otherwise keep the absolute maximum.
func applyComponentTieBreak(cfg Config, best, runnerUp *scored) *scored {
	if runnerUp == nil || best.score-runnerUp.score >= cfg.OrientationConfidenceMargin {
		return best
	}
	bestSatisfies := best.homeScore >= cfg.MinComponentMatchScore && best.awayScore >= cfg.MinComponentMatchScore
	runnerUpSatisfies := runnerUp.homeScore >= cfg.MinComponentMatchScore && runnerUp.awayScore >= cfg.MinComponentMatchScore
	if !bestSatisfies && runnerUpSatisfies {
		return runnerUp
	}
	return best
}

func matchFromOverride(cfg Config, candidates []candidate, refID string, g models.SecondaryGame) (models.MatchRecord, bool) {
	for _, c := range candidates {
		if c.event.EventID == refID {
			return models.MatchRecord{
				ReferenceEventID:  refID,
				SecondaryGameRef:  g.BetbckGameID,
				Orientation:       models.OrientationDirect,
				Score:             100,
				Sport:             string(c.sport),
				ReferenceHomeTeam: c.event.HomeTeam,
				ReferenceAwayTeam: c.event.AwayTeam,
				SecondaryHomeTeam: g.HomeTeamRaw,
				SecondaryAwayTeam: g.AwayTeamRaw,
			}, true
		}
	}
	return models.MatchRecord{}, false
}

func withinTimeWindow(windowSeconds int64, a, b *int64) bool {
	if a == nil || b == nil {
		return true
	}
	diff := *a - *b
	if diff < 0 {
		diff = -diff
	}
	return diff <= windowSeconds
}

// leagueCompatible covers the league-string half of match_games.py's
// is_league_compatible: when both sides carry a league string that plainly
// names different competitions, skip; otherwise allow. The team-membership
// half (English football division tables) lives in league.go and is checked
// separately in bestMatch, since it depends on team names, not league
// strings.
func leagueCompatible(a, b string) bool {
	if a == "" || b == "" {
		return true
	}
	return strings.EqualFold(a, b) || leagueCategory(a) == leagueCategory(b)
}

func leagueCategory(league string) string {
	l := strings.ToLower(league)
	switch {
	case strings.Contains(l, "premier"):
		return "epl"
	case strings.Contains(l, "championship"):
		return "championship"
	case strings.Contains(l, "league one"):
		return "league1"
	case strings.Contains(l, "league two"):
		return "league2"
	case strings.Contains(l, "champions league"), strings.Contains(l, "europa"):
		return "cup"
	case strings.Contains(l, "international"), strings.Contains(l, "world cup"), strings.Contains(l, "nations"):
		return "international"
	default:
		return l
	}
}

// roundScore rounds a 0-100 score to a tenth, matching the precision the
// original's rapidfuzz returns.
func roundScore(v float64) float64 {
	return math.Round(v*10) / 10
}
