package matcher

import "strings"

// englishDivision names the four top flights of the English football
// pyramid this table distinguishes between.
type englishDivision string

const (
	divPremier      englishDivision = "Premier"
	divChampionship englishDivision = "Championship"
	divLeagueOne    englishDivision = "League1"
	divLeagueTwo    englishDivision = "League2"
)

// englishDivisionTeams is grounded on original_source/backend/match_games.py's
// is_league_compatible team-name tables: a secondary book rarely labels its
// league field precisely, so club membership in one of these four divisions
// is used as the league signal instead. Prevents mismatches like Manchester
// United (Premier League) vs Leeds United (Championship); two clubs of the
// same division, such as Wigan Athletic and Wycombe Wanderers, still pass.
var englishDivisionTeams = map[englishDivision][]string{
	divPremier: {
		"manchester united", "manchester city", "arsenal", "chelsea", "liverpool",
		"tottenham", "newcastle", "brighton", "west ham", "crystal palace",
		"fulham", "brentford", "everton", "nottingham forest", "sheffield united",
		"burnley", "luton town", "bournemouth", "wolves", "wolverhampton",
	},
	divChampionship: {
		"leeds united", "leicester city", "southampton", "norwich city", "west brom",
		"hull city", "middlesbrough", "coventry city", "sunderland", "birmingham city",
		"blackburn rovers", "bristol city", "cardiff city", "huddersfield town",
		"ipswich town", "millwall", "plymouth argyle", "preston north end",
		"queens park rangers", "rotherham united", "sheffield wednesday",
		"stoke city", "swansea city", "watford",
	},
	divLeagueOne: {
		"barnsley", "blackpool", "bolton wanderers", "bristol rovers", "burton albion",
		"cambridge united", "carlisle united", "charlton athletic", "cheltenham town",
		"derby county", "exeter city", "fleetwood town", "grimsby town",
		"leyton orient", "lincoln city", "northampton town", "oxford united",
		"peterborough united", "port vale", "reading", "shrewsbury town",
		"stevenage", "wigan athletic", "wycombe wanderers",
	},
	divLeagueTwo: {
		"accrington stanley", "afc wimbledon", "barrow", "bradford city",
		"colchester united", "crewe alexandra", "crawley town", "doncaster rovers",
		"forest green rovers", "gillingham", "harrogate town", "mansfield town",
		"mk dons", "morecambe", "newport county", "notts county", "salford city",
		"stockport county", "sutton united", "swindon town", "tranmere rovers",
		"walsall",
	},
}

// englishDivisionsFor returns every division a team-name pair's tokens land
// in (usually zero or one; kept as a slice since a badly normalized name
// could substring-match more than one list).
func englishDivisionsFor(home, away string) []englishDivision {
	joined := strings.ToLower(home + " " + away)
	var divisions []englishDivision
	for _, div := range []englishDivision{divPremier, divChampionship, divLeagueOne, divLeagueTwo} {
		for _, team := range englishDivisionTeams[div] {
			if strings.Contains(joined, team) {
				divisions = append(divisions, div)
				break
			}
		}
	}
	return divisions
}

// englishDivisionsCompatible mirrors is_league_compatible's division check:
// if both sides name an English club and none of their divisions overlap,
// the games are almost certainly different competitions.
func englishDivisionsCompatible(aHome, aAway, bHome, bAway string) bool {
	aDivs := englishDivisionsFor(aHome, aAway)
	bDivs := englishDivisionsFor(bHome, bAway)
	if len(aDivs) == 0 || len(bDivs) == 0 {
		return true
	}
	for _, a := range aDivs {
		for _, b := range bDivs {
			if a == b {
				return true
			}
		}
	}
	return false
}
