// Package sportclass maps a pair of normalized team names to a sport tag,
// partitioning events before the matcher runs so it never compares, say, an
// NBA game to a Championship soccer fixture.
package sportclass

import "strings"

type Sport string

const (
	SportBaseball   Sport = "baseball"
	SportBasketball Sport = "basketball"
	SportFootball   Sport = "football"
	SportSoccer     Sport = "soccer"
	SportHockey     Sport = "hockey"
	SportCombat     Sport = "combat"
	SportTennis     Sport = "tennis"
	SportOther      Sport = "other"
)

// priority is the fixed dispatch order: the first sport whose keyword set
// intersects the joined name wins.
var priority = []Sport{
	SportTennis, SportBaseball, SportBasketball, SportFootball, SportSoccer, SportHockey, SportCombat,
}

// keywords is grounded on original_source/backend/match_games.py's
// determine_sport_from_teams team-name keyword lists.
var keywords = map[Sport]map[string]bool{
	SportBaseball: set("yankees", "red sox", "dodgers", "braves", "astros", "cubs", "mets",
		"phillies", "cardinals", "brewers", "padres", "giants", "mariners", "rangers", "rays",
		"orioles", "twins", "guardians", "tigers", "royals", "white sox", "angels", "athletics",
		"diamondbacks", "rockies", "marlins", "nationals", "pirates", "reds", "blue jays"),
	SportBasketball: set("lakers", "celtics", "warriors", "nets", "knicks", "bulls", "heat",
		"clippers", "nuggets", "bucks", "suns", "76ers", "sixers", "mavericks", "mavs", "hawks",
		"raptors", "jazz", "kings", "pelicans", "grizzlies", "timberwolves", "thunder", "spurs",
		"trail blazers", "blazers", "pacers", "pistons", "hornets", "magic", "wizards", "cavaliers",
		"cavs"),
	SportFootball: set("patriots", "cowboys", "packers", "steelers", "49ers", "chiefs", "eagles",
		"ravens", "bills", "dolphins", "jets", "giants", "commanders", "bears", "lions", "vikings",
		"saints", "falcons", "buccaneers", "panthers", "rams", "seahawks", "cardinals", "broncos",
		"chargers", "raiders", "titans", "colts", "jaguars", "texans", "browns", "bengals"),
	SportSoccer: set("united", "city", "arsenal", "chelsea", "liverpool", "tottenham", "everton",
		"psg", "barcelona", "real madrid", "atletico", "juventus", "milan", "inter", "bayern",
		"dortmund", "ajax", "porto", "benfica", "celtic", "rangers fc", "villa", "wolves", "fulham"),
	SportHockey: set("bruins", "maple leafs", "canadiens", "rangers", "islanders", "flyers",
		"penguins", "capitals", "devils", "blackhawks", "red wings", "predators", "blues", "stars",
		"avalanche", "golden knights", "kraken", "ducks", "kings", "sharks", "oilers", "flames",
		"canucks", "jets", "wild", "lightning", "panthers", "hurricanes", "sabres", "senators",
		"blue jackets"),
}

// combatFirstNames classifies individual-athlete combat sports by first-name
// token, since those events have no team keyword to match on.
var combatFirstNames = set("conor", "khabib", "jon", "israel", "kamaru", "francis", "alexander",
	"charles", "dustin", "max", "tyson", "anthony", "deontay", "canelo")

func set(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// Classify joins the two normalized names and returns the first sport whose
// keyword set intersects, in fixed priority order, or SportOther.
func Classify(normalizedHome, normalizedAway string) Sport {
	joined := strings.ToLower(normalizedHome + " " + normalizedAway)
	tokens := strings.Fields(joined)

	for _, sport := range priority {
		kw := keywords[sport]
		for _, tok := range tokens {
			if kw[tok] {
				return sport
			}
		}
		// Multi-word keywords (e.g. "real madrid") need substring matching.
		for phrase := range kw {
			if strings.Contains(phrase, " ") && strings.Contains(joined, phrase) {
				return sport
			}
		}
	}

	for _, tok := range tokens {
		if combatFirstNames[tok] {
			return SportCombat
		}
	}

	return SportOther
}
