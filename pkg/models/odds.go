// Package models holds the data shapes shared by every pure component:
// reference events, secondary-book games, match records, and EV opportunity
// rows. Nothing in this package performs I/O or carries mutable state.
package models

// VigMethod records which no-vig strategy produced a fair price.
type VigMethod string

const (
	VigMethodPower        VigMethod = "power"
	VigMethodProportional VigMethod = "proportional"
	VigMethodNone         VigMethod = "none"
)

// BookType classifies a sportsbook as sharp (reference) or soft (secondary).
type BookType string

const (
	BookTypeSharp BookType = "sharp"
	BookTypeSoft  BookType = "soft"
)

// MoneylinePrices holds raw decimal odds plus their no-vig fair equivalents
// for a 2-way or 3-way moneyline market. Draw is nil for sports without draws.
type MoneylinePrices struct {
	HomeDecimal *float64 `json:"home_decimal,omitempty"`
	DrawDecimal *float64 `json:"draw_decimal,omitempty"`
	AwayDecimal *float64 `json:"away_decimal,omitempty"`

	NVPHomeDecimal *float64 `json:"nvp_home_decimal,omitempty"`
	NVPDrawDecimal *float64 `json:"nvp_draw_decimal,omitempty"`
	NVPAwayDecimal *float64 `json:"nvp_away_decimal,omitempty"`

	NVPHomeAmerican *int `json:"nvp_home_american,omitempty"`
	NVPDrawAmerican *int `json:"nvp_draw_american,omitempty"`
	NVPAwayAmerican *int `json:"nvp_away_american,omitempty"`

	VigMethod VigMethod `json:"vig_method,omitempty"`
}

// SpreadMarket is one handicap line: the home leg and its mirror away leg
// (hdp_away == -hdp_home, enforced at pairing time, not here).
type SpreadMarket struct {
	Hdp float64 `json:"hdp"` // home-perspective line

	HomeDecimal float64 `json:"home_decimal"`
	AwayDecimal float64 `json:"away_decimal"`

	NVPHomeDecimal  float64 `json:"nvp_home_decimal"`
	NVPAwayDecimal  float64 `json:"nvp_away_decimal"`
	NVPHomeAmerican int     `json:"nvp_home_american"`
	NVPAwayAmerican int     `json:"nvp_away_american"`

	VigMethod VigMethod `json:"vig_method,omitempty"`
}

// TotalMarket is one over/under line.
type TotalMarket struct {
	Points float64 `json:"points"`

	OverDecimal  float64 `json:"over_decimal"`
	UnderDecimal float64 `json:"under_decimal"`

	NVPOverDecimal   float64 `json:"nvp_over_decimal"`
	NVPUnderDecimal  float64 `json:"nvp_under_decimal"`
	NVPOverAmerican  int     `json:"nvp_over_american"`
	NVPUnderAmerican int     `json:"nvp_under_american"`

	VigMethod VigMethod `json:"vig_method,omitempty"`
}

// PeriodMarkets is every market offered for one period of one reference event.
type PeriodMarkets struct {
	MoneyLine *MoneylinePrices        `json:"money_line,omitempty"`
	Spreads   map[string]SpreadMarket `json:"spreads,omitempty"`
	Totals    map[string]TotalMarket  `json:"totals,omitempty"`
}

// ReferenceEvent is a sharp-book event with its markets per period (fair
// prices are attached by market.EnrichReferenceEvent). Period keys are
// integers; encoding/json accepts their "0"/"1" string forms, but a
// "num_0"/"num_1" key makes decoding fail.
type ReferenceEvent struct {
	EventID       string                `json:"event_id"`
	HomeTeam      string                `json:"home_team"`
	AwayTeam      string                `json:"away_team"`
	EventDatetime *int64                `json:"event_datetime,omitempty"` // unix seconds, UTC
	League        string                `json:"league,omitempty"`
	Sport         string                `json:"sport,omitempty"`
	Periods       map[int]PeriodMarkets `json:"periods"`
}

// SpreadSide is one posted spread leg from the secondary book.
type SpreadSide struct {
	Line float64 `json:"line"`
	Odds int     `json:"odds"` // American
}

// TotalSide is one posted total leg from the secondary book, either a
// per-side list entry or (via MarketPrices.GameTotal*) the aggregate form.
type TotalSide struct {
	Line float64 `json:"line"`
	Odds int     `json:"odds"`
}

// MarketPrices is everything the secondary book posted for one period.
type MarketPrices struct {
	HomeMoneylineAmerican *int `json:"home_moneyline_american,omitempty"`
	AwayMoneylineAmerican *int `json:"away_moneyline_american,omitempty"`
	DrawMoneylineAmerican *int `json:"draw_moneyline_american,omitempty"`

	HomeSpreads []SpreadSide `json:"home_spreads,omitempty"`
	AwaySpreads []SpreadSide `json:"away_spreads,omitempty"`

	// Aggregate total form: one line, one over price, one under price.
	GameTotalLine       *float64 `json:"game_total_line,omitempty"`
	GameTotalOverOdds   *int     `json:"game_total_over_odds,omitempty"`
	GameTotalUnderOdds  *int     `json:"game_total_under_odds,omitempty"`

	// Per-side total list form, used when the book posts multiple lines.
	OverTotals  []TotalSide `json:"over_totals,omitempty"`
	UnderTotals []TotalSide `json:"under_totals,omitempty"`
}

// SecondaryGame is one scraped game from the secondary book, raw (unmatched,
// unnormalized team names).
type SecondaryGame struct {
	BetbckGameID    string         `json:"betbck_game_id"`
	HomeTeamRaw     string         `json:"home_team_raw"`
	AwayTeamRaw     string         `json:"away_team_raw"`
	EventDatetime   *int64         `json:"event_datetime,omitempty"`
	League          string         `json:"league,omitempty"`
	FullGame        MarketPrices   `json:"full_game"`
	FirstHalf       *MarketPrices  `json:"first_half,omitempty"`

	// Diagnostic passthrough from the scraper collaborator; never read by the
	// core, only carried through to the sink for operator debugging.
	BetbckDisplayedLocal   string `json:"betbck_displayed_local,omitempty"`
	BetbckDisplayedVisitor string `json:"betbck_displayed_visitor,omitempty"`
	BetbckPayload          string `json:"betbck_payload,omitempty"`
}
