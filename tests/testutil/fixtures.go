// Package testutil builds sample ReferenceEvent/SecondaryGame/EVOpportunity
// values for table-driven tests, following the teacher's override-function
// fixture pattern (normalizer/tests/testutil originally built RawOdds the
// same way).
package testutil

import "github.com/XavierBriggs/pricedge/pkg/models"

// ReferenceEventFixture creates a test ReferenceEvent with sensible defaults:
// a single full-game period carrying symmetric 1.91/1.91 (about -110)
// moneyline, -7.5 spread and 220.5 total markets.
func ReferenceEventFixture(overrides ...func(*models.ReferenceEvent)) models.ReferenceEvent {
	event := models.ReferenceEvent{
		EventID:       "ref-event-1",
		HomeTeam:      "Los Angeles Lakers",
		AwayTeam:      "Boston Celtics",
		EventDatetime: Int64Ptr(1700000000),
		League:        "nba",
		Sport:         "basketball",
		Periods: map[int]models.PeriodMarkets{
			0: {
				MoneyLine: &models.MoneylinePrices{
					HomeDecimal: Float64Ptr(1.91),
					AwayDecimal: Float64Ptr(1.91),
				},
				Spreads: map[string]models.SpreadMarket{
					"-7.5": {
						Hdp:         -7.5,
						HomeDecimal: 1.91,
						AwayDecimal: 1.91,
					},
				},
				Totals: map[string]models.TotalMarket{
					"220.5": {
						Points:       220.5,
						OverDecimal:  1.91,
						UnderDecimal: 1.91,
					},
				},
			},
		},
	}

	for _, override := range overrides {
		override(&event)
	}
	return event
}

// SecondaryGameFixture creates a test SecondaryGame with sensible defaults,
// priced to roughly mirror ReferenceEventFixture's full-game market.
func SecondaryGameFixture(overrides ...func(*models.SecondaryGame)) models.SecondaryGame {
	game := models.SecondaryGame{
		BetbckGameID: "sec-game-1",
		HomeTeamRaw:  "Los Angeles Lakers",
		AwayTeamRaw:  "Boston Celtics",
		EventDatetime: Int64Ptr(1700000000),
		League:        "NBA",
		FullGame: models.MarketPrices{
			HomeMoneylineAmerican: IntPtr(-110),
			AwayMoneylineAmerican: IntPtr(-110),
			HomeSpreads: []models.SpreadSide{
				{Line: -7.5, Odds: -110},
			},
			AwaySpreads: []models.SpreadSide{
				{Line: 7.5, Odds: -110},
			},
			GameTotalLine:      Float64Ptr(220.5),
			GameTotalOverOdds:  IntPtr(-110),
			GameTotalUnderOdds: IntPtr(-110),
		},
	}

	for _, override := range overrides {
		override(&game)
	}
	return game
}

// SoftPricedSecondary returns a SecondaryGame whose home moneyline is priced
// generously against ReferenceEventFixture's fair line, for a positive-EV
// test case.
func SoftPricedSecondary() models.SecondaryGame {
	return SecondaryGameFixture(func(g *models.SecondaryGame) {
		g.FullGame.HomeMoneylineAmerican = IntPtr(150)
	})
}

// FirstHalfSecondary adds a first-half market block to a SecondaryGame, for
// period-pairing and period-mismatch test cases.
func FirstHalfSecondary(g models.SecondaryGame) models.SecondaryGame {
	g.FirstHalf = &models.MarketPrices{
		HomeMoneylineAmerican: IntPtr(-120),
		AwayMoneylineAmerican: IntPtr(100),
	}
	return g
}

// MatchRecordFixture creates a test MatchRecord pairing the two fixture
// defaults above in direct orientation.
func MatchRecordFixture(overrides ...func(*models.MatchRecord)) models.MatchRecord {
	rec := models.MatchRecord{
		ReferenceEventID:  "ref-event-1",
		SecondaryGameRef:  "sec-game-1",
		Orientation:       models.OrientationDirect,
		Score:             92.5,
		Sport:             "basketball",
		ReferenceHomeTeam: "Los Angeles Lakers",
		ReferenceAwayTeam: "Boston Celtics",
		SecondaryHomeTeam: "Los Angeles Lakers",
		SecondaryAwayTeam: "Boston Celtics",
	}

	for _, override := range overrides {
		override(&rec)
	}
	return rec
}

// EVOpportunityFixture creates a test EVOpportunity row.
func EVOpportunityFixture(overrides ...func(*models.EVOpportunity)) models.EVOpportunity {
	opp := models.EVOpportunity{
		ReferenceEventID:      "ref-event-1",
		Market:                models.MarketMoneyline,
		Period:                0,
		Selection:             models.SelectionHome,
		ReferenceFairAmerican: -110,
		SecondaryAmerican:     150,
		EVRatio:               12.5,
		HomeTeam:              "Los Angeles Lakers",
		AwayTeam:              "Boston Celtics",
		Description:           "Los Angeles Lakers ML",
	}

	for _, override := range overrides {
		override(&opp)
	}
	return opp
}

// Float64Ptr returns a pointer to a float64.
func Float64Ptr(v float64) *float64 {
	return &v
}

// IntPtr returns a pointer to an int.
func IntPtr(v int) *int {
	return &v
}

// Int64Ptr returns a pointer to an int64.
func Int64Ptr(v int64) *int64 {
	return &v
}
