package market

import (
	"testing"

	"github.com/XavierBriggs/pricedge/internal/perr"
	"github.com/XavierBriggs/pricedge/pkg/models"
	"github.com/XavierBriggs/pricedge/tests/testutil"
)

func enrichedFixture(overrides ...func(*models.ReferenceEvent)) models.ReferenceEvent {
	return EnrichReferenceEvent(testutil.ReferenceEventFixture(overrides...))
}

func findRow(rows []models.EVOpportunity, market models.MarketFamily, selection models.SelectionSide) (models.EVOpportunity, bool) {
	for _, r := range rows {
		if r.Market == market && r.Selection == selection {
			return r, true
		}
	}
	return models.EVOpportunity{}, false
}

func TestAnalyzeMoneylineBothSidesPairAgainstEvenMoneyFairLine(t *testing.T) {
	ref := enrichedFixture()
	sec := testutil.SecondaryGameFixture()

	rows, diags := Analyze(ref, sec, models.OrientationDirect)
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %+v", diags)
	}

	home, ok := findRow(rows, models.MarketMoneyline, models.SelectionHome)
	if !ok {
		t.Fatal("expected a home moneyline row")
	}
	if home.ReferenceFairAmerican != 100 {
		t.Fatalf("expected even-money fair price, got %d", home.ReferenceFairAmerican)
	}
	if home.EVRatio >= 0 {
		t.Fatalf("-110 against an even-money fair line is -EV, got %v", home.EVRatio)
	}

	away, ok := findRow(rows, models.MarketMoneyline, models.SelectionAway)
	if !ok {
		t.Fatal("expected an away moneyline row")
	}
	if away.EVRatio >= 0 {
		t.Fatalf("-110 against an even-money fair line is -EV, got %v", away.EVRatio)
	}
}

func TestAnalyzeSoftPricedMoneylineIsPositiveEV(t *testing.T) {
	ref := enrichedFixture()
	sec := testutil.SoftPricedSecondary()

	rows, diags := Analyze(ref, sec, models.OrientationDirect)
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %+v", diags)
	}

	home, ok := findRow(rows, models.MarketMoneyline, models.SelectionHome)
	if !ok {
		t.Fatal("expected a home moneyline row")
	}
	if home.EVRatio != 25.0 {
		t.Fatalf("+150 against a 2.00 fair decimal should be exactly 25%% EV, got %v", home.EVRatio)
	}
	if home.Description != "ML - Los Angeles Lakers" {
		t.Fatalf("got description %q", home.Description)
	}
}

func TestAnalyzeSpreadPairsBothLegsWithCorrectSignedLine(t *testing.T) {
	ref := enrichedFixture()
	sec := testutil.SecondaryGameFixture()

	rows, _ := Analyze(ref, sec, models.OrientationDirect)

	home, ok := findRow(rows, models.MarketSpread, models.SelectionHome)
	if !ok {
		t.Fatal("expected a home spread row")
	}
	if home.Line == nil || *home.Line != -7.5 {
		t.Fatalf("expected home leg line -7.5, got %v", home.Line)
	}

	away, ok := findRow(rows, models.MarketSpread, models.SelectionAway)
	if !ok {
		t.Fatal("expected an away spread row")
	}
	if away.Line == nil || *away.Line != 7.5 {
		t.Fatalf("expected away leg line +7.5, got %v", away.Line)
	}
}

func TestAnalyzeSpreadLegWithNoMatchingReferenceLineProducesNoRow(t *testing.T) {
	ref := enrichedFixture()
	sec := testutil.SecondaryGameFixture(func(g *models.SecondaryGame) {
		g.FullGame.HomeSpreads = []models.SpreadSide{{Line: -3.5, Odds: -110}}
		g.FullGame.AwaySpreads = []models.SpreadSide{{Line: 3.5, Odds: -110}}
	})

	rows, _ := Analyze(ref, sec, models.OrientationDirect)
	if _, ok := findRow(rows, models.MarketSpread, models.SelectionHome); ok {
		t.Fatal("a -3.5 secondary leg should not pair against a -7.5 reference line")
	}
}

func TestAnalyzeAggregateTotalPicksBestEVAcrossCandidateLines(t *testing.T) {
	ref := testutil.ReferenceEventFixture(func(e *models.ReferenceEvent) {
		pm := e.Periods[0]
		pm.Totals = map[string]models.TotalMarket{
			"weak": {Points: 220.5, NVPOverDecimal: 2.0, NVPOverAmerican: 100, NVPUnderDecimal: 2.0, NVPUnderAmerican: 100},
			"rich": {Points: 220.5, NVPOverDecimal: 1.5, NVPOverAmerican: -200, NVPUnderDecimal: 3.0, NVPUnderAmerican: 200},
		}
		e.Periods[0] = pm
	})
	sec := testutil.SecondaryGameFixture()

	rows, _ := Analyze(ref, sec, models.OrientationDirect)

	over, ok := findRow(rows, models.MarketTotal, models.SelectionOver)
	if !ok {
		t.Fatal("expected one aggregate Over row")
	}
	if over.ReferenceFairAmerican != -200 {
		t.Fatalf("a -110 bet against a 1.50 fair decimal has more EV than against a 2.00 fair decimal; expected the richer line to win, got fair=%d", over.ReferenceFairAmerican)
	}
}

func TestAnalyzePerSideTotalListProducesOneRowPerMatchingLine(t *testing.T) {
	ref := testutil.ReferenceEventFixture(func(e *models.ReferenceEvent) {
		pm := e.Periods[0]
		pm.Totals = map[string]models.TotalMarket{
			"220.5": {Points: 220.5, NVPOverDecimal: 2.0, NVPOverAmerican: 100, NVPUnderDecimal: 2.0, NVPUnderAmerican: 100},
		}
		e.Periods[0] = pm
	})
	sec := testutil.SecondaryGameFixture(func(g *models.SecondaryGame) {
		g.FullGame.GameTotalLine = nil
		g.FullGame.GameTotalOverOdds = nil
		g.FullGame.GameTotalUnderOdds = nil
		g.FullGame.OverTotals = []models.TotalSide{{Line: 220.5, Odds: -110}}
		g.FullGame.UnderTotals = []models.TotalSide{{Line: 220.5, Odds: -110}}
	})

	rows, _ := Analyze(ref, sec, models.OrientationDirect)

	var overCount, underCount int
	for _, r := range rows {
		if r.Market != models.MarketTotal {
			continue
		}
		switch r.Selection {
		case models.SelectionOver:
			overCount++
		case models.SelectionUnder:
			underCount++
		}
	}
	if overCount != 1 || underCount != 1 {
		t.Fatalf("expected exactly one Over and one Under row, got over=%d under=%d", overCount, underCount)
	}
}

func TestAnalyzePeriodSeparationAbortsFullyWhenReferenceHasNeitherPeriod(t *testing.T) {
	ref := models.ReferenceEvent{EventID: "ref-1", HomeTeam: "A", AwayTeam: "B", Periods: map[int]models.PeriodMarkets{}}
	sec := testutil.FirstHalfSecondary(testutil.SecondaryGameFixture())

	rows, diags := Analyze(ref, sec, models.OrientationDirect)
	if rows != nil {
		t.Fatalf("expected no rows when the reference has neither period, got %+v", rows)
	}
	if len(diags) != 1 || diags[0].Kind != perr.PeriodMismatch {
		t.Fatalf("expected a single PeriodMismatch diagnostic, got %+v", diags)
	}
}

func TestAnalyzePeriodSeparationReportsMismatchButKeepsFullGameRows(t *testing.T) {
	ref := enrichedFixture() // period 0 only
	sec := testutil.FirstHalfSecondary(testutil.SecondaryGameFixture())

	rows, diags := Analyze(ref, sec, models.OrientationDirect)
	if len(diags) != 1 || diags[0].Kind != perr.PeriodMismatch {
		t.Fatalf("expected a PeriodMismatch diagnostic for the unmatched first half, got %+v", diags)
	}
	if _, ok := findRow(rows, models.MarketMoneyline, models.SelectionHome); !ok {
		t.Fatal("full-game period 0 rows should still be produced despite the first-half mismatch")
	}
	for _, r := range rows {
		if r.Period != 0 {
			t.Fatalf("no period-1 row should exist without reference period-1 markets, got %+v", r)
		}
	}
}

func TestAnalyzeFirstHalfPairsAgainstPeriodOneWhenBothSidesHaveIt(t *testing.T) {
	ref := testutil.ReferenceEventFixture(func(e *models.ReferenceEvent) {
		e.Periods[1] = models.PeriodMarkets{
			MoneyLine: &models.MoneylinePrices{
				HomeDecimal: testutil.Float64Ptr(1.91),
				AwayDecimal: testutil.Float64Ptr(1.91),
			},
		}
	})
	ref = EnrichReferenceEvent(ref)
	sec := testutil.FirstHalfSecondary(testutil.SecondaryGameFixture())

	rows, diags := Analyze(ref, sec, models.OrientationDirect)
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics when both sides carry a first half, got %+v", diags)
	}

	var sawPeriod1 bool
	for _, r := range rows {
		if r.Period == 1 {
			sawPeriod1 = true
		}
	}
	if !sawPeriod1 {
		t.Fatal("expected at least one period-1 row")
	}
}
