// Package market implements the Market Analyzer / EV Engine from spec.md
// §4.5: period-separated pairing of a secondary book's American odds against
// a reference event's no-vig fair prices, across moneyline, spread, and
// total markets, for full game and first-half-equivalent periods
// independently. Grounded on
// original_source/backend/utils/pod_utils.py:analyze_markets_for_ev.
package market

import (
	"github.com/XavierBriggs/pricedge/internal/perr"
	"github.com/XavierBriggs/pricedge/pkg/models"
	"github.com/XavierBriggs/pricedge/pkg/oddsmath"
)

// Analyze pairs a matched secondary game against an already-enriched
// reference event (see EnrichReferenceEvent) and returns every EV row plus
// any non-fatal diagnostics encountered along the way.
func Analyze(ref models.ReferenceEvent, sec models.SecondaryGame, orientation models.Orientation) ([]models.EVOpportunity, []*perr.Error) {
	var rows []models.EVOpportunity
	var diags []*perr.Error

	_, hasPeriod0 := ref.Periods[0]
	_, hasPeriod1 := ref.Periods[1]

	if sec.FirstHalf != nil && !hasPeriod0 && !hasPeriod1 {
		diags = append(diags, perr.New(perr.PeriodMismatch, ref.EventID,
			nil))
		return nil, diags
	}

	if hasPeriod0 {
		rows = append(rows, pairPeriod(ref, ref.Periods[0], sec.FullGame, 0, orientation)...)
	}

	if sec.FirstHalf != nil {
		if hasPeriod1 {
			rows = append(rows, pairPeriod(ref, ref.Periods[1], *sec.FirstHalf, 1, orientation)...)
		} else {
			diags = append(diags, perr.New(perr.PeriodMismatch, ref.EventID, nil))
		}
	}

	return rows, diags
}

func pairPeriod(ref models.ReferenceEvent, pm models.PeriodMarkets, mp models.MarketPrices, period int, orientation models.Orientation) []models.EVOpportunity {
	var rows []models.EVOpportunity

	rows = append(rows, pairMoneyline(ref, pm, mp, period, orientation)...)
	rows = append(rows, pairSpreads(ref, pm, mp, period, orientation)...)
	rows = append(rows, pairTotals(ref, pm, mp, period)...)

	return rows
}

// sideFor resolves which reference side (home/away) a secondary-book side
// pairs against, given orientation: direct keeps home<->home, flipped swaps.
func sideFor(secondaryIsHome bool, orientation models.Orientation) bool {
	if orientation == models.OrientationDirect {
		return secondaryIsHome
	}
	return !secondaryIsHome
}

func pairMoneyline(ref models.ReferenceEvent, pm models.PeriodMarkets, mp models.MarketPrices, period int, orientation models.Orientation) []models.EVOpportunity {
	if pm.MoneyLine == nil {
		return nil
	}
	ml := pm.MoneyLine
	var rows []models.EVOpportunity

	if mp.HomeMoneylineAmerican != nil {
		refHome := sideFor(true, orientation)
		fairAm := ml.NVPAwayAmerican
		fairDec := ml.NVPAwayDecimal
		if refHome {
			fairAm = ml.NVPHomeAmerican
			fairDec = ml.NVPHomeDecimal
		}
		if row, ok := buildMoneylineRow(ref, *mp.HomeMoneylineAmerican, fairAm, fairDec, models.SelectionHome, period); ok {
			rows = append(rows, row)
		}
	}

	if mp.AwayMoneylineAmerican != nil {
		refHome := sideFor(false, orientation)
		fairAm := ml.NVPAwayAmerican
		fairDec := ml.NVPAwayDecimal
		if refHome {
			fairAm = ml.NVPHomeAmerican
			fairDec = ml.NVPHomeDecimal
		}
		if row, ok := buildMoneylineRow(ref, *mp.AwayMoneylineAmerican, fairAm, fairDec, models.SelectionAway, period); ok {
			rows = append(rows, row)
		}
	}

	if mp.DrawMoneylineAmerican != nil && ml.NVPDrawAmerican != nil {
		if row, ok := buildMoneylineRow(ref, *mp.DrawMoneylineAmerican, ml.NVPDrawAmerican, *ml.NVPDrawDecimal, models.SelectionDraw, period); ok {
			rows = append(rows, row)
		}
	}

	return rows
}

func buildMoneylineRow(ref models.ReferenceEvent, secondaryAmerican int, fairAmerican *int, fairDecimal float64, selection models.SelectionSide, period int) (models.EVOpportunity, bool) {
	if fairAmerican == nil {
		return models.EVOpportunity{}, false
	}
	secDecimal, err := oddsmath.AmericanToDecimal(secondaryAmerican)
	if err != nil {
		return models.EVOpportunity{}, false
	}
	ev, err := oddsmath.EVPercent(secDecimal, fairDecimal)
	if err != nil {
		return models.EVOpportunity{}, false
	}

	team := ref.HomeTeam
	if selection == models.SelectionAway {
		team = ref.AwayTeam
	}

	return models.EVOpportunity{
		ReferenceEventID:      ref.EventID,
		Market:                models.MarketMoneyline,
		Period:                period,
		Selection:             selection,
		ReferenceFairAmerican: *fairAmerican,
		SecondaryAmerican:     secondaryAmerican,
		EVRatio:               ev,
		HomeTeam:              ref.HomeTeam,
		AwayTeam:              ref.AwayTeam,
		Description:           Describe("moneyline", string(selection), team, nil),
	}, true
}

func pairSpreads(ref models.ReferenceEvent, pm models.PeriodMarkets, mp models.MarketPrices, period int, orientation models.Orientation) []models.EVOpportunity {
	var rows []models.EVOpportunity

	for _, leg := range mp.HomeSpreads {
		refIsHome := sideFor(true, orientation)
		if row, ok := matchSpreadLeg(ref, pm, leg, refIsHome, models.SelectionHome, period); ok {
			rows = append(rows, row)
		}
	}
	for _, leg := range mp.AwaySpreads {
		refIsHome := sideFor(false, orientation)
		// Away-side secondary line must equal -home line at the reference:
		// the reference hdp is stored home-perspective, so the away leg's
		// line is negated before the comparison, in either orientation.
		if row, ok := matchSpreadLeg(ref, pm, negateLeg(leg), refIsHome, models.SelectionAway, period); ok {
			rows = append(rows, row)
		}
	}

	return rows
}

func negateLeg(leg models.SpreadSide) models.SpreadSide {
	leg.Line = -leg.Line
	return leg
}

func matchSpreadLeg(ref models.ReferenceEvent, pm models.PeriodMarkets, leg models.SpreadSide, refIsHome bool, selection models.SelectionSide, period int) (models.EVOpportunity, bool) {
	for _, s := range pm.Spreads {
		if !linesEqual(s.Hdp, leg.Line) {
			continue
		}
		secDecimal, err := oddsmath.AmericanToDecimal(leg.Odds)
		if err != nil {
			continue
		}

		fairAmerican := s.NVPAwayAmerican
		fairDecimal := s.NVPAwayDecimal
		reportedLine := -s.Hdp
		if refIsHome {
			fairAmerican = s.NVPHomeAmerican
			fairDecimal = s.NVPHomeDecimal
			reportedLine = s.Hdp
		}

		ev, err := oddsmath.EVPercent(secDecimal, fairDecimal)
		if err != nil {
			continue
		}

		team := ref.AwayTeam
		if selection == models.SelectionHome {
			team = ref.HomeTeam
		}
		line := reportedLine

		return models.EVOpportunity{
			ReferenceEventID:      ref.EventID,
			Market:                models.MarketSpread,
			Period:                period,
			Selection:             selection,
			Line:                  &line,
			ReferenceFairAmerican: fairAmerican,
			SecondaryAmerican:     leg.Odds,
			EVRatio:               ev,
			HomeTeam:              ref.HomeTeam,
			AwayTeam:              ref.AwayTeam,
			Description:           Describe("spread", string(selection), team, &line),
		}, true
	}
	return models.EVOpportunity{}, false
}

func pairTotals(ref models.ReferenceEvent, pm models.PeriodMarkets, mp models.MarketPrices, period int) []models.EVOpportunity {
	var rows []models.EVOpportunity

	if mp.GameTotalLine != nil {
		var best *models.EVOpportunity
		for _, t := range pm.Totals {
			if !linesEqual(t.Points, *mp.GameTotalLine) {
				continue
			}
			if mp.GameTotalOverOdds != nil {
				if row, ok := buildTotalRow(ref, t, *mp.GameTotalOverOdds, models.SelectionOver, period); ok {
					if best == nil || row.EVRatio > best.EVRatio {
						best = &row
					}
				}
			}
		}
		if best != nil {
			rows = append(rows, *best)
		}

		best = nil
		for _, t := range pm.Totals {
			if !linesEqual(t.Points, *mp.GameTotalLine) {
				continue
			}
			if mp.GameTotalUnderOdds != nil {
				if row, ok := buildTotalRow(ref, t, *mp.GameTotalUnderOdds, models.SelectionUnder, period); ok {
					if best == nil || row.EVRatio > best.EVRatio {
						best = &row
					}
				}
			}
		}
		if best != nil {
			rows = append(rows, *best)
		}
	}

	for _, leg := range mp.OverTotals {
		for _, t := range pm.Totals {
			if !linesEqual(t.Points, leg.Line) {
				continue
			}
			if row, ok := buildTotalRowFromLeg(ref, t, leg, models.SelectionOver, period); ok {
				rows = append(rows, row)
			}
		}
	}
	for _, leg := range mp.UnderTotals {
		for _, t := range pm.Totals {
			if !linesEqual(t.Points, leg.Line) {
				continue
			}
			if row, ok := buildTotalRowFromLeg(ref, t, leg, models.SelectionUnder, period); ok {
				rows = append(rows, row)
			}
		}
	}

	return rows
}

func buildTotalRow(ref models.ReferenceEvent, t models.TotalMarket, secondaryAmerican int, selection models.SelectionSide, period int) (models.EVOpportunity, bool) {
	return buildTotalRowFromLeg(ref, t, models.TotalSide{Line: t.Points, Odds: secondaryAmerican}, selection, period)
}

func buildTotalRowFromLeg(ref models.ReferenceEvent, t models.TotalMarket, leg models.TotalSide, selection models.SelectionSide, period int) (models.EVOpportunity, bool) {
	secDecimal, err := oddsmath.AmericanToDecimal(leg.Odds)
	if err != nil {
		return models.EVOpportunity{}, false
	}

	fairAmerican := t.NVPUnderAmerican
	fairDecimal := t.NVPUnderDecimal
	if selection == models.SelectionOver {
		fairAmerican = t.NVPOverAmerican
		fairDecimal = t.NVPOverDecimal
	}

	ev, err := oddsmath.EVPercent(secDecimal, fairDecimal)
	if err != nil {
		return models.EVOpportunity{}, false
	}

	line := t.Points
	return models.EVOpportunity{
		ReferenceEventID:      ref.EventID,
		Market:                models.MarketTotal,
		Period:                period,
		Selection:             selection,
		Line:                  &line,
		ReferenceFairAmerican: fairAmerican,
		SecondaryAmerican:     leg.Odds,
		EVRatio:               ev,
		HomeTeam:              ref.HomeTeam,
		AwayTeam:              ref.AwayTeam,
		Description:           Describe("total", string(selection), "", &line),
	}, true
}
