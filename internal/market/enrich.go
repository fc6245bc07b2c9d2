package market

import (
	"github.com/XavierBriggs/pricedge/pkg/models"
	"github.com/XavierBriggs/pricedge/pkg/oddsmath"
)

// EnrichReferenceEvent applies no_vig independently to each market on each
// period of a reference event: moneyline {home, draw?, away}, each spread
// pair {home, away}, and each total pair {over, under} — the precondition
// spec.md §4.5 states before any EV comparison runs. This must happen before
// EV comparison; comparing against vig-inclusive reference prices is
// forbidden (spec.md §4.5 order-of-operations invariant).
func EnrichReferenceEvent(ref models.ReferenceEvent) models.ReferenceEvent {
	out := ref
	out.Periods = make(map[int]models.PeriodMarkets, len(ref.Periods))
	for idx, pm := range ref.Periods {
		out.Periods[idx] = enrichPeriod(pm)
	}
	return out
}

func enrichPeriod(pm models.PeriodMarkets) models.PeriodMarkets {
	out := pm

	if pm.MoneyLine != nil {
		ml := *pm.MoneyLine
		ml = enrichMoneyline(ml)
		out.MoneyLine = &ml
	}

	if pm.Spreads != nil {
		out.Spreads = make(map[string]models.SpreadMarket, len(pm.Spreads))
		for k, s := range pm.Spreads {
			out.Spreads[k] = enrichSpread(s)
		}
	}

	if pm.Totals != nil {
		out.Totals = make(map[string]models.TotalMarket, len(pm.Totals))
		for k, t := range pm.Totals {
			out.Totals[k] = enrichTotal(t)
		}
	}

	return out
}

func enrichMoneyline(ml models.MoneylinePrices) models.MoneylinePrices {
	var decimals []float64
	if ml.HomeDecimal != nil {
		decimals = append(decimals, *ml.HomeDecimal)
	}
	if ml.DrawDecimal != nil {
		decimals = append(decimals, *ml.DrawDecimal)
	}
	if ml.AwayDecimal != nil {
		decimals = append(decimals, *ml.AwayDecimal)
	}
	if len(decimals) < 2 {
		return ml
	}

	fair, method, err := oddsmath.NoVigPower(decimals)
	if err != nil {
		return ml
	}

	i := 0
	if ml.HomeDecimal != nil {
		v := fair[i]
		ml.NVPHomeDecimal = &v
		if am, err := oddsmath.DecimalToAmerican(v); err == nil {
			ml.NVPHomeAmerican = &am
		}
		i++
	}
	if ml.DrawDecimal != nil {
		v := fair[i]
		ml.NVPDrawDecimal = &v
		if am, err := oddsmath.DecimalToAmerican(v); err == nil {
			ml.NVPDrawAmerican = &am
		}
		i++
	}
	if ml.AwayDecimal != nil {
		v := fair[i]
		ml.NVPAwayDecimal = &v
		if am, err := oddsmath.DecimalToAmerican(v); err == nil {
			ml.NVPAwayAmerican = &am
		}
	}
	ml.VigMethod = models.VigMethod(method)
	return ml
}

func enrichSpread(s models.SpreadMarket) models.SpreadMarket {
	fair, method, err := oddsmath.NoVigPower([]float64{s.HomeDecimal, s.AwayDecimal})
	if err != nil || len(fair) != 2 {
		return s
	}
	s.NVPHomeDecimal = fair[0]
	s.NVPAwayDecimal = fair[1]
	if am, err := oddsmath.DecimalToAmerican(fair[0]); err == nil {
		s.NVPHomeAmerican = am
	}
	if am, err := oddsmath.DecimalToAmerican(fair[1]); err == nil {
		s.NVPAwayAmerican = am
	}
	s.VigMethod = models.VigMethod(method)
	return s
}

func enrichTotal(t models.TotalMarket) models.TotalMarket {
	fair, method, err := oddsmath.NoVigPower([]float64{t.OverDecimal, t.UnderDecimal})
	if err != nil || len(fair) != 2 {
		return t
	}
	t.NVPOverDecimal = fair[0]
	t.NVPUnderDecimal = fair[1]
	if am, err := oddsmath.DecimalToAmerican(fair[0]); err == nil {
		t.NVPOverAmerican = am
	}
	if am, err := oddsmath.DecimalToAmerican(fair[1]); err == nil {
		t.NVPUnderAmerican = am
	}
	t.VigMethod = models.VigMethod(method)
	return t
}
