package oddsmath

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// EV computes ev_ratio = bet_decimal/fair_decimal - 1, reported as a fraction
// (multiply by 100 for a percentage). Either price <= 0 is absent.
//
// Uses decimal.Decimal rather than float64: an EV opportunity row is the last
// stop before the sink, after a chain of conversions (American -> decimal ->
// no-vig -> EV) per market selection; shopspring/decimal avoids compounding
// float error across a full period's worth of moneyline/spread/total pairings
// before the value is serialized.
func EV(betDecimal, fairDecimal float64) (float64, error) {
	if betDecimal <= 0 || fairDecimal <= 0 {
		return 0, fmt.Errorf("oddsmath: EV requires positive decimal prices")
	}

	bet := decimal.NewFromFloat(betDecimal)
	fair := decimal.NewFromFloat(fairDecimal)

	ratio := bet.Div(fair).Sub(decimal.NewFromInt(1))
	f, _ := ratio.Float64()
	return f, nil
}

// EVPercent is EV expressed as a percentage, rounded to 2 decimal places.
func EVPercent(betDecimal, fairDecimal float64) (float64, error) {
	ev, err := EV(betDecimal, fairDecimal)
	if err != nil {
		return 0, err
	}
	pct := decimal.NewFromFloat(ev).Mul(decimal.NewFromInt(100)).Round(2)
	f, _ := pct.Float64()
	return f, nil
}
