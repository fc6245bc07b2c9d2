package oddsmath

import (
	"math"
	"testing"
)

func TestEVPositive(t *testing.T) {
	// Secondary book offers +150 (decimal 2.5) against a fair price of +110
	// (decimal 2.1): betting the secondary price is +EV.
	bet, _ := AmericanToDecimal(150)
	fair, _ := AmericanToDecimal(110)

	ev, err := EV(bet, fair)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev <= 0 {
		t.Fatalf("expected positive EV, got %v", ev)
	}
}

func TestEVNegative(t *testing.T) {
	bet, _ := AmericanToDecimal(-200)
	fair, _ := AmericanToDecimal(110)

	ev, err := EV(bet, fair)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev >= 0 {
		t.Fatalf("expected negative EV, got %v", ev)
	}
}

func TestEVEqualPricesIsZero(t *testing.T) {
	ev, err := EV(2.0, 2.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(ev) > 1e-12 {
		t.Fatalf("expected zero EV for equal prices, got %v", ev)
	}
}

func TestEVRejectsNonPositivePrices(t *testing.T) {
	if _, err := EV(0, 2.0); err == nil {
		t.Fatal("expected error for zero bet price")
	}
	if _, err := EV(2.0, -1.0); err == nil {
		t.Fatal("expected error for negative fair price")
	}
}

func TestEVPercentRounding(t *testing.T) {
	pct, err := EVPercent(2.0, 2.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pct != 0 {
		t.Fatalf("expected 0%%, got %v", pct)
	}

	pct, err = EVPercent(2.1, 2.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(pct-5.0) > 0.01 {
		t.Fatalf("expected ~5%%, got %v", pct)
	}
}
