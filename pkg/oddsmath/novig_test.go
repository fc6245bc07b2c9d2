package oddsmath

import (
	"math"
	"testing"
)

func TestNoVigPowerTwoWayConvergesToFiftyFifty(t *testing.T) {
	// -110 / -110 is a symmetric two-way market; the power method must return
	// two equal fair decimals summing to implied probability 1.0.
	dec, _ := AmericanToDecimal(-110)
	fair, method, err := NoVigPower([]float64{dec, dec})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if method != "power" {
		t.Fatalf("expected power method, got %q", method)
	}
	if math.Abs(fair[0]-fair[1]) > 1e-6 {
		t.Fatalf("symmetric market should yield equal fair prices, got %v and %v", fair[0], fair[1])
	}

	p0, _ := DecimalToImpliedProbability(fair[0])
	p1, _ := DecimalToImpliedProbability(fair[1])
	if math.Abs(p0+p1-1.0) > 1e-3 {
		t.Fatalf("fair probabilities should sum to ~1.0, got %v", p0+p1)
	}
}

func TestNoVigPowerThreeWay(t *testing.T) {
	// A three-way soccer moneyline with vig: home favorite, away underdog, draw.
	home, _ := AmericanToDecimal(150)
	draw, _ := AmericanToDecimal(220)
	away, _ := AmericanToDecimal(175)

	fair, method, err := NoVigPower([]float64{home, draw, away})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if method != "power" {
		t.Fatalf("expected power method, got %q", method)
	}

	sum := 0.0
	for _, d := range fair {
		p, _ := DecimalToImpliedProbability(d)
		sum += p
	}
	if math.Abs(sum-1.0) > 1e-3 {
		t.Fatalf("three-way fair probabilities should sum to ~1.0, got %v", sum)
	}
}

func TestNoVigPowerNoVigPassesThrough(t *testing.T) {
	// Two fair (no-overround) decimal prices: nothing to remove.
	fair, method, err := NoVigPower([]float64{2.0, 2.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if method != "none" {
		t.Fatalf("expected method 'none', got %q", method)
	}
	if fair[0] != 2.0 || fair[1] != 2.0 {
		t.Fatalf("expected unchanged input, got %v", fair)
	}
}

func TestNoVigPowerPriceAtOrBelowFloorIsAbsent(t *testing.T) {
	// A decimal at or below 1.0001 never appears from AmericanToDecimal, but a
	// corrupt feed could still hand the engine one; such a price is absent
	// rather than valid, which leaves a single valid entry and nothing to feed
	// Newton's iteration, so the input passes through unchanged.
	fair, method, err := NoVigPower([]float64{1.00005, 1.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if method != "none" {
		t.Fatalf("expected method 'none' with the near-1 price absent, got %q", method)
	}
	for _, f := range fair {
		if f <= 0 {
			t.Fatalf("passed-through price should be positive, got %v", f)
		}
	}
}

func TestNoVigPowerSingleValidEntryPassesThrough(t *testing.T) {
	fair, method, err := NoVigPower([]float64{1.91, math.NaN()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if method != "none" {
		t.Fatalf("expected method 'none' with only one valid entry, got %q", method)
	}
	if fair[0] != 1.91 {
		t.Fatalf("expected unchanged first entry, got %v", fair[0])
	}
}

func TestRemoveVigMultiplicative(t *testing.T) {
	p1, _ := DecimalToImpliedProbability(1.0 + 100.0/110.0)
	p2, _ := DecimalToImpliedProbability(1.0 + 100.0/110.0)

	fair1, fair2, err := RemoveVigMultiplicative(p1, p2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(fair1-0.5) > 1e-6 || math.Abs(fair2-0.5) > 1e-6 {
		t.Fatalf("symmetric -110/-110 should normalize to 50/50, got %v and %v", fair1, fair2)
	}
}

func TestCalculateVigPercentage(t *testing.T) {
	p1, _ := DecimalToImpliedProbability(1.0 + 100.0/110.0)
	p2, _ := DecimalToImpliedProbability(1.0 + 100.0/110.0)

	vig, err := CalculateVigPercentage([]float64{p1, p2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vig <= 0 {
		t.Fatalf("expected positive vig for -110/-110 market, got %v", vig)
	}
}
