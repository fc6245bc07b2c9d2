package oddsmath

import (
	"math"
	"testing"
)

func TestAmericanToDecimal(t *testing.T) {
	tests := []struct {
		name    string
		in      int
		want    float64
		wantErr bool
	}{
		{"positive", 150, 2.5, false},
		{"negative", -150, 1.0 + 100.0/150.0, false},
		{"even money", -100, 2.0, false},
		{"zero invalid", 0, 0, true},
		{"magnitude too small positive", 50, 0, true},
		{"magnitude too small negative", -50, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := AmericanToDecimal(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got decimal %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDecimalToAmerican(t *testing.T) {
	tests := []struct {
		name    string
		in      float64
		want    int
		wantErr bool
	}{
		{"favorite", 1.5, -200, false},
		{"underdog", 3.0, 200, false},
		{"at boundary invalid", 1.0001, 0, true},
		{"just above boundary", 1.0002, -500000, false},
		{"zero invalid", 0, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecimalToAmerican(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

// American -> decimal -> American should round-trip within +/-1, since
// DecimalToAmerican rounds to the nearest integer price.
func TestAmericanDecimalRoundTrip(t *testing.T) {
	for _, american := range []int{-110, -250, -105, 100, 120, 300, 1000, -1000} {
		dec, err := AmericanToDecimal(american)
		if err != nil {
			t.Fatalf("AmericanToDecimal(%d): %v", american, err)
		}
		back, err := DecimalToAmerican(dec)
		if err != nil {
			t.Fatalf("DecimalToAmerican(%v): %v", dec, err)
		}
		if diff := back - american; diff > 1 || diff < -1 {
			t.Fatalf("round trip %d -> %v -> %d drifted by more than 1", american, dec, back)
		}
	}
}

func TestImpliedProbabilityRoundTrip(t *testing.T) {
	for _, dec := range []float64{1.5, 1.91, 2.0, 3.25, 10.0} {
		prob, err := DecimalToImpliedProbability(dec)
		if err != nil {
			t.Fatalf("DecimalToImpliedProbability(%v): %v", dec, err)
		}
		back, err := ProbabilityToDecimal(prob)
		if err != nil {
			t.Fatalf("ProbabilityToDecimal(%v): %v", prob, err)
		}
		if math.Abs(back-dec) > 1e-9 {
			t.Fatalf("round trip %v -> %v -> %v drifted", dec, prob, back)
		}
	}
}
