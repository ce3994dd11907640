package currency

import (
	"math"
	"testing"
)

func TestToTHB(t *testing.T) {
	if got := ToTHB(7.25, 35.5); got != 257.375 {
		t.Errorf("ToTHB(7.25, 35.5) = %v, want 257.375", got)
	}
}

// Selecting THB and saving without edits must reproduce the stored value:
// ToUSD is the exact multiplicative inverse of ToTHB.
func TestRoundTrip(t *testing.T) {
	values := []float64{0, 0.1, 5.00, 7.25, 10.00, 19.9, 40}
	for _, usd := range values {
		back := ToUSD(ToTHB(usd, THBPerUSD), THBPerUSD)
		if math.Abs(back-usd) > 1e-9 {
			t.Errorf("round trip of %v came back as %v", usd, back)
		}
	}
}
