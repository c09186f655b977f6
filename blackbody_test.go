package starscape

import "testing"

func TestBlackbodyCoolIsRed(t *testing.T) {
	c := BlackbodyRGB(3000)
	if c.R <= c.B {
		t.Errorf("3000K should skew red, got R=%.4f B=%.4f", c.R, c.B)
	}
}

func TestBlackbodyHotIsBlue(t *testing.T) {
	c := BlackbodyRGB(20000)
	if c.B <= c.R {
		t.Errorf("20000K should skew blue, got R=%.4f B=%.4f", c.R, c.B)
	}
}

func TestBlackbodyComponentsInRange(t *testing.T) {
	for k := 1500.0; k <= 30000; k += 500 {
		c := BlackbodyRGB(k)
		for name, v := range map[string]float64{"R": c.R, "G": c.G, "B": c.B} {
			if v < 0 || v > 1 {
				t.Errorf("%gK: %s = %.4f out of [0,1]", k, name, v)
			}
		}
		if c.A != 1 {
			t.Errorf("%gK: alpha = %.4f, want 1", k, c.A)
		}
	}
}

func TestBlackbodyClampsOutOfRange(t *testing.T) {
	low := BlackbodyRGB(100)
	lowRef := BlackbodyRGB(blackbodyMinK)
	if low != lowRef {
		t.Error("below-range temperature should clamp to the fit minimum")
	}
	high := BlackbodyRGB(1e6)
	highRef := BlackbodyRGB(blackbodyMaxK)
	if high != highRef {
		t.Error("above-range temperature should clamp to the fit maximum")
	}
}

func TestBlackbodyMonotonicBlueShift(t *testing.T) {
	// The blue-to-red component ratio should rise with temperature.
	prev := -1.0
	for k := 3000.0; k <= 20000; k += 1000 {
		c := BlackbodyRGB(k)
		ratio := c.B / c.R
		if ratio < prev {
			t.Errorf("B/R ratio dropped at %gK: %.4f < %.4f", k, ratio, prev)
		}
		prev = ratio
	}
}
