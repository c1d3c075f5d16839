package interact

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestMapRange(t *testing.T) {
	tests := []struct {
		name                               string
		v, fromLo, fromHi, toLo, toHi, want float64
	}{
		{"midpoint", 0.5, 0, 1, 0, 100, 50},
		{"flipped from-axis", 0, 128, 0, 0, 1, 1},
		{"flipped to-axis", 0.25, 0, 1, 100, 0, 75},
		{"identity", 0.3, 0, 1, 0, 1, 0.3},
		{"degenerate from-range", 5, 2, 2, 0, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapRange(tt.v, tt.fromLo, tt.fromHi, tt.toLo, tt.toHi)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("MapRange = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPercentageRoundTrip(t *testing.T) {
	lo, hi := -3.0, 17.0
	for _, v := range []float64{-3, -1.5, 0, 4.2, 16.99, 17} {
		p := Percentage(v, lo, hi)
		back := ValueFromPerc(p, lo, hi)
		if math.Abs(back-v) > 1e-9 {
			t.Errorf("round trip of %v: got %v", v, back)
		}
	}
}

func TestSkewRoundTrip(t *testing.T) {
	for _, skew := range []float64{0.25, 1, 3} {
		for _, p := range []float64{0, 0.1, 0.5, 0.9, 1} {
			back := UnskewPerc(SkewPerc(p, skew), skew)
			if math.Abs(back-p) > 1e-9 {
				t.Errorf("skew %v: round trip of %v got %v", skew, p, back)
			}
		}
	}
}

func TestSkewGuardsInvalidExponent(t *testing.T) {
	// A non-positive skew is a caller contract violation; it must be
	// clamped rather than leak NaN into drawing.
	for _, skew := range []float64{0, -1} {
		if got := SkewPerc(0.5, skew); math.IsNaN(got) {
			t.Errorf("SkewPerc(0.5, %v) = NaN", skew)
		}
		if got := UnskewPerc(0.5, skew); math.IsNaN(got) {
			t.Errorf("UnskewPerc(0.5, %v) = NaN", skew)
		}
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		name   string
		v, rng float64
		pixels int
		want   string
	}{
		{"coarse range", 5, 100, 100, "5"},
		{"unit range needs decimals", 0.5, 1, 128, "0.500"},
		{"tenth range", 0.25, 10, 100, "0.2"},
		{"degenerate pixels", 1.5, 1, 0, "1.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValueString(tt.v, tt.rng, tt.pixels); got != tt.want {
				t.Errorf("ValueString(%v, %v, %d) = %q, want %q", tt.v, tt.rng, tt.pixels, got, tt.want)
			}
		})
	}
}
