package interact

import (
	"math"
	"strconv"
)

// minSkew is the floor applied to caller-supplied skew exponents. A skew of
// zero or below would feed a non-positive exponent into math.Pow and leak
// NaN into drawing, which the core treats as a contract violation and clamps
// instead.
const minSkew = 1e-6

// Clamp limits value to the closed interval [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// MapRange linearly re-maps value from the interval [fromLo, fromHi] to
// [toLo, toHi]. The mapping is direction-agnostic: fromLo may exceed fromHi
// to flip an axis, e.g. screen Y grows downward while value Y grows upward.
func MapRange(value, fromLo, fromHi, toLo, toHi float64) float64 {
	if fromLo == fromHi {
		return toLo
	}
	return toLo + (value-fromLo)/(fromHi-fromLo)*(toHi-toLo)
}

// Percentage returns value's position within [lo, hi] as a fraction. Like
// MapRange it tolerates lo > hi for flipped axes.
func Percentage(value, lo, hi float64) float64 {
	if lo == hi {
		return 0.0
	}
	return (value - lo) / (hi - lo)
}

// ValueFromPerc is the inverse of Percentage.
func ValueFromPerc(perc, lo, hi float64) float64 {
	return MapRange(perc, 0.0, 1.0, lo, hi)
}

func clampSkew(skew float64) float64 {
	if skew < minSkew {
		return minSkew
	}
	return skew
}

// SkewPerc reshapes a value-axis percentage into a pixel-axis percentage by
// raising it to 1/skew. skew = 1 is linear; skew > 1 devotes more pixel
// resolution to the low end of the range.
func SkewPerc(perc, skew float64) float64 {
	return math.Pow(perc, 1.0/clampSkew(skew))
}

/// UnskewPerc is the inverse of SkewPerc: it converts a pixel-axis
// percentage back to a value-axis percentage by raising it to skew.
func UnskewPerc(perc, skew float64) float64 {
	return math.Pow(perc, clampSkew(skew))
}

// ValueString formats v with just enough decimal places that two values one
// pixel apart across rng read differently. pixels is the pixel extent the
// range is mapped over.
func ValueString(v, rng float64, pixels int) string {
	if pixels <= 0 || rng <= 0 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	step := rng / float64(pixels)
	dec := 0
	for step < 1.0 && dec < 8 {
		step *= 10.0
		dec++
	}
	return strconv.FormatFloat(v, 'f', dec, 64)
}
