package interact

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA color with channels in [0, 1].
type Color struct {
	R, G, B, A float64
}

// RGB builds an opaque color.
func RGB(r, g, b float64) Color {
	return Color{r, g, b, 1.0}
}

// RGBA builds a color with explicit alpha.
func RGBA(r, g, b, a float64) Color {
	return Color{r, g, b, a}
}

// HexColor parses "#rrggbb" or "#rrggbbaa", with or without the leading
// hash.
func HexColor(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	alpha := 1.0
	if len(h) == 8 {
		v, err := strconv.ParseUint(h[6:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid alpha in color %q: %w", s, err)
		}
		alpha = float64(v) / 255.0
		h = h[:6]
	}
	c, err := colorful.Hex("#" + h)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{c.R, c.G, c.B, alpha}, nil
}

// Hex formats the color as "#rrggbb", dropping alpha.
func (c Color) Hex() string {
	return c.cful().Clamped().Hex()
}

func (c Color) cful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// WithAlpha returns the color with its alpha channel replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Luminance returns the color's perceptual lightness in [0, 1].
func (c Color) Luminance() float64 {
	l, _, _ := c.cful().Lab()
	return l
}

// PlainContrast returns plain black for light colors and plain white for
// dark ones, preserving alpha. Overlay text and markers drawn on top of a
// widget use this to stay legible against any fill.
func (c Color) PlainContrast() Color {
	if c.Luminance() > 0.5 {
		return Color{0, 0, 0, c.A}
	}
	return Color{1, 1, 1, c.A}
}

// Highlighted returns the slightly lightened variant used while the pointer
// hovers a widget.
func (c Color) Highlighted() Color {
	return c.blendWhite(0.1)
}

// Clicked returns the further lightened variant used while a widget is
// held.
func (c Color) Clicked() Color {
	return c.blendWhite(0.2)
}

func (c Color) blendWhite(t float64) Color {
	white := colorful.Color{R: 1, G: 1, B: 1}
	b := c.cful().BlendLab(white, t).Clamped()
	return Color{b.R, b.G, b.B, c.A}
}
