package interact

import "github.com/mattn/go-runewidth"

// GlyphMeasurer reports pixel widths for glyphs at a font size. It is used
// for cursor placement and label anchoring. Implementations must be
// deterministic and side-effect-free: the same (size, rune) pair always
// yields the same width.
type GlyphMeasurer interface {
	CharWidth(size float64, ch rune) float64
}

// TextWidth sums the glyph widths of s at the given font size.
func TextWidth(m GlyphMeasurer, size float64, s string) float64 {
	w := 0.0
	for _, ch := range s {
		w += m.CharWidth(size, ch)
	}
	return w
}

// CellMetrics is a fixed-advance GlyphMeasurer: every glyph advances a
// whole number of cells (wide CJK runes take two), each cell Aspect times
// the font size wide. It stands in when no real font metrics are wired up.
type CellMetrics struct {
	// Aspect is the cell width as a fraction of the font size.
	// Zero means 0.5, the usual monospace aspect ratio.
	Aspect float64
}

func (m CellMetrics) CharWidth(size float64, ch rune) float64 {
	aspect := m.Aspect
	if aspect == 0 {
		aspect = 0.5
	}
	return float64(runewidth.RuneWidth(ch)) * aspect * size
}
