package interact

// Renderer accepts absolute-space draw commands against a window of known
// pixel dimensions. The core computes all geometry; the renderer only
// paints.
type Renderer interface {
	// FillRect paints a filled axis-aligned rectangle.
	FillRect(pos Point, dim Dim, c Color)

	// Line paints a line segment with the given total width.
	Line(from, to Point, width float64, c Color)

	// FillEllipse paints a filled ellipse inscribed in the given rectangle.
	FillEllipse(pos Point, dim Dim, c Color)

	// Text paints a text run with its top-left corner at pos.
	Text(pos Point, size float64, c Color, s string)
}

// ============================================================================
// DisplayList
// ============================================================================

// OpKind identifies a recorded draw command.
type OpKind uint8

const (
	OpRect OpKind = iota + 1
	OpLine
	OpEllipse
	OpText
)

// Op is one recorded draw command.
type Op struct {
	Kind  OpKind
	Pos   Point
	Dim   Dim
	To    Point
	Width float64
	Size  float64
	Color Color
	Text  string
}

// DisplayList is a Renderer that records commands instead of painting.
// A real backend can replay the list, and tests can assert on it.
type DisplayList struct {
	Ops []Op
}

func (d *DisplayList) FillRect(pos Point, dim Dim, c Color) {
	d.Ops = append(d.Ops, Op{Kind: OpRect, Pos: pos, Dim: dim, Color: c})
}

func (d *DisplayList) Line(from, to Point, width float64, c Color) {
	d.Ops = append(d.Ops, Op{Kind: OpLine, Pos: from, To: to, Width: width, Color: c})
}

func (d *DisplayList) FillEllipse(pos Point, dim Dim, c Color) {
	d.Ops = append(d.Ops, Op{Kind: OpEllipse, Pos: pos, Dim: dim, Color: c})
}

func (d *DisplayList) Text(pos Point, size float64, c Color, s string) {
	d.Ops = append(d.Ops, Op{Kind: OpText, Pos: pos, Size: size, Color: c, Text: s})
}

// Reset clears the list for reuse, keeping its capacity.
func (d *DisplayList) Reset() {
	d.Ops = d.Ops[:0]
}

// ============================================================================
// Shared draw helpers
// ============================================================================

// stateColor modulates a widget's fill color by its interaction state.
func stateColor(c Color, s InteractionState) Color {
	switch s {
	case StateHighlighted:
		return c.Highlighted()
	case StateClicked:
		return c.Clicked()
	default:
		return c
	}
}

// drawShapeRect draws a widget's body: the frame rectangle (when frameW is
// positive) and the interior rectangle inset by the frame, with the fill
// modulated by the interaction state.
func drawShapeRect(r Renderer, pos Point, dim Dim, frameW float64, frameColor, fill Color, s InteractionState) {
	if frameW > 0 {
		r.FillRect(pos, dim, frameColor)
	}
	r.FillRect(pos.Add(frameW, frameW), dim.Shrink(frameW), stateColor(fill, s))
}

// drawCircle draws a filled circle centered at center.
func drawCircle(r Renderer, center Point, radius float64, c Color) {
	r.FillEllipse(center.Add(-radius, -radius), Dim{2.0 * radius, 2.0 * radius}, c)
}
