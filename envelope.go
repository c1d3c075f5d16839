package interact

import "sort"

// ============================================================================
// Elements and state
// ============================================================================

// EnvelopeElement identifies the sub-region of an EnvelopeEditor that an
// interaction state refers to.
type EnvelopeElement interface {
	envelopeElement()
}

// EnvRect is the widget's border region.
type EnvRect struct{}

// EnvPad is the interior region inside the frame.
type EnvPad struct{}

// IndexedPoint refers to the envelope point at Idx. Pos is the pixel
// position the element was last seen at; during a drag it is refreshed with
// the live cursor position while Idx stays fixed for the gesture. Idx is a
// transient hint into the caller-owned point slice, not an owning
// reference: it is revalidated against the current length before every use.
type IndexedPoint struct {
	Idx int
	Pos Point
}

// CurveHandle refers to the curve depth of the segment following point Idx.
// TODO: hit-test curve handles between points so the curve depth can be
// dragged; only the state plumbing exists today.
type CurveHandle struct {
	Idx int
	Pos Point
}

func (EnvRect) envelopeElement()      {}
func (EnvPad) envelopeElement()       {}
func (IndexedPoint) envelopeElement() {}
func (CurveHandle) envelopeElement()  {}

// EnvelopeState is the persisted interaction state of an EnvelopeEditor.
// The zero value is Normal.
type EnvelopeState struct {
	Kind InteractionState

	// Elem is the element the state was entered on. Nil for Normal.
	Elem EnvelopeElement

	// Button is the captured mouse button. Only set while Clicked.
	Button MouseButton
}

// ============================================================================
// Point capability
// ============================================================================

// EnvelopePoint is the capability a type must provide to populate an
// envelope. The editor is generic over it rather than over any concrete
// point type.
type EnvelopePoint interface {
	X() float64
	Y() float64
	SetX(x float64)
	SetY(y float64)

	// Curve is the bezier depth (-1 to 1) toward the next point.
	Curve() float64
	SetCurve(curve float64)
}

// BasicPoint is a minimal EnvelopePoint implementation.
type BasicPoint struct {
	x, y, curve float64
}

// NewBasicPoint constructs a point with a linear (1.0) curve.
func NewBasicPoint(x, y float64) *BasicPoint {
	return &BasicPoint{x: x, y: y, curve: 1.0}
}

func (p *BasicPoint) X() float64         { return p.x }
func (p *BasicPoint) Y() float64         { return p.y }
func (p *BasicPoint) SetX(x float64)     { p.x = x }
func (p *BasicPoint) SetY(y float64)     { p.y = y }
func (p *BasicPoint) Curve() float64     { return p.curve }
func (p *BasicPoint) SetCurve(c float64) { p.curve = c }

// ============================================================================
// Hit testing
// ============================================================================

// envPerc is an envelope point reduced to skewed percentages of the value
// ranges, recomputed every frame.
type envPerc struct {
	x, y, curve float64
}

// envPointPixel maps a percentage point onto the pad in pixel space. The
// pad's Y axis is flipped: value Y grows upward, screen Y grows downward.
func envPointPixel(padPos Point, padDim Dim, p envPerc) Point {
	return Point{
		X: MapRange(p.x, 0.0, 1.0, padPos.X, padPos.X+padDim.W),
		Y: MapRange(p.y, 0.0, 1.0, padPos.Y+padDim.H, padPos.Y),
	}
}

// envOverAndClosest classifies the cursor position into the element under
// it and the closest envelope point. The two differ when the cursor is over
// the pad but outside every point's capture radius: over is then EnvPad
// while closest names the nearest point, so it can still be drawn
// highlighted. Both are nil when the cursor is outside the widget.
func envOverAndClosest(pos, mousePos Point, dim Dim, padPos Point, padDim Dim, perc []envPerc, radius float64) (over, closest EnvelopeElement) {
	if !IsOver(pos, dim, mousePos) {
		return nil, nil
	}
	if !IsOver(padPos, padDim, mousePos) {
		return EnvRect{}, EnvRect{}
	}
	pixels := make([]Point, len(perc))
	for i, p := range perc {
		pixels[i] = envPointPixel(padPos, padDim, p)
	}
	hit, nearest := NearestPoint(pixels, mousePos, radius)
	if hit >= 0 {
		elem := IndexedPoint{Idx: hit, Pos: pixels[hit]}
		return elem, elem
	}
	if nearest >= 0 {
		return EnvPad{}, IndexedPoint{Idx: nearest, Pos: pixels[nearest]}
	}
	return EnvPad{}, EnvPad{}
}

// ============================================================================
// Transition table
// ============================================================================

// envNextState derives the next interaction state from the element under
// the cursor, the previous state and the sampled button levels.
func envNextState(over EnvelopeElement, prev EnvelopeState, m Mouse) EnvelopeState {
	refresh := func(e EnvelopeElement) EnvelopeElement {
		switch elem := e.(type) {
		case IndexedPoint:
			elem.Pos = m.Pos
			return elem
		case CurveHandle:
			elem.Pos = m.Pos
			return elem
		}
		return e
	}

	left, right := m.Left, m.Right
	switch {
	// A press that did not start from hover is ignored.
	case over != nil && prev.Kind == StateNormal && left == ButtonDown && right == ButtonUp:
		return EnvelopeState{}

	case over != nil && left == ButtonUp && right == ButtonUp:
		return EnvelopeState{Kind: StateHighlighted, Elem: over}

	case over != nil && prev.Kind == StateHighlighted && left == ButtonDown && right == ButtonUp:
		return EnvelopeState{Kind: StateClicked, Elem: over, Button: MouseButtonLeft}

	// Capture held: the element's pixel position tracks the live cursor
	// while its index stays fixed.
	case over != nil && prev.Kind == StateClicked &&
		((left == ButtonDown && right == ButtonUp) || (left == ButtonUp && right == ButtonDown)):
		return EnvelopeState{Kind: StateClicked, Elem: refresh(prev.Elem), Button: prev.Button}

	// A left drag continues even after the cursor leaves the pad.
	case over == nil && prev.Kind == StateClicked && left == ButtonDown && right == ButtonUp:
		return EnvelopeState{Kind: StateClicked, Elem: refresh(prev.Elem), Button: MouseButtonLeft}

	case over != nil && prev.Kind == StateHighlighted && left == ButtonUp && right == ButtonDown:
		return EnvelopeState{Kind: StateClicked, Elem: refresh(prev.Elem), Button: MouseButtonRight}

	default:
		return EnvelopeState{}
	}
}

// envXBounds returns the X percentage interval a point at idx may occupy,
// bounded by its immediate neighbors (or the pad edges at either end).
func envXBounds(perc []envPerc, idx int) (left, right float64) {
	left, right = 0.0, 1.0
	if len(perc) > 0 && idx > 0 {
		left = perc[idx-1].x
	}
	if len(perc) > 0 && len(perc)-1 > idx {
		right = perc[idx+1].x
	}
	return left, right
}

// ============================================================================
// Widget
// ============================================================================

// EnvelopeEditor edits an ordered, caller-owned sequence of envelope
// points: left-drag moves a point (clamped between its neighbors in X),
// right-click removes it, and a left click on empty pad space inserts a new
// point. The sequence stays sorted by X ascending after every insertion.
//
// Fill in the fields before calling Draw once per frame; nil pointer fields
// fall back to the theme. The point slice is exclusively borrowed for the
// duration of the call.
type EnvelopeEditor[E EnvelopePoint] struct {
	ID  ID
	Env *[]E

	// NewPoint constructs a point for click-to-insert. Insertion is
	// disabled when nil.
	NewPoint func(x, y float64) E

	// OnChange is invoked with the mutated sequence and the affected index
	// after every move, insert-neighboring mutation or removal.
	OnChange func(env []E, idx int)

	MinX, MaxX float64
	MinY, MaxY float64

	// SkewY reshapes the Y axis mapping: values below 1 stretch the top of
	// the range, values above 1 stretch the bottom. Zero means linear.
	SkewY float64

	Pos Point
	Dim Dim // zero value defaults to 256x128

	PointRadius   float64 // capture radius around each point; 0 means 6
	LineWidth     float64 // connecting line width; 0 means 2
	ValueFontSize float64 // overlay value label size; 0 means 18

	Label         string
	Color         *Color
	FrameWidth    *float64
	FrameColor    *Color
	LabelColor    *Color
	LabelFontSize *float64
}

// Draw runs one frame of the editor: state transition, value mutation,
// handler dispatch and draw-command emission, in that order.
func (e *EnvelopeEditor[E]) Draw(ui *Context, r Renderer) {
	env := *e.Env
	prev := StateFor(ui, e.ID, EnvelopeState{})
	mouse := ui.Mouse()

	skew := e.SkewY
	if skew == 0 {
		skew = 1.0
	}
	dim := e.Dim
	if dim == (Dim{}) {
		dim = Dim{256.0, 128.0}
	}
	ptRadius := e.PointRadius
	if ptRadius == 0 {
		ptRadius = 6.0
	}
	lineWidth := e.LineWidth
	if lineWidth == 0 {
		lineWidth = 2.0
	}
	fontSize := e.ValueFontSize
	if fontSize == 0 {
		fontSize = 18.0
	}

	color := colorOr(e.Color, ui.Theme.ShapeColor)
	frameW := floatOr(e.FrameWidth, ui.Theme.FrameWidth)
	frameColor := colorOr(e.FrameColor, ui.Theme.FrameColor)
	padPos := e.Pos.Add(frameW, frameW)
	padDim := dim.Shrink(frameW)

	perc := make([]envPerc, len(env))
	for i, pt := range env {
		perc[i] = envPerc{
			x:     Percentage(pt.X(), e.MinX, e.MaxX),
			y:     SkewPerc(Percentage(pt.Y(), e.MinY, e.MaxY), skew),
			curve: pt.Curve(),
		}
	}

	over, closest := envOverAndClosest(e.Pos, mouse.Pos, dim, padPos, padDim, perc, ptRadius)
	next := envNextState(over, prev, mouse)

	drawShapeRect(r, e.Pos, dim, frameW, frameColor, color, next.Kind)

	if e.Label != "" {
		lSize := floatOr(e.LabelFontSize, ui.Theme.FontSizeMedium)
		lColor := colorOr(e.LabelColor, ui.Theme.LabelColor)
		lw := TextWidth(ui.Metrics, lSize, e.Label)
		lPos := Point{padPos.X + (padDim.W-lw)/2.0, padPos.Y + (padDim.H-lSize)/2.0}
		r.Text(lPos, lSize, lColor, e.Label)
	}

	if len(perc) > 1 {
		lineColor := color.PlainContrast()
		for i := 1; i < len(perc); i++ {
			a := envPointPixel(padPos, padDim, perc[i-1])
			b := envPointPixel(padPos, padDim, perc[i])
			r.Line(a, b, lineWidth, lineColor)
		}
	}

	// Draw a point's marker and its value label, anchored away from the
	// nearest pad corner.
	drawPoint := func(idx int, p Point) {
		xy := ValueString(env[idx].X(), e.MaxX-e.MinX, int(padDim.W)) +
			", " + ValueString(env[idx].Y(), e.MaxY-e.MinY, int(padDim.H))
		w := TextWidth(ui.Metrics, fontSize, xy)
		var lPos Point
		switch CornerOf(padPos, p, padDim) {
		case TopLeft:
			lPos = p
		case TopRight:
			lPos = Point{p.X - w, p.Y}
		case BottomLeft:
			lPos = Point{p.X, p.Y - fontSize}
		case BottomRight:
			lPos = Point{p.X - w, p.Y - fontSize}
		}
		r.Text(lPos, fontSize, color.PlainContrast(), xy)
		drawCircle(r, p, ptRadius, color.PlainContrast())
	}

	// The active point index, if the next state refers to one. A retained
	// index is only honored while it is still in range; the collection may
	// have shrunk since it was captured.
	activeIdx := -1
	if next.Kind == StateClicked || next.Kind == StateHighlighted {
		switch elem := next.Elem.(type) {
		case IndexedPoint:
			if elem.Idx >= 0 && elem.Idx < len(env) {
				left, right := envXBounds(perc, elem.Idx)
				leftPx := MapRange(left, 0.0, 1.0, padPos.X, padPos.X+padDim.W)
				rightPx := MapRange(right, 0.0, 1.0, padPos.X, padPos.X+padDim.W)
				p := Point{
					X: Clamp(elem.Pos.X, leftPx, rightPx),
					Y: Clamp(elem.Pos.Y, padPos.Y, padPos.Y+padDim.H),
				}
				drawPoint(elem.Idx, p)
				activeIdx = elem.Idx
			}
		case EnvPad:
			if cl, ok := closest.(IndexedPoint); ok && cl.Idx < len(env) {
				drawPoint(cl.Idx, cl.Pos)
			}
		}
	}

	// percAt maps the cursor onto pad percentages: X left-to-right, Y
	// bottom-to-top with the skew removed.
	percAt := func() (xp, yp float64) {
		mx := Clamp(mouse.Pos.X-padPos.X, 0.0, padDim.W)
		my := Clamp(mouse.Pos.Y-padPos.Y, 0.0, padDim.H)
		xp = Percentage(mx, 0.0, padDim.W)
		yp = UnskewPerc(Percentage(my, padDim.H, 0.0), skew)
		return xp, yp
	}
	valueFor := func(idx int) (x, y float64) {
		xp, yp := percAt()
		left, right := envXBounds(perc, idx)
		xp = Clamp(xp, left, right)
		return ValueFromPerc(xp, e.MinX, e.MaxX), ValueFromPerc(yp, e.MinY, e.MaxY)
	}

	if activeIdx >= 0 {
		idx := activeIdx
		switch {
		// Release: apply the final value, or remove on a right click.
		case prev.Kind == StateClicked && (next.Kind == StateHighlighted || next.Kind == StateNormal):
			switch prev.Button {
			case MouseButtonLeft:
				x, y := valueFor(idx)
				env[idx].SetX(x)
				env[idx].SetY(y)
				if e.OnChange != nil {
					e.OnChange(env, idx)
				}
			case MouseButtonRight:
				*e.Env = append(env[:idx], env[idx+1:]...)
				if e.OnChange != nil {
					e.OnChange(*e.Env, idx)
				}
			}

		// Continuous left drag: write and notify only on frames where the
		// clamped value actually moved.
		case prev.Kind == StateClicked && next.Kind == StateClicked &&
			prev.Button == MouseButtonLeft && next.Button == MouseButtonLeft:
			x, y := valueFor(idx)
			if x != env[idx].X() || y != env[idx].Y() {
				env[idx].SetX(x)
				env[idx].SetY(y)
				if e.OnChange != nil {
					e.OnChange(env, idx)
				}
			}
		}
	} else if prev.Kind == StateClicked && prev.Button == MouseButtonLeft && next.Kind == StateHighlighted {
		// A click released over empty pad space inserts a point at the
		// resolved value and keeps the sequence sorted by X.
		if _, overPad := prev.Elem.(EnvPad); overPad && e.NewPoint != nil {
			xp, yp := percAt()
			x := ValueFromPerc(xp, e.MinX, e.MaxX)
			y := ValueFromPerc(yp, e.MinY, e.MaxY)
			*e.Env = append(env, e.NewPoint(x, y))
			sorted := *e.Env
			sort.SliceStable(sorted, func(i, j int) bool {
				return sorted[i].X() < sorted[j].X()
			})
		}
	}

	ui.SetState(e.ID, next, e.Pos, dim)
}
