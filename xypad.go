package interact

// XYPadState is the persisted interaction state of an XYPad. The zero
// value is Normal.
type XYPadState struct {
	Kind InteractionState
}

// padNextState derives the pad's next state from hover, the previous state
// and the sampled left button level.
func padNextState(isOver bool, prev XYPadState, m Mouse) XYPadState {
	switch {
	// A press that did not start from hover is ignored.
	case isOver && prev.Kind == StateNormal && m.Left == ButtonDown:
		return XYPadState{StateNormal}
	case isOver && m.Left == ButtonDown:
		return XYPadState{StateClicked}
	case isOver && m.Left == ButtonUp:
		return XYPadState{StateHighlighted}
	// A drag continues even after the cursor leaves the pad.
	case !isOver && prev.Kind == StateClicked && m.Left == ButtonDown:
		return XYPadState{StateClicked}
	default:
		return XYPadState{StateNormal}
	}
}

// XYPad is a 2D value pad: dragging inside it maps the cursor onto a pair
// of bounded values, X left-to-right and Y bottom-to-top (the screen axis
// is flipped, so value Y grows upward). The pad never stores its values;
// the caller passes the current pair in and receives updates through
// OnChange.
//
// OnChange fires whenever the computed value differs from the passed-in
// one, and additionally on the Highlighted/Clicked boundary in either
// direction even when the value is unchanged, so a click without movement
// still signals intent.
type XYPad struct {
	ID ID

	X, MinX, MaxX float64
	Y, MinY, MaxY float64

	OnChange func(x, y float64)

	Pos Point
	Dim Dim // zero value defaults to 128x128

	LineWidth     float64 // crosshair line width; 0 means 1
	ValueFontSize float64 // overlay value label size; 0 means 18

	Label         string
	Color         *Color
	FrameWidth    *float64
	FrameColor    *Color
	LabelColor    *Color
	LabelFontSize *float64
}

// Draw runs one frame of the pad.
func (p *XYPad) Draw(ui *Context, r Renderer) {
	prev := StateFor(ui, p.ID, XYPadState{})
	mouse := ui.Mouse()

	dim := p.Dim
	if dim == (Dim{}) {
		dim = Dim{128.0, 128.0}
	}
	lineWidth := p.LineWidth
	if lineWidth == 0 {
		lineWidth = 1.0
	}
	fontSize := p.ValueFontSize
	if fontSize == 0 {
		fontSize = 18.0
	}

	color := colorOr(p.Color, ui.Theme.ShapeColor)
	frameW := floatOr(p.FrameWidth, ui.Theme.FrameWidth)
	frameColor := colorOr(p.FrameColor, ui.Theme.FrameColor)
	padPos := p.Pos.Add(frameW, frameW)
	padDim := dim.Shrink(frameW)

	isOver := IsOver(padPos, padDim, mouse.Pos)
	next := padNextState(isOver, prev, mouse)

	// Only a held pad tracks the cursor; otherwise the passed-in value
	// stands.
	newX, newY := p.X, p.Y
	if next.Kind == StateClicked {
		tx := Clamp(mouse.Pos.X, padPos.X, padPos.X+padDim.W)
		ty := Clamp(mouse.Pos.Y, padPos.Y, padPos.Y+padDim.H)
		newX = MapRange(tx-padPos.X, 0.0, padDim.W, p.MinX, p.MaxX)
		newY = MapRange(ty-padPos.Y, padDim.H, 0.0, p.MinY, p.MaxY)
	}

	if p.OnChange != nil {
		crossed := (prev.Kind == StateHighlighted && next.Kind == StateClicked) ||
			(prev.Kind == StateClicked && next.Kind == StateHighlighted)
		if newX != p.X || newY != p.Y || crossed {
			p.OnChange(newX, newY)
		}
	}

	drawShapeRect(r, p.Pos, dim, frameW, frameColor, color, next.Kind)

	// Crosshair at the current value, or pinned to the cursor while held.
	var vertX, horiY float64
	if next.Kind == StateClicked {
		vertX = Clamp(mouse.Pos.X, padPos.X, padPos.X+padDim.W)
		horiY = Clamp(mouse.Pos.Y, padPos.Y, padPos.Y+padDim.H)
	} else {
		vertX = padPos.X + MapRange(newX, p.MinX, p.MaxX, 0.0, padDim.W)
		horiY = padPos.Y + MapRange(newY, p.MinY, p.MaxY, padDim.H, 0.0)
	}
	cross := color.PlainContrast()
	r.Line(Point{vertX, padPos.Y}, Point{vertX, padPos.Y + padDim.H}, lineWidth, cross)
	r.Line(Point{padPos.X, horiY}, Point{padPos.X + padDim.W, horiY}, lineWidth, cross)

	if p.Label != "" {
		lSize := floatOr(p.LabelFontSize, ui.Theme.FontSizeMedium)
		lColor := colorOr(p.LabelColor, ui.Theme.LabelColor)
		lw := TextWidth(ui.Metrics, lSize, p.Label)
		lPos := Point{padPos.X + (padDim.W-lw)/2.0, padPos.Y + (padDim.H-lSize)/2.0}
		r.Text(lPos, lSize, lColor, p.Label)
	}

	// Value readout anchored away from the nearest pad corner.
	xy := ValueString(newX, p.MaxX-p.MinX, int(dim.W)) +
		", " + ValueString(newY, p.MaxY-p.MinY, int(dim.H))
	w := TextWidth(ui.Metrics, fontSize, xy)
	cursor := Point{vertX, horiY}
	var xyPos Point
	switch CornerOf(padPos, cursor, padDim) {
	case TopLeft:
		xyPos = cursor
	case TopRight:
		xyPos = Point{cursor.X - w, cursor.Y}
	case BottomLeft:
		xyPos = Point{cursor.X, cursor.Y - fontSize}
	case BottomRight:
		xyPos = Point{cursor.X - w, cursor.Y - fontSize}
	}
	r.Text(xyPos, fontSize, color.PlainContrast(), xy)

	ui.SetState(p.ID, next, p.Pos, dim)
}
