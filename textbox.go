package interact

// textPadding is the gap between the pad's left edge and the text origin.
const textPadding = 5.0

// ============================================================================
// Elements and state
// ============================================================================

// TextBoxElementKind classifies the sub-region of a TextBox under the
// cursor.
type TextBoxElementKind uint8

const (
	// TextElemNone means the cursor is outside the widget entirely.
	TextElemNone TextBoxElementKind = iota

	// TextElemRect is the border region.
	TextElemRect

	// TextElemText is the interior; Idx and CursorX carry the closest
	// character position.
	TextElemText
)

// TextBoxElement is the hit-tested sub-region of a TextBox. For
// TextElemText, Idx is the character index closest to the cursor and
// CursorX the pixel X the text cursor would land on.
type TextBoxElement struct {
	Kind    TextBoxElementKind
	Idx     int
	CursorX float64
}

// TextBoxState is the persisted state of a TextBox. The redraw state
// (Kind/Elem) and the capture axis are orthogonal: capture persists across
// frames regardless of hover until explicitly released. While Captured, Idx
// and CursorX locate the text cursor.
type TextBoxState struct {
	Kind InteractionState
	Elem TextBoxElement

	Captured bool
	Idx      int
	CursorX  float64
}

// ============================================================================
// Hit testing
// ============================================================================

// textClosestIdx finds the character index whose boundary is closest to the
// cursor, along with the pixel X of that boundary. Each character's zone
// extends to half its width past its left edge.
func textClosestIdx(m GlyphMeasurer, mousePos Point, textX, textW, fontSize float64, text string) (int, float64) {
	if mousePos.X <= textX {
		return 0, textX
	}
	x := textX
	prevX := x
	leftX := textX
	runes := []rune(text)
	for i, ch := range runes {
		charW := m.CharWidth(fontSize, ch)
		x += charW
		rightX := prevX + charW/2.0
		if mousePos.X > leftX && mousePos.X < rightX {
			return i, prevX
		}
		prevX = x
		leftX = rightX
	}
	return len(runes), textX + textW
}

// textOverElem classifies the cursor position into a TextBoxElement.
func textOverElem(m GlyphMeasurer, pos, mousePos Point, dim Dim, padPos Point, padDim Dim, textPos Point, textW, fontSize float64, text string) TextBoxElement {
	if !IsOver(pos, dim, mousePos) {
		return TextBoxElement{Kind: TextElemNone}
	}
	if !IsOver(padPos, padDim, mousePos) {
		return TextBoxElement{Kind: TextElemRect}
	}
	idx, cursorX := textClosestIdx(m, mousePos, textPos.X, textW, fontSize, text)
	return TextBoxElement{Kind: TextElemText, Idx: idx, CursorX: cursorX}
}

// ============================================================================
// Transition table
// ============================================================================

// textNextState derives the next TextBox state. The redraw half follows the
// usual hover/click table; capture is entered when a click-release cycle
// completes over the text and released by clicking through on empty space.
func textNextState(over TextBoxElement, prev TextBoxState, left ButtonState) TextBoxState {
	uncaptured := func(kind InteractionState, elem TextBoxElement) TextBoxState {
		return TextBoxState{Kind: kind, Elem: elem}
	}
	captured := func(kind InteractionState, elem TextBoxElement, idx int, cursorX float64) TextBoxState {
		return TextBoxState{Kind: kind, Elem: elem, Captured: true, Idx: idx, CursorX: cursorX}
	}

	if !prev.Captured {
		switch {
		case prev.Kind == StateNormal && left == ButtonDown:
			return uncaptured(StateNormal, TextBoxElement{})
		case over.Kind == TextElemNone && left == ButtonUp &&
			(prev.Kind == StateNormal || prev.Kind == StateHighlighted):
			return uncaptured(StateNormal, TextBoxElement{})
		case left == ButtonUp && (prev.Kind == StateNormal || prev.Kind == StateHighlighted):
			return uncaptured(StateHighlighted, over)
		case left == ButtonDown && (prev.Kind == StateHighlighted || prev.Kind == StateClicked):
			return uncaptured(StateClicked, prev.Elem)
		case over.Kind == TextElemText && prev.Kind == StateClicked &&
			prev.Elem.Kind == TextElemText && left == ButtonUp:
			return captured(StateHighlighted, over, over.Idx, over.CursorX)
		case over.Kind == TextElemNone:
			return uncaptured(StateNormal, TextBoxElement{})
		default:
			return prev
		}
	}

	switch {
	// A click released on empty space while the clicked element was also
	// empty space lets focus go.
	case over.Kind == TextElemNone && prev.Kind == StateClicked &&
		prev.Elem.Kind == TextElemNone && left == ButtonUp:
		return uncaptured(StateNormal, TextBoxElement{})
	// A click landing inside the text re-positions the cursor.
	case over.Kind == TextElemText && prev.Kind == StateClicked &&
		prev.Elem.Kind == TextElemText && left == ButtonUp:
		return captured(StateHighlighted, over, over.Idx, over.CursorX)
	case left == ButtonUp:
		return captured(StateHighlighted, over, prev.Idx, prev.CursorX)
	case left == ButtonDown && (prev.Kind == StateHighlighted || prev.Kind == StateClicked):
		return captured(StateClicked, prev.Elem, prev.Idx, prev.CursorX)
	default:
		return prev
	}
}

// ============================================================================
// Widget
// ============================================================================

// TextBox is a single-line editable text field over a caller-owned string.
// A completed click on the text captures the cursor; while captured,
// committed text fragments splice in at the cursor (rejected once they
// would overflow the interior width), Backspace and the arrow keys edit and
// move, and Return hands the text to OnSubmit, which may mutate it.
type TextBox struct {
	ID   ID
	Text *string

	// OnSubmit is invoked on Return with the current text. After it
	// returns the cursor is re-clamped to the possibly mutated text.
	OnSubmit func(text *string)

	FontSize float64 // 0 means 24

	Pos Point
	Dim Dim // zero value defaults to 192x48

	Color      *Color
	FrameWidth *float64
	FrameColor *Color
}

// rectState maps the combined state onto the rectangle redraw state; a
// captured box draws its body as normal and shows the cursor instead.
func (s TextBoxState) rectState() InteractionState {
	if s.Captured {
		return StateNormal
	}
	return s.Kind
}

// Draw runs one frame of the text box.
func (t *TextBox) Draw(ui *Context, r Renderer) {
	prev := StateFor(ui, t.ID, TextBoxState{})
	mouse := ui.Mouse()

	fontSize := t.FontSize
	if fontSize == 0 {
		fontSize = 24.0
	}
	dim := t.Dim
	if dim == (Dim{}) {
		dim = Dim{192.0, 48.0}
	}

	color := colorOr(t.Color, ui.Theme.ShapeColor)
	frameW := floatOr(t.FrameWidth, ui.Theme.FrameWidth)
	frameColor := colorOr(t.FrameColor, ui.Theme.FrameColor)
	padPos := t.Pos.Add(frameW, frameW)
	padDim := dim.Shrink(frameW)

	textX := padPos.X + textPadding
	textY := padPos.Y + (padDim.H-fontSize)/2.0
	textW := TextWidth(ui.Metrics, fontSize, *t.Text)

	over := textOverElem(ui.Metrics, t.Pos, mouse.Pos, dim, padPos, padDim,
		Point{textX, textY}, textW, fontSize, *t.Text)
	next := textNextState(over, prev, mouse.Left)

	drawShapeRect(r, t.Pos, dim, frameW, frameColor, color, next.rectState())
	r.Text(Point{textX, textY}, fontSize, color.PlainContrast(), *t.Text)

	if next.Captured {
		r.Line(Point{next.CursorX, padPos.Y}, Point{next.CursorX, padPos.Y + padDim.H},
			1.0, color.PlainContrast())

		idx := next.Idx
		cursorX := next.CursorX
		runes := []rune(*t.Text)
		// The text may have been mutated externally since the cursor was
		// captured.
		if idx > len(runes) {
			idx = len(runes)
		}

		for _, frag := range ui.EnteredText() {
			fragW := TextWidth(ui.Metrics, fontSize, frag)
			if cursorX+fragW >= padPos.X+padDim.W-textPadding {
				break
			}
			cursorX += fragW
			fragRunes := []rune(frag)
			runes = append(runes[:idx], append(fragRunes, runes[idx:]...)...)
			idx += len(fragRunes)
		}

		for _, key := range ui.PressedKeys() {
			switch key {
			case KeyBackspace:
				if idx > 0 && len(runes) > 0 {
					cursorX -= ui.Metrics.CharWidth(fontSize, runes[idx-1])
					runes = append(runes[:idx-1], runes[idx:]...)
					idx--
				}
			case KeyLeft:
				if idx > 0 {
					cursorX -= ui.Metrics.CharWidth(fontSize, runes[idx-1])
					idx--
				}
			case KeyRight:
				if idx < len(runes) {
					cursorX += ui.Metrics.CharWidth(fontSize, runes[idx])
					idx++
				}
			case KeyReturn:
				if len(runes) > 0 && t.OnSubmit != nil {
					*t.Text = string(runes)
					t.OnSubmit(t.Text)
					runes = []rune(*t.Text)
					if idx > len(runes) {
						idx = len(runes)
					}
					cursorX = textX + TextWidth(ui.Metrics, fontSize, string(runes[:idx]))
				}
			}
		}

		*t.Text = string(runes)
		next.Idx = idx
		next.CursorX = cursorX
	}

	ui.SetState(t.ID, next, t.Pos, dim)
}
