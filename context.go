package interact

// ID is an opaque, stable handle distinguishing widget instances across
// frames. The surrounding application allocates IDs and must hand the same
// ID to the same logical widget every frame; the core never generates them.
type ID uint64

// InteractionState is the discrete interaction kind shared by every widget
// state machine.
type InteractionState uint8

const (
	StateNormal InteractionState = iota
	StateHighlighted
	StateClicked
)

// Context carries everything a widget needs for one frame: window size,
// theme, glyph metrics, the frame's input snapshot, and the identity-keyed
// store of persisted widget states. It is owned by the application loop and
// passed into every per-frame Draw call. Single-threaded: one widget call
// at a time, read-then-write.
type Context struct {
	WinW, WinH float64

	Theme   *Theme
	Metrics GlyphMeasurer

	input Input

	state  map[ID]any
	bounds map[ID]widgetBounds
}

type widgetBounds struct {
	Pos Point
	Dim Dim
}

// NewContext creates a context for a window of the given pixel size, with
// the default theme and cell-based glyph metrics.
func NewContext(winW, winH float64) *Context {
	return &Context{
		WinW:    winW,
		WinH:    winH,
		Theme:   DefaultTheme(),
		Metrics: CellMetrics{},
		state:   make(map[ID]any),
		bounds:  make(map[ID]widgetBounds),
	}
}

// BeginFrame installs the input snapshot for the coming frame. Call it once
// per frame before drawing any widget.
func (c *Context) BeginFrame(in Input) {
	c.input = in
}

// Mouse returns this frame's pointer snapshot.
func (c *Context) Mouse() Mouse {
	return c.input.Mouse
}

// PressedKeys returns the navigation/edit keys pressed this frame.
func (c *Context) PressedKeys() []Key {
	return c.input.Keys
}

// EnteredText returns the text fragments committed this frame.
func (c *Context) EnteredText() []string {
	return c.input.Entered
}

// SetState persists a widget's state and current bounds under its identity.
// Widgets call it at the end of every Draw; the recorded bounds are also
// available to layout and clipping code outside this core.
func (c *Context) SetState(id ID, state any, pos Point, dim Dim) {
	c.state[id] = state
	c.bounds[id] = widgetBounds{pos, dim}
}

// WidgetBounds reports the position and dimensions a widget was last drawn
// with.
func (c *Context) WidgetBounds(id ID) (Point, Dim, bool) {
	b, ok := c.bounds[id]
	return b.Pos, b.Dim, ok
}

// StateFor returns the persisted state for id, or def the first time an
// identity is seen. A stored state of a different widget kind also falls
// back to def, so reusing an identity across kinds cannot alias states.
func StateFor[S any](c *Context, id ID, def S) S {
	if s, ok := c.state[id].(S); ok {
		return s
	}
	return def
}
