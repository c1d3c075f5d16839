package interact

// ButtonState is the sampled level state of a mouse button. It is a level,
// not an edge: press and release transitions are inferred by comparing the
// sample against the previous frame's widget state.
type ButtonState uint8

const (
	ButtonUp ButtonState = iota
	ButtonDown
)

// MouseButton identifies which mouse button a gesture was captured with.
type MouseButton uint8

const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
)

// Mouse is the per-frame pointer snapshot.
type Mouse struct {
	Pos   Point
	Left  ButtonState
	Right ButtonState
}

// Key identifies a navigation/edit key. Printable input arrives through
// Input.Entered instead, committed by the platform text-input path.
type Key uint8

const (
	KeyNone Key = iota
	KeyBackspace
	KeyLeft
	KeyRight
	KeyReturn
)

// Input is the immutable per-frame input record. The core never polls
// devices; the surrounding application loop fills one of these per frame
// and hands it to Context.BeginFrame.
type Input struct {
	Mouse Mouse

	// Keys holds the navigation/edit keys pressed this frame.
	Keys []Key

	// Entered holds the text fragments committed this frame.
	Entered []string
}
