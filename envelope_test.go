package interact

import (
	"math"
	"sort"
	"testing"
)

func mouseFrame(x, y float64, left, right ButtonState) Input {
	return Input{Mouse: Mouse{Pos: Point{x, y}, Left: left, Right: right}}
}

// testEditor builds a frameless 128x128 editor over the unit value square,
// so pad pixels map straight onto value percentages.
func testEditor(env *[]*BasicPoint, onChange func([]*BasicPoint, int)) *EnvelopeEditor[*BasicPoint] {
	zero := 0.0
	return &EnvelopeEditor[*BasicPoint]{
		ID:         1,
		Env:        env,
		NewPoint:   NewBasicPoint,
		OnChange:   onChange,
		MaxX:       1,
		MaxY:       1,
		Pos:        Point{0, 0},
		Dim:        Dim{128, 128},
		FrameWidth: &zero,
	}
}

func points(xys ...float64) []*BasicPoint {
	env := make([]*BasicPoint, 0, len(xys)/2)
	for i := 0; i+1 < len(xys); i += 2 {
		env = append(env, NewBasicPoint(xys[i], xys[i+1]))
	}
	return env
}

func TestEnvNextState(t *testing.T) {
	pt := IndexedPoint{Idx: 1, Pos: Point{64, 64}}
	mousePos := Point{70, 70}
	mouse := func(left, right ButtonState) Mouse {
		return Mouse{Pos: mousePos, Left: left, Right: right}
	}

	tests := []struct {
		name string
		over EnvelopeElement
		prev EnvelopeState
		m    Mouse
		want EnvelopeState
	}{
		{
			name: "press must start from hover",
			over: EnvPad{},
			prev: EnvelopeState{},
			m:    mouse(ButtonDown, ButtonUp),
			want: EnvelopeState{},
		},
		{
			name: "buttons up over element highlights it",
			over: EnvPad{},
			prev: EnvelopeState{},
			m:    mouse(ButtonUp, ButtonUp),
			want: EnvelopeState{Kind: StateHighlighted, Elem: EnvPad{}},
		},
		{
			name: "left press from hover clicks the current element",
			over: pt,
			prev: EnvelopeState{Kind: StateHighlighted, Elem: pt},
			m:    mouse(ButtonDown, ButtonUp),
			want: EnvelopeState{Kind: StateClicked, Elem: pt, Button: MouseButtonLeft},
		},
		{
			name: "held capture refreshes the element position",
			over: EnvPad{},
			prev: EnvelopeState{Kind: StateClicked, Elem: pt, Button: MouseButtonLeft},
			m:    mouse(ButtonDown, ButtonUp),
			want: EnvelopeState{Kind: StateClicked, Elem: IndexedPoint{Idx: 1, Pos: mousePos}, Button: MouseButtonLeft},
		},
		{
			name: "left drag continues off the widget",
			over: nil,
			prev: EnvelopeState{Kind: StateClicked, Elem: pt, Button: MouseButtonLeft},
			m:    mouse(ButtonDown, ButtonUp),
			want: EnvelopeState{Kind: StateClicked, Elem: IndexedPoint{Idx: 1, Pos: mousePos}, Button: MouseButtonLeft},
		},
		{
			name: "right press from hover clicks with the right button",
			over: EnvPad{},
			prev: EnvelopeState{Kind: StateHighlighted, Elem: pt},
			m:    mouse(ButtonUp, ButtonDown),
			want: EnvelopeState{Kind: StateClicked, Elem: IndexedPoint{Idx: 1, Pos: mousePos}, Button: MouseButtonRight},
		},
		{
			name: "release off the widget drops to normal",
			over: nil,
			prev: EnvelopeState{Kind: StateClicked, Elem: pt, Button: MouseButtonLeft},
			m:    mouse(ButtonUp, ButtonUp),
			want: EnvelopeState{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := envNextState(tt.over, tt.prev, tt.m); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEnvelopeHoverIdempotent(t *testing.T) {
	ctx := NewContext(800, 600)
	var dl DisplayList
	env := points(0.5, 0.5)
	ed := testEditor(&env, nil)

	var states []EnvelopeState
	for i := 0; i < 3; i++ {
		ctx.BeginFrame(mouseFrame(64, 64, ButtonUp, ButtonUp))
		ed.Draw(ctx, &dl)
		states = append(states, StateFor(ctx, ed.ID, EnvelopeState{}))
	}

	for i, s := range states {
		if s.Kind != StateHighlighted {
			t.Fatalf("frame %d: kind = %v, want Highlighted", i, s.Kind)
		}
		if s != states[0] {
			t.Errorf("frame %d: state %+v differs from frame 0 %+v", i, s, states[0])
		}
	}
}

func TestEnvelopeClickInsertsPoint(t *testing.T) {
	// Scenario: empty list, click at (64,64) of a 128x128 pad over the
	// unit square inserts a point at (0.5, 0.5).
	ctx := NewContext(800, 600)
	var dl DisplayList
	env := []*BasicPoint{}
	ed := testEditor(&env, nil)

	frames := []Input{
		mouseFrame(64, 64, ButtonUp, ButtonUp),
		mouseFrame(64, 64, ButtonDown, ButtonUp),
		mouseFrame(64, 64, ButtonUp, ButtonUp),
	}
	for _, in := range frames {
		ctx.BeginFrame(in)
		ed.Draw(ctx, &dl)
	}

	if len(env) != 1 {
		t.Fatalf("len(env) = %d, want 1", len(env))
	}
	if math.Abs(env[0].X()-0.5) > 1e-9 || math.Abs(env[0].Y()-0.5) > 1e-9 {
		t.Errorf("inserted point = (%v, %v), want (0.5, 0.5)", env[0].X(), env[0].Y())
	}
}

func TestEnvelopeInsertKeepsSorted(t *testing.T) {
	ctx := NewContext(800, 600)
	var dl DisplayList
	env := []*BasicPoint{}
	ed := testEditor(&env, nil)

	// Insert out of X order: right, left, middle.
	for _, x := range []float64{96, 32, 64} {
		ctx.BeginFrame(mouseFrame(x, 64, ButtonUp, ButtonUp))
		ed.Draw(ctx, &dl)
		ctx.BeginFrame(mouseFrame(x, 64, ButtonDown, ButtonUp))
		ed.Draw(ctx, &dl)
		ctx.BeginFrame(mouseFrame(x, 64, ButtonUp, ButtonUp))
		ed.Draw(ctx, &dl)
	}

	if len(env) != 3 {
		t.Fatalf("len(env) = %d, want 3", len(env))
	}
	if !sort.SliceIsSorted(env, func(i, j int) bool { return env[i].X() < env[j].X() }) {
		xs := []float64{env[0].X(), env[1].X(), env[2].X()}
		t.Errorf("points not sorted by X: %v", xs)
	}
}

func TestEnvelopeDragClampsToNeighbors(t *testing.T) {
	ctx := NewContext(800, 600)
	var dl DisplayList
	env := points(0.25, 0.5, 0.5, 0.5, 0.75, 0.5)
	ed := testEditor(&env, nil)

	frames := []Input{
		mouseFrame(64, 64, ButtonUp, ButtonUp),   // hover middle point
		mouseFrame(64, 64, ButtonDown, ButtonUp), // press
		mouseFrame(120, 64, ButtonDown, ButtonUp), // drag far right
	}
	for _, in := range frames {
		ctx.BeginFrame(in)
		ed.Draw(ctx, &dl)
	}

	if got := env[1].X(); got != 0.75 {
		t.Errorf("dragged X = %v, want clamp at neighbor 0.75", got)
	}
	if env[0].X() != 0.25 || env[2].X() != 0.75 {
		t.Errorf("neighbors moved: %v, %v", env[0].X(), env[2].X())
	}
}

func TestEnvelopeDragCallbackStream(t *testing.T) {
	ctx := NewContext(800, 600)
	var dl DisplayList
	env := points(0.5, 0.5)

	var calls int
	ed := testEditor(&env, func(e []*BasicPoint, idx int) {
		calls++
		if idx != 0 {
			t.Errorf("callback idx = %d, want 0", idx)
		}
	})

	frames := []Input{
		mouseFrame(64, 64, ButtonUp, ButtonUp),
		mouseFrame(64, 64, ButtonDown, ButtonUp),
		mouseFrame(70, 64, ButtonDown, ButtonUp), // moves: fires
		mouseFrame(70, 64, ButtonDown, ButtonUp), // stationary: silent
		mouseFrame(70, 64, ButtonUp, ButtonUp),   // release: fires
	}
	for _, in := range frames {
		ctx.BeginFrame(in)
		ed.Draw(ctx, &dl)
	}

	if calls != 2 {
		t.Errorf("calls = %d, want 2 (one per change, one on release)", calls)
	}
	if want := 70.0 / 128.0; math.Abs(env[0].X()-want) > 1e-9 {
		t.Errorf("final X = %v, want %v", env[0].X(), want)
	}
}

func TestEnvelopeRightClickRemovesPoint(t *testing.T) {
	// Scenario: right-click release on point 2 of a 5-point envelope
	// shrinks it to 4 and reports index 2.
	ctx := NewContext(800, 600)
	var dl DisplayList
	env := points(0, 0.5, 0.25, 0.5, 0.5, 0.5, 0.75, 0.5, 1, 0.5)

	var gotIdx, gotLen, calls int
	ed := testEditor(&env, func(e []*BasicPoint, idx int) {
		calls++
		gotIdx = idx
		gotLen = len(e)
	})

	frames := []Input{
		mouseFrame(64, 64, ButtonUp, ButtonUp),   // hover point 2
		mouseFrame(64, 64, ButtonUp, ButtonDown), // right press
		mouseFrame(64, 64, ButtonUp, ButtonUp),   // release: remove
	}
	for _, in := range frames {
		ctx.BeginFrame(in)
		ed.Draw(ctx, &dl)
	}

	if len(env) != 4 {
		t.Fatalf("len(env) = %d, want 4", len(env))
	}
	if calls != 1 || gotIdx != 2 || gotLen != 4 {
		t.Errorf("callback calls=%d idx=%d len=%d, want 1, 2, 4", calls, gotIdx, gotLen)
	}
	// The removed X value is gone.
	for _, p := range env {
		if p.X() == 0.5 {
			t.Errorf("point at X=0.5 still present")
		}
	}
}

func TestEnvelopeStaleIndexFallsBack(t *testing.T) {
	ctx := NewContext(800, 600)
	var dl DisplayList
	env := points(0.25, 0.5, 0.75, 0.5)
	ed := testEditor(&env, func(e []*BasicPoint, idx int) {
		t.Errorf("callback fired for stale index %d", idx)
	})

	// A captured index that outlived a shrink of the collection.
	ctx.SetState(ed.ID, EnvelopeState{
		Kind:   StateClicked,
		Elem:   IndexedPoint{Idx: 5, Pos: Point{64, 64}},
		Button: MouseButtonLeft,
	}, Point{0, 0}, Dim{128, 128})

	ctx.BeginFrame(mouseFrame(200, 200, ButtonDown, ButtonUp))
	ed.Draw(ctx, &dl) // must not index out of bounds

	ctx.BeginFrame(mouseFrame(200, 200, ButtonUp, ButtonUp))
	ed.Draw(ctx, &dl)

	if got := StateFor(ctx, ed.ID, EnvelopeState{}); got.Kind != StateNormal {
		t.Errorf("state after stale release = %+v, want Normal", got)
	}
	if len(env) != 2 {
		t.Errorf("len(env) = %d, want 2 (untouched)", len(env))
	}
}

func TestEnvelopeSkewedInsert(t *testing.T) {
	ctx := NewContext(800, 600)
	var dl DisplayList
	env := []*BasicPoint{}
	ed := testEditor(&env, nil)
	ed.SkewY = 2

	// Click at the vertical midpoint: the pixel percentage 0.5 squares to
	// a value percentage of 0.25 under skew 2.
	frames := []Input{
		mouseFrame(64, 64, ButtonUp, ButtonUp),
		mouseFrame(64, 64, ButtonDown, ButtonUp),
		mouseFrame(64, 64, ButtonUp, ButtonUp),
	}
	for _, in := range frames {
		ctx.BeginFrame(in)
		ed.Draw(ctx, &dl)
	}

	if len(env) != 1 {
		t.Fatalf("len(env) = %d, want 1", len(env))
	}
	if math.Abs(env[0].Y()-0.25) > 1e-9 {
		t.Errorf("skewed Y = %v, want 0.25", env[0].Y())
	}
}

func BenchmarkEnvelopeEditorDraw(b *testing.B) {
	ctx := NewContext(800, 600)
	var dl DisplayList
	env := points(0, 0.1, 0.2, 0.9, 0.4, 0.3, 0.6, 0.7, 0.8, 0.2, 1, 0.8)
	ed := testEditor(&env, nil)
	ctx.BeginFrame(mouseFrame(64, 64, ButtonUp, ButtonUp))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dl.Reset()
		ed.Draw(ctx, &dl)
	}
}
