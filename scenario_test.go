package interact_test

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/agiangrant/interact"
	"github.com/agiangrant/interact/uitest"
)

// Full gestures replayed from scripts, exercising the widgets the way an
// application loop would.

func TestScriptedEnvelopeDrag(t *testing.T) {
	script, err := uitest.LoadFile(filepath.Join("testdata", "envelope_drag.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	ctx := interact.NewContext(800, 600)
	var dl interact.DisplayList
	zero := 0.0
	env := []*interact.BasicPoint{interact.NewBasicPoint(0.5, 0.5)}

	var calls int
	ed := &interact.EnvelopeEditor[*interact.BasicPoint]{
		ID:       1,
		Env:      &env,
		NewPoint: interact.NewBasicPoint,
		OnChange: func(e []*interact.BasicPoint, idx int) {
			calls++
			if idx != 0 {
				t.Errorf("changed idx = %d, want 0", idx)
			}
		},
		MaxX:       1,
		MaxY:       1,
		Dim:        interact.Dim{W: 128, H: 128},
		FrameWidth: &zero,
	}

	script.Run(ctx, func(frame int) {
		dl.Reset()
		ed.Draw(ctx, &dl)
	})

	if len(env) != 1 {
		t.Fatalf("len(env) = %d, want 1", len(env))
	}
	if math.Abs(env[0].X()-0.75) > 1e-9 || math.Abs(env[0].Y()-0.75) > 1e-9 {
		t.Errorf("final point = (%v, %v), want (0.75, 0.75)", env[0].X(), env[0].Y())
	}
	if calls == 0 {
		t.Error("drag produced no change notifications")
	}
}

func TestScriptedTextBoxEdit(t *testing.T) {
	script, err := uitest.LoadFile(filepath.Join("testdata", "textbox_edit.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	ctx := interact.NewContext(800, 600)
	var dl interact.DisplayList
	zero := 0.0
	text := "abc"

	var submitted string
	box := &interact.TextBox{
		ID:   3,
		Text: &text,
		OnSubmit: func(s *string) {
			submitted = *s
		},
		FontSize:   24,
		Dim:        interact.Dim{W: 192, H: 48},
		FrameWidth: &zero,
	}

	script.Run(ctx, func(frame int) {
		dl.Reset()
		box.Draw(ctx, &dl)
	})

	// "Z" typed after 'a', then backspaced away, then submitted.
	if text != "abc" {
		t.Errorf("text = %q, want %q", text, "abc")
	}
	if submitted != "abc" {
		t.Errorf("submitted = %q, want %q", submitted, "abc")
	}
}
