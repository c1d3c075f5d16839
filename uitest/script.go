// Package uitest replays scripted input against an interact.Context. A
// script is a flat list of frames, each describing one frame's pointer and
// keyboard snapshot; tests and examples use it to drive multi-frame
// gestures deterministically.
package uitest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/agiangrant/interact"
)

// Frame is one simulated frame of input.
type Frame struct {
	Mouse struct {
		X float64 `yaml:"x"`
		Y float64 `yaml:"y"`
	} `yaml:"mouse"`
	Left  bool     `yaml:"left"`
	Right bool     `yaml:"right"`
	Keys  []string `yaml:"keys"`
	Text  []string `yaml:"text"`

	// Repeat replays this frame that many extra times.
	Repeat int `yaml:"repeat"`
}

// Script is an ordered sequence of input frames.
type Script struct {
	Frames []Frame `yaml:"frames"`
}

var keyNames = map[string]interact.Key{
	"backspace": interact.KeyBackspace,
	"left":      interact.KeyLeft,
	"right":     interact.KeyRight,
	"return":    interact.KeyReturn,
}

// Load parses a YAML script.
func Load(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse input script: %w", err)
	}
	for i, f := range s.Frames {
		for _, name := range f.Keys {
			if _, ok := keyNames[name]; !ok {
				return nil, fmt.Errorf("frame %d: unknown key %q", i, name)
			}
		}
	}
	return &s, nil
}

// LoadFile reads and parses a YAML script file.
func LoadFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input script: %w", err)
	}
	return Load(data)
}

func button(down bool) interact.ButtonState {
	if down {
		return interact.ButtonDown
	}
	return interact.ButtonUp
}

// Input converts a frame into the core's per-frame input record.
func (f Frame) Input() interact.Input {
	in := interact.Input{
		Mouse: interact.Mouse{
			Pos:   interact.Point{X: f.Mouse.X, Y: f.Mouse.Y},
			Left:  button(f.Left),
			Right: button(f.Right),
		},
		Entered: f.Text,
	}
	for _, name := range f.Keys {
		in.Keys = append(in.Keys, keyNames[name])
	}
	return in
}

// Run replays the script: for each frame (honoring Repeat) it begins a
// context frame with the frame's input and calls step with the running
// frame number.
func (s *Script) Run(ctx *interact.Context, step func(frame int)) {
	n := 0
	for _, f := range s.Frames {
		for i := 0; i <= f.Repeat; i++ {
			ctx.BeginFrame(f.Input())
			step(n)
			n++
		}
	}
}
