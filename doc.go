// Package interact is the interaction core of an immediate-mode UI toolkit.
// It turns raw per-frame input (pointer position, button levels, keystrokes)
// into discrete widget states and value mutations, re-derived every frame
// with no retained object graph.
//
// Each widget is a plain configuration struct with a Draw method. Draw reads
// the widget's persisted state from a Context, hit-tests the current
// geometry, computes the next state from a per-widget transition table,
// applies any value mutation, invokes the caller's handler on well-defined
// transition edges, emits draw commands to a Renderer, and writes the next
// state back. All of this happens inline in one single-threaded call per
// widget per frame; the widget exclusively borrows its value collection for
// the duration of the call.
//
// Known limitation: button transitions are inferred by comparing the sampled
// level state against the previous frame's state rather than from explicit
// press/release events. A press and release that both occur between two
// samples are not observed and produce no click.
package interact
