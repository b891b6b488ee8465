// Package mark holds the saved buffer position that turns cursor motion
// into selection extension. Each editor view owns one Mark.
package mark

import "github.com/dshills/markstorm/internal/engine/buffer"

// Mark is a saved buffer position. While set, movement commands extend
// the selection from the mark to the motion target instead of
// collapsing it.
type Mark struct {
	pos buffer.Point
	set bool
}

// New returns an unset mark.
func New() *Mark {
	return &Mark{}
}

// Set records p as the mark position. Setting an already-set mark moves
// it; there is no toggle.
func (m *Mark) Set(p buffer.Point) {
	m.pos = p
	m.set = true
}

// Clear unsets the mark.
func (m *Mark) Clear() {
	m.pos = buffer.Point{}
	m.set = false
}

// IsSet reports whether a mark position is recorded.
func (m *Mark) IsSet() bool {
	return m.set
}

// Position returns the mark position; ok is false when unset.
func (m *Mark) Position() (buffer.Point, bool) {
	return m.pos, m.set
}
