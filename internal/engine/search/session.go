package search

import "github.com/dshills/markstorm/internal/engine/buffer"

// Direction selects the scan direction of a search session.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Delta returns the index step for the direction: +1 forward, -1
// backward.
func (d Direction) Delta() int {
	if d == Backward {
		return -1
	}
	return 1
}

// Session holds the state of one incremental search, owned by a single
// editor view. While inactive, Matches is nil, Index is -1, Query is
// empty, and Anchor is the zero point.
type Session struct {
	Active    bool
	Direction Direction
	Anchor    buffer.Point // cursor position when the session opened
	Query     string
	Matches   []Match
	Index     int // index into Matches, or -1
}

// NewSession returns an idle session.
func NewSession() *Session {
	return &Session{Index: -1}
}

// Start opens the session anchored at the given cursor position.
func (s *Session) Start(dir Direction, anchor buffer.Point) {
	s.Active = true
	s.Direction = dir
	s.Anchor = anchor
	s.Query = ""
	s.Matches = nil
	s.Index = -1
}

// Reset returns the session to the idle state.
func (s *Session) Reset() {
	*s = Session{Index: -1}
}

// HasMatches reports whether the live query has any matches.
func (s *Session) HasMatches() bool {
	return len(s.Matches) > 0
}

// Current returns the current match; ok is false when there is none.
func (s *Session) Current() (Match, bool) {
	if s.Index < 0 || s.Index >= len(s.Matches) {
		return Match{}, false
	}
	return s.Matches[s.Index], true
}

// Advance moves the current index by delta, wrapping cyclically in both
// directions. It is a no-op without a current match.
func (s *Session) Advance(delta int) {
	n := len(s.Matches)
	if n == 0 || s.Index < 0 {
		return
	}
	s.Index = ((s.Index+delta)%n + n) % n
}

// Snapshot returns a copy of the session with its own matches slice,
// safe to hand to observers.
func (s *Session) Snapshot() Session {
	out := *s
	if s.Matches != nil {
		out.Matches = make([]Match, len(s.Matches))
		copy(out.Matches, s.Matches)
	}
	return out
}
