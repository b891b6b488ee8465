package buffer

import "fmt"

// Span represents a text range using line/column positions.
// Start is inclusive, End is exclusive: [Start, End).
type Span struct {
	Start Point // Inclusive start position
	End   Point // Exclusive end position
}

// NewSpan creates a new Span from start and end points.
func NewSpan(start, end Point) Span {
	return Span{Start: start, End: end}
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	return fmt.Sprintf("[%s:%s)", s.Start.String(), s.End.String())
}

// IsEmpty returns true if start equals end.
func (s Span) IsEmpty() bool {
	return s.Start.Compare(s.End) == 0
}

// IsValid returns true if start <= end.
func (s Span) IsValid() bool {
	return s.Start.Compare(s.End) <= 0
}

// Contains returns true if the given point is within the span.
func (s Span) Contains(p Point) bool {
	return p.Compare(s.Start) >= 0 && p.Compare(s.End) < 0
}

// Normalize returns a span with Start <= End, swapping the endpoints
// if needed. Regions built from mark and cursor may arrive in either order.
func (s Span) Normalize() Span {
	if s.Start.After(s.End) {
		return Span{Start: s.End, End: s.Start}
	}
	return s
}

// IsSingleLine returns true if the span begins and ends on the same line.
func (s Span) IsSingleLine() bool {
	return s.Start.Line == s.End.Line
}
