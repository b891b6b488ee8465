// Package highlight derives text decorations from incremental search
// state. The decoration set is a pure function of a session snapshot:
// every match is tagged KindMatch and the current match KindCurrent,
// so a renderer can style the two classes independently.
package highlight

import (
	"github.com/dshills/markstorm/internal/engine/buffer"
	"github.com/dshills/markstorm/internal/engine/search"
)

// Kind classifies a decorated range.
type Kind uint8

const (
	// KindMatch marks an occurrence of the live query.
	KindMatch Kind = iota

	// KindCurrent marks the occurrence the cursor is on.
	KindCurrent
)

// String returns the decoration class name.
func (k Kind) String() string {
	if k == KindCurrent {
		return "current-match"
	}
	return "match"
}

// Range is a decorated span of buffer text in byte offsets. Start is
// inclusive, End exclusive.
type Range struct {
	Start buffer.ByteOffset
	End   buffer.ByteOffset
	Kind  Kind
}

// Contains reports whether the byte offset falls inside the range.
func (r Range) Contains(off buffer.ByteOffset) bool {
	return off >= r.Start && off < r.End
}

// Compute returns the decoration set for a search session snapshot,
// ascending by start offset. An inactive session or one without
// matches decorates nothing.
func Compute(s search.Session) []Range {
	if !s.Active || len(s.Matches) == 0 {
		return nil
	}

	ranges := make([]Range, len(s.Matches))
	for i, m := range s.Matches {
		kind := KindMatch
		if i == s.Index {
			kind = KindCurrent
		}
		ranges[i] = Range{Start: m.Start, End: m.End, Kind: kind}
	}
	return ranges
}
