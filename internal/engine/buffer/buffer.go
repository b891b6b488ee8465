package buffer

import (
	"strings"
	"sync"
)

// Buffer is a line-oriented text buffer carrying the cursor and selection
// state for a single editor view. It provides the text surface consumed by
// the command handlers: coordinate conversion, range extraction and
// replacement, and scroll requests.
// All methods are thread-safe.
type Buffer struct {
	mu         sync.RWMutex
	lines      []string // line contents without terminators; never empty
	anchor     Point    // selection anchor
	head       Point    // selection head; this is the cursor
	revisionID RevisionID

	scrollTarget Span
	scrollCenter bool
	scrolled     bool
}

// NewBuffer creates a new empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{
		lines:      []string{""},
		revisionID: NewRevisionID(),
	}
}

// NewBufferFromString creates a buffer with initial content.
// Line endings are normalized to LF.
func NewBufferFromString(s string) *Buffer {
	b := NewBuffer()
	b.lines = strings.Split(normalizeLineEndings(s), "\n")
	return b
}

// normalizeLineEndings converts CRLF and lone CR sequences to LF.
func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return s
}

// Text returns the complete buffer content.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.textLocked()
}

// LineCount returns the number of lines in the buffer.
// An empty buffer has one empty line.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines)
}

// LineText returns the content of the given line without its terminator.
// Out-of-range lines yield the empty string.
func (b *Buffer) LineText(line int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if line < 0 || line >= len(b.lines) {
		return ""
	}
	return b.lines[line]
}

// LineLen returns the byte length of the given line, 0 if out of range.
func (b *Buffer) LineLen(line int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if line < 0 || line >= len(b.lines) {
		return 0
	}
	return len(b.lines[line])
}

// Cursor returns the cursor position, which is the selection head.
func (b *Buffer) Cursor() Point {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.head
}

// SetCursor moves the cursor to p, collapsing any selection to a
// zero-width range there. Out-of-range positions are clamped.
func (b *Buffer) SetCursor(p Point) {
	b.mu.Lock()
	defer b.mu.Unlock()
	p = b.clampLocked(p)
	b.anchor = p
	b.head = p
}

// Selection returns the selection anchor and head. The endpoints are not
// ordered; the head is the cursor and may precede the anchor.
func (b *Buffer) Selection() (anchor, head Point) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.anchor, b.head
}

// SetSelection sets the selection from anchor to head. The cursor moves
// to head. Out-of-range positions are clamped.
func (b *Buffer) SetSelection(anchor, head Point) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.anchor = b.clampLocked(anchor)
	b.head = b.clampLocked(head)
}

// HasSelection returns true if the selection is non-empty.
func (b *Buffer) HasSelection() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.anchor.Compare(b.head) != 0
}

// TextRange returns the text between two positions. The endpoints may be
// given in either order and are clamped to the buffer.
func (b *Buffer) TextRange(from, to Point) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	span := Span{Start: b.clampLocked(from), End: b.clampLocked(to)}.Normalize()
	return b.textRangeLocked(span)
}

// ReplaceRange replaces the text between two positions with text and
// returns the position just past the inserted text. The selection
// collapses there, which gives paste-over-selection semantics when the
// replaced range is the active selection. The endpoints may be given in
// either order and are clamped to the buffer. Inserted line endings are
// normalized to LF.
func (b *Buffer) ReplaceRange(text string, from, to Point) Point {
	b.mu.Lock()
	defer b.mu.Unlock()

	span := Span{Start: b.clampLocked(from), End: b.clampLocked(to)}.Normalize()
	prefix := b.lines[span.Start.Line][:span.Start.Column]
	suffix := b.lines[span.End.Line][span.End.Column:]

	segs := strings.Split(normalizeLineEndings(text), "\n")
	end := Point{Line: span.Start.Line + len(segs) - 1}
	if len(segs) == 1 {
		end.Column = span.Start.Column + len(segs[0])
	} else {
		end.Column = len(segs[len(segs)-1])
	}
	segs[0] = prefix + segs[0]
	segs[len(segs)-1] += suffix

	rebuilt := make([]string, 0, len(b.lines)-(span.End.Line-span.Start.Line+1)+len(segs))
	rebuilt = append(rebuilt, b.lines[:span.Start.Line]...)
	rebuilt = append(rebuilt, segs...)
	rebuilt = append(rebuilt, b.lines[span.End.Line+1:]...)
	b.lines = rebuilt

	b.anchor = end
	b.head = end
	b.revisionID = NewRevisionID()
	return end
}

// PointToOffset converts a line/column position to a byte offset into
// the text returned by Text. The position is clamped first.
func (b *Buffer) PointToOffset(p Point) ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.pointToOffsetLocked(b.clampLocked(p))
}

// OffsetToPoint converts a byte offset into a line/column position.
// Offsets beyond the end of the text clamp to the final position.
func (b *Buffer) OffsetToPoint(off ByteOffset) Point {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.offsetToPointLocked(off)
}

// Revision returns the current revision ID. Every ReplaceRange produces
// a new revision; pure cursor motion does not.
func (b *Buffer) Revision() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revisionID
}

// ScrollIntoView records a request to bring the given range into view.
// The host view applies the most recent request when it renders.
func (b *Buffer) ScrollIntoView(from, to Point, center bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.scrollTarget = Span{Start: b.clampLocked(from), End: b.clampLocked(to)}.Normalize()
	b.scrollCenter = center
	b.scrolled = true
}

// LastScroll reports the most recent scroll request.
// ok is false if no request has been made.
func (b *Buffer) LastScroll() (span Span, center bool, ok bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.scrollTarget, b.scrollCenter, b.scrolled
}

// clampLocked constrains p to a valid position: line within the buffer,
// column within [0, line length]. Callers must hold the lock.
func (b *Buffer) clampLocked(p Point) Point {
	if p.Line < 0 {
		p.Line = 0
	}
	if p.Line >= len(b.lines) {
		p.Line = len(b.lines) - 1
	}
	if p.Column < 0 {
		p.Column = 0
	}
	if maxCol := len(b.lines[p.Line]); p.Column > maxCol {
		p.Column = maxCol
	}
	return p
}

func (b *Buffer) textLocked() string {
	return strings.Join(b.lines, "\n")
}

// textRangeLocked extracts the text of a normalized, clamped span.
func (b *Buffer) textRangeLocked(span Span) string {
	if span.IsSingleLine() {
		return b.lines[span.Start.Line][span.Start.Column:span.End.Column]
	}
	var sb strings.Builder
	sb.WriteString(b.lines[span.Start.Line][span.Start.Column:])
	for i := span.Start.Line + 1; i < span.End.Line; i++ {
		sb.WriteByte('\n')
		sb.WriteString(b.lines[i])
	}
	sb.WriteByte('\n')
	sb.WriteString(b.lines[span.End.Line][:span.End.Column])
	return sb.String()
}

func (b *Buffer) pointToOffsetLocked(p Point) ByteOffset {
	off := 0
	for i := 0; i < p.Line; i++ {
		off += len(b.lines[i]) + 1 // +1 for the newline
	}
	return off + p.Column
}

func (b *Buffer) offsetToPointLocked(off ByteOffset) Point {
	if off < 0 {
		off = 0
	}
	for i, line := range b.lines {
		if off <= len(line) {
			return Point{Line: i, Column: off}
		}
		off -= len(line) + 1
	}
	last := len(b.lines) - 1
	return Point{Line: last, Column: len(b.lines[last])}
}
