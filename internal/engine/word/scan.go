package word

import (
	"unicode/utf8"

	"github.com/dshills/markstorm/internal/engine/buffer"
)

// Lines provides read access to the line structure of a buffer.
// *buffer.Buffer satisfies it.
type Lines interface {
	LineCount() int
	LineText(line int) string
}

// ScanForward scans from pos to the end of the current or next word.
// If pos is inside a word the scan yields that word's end; otherwise it
// skips boundary characters, crossing line breaks as needed, to the next
// word and yields its end. The second return is false when no word
// exists between pos and the end of the buffer.
//
// The scan is an iterative loop over (line, column) state, so buffers
// with long runs of boundary-only lines cost no stack depth.
func ScanForward(lines Lines, pos buffer.Point, set *BoundarySet) (buffer.Point, bool) {
	count := lines.LineCount()
	if count == 0 {
		return buffer.Point{}, false
	}
	line, col := clamp(lines, pos)
	text := lines.LineText(line)

	// Skip boundary runes, crossing line breaks, until a word rune is
	// under the scan position.
	for {
		if col >= len(text) {
			line++
			if line >= count {
				return buffer.Point{}, false
			}
			text = lines.LineText(line)
			col = 0
			continue
		}
		r, size := utf8.DecodeRuneInString(text[col:])
		if set.IsWord(r) {
			break
		}
		col += size
	}

	// Advance to the end of the word run.
	for col < len(text) {
		r, size := utf8.DecodeRuneInString(text[col:])
		if set.IsBoundary(r) {
			break
		}
		col += size
	}
	return buffer.Point{Line: line, Column: col}, true
}

// ScanBackward scans from pos to the start of a word. The rule has two
// cases: with a word rune immediately to the left, the scan moves to
// that word's start; otherwise it first steps left over boundary runes,
// crossing line breaks as needed, and then moves to the start of the
// word it lands on. A cursor sitting exactly at a word's start therefore
// travels to the previous word's start. The second return is false when
// no word exists between the start of the buffer and pos.
func ScanBackward(lines Lines, pos buffer.Point, set *BoundarySet) (buffer.Point, bool) {
	if lines.LineCount() == 0 {
		return buffer.Point{}, false
	}
	line, col := clamp(lines, pos)
	text := lines.LineText(line)

	// Step left over boundary runes, crossing line breaks, until a word
	// rune is immediately to the left.
	for {
		if col == 0 {
			if line == 0 {
				return buffer.Point{}, false
			}
			line--
			text = lines.LineText(line)
			col = len(text)
			continue
		}
		r, size := utf8.DecodeLastRuneInString(text[:col])
		if set.IsWord(r) {
			break
		}
		col -= size
	}

	// Skip left over the word run to its start.
	for col > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:col])
		if set.IsBoundary(r) {
			break
		}
		col -= size
	}
	return buffer.Point{Line: line, Column: col}, true
}

// clamp constrains pos to a valid (line, column) in lines.
func clamp(lines Lines, pos buffer.Point) (int, int) {
	line := pos.Line
	if line < 0 {
		line = 0
	}
	if last := lines.LineCount() - 1; line > last {
		line = last
	}
	col := pos.Column
	if col < 0 {
		col = 0
	}
	if maxCol := len(lines.LineText(line)); col > maxCol {
		col = maxCol
	}
	return line, col
}
