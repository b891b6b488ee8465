package word

import (
	"testing"

	"github.com/dshills/markstorm/internal/engine/buffer"
)

// lineSlice implements Lines for testing.
type lineSlice []string

func (l lineSlice) LineCount() int { return len(l) }

func (l lineSlice) LineText(line int) string {
	if line < 0 || line >= len(l) {
		return ""
	}
	return l[line]
}

func pt(line, col int) buffer.Point {
	return buffer.Point{Line: line, Column: col}
}

func TestNewBoundarySetEscapes(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		boundary []rune
		word     []rune
	}{
		{"default", DefaultBoundaryChars, []rune{' ', '\t', '\n', '_'}, []rune{'a', '-', '0'}},
		{"tab escape", `\t`, []rune{'\t'}, []rune{'t', '\\'}},
		{"newline escape", `\n`, []rune{'\n'}, []rune{'n'}},
		{"backslash escape", `\\`, []rune{'\\'}, []rune{'t'}},
		{"unknown escape stays literal", `\x`, []rune{'\\', 'x'}, []rune{'t'}},
		{"plain characters", "-.", []rune{'-', '.'}, []rune{' ', '_'}},
		{"non-ascii", "—", []rune{'—'}, []rune{'e'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := NewBoundarySet(tt.spec)
			for _, r := range tt.boundary {
				if !set.IsBoundary(r) {
					t.Errorf("expected %q to be a boundary", r)
				}
			}
			for _, r := range tt.word {
				if !set.IsWord(r) {
					t.Errorf("expected %q to be a word character", r)
				}
			}
		})
	}
}

func TestBoundarySetAlwaysTreatsLineBreaksAsBoundaries(t *testing.T) {
	set := NewBoundarySet("")

	if !set.IsBoundary('\n') {
		t.Error("newline must be a boundary even when not configured")
	}
	if !set.IsBoundary('\r') {
		t.Error("carriage return must be a boundary even when not configured")
	}
}

func TestScanForward(t *testing.T) {
	set := NewBoundarySet(DefaultBoundaryChars)

	tests := []struct {
		name  string
		lines lineSlice
		pos   buffer.Point
		want  buffer.Point
		ok    bool
	}{
		{"inside word to its end", lineSlice{"foo bar"}, pt(0, 0), pt(0, 3), true},
		{"mid word", lineSlice{"foo bar"}, pt(0, 1), pt(0, 3), true},
		{"at boundary to next word end", lineSlice{"foo bar"}, pt(0, 3), pt(0, 7), true},
		{"underscore splits words", lineSlice{"foo_bar"}, pt(0, 0), pt(0, 3), true},
		{"crosses blank lines", lineSlice{"foo", "", "  ", "bar"}, pt(0, 3), pt(3, 3), true},
		{"no word ahead", lineSlice{"foo", "  "}, pt(0, 3), pt(0, 0), false},
		{"empty buffer", lineSlice{""}, pt(0, 0), pt(0, 0), false},
		{"no lines", lineSlice{}, pt(0, 0), pt(0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ScanForward(tt.lines, tt.pos, set)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestScanBackward(t *testing.T) {
	set := NewBoundarySet(DefaultBoundaryChars)

	tests := []struct {
		name  string
		lines lineSlice
		pos   buffer.Point
		want  buffer.Point
		ok    bool
	}{
		{"after word to its start", lineSlice{"foo bar"}, pt(0, 7), pt(0, 4), true},
		{"inside word to its start", lineSlice{"foo bar"}, pt(0, 5), pt(0, 4), true},
		{"exactly at word start goes to previous word", lineSlice{"foo bar"}, pt(0, 4), pt(0, 0), true},
		{"at end of first word", lineSlice{"foo bar"}, pt(0, 3), pt(0, 0), true},
		{"crosses line break", lineSlice{"foo", "  bar"}, pt(1, 2), pt(0, 0), true},
		{"within indented word", lineSlice{"foo", "  bar"}, pt(1, 5), pt(1, 2), true},
		{"no word behind", lineSlice{"  ", "bar"}, pt(1, 0), pt(0, 0), false},
		{"buffer start", lineSlice{"foo"}, pt(0, 0), pt(0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ScanBackward(tt.lines, tt.pos, set)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestScanUnicode(t *testing.T) {
	set := NewBoundarySet(DefaultBoundaryChars)
	lines := lineSlice{"héllo wörld"}

	end, ok := ScanForward(lines, pt(0, 0), set)
	if !ok {
		t.Fatal("expected a forward result")
	}
	if end != pt(0, 6) {
		t.Errorf("expected (0:6), got %s", end)
	}

	start, ok := ScanBackward(lines, pt(0, len("héllo wörld")), set)
	if !ok {
		t.Fatal("expected a backward result")
	}
	if start != pt(0, 7) {
		t.Errorf("expected (0:7), got %s", start)
	}
}

func TestScanForwardManyBoundaryLines(t *testing.T) {
	lines := make(lineSlice, 0, 5002)
	lines = append(lines, "start")
	for i := 0; i < 5000; i++ {
		lines = append(lines, "")
	}
	lines = append(lines, "end")
	set := NewBoundarySet(DefaultBoundaryChars)

	got, ok := ScanForward(lines, pt(0, 5), set)
	if !ok {
		t.Fatal("expected to find the word after the blank run")
	}
	if got != pt(5001, 3) {
		t.Errorf("expected (5001:3), got %s", got)
	}
}

// TestScanRoundTrip checks convergence: scanning forward and then
// backward lands on the found word's start, and scanning forward again
// from there returns the same end.
func TestScanRoundTrip(t *testing.T) {
	lines := lineSlice{"one two_three", "", "  four", "five"}
	set := NewBoundarySet(DefaultBoundaryChars)

	for line := 0; line < lines.LineCount(); line++ {
		for col := 0; col <= len(lines.LineText(line)); col++ {
			pos := pt(line, col)
			end, ok := ScanForward(lines, pos, set)
			if !ok {
				continue
			}
			start, ok := ScanBackward(lines, end, set)
			if !ok {
				t.Fatalf("backward from %s failed", end)
			}
			if !start.Before(end) {
				t.Errorf("start %s not before end %s (from %s)", start, end, pos)
			}
			again, ok := ScanForward(lines, start, set)
			if !ok || again != end {
				t.Errorf("forward from %s gave %s, want %s", start, again, end)
			}
		}
	}
}
