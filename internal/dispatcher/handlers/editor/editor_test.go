package editor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dshills/markstorm/internal/clipboard"
	"github.com/dshills/markstorm/internal/dispatcher/execctx"
	"github.com/dshills/markstorm/internal/dispatcher/handler"
	editorhandler "github.com/dshills/markstorm/internal/dispatcher/handlers/editor"
	"github.com/dshills/markstorm/internal/engine/buffer"
	"github.com/dshills/markstorm/internal/engine/mark"
	"github.com/dshills/markstorm/internal/engine/search"
	"github.com/dshills/markstorm/internal/input"
)

func pt(line, col int) buffer.Point {
	return buffer.Point{Line: line, Column: col}
}

func newContext(text string, start buffer.Point) (*execctx.ExecutionContext, *buffer.Buffer, *clipboard.Memory) {
	buf := buffer.NewBufferFromString(text)
	buf.SetCursor(start)
	clip := clipboard.NewMemory()
	ctx := execctx.New().
		WithBuffer(buf).
		WithMark(mark.New()).
		WithSearch(search.NewSession()).
		WithClipboard(clip)
	return ctx, buf, clip
}

func clipText(t *testing.T, clip *clipboard.Memory) string {
	t.Helper()
	text, err := clip.ReadText(context.Background())
	if err != nil {
		t.Fatalf("clipboard read: %v", err)
	}
	return text
}

func TestHandlerNamespace(t *testing.T) {
	h := editorhandler.NewHandler()
	if h.Namespace() != "editor" {
		t.Errorf("expected namespace 'editor', got %q", h.Namespace())
	}
}

func TestHandlerCanHandle(t *testing.T) {
	h := editorhandler.NewHandler()

	tests := []struct {
		action   string
		expected bool
	}{
		{editorhandler.ActionCopyRegion, true},
		{editorhandler.ActionKillRegion, true},
		{editorhandler.ActionKillLine, true},
		{editorhandler.ActionKillWord, true},
		{editorhandler.ActionBackwardKillWord, true},
		{editorhandler.ActionYank, true},
		{editorhandler.ActionKeyboardQuit, true},
		{"editor.unknown", false},
		{"cursor.move", false},
	}

	for _, tc := range tests {
		if h.CanHandle(tc.action) != tc.expected {
			t.Errorf("CanHandle(%q) = %v, want %v", tc.action, h.CanHandle(tc.action), tc.expected)
		}
	}
}

func TestMissingClipboard(t *testing.T) {
	h := editorhandler.NewHandler()
	ctx := execctx.New().WithBuffer(buffer.NewBufferFromString("x"))

	result := h.HandleAction(input.Action{Name: editorhandler.ActionKillLine}, ctx)
	if result.Status != handler.StatusError {
		t.Errorf("expected StatusError without clipboard, got %v", result.Status)
	}
	if !errors.Is(result.Error, execctx.ErrMissingClipboard) {
		t.Errorf("expected ErrMissingClipboard, got %v", result.Error)
	}
}

func TestCopyRegion(t *testing.T) {
	h := editorhandler.NewHandler()
	ctx, buf, clip := newContext("hello world", pt(0, 5))
	ctx.Mark.Set(pt(0, 0))

	result := h.HandleAction(input.Action{Name: editorhandler.ActionCopyRegion}, ctx)

	if result.Status != handler.StatusOK {
		t.Fatalf("expected StatusOK, got %v", result.Status)
	}
	if got := clipText(t, clip); got != "hello" {
		t.Errorf("clipboard = %q, want %q", got, "hello")
	}
	if got := buf.Text(); got != "hello world" {
		t.Errorf("buffer = %q, want untouched", got)
	}
	if ctx.Mark.IsSet() {
		t.Error("expected mark to be cleared after copy")
	}
}

func TestCopyRegionReversedOrder(t *testing.T) {
	h := editorhandler.NewHandler()
	ctx, _, clip := newContext("hello world", pt(0, 2))
	ctx.Mark.Set(pt(0, 8))

	h.HandleAction(input.Action{Name: editorhandler.ActionCopyRegion}, ctx)

	if got := clipText(t, clip); got != "llo wo" {
		t.Errorf("clipboard = %q, want %q", got, "llo wo")
	}
}

func TestCopyRegionWithoutMark(t *testing.T) {
	h := editorhandler.NewHandler()
	ctx, _, _ := newContext("hello", pt(0, 2))

	result := h.HandleAction(input.Action{Name: editorhandler.ActionCopyRegion}, ctx)

	if result.Status != handler.StatusNoOp {
		t.Errorf("expected StatusNoOp without mark, got %v", result.Status)
	}
}

func TestKillRegion(t *testing.T) {
	h := editorhandler.NewHandler()
	ctx, buf, clip := newContext("hello world", pt(0, 6))
	ctx.Mark.Set(pt(0, 0))

	result := h.HandleAction(input.Action{Name: editorhandler.ActionKillRegion}, ctx)

	if result.Status != handler.StatusOK {
		t.Fatalf("expected StatusOK, got %v", result.Status)
	}
	if got := clipText(t, clip); got != "hello " {
		t.Errorf("clipboard = %q, want %q", got, "hello ")
	}
	if got := buf.Text(); got != "world" {
		t.Errorf("buffer = %q, want %q", got, "world")
	}
	if got := buf.Cursor(); got != pt(0, 0) {
		t.Errorf("cursor = %v, want deletion point %v", got, pt(0, 0))
	}
	if ctx.Mark.IsSet() {
		t.Error("expected mark to be cleared after kill")
	}
}

func TestKillRegionClipboardFailureAbortsDelete(t *testing.T) {
	h := editorhandler.NewHandler()
	ctx, buf, clip := newContext("hello world", pt(0, 5))
	ctx.Mark.Set(pt(0, 0))

	clipErr := errors.New("denied")
	clip.FailWith(clipErr)

	result := h.HandleAction(input.Action{Name: editorhandler.ActionKillRegion}, ctx)

	if result.Status != handler.StatusError {
		t.Fatalf("expected StatusError, got %v", result.Status)
	}
	if !errors.Is(result.Error, clipErr) {
		t.Errorf("expected the clipboard error to propagate, got %v", result.Error)
	}
	if got := buf.Text(); got != "hello world" {
		t.Errorf("buffer = %q, want untouched after clipboard failure", got)
	}
	if !ctx.Mark.IsSet() {
		t.Error("expected mark to survive an aborted kill")
	}
}

func TestKillLinePartial(t *testing.T) {
	h := editorhandler.NewHandler()
	ctx, buf, clip := newContext("abc\ndef", pt(0, 1))

	h.HandleAction(input.Action{Name: editorhandler.ActionKillLine}, ctx)

	if got := buf.Text(); got != "a\ndef" {
		t.Errorf("buffer = %q, want %q", got, "a\ndef")
	}
	if got := clipText(t, clip); got != "bc" {
		t.Errorf("clipboard = %q, want %q", got, "bc")
	}
}

func TestKillLineJoinsAtLineEnd(t *testing.T) {
	h := editorhandler.NewHandler()
	ctx, buf, clip := newContext("abc\ndef", pt(0, 3))

	h.HandleAction(input.Action{Name: editorhandler.ActionKillLine}, ctx)

	if got := buf.Text(); got != "abcdef" {
		t.Errorf("buffer = %q, want %q", got, "abcdef")
	}
	if got := clipText(t, clip); got != "\n" {
		t.Errorf("clipboard = %q, want the newline only", got)
	}
	if got := buf.Cursor(); got != pt(0, 3) {
		t.Errorf("cursor = %v, want %v", got, pt(0, 3))
	}
}

func TestKillLineOnEmptyLine(t *testing.T) {
	h := editorhandler.NewHandler()
	ctx, buf, clip := newContext("abc\n\ndef", pt(1, 0))

	h.HandleAction(input.Action{Name: editorhandler.ActionKillLine}, ctx)

	if got := buf.Text(); got != "abc\ndef" {
		t.Errorf("buffer = %q, want %q", got, "abc\ndef")
	}
	if got := clipText(t, clip); got != "\n" {
		t.Errorf("clipboard = %q, want the newline only", got)
	}
}

func TestKillLineRepeatFlattens(t *testing.T) {
	h := editorhandler.NewHandler()
	ctx, buf, _ := newContext("ab\ncd\nef", pt(0, 2))

	// At end of line each kill removes one newline.
	h.HandleAction(input.Action{Name: editorhandler.ActionKillLine}, ctx)
	h.HandleAction(input.Action{Name: editorhandler.ActionKillLine}, ctx)

	if got := buf.Text(); got != "abcd\nef" {
		t.Errorf("buffer = %q, want %q", got, "abcd\nef")
	}
}

func TestKillLineAtBufferEndIsNoOp(t *testing.T) {
	h := editorhandler.NewHandler()
	ctx, buf, _ := newContext("abc\ndef", pt(1, 3))

	result := h.HandleAction(input.Action{Name: editorhandler.ActionKillLine}, ctx)

	if result.Status != handler.StatusNoOp {
		t.Errorf("expected StatusNoOp, got %v", result.Status)
	}
	if got := buf.Text(); got != "abc\ndef" {
		t.Errorf("buffer = %q, want untouched", got)
	}
}

func TestKillWord(t *testing.T) {
	h := editorhandler.NewHandler()

	tests := []struct {
		name     string
		text     string
		start    buffer.Point
		count    int
		wantBuf  string
		wantClip string
	}{
		{"from word start", "foo bar", pt(0, 0), 1, " bar", "foo"},
		{"from mid word", "foo bar", pt(0, 1), 1, "f bar", "oo"},
		{"from whitespace", "foo bar", pt(0, 3), 1, "foo", " bar"},
		{"two words", "one two three", pt(0, 0), 2, " three", "one two"},
		{"across lines", "foo\nbar", pt(0, 3), 1, "foo", "\nbar"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx, buf, clip := newContext(tc.text, tc.start)
			ctx.Count = tc.count

			h.HandleAction(input.Action{Name: editorhandler.ActionKillWord}, ctx)

			if got := buf.Text(); got != tc.wantBuf {
				t.Errorf("buffer = %q, want %q", got, tc.wantBuf)
			}
			if got := clipText(t, clip); got != tc.wantClip {
				t.Errorf("clipboard = %q, want %q", got, tc.wantClip)
			}
		})
	}
}

func TestKillWordNoWordIsNoOp(t *testing.T) {
	h := editorhandler.NewHandler()
	ctx, buf, _ := newContext("foo   ", pt(0, 3))

	result := h.HandleAction(input.Action{Name: editorhandler.ActionKillWord}, ctx)

	if result.Status != handler.StatusNoOp {
		t.Errorf("expected StatusNoOp, got %v", result.Status)
	}
	if got := buf.Text(); got != "foo   " {
		t.Errorf("buffer = %q, want untouched", got)
	}
}

func TestBackwardKillWord(t *testing.T) {
	h := editorhandler.NewHandler()

	tests := []struct {
		name     string
		text     string
		start    buffer.Point
		wantBuf  string
		wantClip string
	}{
		{"from word end", "foo bar", pt(0, 7), "foo ", "bar"},
		{"exactly at word start", "foo bar", pt(0, 4), "bar", "foo "},
		{"from mid word", "foo bar", pt(0, 6), "foo r", "ba"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx, buf, clip := newContext(tc.text, tc.start)

			h.HandleAction(input.Action{Name: editorhandler.ActionBackwardKillWord}, ctx)

			if got := buf.Text(); got != tc.wantBuf {
				t.Errorf("buffer = %q, want %q", got, tc.wantBuf)
			}
			if got := clipText(t, clip); got != tc.wantClip {
				t.Errorf("clipboard = %q, want %q", got, tc.wantClip)
			}
		})
	}
}

func TestYank(t *testing.T) {
	h := editorhandler.NewHandler()
	ctx, buf, clip := newContext("ab", pt(0, 1))
	if err := clip.WriteText(context.Background(), "xyz"); err != nil {
		t.Fatalf("clipboard write: %v", err)
	}

	result := h.HandleAction(input.Action{Name: editorhandler.ActionYank}, ctx)

	if result.Status != handler.StatusOK {
		t.Fatalf("expected StatusOK, got %v", result.Status)
	}
	if got := buf.Text(); got != "axyzb" {
		t.Errorf("buffer = %q, want %q", got, "axyzb")
	}
	if got := buf.Cursor(); got != pt(0, 4) {
		t.Errorf("cursor = %v, want end of inserted text %v", got, pt(0, 4))
	}
}

func TestYankReplacesSelection(t *testing.T) {
	h := editorhandler.NewHandler()
	ctx, buf, clip := newContext("hello", pt(0, 0))
	buf.SetSelection(pt(0, 1), pt(0, 4))
	if err := clip.WriteText(context.Background(), "XY"); err != nil {
		t.Fatalf("clipboard write: %v", err)
	}

	h.HandleAction(input.Action{Name: editorhandler.ActionYank}, ctx)

	if got := buf.Text(); got != "hXYo" {
		t.Errorf("buffer = %q, want %q", got, "hXYo")
	}
	if got := buf.Cursor(); got != pt(0, 3) {
		t.Errorf("cursor = %v, want %v", got, pt(0, 3))
	}
}

func TestYankClipboardFailure(t *testing.T) {
	h := editorhandler.NewHandler()
	ctx, buf, clip := newContext("ab", pt(0, 1))
	clip.FailWith(errors.New("denied"))

	result := h.HandleAction(input.Action{Name: editorhandler.ActionYank}, ctx)

	if result.Status != handler.StatusError {
		t.Errorf("expected StatusError, got %v", result.Status)
	}
	if got := buf.Text(); got != "ab" {
		t.Errorf("buffer = %q, want untouched", got)
	}
}

func TestYankEmptyClipboard(t *testing.T) {
	h := editorhandler.NewHandler()
	ctx, _, _ := newContext("ab", pt(0, 1))

	result := h.HandleAction(input.Action{Name: editorhandler.ActionYank}, ctx)

	if result.Status != handler.StatusNoOp {
		t.Errorf("expected StatusNoOp for empty clipboard, got %v", result.Status)
	}
}

func TestKeyboardQuitCancelsSearch(t *testing.T) {
	h := editorhandler.NewHandler()
	ctx, buf, _ := newContext("foo foo", pt(0, 0))

	ctx.Search.Start(search.Forward, pt(0, 0))
	ctx.Search.Query = "foo"
	ctx.Search.Matches = search.Find(buf.Text(), "foo")
	ctx.Search.Index = 1
	buf.SetCursor(pt(0, 4))
	ctx.Mark.Set(pt(0, 2))

	result := h.HandleAction(input.Action{Name: editorhandler.ActionKeyboardQuit}, ctx)

	if result.Status != handler.StatusOK {
		t.Fatalf("expected StatusOK, got %v", result.Status)
	}
	if ctx.Search.Active {
		t.Error("expected search session to be cancelled")
	}
	if got := buf.Cursor(); got != pt(0, 0) {
		t.Errorf("cursor = %v, want restored anchor %v", got, pt(0, 0))
	}
	if !ctx.Mark.IsSet() {
		t.Error("expected mark to survive when quit cancels the search")
	}
}

func TestKeyboardQuitClearsMark(t *testing.T) {
	h := editorhandler.NewHandler()
	ctx, _, _ := newContext("hello", pt(0, 2))
	ctx.Mark.Set(pt(0, 0))

	result := h.HandleAction(input.Action{Name: editorhandler.ActionKeyboardQuit}, ctx)

	if result.Status != handler.StatusOK {
		t.Fatalf("expected StatusOK, got %v", result.Status)
	}
	if ctx.Mark.IsSet() {
		t.Error("expected mark to be cleared")
	}
}

func TestKeyboardQuitIdle(t *testing.T) {
	h := editorhandler.NewHandler()
	ctx, _, _ := newContext("hello", pt(0, 2))

	result := h.HandleAction(input.Action{Name: editorhandler.ActionKeyboardQuit}, ctx)

	if result.Status != handler.StatusOK {
		t.Errorf("expected StatusOK, got %v", result.Status)
	}
	if result.Message != "Quit" {
		t.Errorf("expected message 'Quit', got %q", result.Message)
	}
}
