package cursor

import (
	"unicode/utf8"

	"github.com/dshills/markstorm/internal/dispatcher/execctx"
	"github.com/dshills/markstorm/internal/dispatcher/handler"
	"github.com/dshills/markstorm/internal/engine/buffer"
	"github.com/dshills/markstorm/internal/engine/word"
)

// applyTarget routes a movement target through the mark rule: with the
// mark set the selection extends from mark to target, otherwise the
// cursor moves to target, collapsing any selection.
func applyTarget(ctx *execctx.ExecutionContext, target buffer.Point) {
	if ctx.Mark != nil {
		if pos, ok := ctx.Mark.Position(); ok {
			ctx.Buffer.SetSelection(pos, target)
			return
		}
	}
	ctx.Buffer.SetCursor(target)
}

// moveBy applies a relative motion count times. A target line outside
// the buffer absorbs that step entirely; the column is clamped into the
// target line.
func (h *Handler) moveBy(ctx *execctx.ExecutionContext, lineDelta, colDelta, count int) handler.Result {
	buf := ctx.Buffer

	applied := false
	for i := 0; i < count; i++ {
		cur := buf.Cursor()

		line := cur.Line + lineDelta
		if line < 0 || line >= buf.LineCount() {
			break
		}

		col := cur.Column + colDelta
		if col < 0 {
			col = 0
		}
		text := buf.LineText(line)
		if col > len(text) {
			col = len(text)
		}
		col = snapToRuneStart(text, col)

		applyTarget(ctx, buffer.Point{Line: line, Column: col})
		applied = true
	}

	if !applied {
		return handler.NoOp()
	}
	return handler.Success()
}

// forwardChar advances the cursor count runes, stopping at line end.
func (h *Handler) forwardChar(ctx *execctx.ExecutionContext, count int) handler.Result {
	buf := ctx.Buffer

	for i := 0; i < count; i++ {
		cur := buf.Cursor()
		text := buf.LineText(cur.Line)
		if cur.Column >= len(text) {
			break
		}

		_, size := utf8.DecodeRuneInString(text[cur.Column:])
		applyTarget(ctx, buffer.Point{Line: cur.Line, Column: cur.Column + size})
	}

	return handler.Success()
}

// backwardChar retreats the cursor count runes, stopping at column zero.
func (h *Handler) backwardChar(ctx *execctx.ExecutionContext, count int) handler.Result {
	buf := ctx.Buffer

	for i := 0; i < count; i++ {
		cur := buf.Cursor()
		if cur.Column <= 0 {
			break
		}

		text := buf.LineText(cur.Line)
		_, size := utf8.DecodeLastRuneInString(text[:cur.Column])
		applyTarget(ctx, buffer.Point{Line: cur.Line, Column: cur.Column - size})
	}

	return handler.Success()
}

// moveLineStart moves the cursor to column zero of the current line.
func (h *Handler) moveLineStart(ctx *execctx.ExecutionContext) handler.Result {
	cur := ctx.Buffer.Cursor()
	applyTarget(ctx, buffer.Point{Line: cur.Line, Column: 0})
	return handler.Success()
}

// moveLineEnd moves the cursor to the end of the current line.
func (h *Handler) moveLineEnd(ctx *execctx.ExecutionContext) handler.Result {
	cur := ctx.Buffer.Cursor()
	applyTarget(ctx, buffer.Point{Line: cur.Line, Column: ctx.Buffer.LineLen(cur.Line)})
	return handler.Success()
}

// moveBufferStart moves the cursor to the first position of the buffer.
func (h *Handler) moveBufferStart(ctx *execctx.ExecutionContext) handler.Result {
	applyTarget(ctx, buffer.Point{})
	return handler.Success()
}

// moveBufferEnd moves the cursor past the last character of the buffer.
func (h *Handler) moveBufferEnd(ctx *execctx.ExecutionContext) handler.Result {
	last := ctx.Buffer.LineCount() - 1
	applyTarget(ctx, buffer.Point{Line: last, Column: ctx.Buffer.LineLen(last)})
	return handler.Success()
}

// moveWordForward advances the cursor to the end of the word count
// words ahead.
func (h *Handler) moveWordForward(ctx *execctx.ExecutionContext, count int) handler.Result {
	set := word.NewBoundarySet(ctx.BoundaryChars())

	moved := false
	for i := 0; i < count; i++ {
		target, ok := word.ScanForward(ctx.Buffer, ctx.Buffer.Cursor(), set)
		if !ok {
			break
		}
		applyTarget(ctx, target)
		moved = true
	}

	if !moved {
		return handler.NoOp()
	}
	return handler.Success()
}

// moveWordBackward retreats the cursor to the start of the word count
// words back.
func (h *Handler) moveWordBackward(ctx *execctx.ExecutionContext, count int) handler.Result {
	set := word.NewBoundarySet(ctx.BoundaryChars())

	moved := false
	for i := 0; i < count; i++ {
		target, ok := word.ScanBackward(ctx.Buffer, ctx.Buffer.Cursor(), set)
		if !ok {
			break
		}
		applyTarget(ctx, target)
		moved = true
	}

	if !moved {
		return handler.NoOp()
	}
	return handler.Success()
}

// snapToRuneStart moves col back onto the nearest rune start in text.
func snapToRuneStart(text string, col int) int {
	for col > 0 && col < len(text) && !utf8.RuneStart(text[col]) {
		col--
	}
	return col
}
