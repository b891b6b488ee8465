package editor

import (
	"github.com/dshills/markstorm/internal/dispatcher/execctx"
	"github.com/dshills/markstorm/internal/dispatcher/handler"
	"github.com/dshills/markstorm/internal/engine/buffer"
	"github.com/dshills/markstorm/internal/engine/word"
)

// copyRegion copies the text between mark and cursor to the clipboard
// and clears the mark. The buffer is not modified.
func (h *Handler) copyRegion(ctx *execctx.ExecutionContext) handler.Result {
	region, ok := markRegion(ctx)
	if !ok {
		return handler.NoOpWithMessage("No mark set")
	}

	text := ctx.Buffer.TextRange(region.Start, region.End)
	if err := ctx.Clipboard.WriteText(ctx.Context(), text); err != nil {
		return handler.Error(err)
	}

	clearMark(ctx)
	return handler.Success().WithData("text", text)
}

// killRegion copies the region to the clipboard and deletes it. The
// copy happens first; a clipboard failure leaves the buffer untouched.
func (h *Handler) killRegion(ctx *execctx.ExecutionContext) handler.Result {
	region, ok := markRegion(ctx)
	if !ok {
		return handler.NoOpWithMessage("No mark set")
	}

	text := ctx.Buffer.TextRange(region.Start, region.End)
	if err := ctx.Clipboard.WriteText(ctx.Context(), text); err != nil {
		return handler.Error(err)
	}

	ctx.Buffer.ReplaceRange("", region.Start, region.End)
	clearMark(ctx)
	return handler.Success().WithData("text", text)
}

// killLine deletes from the cursor to the end of the line, copying the
// deleted text. At the end of a line (or on an empty line) it deletes
// exactly the newline, joining the next line. On the last line with
// nothing after the cursor it does nothing.
func (h *Handler) killLine(ctx *execctx.ExecutionContext) handler.Result {
	buf := ctx.Buffer
	cur := buf.Cursor()
	lineLen := buf.LineLen(cur.Line)

	var from, to buffer.Point
	if cur.Column < lineLen {
		from = cur
		to = buffer.Point{Line: cur.Line, Column: lineLen}
	} else if cur.Line+1 < buf.LineCount() {
		from = buffer.Point{Line: cur.Line, Column: lineLen}
		to = buffer.Point{Line: cur.Line + 1, Column: 0}
	} else {
		return handler.NoOp()
	}

	return h.kill(ctx, from, to)
}

// killWord deletes from the cursor to the boundary a forward word scan
// would move to, repeated count times.
func (h *Handler) killWord(ctx *execctx.ExecutionContext, count int) handler.Result {
	set := word.NewBoundarySet(ctx.BoundaryChars())
	cur := ctx.Buffer.Cursor()

	pos := cur
	for i := 0; i < count; i++ {
		target, ok := word.ScanForward(ctx.Buffer, pos, set)
		if !ok {
			break
		}
		pos = target
	}

	if pos == cur {
		return handler.NoOp()
	}
	return h.kill(ctx, cur, pos)
}

// backwardKillWord deletes from the boundary a backward word scan would
// move to up to the cursor, repeated count times.
func (h *Handler) backwardKillWord(ctx *execctx.ExecutionContext, count int) handler.Result {
	set := word.NewBoundarySet(ctx.BoundaryChars())
	cur := ctx.Buffer.Cursor()

	pos := cur
	for i := 0; i < count; i++ {
		target, ok := word.ScanBackward(ctx.Buffer, pos, set)
		if !ok {
			break
		}
		pos = target
	}

	if pos == cur {
		return handler.NoOp()
	}
	return h.kill(ctx, pos, cur)
}

// kill copies [from, to) to the clipboard and deletes it from the
// buffer. The copy happens first; a clipboard failure aborts the
// delete.
func (h *Handler) kill(ctx *execctx.ExecutionContext, from, to buffer.Point) handler.Result {
	text := ctx.Buffer.TextRange(from, to)
	if err := ctx.Clipboard.WriteText(ctx.Context(), text); err != nil {
		return handler.Error(err)
	}

	ctx.Buffer.ReplaceRange("", from, to)
	return handler.Success().WithData("text", text)
}
