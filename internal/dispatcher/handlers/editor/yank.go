package editor

import (
	"github.com/dshills/markstorm/internal/dispatcher/execctx"
	"github.com/dshills/markstorm/internal/dispatcher/handler"
	"github.com/dshills/markstorm/internal/dispatcher/handlers/isearch"
)

// yank inserts the clipboard text at the cursor, replacing any active
// selection.
func (h *Handler) yank(ctx *execctx.ExecutionContext) handler.Result {
	text, err := ctx.Clipboard.ReadText(ctx.Context())
	if err != nil {
		return handler.Error(err)
	}
	if text == "" {
		return handler.NoOpWithMessage("Clipboard is empty")
	}

	from, to := ctx.Buffer.Selection()
	ctx.Buffer.ReplaceRange(text, from, to)
	return handler.Success()
}

// keyboardQuit cancels an active search or, when no search is running,
// clears the mark.
func (h *Handler) keyboardQuit(ctx *execctx.ExecutionContext) handler.Result {
	if ctx.Search != nil && ctx.Search.Active {
		return isearch.Cancel(ctx)
	}

	if ctx.Mark != nil && ctx.Mark.IsSet() {
		clearMark(ctx)
	}
	return handler.SuccessWithMessage("Quit")
}
