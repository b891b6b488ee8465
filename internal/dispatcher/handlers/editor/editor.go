// Package editor provides handlers for region, kill, and yank commands.
package editor

import (
	"github.com/dshills/markstorm/internal/dispatcher/execctx"
	"github.com/dshills/markstorm/internal/dispatcher/handler"
	"github.com/dshills/markstorm/internal/engine/buffer"
	"github.com/dshills/markstorm/internal/event"
	"github.com/dshills/markstorm/internal/input"
)

// Action names for editing commands.
const (
	ActionCopyRegion       = "editor.copyRegion"
	ActionKillRegion       = "editor.killRegion"
	ActionKillLine         = "editor.killLine"
	ActionKillWord         = "editor.killWord"
	ActionBackwardKillWord = "editor.backwardKillWord"
	ActionYank             = "editor.yank"
	ActionKeyboardQuit     = "editor.keyboardQuit"
)

// Handler implements namespace-based editing command handling.
type Handler struct{}

// NewHandler creates a new editor handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Namespace returns the editor namespace.
func (h *Handler) Namespace() string {
	return "editor"
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(actionName string) bool {
	switch actionName {
	case ActionCopyRegion, ActionKillRegion, ActionKillLine,
		ActionKillWord, ActionBackwardKillWord,
		ActionYank, ActionKeyboardQuit:
		return true
	}
	return false
}

// HandleAction processes an editing action.
func (h *Handler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if action.Name == ActionKeyboardQuit {
		if err := ctx.Validate(); err != nil {
			return handler.Error(err)
		}
		return h.keyboardQuit(ctx)
	}

	// Everything else transfers text through the clipboard.
	if err := ctx.ValidateForKill(); err != nil {
		return handler.Error(err)
	}

	count := ctx.GetCount()

	switch action.Name {
	case ActionCopyRegion:
		return h.copyRegion(ctx)
	case ActionKillRegion:
		return h.killRegion(ctx)
	case ActionKillLine:
		return h.killLine(ctx)
	case ActionKillWord:
		return h.killWord(ctx, count)
	case ActionBackwardKillWord:
		return h.backwardKillWord(ctx, count)
	case ActionYank:
		return h.yank(ctx)
	default:
		return handler.Errorf("unknown editor action: %s", action.Name)
	}
}

// markRegion returns the normalized span between mark and cursor, or
// false when no mark is set.
func markRegion(ctx *execctx.ExecutionContext) (buffer.Span, bool) {
	if ctx.Mark == nil {
		return buffer.Span{}, false
	}
	pos, ok := ctx.Mark.Position()
	if !ok {
		return buffer.Span{}, false
	}
	return buffer.NewSpan(pos, ctx.Buffer.Cursor()).Normalize(), true
}

// clearMark deactivates the mark, collapses the selection, and notifies
// observers.
func clearMark(ctx *execctx.ExecutionContext) {
	ctx.Mark.Clear()
	ctx.Buffer.SetCursor(ctx.Buffer.Cursor())
	ctx.Publish(event.Event{
		Topic:   event.TopicMarkChanged,
		Payload: event.MarkChanged{ViewID: ctx.ViewID, Set: false},
	})
}
