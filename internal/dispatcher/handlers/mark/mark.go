// Package mark provides handlers for mark commands.
//
// The mark is a saved buffer position. While it is set, every movement
// command extends the selection from the mark to the new cursor
// location; the region commands in the editor package operate on that
// span.
package mark

import (
	"github.com/dshills/markstorm/internal/dispatcher/execctx"
	"github.com/dshills/markstorm/internal/dispatcher/handler"
	"github.com/dshills/markstorm/internal/event"
	"github.com/dshills/markstorm/internal/input"
)

// Action names for mark commands.
const (
	ActionSet      = "mark.set"
	ActionClear    = "mark.clear"
	ActionExchange = "mark.exchange"
)

// Handler implements namespace-based mark handling.
type Handler struct{}

// NewHandler creates a new mark handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Namespace returns the mark namespace.
func (h *Handler) Namespace() string {
	return "mark"
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(actionName string) bool {
	switch actionName {
	case ActionSet, ActionClear, ActionExchange:
		return true
	}
	return false
}

// HandleAction processes a mark action.
func (h *Handler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if err := ctx.Validate(); err != nil {
		return handler.Error(err)
	}
	if ctx.Mark == nil {
		return handler.Error(execctx.ErrMissingMark)
	}

	switch action.Name {
	case ActionSet:
		return h.set(ctx)
	case ActionClear:
		return h.clear(ctx)
	case ActionExchange:
		return h.exchange(ctx)
	default:
		return handler.Errorf("unknown mark action: %s", action.Name)
	}
}

// set records the cursor as the mark. Setting again while a mark is
// already active replaces it.
func (h *Handler) set(ctx *execctx.ExecutionContext) handler.Result {
	ctx.Mark.Set(ctx.Buffer.Cursor())
	publishMarkChanged(ctx)
	return handler.SuccessWithMessage("Mark set")
}

// clear deactivates the mark and collapses the selection to the cursor.
func (h *Handler) clear(ctx *execctx.ExecutionContext) handler.Result {
	ctx.Mark.Clear()
	ctx.Buffer.SetCursor(ctx.Buffer.Cursor())
	publishMarkChanged(ctx)
	return handler.Success()
}

// exchange swaps the cursor and the mark, keeping the region selected.
func (h *Handler) exchange(ctx *execctx.ExecutionContext) handler.Result {
	pos, ok := ctx.Mark.Position()
	if !ok {
		return handler.NoOpWithMessage("No mark set")
	}

	cur := ctx.Buffer.Cursor()
	ctx.Mark.Set(cur)
	ctx.Buffer.SetSelection(cur, pos)
	publishMarkChanged(ctx)
	return handler.Success()
}

func publishMarkChanged(ctx *execctx.ExecutionContext) {
	pos, set := ctx.Mark.Position()
	ctx.Publish(event.Event{
		Topic:   event.TopicMarkChanged,
		Payload: event.MarkChanged{ViewID: ctx.ViewID, Position: pos, Set: set},
	})
}
