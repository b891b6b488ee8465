// Package cursor provides handlers for cursor movement commands.
package cursor

import (
	"github.com/dshills/markstorm/internal/dispatcher/execctx"
	"github.com/dshills/markstorm/internal/dispatcher/handler"
	"github.com/dshills/markstorm/internal/input"
)

// Action names for cursor movement.
const (
	ActionMove         = "cursor.move"
	ActionForwardChar  = "cursor.forwardChar"
	ActionBackwardChar = "cursor.backwardChar"
	ActionNextLine     = "cursor.nextLine"
	ActionPreviousLine = "cursor.previousLine"
	ActionLineStart    = "cursor.lineStart"
	ActionLineEnd      = "cursor.lineEnd"
	ActionBufferStart  = "cursor.bufferStart"
	ActionBufferEnd    = "cursor.bufferEnd"
	ActionWordForward  = "cursor.wordForward"
	ActionWordBackward = "cursor.wordBackward"
)

// Handler implements namespace-based cursor movement handling.
type Handler struct{}

// NewHandler creates a new cursor handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Namespace returns the cursor namespace.
func (h *Handler) Namespace() string {
	return "cursor"
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(actionName string) bool {
	switch actionName {
	case ActionMove, ActionForwardChar, ActionBackwardChar,
		ActionNextLine, ActionPreviousLine,
		ActionLineStart, ActionLineEnd,
		ActionBufferStart, ActionBufferEnd,
		ActionWordForward, ActionWordBackward:
		return true
	}
	return false
}

// HandleAction processes a cursor action.
func (h *Handler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if err := ctx.Validate(); err != nil {
		return handler.Error(err)
	}

	count := ctx.GetCount()

	switch action.Name {
	case ActionMove:
		return h.moveBy(ctx, action.Args.LineDelta, action.Args.ColDelta, count)
	case ActionForwardChar:
		return h.forwardChar(ctx, count)
	case ActionBackwardChar:
		return h.backwardChar(ctx, count)
	case ActionNextLine:
		return h.moveBy(ctx, 1, 0, count)
	case ActionPreviousLine:
		return h.moveBy(ctx, -1, 0, count)
	case ActionLineStart:
		return h.moveLineStart(ctx)
	case ActionLineEnd:
		return h.moveLineEnd(ctx)
	case ActionBufferStart:
		return h.moveBufferStart(ctx)
	case ActionBufferEnd:
		return h.moveBufferEnd(ctx)
	case ActionWordForward:
		return h.moveWordForward(ctx, count)
	case ActionWordBackward:
		return h.moveWordBackward(ctx, count)
	default:
		return handler.Errorf("unknown cursor action: %s", action.Name)
	}
}
