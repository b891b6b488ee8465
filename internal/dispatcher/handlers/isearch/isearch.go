// Package isearch provides handlers for incremental search commands.
package isearch

import (
	"github.com/dshills/markstorm/internal/dispatcher/execctx"
	"github.com/dshills/markstorm/internal/dispatcher/handler"
	"github.com/dshills/markstorm/internal/engine/search"
	"github.com/dshills/markstorm/internal/event"
	"github.com/dshills/markstorm/internal/input"
)

// Action names for incremental search.
const (
	ActionForward      = "isearch.forward"
	ActionBackward     = "isearch.backward"
	ActionQueryChanged = "isearch.queryChanged"
	ActionNext         = "isearch.next"
	ActionPrevious     = "isearch.previous"
	ActionExit         = "isearch.exit"
	ActionCancel       = "isearch.cancel"
)

// Handler implements namespace-based incremental search handling. The
// session is a two-state machine: Idle and Searching. The start actions
// open a session; every other action is a guarded no-op while Idle.
type Handler struct{}

// NewHandler creates a new incremental search handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Namespace returns the isearch namespace.
func (h *Handler) Namespace() string {
	return "isearch"
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(actionName string) bool {
	switch actionName {
	case ActionForward, ActionBackward, ActionQueryChanged,
		ActionNext, ActionPrevious, ActionExit, ActionCancel:
		return true
	}
	return false
}

// HandleAction processes a search action.
func (h *Handler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if err := ctx.Validate(); err != nil {
		return handler.Error(err)
	}
	if ctx.Search == nil {
		return handler.Error(execctx.ErrMissingSearch)
	}

	switch action.Name {
	case ActionForward:
		return h.start(ctx, search.Forward)
	case ActionBackward:
		return h.start(ctx, search.Backward)
	case ActionQueryChanged:
		return h.queryChanged(ctx, action.Args.Query)
	case ActionNext:
		return h.step(ctx, search.Forward)
	case ActionPrevious:
		return h.step(ctx, search.Backward)
	case ActionExit:
		return h.exit(ctx)
	case ActionCancel:
		return Cancel(ctx)
	default:
		return handler.Errorf("unknown isearch action: %s", action.Name)
	}
}

// start opens a session anchored at the current cursor. Starting while
// a session is already open restarts it at the current cursor with the
// new direction.
func (h *Handler) start(ctx *execctx.ExecutionContext, dir search.Direction) handler.Result {
	ctx.Search.Start(dir, ctx.Buffer.Cursor())
	publishState(ctx, false)
	return handler.Success().WithMessage(prompt(ctx.Search))
}

// queryChanged recomputes the match set for the live query and moves
// the selection to the match nearest the anchor in the session
// direction.
func (h *Handler) queryChanged(ctx *execctx.ExecutionContext, query string) handler.Result {
	s := ctx.Search
	if !s.Active {
		return handler.NoOp()
	}

	s.Query = query
	if query == "" {
		s.Matches = nil
		s.Index = -1
		ctx.Buffer.SetCursor(s.Anchor)
		publishState(ctx, false)
		return handler.Success().WithMessage(prompt(s))
	}

	s.Matches = search.Find(ctx.Buffer.Text(), query)
	if len(s.Matches) == 0 {
		s.Index = -1
		publishState(ctx, true)
		return handler.Success().WithMessage("Failing " + prompt(s))
	}

	anchor := ctx.Buffer.PointToOffset(s.Anchor)
	if s.Direction == search.Backward {
		s.Index = search.NearestBackward(s.Matches, anchor)
	} else {
		s.Index = search.NearestForward(s.Matches, anchor)
	}

	selectCurrent(ctx)
	publishState(ctx, false)
	return handler.Success().WithMessage(prompt(s))
}

// step advances to the next match in dir, cyclically. No-op while Idle
// or with no matches.
func (h *Handler) step(ctx *execctx.ExecutionContext, dir search.Direction) handler.Result {
	s := ctx.Search
	if !s.Active || !s.HasMatches() {
		return handler.NoOp()
	}

	s.Direction = dir
	s.Advance(dir.Delta())
	selectCurrent(ctx)
	publishState(ctx, false)
	return handler.Success().WithMessage(prompt(s))
}

// exit commits the search: the cursor lands at the end of the current
// match if one exists, otherwise it stays where it is. The session
// resets either way.
func (h *Handler) exit(ctx *execctx.ExecutionContext) handler.Result {
	s := ctx.Search
	if !s.Active {
		return handler.NoOp()
	}

	if m, ok := s.Current(); ok {
		ctx.Buffer.SetCursor(ctx.Buffer.OffsetToPoint(m.End))
	}

	s.Reset()
	publishState(ctx, false)
	return handler.Success()
}

// Cancel closes an active session and restores the cursor to the
// position where the search started. Keyboard-quit calls this directly,
// so it is exported. No-op while Idle.
func Cancel(ctx *execctx.ExecutionContext) handler.Result {
	s := ctx.Search
	if s == nil || !s.Active {
		return handler.NoOp()
	}

	ctx.Buffer.SetCursor(s.Anchor)
	s.Reset()
	publishState(ctx, false)
	return handler.SuccessWithMessage("Quit")
}

// selectCurrent moves the selection onto the current match and scrolls
// it into view.
func selectCurrent(ctx *execctx.ExecutionContext) {
	m, ok := ctx.Search.Current()
	if !ok {
		return
	}

	from := ctx.Buffer.OffsetToPoint(m.Start)
	to := ctx.Buffer.OffsetToPoint(m.End)
	ctx.Buffer.SetSelection(from, to)
	ctx.Buffer.ScrollIntoView(from, to, true)
}

// publishState notifies observers of a session transition. failed marks
// an active query with no matches.
func publishState(ctx *execctx.ExecutionContext, failed bool) {
	ctx.Publish(event.Event{
		Topic: event.TopicSearchStateChanged,
		Payload: event.SearchStateChanged{
			ViewID:  ctx.ViewID,
			Session: ctx.Search.Snapshot(),
			Failed:  failed,
		},
	})
}

// prompt returns the minibuffer label for the session.
func prompt(s *search.Session) string {
	label := "I-search"
	if s.Direction == search.Backward {
		label = "I-search backward"
	}
	return label + ": " + s.Query
}
