// Package execctx provides the execution context for action handlers.
package execctx

import (
	"context"

	"github.com/dshills/markstorm/internal/clipboard"
	"github.com/dshills/markstorm/internal/engine/buffer"
	"github.com/dshills/markstorm/internal/engine/mark"
	"github.com/dshills/markstorm/internal/engine/search"
	"github.com/dshills/markstorm/internal/engine/word"
	"github.com/dshills/markstorm/internal/event"
)

// BufferInterface abstracts the host text buffer for handlers.
type BufferInterface interface {
	// Cursor and selection
	Cursor() buffer.Point
	SetCursor(p buffer.Point)
	Selection() (anchor, head buffer.Point)
	SetSelection(anchor, head buffer.Point)
	HasSelection() bool

	// Read operations
	Text() string
	TextRange(from, to buffer.Point) string
	LineText(line int) string
	LineCount() int
	LineLen(line int) int

	// Mutation
	ReplaceRange(text string, from, to buffer.Point) buffer.Point

	// Position conversion
	PointToOffset(p buffer.Point) buffer.ByteOffset
	OffsetToPoint(off buffer.ByteOffset) buffer.Point

	// Viewport
	ScrollIntoView(from, to buffer.Point, center bool)

	// Revision tracking
	Revision() buffer.RevisionID
}

// SettingsInterface provides live configuration reads for handlers.
// Values are read at use time, never cached across dispatches.
type SettingsInterface interface {
	// BoundaryChars returns the word-boundary character specification.
	BoundaryChars() string
}

// EventPublisher publishes state-change notifications to observers.
type EventPublisher interface {
	Publish(e event.Event)
}

// ExecutionContext provides context for action execution. The
// dispatcher builds one per dispatch from the subsystems of a single
// editor view; nothing here is shared between views.
type ExecutionContext struct {
	// Ctx is the host context for this dispatch. Clipboard I/O, the
	// one asynchronous boundary, honors it.
	Ctx context.Context

	// ViewID identifies the editor view, stamped on published events.
	ViewID string

	// Buffer provides access to the view's text, cursor, and selection.
	Buffer BufferInterface

	// Mark is the view's mark state.
	Mark *mark.Mark

	// Search is the view's incremental search session.
	Search *search.Session

	// Clipboard provides kill/yank text transfer.
	Clipboard clipboard.Clipboard

	// Settings provides live configuration reads.
	Settings SettingsInterface

	// Events receives state-change notifications; may be nil.
	Events EventPublisher

	// Count is the repeat count (1 if not specified).
	Count int
}

// New creates a new execution context.
func New() *ExecutionContext {
	return &ExecutionContext{
		Ctx:   context.Background(),
		Count: 1,
	}
}

// WithBuffer returns the context with the buffer set.
func (ctx *ExecutionContext) WithBuffer(buf BufferInterface) *ExecutionContext {
	ctx.Buffer = buf
	return ctx
}

// WithMark returns the context with the mark set.
func (ctx *ExecutionContext) WithMark(m *mark.Mark) *ExecutionContext {
	ctx.Mark = m
	return ctx
}

// WithSearch returns the context with the search session set.
func (ctx *ExecutionContext) WithSearch(s *search.Session) *ExecutionContext {
	ctx.Search = s
	return ctx
}

// WithClipboard returns the context with the clipboard set.
func (ctx *ExecutionContext) WithClipboard(clip clipboard.Clipboard) *ExecutionContext {
	ctx.Clipboard = clip
	return ctx
}

// WithSettings returns the context with the settings accessor set.
func (ctx *ExecutionContext) WithSettings(s SettingsInterface) *ExecutionContext {
	ctx.Settings = s
	return ctx
}

// WithEvents returns the context with the event publisher set.
func (ctx *ExecutionContext) WithEvents(pub EventPublisher) *ExecutionContext {
	ctx.Events = pub
	return ctx
}

// WithCount returns the context with the repeat count set.
func (ctx *ExecutionContext) WithCount(count int) *ExecutionContext {
	if count > 0 {
		ctx.Count = count
	}
	return ctx
}

// GetCount returns the repeat count, defaulting to 1.
func (ctx *ExecutionContext) GetCount() int {
	if ctx.Count <= 0 {
		return 1
	}
	return ctx.Count
}

// Context returns the host context, never nil.
func (ctx *ExecutionContext) Context() context.Context {
	if ctx.Ctx == nil {
		return context.Background()
	}
	return ctx.Ctx
}

// Publish sends e to the event publisher; a nil publisher is a no-op.
func (ctx *ExecutionContext) Publish(e event.Event) {
	if ctx.Events != nil {
		ctx.Events.Publish(e)
	}
}

// BoundaryChars returns the live word-boundary specification, falling
// back to the default when no settings accessor is wired.
func (ctx *ExecutionContext) BoundaryChars() string {
	if ctx.Settings == nil {
		return word.DefaultBoundaryChars
	}
	return ctx.Settings.BoundaryChars()
}

// Validate checks that the context has the components every command
// needs.
func (ctx *ExecutionContext) Validate() error {
	if ctx.Buffer == nil {
		return ErrMissingBuffer
	}
	return nil
}

// ValidateForKill checks that the context is valid for operations that
// transfer text through the clipboard.
func (ctx *ExecutionContext) ValidateForKill() error {
	if err := ctx.Validate(); err != nil {
		return err
	}
	if ctx.Clipboard == nil {
		return ErrMissingClipboard
	}
	return nil
}
