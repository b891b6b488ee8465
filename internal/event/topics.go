package event

import (
	"github.com/dshills/markstorm/internal/engine/buffer"
	"github.com/dshills/markstorm/internal/engine/search"
)

// Topics published by the command handlers.
const (
	// TopicSearchStateChanged is published on every search session
	// transition: start, query change, next/previous, exit, cancel.
	TopicSearchStateChanged Topic = "search.state.changed"

	// TopicMarkChanged is published when the mark is set, cleared, or
	// exchanged with the cursor.
	TopicMarkChanged Topic = "mark.changed"

	// TopicBufferChanged is published after a command mutates buffer
	// content.
	TopicBufferChanged Topic = "buffer.changed"
)

// SearchStateChanged carries a snapshot of the search session after a
// transition. The snapshot owns its matches slice, so observers may
// hold it across later session mutations.
type SearchStateChanged struct {
	// ViewID identifies the editor view that owns the session.
	ViewID string

	// Session is the post-transition session state.
	Session search.Session

	// Failed is true while an active query has no matches.
	Failed bool
}

// MarkChanged is published when the mark state of a view changes.
type MarkChanged struct {
	// ViewID identifies the editor view that owns the mark.
	ViewID string

	// Position is the mark position; meaningful only when Set.
	Position buffer.Point

	// Set is false when the mark was cleared.
	Set bool
}

// BufferChanged is published after a command mutates buffer content.
type BufferChanged struct {
	// ViewID identifies the editor view whose buffer changed.
	ViewID string

	// Revision is the buffer revision after the change.
	Revision buffer.RevisionID
}
