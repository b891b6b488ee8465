package highlight

import (
	"sync"

	"github.com/dshills/markstorm/internal/engine/buffer"
	"github.com/dshills/markstorm/internal/event"
)

// Renderer caches the decoration set for one editor view. It observes
// search state events and recomputes on each one, so the cache is only
// ever refreshed when the state actually changed: demand-driven, never
// on a timer.
type Renderer struct {
	mu     sync.RWMutex
	viewID string
	ranges []Range
	failed bool
	unsubs []func()
}

// NewRenderer creates a renderer for the given view.
func NewRenderer(viewID string) *Renderer {
	return &Renderer{viewID: viewID}
}

// Subscribe attaches the renderer to a bus. Events for other views are
// ignored. Subscribing again replaces the previous subscriptions.
func (r *Renderer) Subscribe(bus *event.Bus) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.detachLocked()
	r.unsubs = []func(){
		bus.Subscribe(event.TopicSearchStateChanged, r.handle),
		bus.Subscribe(event.TopicBufferChanged, r.handleBufferChange),
	}
}

// Close detaches the renderer from its bus and clears the cache.
func (r *Renderer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.detachLocked()
	r.ranges = nil
	r.failed = false
}

func (r *Renderer) detachLocked() {
	for _, unsub := range r.unsubs {
		unsub()
	}
	r.unsubs = nil
}

// handle recomputes the decoration set from a search state event.
func (r *Renderer) handle(e event.Event) {
	state, ok := e.Payload.(event.SearchStateChanged)
	if !ok || state.ViewID != r.viewID {
		return
	}

	ranges := Compute(state.Session)

	r.mu.Lock()
	r.ranges = ranges
	r.failed = state.Failed
	r.mu.Unlock()
}

// handleBufferChange drops the cached ranges when the view's text
// mutates. Their offsets no longer point at the matched text; the next
// search transition republishes fresh ones.
func (r *Renderer) handleBufferChange(e event.Event) {
	change, ok := e.Payload.(event.BufferChanged)
	if !ok || change.ViewID != r.viewID {
		return
	}

	r.mu.Lock()
	r.ranges = nil
	r.mu.Unlock()
}

// Ranges returns the current decoration set, ascending by start.
func (r *Renderer) Ranges() []Range {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ranges
}

// Failed reports whether the live query currently has no matches.
func (r *Renderer) Failed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.failed
}

// KindAt returns the decoration covering the byte offset. ok is false
// when the offset is undecorated.
func (r *Renderer) KindAt(off buffer.ByteOffset) (Kind, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// The current match can overlap plain matches; prefer it.
	found := false
	kind := KindMatch
	for _, rng := range r.ranges {
		if rng.Start > off {
			break
		}
		if rng.Contains(off) {
			found = true
			if rng.Kind == KindCurrent {
				return KindCurrent, true
			}
			kind = rng.Kind
		}
	}
	return kind, found
}
