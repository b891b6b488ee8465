package dispatcher

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/markstorm/internal/clipboard"
	"github.com/dshills/markstorm/internal/dispatcher/execctx"
	"github.com/dshills/markstorm/internal/dispatcher/handler"
	"github.com/dshills/markstorm/internal/engine/buffer"
	"github.com/dshills/markstorm/internal/engine/mark"
	"github.com/dshills/markstorm/internal/engine/search"
	"github.com/dshills/markstorm/internal/event"
	"github.com/dshills/markstorm/internal/input"
)

// Dispatcher routes actions to handlers and coordinates execution for a
// single editor view. It owns the view's mark and search session, so
// two views never share controller state.
type Dispatcher struct {
	mu sync.RWMutex

	// Core components
	registry *Registry
	router   *Router

	// Per-view controller state
	viewID string
	mark   *mark.Mark
	search *search.Session

	// Editor subsystems
	buffer   execctx.BufferInterface
	clip     clipboard.Clipboard
	settings execctx.SettingsInterface
	events   execctx.EventPublisher

	// Configuration
	config Config

	// Metrics
	metrics *Metrics

	// Hooks
	preHooks  []PreDispatchHook
	postHooks []PostDispatchHook
}

// New creates a new dispatcher with the given configuration.
func New(config Config) *Dispatcher {
	d := &Dispatcher{
		registry: NewRegistry(),
		router:   NewRouter(),
		viewID:   uuid.NewString(),
		mark:     mark.New(),
		search:   search.NewSession(),
		config:   config,
	}

	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}

	return d
}

// NewWithDefaults creates a new dispatcher with default configuration.
func NewWithDefaults() *Dispatcher {
	return New(DefaultConfig())
}

// ViewID returns the identifier of the view this dispatcher drives.
func (d *Dispatcher) ViewID() string {
	return d.viewID
}

// SetBuffer sets the text buffer.
func (d *Dispatcher) SetBuffer(buf execctx.BufferInterface) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.buffer = buf
}

// SetClipboard sets the clipboard backend.
func (d *Dispatcher) SetClipboard(clip clipboard.Clipboard) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clip = clip
}

// SetSettings sets the live settings accessor.
func (d *Dispatcher) SetSettings(settings execctx.SettingsInterface) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.settings = settings
}

// SetEvents sets the event publisher.
func (d *Dispatcher) SetEvents(events execctx.EventPublisher) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = events
}

// Buffer returns the text buffer.
func (d *Dispatcher) Buffer() execctx.BufferInterface {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.buffer
}

// Clipboard returns the clipboard backend.
func (d *Dispatcher) Clipboard() clipboard.Clipboard {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.clip
}

// Settings returns the live settings accessor.
func (d *Dispatcher) Settings() execctx.SettingsInterface {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.settings
}

// Events returns the event publisher.
func (d *Dispatcher) Events() execctx.EventPublisher {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.events
}

// Mark returns the view's mark state.
func (d *Dispatcher) Mark() *mark.Mark {
	return d.mark
}

// Search returns the view's search session.
func (d *Dispatcher) Search() *search.Session {
	return d.search
}

// Dispatch executes an action synchronously and returns its result.
// Commands that touch the clipboard honor ctx; everything else is pure
// in-memory state manipulation.
func (d *Dispatcher) Dispatch(ctx context.Context, action input.Action) handler.Result {
	startTime := time.Now()

	// Build execution context
	ectx := d.buildContext(ctx)

	// Apply repeat count from action if specified
	if action.Count > 0 {
		ectx.Count = action.Count
	}

	var startRev buffer.RevisionID
	if ectx.Buffer != nil {
		startRev = ectx.Buffer.Revision()
	}

	// Run pre-dispatch hooks
	if !d.runPreHooks(&action, ectx) {
		return handler.CancelledWithMessage("cancelled by hook")
	}

	// Find handler
	h := d.router.Route(action.Name)
	if h == nil {
		h = d.registry.Get(action.Name)
	}
	if h == nil {
		return handler.Error(fmt.Errorf("%w: %s", ErrNoHandler, action.Name))
	}

	// Execute handler
	var result handler.Result
	if d.config.RecoverFromPanic {
		result = d.executeWithRecovery(h, action, ectx)
	} else {
		result = h.Handle(action, ectx)
	}

	// Notify observers of content changes
	d.publishBufferChange(ectx, startRev)

	// Run post-dispatch hooks
	d.runPostHooks(&action, ectx, &result)

	// Record metrics
	if d.metrics != nil {
		d.metrics.RecordDispatch(action.Name, time.Since(startTime), result.Status)
	}

	return result
}

// executeWithRecovery executes a handler with panic recovery.
func (d *Dispatcher) executeWithRecovery(h handler.Handler, action input.Action, ectx *execctx.ExecutionContext) (result handler.Result) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)

			result = handler.Error(fmt.Errorf("%w in %s: %v\n%s", ErrPanic, action.Name, r, stack[:n]))

			if d.metrics != nil {
				d.metrics.RecordPanic(action.Name)
			}
		}
	}()

	return h.Handle(action, ectx)
}

// buildContext builds an execution context from the view's subsystems.
func (d *Dispatcher) buildContext(ctx context.Context) *execctx.ExecutionContext {
	d.mu.RLock()
	defer d.mu.RUnlock()

	ectx := execctx.New()
	if ctx != nil {
		ectx.Ctx = ctx
	}
	ectx.ViewID = d.viewID
	ectx.Buffer = d.buffer
	ectx.Mark = d.mark
	ectx.Search = d.search
	ectx.Clipboard = d.clip
	ectx.Settings = d.settings
	ectx.Events = d.events

	return ectx
}

// publishBufferChange publishes a buffer change notification when the
// dispatch moved the buffer to a new revision.
func (d *Dispatcher) publishBufferChange(ectx *execctx.ExecutionContext, before buffer.RevisionID) {
	if ectx.Buffer == nil || ectx.Events == nil {
		return
	}

	after := ectx.Buffer.Revision()
	if after == before {
		return
	}

	ectx.Publish(event.Event{
		Topic:   event.TopicBufferChanged,
		Payload: event.BufferChanged{ViewID: ectx.ViewID, Revision: after},
	})
}

// RegisterHandler registers a handler for an exact action name.
func (d *Dispatcher) RegisterHandler(actionName string, h handler.Handler) {
	d.registry.Register(actionName, h)
}

// RegisterHandlerFunc registers a handler function for an action name.
func (d *Dispatcher) RegisterHandlerFunc(actionName string, fn func(input.Action, *execctx.ExecutionContext) handler.Result) {
	d.registry.Register(actionName, handler.NewHandlerFunc(fn))
}

// RegisterNamespace registers a namespace handler.
func (d *Dispatcher) RegisterNamespace(namespace string, h handler.NamespaceHandler) {
	d.router.RegisterNamespace(namespace, h)
}

// RegisterPreHook registers a pre-dispatch hook.
func (d *Dispatcher) RegisterPreHook(hook PreDispatchHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.preHooks = append(d.preHooks, hook)
}

// RegisterPostHook registers a post-dispatch hook.
func (d *Dispatcher) RegisterPostHook(hook PostDispatchHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.postHooks = append(d.postHooks, hook)
}

// runPreHooks runs all pre-dispatch hooks.
// Returns false if any hook cancels the action.
func (d *Dispatcher) runPreHooks(action *input.Action, ectx *execctx.ExecutionContext) bool {
	d.mu.RLock()
	hooks := make([]PreDispatchHook, len(d.preHooks))
	copy(hooks, d.preHooks)
	d.mu.RUnlock()

	for _, h := range hooks {
		if !h.PreDispatch(action, ectx) {
			return false
		}
	}
	return true
}

// runPostHooks runs all post-dispatch hooks.
func (d *Dispatcher) runPostHooks(action *input.Action, ectx *execctx.ExecutionContext, result *handler.Result) {
	d.mu.RLock()
	hooks := make([]PostDispatchHook, len(d.postHooks))
	copy(hooks, d.postHooks)
	d.mu.RUnlock()

	for _, h := range hooks {
		h.PostDispatch(action, ectx, result)
	}
}

// Registry returns the handler registry.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Router returns the action router.
func (d *Dispatcher) Router() *Router {
	return d.router
}

// Metrics returns the metrics collector (may be nil if disabled).
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Config returns the dispatcher configuration.
func (d *Dispatcher) Config() Config {
	return d.config
}
