// Package dispatcher routes input actions to handlers and coordinates execution.
//
// The dispatcher is the hub that connects key input to editing commands.
// Each editor view owns one Dispatcher, and the Dispatcher in turn owns
// the view's mark and incremental search session, so per-view command
// state never leaks between views.
//
// # Architecture
//
// The dispatcher uses a two-tier routing system:
//
//  1. Namespace Router: Routes actions by namespace prefix (e.g.,
//     "cursor.wordForward" is routed to the "cursor" namespace handler).
//     This provides O(1) lookup for namespaced actions.
//
//  2. Handler Registry: Maps exact action names to handlers. Multiple
//     handlers can be registered for the same action, sorted by priority.
//
// # Handler Execution
//
// When an action is dispatched:
//
//  1. An ExecutionContext is built from the view's subsystems
//  2. Pre-dispatch hooks are called (can modify or cancel the action)
//  3. The router finds the appropriate handler, falling back to the registry
//  4. The handler is executed (with optional panic recovery)
//  5. Buffer change notifications are published to observers
//  6. Post-dispatch hooks are called
//  7. Metrics are recorded (if enabled)
//
// Dispatch is synchronous: when it returns, the command has fully
// completed, including any clipboard transfer it performed.
//
// # Execution Context
//
// The ExecutionContext provides handlers with access to:
//   - Buffer: text, cursor, and selection operations
//   - Mark: the view's mark state
//   - Search: the view's incremental search session
//   - Clipboard: kill/yank text transfer
//   - Settings: live configuration reads
//   - Events: state-change notifications for observers
//
// # Usage
//
// Basic setup:
//
//	d := dispatcher.NewWithDefaults()
//	d.SetBuffer(buf)
//	d.SetClipboard(clip)
//
//	// Register handlers
//	d.RegisterNamespace("cursor", cursorHandler)
//	d.RegisterHandlerFunc("app.quit", quitHandler)
//
//	// Dispatch actions
//	result := d.Dispatch(ctx, action)
//
// # Hooks
//
// Pre-dispatch hooks can modify or cancel actions:
//
//	d.RegisterPreHook(PreDispatchFunc(func(action *input.Action, ctx *execctx.ExecutionContext) bool {
//	    // Return false to cancel
//	    return true
//	}))
//
// Post-dispatch hooks can observe or modify results:
//
//	d.RegisterPostHook(PostDispatchFunc(func(action *input.Action, ctx *execctx.ExecutionContext, result *handler.Result) {
//	    // Log, audit, etc.
//	}))
package dispatcher
