// Package app wires the editing engines into a runnable terminal
// application: a tcell frontend, the command dispatcher with its
// handlers, configuration with live reload, and the event bus feeding
// the highlight renderer.
package app

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/markstorm/internal/clipboard"
	"github.com/dshills/markstorm/internal/config"
	"github.com/dshills/markstorm/internal/dispatcher"
	"github.com/dshills/markstorm/internal/dispatcher/handler"
	"github.com/dshills/markstorm/internal/dispatcher/handlers/cursor"
	"github.com/dshills/markstorm/internal/dispatcher/handlers/editor"
	"github.com/dshills/markstorm/internal/dispatcher/handlers/isearch"
	"github.com/dshills/markstorm/internal/dispatcher/handlers/mark"
	"github.com/dshills/markstorm/internal/engine/buffer"
	"github.com/dshills/markstorm/internal/engine/search"
	"github.com/dshills/markstorm/internal/event"
	"github.com/dshills/markstorm/internal/input"
	"github.com/dshills/markstorm/internal/input/key"
	"github.com/dshills/markstorm/internal/renderer/highlight"
)

// Application-level actions the frontend handles itself rather than
// dispatching; they concern the process, not the buffer.
const (
	actionQuit = "app.quit"
	actionSave = "app.save"
)

// Application owns one editor view and the terminal it renders to.
type Application struct {
	opts   Options
	logger *Logger

	cfg        *config.Config
	cfgWatcher *config.Watcher

	buf      *buffer.Buffer
	filename string

	bus  *event.Bus
	disp *dispatcher.Dispatcher
	hl   *highlight.Renderer

	screen tcell.Screen

	// pending accumulates the chords of an incomplete key sequence,
	// e.g. "C-x" while waiting for "C-x C-x".
	pending string

	// status is the last message shown on the status line.
	status string

	topLine  int
	quitting atomic.Bool
}

// New creates an application from options. The terminal screen is not
// touched until Run; tests inject a simulation screen with SetScreen.
func New(opts Options) (*Application, error) {
	logger := NewLogger(DefaultLoggerConfig())
	if opts.Debug {
		logger.SetLevel(LogLevelDebug)
	} else if opts.LogLevel != "" {
		logger.SetLevel(ParseLogLevel(opts.LogLevel))
	}

	cfgDir := opts.ConfigDir
	if cfgDir == "" {
		var err error
		cfgDir, err = config.DefaultDir()
		if err != nil {
			logger.Warn("no config dir, using defaults: %v", err)
		}
	}

	cfg, err := config.Load(cfgDir)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	if lvl := cfg.Settings().Log.Level; lvl != "" && !opts.Debug && opts.LogLevel == "" {
		logger.SetLevel(ParseLogLevel(lvl))
	}
	if path := cfg.Settings().Log.File; path != "" {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			logger.SetOutput(f)
		} else {
			logger.Warn("log file unavailable: %v", err)
		}
	}

	app := &Application{
		opts:   opts,
		logger: logger,
		cfg:    cfg,
		bus:    event.NewBus(),
	}

	if err := app.openInitialFile(); err != nil {
		return nil, err
	}

	app.disp = dispatcher.NewWithDefaults()
	app.disp.SetBuffer(app.buf)
	app.disp.SetClipboard(clipboard.NewSystem())
	app.disp.SetSettings(cfg)
	app.disp.SetEvents(app.bus)
	registerHandlers(app.disp)

	app.hl = highlight.NewRenderer(app.disp.ViewID())
	app.hl.Subscribe(app.bus)

	if w, err := config.NewWatcher(cfg, func(err error) {
		logger.WithComponent("config").Error("reload: %v", err)
	}); err == nil {
		app.cfgWatcher = w
	} else {
		logger.Debug("config watcher disabled: %v", err)
	}

	logger.Info("initialized view %s", app.disp.ViewID())
	return app, nil
}

// registerHandlers wires every command namespace into the dispatcher.
func registerHandlers(d *dispatcher.Dispatcher) {
	d.RegisterNamespace("cursor", cursor.NewHandler())
	d.RegisterNamespace("mark", mark.NewHandler())
	d.RegisterNamespace("editor", editor.NewHandler())
	d.RegisterNamespace("isearch", isearch.NewHandler())
}

// openInitialFile loads the first requested file into the buffer. A
// missing file opens an empty buffer carrying its name.
func (app *Application) openInitialFile() error {
	if len(app.opts.Files) == 0 {
		app.buf = buffer.NewBuffer()
		return nil
	}

	app.filename = app.opts.Files[0]
	data, err := os.ReadFile(app.filename)
	if err != nil {
		if os.IsNotExist(err) {
			app.buf = buffer.NewBuffer()
			app.status = "(New file)"
			return nil
		}
		return fmt.Errorf("opening %s: %w", app.filename, err)
	}
	app.buf = buffer.NewBufferFromString(string(data))
	return nil
}

// SetScreen injects a screen, replacing the terminal default. It must
// be called before Run.
func (app *Application) SetScreen(s tcell.Screen) {
	app.screen = s
}

// Buffer returns the application's buffer.
func (app *Application) Buffer() *buffer.Buffer {
	return app.buf
}

// Dispatcher returns the view's command dispatcher.
func (app *Application) Dispatcher() *dispatcher.Dispatcher {
	return app.disp
}

// Status returns the current status line message.
func (app *Application) Status() string {
	return app.status
}

// Run enters the event loop. It returns ErrQuit on a user-requested
// exit and the underlying error on failure.
func (app *Application) Run() error {
	if app.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("creating screen: %w", err)
		}
		app.screen = s
	}
	if err := app.screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer app.screen.Fini()

	app.render()

	for {
		ev := app.screen.PollEvent()
		if ev == nil {
			return ErrQuit
		}

		switch tev := ev.(type) {
		case *tcell.EventKey:
			if err := app.handleKeyEvent(tev); err != nil {
				return err
			}
		case *tcell.EventResize:
			app.screen.Sync()
		case *tcell.EventInterrupt:
			if app.quitting.Load() {
				return ErrQuit
			}
		}

		app.render()
	}
}

// Quit requests a graceful exit from another goroutine, typically a
// signal handler.
func (app *Application) Quit() {
	app.quitting.Store(true)
	if app.screen != nil {
		_ = app.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}
}

// Shutdown releases resources. Safe to call more than once.
func (app *Application) Shutdown() {
	if app.cfgWatcher != nil {
		_ = app.cfgWatcher.Close()
		app.cfgWatcher = nil
	}
	if app.hl != nil {
		app.hl.Close()
	}
}

// handleKeyEvent routes one key press. The search session intercepts
// most keys while active; everything else goes through the keymap.
func (app *Application) handleKeyEvent(tev *tcell.EventKey) error {
	ev, ok := translateKey(tev)
	if !ok {
		return nil
	}
	return app.HandleKey(ev)
}

// HandleKey processes a single decoded key event. Exposed so tests can
// drive the application without a terminal.
func (app *Application) HandleKey(ev key.Event) error {
	if app.disp.Search().Active {
		if app.handleSearchKey(ev) {
			return nil
		}
		// Unhandled keys commit the search and are processed normally.
		app.dispatch(isearch.ActionExit, input.ActionArgs{})
	}
	return app.handleGlobalKey(ev)
}

// handleSearchKey processes a key while the search session is open.
// It returns false when the key should fall through to normal
// handling after the session exits.
func (app *Application) handleSearchKey(ev key.Event) bool {
	chord := ev.Chord()
	query := app.disp.Search().Query

	switch chord {
	case "RET":
		app.dispatch(isearch.ActionExit, input.ActionArgs{})
		return true
	case "C-g", "ESC":
		app.dispatch(isearch.ActionCancel, input.ActionArgs{})
		return true
	case "C-s":
		app.dispatch(isearch.ActionNext, input.ActionArgs{})
		return true
	case "C-r":
		app.dispatch(isearch.ActionPrevious, input.ActionArgs{})
		return true
	case "DEL":
		if query != "" {
			runes := []rune(query)
			query = string(runes[:len(runes)-1])
		}
		app.dispatch(isearch.ActionQueryChanged, input.ActionArgs{Query: query})
		return true
	}

	if ev.IsText() {
		app.dispatch(isearch.ActionQueryChanged, input.ActionArgs{Query: query + string(ev.Rune)})
		return true
	}
	return false
}

// handleGlobalKey resolves a key against the keymap, falling back to
// text insertion for plain printable keys.
func (app *Application) handleGlobalKey(ev key.Event) error {
	chord := ev.Chord()
	seq := chord
	if app.pending != "" {
		seq = app.pending + " " + chord
	}

	keymap := app.cfg.Keymap()
	if binding, ok := keymap.Lookup(seq); ok {
		app.pending = ""
		return app.runBinding(binding)
	}
	if keymap.HasPrefix(seq) {
		app.pending = seq
		app.status = seq + "-"
		return nil
	}
	if app.pending != "" {
		app.pending = ""
		app.status = seq + " is undefined"
		return nil
	}

	switch {
	case ev.IsText():
		app.insertText(string(ev.Rune))
	case ev.Key == key.KeyEnter:
		app.insertText("\n")
	case ev.Key == key.KeyTab:
		app.insertText("\t")
	case ev.Key == key.KeyBackspace:
		app.deleteRune(-1)
	case ev.Key == key.KeyDelete:
		app.deleteRune(1)
	default:
		app.status = chord + " is undefined"
	}
	return nil
}

// runBinding executes a resolved keymap binding.
func (app *Application) runBinding(b config.Binding) error {
	switch b.Action {
	case actionQuit:
		app.quitting.Store(true)
		return ErrQuit
	case actionSave:
		app.save()
		return nil
	}

	args := input.ActionArgs{Extra: b.Args}
	args.LineDelta = args.GetInt("lineDelta")
	args.ColDelta = args.GetInt("colDelta")
	args.Query = args.GetString("query")
	app.dispatch(b.Action, args)
	return nil
}

// dispatch runs an action through the dispatcher and surfaces its
// result on the status line.
func (app *Application) dispatch(name string, args input.ActionArgs) {
	result := app.disp.Dispatch(context.Background(), input.Action{
		Name:   name,
		Args:   args,
		Source: input.SourceKeyboard,
	})

	switch {
	case result.IsError():
		app.status = fmt.Sprintf("error: %v", result.Error)
		app.logger.WithComponent("dispatch").Error("%s: %v", name, result.Error)
	case result.Message != "":
		app.status = result.Message
	case result.Status == handler.StatusNoOp:
		// Boundary no-ops keep the previous status.
	default:
		app.status = ""
	}
}

// insertText inserts text at the cursor, replacing any selection.
func (app *Application) insertText(text string) {
	anchor, head := app.buf.Selection()
	app.buf.ReplaceRange(text, anchor, head)
	app.disp.Mark().Clear()
	app.status = ""
}

// deleteRune removes one rune before (dir < 0) or after (dir > 0) the
// cursor. With a selection active the selection is removed instead.
func (app *Application) deleteRune(dir int) {
	if app.buf.HasSelection() {
		anchor, head := app.buf.Selection()
		app.buf.ReplaceRange("", anchor, head)
		app.disp.Mark().Clear()
		return
	}

	cur := app.buf.Cursor()
	from, to := cur, cur
	if dir < 0 {
		from = prevPosition(app.buf, cur)
	} else {
		to = nextPosition(app.buf, cur)
	}
	if from == to {
		return
	}
	app.buf.ReplaceRange("", from, to)
	app.status = ""
}

// prevPosition steps one rune left, crossing to the previous line end.
func prevPosition(buf *buffer.Buffer, p buffer.Point) buffer.Point {
	if p.Column > 0 {
		line := buf.LineText(p.Line)
		_, size := utf8.DecodeLastRuneInString(line[:p.Column])
		return buffer.Point{Line: p.Line, Column: p.Column - size}
	}
	if p.Line > 0 {
		return buffer.Point{Line: p.Line - 1, Column: buf.LineLen(p.Line - 1)}
	}
	return p
}

// nextPosition steps one rune right, crossing to the next line start.
func nextPosition(buf *buffer.Buffer, p buffer.Point) buffer.Point {
	line := buf.LineText(p.Line)
	if p.Column < len(line) {
		_, size := utf8.DecodeRuneInString(line[p.Column:])
		return buffer.Point{Line: p.Line, Column: p.Column + size}
	}
	if p.Line+1 < buf.LineCount() {
		return buffer.Point{Line: p.Line + 1, Column: 0}
	}
	return p
}

// save writes the buffer back to its file.
func (app *Application) save() {
	if app.filename == "" {
		app.status = "No file name"
		return
	}
	if err := os.WriteFile(app.filename, []byte(app.buf.Text()), 0o644); err != nil {
		app.status = fmt.Sprintf("error: %v", err)
		app.logger.Error("saving %s: %v", app.filename, err)
		return
	}
	app.status = fmt.Sprintf("Wrote %s", app.filename)
	app.logger.Debug("saved %s (%d lines)", app.filename, app.buf.LineCount())
}

// title returns the name shown on the status line.
func (app *Application) title() string {
	if app.filename == "" {
		return "*scratch*"
	}
	return app.filename
}

// searchPrompt builds the minibuffer-style prompt for an open search.
func (app *Application) searchPrompt() string {
	s := app.disp.Search()
	var sb strings.Builder
	if app.hl.Failed() {
		sb.WriteString("Failing ")
	}
	sb.WriteString("I-search")
	if s.Direction == search.Backward {
		sb.WriteString(" backward")
	}
	sb.WriteString(": ")
	sb.WriteString(s.Query)
	return sb.String()
}
