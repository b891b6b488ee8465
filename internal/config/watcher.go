package config

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a configuration when its backing files change on
// disk, which is how a word-boundary edit in settings.toml reaches the
// next word scan without a restart.
type Watcher struct {
	cfg *Config
	fsw *fsnotify.Watcher

	mu     sync.Mutex
	closed bool

	done chan struct{}
	wg   sync.WaitGroup

	// onError receives reload and watch failures; may be nil.
	onError func(error)
}

// NewWatcher starts watching the configuration directory of cfg.
// onError receives asynchronous failures and may be nil.
func NewWatcher(cfg *Config, onError func(error)) (*Watcher, error) {
	if cfg.Dir() == "" {
		return nil, ErrNoConfigDir
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(cfg.Dir()); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		cfg:     cfg,
		fsw:     fsw,
		done:    make(chan struct{}),
		onError: onError,
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// run processes filesystem events until the watcher closes.
func (w *Watcher) run() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			if err := w.cfg.Reload(); err != nil {
				w.reportError(err)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.reportError(err)
		}
	}
}

// relevant reports whether ev touches a configuration file with an
// operation that changes content. Editors that write via rename emit
// Create for the final file, so Create counts as well as Write.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
		return false
	}
	switch filepath.Base(ev.Name) {
	case SettingsFile, KeymapFile:
		return true
	}
	return false
}

func (w *Watcher) reportError(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.done)
	w.mu.Unlock()

	err := w.fsw.Close()
	w.wg.Wait()
	return err
}
