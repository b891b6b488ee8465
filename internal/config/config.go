// Package config manages editor configuration: typed settings loaded
// from settings.toml, key bindings loaded from keymaps.json, and live
// reload through a filesystem watcher. Settings reads are served live
// so a reload is visible to the next operation that consults them.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/dshills/markstorm/internal/engine/word"
)

// File names within the configuration directory.
const (
	SettingsFile = "settings.toml"
	KeymapFile   = "keymaps.json"
)

// Settings is the typed settings tree persisted in settings.toml.
type Settings struct {
	Editor EditorSettings `toml:"editor"`
	Log    LogSettings    `toml:"log"`
}

// EditorSettings configures the editing engines.
type EditorSettings struct {
	// WordBoundaryChars lists the characters that separate words for
	// the word-scan operations. The escapes \t and \n denote tab and
	// newline. Word scans read this value at scan time, so changes
	// apply to the very next scan.
	WordBoundaryChars string `toml:"word_boundary_chars"`

	// ScrollMargin is the number of context lines kept visible above
	// and below the cursor when the view scrolls.
	ScrollMargin int `toml:"scroll_margin"`
}

// LogSettings configures application logging.
type LogSettings struct {
	// Level is the minimum level written: debug, info, warn, or error.
	Level string `toml:"level"`

	// File receives the log output; empty means stderr.
	File string `toml:"file"`
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		Editor: EditorSettings{
			WordBoundaryChars: word.DefaultBoundaryChars,
			ScrollMargin:      2,
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}

// Config holds the live configuration for the application. All reads
// go through accessor methods so a reload from disk is observed by the
// next caller. Config is safe for concurrent use.
type Config struct {
	mu        sync.RWMutex
	dir       string
	settings  Settings
	keymap    *Keymap
	nextSubID int
	subs      map[int]func(Settings)
}

// New returns a configuration with built-in defaults and no backing
// directory. Reload is a no-op on such a configuration.
func New() *Config {
	return &Config{
		settings: DefaultSettings(),
		keymap:   DefaultKeymap(),
		subs:     make(map[int]func(Settings)),
	}
}

// Load reads settings.toml and keymaps.json from dir. Missing files
// fall back to defaults; malformed files are errors. The directory
// itself need not exist.
func Load(dir string) (*Config, error) {
	c := New()
	c.dir = dir
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Dir returns the backing configuration directory, empty when the
// configuration is purely in-memory.
func (c *Config) Dir() string {
	return c.dir
}

// Settings returns a copy of the current settings.
func (c *Config) Settings() Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings
}

// BoundaryChars returns the live word-boundary specification. An empty
// configured value falls back to the built-in default so a word always
// has a delimiter set.
func (c *Config) BoundaryChars() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.settings.Editor.WordBoundaryChars == "" {
		return word.DefaultBoundaryChars
	}
	return c.settings.Editor.WordBoundaryChars
}

// Keymap returns the active keymap.
func (c *Config) Keymap() *Keymap {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.keymap
}

// SetSettings replaces the settings and notifies subscribers on change.
func (c *Config) SetSettings(s Settings) {
	c.mu.Lock()
	changed := c.settings != s
	c.settings = s
	c.mu.Unlock()
	if changed {
		c.notify(s)
	}
}

// Subscribe registers fn to run after every settings change and returns
// a function that removes the subscription. Notification runs on the
// goroutine that applied the change.
func (c *Config) Subscribe(fn func(Settings)) (unsubscribe func()) {
	c.mu.Lock()
	c.nextSubID++
	id := c.nextSubID
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, id)
	}
}

// Reload re-reads the backing files. Subscribers are notified when the
// settings changed. A configuration without a directory reloads to its
// current state.
func (c *Config) Reload() error {
	if c.dir == "" {
		return nil
	}

	settings, err := loadSettings(filepath.Join(c.dir, SettingsFile))
	if err != nil {
		return err
	}

	keymap, err := loadKeymapFile(filepath.Join(c.dir, KeymapFile))
	if err != nil {
		return err
	}

	c.mu.Lock()
	changed := c.settings != settings
	c.settings = settings
	c.keymap = keymap
	c.mu.Unlock()

	if changed {
		c.notify(settings)
	}
	return nil
}

// Save writes the current settings and keymap to the backing directory,
// creating it if needed.
func (c *Config) Save() error {
	if c.dir == "" {
		return ErrNoConfigDir
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	c.mu.RLock()
	settings := c.settings
	keymap := c.keymap
	c.mu.RUnlock()

	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.WriteFile(filepath.Join(c.dir, SettingsFile), data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", SettingsFile, err)
	}
	if err := keymap.Save(filepath.Join(c.dir, KeymapFile)); err != nil {
		return err
	}
	return nil
}

// notify delivers s to a snapshot of the subscribers.
func (c *Config) notify(s Settings) {
	c.mu.RLock()
	fns := make([]func(Settings), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.mu.RUnlock()

	for _, fn := range fns {
		fn(s)
	}
}

// loadSettings reads and decodes a settings file, returning defaults
// when the file does not exist.
func loadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}

	if err := toml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return settings, nil
}

// loadKeymapFile reads a keymap file, returning the default keymap when
// the file does not exist.
func loadKeymapFile(path string) (*Keymap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultKeymap(), nil
		}
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	return ParseKeymap(data)
}

// DefaultDir returns the platform configuration directory for the
// editor, e.g. ~/.config/markstorm on Linux.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(base, "markstorm"), nil
}
