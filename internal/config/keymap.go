package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Binding maps a key sequence to a dispatcher action.
type Binding struct {
	// Keys is the chord sequence, Emacs spelling: "C-s", "M-DEL",
	// "C-x C-x". Multi-chord sequences are space-separated.
	Keys string

	// Action is the command identifier the sequence dispatches.
	Action string

	// Args are fixed arguments passed with the action.
	Args map[string]any

	// Description documents the binding.
	Description string
}

// Keymap maps key sequences to actions. The backing store is the raw
// keymaps.json document: lookups are served from an index built with
// gjson, and rebinding edits the document in place with sjson so user
// formatting and unknown fields survive a round trip.
type Keymap struct {
	mu    sync.RWMutex
	raw   []byte
	index map[string]Binding
	order []string // sequences in document order
}

// defaultKeymapJSON is the built-in binding table written to a fresh
// configuration directory.
const defaultKeymapJSON = `{
  "bindings": [
    {"keys": "C-s", "action": "isearch.forward", "description": "Incremental search forward"},
    {"keys": "C-r", "action": "isearch.backward", "description": "Incremental search backward"},
    {"keys": "C-SPC", "action": "mark.set", "description": "Set mark at cursor"},
    {"keys": "C-x C-x", "action": "mark.exchange", "description": "Exchange cursor and mark"},
    {"keys": "C-g", "action": "editor.keyboardQuit", "description": "Cancel search, else clear mark"},
    {"keys": "M-w", "action": "editor.copyRegion", "description": "Copy region to clipboard"},
    {"keys": "C-w", "action": "editor.killRegion", "description": "Kill region"},
    {"keys": "C-k", "action": "editor.killLine", "description": "Kill to end of line"},
    {"keys": "M-d", "action": "editor.killWord", "description": "Kill next word"},
    {"keys": "M-DEL", "action": "editor.backwardKillWord", "description": "Kill previous word"},
    {"keys": "C-y", "action": "editor.yank", "description": "Yank clipboard text"},
    {"keys": "C-f", "action": "cursor.forwardChar"},
    {"keys": "C-b", "action": "cursor.backwardChar"},
    {"keys": "C-n", "action": "cursor.nextLine"},
    {"keys": "C-p", "action": "cursor.previousLine"},
    {"keys": "<right>", "action": "cursor.forwardChar"},
    {"keys": "<left>", "action": "cursor.backwardChar"},
    {"keys": "<down>", "action": "cursor.nextLine"},
    {"keys": "<up>", "action": "cursor.previousLine"},
    {"keys": "C-a", "action": "cursor.lineStart"},
    {"keys": "C-e", "action": "cursor.lineEnd"},
    {"keys": "<home>", "action": "cursor.lineStart"},
    {"keys": "<end>", "action": "cursor.lineEnd"},
    {"keys": "M-<", "action": "cursor.bufferStart"},
    {"keys": "M->", "action": "cursor.bufferEnd"},
    {"keys": "M-f", "action": "cursor.wordForward"},
    {"keys": "M-b", "action": "cursor.wordBackward"},
    {"keys": "<next>", "action": "cursor.move", "args": {"lineDelta": 20}, "description": "Page down"},
    {"keys": "<prior>", "action": "cursor.move", "args": {"lineDelta": -20}, "description": "Page up"},
    {"keys": "C-x C-s", "action": "app.save", "description": "Save buffer"},
    {"keys": "C-x C-c", "action": "app.quit", "description": "Quit"}
  ]
}`

// DefaultKeymap returns the built-in keymap.
func DefaultKeymap() *Keymap {
	km, err := ParseKeymap([]byte(defaultKeymapJSON))
	if err != nil {
		panic(fmt.Sprintf("default keymap: %v", err))
	}
	return km
}

// ParseKeymap builds a keymap from a keymaps.json document.
func ParseKeymap(data []byte) (*Keymap, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrInvalidKeymap)
	}
	bindings := gjson.GetBytes(data, "bindings")
	if bindings.Exists() && !bindings.IsArray() {
		return nil, fmt.Errorf("%w: bindings is not an array", ErrInvalidKeymap)
	}

	km := &Keymap{raw: append([]byte(nil), data...)}
	km.rebuild()
	return km, nil
}

// LoadKeymap reads and parses a keymap file.
func LoadKeymap(path string) (*Keymap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keymap: %w", err)
	}
	return ParseKeymap(data)
}

// rebuild regenerates the lookup index from the raw document. Callers
// must hold the write lock or have exclusive access.
func (k *Keymap) rebuild() {
	k.index = make(map[string]Binding)
	k.order = k.order[:0]

	gjson.GetBytes(k.raw, "bindings").ForEach(func(_, entry gjson.Result) bool {
		keys := entry.Get("keys").String()
		action := entry.Get("action").String()
		if keys == "" || action == "" {
			return true
		}

		b := Binding{
			Keys:        keys,
			Action:      action,
			Description: entry.Get("description").String(),
		}
		if args := entry.Get("args"); args.IsObject() {
			b.Args, _ = args.Value().(map[string]any)
		}

		if _, seen := k.index[keys]; !seen {
			k.order = append(k.order, keys)
		}
		k.index[keys] = b
		return true
	})
}

// Lookup returns the binding for a key sequence.
func (k *Keymap) Lookup(keys string) (Binding, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	b, ok := k.index[keys]
	return b, ok
}

// HasPrefix reports whether any binding begins with the given chords,
// meaning more input could still complete a sequence.
func (k *Keymap) HasPrefix(keys string) bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	prefix := keys + " "
	for seq := range k.index {
		if strings.HasPrefix(seq, prefix) {
			return true
		}
	}
	return false
}

// Bindings returns all bindings in document order.
func (k *Keymap) Bindings() []Binding {
	k.mu.RLock()
	defer k.mu.RUnlock()
	out := make([]Binding, 0, len(k.order))
	for _, keys := range k.order {
		out = append(out, k.index[keys])
	}
	return out
}

// Bind adds or replaces the binding for b.Keys, editing the backing
// document in place.
func (k *Keymap) Bind(b Binding) error {
	if b.Keys == "" || b.Action == "" {
		return fmt.Errorf("%w: binding needs keys and action", ErrInvalidKeymap)
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	path := "bindings.-1"
	if i := k.positionLocked(b.Keys); i >= 0 {
		path = fmt.Sprintf("bindings.%d", i)
	}

	entry := map[string]any{"keys": b.Keys, "action": b.Action}
	if len(b.Args) > 0 {
		entry["args"] = b.Args
	}
	if b.Description != "" {
		entry["description"] = b.Description
	}

	raw, err := sjson.SetBytes(k.raw, path, entry)
	if err != nil {
		return fmt.Errorf("updating keymap: %w", err)
	}
	k.raw = raw
	k.rebuild()
	return nil
}

// Unbind removes the binding for a key sequence.
func (k *Keymap) Unbind(keys string) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	i := k.positionLocked(keys)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrBindingNotFound, keys)
	}

	raw, err := sjson.DeleteBytes(k.raw, fmt.Sprintf("bindings.%d", i))
	if err != nil {
		return fmt.Errorf("updating keymap: %w", err)
	}
	k.raw = raw
	k.rebuild()
	return nil
}

// positionLocked returns the document index of the binding with the
// given keys, -1 when absent.
func (k *Keymap) positionLocked(keys string) int {
	pos := -1
	i := 0
	gjson.GetBytes(k.raw, "bindings").ForEach(func(_, entry gjson.Result) bool {
		if entry.Get("keys").String() == keys {
			pos = i
			return false
		}
		i++
		return true
	})
	return pos
}

// JSON returns a copy of the backing document.
func (k *Keymap) JSON() []byte {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return append([]byte(nil), k.raw...)
}

// Save writes the backing document to path.
func (k *Keymap) Save(path string) error {
	if err := os.WriteFile(path, k.JSON(), 0o644); err != nil {
		return fmt.Errorf("writing keymap: %w", err)
	}
	return nil
}
