package key

import (
	"strings"
	"unicode"
)

// Event represents a single key press event.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{Key: key, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsText returns true if the event should insert its character: a
// printable rune with no Ctrl or Alt held. Shift alone is part of the
// character itself.
func (e Event) IsText() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune) && !e.Modifiers.HasCtrl() && !e.Modifiers.HasAlt()
}

// Chord returns the Emacs-style chord string used for keymap lookup.
// Modifiers appear in C-, M-, S- order; Shift is only spelled for
// special keys since it is part of the character otherwise.
// Examples: "C-s", "M-f", "C-M-x", "RET", "S-<left>", "a".
func (e Event) Chord() string {
	var sb strings.Builder
	if e.Modifiers.HasCtrl() {
		sb.WriteString("C-")
	}
	if e.Modifiers.HasAlt() {
		sb.WriteString("M-")
	}
	if e.Modifiers.HasShift() && e.Key != KeyRune {
		sb.WriteString("S-")
	}

	switch {
	case e.Key == KeyRune && e.Rune == ' ':
		sb.WriteString("SPC")
	case e.Key == KeyRune:
		sb.WriteRune(e.Rune)
	default:
		sb.WriteString(e.Key.String())
	}
	return sb.String()
}
