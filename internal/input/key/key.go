package key

// Key represents a keyboard key.
// For character keys, use KeyRune and set the Rune field in Event.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// KeyRune is used for character keys (letters, numbers, punctuation).
	// The actual character is stored in Event.Rune.
	KeyRune
)

// String returns the Emacs-style name for the key, the form used in
// keymap configuration: "RET", "TAB", "DEL", "ESC", "<up>", "<home>".
func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "ESC"
	case KeyEnter:
		return "RET"
	case KeyTab:
		return "TAB"
	case KeyBackspace:
		return "DEL"
	case KeyDelete:
		return "<delete>"
	case KeyHome:
		return "<home>"
	case KeyEnd:
		return "<end>"
	case KeyPageUp:
		return "<prior>"
	case KeyPageDown:
		return "<next>"
	case KeyUp:
		return "<up>"
	case KeyDown:
		return "<down>"
	case KeyLeft:
		return "<left>"
	case KeyRight:
		return "<right>"
	case KeyRune:
		return "Rune"
	default:
		return "None"
	}
}

// IsSpecial returns true for non-character keys.
func (k Key) IsSpecial() bool {
	return k != KeyNone && k != KeyRune
}
