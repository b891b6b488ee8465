package input

// ActionSource indicates the origin of an action.
type ActionSource uint8

const (
	// SourceKeyboard indicates the action originated from keyboard input.
	SourceKeyboard ActionSource = iota
	// SourceHost indicates the action was invoked programmatically by
	// the host.
	SourceHost
)

// String returns a string representation of the action source.
func (s ActionSource) String() string {
	if s == SourceHost {
		return "host"
	}
	return "keyboard"
}

// ActionArgs holds arguments for an action.
type ActionArgs struct {
	// Query is the live query text for search actions.
	Query string

	// Text for insert operations.
	Text string

	// LineDelta and ColDelta are the relative motion for cursor.move.
	LineDelta int
	ColDelta  int

	// Extra holds additional key-value pairs, typically decoded from
	// keymap configuration.
	Extra map[string]any
}

// Get retrieves a value from Extra.
func (a ActionArgs) Get(key string) (any, bool) {
	v, ok := a.Extra[key]
	return v, ok
}

// GetString retrieves a string value from Extra, "" when absent.
func (a ActionArgs) GetString(key string) string {
	if s, ok := a.Extra[key].(string); ok {
		return s
	}
	return ""
}

// GetInt retrieves an int value from Extra, 0 when absent. JSON-decoded
// numbers arrive as float64 and are converted.
func (a ActionArgs) GetInt(key string) int {
	switch n := a.Extra[key].(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

// GetBool retrieves a bool value from Extra, false when absent.
func (a ActionArgs) GetBool(key string) bool {
	if b, ok := a.Extra[key].(bool); ok {
		return b
	}
	return false
}

// Action represents a command to be executed by the dispatcher.
type Action struct {
	// Name is the command identifier (e.g., "isearch.forward",
	// "cursor.wordBackward").
	Name string

	// Args contains command-specific arguments.
	Args ActionArgs

	// Source indicates where this action originated.
	Source ActionSource

	// Count is the repeat count; zero means one.
	Count int
}

// WithCount returns a copy of the action with the specified count.
func (a Action) WithCount(count int) Action {
	a.Count = count
	return a
}

// Repeat returns the effective repeat count, never less than one.
func (a Action) Repeat() int {
	if a.Count < 1 {
		return 1
	}
	return a.Count
}
