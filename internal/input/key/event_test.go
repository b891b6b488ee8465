package key

import "testing"

func TestEventChord(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  string
	}{
		{"plain rune", NewRuneEvent('a', ModNone), "a"},
		{"upper rune", NewRuneEvent('A', ModShift), "A"},
		{"ctrl rune", NewRuneEvent('s', ModCtrl), "C-s"},
		{"alt rune", NewRuneEvent('f', ModAlt), "M-f"},
		{"ctrl alt rune", NewRuneEvent('x', ModCtrl.With(ModAlt)), "C-M-x"},
		{"space", NewRuneEvent(' ', ModNone), "SPC"},
		{"ctrl space", NewRuneEvent(' ', ModCtrl), "C-SPC"},
		{"enter", NewSpecialEvent(KeyEnter, ModNone), "RET"},
		{"escape", NewSpecialEvent(KeyEscape, ModNone), "ESC"},
		{"backspace", NewSpecialEvent(KeyBackspace, ModNone), "DEL"},
		{"shifted arrow", NewSpecialEvent(KeyLeft, ModShift), "S-<left>"},
		{"ctrl home", NewSpecialEvent(KeyHome, ModCtrl), "C-<home>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.Chord(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestEventIsText(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  bool
	}{
		{"letter", NewRuneEvent('a', ModNone), true},
		{"shifted letter", NewRuneEvent('A', ModShift), true},
		{"ctrl held", NewRuneEvent('a', ModCtrl), false},
		{"alt held", NewRuneEvent('a', ModAlt), false},
		{"special key", NewSpecialEvent(KeyEnter, ModNone), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.IsText(); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
