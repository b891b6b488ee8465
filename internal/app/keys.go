package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/markstorm/internal/input/key"
)

// translateKey converts a tcell key event into the editor's key model.
// ok is false for keys the editor has no representation for.
func translateKey(ev *tcell.EventKey) (key.Event, bool) {
	mods := key.ModNone
	tm := ev.Modifiers()
	if tm&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if tm&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if tm&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}

	switch ev.Key() {
	case tcell.KeyRune:
		return key.NewRuneEvent(ev.Rune(), mods), true
	case tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods), true
	case tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods), true
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods), true
	case tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods), true
	case tcell.KeyHome:
		return key.NewSpecialEvent(key.KeyHome, mods), true
	case tcell.KeyEnd:
		return key.NewSpecialEvent(key.KeyEnd, mods), true
	case tcell.KeyPgUp:
		return key.NewSpecialEvent(key.KeyPageUp, mods), true
	case tcell.KeyPgDn:
		return key.NewSpecialEvent(key.KeyPageDown, mods), true
	case tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods), true
	case tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods), true
	case tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods), true
	case tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods), true
	case tcell.KeyCtrlSpace:
		return key.NewRuneEvent(' ', mods.With(key.ModCtrl)), true
	}

	// Terminals deliver Ctrl+letter as a control code; recover the
	// letter so the chord reads "C-s" rather than a raw byte.
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := rune('a' + int(k) - int(tcell.KeyCtrlA))
		return key.NewRuneEvent(r, mods.With(key.ModCtrl)), true
	}

	return key.Event{}, false
}
