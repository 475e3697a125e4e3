package terminal

import (
	"github.com/gdamore/tcell/v2"

	"labeledit/editor"
)

var specialKeys = map[tcell.Key]editor.SpecialKey{
	tcell.KeyUp:         editor.KeyArrowUp,
	tcell.KeyDown:       editor.KeyArrowDown,
	tcell.KeyLeft:       editor.KeyArrowLeft,
	tcell.KeyRight:      editor.KeyArrowRight,
	tcell.KeyHome:       editor.KeyHome,
	tcell.KeyEnd:        editor.KeyEnd,
	tcell.KeyPgUp:       editor.KeyPageUp,
	tcell.KeyPgDn:       editor.KeyPageDown,
	tcell.KeyDelete:     editor.KeyDelete,
	tcell.KeyBackspace:  editor.KeyBackspace,
	tcell.KeyBackspace2: editor.KeyBackspace,
	tcell.KeyEnter:      editor.KeyEnter,
	tcell.KeyEscape:     editor.KeyEscape,
	tcell.KeyTab:        editor.KeyTab,
	tcell.KeyF1:         editor.KeyF1,
	tcell.KeyF2:         editor.KeyF2,
	tcell.KeyF3:         editor.KeyF3,
	tcell.KeyF4:         editor.KeyF4,
	tcell.KeyF5:         editor.KeyF5,
	tcell.KeyF6:         editor.KeyF6,
	tcell.KeyF7:         editor.KeyF7,
	tcell.KeyF8:         editor.KeyF8,
	tcell.KeyF9:         editor.KeyF9,
	tcell.KeyF10:        editor.KeyF10,
	tcell.KeyF11:        editor.KeyF11,
	tcell.KeyF12:        editor.KeyF12,
}

// TranslateKey converts a tcell key event into an editor key event. Keys
// the editor has no name for are reported as not ok.
func TranslateKey(ev *tcell.EventKey) (editor.KeyEvent, bool) {
	mods := ev.Modifiers()
	k := editor.KeyEvent{
		Alt:   mods&tcell.ModAlt != 0,
		Shift: mods&tcell.ModShift != 0,
		Ctrl:  mods&tcell.ModCtrl != 0,
		Meta:  mods&tcell.ModMeta != 0,
	}

	key := ev.Key()
	switch {
	case key == tcell.KeyRune:
		k.Rune = ev.Rune()
		return k, true
	case key == tcell.KeyBacktab:
		k.SpecialKey = editor.KeyTab
		k.Shift = true
		return k, true
	}

	if special, ok := specialKeys[key]; ok {
		k.SpecialKey = special
		// Terminals send these as control codes; they are not Ctrl chords.
		if key == tcell.KeyTab || key == tcell.KeyEnter || key == tcell.KeyBackspace || key == tcell.KeyEscape {
			k.Ctrl = false
		}
		return k, true
	}

	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		k.Rune = 'a' + rune(key-tcell.KeyCtrlA)
		k.Ctrl = true
		return k, true
	}
	return editor.KeyEvent{}, false
}
