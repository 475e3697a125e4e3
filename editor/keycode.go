package editor

import (
	"strings"

	"labeledit/directedit"
)

// SpecialKey represents non-character keys: navigation, function keys and
// modifiers pressed on their own.
type SpecialKey int

const (
	KeyNone SpecialKey = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete
	KeyBackspace
	KeyEnter
	KeyEscape
	KeyTab
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyShift
	KeyAlt
	KeyControl
	KeyMeta
)

var specialKeyNames = map[SpecialKey]string{
	KeyArrowUp:    "ArrowUp",
	KeyArrowDown:  "ArrowDown",
	KeyArrowLeft:  "ArrowLeft",
	KeyArrowRight: "ArrowRight",
	KeyHome:       "Home",
	KeyEnd:        "End",
	KeyPageUp:     "PageUp",
	KeyPageDown:   "PageDown",
	KeyDelete:     "Delete",
	KeyBackspace:  "Backspace",
	KeyEnter:      "Enter",
	KeyEscape:     "Escape",
	KeyTab:        "Tab",
	KeyF1:         "F1",
	KeyF2:         "F2",
	KeyF3:         "F3",
	KeyF4:         "F4",
	KeyF5:         "F5",
	KeyF6:         "F6",
	KeyF7:         "F7",
	KeyF8:         "F8",
	KeyF9:         "F9",
	KeyF10:        "F10",
	KeyF11:        "F11",
	KeyF12:        "F12",
	KeyShift:      "Shift",
	KeyAlt:        "Alt",
	KeyControl:    "Control",
	KeyMeta:       "Meta",
}

// String returns the key name, e.g. "ArrowLeft" or "F2".
func (k SpecialKey) String() string {
	if name, ok := specialKeyNames[k]; ok {
		return name
	}
	return ""
}

// LookupSpecialKey finds a special key by name, ignoring case.
func LookupSpecialKey(name string) (SpecialKey, bool) {
	for k, n := range specialKeyNames {
		if strings.EqualFold(n, name) {
			return k, true
		}
	}
	return KeyNone, false
}

// KeyEvent represents either a regular character or a special key, with the
// modifiers held while it was pressed.
type KeyEvent struct {
	Rune       rune
	SpecialKey SpecialKey

	Alt, Shift, Ctrl, Meta bool
}

// IsSpecial returns true if this is a special key event
func (k KeyEvent) IsSpecial() bool {
	return k.SpecialKey != KeyNone
}

// Key returns the key name: the character itself for regular keys.
func (k KeyEvent) Key() string {
	if k.IsSpecial() {
		return k.SpecialKey.String()
	}
	if k.Rune == 0 {
		return ""
	}
	return string(k.Rune)
}

// ModifierState reports whether the modifier called name is held.
func (k KeyEvent) ModifierState(name string) bool {
	switch name {
	case "Shift":
		return k.Shift
	case "Alt":
		return k.Alt
	case "Control":
		return k.Ctrl
	case "Meta":
		return k.Meta
	}
	return false
}

// DirectEditEvent describes k to the direct edit decider. inTextInput is
// true while a text control has focus.
func (k KeyEvent) DirectEditEvent(inTextInput bool) directedit.Event {
	return directedit.Event{
		Key:           k.Key(),
		Alt:           k.Alt,
		Shift:         k.Shift,
		Meta:          k.Meta,
		Ctrl:          k.Ctrl,
		ModifierState: k.ModifierState,
		InTextInput:   inTextInput,
	}
}

// String renders the event the way key scripts spell it, e.g. "Ctrl+s".
func (k KeyEvent) String() string {
	var b strings.Builder
	mods := []struct {
		held bool
		name string
		key  SpecialKey
	}{
		{k.Ctrl, "Ctrl", KeyControl},
		{k.Alt, "Alt", KeyAlt},
		{k.Meta, "Meta", KeyMeta},
		{k.Shift, "Shift", KeyShift},
	}
	for _, m := range mods {
		if m.held && k.SpecialKey != m.key {
			b.WriteString(m.name)
			b.WriteByte('+')
		}
	}
	b.WriteString(k.Key())
	return b.String()
}

// Char builds a plain character key event.
func Char(r rune) KeyEvent {
	return KeyEvent{Rune: r}
}

// Special builds a special key event.
func Special(k SpecialKey) KeyEvent {
	return KeyEvent{SpecialKey: k}
}

// Ctrl builds a Ctrl+letter key event.
func Ctrl(r rune) KeyEvent {
	return KeyEvent{Rune: r, Ctrl: true}
}
