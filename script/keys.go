package script

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"labeledit/editor"
)

// ParseKey turns a key spec into a key event. A spec is an optional list
// of modifiers joined with '+', then a single character or a key name:
// "a", "F2", "Ctrl+s", "Shift+Tab", "Shift" (the modifier on its own).
// "+" on its own, or as the last part ("Ctrl++"), is the plus key.
func ParseKey(spec string) (editor.KeyEvent, error) {
	if spec == "" {
		return editor.KeyEvent{}, fmt.Errorf("empty key")
	}

	var ev editor.KeyEvent
	rest := spec
	for {
		mod, tail, ok := strings.Cut(rest, "+")
		if !ok || tail == "" {
			break
		}
		if !setModifier(&ev, mod) {
			return editor.KeyEvent{}, fmt.Errorf("key %q: unknown modifier %q", spec, mod)
		}
		rest = tail
	}

	if utf8.RuneCountInString(rest) == 1 {
		r, _ := utf8.DecodeRuneInString(rest)
		ev.Rune = r
		return ev, nil
	}

	special, ok := editor.LookupSpecialKey(rest)
	if !ok {
		return editor.KeyEvent{}, fmt.Errorf("key %q: unknown key %q", spec, rest)
	}
	ev.SpecialKey = special
	// A modifier pressed on its own is held while it is down.
	switch special {
	case editor.KeyShift:
		ev.Shift = true
	case editor.KeyAlt:
		ev.Alt = true
	case editor.KeyControl:
		ev.Ctrl = true
	case editor.KeyMeta:
		ev.Meta = true
	}
	return ev, nil
}

func setModifier(ev *editor.KeyEvent, name string) bool {
	switch strings.ToLower(name) {
	case "shift":
		ev.Shift = true
	case "alt", "option":
		ev.Alt = true
	case "ctrl", "control":
		ev.Ctrl = true
	case "meta", "cmd", "super":
		ev.Meta = true
	default:
		return false
	}
	return true
}
