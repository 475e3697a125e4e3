package editor

import "unicode"

// handleNormalKey processes keys in normal mode. Printable keys never reach
// a binding here when a direct edit could start, so bindings use Ctrl and
// navigation keys only.
func (e *Editor) handleNormalKey(k KeyEvent) KeyResult {
	consumed := KeyResult{Consumed: true}

	if k.Ctrl && !k.IsSpecial() {
		switch unicode.ToLower(k.Rune) {
		case 'q', 'c':
			return KeyResult{Consumed: true, Quit: true}
		case 's':
			return KeyResult{Consumed: true, Save: true}
		case 'z':
			e.Undo()
			return consumed
		case 'y':
			e.Redo()
			return consumed
		case 'a':
			e.SelectAll()
			return consumed
		case 'g':
			e.startJump()
			return consumed
		}
		return KeyResult{}
	}

	switch k.SpecialKey {
	case KeyTab:
		if k.Shift {
			e.selectStep(-1)
		} else {
			e.selectStep(1)
		}
	case KeyArrowDown, KeyArrowRight:
		e.selectStep(1)
	case KeyArrowUp, KeyArrowLeft:
		e.selectStep(-1)
	case KeyEscape:
		e.ClearSelection()
	default:
		return KeyResult{}
	}
	return consumed
}

// handleTextKey processes keys while a label is being edited. The text
// control swallows every key.
func (e *Editor) handleTextKey(k KeyEvent) KeyResult {
	consumed := KeyResult{Consumed: true, DefaultPrevented: true}

	switch k.SpecialKey {
	case KeyEscape:
		e.cancelEdit()
		return consumed
	case KeyEnter:
		e.commitText()
		return consumed
	case KeyBackspace:
		e.deleteBackward()
		return consumed
	case KeyDelete:
		e.deleteForward()
		return consumed
	case KeyArrowLeft:
		e.moveCursorBackward()
		return consumed
	case KeyArrowRight:
		e.moveCursorForward()
		return consumed
	case KeyHome:
		e.moveCursorToBeginningOfLine()
		return consumed
	case KeyEnd:
		e.moveCursorToEndOfLine()
		return consumed
	case KeyNone:
	default:
		return consumed
	}

	if k.Ctrl {
		switch unicode.ToLower(k.Rune) {
		case 'a':
			e.moveCursorToBeginningOfLine()
		case 'e':
			e.moveCursorToEndOfLine()
		case 'f':
			e.moveCursorForward()
		case 'b':
			e.moveCursorBackward()
		case 'w':
			e.deleteWordBackward()
		case 'u':
			e.deleteToBeginningOfLine()
		case 'k':
			e.deleteToEndOfLine()
		case 'h':
			e.deleteBackward()
		}
		return consumed
	}

	if k.Alt {
		switch k.Rune {
		case 'f':
			e.moveCursorWordForward()
		case 'b':
			e.moveCursorWordBackward()
		}
		return consumed
	}

	if !k.Meta && unicode.IsPrint(k.Rune) {
		e.insertRune(k.Rune)
	}
	return consumed
}
