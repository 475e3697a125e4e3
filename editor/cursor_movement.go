package editor

// moveCursorToBeginningOfLine moves the cursor to the start (Ctrl+A, Home)
func (e *Editor) moveCursorToBeginningOfLine() {
	e.cursorPos = 0
}

// moveCursorToEndOfLine moves the cursor past the last rune (Ctrl+E, End)
func (e *Editor) moveCursorToEndOfLine() {
	e.cursorPos = len(e.textBuffer)
}

// moveCursorForward moves cursor forward one character (Ctrl+F)
func (e *Editor) moveCursorForward() {
	if e.cursorPos < len(e.textBuffer) {
		e.cursorPos++
	}
}

// moveCursorBackward moves cursor backward one character (Ctrl+B)
func (e *Editor) moveCursorBackward() {
	if e.cursorPos > 0 {
		e.cursorPos--
	}
}

// moveCursorWordForward moves cursor to the beginning of the next word (Alt+F)
func (e *Editor) moveCursorWordForward() {
	for e.cursorPos < len(e.textBuffer) && e.textBuffer[e.cursorPos] != ' ' {
		e.cursorPos++
	}
	for e.cursorPos < len(e.textBuffer) && e.textBuffer[e.cursorPos] == ' ' {
		e.cursorPos++
	}
}

// moveCursorWordBackward moves cursor to the beginning of the previous word (Alt+B)
func (e *Editor) moveCursorWordBackward() {
	if e.cursorPos == 0 {
		return
	}
	e.cursorPos--
	for e.cursorPos > 0 && e.textBuffer[e.cursorPos] == ' ' {
		e.cursorPos--
	}
	for e.cursorPos > 0 && e.textBuffer[e.cursorPos-1] != ' ' {
		e.cursorPos--
	}
}
