package editor

// insertRune inserts r at the cursor.
func (e *Editor) insertRune(r rune) {
	e.textBuffer = append(e.textBuffer[:e.cursorPos],
		append([]rune{r}, e.textBuffer[e.cursorPos:]...)...)
	e.cursorPos++
}

// deleteBackward deletes the rune before the cursor (Backspace)
func (e *Editor) deleteBackward() {
	if e.cursorPos == 0 {
		return
	}
	e.textBuffer = append(e.textBuffer[:e.cursorPos-1], e.textBuffer[e.cursorPos:]...)
	e.cursorPos--
}

// deleteForward deletes the rune under the cursor (Delete)
func (e *Editor) deleteForward() {
	if e.cursorPos >= len(e.textBuffer) {
		return
	}
	e.textBuffer = append(e.textBuffer[:e.cursorPos], e.textBuffer[e.cursorPos+1:]...)
}

// deleteWordBackward deletes the previous word (Ctrl+W)
func (e *Editor) deleteWordBackward() {
	if e.cursorPos == 0 {
		return
	}

	start := e.cursorPos - 1
	for start >= 0 && e.textBuffer[start] == ' ' {
		start--
	}
	for start >= 0 && e.textBuffer[start] != ' ' {
		start--
	}
	start++

	e.textBuffer = append(e.textBuffer[:start], e.textBuffer[e.cursorPos:]...)
	e.cursorPos = start
}

// deleteToBeginningOfLine deletes everything before the cursor (Ctrl+U)
func (e *Editor) deleteToBeginningOfLine() {
	e.textBuffer = append(e.textBuffer[:0], e.textBuffer[e.cursorPos:]...)
	e.cursorPos = 0
}

// deleteToEndOfLine deletes everything after the cursor (Ctrl+K)
func (e *Editor) deleteToEndOfLine() {
	e.textBuffer = e.textBuffer[:e.cursorPos]
}
