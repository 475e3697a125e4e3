package editor

// Jump label characters in order of preference (home row first)
const jumpChars = "asdfghjklqwertyuiopzxcvbnm"

// startJump labels every element with a jump character and waits for one.
func (e *Editor) startJump() {
	e.assignJumpLabels()
	if len(e.jumpLabels) == 0 {
		e.SetStatus("nothing to jump to")
		return
	}
	e.mode = ModeJump
	e.SetStatus("jump to?")
}

// assignJumpLabels assigns single-character labels to elements, nodes
// first. Elements beyond the available characters get no label.
func (e *Editor) assignJumpLabels() {
	e.jumpLabels = make(map[ElementRef]rune)
	for i, ref := range e.elements() {
		if i >= len(jumpChars) {
			break
		}
		e.jumpLabels[ref] = rune(jumpChars[i])
	}
}

// handleJumpKey selects the element whose label was typed. Any other key
// leaves jump mode.
func (e *Editor) handleJumpKey(k KeyEvent) KeyResult {
	defer e.clearJumpLabels()
	if !k.IsSpecial() && !k.Ctrl && !k.Alt && !k.Meta {
		for ref, r := range e.jumpLabels {
			if r == k.Rune {
				e.selection = map[ElementRef]bool{ref: true}
				e.focus = ref
				e.SetStatus("")
				return KeyResult{Consumed: true, DefaultPrevented: true}
			}
		}
	}
	e.SetStatus("jump cancelled")
	return KeyResult{Consumed: true, DefaultPrevented: true}
}

func (e *Editor) clearJumpLabels() {
	e.jumpLabels = nil
	e.mode = ModeNormal
}
