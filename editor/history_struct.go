package editor

import (
	"labeledit/diagram"
)

// StructHistory keeps deep copies of past diagrams for undo/redo.
type StructHistory struct {
	states  []*diagram.Diagram
	current int // Index of the state matching the live diagram
	max     int // Maximum number of states to keep
}

// NewStructHistory creates a history holding at most max states.
func NewStructHistory(max int) *StructHistory {
	if max <= 0 {
		max = DefaultHistorySize
	}
	return &StructHistory{
		states:  make([]*diagram.Diagram, 0, max),
		current: -1,
		max:     max,
	}
}

// SaveState records a copy of d, discarding any redo states.
func (sh *StructHistory) SaveState(d *diagram.Diagram) {
	sh.states = append(sh.states[:sh.current+1], d.Clone())
	if len(sh.states) > sh.max {
		sh.states = sh.states[len(sh.states)-sh.max:]
	}
	sh.current = len(sh.states) - 1
}

// CanUndo returns true if we can undo
func (sh *StructHistory) CanUndo() bool {
	return sh.current > 0
}

// CanRedo returns true if we can redo
func (sh *StructHistory) CanRedo() bool {
	return sh.current < len(sh.states)-1
}

// Undo steps back one state. The returned diagram is a copy the caller may
// modify.
func (sh *StructHistory) Undo() (*diagram.Diagram, bool) {
	if !sh.CanUndo() {
		return nil, false
	}
	sh.current--
	return sh.states[sh.current].Clone(), true
}

// Redo steps forward one state.
func (sh *StructHistory) Redo() (*diagram.Diagram, bool) {
	if !sh.CanRedo() {
		return nil, false
	}
	sh.current++
	return sh.states[sh.current].Clone(), true
}

// Stats returns current position and total states
func (sh *StructHistory) Stats() (current, total int) {
	return sh.current + 1, len(sh.states)
}
