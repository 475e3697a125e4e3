package editor

import (
	"errors"
	"fmt"

	"labeledit/diagram"
)

// ErrReadOnly is returned when a change is attempted on a read-only view.
var ErrReadOnly = errors.New("diagram is read-only")

// UpdateLabel sets the text of the label with the given id and records the
// change in history. Setting the same text is a no-op.
func (e *Editor) UpdateLabel(id, text string) error {
	if e.ReadOnly() {
		return ErrReadOnly
	}
	label, ok := e.diagram.FindLabel(id)
	if !ok {
		return fmt.Errorf("label %q not found", id)
	}
	if label.Text == text {
		return nil
	}

	old := label.Text
	label.Text = text
	e.history.SaveState(e.diagram)
	e.dirty = true
	e.logger.Info("label renamed", "label", id, "from", old, "to", text)
	e.SetStatus(fmt.Sprintf("renamed %s", id))
	return nil
}

// Undo restores the previous diagram state.
func (e *Editor) Undo() bool {
	d, ok := e.history.Undo()
	if !ok {
		e.SetStatus("nothing to undo")
		return false
	}
	e.restore(d)
	e.SetStatus("undo")
	return true
}

// Redo re-applies the next diagram state.
func (e *Editor) Redo() bool {
	d, ok := e.history.Redo()
	if !ok {
		e.SetStatus("nothing to redo")
		return false
	}
	e.restore(d)
	e.SetStatus("redo")
	return true
}

func (e *Editor) restore(d *diagram.Diagram) {
	e.diagram = d
	e.dirty = true
	e.pruneSelection()
}

// CanUndo reports whether Undo would change anything.
func (e *Editor) CanUndo() bool {
	return e.history.CanUndo()
}
