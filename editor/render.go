package editor

import (
	"fmt"
	"strings"

	"labeledit/diagram"
)

// LineStyle tells the front end how to draw a rendered line.
type LineStyle int

const (
	StylePlain LineStyle = iota
	StyleHeader
	StyleSelected
	StyleEditing
	StyleStatus
)

// Line is one rendered row. Cursor is the rune column of the text cursor,
// or -1 when the line has none.
type Line struct {
	Text   string
	Style  LineStyle
	Cursor int
}

// ViewState is everything needed to draw the editor.
type ViewState struct {
	Diagram      *diagram.Diagram
	Mode         Mode
	ReadOnly     bool
	Selected     map[ElementRef]bool
	JumpLabels   map[ElementRef]rune
	EditingLabel string // Label id being edited, "" when idle
	EditingKey   string
	TextBuffer   []rune
	CursorPos    int
	Dirty        bool
	Status       string
}

// View captures the editor's current ViewState.
func (e *Editor) View() ViewState {
	return ViewState{
		Diagram:      e.diagram,
		Mode:         e.mode,
		ReadOnly:     e.ReadOnly(),
		Selected:     e.selection,
		JumpLabels:   e.jumpLabels,
		EditingLabel: e.session.EditingLabelID(),
		EditingKey:   e.session.EditingKey(),
		TextBuffer:   e.textBuffer,
		CursorPos:    e.cursorPos,
		Dirty:        e.dirty,
		Status:       e.status,
	}
}

// RenderView lays out state as lines. This is a pure function for easy
// testing.
func RenderView(state ViewState) []Line {
	if state.Diagram == nil {
		return []Line{{Text: "No diagram loaded", Cursor: -1}}
	}
	d := state.Diagram

	var lines []Line
	title := d.Metadata.Name
	if title == "" {
		title = "untitled"
	}
	lines = append(lines, Line{Text: title, Style: StyleHeader, Cursor: -1})

	lines = append(lines, Line{Text: "Nodes", Style: StyleHeader, Cursor: -1})
	for _, n := range d.Nodes {
		ref := ElementRef{Kind: ElementNode, ID: n.ID}
		prefix := fmt.Sprintf("%s %-4d ", marker(state, ref), n.ID)
		lines = append(lines, labelLine(state, prefix, n.Label, n.LabelEditable, state.Selected[ref]))
	}

	lines = append(lines, Line{Text: "Connections", Style: StyleHeader, Cursor: -1})
	for _, c := range d.Connections {
		ref := ElementRef{Kind: ElementConnection, ID: c.ID}
		arrow := "--"
		if c.Arrow {
			arrow = "->"
		}
		prefix := fmt.Sprintf("%s %-4d %d %s %d  ", marker(state, ref), c.ID, c.From, arrow, c.To)
		lines = append(lines, labelLine(state, prefix, c.Label, c.LabelEditable, state.Selected[ref]))
	}

	lines = append(lines, Line{Text: statusText(state), Style: StyleStatus, Cursor: -1})
	return lines
}

func marker(state ViewState, ref ElementRef) string {
	if r, ok := state.JumpLabels[ref]; ok {
		return "[" + string(r) + "]"
	}
	if state.Selected[ref] {
		return "[x]"
	}
	return "[ ]"
}

func labelLine(state ViewState, prefix string, l *diagram.Label, editable, selected bool) Line {
	line := Line{Text: prefix, Cursor: -1}
	if selected {
		line.Style = StyleSelected
	}
	if l == nil {
		line.Text += "(no label)"
		return line
	}

	if state.EditingLabel != "" && l.ID == state.EditingLabel {
		line.Style = StyleEditing
		line.Cursor = len([]rune(prefix)) + state.CursorPos
		line.Text += string(state.TextBuffer)
		return line
	}

	line.Text += l.Text
	if !editable {
		line.Text += "  (locked)"
	}
	return line
}

func statusText(state ViewState) string {
	parts := []string{state.Mode.String()}
	if state.ReadOnly {
		parts = append(parts, "read-only")
	}
	if state.EditingLabel != "" {
		parts = append(parts, fmt.Sprintf("editing %s (%s)", state.EditingLabel, state.EditingKey))
	}
	if state.Dirty {
		parts = append(parts, "modified")
	}
	if state.Status != "" {
		parts = append(parts, state.Status)
	}
	return strings.Join(parts, " | ")
}

// Render returns the editor as plain text, with the cursor drawn as '|'.
func (e *Editor) Render() string {
	var b strings.Builder
	for _, line := range RenderView(e.View()) {
		text := line.Text
		if line.Cursor >= 0 {
			r := []rune(text)
			if line.Cursor > len(r) {
				line.Cursor = len(r)
			}
			text = string(r[:line.Cursor]) + "|" + string(r[line.Cursor:])
		}
		b.WriteString(text)
		b.WriteByte('\n')
	}
	return b.String()
}
