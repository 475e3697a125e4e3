package editor

import (
	"strings"
	"testing"

	"labeledit/diagram"
)

func TestRenderViewNoDiagram(t *testing.T) {
	lines := RenderView(ViewState{})
	if len(lines) != 1 || lines[0].Text != "No diagram loaded" {
		t.Errorf("Unexpected output %+v", lines)
	}
}

func TestRenderListsElements(t *testing.T) {
	d := testDiagram()
	d.Metadata.Name = "flow"
	e := NewEditor(d, Options{})
	e.Select(node(2), false)

	out := e.Render()
	for _, want := range []string{
		"flow\n",
		"[ ] 1    Start\n",
		"[x] 2    End  (locked)\n",
		"[ ] 3    (no label)\n",
		"[ ] 0    1 -> 2  go\n",
		"[ ] 1    2 -- 3  (no label)\n",
		"NORMAL\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Render output missing %q:\n%s", want, out)
		}
	}

	lines := RenderView(e.View())
	if lines[3].Style != StyleSelected {
		t.Errorf("Selected node line has style %v", lines[3].Style)
	}
}

func TestRenderWhileEditing(t *testing.T) {
	e := NewEditor(testDiagram(), Options{})
	e.Select(node(1), false)
	e.HandleKey(Special(KeyF2))
	e.HandleKey(Special(KeyArrowLeft))

	out := e.Render()
	if !strings.Contains(out, "[x] 1    Star|t\n") {
		t.Errorf("Expected cursor inside label:\n%s", out)
	}
	if !strings.Contains(out, "EDIT | editing start (F2)") {
		t.Errorf("Expected edit status:\n%s", out)
	}

	var editingLine *Line
	for _, l := range RenderView(e.View()) {
		if l.Style == StyleEditing {
			editingLine = &l
		}
	}
	if editingLine == nil {
		t.Fatalf("No editing line rendered")
	}
	if editingLine.Cursor != len([]rune("[x] 1    "))+4 {
		t.Errorf("Cursor column %d", editingLine.Cursor)
	}
}

func TestRenderStatusFlags(t *testing.T) {
	d := &diagram.Diagram{ReadOnly: true}
	e := NewEditor(d, Options{})
	e.MarkSaved()
	out := e.Render()
	if !strings.Contains(out, "NORMAL | read-only | saved") {
		t.Errorf("Unexpected status:\n%s", out)
	}
	if !strings.HasPrefix(out, "untitled\n") {
		t.Errorf("Expected untitled header:\n%s", out)
	}
}
