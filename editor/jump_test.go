package editor

import (
	"strings"
	"testing"
)

func TestJumpSelectsElement(t *testing.T) {
	e := NewEditor(testDiagram(), Options{})
	e.Select(node(1), false)

	e.HandleKey(Ctrl('g'))
	if e.Mode() != ModeJump {
		t.Fatalf("Expected ModeJump, got %v", e.Mode())
	}
	out := e.Render()
	for _, want := range []string{"[a] 1", "[s] 2", "[d] 3", "[f] 0", "[g] 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected jump label %q in:\n%s", want, out)
		}
	}

	// 'f' is a direct edit character, but the jump prompt has the keyboard.
	res := e.HandleKey(Char('f'))
	if !res.Consumed {
		t.Errorf("Jump key not consumed")
	}
	if e.Mode() != ModeNormal {
		t.Errorf("Expected ModeNormal after jump, got %v", e.Mode())
	}
	if _, active := e.Session().Active(); active {
		t.Errorf("Jump key started a direct edit")
	}
	sel := e.Selection()
	if len(sel) != 1 || sel[0] != edge(0) {
		t.Errorf("Expected edge:0 selected, got %v", sel)
	}

	// Typing now edits the jumped-to connection label.
	e.HandleKey(Char('X'))
	if got := e.Session().EditingLabelID(); got != "go" {
		t.Errorf("Expected editing go, got %q", got)
	}
}

func TestJumpCancelledByOtherKey(t *testing.T) {
	e := NewEditor(testDiagram(), Options{})
	e.Select(node(2), false)

	e.HandleKey(Ctrl('g'))
	e.HandleKey(Char('?'))

	if e.Mode() != ModeNormal {
		t.Errorf("Expected ModeNormal, got %v", e.Mode())
	}
	if e.Status() != "jump cancelled" {
		t.Errorf("Unexpected status %q", e.Status())
	}
	if sel := e.Selection(); len(sel) != 1 || sel[0] != node(2) {
		t.Errorf("Selection changed: %v", sel)
	}
	if strings.Contains(e.Render(), "[a]") {
		t.Errorf("Jump labels still drawn")
	}
}

func TestJumpOnEmptyDiagram(t *testing.T) {
	e := NewEditor(nil, Options{})
	e.HandleKey(Ctrl('g'))
	if e.Mode() != ModeNormal {
		t.Errorf("Expected ModeNormal, got %v", e.Mode())
	}
}
