package terminal

import (
	"errors"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"labeledit/config"
	"labeledit/diagram"
	"labeledit/editor"
)

// bellScreen counts bells on top of a simulation screen.
type bellScreen struct {
	tcell.SimulationScreen
	bells int
}

func (s *bellScreen) Beep() error {
	s.bells++
	return nil
}

func newScreen(t *testing.T) *bellScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	s.SetSize(60, 12)
	t.Cleanup(s.Fini)
	return &bellScreen{SimulationScreen: s}
}

func testEditor(opts editor.Options) *editor.Editor {
	d := &diagram.Diagram{
		Metadata: diagram.Metadata{Name: "flow"},
		Nodes: []diagram.Node{
			{ID: 1, Label: &diagram.Label{ID: "a", Text: "Alpha"}, LabelEditable: true},
			{ID: 2, Label: &diagram.Label{ID: "b", Text: "Beta"}},
		},
	}
	ed := editor.NewEditor(d, opts)
	ed.Select(editor.ElementRef{Kind: editor.ElementNode, ID: 1}, false)
	return ed
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func TestRunEditsSavesAndQuits(t *testing.T) {
	s := newScreen(t)
	ed := testEditor(editor.Options{})

	var saved *diagram.Diagram
	s.InjectKey(tcell.KeyRune, 'N', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'o', tcell.ModNone)
	s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyCtrlS, 0, tcell.ModCtrl)
	s.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)

	err := Run(s, ed, Options{
		Theme: config.Default().Theme,
		Save: func(d *diagram.Diagram) error {
			saved = d.Clone()
			return nil
		},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := ed.Diagram().Nodes[0].Text(); got != "No" {
		t.Errorf("Expected label No, got %q", got)
	}
	if saved == nil || saved.Nodes[0].Text() != "No" {
		t.Errorf("Save callback did not receive the edit")
	}
	if ed.Dirty() {
		t.Errorf("Expected clean editor after save")
	}
	if s.bells != 0 {
		t.Errorf("Unexpected bells: %d", s.bells)
	}
	if got := rowText(s, 0); got != "flow" {
		t.Errorf("Header row = %q", got)
	}
}

func TestRunQuitGuardsUnsavedChanges(t *testing.T) {
	s := newScreen(t)
	ed := testEditor(editor.Options{})

	s.InjectKey(tcell.KeyRune, 'Z', tcell.ModNone)
	s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)
	s.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)

	if err := Run(s, ed, Options{}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !ed.Dirty() {
		t.Errorf("Expected unsaved changes to remain")
	}
	if !strings.Contains(ed.Status(), "unsaved changes") {
		t.Errorf("Expected warning status, got %q", ed.Status())
	}
}

func TestRunRingsBellForReadOnlyKeys(t *testing.T) {
	s := newScreen(t)
	ed := testEditor(editor.Options{ReadOnly: true})

	s.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	s.InjectKey(tcell.KeyF2, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)

	if err := Run(s, ed, Options{}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.bells != 2 {
		t.Errorf("Expected 2 bells, got %d", s.bells)
	}
	if ed.Mode() != editor.ModeNormal {
		t.Errorf("Read-only editor entered %v", ed.Mode())
	}
}

func TestRunLockedLabelStaysQuiet(t *testing.T) {
	s := newScreen(t)
	ed := testEditor(editor.Options{})
	ed.Select(editor.ElementRef{Kind: editor.ElementNode, ID: 2}, false)

	s.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	s.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)

	if err := Run(s, ed, Options{}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.bells != 0 {
		t.Errorf("Prevented key rang the bell")
	}
}

func TestRunReportsSaveFailure(t *testing.T) {
	s := newScreen(t)
	ed := testEditor(editor.Options{})

	s.InjectKey(tcell.KeyCtrlS, 0, tcell.ModCtrl)
	s.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)

	err := Run(s, ed, Options{Save: func(*diagram.Diagram) error { return errors.New("disk full") }})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ed.Status() != "save failed: disk full" {
		t.Errorf("Unexpected status %q", ed.Status())
	}
}

func TestDrawLineCursorAndWideRunes(t *testing.T) {
	s := newScreen(t)
	cx := drawLine(s, 0, 10, "日本x", tcell.StyleDefault, 2)
	if cx != 4 {
		t.Errorf("Cursor column = %d, want 4", cx)
	}
	cx = drawLine(s, 1, 10, "ab", tcell.StyleDefault, 2)
	if cx != 2 {
		t.Errorf("Cursor at end = %d, want 2", cx)
	}
	if got := rowText(s, 1); got != "ab" {
		t.Errorf("Row = %q", got)
	}
}
