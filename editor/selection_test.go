package editor

import (
	"reflect"
	"testing"
)

func TestParseElementRef(t *testing.T) {
	tests := []struct {
		in      string
		want    ElementRef
		wantErr bool
	}{
		{"node:1", node(1), false},
		{" edge:4 ", edge(4), false},
		{"conn:2", edge(2), false},
		{"Connection:0", edge(0), false},
		{"node", ElementRef{}, true},
		{"node:x", ElementRef{}, true},
		{"box:1", ElementRef{}, true},
	}
	for _, tt := range tests {
		got, err := ParseElementRef(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("%q: err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: got %v, want %v", tt.in, got, tt.want)
		}
	}
	if node(3).String() != "node:3" || edge(5).String() != "edge:5" {
		t.Errorf("Unexpected String forms")
	}
}

func TestTabCyclesSelection(t *testing.T) {
	e := NewEditor(testDiagram(), Options{})

	want := []ElementRef{node(1), node(2), node(3), edge(0), edge(1), node(1)}
	for i, ref := range want {
		e.HandleKey(Special(KeyTab))
		if got := e.Selection(); !reflect.DeepEqual(got, []ElementRef{ref}) {
			t.Fatalf("Step %d: selection %v, want %v", i, got, ref)
		}
	}

	e.HandleKey(KeyEvent{SpecialKey: KeyTab, Shift: true})
	if got := e.Selection(); !reflect.DeepEqual(got, []ElementRef{edge(1)}) {
		t.Errorf("Shift+Tab selection %v", got)
	}
	e.HandleKey(Special(KeyArrowUp))
	if got := e.Selection(); !reflect.DeepEqual(got, []ElementRef{edge(0)}) {
		t.Errorf("ArrowUp selection %v", got)
	}
}

func TestShiftTabFromNothingSelectsLast(t *testing.T) {
	e := NewEditor(testDiagram(), Options{})
	e.HandleKey(KeyEvent{SpecialKey: KeyTab, Shift: true})
	if got := e.Selection(); !reflect.DeepEqual(got, []ElementRef{edge(1)}) {
		t.Errorf("Selection %v", got)
	}
}

func TestSelectAllAndClear(t *testing.T) {
	e := NewEditor(testDiagram(), Options{})

	e.HandleKey(Ctrl('a'))
	if got := len(e.Selection()); got != 5 {
		t.Errorf("Expected 5 selected, got %d", got)
	}

	// With everything selected the first node's label is the target.
	e.HandleKey(Special(KeyF2))
	if e.Session().EditingLabelID() != "start" {
		t.Errorf("Expected start, got %q", e.Session().EditingLabelID())
	}
	e.HandleKey(Special(KeyEscape))

	e.HandleKey(Special(KeyEscape))
	if got := e.Selection(); len(got) != 0 {
		t.Errorf("Expected empty selection, got %v", got)
	}
}

func TestSelectUnknownElement(t *testing.T) {
	e := NewEditor(testDiagram(), Options{})
	if err := e.Select(node(42), false); err == nil {
		t.Errorf("Expected error selecting missing node")
	}
	e.Select(node(1), false)
	e.Deselect(node(1))
	if e.IsSelected(node(1)) {
		t.Errorf("Deselect did not remove node")
	}
}

func TestSnapshotMirrorsDiagram(t *testing.T) {
	e := NewEditor(testDiagram(), Options{})
	e.Select(edge(0), false)

	snap := e.Snapshot()
	if len(snap.Nodes) != 3 || len(snap.Edges) != 2 {
		t.Fatalf("Unexpected snapshot sizes %d/%d", len(snap.Nodes), len(snap.Edges))
	}
	if snap.Nodes[0].InsideLabelID != "start" || !snap.Nodes[0].LabelEditable {
		t.Errorf("Node 1 snapshot wrong: %+v", snap.Nodes[0])
	}
	if snap.Nodes[2].InsideLabelID != "" {
		t.Errorf("Label-free node got id %q", snap.Nodes[2].InsideLabelID)
	}
	if !snap.Edges[0].Selected || snap.Edges[0].CenterLabelID != "go" {
		t.Errorf("Edge snapshot wrong: %+v", snap.Edges[0])
	}
	if snap.Edges[1].Selected {
		t.Errorf("Edge 1 should not be selected")
	}
}
