package editor

import (
	"fmt"
	"strconv"
	"strings"

	"labeledit/diagram"
	"labeledit/directedit"
)

// ElementKind distinguishes nodes from connections.
type ElementKind int

const (
	ElementNode ElementKind = iota
	ElementConnection
)

// ElementRef identifies a node or connection by kind and ID.
type ElementRef struct {
	Kind ElementKind
	ID   int
}

// String returns "node:<id>" or "edge:<id>".
func (r ElementRef) String() string {
	if r.Kind == ElementConnection {
		return fmt.Sprintf("edge:%d", r.ID)
	}
	return fmt.Sprintf("node:%d", r.ID)
}

// ParseElementRef parses the String form of an ElementRef. "conn" and
// "connection" are accepted for edges.
func ParseElementRef(s string) (ElementRef, error) {
	kind, id, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return ElementRef{}, fmt.Errorf("element %q: want kind:id", s)
	}
	n, err := strconv.Atoi(id)
	if err != nil {
		return ElementRef{}, fmt.Errorf("element %q: bad id: %w", s, err)
	}
	switch strings.ToLower(kind) {
	case "node":
		return ElementRef{Kind: ElementNode, ID: n}, nil
	case "edge", "conn", "connection":
		return ElementRef{Kind: ElementConnection, ID: n}, nil
	}
	return ElementRef{}, fmt.Errorf("element %q: unknown kind %q", s, kind)
}

// elements lists every selectable element, nodes first, in diagram order.
func (e *Editor) elements() []ElementRef {
	refs := make([]ElementRef, 0, len(e.diagram.Nodes)+len(e.diagram.Connections))
	for _, n := range e.diagram.Nodes {
		refs = append(refs, ElementRef{Kind: ElementNode, ID: n.ID})
	}
	for _, c := range e.diagram.Connections {
		refs = append(refs, ElementRef{Kind: ElementConnection, ID: c.ID})
	}
	return refs
}

func (e *Editor) exists(ref ElementRef) bool {
	switch ref.Kind {
	case ElementNode:
		_, ok := e.diagram.NodeByID(ref.ID)
		return ok
	case ElementConnection:
		_, ok := e.diagram.ConnectionByID(ref.ID)
		return ok
	}
	return false
}

// Select selects ref. Unless additive, the previous selection is cleared.
func (e *Editor) Select(ref ElementRef, additive bool) error {
	if !e.exists(ref) {
		return fmt.Errorf("select %s: no such element", ref)
	}
	if !additive {
		clear(e.selection)
	}
	e.selection[ref] = true
	e.focus = ref
	return nil
}

// Deselect removes ref from the selection.
func (e *Editor) Deselect(ref ElementRef) {
	delete(e.selection, ref)
}

// ClearSelection deselects everything.
func (e *Editor) ClearSelection() {
	clear(e.selection)
}

// SelectAll selects every node and connection.
func (e *Editor) SelectAll() {
	for _, ref := range e.elements() {
		e.selection[ref] = true
	}
}

// IsSelected reports whether ref is selected.
func (e *Editor) IsSelected(ref ElementRef) bool {
	return e.selection[ref]
}

// Selection returns the selected elements in diagram order.
func (e *Editor) Selection() []ElementRef {
	var out []ElementRef
	for _, ref := range e.elements() {
		if e.selection[ref] {
			out = append(out, ref)
		}
	}
	return out
}

// selectStep moves the exclusive selection delta places from the focused
// element, wrapping around.
func (e *Editor) selectStep(delta int) {
	refs := e.elements()
	if len(refs) == 0 {
		return
	}
	idx := -1
	for i, ref := range refs {
		if ref == e.focus {
			idx = i
			break
		}
	}
	if idx < 0 && delta < 0 {
		idx = 0
	}
	next := ((idx+delta)%len(refs) + len(refs)) % len(refs)
	clear(e.selection)
	e.selection[refs[next]] = true
	e.focus = refs[next]
}

// pruneSelection drops selected elements that no longer exist, e.g. after
// an undo.
func (e *Editor) pruneSelection() {
	for ref := range e.selection {
		if !e.exists(ref) {
			delete(e.selection, ref)
		}
	}
}

// Snapshot returns the selection state handed to the direct edit decider.
func (e *Editor) Snapshot() directedit.Snapshot {
	snap := directedit.Snapshot{
		Nodes:    make([]directedit.Node, 0, len(e.diagram.Nodes)),
		Edges:    make([]directedit.Edge, 0, len(e.diagram.Connections)),
		ReadOnly: e.ReadOnly(),
	}
	for _, n := range e.diagram.Nodes {
		snap.Nodes = append(snap.Nodes, directedit.Node{
			Selected:      e.selection[ElementRef{Kind: ElementNode, ID: n.ID}],
			InsideLabelID: labelID(n.Label),
			LabelEditable: n.LabelEditable,
		})
	}
	for _, c := range e.diagram.Connections {
		snap.Edges = append(snap.Edges, directedit.Edge{
			Selected:            e.selection[ElementRef{Kind: ElementConnection, ID: c.ID}],
			CenterLabelID:       labelID(c.Label),
			CenterLabelEditable: c.LabelEditable,
		})
	}
	return snap
}

func labelID(l *diagram.Label) string {
	if l == nil {
		return ""
	}
	return l.ID
}
