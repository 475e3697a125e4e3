package directedit

// Element is a selectable diagram element: a Node or an Edge.
type Element interface {
	IsSelected() bool
	// EditableLabel returns the element's primary label, if it has one.
	EditableLabel() (LabelRef, bool)

	element()
}

// LabelRef identifies a label and whether it may be edited.
type LabelRef struct {
	ID       string
	Editable bool
}

// Node is the selection view of a diagram node. InsideLabelID is empty when
// the node has no inside label.
type Node struct {
	Selected      bool
	InsideLabelID string
	LabelEditable bool
}

// IsSelected reports whether the node is selected.
func (n Node) IsSelected() bool { return n.Selected }

// EditableLabel returns the node's inside label.
func (n Node) EditableLabel() (LabelRef, bool) {
	if n.InsideLabelID == "" {
		return LabelRef{}, false
	}
	return LabelRef{ID: n.InsideLabelID, Editable: n.LabelEditable}, true
}

func (Node) element() {}

// Edge is the selection view of a connection. CenterLabelID is empty when
// the edge has no center label.
type Edge struct {
	Selected            bool
	CenterLabelID       string
	CenterLabelEditable bool
}

// IsSelected reports whether the edge is selected.
func (e Edge) IsSelected() bool { return e.Selected }

// EditableLabel returns the edge's center label.
func (e Edge) EditableLabel() (LabelRef, bool) {
	if e.CenterLabelID == "" {
		return LabelRef{}, false
	}
	return LabelRef{ID: e.CenterLabelID, Editable: e.CenterLabelEditable}, true
}

func (Edge) element() {}

// Trigger is the reason a direct edit started.
type Trigger int

const (
	// TypedCharacter: the user typed a printable character, which seeds
	// the new label text.
	TypedCharacter Trigger = iota
	// ExplicitEditKey: the user pressed F2 to rename the label.
	ExplicitEditKey
)

// String returns the editing key name used by the session.
func (t Trigger) String() string {
	switch t {
	case TypedCharacter:
		return "keyDown"
	case ExplicitEditKey:
		return "F2"
	default:
		return "unknown"
	}
}

// Command instructs the editing session to start editing a label.
type Command struct {
	Trigger       Trigger
	TargetLabelID string
	Seed          rune
	HasSeed       bool
}

// Event is a key-down event as seen by the decider. Key holds either a
// single character or a key name such as "F2", "Escape" or "Shift".
type Event struct {
	Key                    string
	Alt, Shift, Meta, Ctrl bool
	ModifierState          func(key string) bool
	InTextInput            bool
}

// modifierActive reports whether Key names a modifier that is still held.
func (ev Event) modifierActive() bool {
	if ev.ModifierState == nil {
		return false
	}
	return ev.ModifierState(ev.Key)
}

// Snapshot is the selection state at the moment a key is handled.
type Snapshot struct {
	Nodes    []Node
	Edges    []Edge
	ReadOnly bool
}

// Result is the outcome of Decide. Command is only meaningful when Activate
// is set. PreventDefault tells the host to suppress its default handling of
// the key.
type Result struct {
	Command        Command
	Activate       bool
	PreventDefault bool
}
