// Package diagram contains the diagram model edited by labeledit.
package diagram

import "maps"

// Label is an editable piece of text attached to a node or connection.
type Label struct {
	ID   string `json:"id,omitempty"`
	Text string `json:"text"`
}

// Node represents a box in the diagram.
type Node struct {
	ID            int               `json:"id"`
	Label         *Label            `json:"insideLabel,omitempty"`   // Primary label drawn inside the node
	LabelEditable bool              `json:"labelEditable,omitempty"` // Whether direct edit may rename the label
	Hints         map[string]string `json:"hints,omitempty"`         // Visual hints (style, color, etc.)
}

// Text returns the node's label text, or "" when it has none.
func (n Node) Text() string {
	if n.Label == nil {
		return ""
	}
	return n.Label.Text
}

// Connection represents a directed edge between nodes.
type Connection struct {
	ID            int               `json:"id,omitempty"`                  // Unique connection identifier
	From          int               `json:"from"`                          // Source node ID
	To            int               `json:"to"`                            // Target node ID
	Arrow         bool              `json:"arrow,omitempty"`               // Whether this connection should have an arrow
	Label         *Label            `json:"centerLabel,omitempty"`         // Optional label drawn at the middle of the edge
	LabelEditable bool              `json:"centerLabelEditable,omitempty"` // Whether direct edit may rename the label
	Hints         map[string]string `json:"hints,omitempty"`
}

// Text returns the connection's center label text, or "".
func (c Connection) Text() string {
	if c.Label == nil {
		return ""
	}
	return c.Label.Text
}

// Diagram holds all nodes and connections.
type Diagram struct {
	Nodes       []Node       `json:"nodes"`
	Connections []Connection `json:"connections"`
	Metadata    Metadata     `json:"metadata,omitempty"`
	ReadOnly    bool         `json:"readOnly,omitempty"` // Disables direct edit for the whole view
}

// Metadata contains optional diagram metadata.
type Metadata struct {
	Name    string `json:"name,omitempty"`
	Created string `json:"created,omitempty"`
	Version string `json:"version,omitempty"`
}

// Clone creates a deep copy of the diagram
func (d *Diagram) Clone() *Diagram {
	if d == nil {
		return nil
	}

	clone := &Diagram{
		Nodes:       make([]Node, len(d.Nodes)),
		Connections: make([]Connection, len(d.Connections)),
		Metadata:    d.Metadata,
		ReadOnly:    d.ReadOnly,
	}

	for i, node := range d.Nodes {
		node.Label = cloneLabel(node.Label)
		node.Hints = maps.Clone(node.Hints)
		clone.Nodes[i] = node
	}

	for i, conn := range d.Connections {
		conn.Label = cloneLabel(conn.Label)
		conn.Hints = maps.Clone(conn.Hints)
		clone.Connections[i] = conn
	}

	return clone
}

func cloneLabel(l *Label) *Label {
	if l == nil {
		return nil
	}
	c := *l
	return &c
}

// NodeByID returns the node with the given ID.
func (d *Diagram) NodeByID(id int) (*Node, bool) {
	for i := range d.Nodes {
		if d.Nodes[i].ID == id {
			return &d.Nodes[i], true
		}
	}
	return nil, false
}

// ConnectionByID returns the connection with the given ID.
func (d *Diagram) ConnectionByID(id int) (*Connection, bool) {
	for i := range d.Connections {
		if d.Connections[i].ID == id {
			return &d.Connections[i], true
		}
	}
	return nil, false
}

// FindLabel returns the node or connection label with the given id.
// Node labels are searched first.
func (d *Diagram) FindLabel(id string) (*Label, bool) {
	if id == "" {
		return nil, false
	}
	for i := range d.Nodes {
		if l := d.Nodes[i].Label; l != nil && l.ID == id {
			return l, true
		}
	}
	for i := range d.Connections {
		if l := d.Connections[i].Label; l != nil && l.ID == id {
			return l, true
		}
	}
	return nil, false
}
