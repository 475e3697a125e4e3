package diagram

import "fmt"

// EnsureUniqueConnectionIDs ensures all connections in a diagram have unique IDs.
// If connections have missing IDs (all zero) or duplicate IDs, they are reassigned.
func EnsureUniqueConnectionIDs(diagram *Diagram) {
	if diagram == nil || len(diagram.Connections) == 0 {
		return
	}

	idCount := make(map[int]int)
	allZero := true
	for i := range diagram.Connections {
		id := diagram.Connections[i].ID
		idCount[id]++
		if id != 0 {
			allZero = false
		}
	}

	needsReassignment := allZero
	for _, count := range idCount {
		if count > 1 {
			needsReassignment = true
			break
		}
	}

	if needsReassignment {
		for i := range diagram.Connections {
			diagram.Connections[i].ID = i
		}
	}
}

// NodeLabelID is the label id derived for a node label that has none.
func NodeLabelID(nodeID int) string {
	return fmt.Sprintf("node-%d", nodeID)
}

// ConnectionLabelID is the label id derived for a connection label that has none.
func ConnectionLabelID(connID int) string {
	return fmt.Sprintf("edge-%d", connID)
}

// EnsureLabelIDs gives every label without an id a derived one. Connection
// IDs must already be unique.
func EnsureLabelIDs(diagram *Diagram) {
	if diagram == nil {
		return
	}
	for i := range diagram.Nodes {
		if l := diagram.Nodes[i].Label; l != nil && l.ID == "" {
			l.ID = NodeLabelID(diagram.Nodes[i].ID)
		}
	}
	for i := range diagram.Connections {
		if l := diagram.Connections[i].Label; l != nil && l.ID == "" {
			l.ID = ConnectionLabelID(diagram.Connections[i].ID)
		}
	}
}
