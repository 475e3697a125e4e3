package diagram

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateNode is returned when two nodes share an ID.
	ErrDuplicateNode = errors.New("duplicate node ID")
	// ErrUnknownNode is returned when a connection references a missing node.
	ErrUnknownNode = errors.New("connection references non-existent node")
	// ErrDuplicateLabel is returned when two labels share an id.
	ErrDuplicateLabel = errors.New("duplicate label id")
)

// Validate checks that d has a valid structure. Every problem found is
// reported, joined into one error.
func Validate(d *Diagram) error {
	var errs []error

	nodeIDs := make(map[int]bool)
	for _, node := range d.Nodes {
		if nodeIDs[node.ID] {
			errs = append(errs, fmt.Errorf("%w: %d", ErrDuplicateNode, node.ID))
		}
		nodeIDs[node.ID] = true
	}

	for i, conn := range d.Connections {
		if !nodeIDs[conn.From] {
			errs = append(errs, fmt.Errorf("connection %d: %w: 'from' %d", i, ErrUnknownNode, conn.From))
		}
		if !nodeIDs[conn.To] {
			errs = append(errs, fmt.Errorf("connection %d: %w: 'to' %d", i, ErrUnknownNode, conn.To))
		}
	}

	labelIDs := make(map[string]bool)
	checkLabel := func(l *Label) {
		if l == nil || l.ID == "" {
			return
		}
		if labelIDs[l.ID] {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateLabel, l.ID))
		}
		labelIDs[l.ID] = true
	}
	for _, node := range d.Nodes {
		checkLabel(node.Label)
	}
	for _, conn := range d.Connections {
		checkLabel(conn.Label)
	}

	return errors.Join(errs...)
}
