package editor

// Mode represents the current editing mode
type Mode int

const (
	ModeNormal Mode = iota // Selecting elements
	ModeEdit               // Editing a label in place
	ModeJump               // Waiting for a jump label
)

// String returns the mode name for display
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeEdit:
		return "EDIT"
	case ModeJump:
		return "JUMP"
	default:
		return "UNKNOWN"
	}
}

// IsTextEntry reports whether keys in this mode go to an input prompt
// rather than to the diagram.
func (m Mode) IsTextEntry() bool {
	return m == ModeEdit || m == ModeJump
}
