package editor

import (
	"log/slog"
	"strings"

	"labeledit/diagram"
	"labeledit/directedit"
)

// DefaultHistorySize is the undo depth used when Options leaves it unset.
const DefaultHistorySize = 50

// Options configures a new Editor.
type Options struct {
	Logger      *slog.Logger
	ReadOnly    bool // Forces read-only even if the diagram allows editing
	HistorySize int
}

// Editor is the interactive label editor. It owns the diagram being edited,
// the selection and the direct edit session.
type Editor struct {
	diagram *diagram.Diagram
	session *directedit.Session
	logger  *slog.Logger

	readOnly bool
	mode     Mode

	selection map[ElementRef]bool
	focus     ElementRef // Last element selected with Tab or Select

	jumpLabels map[ElementRef]rune

	// Text input state
	textBuffer []rune
	cursorPos  int

	history *StructHistory
	dirty   bool
	status  string
}

// NewEditor creates an editor for d. A nil diagram starts empty.
func NewEditor(d *diagram.Diagram, opts Options) *Editor {
	if d == nil {
		d = &diagram.Diagram{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	size := opts.HistorySize
	if size <= 0 {
		size = DefaultHistorySize
	}

	e := &Editor{
		diagram:   d,
		session:   directedit.NewSession(logger),
		logger:    logger,
		readOnly:  opts.ReadOnly,
		mode:      ModeNormal,
		selection: make(map[ElementRef]bool),
		focus:     ElementRef{Kind: ElementNode, ID: -1},
		history:   NewStructHistory(size),
	}
	e.history.SaveState(d)
	return e
}

// Diagram returns the diagram being edited.
func (e *Editor) Diagram() *diagram.Diagram {
	return e.diagram
}

// Session returns the direct edit session.
func (e *Editor) Session() *directedit.Session {
	return e.session
}

// Mode returns the current mode.
func (e *Editor) Mode() Mode {
	return e.mode
}

// ReadOnly reports whether direct edit is disabled for this view.
func (e *Editor) ReadOnly() bool {
	return e.readOnly || e.diagram.ReadOnly
}

// Dirty reports whether the diagram changed since the last MarkSaved.
func (e *Editor) Dirty() bool {
	return e.dirty
}

// MarkSaved clears the dirty flag.
func (e *Editor) MarkSaved() {
	e.dirty = false
	e.SetStatus("saved")
}

// Status returns the last status message.
func (e *Editor) Status() string {
	return e.status
}

// SetStatus replaces the status message.
func (e *Editor) SetStatus(msg string) {
	e.status = msg
}

// TextBuffer returns the text of the label being edited.
func (e *Editor) TextBuffer() string {
	return string(e.textBuffer)
}

// CursorPos returns the cursor position within the text buffer, in runes.
func (e *Editor) CursorPos() int {
	return e.cursorPos
}

// KeyResult describes what the editor did with a key.
type KeyResult struct {
	Consumed         bool // Some binding handled the key
	DefaultPrevented bool // The host must not apply its default action
	Quit             bool
	Save             bool
}

// HandleKey processes one key press. The direct edit decider sees every key
// first; when it does not start an edit, the key goes to the current mode.
func (e *Editor) HandleKey(k KeyEvent) KeyResult {
	res := directedit.Decide(k.DirectEditEvent(e.mode.IsTextEntry()), e.Snapshot())
	if res.Activate {
		e.startDirectEdit(res.Command)
		return KeyResult{Consumed: true, DefaultPrevented: true}
	}

	var out KeyResult
	switch e.mode {
	case ModeEdit:
		out = e.handleTextKey(k)
	case ModeJump:
		out = e.handleJumpKey(k)
	default:
		out = e.handleNormalKey(k)
	}
	out.DefaultPrevented = out.DefaultPrevented || res.PreventDefault
	return out
}

// startDirectEdit enters edit mode for the command's label. A typed seed
// replaces the label text; F2 keeps it with the cursor at the end.
func (e *Editor) startDirectEdit(cmd directedit.Command) {
	label, ok := e.diagram.FindLabel(cmd.TargetLabelID)
	if !ok {
		e.logger.Warn("direct edit target vanished", "label", cmd.TargetLabelID)
		return
	}

	e.session.Activate(cmd)
	e.mode = ModeEdit
	if cmd.HasSeed {
		e.textBuffer = []rune{cmd.Seed}
	} else {
		e.textBuffer = []rune(label.Text)
	}
	e.cursorPos = len(e.textBuffer)
	e.SetStatus("editing " + cmd.TargetLabelID)
}

// commitText writes the text buffer into the edited label and leaves edit
// mode. Node labels may not be blanked; connection labels may.
func (e *Editor) commitText() {
	id := e.session.EditingLabelID()
	text := strings.TrimSpace(string(e.textBuffer))

	owner, ok := e.labelOwner(id)
	if ok && owner.Kind == ElementNode && text == "" {
		e.SetStatus("node labels cannot be empty")
		e.endEdit()
		return
	}

	if err := e.UpdateLabel(id, text); err != nil {
		e.logger.Warn("commit failed", "label", id, "error", err)
		e.SetStatus(err.Error())
	}
	e.endEdit()
}

// cancelEdit leaves edit mode without touching the diagram.
func (e *Editor) cancelEdit() {
	e.SetStatus("edit cancelled")
	e.endEdit()
}

func (e *Editor) endEdit() {
	e.session.Reset()
	e.mode = ModeNormal
	e.textBuffer = e.textBuffer[:0]
	e.cursorPos = 0
}

func (e *Editor) labelOwner(id string) (ElementRef, bool) {
	for _, n := range e.diagram.Nodes {
		if n.Label != nil && n.Label.ID == id {
			return ElementRef{Kind: ElementNode, ID: n.ID}, true
		}
	}
	for _, c := range e.diagram.Connections {
		if c.Label != nil && c.Label.ID == id {
			return ElementRef{Kind: ElementConnection, ID: c.ID}, true
		}
	}
	return ElementRef{}, false
}
