package directedit

import (
	"log/slog"
)

// Session tracks the label currently being edited. It is owned by the view
// that hosts the diagram and is not safe for concurrent use.
type Session struct {
	logger *slog.Logger

	active  bool
	current Command
}

// NewSession creates an idle session. A nil logger discards output.
func NewSession(logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{logger: logger}
}

// Activate starts editing the command's target label, replacing any edit in
// progress.
func (s *Session) Activate(cmd Command) {
	if s.active && s.current.TargetLabelID != cmd.TargetLabelID {
		s.logger.Debug("direct edit replaced",
			"previous_label", s.current.TargetLabelID,
			"label", cmd.TargetLabelID)
	}
	s.active = true
	s.current = cmd

	attrs := []any{"label", cmd.TargetLabelID, "editing_key", cmd.Trigger.String()}
	if cmd.HasSeed {
		attrs = append(attrs, "seed", string(cmd.Seed))
	}
	s.logger.Info("direct edit started", attrs...)
}

// Reset ends the current edit, if any.
func (s *Session) Reset() {
	if !s.active {
		return
	}
	s.logger.Info("direct edit reset", "label", s.current.TargetLabelID)
	s.active = false
	s.current = Command{}
}

// Active returns the command that started the current edit.
func (s *Session) Active() (Command, bool) {
	return s.current, s.active
}

// EditingLabelID returns the id of the label being edited, or "".
func (s *Session) EditingLabelID() string {
	if !s.active {
		return ""
	}
	return s.current.TargetLabelID
}

// EditingKey returns the trigger name of the current edit, or "".
func (s *Session) EditingKey() string {
	if !s.active {
		return ""
	}
	return s.current.Trigger.String()
}
