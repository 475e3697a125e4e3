package script

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"labeledit/editor"
)

// Sink receives replayed input. *editor.Editor satisfies it.
type Sink interface {
	HandleKey(editor.KeyEvent) editor.KeyResult
	Select(ref editor.ElementRef, additive bool) error
	ClearSelection()
}

// Step records one replayed key and what the sink did with it.
type Step struct {
	Key    editor.KeyEvent
	Result editor.KeyResult
}

// Transcript is the ordered record of a replay.
type Transcript struct {
	Steps []Step
	Quit  bool // A key asked the editor to quit; replay stopped there
	Saves int  // Number of save requests seen
}

// Player plays back scripts
type Player struct {
	// Realtime honours command delays; otherwise the script runs as fast
	// as possible.
	Realtime bool
	Logger   *slog.Logger

	sleep func(context.Context, time.Duration) error
}

// NewPlayer creates a player that replays without delays.
func NewPlayer(logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Player{Logger: logger, sleep: sleepContext}
}

// Play runs every command of s against sink, in order. It stops early when
// ctx is cancelled, a step fails, or a key requests quit.
func (p *Player) Play(ctx context.Context, s *Script, sink Sink) (*Transcript, error) {
	t := &Transcript{}
	for i, cmd := range s.Commands {
		if err := ctx.Err(); err != nil {
			return t, err
		}
		if err := p.run(cmd, sink, t); err != nil {
			return t, fmt.Errorf("command %d (%s): %w", i, cmd.Type, err)
		}
		if t.Quit {
			p.Logger.Info("script requested quit", "command", i)
			return t, nil
		}
		if p.Realtime {
			if err := p.sleep(ctx, delayFor(s, cmd)); err != nil {
				return t, err
			}
		}
	}
	return t, nil
}

func (p *Player) run(cmd Command, sink Sink, t *Transcript) error {
	switch cmd.Type {
	case TypeKey:
		ev, err := ParseKey(cmd.Value)
		if err != nil {
			return err
		}
		p.press(ev, sink, t)
	case TypeText:
		for _, r := range cmd.Value {
			p.press(editor.Char(r), sink, t)
			if t.Quit {
				break
			}
		}
	case TypeSelect, TypeAdd:
		ref, err := editor.ParseElementRef(cmd.Value)
		if err != nil {
			return err
		}
		return sink.Select(ref, cmd.Type == TypeAdd)
	case TypeClear:
		sink.ClearSelection()
	case TypePause:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Type)
	}
	return nil
}

func (p *Player) press(ev editor.KeyEvent, sink Sink, t *Transcript) {
	res := sink.HandleKey(ev)
	p.Logger.Debug("replayed key", "key", ev.String(), "consumed", res.Consumed, "prevented", res.DefaultPrevented)
	t.Steps = append(t.Steps, Step{Key: ev, Result: res})
	if res.Save {
		t.Saves++
	}
	if res.Quit {
		t.Quit = true
	}
}

// delayFor calculates the delay after cmd, with random variance.
func delayFor(s *Script, cmd Command) time.Duration {
	delay := cmd.Delay
	if delay == 0 {
		delay = s.BaseDelay
	}
	variance := cmd.Variance
	if variance == 0 {
		variance = s.BaseVariance
	}
	if variance > 0 {
		delay += rand.Intn(variance*2) - variance
	}
	if delay < 0 {
		delay = 0
	}
	return time.Duration(delay) * time.Millisecond
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
