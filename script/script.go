// Package script replays recorded key sequences against an editor, for
// demos, regression checks and headless editing.
package script

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// Command types.
const (
	TypeKey    = "key"    // Value is a key spec such as "F2" or "Shift+Tab"
	TypeText   = "text"   // Value is typed one character at a time
	TypeSelect = "select" // Value is an element ref, e.g. "node:1"
	TypeAdd    = "add"    // Like select, but keeps the current selection
	TypeClear  = "clear"  // Clears the selection
	TypePause  = "pause"  // Waits, nothing else
)

// ErrUnknownCommand is returned for a command type the player does not know.
var ErrUnknownCommand = errors.New("unknown script command")

// Command represents a single script step
type Command struct {
	Type     string `json:"type"`
	Value    string `json:"value,omitempty"`
	Delay    int    `json:"delay,omitempty"`    // Delay after the step in ms (realtime only)
	Variance int    `json:"variance,omitempty"` // Random variance in ms (±variance)
}

// Script is a named list of commands.
type Script struct {
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Commands     []Command `json:"commands"`
	BaseDelay    int       `json:"base_delay,omitempty"`    // Default delay between commands
	BaseVariance int       `json:"base_variance,omitempty"` // Default variance
}

// Parse decodes a script, allowing comments and trailing commas, and checks
// every command up front so a bad step fails before anything is replayed.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := json.Unmarshal(jsonc.ToJSON(data), &s); err != nil {
		return nil, fmt.Errorf("parsing script: %w", err)
	}
	for i, cmd := range s.Commands {
		if err := cmd.validate(); err != nil {
			return nil, fmt.Errorf("command %d: %w", i, err)
		}
	}
	return &s, nil
}

// LoadScript reads a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func (c Command) validate() error {
	switch c.Type {
	case TypeKey:
		_, err := ParseKey(c.Value)
		return err
	case TypeText, TypeClear, TypePause:
		return nil
	case TypeSelect, TypeAdd:
		if c.Value == "" {
			return fmt.Errorf("%s: missing element", c.Type)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownCommand, c.Type)
}

// Example returns a sample script that renames the first node by typing and
// the first connection with F2.
func Example() string {
	s := Script{
		Name:        "Rename demo",
		Description: "Types over a node label, then appends to a connection label",
		BaseDelay:   300,
		Commands: []Command{
			{Type: TypeKey, Value: "Tab"},
			{Type: TypeText, Value: "Begin"},
			{Type: TypeKey, Value: "Enter"},
			{Type: TypeSelect, Value: "edge:0"},
			{Type: TypeKey, Value: "F2"},
			{Type: TypeText, Value: " now"},
			{Type: TypeKey, Value: "Enter"},
			{Type: TypePause, Delay: 1000},
		},
	}
	data, _ := json.MarshalIndent(s, "", "  ")
	return string(data)
}
