package diagram

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// Parse decodes a diagram from JSON. Line comments, block comments and
// trailing commas are accepted. Connection and label ids are normalised
// and the result is validated.
func Parse(data []byte) (*Diagram, error) {
	var d Diagram
	if err := json.Unmarshal(jsonc.ToJSON(data), &d); err != nil {
		return nil, fmt.Errorf("parsing diagram: %w", err)
	}

	EnsureUniqueConnectionIDs(&d)
	EnsureLabelIDs(&d)

	if err := Validate(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

// ReadFile loads a diagram file from disk.
func ReadFile(path string) (*Diagram, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Marshal encodes d as indented JSON with a trailing newline.
func Marshal(d *Diagram) ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding diagram: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteFile saves d to path as plain JSON.
func WriteFile(path string, d *Diagram) error {
	data, err := Marshal(d)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
