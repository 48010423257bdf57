// Package items defines the concrete item record the reference TUI and
// stores operate on, plus YAML loading for item files. The engine itself
// never depends on this package; it sees records only through the config
// projections.
package items

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Record is one selectable item. ID must be unique within a file; Display
// is the text shown in the input and the list. Any further YAML fields are
// kept in Fields for expression filtering.
type Record struct {
	ID      string
	Display string
	Fields  map[string]any
}

// UnmarshalYAML accepts a mapping with id and display keys and collects
// every other key into Fields.
func (r *Record) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]any
	if err := value.Decode(&raw); err != nil {
		return err
	}
	id, _ := raw["id"].(string)
	display, _ := raw["display"].(string)
	if id == "" {
		return fmt.Errorf("item record is missing an id")
	}
	if display == "" {
		display = id
	}
	delete(raw, "id")
	delete(raw, "display")
	r.ID = id
	r.Display = display
	r.Fields = raw
	return nil
}

// MarshalYAML emits the flat mapping form UnmarshalYAML accepts.
func (r Record) MarshalYAML() (any, error) {
	out := make(map[string]any, len(r.Fields)+2)
	for k, v := range r.Fields {
		out[k] = v
	}
	out["id"] = r.ID
	out["display"] = r.Display
	return out, nil
}

// Parse decodes a YAML list of records.
func Parse(data []byte) ([]Record, error) {
	var records []Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse item file: %w", err)
	}
	return records, nil
}

// Load reads and decodes an item file.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read item file: %w", err)
	}
	return Parse(data)
}

// RecordID projects a record to its id, in the shape the engine config wants.
func RecordID(r Record) string { return r.ID }

// RecordDisplay projects a record to its display text.
func RecordDisplay(r Record) string { return r.Display }
