package rules

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSectionShape indicates a per-type configuration entry that is
// neither a list of section names nor a required/recommended object.
var ErrInvalidSectionShape = errors.New("rules: section entry must be a list of names or a {required, recommended} object")

// SectionEntry is one per-type configuration entry as supplied by callers.
// Two shapes are accepted at the configuration boundary: a bare list of
// section names (legacy, interpreted as required sections) or a structured
// SectionSpec. Exactly one of List and Spec is set; Normalize collapses the
// union so the rest of the package never branches on shape.
type SectionEntry struct {
	// List holds the legacy flat shape. Nil when Spec is set.
	List []string

	// Spec holds the structured shape. Nil when List is set.
	Spec *SectionSpec
}

// Sections builds a structured entry.
func Sections(spec SectionSpec) SectionEntry {
	return SectionEntry{Spec: &spec}
}

// RequiredOnly builds a legacy flat entry: the named sections are required
// and nothing is recommended.
func RequiredOnly(names ...string) SectionEntry {
	return SectionEntry{List: names}
}

// Normalize collapses a SectionEntry to its canonical SectionSpec form. A
// flat list becomes {Required: list}; a structured entry passes through
// unchanged, with absent lists meaning empty. Normalizing an already
// structured entry is a no-op.
func Normalize(entry SectionEntry) SectionSpec {
	if entry.Spec != nil {
		return *entry.Spec
	}
	return SectionSpec{Required: entry.List}
}

// UnmarshalYAML accepts either configuration shape from YAML.
func (e *SectionEntry) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return fmt.Errorf("decode section list: %w", err)
		}
		*e = SectionEntry{List: list}
		return nil
	case yaml.MappingNode:
		var spec SectionSpec
		if err := value.Decode(&spec); err != nil {
			return fmt.Errorf("decode section spec: %w", err)
		}
		*e = SectionEntry{Spec: &spec}
		return nil
	default:
		return fmt.Errorf("line %d: %w", value.Line, ErrInvalidSectionShape)
	}
}

// MarshalYAML emits the entry in the shape it was supplied in, so loaded
// configuration round-trips unchanged.
func (e SectionEntry) MarshalYAML() (any, error) {
	if e.Spec != nil {
		return *e.Spec, nil
	}
	return e.List, nil
}

// UnmarshalJSON accepts either configuration shape from JSON.
func (e *SectionEntry) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return ErrInvalidSectionShape
	}
	switch trimmed[0] {
	case '[':
		var list []string
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return fmt.Errorf("decode section list: %w", err)
		}
		*e = SectionEntry{List: list}
		return nil
	case '{':
		var spec SectionSpec
		if err := json.Unmarshal(trimmed, &spec); err != nil {
			return fmt.Errorf("decode section spec: %w", err)
		}
		*e = SectionEntry{Spec: &spec}
		return nil
	default:
		return ErrInvalidSectionShape
	}
}

// MarshalJSON mirrors MarshalYAML.
func (e SectionEntry) MarshalJSON() ([]byte, error) {
	if e.Spec != nil {
		return json.Marshal(*e.Spec)
	}
	return json.Marshal(e.List)
}
