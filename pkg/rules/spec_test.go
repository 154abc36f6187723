package rules

import (
	"encoding/json"
	"errors"
	"slices"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("flat list becomes required sections", func(t *testing.T) {
		t.Parallel()

		spec := Normalize(RequiredOnly("Why", "Approach"))
		if !slices.Equal(spec.Required, []string{"Why", "Approach"}) {
			t.Errorf("Required = %v", spec.Required)
		}
		if len(spec.Recommended) != 0 {
			t.Errorf("Recommended = %v, want empty", spec.Recommended)
		}
	})

	t.Run("structured entry is a no-op", func(t *testing.T) {
		t.Parallel()

		in := SectionSpec{Required: []string{"Why"}, Recommended: []string{"Cause"}}
		out := Normalize(Sections(in))
		if !slices.Equal(out.Required, in.Required) || !slices.Equal(out.Recommended, in.Recommended) {
			t.Errorf("Normalize(%+v) = %+v", in, out)
		}
	})

	t.Run("absent lists are empty", func(t *testing.T) {
		t.Parallel()

		out := Normalize(SectionEntry{})
		if len(out.Required) != 0 || len(out.Recommended) != 0 {
			t.Errorf("Normalize(zero entry) = %+v, want empty lists", out)
		}
	})
}

func TestSectionEntryUnmarshalYAML(t *testing.T) {
	t.Parallel()

	const doc = `
fix:
  required: [Why]
  recommended: [Cause, Approach]
chore: [Context]
refactor:
  required:
    - Why
    - Approach
`
	var value RuleValue
	if err := yaml.Unmarshal([]byte(doc), &value); err != nil {
		t.Fatalf("yaml.Unmarshal() error: %v", err)
	}

	fix := Normalize(value["fix"])
	if !slices.Equal(fix.Required, []string{"Why"}) {
		t.Errorf("fix.Required = %v", fix.Required)
	}
	if !slices.Equal(fix.Recommended, []string{"Cause", "Approach"}) {
		t.Errorf("fix.Recommended = %v", fix.Recommended)
	}

	chore := Normalize(value["chore"])
	if !slices.Equal(chore.Required, []string{"Context"}) || len(chore.Recommended) != 0 {
		t.Errorf("chore = %+v", chore)
	}

	refactor := Normalize(value["refactor"])
	if !slices.Equal(refactor.Required, []string{"Why", "Approach"}) {
		t.Errorf("refactor.Required = %v", refactor.Required)
	}
}

func TestSectionEntryUnmarshalYAMLRejectsScalar(t *testing.T) {
	t.Parallel()

	var value RuleValue
	err := yaml.Unmarshal([]byte("fix: 42\n"), &value)
	if err == nil {
		t.Fatal("expected error for scalar section entry")
	}
	if !errors.Is(err, ErrInvalidSectionShape) {
		t.Errorf("error = %v, want ErrInvalidSectionShape", err)
	}
}

func TestSectionEntryUnmarshalJSON(t *testing.T) {
	t.Parallel()

	const doc = `{"fix": {"required": ["Why"]}, "chore": ["Context"]}`

	var value RuleValue
	if err := json.Unmarshal([]byte(doc), &value); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if fix := Normalize(value["fix"]); !slices.Equal(fix.Required, []string{"Why"}) {
		t.Errorf("fix = %+v", fix)
	}
	if chore := Normalize(value["chore"]); !slices.Equal(chore.Required, []string{"Context"}) {
		t.Errorf("chore = %+v", chore)
	}

	var bad RuleValue
	if err := json.Unmarshal([]byte(`{"fix": 42}`), &bad); !errors.Is(err, ErrInvalidSectionShape) {
		t.Errorf("scalar entry error = %v, want ErrInvalidSectionShape", err)
	}
}

func TestSectionEntryRoundTrip(t *testing.T) {
	t.Parallel()

	value := RuleValue{
		"fix":   Sections(SectionSpec{Required: []string{"Why"}, Recommended: []string{"Cause"}}),
		"chore": RequiredOnly("Context"),
	}

	out, err := yaml.Marshal(value)
	if err != nil {
		t.Fatalf("yaml.Marshal() error: %v", err)
	}

	var back RuleValue
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("yaml.Unmarshal() error: %v", err)
	}

	// The flat shape survives the round trip as a flat shape.
	if back["chore"].List == nil || back["chore"].Spec != nil {
		t.Errorf("chore entry lost its flat shape: %+v", back["chore"])
	}
	if fix := Normalize(back["fix"]); !slices.Equal(fix.Recommended, []string{"Cause"}) {
		t.Errorf("fix entry lost data: %+v", fix)
	}
}
