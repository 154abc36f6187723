// Package rules implements the commit body section checks: for a given
// commit type, the body must (or must not) contain markdown-style section
// headers such as "### Why". The two rule functions are pure and safe for
// concurrent use; configuration is passed explicitly on every call.
package rules

import (
	"fmt"
	"strings"
)

// Polarity controls whether a rule asserts sections must be present
// ("always") or must be absent ("never").
type Polarity string

const (
	// PolarityAlways asserts the configured sections must be present.
	PolarityAlways Polarity = "always"

	// PolarityNever asserts the configured sections must be absent.
	PolarityNever Polarity = "never"
)

// Revert describes the commit a revert commit undoes.
type Revert struct {
	// Header is the subject line of the reverted commit, when known.
	Header string

	// Hash is the hash of the reverted commit, when known.
	Hash string
}

// Commit is the parsed commit under check. It is constructed by an external
// conventional-commit parser and never mutated by the rules.
type Commit struct {
	// Type is the conventional-commit type tag ("fix", "feat", ...).
	// Empty means the commit could not be classified.
	Type string

	// Body is the full commit body text. Empty means no body.
	Body string

	// Merge reports whether this is a merge commit.
	Merge bool

	// Revert is non-nil when this is a revert commit.
	Revert *Revert
}

// SectionSpec is the canonical per-type expectation: which sections a commit
// body must carry and which are merely advised. Order affects only message
// formatting, never matching. A nil slice means no expectation.
type SectionSpec struct {
	Required    []string `yaml:"required,omitempty" json:"required,omitempty"`
	Recommended []string `yaml:"recommended,omitempty" json:"recommended,omitempty"`
}

// RuleValue maps a commit type to its section entry. Types absent from the
// map are never checked.
type RuleValue map[string]SectionEntry

// RequiredSections checks that the commit body carries every required
// section header for the commit's type. It returns the verdict and a
// diagnostic message; the message is empty whenever the check passes.
//
// Merge and revert commits are always exempt. Types not present in value are
// never checked. A nil value falls back to DefaultSections().
func RequiredSections(commit Commit, polarity Polarity, value RuleValue) (bool, string) {
	return checkSections(commit, polarity, value, func(spec SectionSpec) ([]string, messages) {
		return spec.Required, messages{
			missing:   "%s commits should include: %s",
			forbidden: "%s commits should NOT include: %s",
		}
	})
}

// RecommendedSections mirrors RequiredSections for advisory sections. The
// caller maps a false verdict to a non-blocking warning; the function itself
// has no notion of severity. A type whose recommended list is empty is never
// flagged, under either polarity.
func RecommendedSections(commit Commit, polarity Polarity, value RuleValue) (bool, string) {
	return checkSections(commit, polarity, value, func(spec SectionSpec) ([]string, messages) {
		return spec.Recommended, messages{
			missing:       "%s commits: consider adding: %s",
			forbidden:     "%s commits: consider NOT including: %s",
			skipWhenEmpty: true,
		}
	})
}

// messages holds the format strings for the two failure cases of a check.
type messages struct {
	missing       string // polarity "always", sections absent
	forbidden     string // polarity "never", sections present
	skipWhenEmpty bool   // pass immediately when the section list is empty
}

func checkSections(commit Commit, polarity Polarity, value RuleValue, pick func(SectionSpec) ([]string, messages)) (bool, string) {
	// Merge and revert commits are exempt regardless of polarity or config.
	if commit.Merge || commit.Revert != nil {
		return true, ""
	}

	if value == nil {
		value = DefaultSections()
	}
	entry, ok := value[commit.Type]
	if commit.Type == "" || !ok {
		return true, ""
	}

	sections, msgs := pick(Normalize(entry))
	if msgs.skipWhenEmpty && len(sections) == 0 {
		return true, ""
	}

	missing := MissingSections(commit.Body, sections)
	satisfied := len(missing) == 0

	if polarity == PolarityNever {
		if satisfied {
			return false, fmt.Sprintf(msgs.forbidden, commit.Type, strings.Join(sections, ", "))
		}
		return true, ""
	}

	// Default polarity is "always".
	if !satisfied {
		return false, fmt.Sprintf(msgs.missing, commit.Type, strings.Join(missing, ", "))
	}
	return true, ""
}
