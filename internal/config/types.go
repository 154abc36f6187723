package config

import (
	"github.com/sectionlint/sectionlint/pkg/rules"
)

// Severity classifies how a failed rule is reported.
type Severity string

const (
	// SeverityError makes a failed rule block the commit.
	SeverityError Severity = "error"

	// SeverityWarning reports a failed rule without blocking.
	SeverityWarning Severity = "warning"

	// SeverityOff disables the rule entirely.
	SeverityOff Severity = "off"
)

// Names of the built-in rules, used as keys under "rules" in the
// configuration file.
const (
	RuleRequiredSections    = "required-sections"
	RuleRecommendedSections = "recommended-sections"
)

// Config is the root sectionlint configuration.
type Config struct {
	// Rules maps rule names to severity and polarity overrides.
	Rules map[string]RuleSetting `yaml:"rules,omitempty" json:"rules,omitempty"`

	// Sections maps commit types to their expected body sections. A
	// per-type entry is either a {required, recommended} object or a
	// legacy bare list of required section names.
	Sections rules.RuleValue `yaml:"sections,omitempty" json:"sections,omitempty"`
}

// RuleSetting configures one rule. Empty fields fall back to the rule's
// built-in defaults.
type RuleSetting struct {
	Severity Severity       `yaml:"severity,omitempty" json:"severity,omitempty"`
	When     rules.Polarity `yaml:"when,omitempty" json:"when,omitempty"`
}
