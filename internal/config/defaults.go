package config

import (
	"github.com/sectionlint/sectionlint/pkg/rules"
)

// NewDefaultConfig returns a Config with the built-in rule settings and
// section expectations. The result is a fresh value on every call.
func NewDefaultConfig() *Config {
	return &Config{
		Rules: map[string]RuleSetting{
			RuleRequiredSections:    {Severity: SeverityError, When: rules.PolarityAlways},
			RuleRecommendedSections: {Severity: SeverityWarning, When: rules.PolarityAlways},
		},
		Sections: rules.DefaultSections(),
	}
}
