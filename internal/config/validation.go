package config

import (
	"fmt"

	"github.com/sectionlint/sectionlint/pkg/rules"
)

// Validate checks the configuration for correctness. Malformed section
// shapes are already rejected during decoding; this catches semantic
// problems like unknown severities or blank section names.
func Validate(cfg *Config) error {
	var errs []ValidationError

	for name, setting := range cfg.Rules {
		if name == "" {
			errs = append(errs, ValidationError{
				Field:   "rules",
				Message: "rule name must not be empty",
				Wrapped: ErrInvalidConfig,
			})
		}
		errs = append(errs, validateSetting(name, setting)...)
	}

	errs = append(errs, validateSections(cfg.Sections)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

func validateSetting(name string, setting RuleSetting) []ValidationError {
	var errs []ValidationError

	switch setting.Severity {
	case "", SeverityError, SeverityWarning, SeverityOff:
	default:
		errs = append(errs, ValidationError{
			Field:   fmt.Sprintf("rules.%s.severity", name),
			Message: "must be one of: error, warning, off",
			Value:   string(setting.Severity),
			Wrapped: ErrInvalidConfig,
		})
	}

	switch setting.When {
	case "", rules.PolarityAlways, rules.PolarityNever:
	default:
		errs = append(errs, ValidationError{
			Field:   fmt.Sprintf("rules.%s.when", name),
			Message: "must be one of: always, never",
			Value:   string(setting.When),
			Wrapped: ErrInvalidConfig,
		})
	}

	return errs
}

func validateSections(sections rules.RuleValue) []ValidationError {
	var errs []ValidationError

	for typ, entry := range sections {
		if typ == "" {
			errs = append(errs, ValidationError{
				Field:   "sections",
				Message: "commit type must not be empty",
				Wrapped: ErrInvalidConfig,
			})
			continue
		}

		spec := rules.Normalize(entry)
		for _, list := range [][]string{spec.Required, spec.Recommended} {
			for _, name := range list {
				if name == "" {
					errs = append(errs, ValidationError{
						Field:   fmt.Sprintf("sections.%s", typ),
						Message: "section name must not be empty",
						Wrapped: ErrInvalidConfig,
					})
				}
			}
		}
	}

	return errs
}
