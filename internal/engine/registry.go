// Package engine runs the section rules against parsed commits and maps
// rule verdicts to configured severities. It is the host side of the rule
// functions in pkg/rules: rules stay pure, the engine owns registration,
// ordering, and severity semantics.
package engine

import (
	"log/slog"

	"github.com/sectionlint/sectionlint/internal/config"
	"github.com/sectionlint/sectionlint/pkg/rules"
)

// RuleFunc is the contract every registered rule satisfies: it receives the
// parsed commit, the effective polarity, and the section configuration, and
// returns a verdict plus a diagnostic message (empty on a clean pass).
type RuleFunc func(commit rules.Commit, polarity rules.Polarity, value rules.RuleValue) (bool, string)

// Rule couples a named check with its default severity and polarity. Both
// defaults can be overridden per rule name in the configuration file.
type Rule struct {
	Name     string
	Severity config.Severity
	Polarity rules.Polarity
	Check    RuleFunc
}

// Registry holds the registered rules in registration order. It is not safe
// for concurrent mutation; build it once, then Run freely from any
// goroutine.
type Registry struct {
	order []string
	rules map[string]Rule
}

// NewRegistry returns a Registry with the two built-in rules registered:
// required-sections (error) and recommended-sections (warning).
func NewRegistry() *Registry {
	r := &Registry{rules: make(map[string]Rule)}
	r.Register(Rule{
		Name:     config.RuleRequiredSections,
		Severity: config.SeverityError,
		Polarity: rules.PolarityAlways,
		Check:    rules.RequiredSections,
	})
	r.Register(Rule{
		Name:     config.RuleRecommendedSections,
		Severity: config.SeverityWarning,
		Polarity: rules.PolarityAlways,
		Check:    rules.RecommendedSections,
	})
	return r
}

// Register adds a rule. Registering an existing name replaces the earlier
// rule but keeps its position.
func (r *Registry) Register(rule Rule) {
	if _, exists := r.rules[rule.Name]; !exists {
		r.order = append(r.order, rule.Name)
	}
	r.rules[rule.Name] = rule
	slog.Debug("rule registered", "rule", rule.Name, "severity", string(rule.Severity))
}

// Rules returns the registered rules in registration order.
func (r *Registry) Rules() []Rule {
	out := make([]Rule, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.rules[name])
	}
	return out
}

// Run evaluates every registered rule against the commit and collects the
// failures. Rules configured "off" are skipped; a nil cfg runs the built-in
// defaults.
func (r *Registry) Run(commit rules.Commit, cfg *config.Config) Report {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}

	var report Report
	for _, name := range r.order {
		rule := r.rules[name]
		severity, polarity := effective(rule, cfg.Rules[name])
		if severity == config.SeverityOff {
			slog.Debug("rule disabled", "rule", name)
			continue
		}

		ok, msg := rule.Check(commit, polarity, cfg.Sections)
		slog.Debug("rule evaluated", "rule", name, "ok", ok)
		if !ok {
			report.Problems = append(report.Problems, Problem{
				Rule:     name,
				Severity: severity,
				Message:  msg,
			})
		}
	}
	return report
}

// effective resolves the rule's severity and polarity against its
// configured overrides.
func effective(rule Rule, setting config.RuleSetting) (config.Severity, rules.Polarity) {
	severity := rule.Severity
	if setting.Severity != "" {
		severity = setting.Severity
	}
	polarity := rule.Polarity
	if setting.When != "" {
		polarity = setting.When
	}
	return severity, polarity
}
