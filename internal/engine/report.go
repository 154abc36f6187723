package engine

import "github.com/sectionlint/sectionlint/internal/config"

// Problem is one failed rule evaluation.
type Problem struct {
	Rule     string
	Severity config.Severity
	Message  string
}

// Report collects the problems found in a single commit.
type Report struct {
	Problems []Problem
}

// ErrorCount returns the number of error-severity problems.
func (r Report) ErrorCount() int {
	return r.countBy(config.SeverityError)
}

// WarningCount returns the number of warning-severity problems.
func (r Report) WarningCount() int {
	return r.countBy(config.SeverityWarning)
}

// OK reports whether the commit passed: warnings are advisory, only
// error-severity problems fail the report.
func (r Report) OK() bool {
	return r.ErrorCount() == 0
}

func (r Report) countBy(severity config.Severity) int {
	n := 0
	for _, p := range r.Problems {
		if p.Severity == severity {
			n++
		}
	}
	return n
}
