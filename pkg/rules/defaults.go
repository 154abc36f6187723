package rules

// Default section names used by the built-in configuration.
const (
	SectionWhy      = "Why"
	SectionCause    = "Cause"
	SectionApproach = "Approach"
)

// DefaultSections returns the built-in per-type section expectations. The
// result is a fresh copy on every call; callers needing different defaults
// construct their own RuleValue rather than mutating this one.
func DefaultSections() RuleValue {
	return RuleValue{
		"feat": Sections(SectionSpec{
			Required:    []string{SectionWhy},
			Recommended: []string{SectionApproach},
		}),
		"fix": Sections(SectionSpec{
			Required:    []string{SectionWhy},
			Recommended: []string{SectionCause, SectionApproach},
		}),
		"refactor": Sections(SectionSpec{
			Required: []string{SectionWhy, SectionApproach},
		}),
		"perf": Sections(SectionSpec{
			Recommended: []string{SectionWhy},
		}),
	}
}
