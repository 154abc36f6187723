package rules

import "strings"

// MissingSections returns the names from expected for which body contains no
// matching section header, preserving the order of expected. A header line
// starts, after optional leading whitespace, with exactly three '#'
// characters, whitespace, then the section name (case-insensitive). The
// match is not anchored to end of line, so "### Why (important)" matches the
// name "Why"; a "###" preceded by other text on the same line never counts.
// An empty body reports every expected name missing.
func MissingSections(body string, expected []string) []string {
	var missing []string
	for _, name := range expected {
		if !hasSectionHeader(body, name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// hasSectionHeader scans body line by line for a "### <name>" header.
func hasSectionHeader(body, name string) bool {
	if body == "" || name == "" {
		return false
	}
	for _, line := range strings.Split(body, "\n") {
		rest := strings.TrimLeft(line, " \t\r")
		if !strings.HasPrefix(rest, "###") {
			continue
		}
		rest = rest[len("###"):]
		// Whitespace must follow the hashes; this also rejects "####".
		if rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
			continue
		}
		rest = strings.TrimLeft(rest, " \t")
		if len(rest) >= len(name) && strings.EqualFold(rest[:len(name)], name) {
			return true
		}
	}
	return false
}
