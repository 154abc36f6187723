package rules

import (
	"slices"
	"testing"
)

func TestMissingSections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		expected []string
		want     []string
	}{
		{
			name:     "empty body misses everything",
			body:     "",
			expected: []string{"Why", "Approach"},
			want:     []string{"Why", "Approach"},
		},
		{
			name:     "exact header matches",
			body:     "### Why\nreasons",
			expected: []string{"Why"},
			want:     nil,
		},
		{
			name:     "match is case-insensitive",
			body:     "### WHY\nreasons",
			expected: []string{"why"},
			want:     nil,
		},
		{
			name:     "leading whitespace before hashes is allowed",
			body:     "   \t### Why\nreasons",
			expected: []string{"Why"},
			want:     nil,
		},
		{
			name:     "extra whitespace between hashes and name is allowed",
			body:     "###   \t Why\nreasons",
			expected: []string{"Why"},
			want:     nil,
		},
		{
			name:     "trailing text after the name still matches",
			body:     "### Why (important)\nreasons",
			expected: []string{"Why"},
			want:     nil,
		},
		{
			name:     "mid-line hashes never match",
			body:     "Here's ### Why this matters",
			expected: []string{"Why"},
			want:     []string{"Why"},
		},
		{
			name:     "four hashes do not match",
			body:     "#### Why\nreasons",
			expected: []string{"Why"},
			want:     []string{"Why"},
		},
		{
			name:     "two hashes do not match",
			body:     "## Why\nreasons",
			expected: []string{"Why"},
			want:     []string{"Why"},
		},
		{
			name:     "missing whitespace after hashes does not match",
			body:     "###Why\nreasons",
			expected: []string{"Why"},
			want:     []string{"Why"},
		},
		{
			name:     "order of expected is preserved in the result",
			body:     "### Cause\nc",
			expected: []string{"Why", "Cause", "Approach"},
			want:     []string{"Why", "Approach"},
		},
		{
			name:     "crlf line endings are tolerated",
			body:     "intro\r\n### Why\r\nreasons\r\n",
			expected: []string{"Why"},
			want:     nil,
		},
		{
			name:     "no expected sections yields nothing missing",
			body:     "### Why\nreasons",
			expected: nil,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := MissingSections(tt.body, tt.expected)
			if !slices.Equal(got, tt.want) {
				t.Errorf("MissingSections(%q, %v) = %v, want %v", tt.body, tt.expected, got, tt.want)
			}
		})
	}
}

func TestMissingSectionsDeterministic(t *testing.T) {
	t.Parallel()

	body := "### Why\nr\nplain text\n### Approach\na"
	expected := []string{"Why", "Cause", "Approach"}

	first := MissingSections(body, expected)
	second := MissingSections(body, expected)
	if !slices.Equal(first, second) {
		t.Errorf("repeated calls disagree: %v vs %v", first, second)
	}
}
