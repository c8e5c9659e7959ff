package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskFilterMatches(t *testing.T) {
	tests := []struct {
		name        string
		filter      TaskFilter
		title       string
		description string
		expected    bool
	}{
		{
			name:     "zero filter matches everything",
			filter:   TaskFilter{},
			title:    "anything",
			expected: true,
		},
		{
			name:        "case-insensitive title match",
			filter:      TaskFilter{Term: "REPORT"},
			title:       "Write report",
			description: "numbers",
			expected:    true,
		},
		{
			name:        "description match",
			filter:      TaskFilter{Term: "numb"},
			title:       "Write report",
			description: "Quarterly Numbers",
			expected:    true,
		},
		{
			name:        "no match",
			filter:      TaskFilter{Term: "invoice"},
			title:       "Write report",
			description: "Quarterly numbers",
			expected:    false,
		},
		{
			name:        "metacharacters are literal",
			filter:      TaskFilter{Term: "a.b*c"},
			title:       "axbbbc",
			description: "a-b-c",
			expected:    false,
		},
		{
			name:        "literal metacharacters match",
			filter:      TaskFilter{Term: "a.b*c"},
			title:       "see a.b*c here",
			description: "",
			expected:    true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.filter.Matches(tc.title, tc.description))
		})
	}
}

func TestTaskFilterMatchesAll(t *testing.T) {
	assert.True(t, TaskFilter{}.MatchesAll())
	assert.False(t, TaskFilter{Term: "x", Pattern: "%x%"}.MatchesAll())
}
