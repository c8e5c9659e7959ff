package store

import "strings"

// TaskFilter is the predicate a TaskStore applies when counting and listing
// tasks. The zero value matches every task.
//
// Term is the literal, already sanitized search text. Pattern is the same
// text prepared for SQL LIKE matching with its wildcards escaped using a
// backslash; engines that do plain substring matching ignore it.
type TaskFilter struct {
	Term    string
	Pattern string
}

// MatchesAll reports whether the filter places no restriction on tasks.
func (f TaskFilter) MatchesAll() bool {
	return f.Term == ""
}

// Matches evaluates the predicate against a task's free-text fields:
// a case-insensitive substring match on title or description.
func (f TaskFilter) Matches(title, description string) bool {
	if f.MatchesAll() {
		return true
	}

	term := strings.ToLower(f.Term)
	return strings.Contains(strings.ToLower(title), term) ||
		strings.Contains(strings.ToLower(description), term)
}
