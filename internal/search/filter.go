// Package search turns the raw search text of a task listing request into the
// store-level predicate used to count and page through tasks.
package search

import (
	"strings"

	"github.com/phrazzld/taskboard-api/internal/sanitize"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// likeEscaper escapes the characters SQL LIKE treats specially. Replacement
// is a single pass, so inserted backslashes are never escaped twice.
var likeEscaper = strings.NewReplacer(
	`\`, `\\`,
	`%`, `\%`,
	`_`, `\_`,
)

// BuildFilter sanitizes rawSearch and builds a case-insensitive substring
// predicate over task title or description. An empty term after sanitizing
// yields a filter that matches every task.
func BuildFilter(rawSearch string) store.TaskFilter {
	term := sanitize.Text(rawSearch)
	if term == "" {
		return store.TaskFilter{}
	}

	return store.TaskFilter{
		Term:    term,
		Pattern: "%" + EscapeLike(term) + "%",
	}
}

// EscapeLike escapes LIKE wildcards in s so it matches only literally when
// used with ESCAPE '\'.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}
