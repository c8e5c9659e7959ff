// Package pagination computes the page window shown for a listing request.
// Out-of-range input is clamped, never rejected: a client always gets a valid
// page, and an empty collection still reports "page 1 of 1".
package pagination

import (
	"errors"
	"strconv"
	"strings"
)

// Window is the clamped page a listing returns.
type Window struct {
	CurrentPage int
	TotalPages  int
	Offset      int
	Limit       int
}

// Meta is the pagination block included in listing responses.
type Meta struct {
	TotalItems  int `json:"totalItems"`
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	PageSize    int `json:"pageSize"`
}

// Paginate clamps requestedPage and pageSize to at least 1 and computes the
// window for totalItems. Pages past the end clamp to the last page.
func Paginate(requestedPage, pageSize, totalItems int) Window {
	page := max(requestedPage, 1)
	size := max(pageSize, 1)
	total := max(totalItems, 0)

	totalPages := max((total+size-1)/size, 1)
	current := min(page, totalPages)

	return Window{
		CurrentPage: current,
		TotalPages:  totalPages,
		Offset:      (current - 1) * size,
		Limit:       size,
	}
}

// Meta builds the response block for this window.
func (w Window) Meta(totalItems int) Meta {
	return Meta{
		TotalItems:  totalItems,
		CurrentPage: w.CurrentPage,
		TotalPages:  w.TotalPages,
		PageSize:    w.Limit,
	}
}

// ParseQueryInt reads an integer query parameter from its leading digits, so
// "2abc" and "2.5" both read as 2. Missing, non-numeric and zero values yield
// def; anything else, negative numbers included, is returned for Paginate to
// clamp. Values past the int range saturate.
func ParseQueryInt(raw string, def int) int {
	value, err := strconv.Atoi(leadingInteger(strings.TrimSpace(raw)))
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return def
	}
	if value == 0 {
		return def
	}
	return value
}

// leadingInteger returns the optional sign and the run of ASCII digits that
// start s.
func leadingInteger(s string) string {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return ""
	}
	return s[:end]
}
