// Package query builds list-endpoint filtering, pagination and sorting from
// raw query-string input. Everything here is pure and falls back to defaults
// on malformed input instead of failing.
package query

import (
	"strconv"
	"strings"
)

// Spec declares one entity's listing behavior: which columns free-text search
// touches, which sort fields are allowed, and the paging bounds.
type Spec struct {
	SearchColumns []string          // columns OR-combined for the search param
	SortFields    map[string]string // api field -> column
	DefaultSort   string            // api field used when sortBy is absent/unknown
	DefaultOrder  string            // "asc" or "desc"
	DefaultLimit  int
	MaxLimit      int
	FeaturedFirst bool // prepend is_featured desc tie-break
}

// Page is a parsed page/limit pair with the derived row offset.
type Page struct {
	Page   int
	Limit  int
	Offset int
}

// Meta is the pagination block of the list response envelope.
type Meta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// ParsePage floors page to 1 and clamps limit to [1, MaxLimit], defaulting
// to DefaultLimit on missing or non-numeric input.
func (s Spec) ParsePage(pageStr, limitStr string) Page {
	page, err := strconv.Atoi(strings.TrimSpace(pageStr))
	if err != nil || page < 1 {
		page = 1
	}
	limit := s.DefaultLimit
	if limit <= 0 {
		limit = 10
	}
	if n, err := strconv.Atoi(strings.TrimSpace(limitStr)); err == nil {
		limit = n
	}
	max := s.MaxLimit
	if max <= 0 {
		max = 100
	}
	if limit < 1 {
		limit = 1
	}
	if limit > max {
		limit = max
	}
	return Page{Page: page, Limit: limit, Offset: (page - 1) * limit}
}

// OrderClause validates sortBy against the allow-list and returns a SQL
// ORDER BY expression, falling back to the entity default.
func (s Spec) OrderClause(sortBy, order string) string {
	col, ok := s.SortFields[strings.TrimSpace(sortBy)]
	if !ok {
		col = s.SortFields[s.DefaultSort]
		if col == "" {
			col = "created_at"
		}
	}
	dir := strings.ToLower(strings.TrimSpace(order))
	if dir != "asc" && dir != "desc" {
		dir = s.DefaultOrder
		if dir == "" {
			dir = "desc"
		}
	}
	clause := col + " " + dir
	if s.FeaturedFirst {
		clause = "is_featured desc, " + clause
	}
	return clause
}

// SearchClause produces a case-insensitive OR match across SearchColumns.
// Empty term or no columns yields an empty condition.
func (s Spec) SearchClause(term string) (string, []any) {
	term = strings.TrimSpace(term)
	if term == "" || len(s.SearchColumns) == 0 {
		return "", nil
	}
	like := "%" + strings.ToLower(term) + "%"
	parts := make([]string, len(s.SearchColumns))
	args := make([]any, len(s.SearchColumns))
	for i, col := range s.SearchColumns {
		parts[i] = "LOWER(" + col + ") LIKE ?"
		args[i] = like
	}
	return "(" + strings.Join(parts, " OR ") + ")", args
}

// NewMeta computes totalPages = ceil(total/limit).
func NewMeta(total int64, p Page) Meta {
	pages := 0
	if p.Limit > 0 {
		pages = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}
	return Meta{Total: total, Page: p.Page, Limit: p.Limit, TotalPages: pages}
}

// ParseBool parses the literal strings "true"/"false"; anything else returns
// (false, false) so callers skip the filter.
func ParseBool(s string) (val, ok bool) {
	switch strings.TrimSpace(s) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}
