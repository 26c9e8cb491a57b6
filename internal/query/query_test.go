package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePage_Clamping(t *testing.T) {
	spec := Spec{DefaultLimit: 10, MaxLimit: 100}

	tests := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
	}{
		{name: "defaults", page: "", limit: "", wantPage: 1, wantLimit: 10},
		{name: "normal", page: "3", limit: "25", wantPage: 3, wantLimit: 25},
		{name: "negative page floors to 1", page: "-4", limit: "10", wantPage: 1, wantLimit: 10},
		{name: "zero page floors to 1", page: "0", limit: "10", wantPage: 1, wantLimit: 10},
		{name: "non-numeric page", page: "abc", limit: "10", wantPage: 1, wantLimit: 10},
		{name: "oversized limit clamps to max", page: "1", limit: "9999", wantPage: 1, wantLimit: 100},
		{name: "zero limit clamps to 1", page: "1", limit: "0", wantPage: 1, wantLimit: 1},
		{name: "negative limit clamps to 1", page: "1", limit: "-5", wantPage: 1, wantLimit: 1},
		{name: "non-numeric limit uses default", page: "1", limit: "x", wantPage: 1, wantLimit: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := spec.ParsePage(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
			assert.Equal(t, (tt.wantPage-1)*tt.wantLimit, p.Offset)
		})
	}
}

func TestParsePage_PublicBound(t *testing.T) {
	p := PublicArticleSpec.ParsePage("1", "200")
	assert.Equal(t, 50, p.Limit)
}

func TestOrderClause(t *testing.T) {
	spec := Spec{
		SortFields:   map[string]string{"createdAt": "created_at", "title": "title"},
		DefaultSort:  "createdAt",
		DefaultOrder: "desc",
	}

	assert.Equal(t, "title asc", spec.OrderClause("title", "asc"))
	assert.Equal(t, "created_at desc", spec.OrderClause("", ""))
	assert.Equal(t, "created_at desc", spec.OrderClause("nope", ""))
	assert.Equal(t, "created_at desc", spec.OrderClause("createdAt", "sideways"))

	// SQL injection attempts fall back to the default column.
	assert.Equal(t, "created_at desc", spec.OrderClause("title; DROP TABLE users", ""))
}

func TestOrderClause_FeaturedFirst(t *testing.T) {
	got := PublicArticleSpec.OrderClause("", "")
	assert.Equal(t, "is_featured desc, published_at desc", got)

	got = PublicArticleSpec.OrderClause("title", "asc")
	assert.Equal(t, "is_featured desc, title asc", got)
}

func TestSearchClause(t *testing.T) {
	spec := Spec{SearchColumns: []string{"title", "excerpt"}}

	cond, args := spec.SearchClause("  Cloud  ")
	assert.Equal(t, "(LOWER(title) LIKE ? OR LOWER(excerpt) LIKE ?)", cond)
	assert.Equal(t, []any{"%cloud%", "%cloud%"}, args)

	cond, args = spec.SearchClause("")
	assert.Empty(t, cond)
	assert.Nil(t, args)
}

func TestNewMeta(t *testing.T) {
	m := NewMeta(12, Page{Page: 2, Limit: 5})
	assert.Equal(t, int64(12), m.Total)
	assert.Equal(t, 3, m.TotalPages)

	m = NewMeta(0, Page{Page: 1, Limit: 10})
	assert.Equal(t, 0, m.TotalPages)

	m = NewMeta(10, Page{Page: 1, Limit: 10})
	assert.Equal(t, 1, m.TotalPages)
}

func TestParseBool(t *testing.T) {
	v, ok := ParseBool("true")
	assert.True(t, v)
	assert.True(t, ok)

	v, ok = ParseBool("false")
	assert.False(t, v)
	assert.True(t, ok)

	for _, in := range []string{"", "1", "TRUE", "yes", "nope"} {
		_, ok = ParseBool(in)
		assert.False(t, ok, "input %q", in)
	}
}
