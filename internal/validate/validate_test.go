package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleRules_FailFast(t *testing.T) {
	// Both title and content are missing; fail-fast reports only the first.
	errs := ArticleRules.Validate(map[string]any{}, false)
	require.Len(t, errs, 1)
	assert.Equal(t, "Title is required", errs[0])
}

func TestArticleRules_UpdateSkipsRequired(t *testing.T) {
	errs := ArticleRules.Validate(map[string]any{"excerpt": "short"}, true)
	assert.Empty(t, errs)
}

func TestArticleRules_StatusEnum(t *testing.T) {
	payload := map[string]any{
		"title":   "A title",
		"content": "Body",
		"status":  "live",
	}
	errs := ArticleRules.Validate(payload, false)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Status must be one of")
}

func TestBannerRules_Aggregates(t *testing.T) {
	payload := map[string]any{
		"backgroundColor": "red",
		"status":          "paused",
		"order":           -1.0,
	}
	errs := BannerRules.Validate(payload, false)
	// name missing + bad color + bad status + negative order, all reported.
	require.Len(t, errs, 4)
	assert.Equal(t, "Name is required", errs[0])
	assert.Contains(t, errs[1], "hex color")
	assert.Contains(t, errs[2], "Status must be one of")
	assert.Contains(t, errs[3], "non-negative integer")
}

func TestHexColor(t *testing.T) {
	rule := RuleSet{Rules: []Rule{{Field: "backgroundColor", Label: "Background color", HexColor: true}}}

	for _, ok := range []string{"#fff", "#FFFFFF", "#1a2B3c"} {
		assert.Empty(t, rule.Validate(map[string]any{"backgroundColor": ok}, false), ok)
	}
	for _, bad := range []string{"fff", "#ffff", "#gggggg", "#12345"} {
		assert.NotEmpty(t, rule.Validate(map[string]any{"backgroundColor": bad}, false), bad)
	}
}

func TestSlugCharset(t *testing.T) {
	rule := RuleSet{Rules: []Rule{{Field: "slug", Label: "Slug", Slug: true}}}

	assert.Empty(t, rule.Validate(map[string]any{"slug": "my-page-2"}, false))
	assert.NotEmpty(t, rule.Validate(map[string]any{"slug": "My Page"}, false))
	assert.NotEmpty(t, rule.Validate(map[string]any{"slug": "page_one"}, false))
}

func TestKeywords(t *testing.T) {
	rule := RuleSet{Rules: []Rule{{Field: "seoKeywords", Label: "SEO keywords", Keywords: true}}}

	ok := []any{"go", "cms"}
	assert.Empty(t, rule.Validate(map[string]any{"seoKeywords": ok}, false))

	tooMany := make([]any, 11)
	for i := range tooMany {
		tooMany[i] = "k"
	}
	errs := rule.Validate(map[string]any{"seoKeywords": tooMany}, false)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "at most 10 entries")

	long := []any{strings.Repeat("x", 51)}
	errs = rule.Validate(map[string]any{"seoKeywords": long}, false)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "at most 50 characters")

	errs = rule.Validate(map[string]any{"seoKeywords": "not-an-array"}, false)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "must be an array")
}

func TestOutcomes(t *testing.T) {
	rule := RuleSet{Rules: []Rule{{Field: "outcomes", Label: "Outcomes", Outcomes: true}}}

	ok := []any{map[string]any{"metric": "conversion", "value": "+40%"}}
	assert.Empty(t, rule.Validate(map[string]any{"outcomes": ok}, false))

	missing := []any{map[string]any{"metric": "conversion"}}
	errs := rule.Validate(map[string]any{"outcomes": missing}, false)
	require.Len(t, errs, 1)
	assert.Equal(t, "Each outcome must include a metric and a value", errs[0])
}

func TestMaxLen(t *testing.T) {
	payload := map[string]any{
		"title":     "ok",
		"content":   "ok",
		"metaTitle": strings.Repeat("x", 61),
	}
	errs := ArticleRules.Validate(payload, false)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Meta title must be at most 60 characters")
}

func TestTypeMismatch(t *testing.T) {
	payload := map[string]any{"name": "Cloud", "active": "yes"}
	errs := TaxonomyRules.Validate(payload, false)
	require.Len(t, errs, 1)
	assert.Equal(t, "Active must be a boolean", errs[0])
}

func TestStringValuesFailTypedRules(t *testing.T) {
	// Typed rules must reject string payloads instead of skipping the check.
	cases := []struct {
		name    string
		payload map[string]any
		want    string
	}{
		{"bool gets string", map[string]any{"name": "Cloud", "active": "yes"}, "Active must be a boolean"},
		{"nonneg gets string", map[string]any{"name": "Cloud", "order": "-5"}, "Order must be a non-negative integer"},
		{"keywords gets string", map[string]any{"name": "Cloud", "seoKeywords": "go,cms"}, "SEO keywords must be an array"},
	}
	rules := RuleSet{Rules: []Rule{
		{Field: "name", Label: "Name", Required: true, NotBlank: true},
		{Field: "active", Label: "Active", Bool: true},
		{Field: "order", Label: "Order", NonNeg: true},
		{Field: "seoKeywords", Label: "SEO keywords", Keywords: true},
	}}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := rules.Validate(tc.payload, false)
			require.Len(t, errs, 1)
			assert.Equal(t, tc.want, errs[0])
		})
	}
}

func TestNumericValueFailsStringRule(t *testing.T) {
	rule := RuleSet{Rules: []Rule{{Field: "title", Label: "Title", NotBlank: true, MaxLen: 255}}}
	errs := rule.Validate(map[string]any{"title": 42.0}, false)
	require.Len(t, errs, 1)
	assert.Equal(t, "Title must be a string", errs[0])
}

func TestKeywordEntryLengthCountsRunes(t *testing.T) {
	rule := RuleSet{Rules: []Rule{{Field: "seoKeywords", Label: "SEO keywords", Keywords: true}}}

	// 50 two-byte runes stay within the limit; 51 exceed it.
	assert.Empty(t, rule.Validate(map[string]any{"seoKeywords": []any{strings.Repeat("ü", 50)}}, false))

	errs := rule.Validate(map[string]any{"seoKeywords": []any{strings.Repeat("ü", 51)}}, false)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "at most 50 characters")
}
