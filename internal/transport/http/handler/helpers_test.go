package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketing-cms/internal/validate"
	"marketing-cms/pkg/utils"
)

func TestStrField(t *testing.T) {
	m := map[string]any{"a": "x", "b": 1}

	v, ok := strField(m, "a")
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	_, ok = strField(m, "b")
	assert.False(t, ok)

	_, ok = strField(m, "missing")
	assert.False(t, ok)
}

func TestTimeField(t *testing.T) {
	m := map[string]any{
		"good":   "2026-03-01T10:00:00Z",
		"bad":    "yesterday",
		"notStr": 5,
		"nulled": nil,
	}

	v, present, valid := timeField(m, "good")
	require.True(t, present)
	require.True(t, valid)
	assert.Equal(t, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), v.UTC())

	_, present, valid = timeField(m, "bad")
	assert.True(t, present)
	assert.False(t, valid)

	_, present, valid = timeField(m, "notStr")
	assert.True(t, present)
	assert.False(t, valid)

	// Explicit null is present and valid with a nil time, so updates can
	// clear a previously set timestamp.
	v, present, valid = timeField(m, "nulled")
	assert.True(t, present)
	assert.True(t, valid)
	assert.Nil(t, v)

	_, present, _ = timeField(m, "absent")
	assert.False(t, present)
}

func TestNormalizeSlugField(t *testing.T) {
	// A mixed-case padded slug normalizes before validation instead of
	// failing the charset rule.
	m := map[string]any{"title": "My Post", "content": "Body", "slug": "  My-Post "}
	normalizeSlugField(m)
	assert.Equal(t, "my-post", m["slug"])
	assert.Empty(t, validate.ArticleRules.Validate(m, false))

	raw, _ := strField(m, "slug")
	assert.Equal(t, "my-post", utils.ResolveSlug(raw, "My Post"))

	// Non-string slugs are left for the validator to reject.
	bad := map[string]any{"slug": 7.0}
	normalizeSlugField(bad)
	assert.Equal(t, 7.0, bad["slug"])

	empty := map[string]any{}
	normalizeSlugField(empty)
	_, present := empty["slug"]
	assert.False(t, present)
}

func TestNullableStrField(t *testing.T) {
	m := map[string]any{"set": "v", "cleared": nil}

	v, present := nullableStrField(m, "set")
	require.True(t, present)
	require.NotNil(t, v)
	assert.Equal(t, "v", *v)

	v, present = nullableStrField(m, "cleared")
	assert.True(t, present)
	assert.Nil(t, v)

	_, present = nullableStrField(m, "absent")
	assert.False(t, present)
}
