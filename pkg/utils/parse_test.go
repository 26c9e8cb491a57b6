package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStringList(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []string
	}{
		{name: "nil", in: nil, want: nil},
		{name: "comma separated with empties", in: "a, b, ,c", want: []string{"a", "b", "c"}},
		{name: "single value", in: "solo", want: []string{"solo"}},
		{name: "json array string", in: `["x", "y"]`, want: []string{"x", "y"}},
		{name: "any slice", in: []any{"a", " b ", ""}, want: []string{"a", "b"}},
		{name: "empty string", in: "", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStringList("tags", tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStringList_Malformed(t *testing.T) {
	_, err := ParseStringList("tags", "[not json")
	require.Error(t, err)
	assert.Equal(t, "Invalid tags format", err.Error())

	_, err = ParseStringList("tags", 42)
	require.Error(t, err)

	_, err = ParseStringList("tags", []any{"ok", 1})
	require.Error(t, err)
}

func TestParseOrderedList(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []OrderedRef
	}{
		{name: "nil", in: nil, want: nil},
		{
			name: "strings take array index order",
			in:   []any{"id1", "id2"},
			want: []OrderedRef{{ID: "id1", Order: 0}, {ID: "id2", Order: 1}},
		},
		{
			name: "objects with explicit order",
			in: []any{
				map[string]any{"id": "a", "order": 5.0},
				map[string]any{"id": "b"},
			},
			want: []OrderedRef{{ID: "a", Order: 5}, {ID: "b", Order: 1}},
		},
		{
			name: "mediaId alias",
			in:   []any{map[string]any{"mediaId": "m1", "order": 2.0}},
			want: []OrderedRef{{ID: "m1", Order: 2}},
		},
		{
			name: "lone string gets order zero",
			in:   "single",
			want: []OrderedRef{{ID: "single", Order: 0}},
		},
		{
			name: "comma separated string",
			in:   "a, b, ,c",
			want: []OrderedRef{{ID: "a", Order: 0}, {ID: "b", Order: 1}, {ID: "c", Order: 2}},
		},
		{
			name: "bracketed json string",
			in:   `["x", "y"]`,
			want: []OrderedRef{{ID: "x", Order: 0}, {ID: "y", Order: 1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOrderedList("images", tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOrderedList_Malformed(t *testing.T) {
	_, err := ParseOrderedList("images", "[oops")
	require.Error(t, err)
	assert.Equal(t, "Invalid images format", err.Error())

	_, err = ParseOrderedList("images", []any{map[string]any{"order": 1.0}})
	require.Error(t, err)

	_, err = ParseOrderedList("images", 12)
	require.Error(t, err)
}
