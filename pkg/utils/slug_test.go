package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Trimmed  Title  ", "trimmed-title"},
		{"Go & Gin: A CMS!", "go-gin-a-cms"},
		{"already-a-slug", "already-a-slug"},
		{"Multiple   spaces", "multiple-spaces"},
		{"CAPS and 123", "caps-and-123"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "input %q", tt.in)
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	inputs := []string{"Hello World", "Go & Gin: A CMS!", "x  y--z", "Ünïcode Title"}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "input %q", in)
	}
}

func TestResolveSlug(t *testing.T) {
	assert.Equal(t, "my-slug", ResolveSlug("My-Slug", "ignored title"))
	assert.Equal(t, "from-title", ResolveSlug("", "From Title"))
	assert.Equal(t, "from-title", ResolveSlug("   ", "From Title"))
	assert.Equal(t, "", ResolveSlug("", ""))
}
