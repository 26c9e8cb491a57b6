package utils

import (
	"regexp"
	"strings"
)

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugSpaces   = regexp.MustCompile(`\s+`)
	slugCollapse = regexp.MustCompile(`-{2,}`)
)

// Slugify lowercases and trims the input, drops characters outside word
// chars/whitespace/hyphen, and collapses whitespace runs into single hyphens.
// Idempotent: Slugify(Slugify(x)) == Slugify(x).
func Slugify(s string) string {
	out := strings.ToLower(strings.TrimSpace(s))
	out = slugStrip.ReplaceAllString(out, "")
	out = slugSpaces.ReplaceAllString(strings.TrimSpace(out), "-")
	return slugCollapse.ReplaceAllString(out, "-")
}

// ResolveSlug picks the caller-supplied slug when present, otherwise derives
// one from the fallback title/name. Empty result means the caller must 400.
func ResolveSlug(explicit, fallback string) string {
	if s := strings.TrimSpace(explicit); s != "" {
		return strings.ToLower(s)
	}
	return Slugify(fallback)
}
