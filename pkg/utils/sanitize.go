package utils

import "github.com/microcosm-cc/bluemonday"

// htmlPolicy allow-lists the tags used by the rich-text editor on top of the
// UGC defaults. Disallowed tags are stripped, not escaped.
var htmlPolicy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("h1", "h2", "h3", "h4", "h5", "h6", "img", "span")
	p.AllowAttrs("src", "alt", "width", "height").OnElements("img")
	p.AllowAttrs("style", "class").OnElements("span")
	p.AllowURLSchemes("http", "https", "data")
	return p
}()

// SanitizeHTML cleans rich-text body fields (article content, event
// description) before persistence.
func SanitizeHTML(s string) string {
	return htmlPolicy.Sanitize(s)
}
