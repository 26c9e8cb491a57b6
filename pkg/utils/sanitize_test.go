package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "script stripped",
			in:   `<p>hi</p><script>alert(1)</script>`,
			want: `<p>hi</p>`,
		},
		{
			name: "headings kept",
			in:   `<h1>Title</h1><h3>Sub</h3>`,
			want: `<h1>Title</h1><h3>Sub</h3>`,
		},
		{
			name: "img with https src kept",
			in:   `<img src="https://cdn.example.com/a.png" alt="a">`,
			want: `<img src="https://cdn.example.com/a.png" alt="a">`,
		},
		{
			name: "event handlers dropped",
			in:   `<p onclick="x()">text</p>`,
			want: `<p>text</p>`,
		},
		{
			name: "plain text untouched",
			in:   `plain body text`,
			want: `plain body text`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeHTML(tt.in))
		})
	}
}

func TestSanitizeHTML_JavascriptScheme(t *testing.T) {
	out := SanitizeHTML(`<a href="javascript:alert(1)">x</a>`)
	assert.NotContains(t, out, "javascript:")
	assert.Contains(t, out, "x")
}
