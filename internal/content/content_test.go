package content_test

import (
	"strings"
	"testing"

	"github.com/fivetwenty-io/wpclient/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "<p>ab</p>", content.Sanitize("<p>a\x00b</p>\x00"))
	assert.Equal(t, "plain", content.Sanitize("plain"))
}

func TestMarkdownToHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		contains []string
	}{
		{"heading and emphasis", "# Hello\n\n**World**", []string{"<h1>Hello</h1>", "<strong>World</strong>"}},
		{"gfm table", "| a | b |\n|---|---|\n| 1 | 2 |", []string{"<table>", "<td>1</td>"}},
		{"strikethrough", "~~gone~~", []string{"<del>gone</del>"}},
		{"raw html passes through", "<!-- wp:paragraph -->\n<p class=\"x\">hi</p>\n<!-- /wp:paragraph -->", []string{`<p class="x">hi</p>`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := content.MarkdownToHTML(tt.input)
			require.NoError(t, err)

			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestHTMLToMarkdown(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Hello **World**", content.HTMLToMarkdown("<p>Hello <strong>World</strong></p>", ""))
	assert.Equal(t, "## Title", content.HTMLToMarkdown("<h2>Title</h2>", ""))
	link := content.HTMLToMarkdown(`<p><a href="https://example.com/about">About</a></p>`, "https://example.com")
	assert.Equal(t, "[About](https://example.com/about)", link)
	assert.Empty(t, content.HTMLToMarkdown("  ", ""))
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"<p>Hello</p><p>World</p>", "Hello World"},
		{"<p>Fish &amp; chips</p>", "Fish & chips"},
		{"<div>one<br>two</div>", "one two"},
		{"<p>text</p><script>alert(1)</script><style>p{}</style>", "text"},
		{"  spaced\n\n out  ", "spaced out"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, content.PlainText(tt.input), tt.input)
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", content.Truncate("short", 10))
	assert.Equal(t, "exactly10!", content.Truncate("exactly10!", 10))
	assert.Equal(t, "Hello W...", content.Truncate("Hello World!", 10))
	assert.Equal(t, "ab", content.Truncate("abcdef", 2))
	assert.Empty(t, content.Truncate("abcdef", 0))
	assert.Empty(t, content.Truncate("abcdef", -1))

	// Multi-byte runes are never split.
	out := content.Truncate(strings.Repeat("é", 20), 8)
	assert.Equal(t, strings.Repeat("é", 5)+"...", out)
}

func TestPreview(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Hello brave...", content.Preview("<p>Hello <em>brave</em> new world</p>", 14))
}
