// Package content converts post bodies between the formats the CLI reads
// and prints: markdown, rendered HTML and plain text.
package content

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// blockElements end a run of text when flattening HTML.
var blockElements = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "tr": true, "td": true, "th": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "pre": true, "figure": true, "figcaption": true, "hr": true,
}

var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
	),
	goldmark.WithRendererOptions(
		// Post bodies routinely embed raw HTML and Gutenberg block comments.
		html.WithUnsafe(),
	),
)

// Sanitize removes NUL bytes, which WordPress rejects in post fields.
func Sanitize(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}

// MarkdownToHTML renders GitHub flavored markdown to HTML.
func MarkdownToHTML(src string) (string, error) {
	var buf bytes.Buffer

	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}

	return buf.String(), nil
}

// HTMLToMarkdown converts rendered post HTML to markdown. Relative links are
// resolved against baseURL. When conversion fails or produces nothing the
// plain text of the document is returned instead.
func HTMLToMarkdown(htmlContent, baseURL string) string {
	if strings.TrimSpace(htmlContent) == "" {
		return ""
	}

	converter := md.NewConverter(baseURL, true, nil)

	converted, err := converter.ConvertString(htmlContent)
	if err != nil || strings.TrimSpace(converted) == "" {
		return PlainText(htmlContent)
	}

	return strings.TrimSpace(converted)
}

// PlainText extracts the text of an HTML fragment and collapses whitespace.
// Script and style contents are dropped.
func PlainText(htmlContent string) string {
	if htmlContent == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return strings.Join(strings.Fields(htmlContent), " ")
	}

	var b strings.Builder

	collectText(doc.Selection, &b)

	return strings.Join(strings.Fields(b.String()), " ")
}

func collectText(s *goquery.Selection, b *strings.Builder) {
	s.Contents().Each(func(_ int, child *goquery.Selection) {
		name := goquery.NodeName(child)

		switch name {
		case "#text":
			b.WriteString(child.Text())

			return
		case "script", "style", "#comment":
			return
		}

		collectText(child, b)

		if blockElements[name] {
			b.WriteString(" ")
		}
	})
}

// Truncate shortens s to at most n runes, ending with "..." when cut.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	if n <= 3 {
		return string(runes[:n])
	}

	return string(runes[:n-3]) + "..."
}

// Preview flattens rendered HTML and truncates it for table cells.
func Preview(htmlContent string, n int) string {
	return Truncate(PlainText(htmlContent), n)
}
