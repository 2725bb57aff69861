// Package richtext converts CMS message bodies between the forms the viewers
// need: line-broken HTML for browsers and plain text for terminals and the
// clipboard.
package richtext

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

var (
	policy     = bluemonday.UGCPolicy()
	blankLines = regexp.MustCompile(`\n{3,}`)
	lineSpaces = regexp.MustCompile(`[ \t]+\n`)
)

// NormalizeNewlines turns CRLF line ends into <br> tags
func NormalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "<br>")
}

// Sanitize strips anything a browser could execute from a message body
func Sanitize(body string) string {
	return policy.Sanitize(body)
}

// PlainText renders a message body as plain text.
// <br> and the end of block elements become line breaks; entities are decoded.
func PlainText(body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return strings.TrimSpace(body)
	}

	doc.Find("script, style").Remove()
	doc.Find("br").Each(func(_ int, s *goquery.Selection) {
		s.ReplaceWithNodes(newline())
	})
	doc.Find("p, div, li, h1, h2, h3, h4, h5, h6, tr").Each(func(_ int, s *goquery.Selection) {
		s.AppendNodes(newline())
	})

	text := doc.Text()
	text = strings.ReplaceAll(text, "\u00a0", " ")
	text = lineSpaces.ReplaceAllString(text, "\n")
	text = blankLines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

func newline() *html.Node {
	return &html.Node{Type: html.TextNode, Data: "\n"}
}

// Excerpt returns the first line of the plain text, cut to limit runes
func Excerpt(body string, limit int) string {
	text := PlainText(body)
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	runes := []rune(text)
	if limit > 3 && len(runes) > limit {
		return string(runes[:limit-3]) + "..."
	}
	return text
}
