package web

import (
	"bytes"
	_ "embed"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

//go:embed content/tips.md
var tipsMarkdown string

var (
	mdRenderer    goldmark.Markdown
	htmlSanitizer *bluemonday.Policy
	textSanitizer *bluemonday.Policy
)

func init() {
	mdRenderer = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(goldmarkhtml.WithUnsafe()),
	)

	htmlSanitizer = bluemonday.UGCPolicy()
	textSanitizer = bluemonday.StrictPolicy()
}

// RenderMarkdown converts a markdown string to sanitized HTML.
// Returns empty string for empty input.
func RenderMarkdown(src string) string {
	if src == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(src), &buf); err != nil {
		return htmlSanitizer.Sanitize(src)
	}

	return htmlSanitizer.Sanitize(buf.String())
}

// StripMarkup removes every HTML tag from user-entered text and returns plain
// text. Entities the strict policy escapes are decoded again because templ
// escapes on output.
func StripMarkup(s string) string {
	if !strings.ContainsAny(s, "<>&") {
		return s
	}
	return html.UnescapeString(textSanitizer.Sanitize(s))
}
