package formatter

import (
	"strings"

	"golang.org/x/net/html"
)

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// stripTags drops tags, comments and doctypes and keeps the text of every
// element, script and style included. Text is copied raw: character
// references in the input are not decoded.
func stripTags(raw string) string {
	if !strings.Contains(raw, "<") {
		return raw
	}

	z := html.NewTokenizer(strings.NewReader(raw))
	var b strings.Builder
	b.Grow(len(raw))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Raw())
		}
	}
}

// escapeText encodes the markup characters and double quotes. Single quotes
// and multi-byte text pass through; invalid UTF-8 becomes U+FFFD.
func escapeText(text string) string {
	return textEscaper.Replace(strings.ToValidUTF8(text, "\uFFFD"))
}
