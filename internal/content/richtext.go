package content

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Rich text arrives in two representations: Markdown from the admin forms
// and pre-rendered HTML from the CMS. Both are normalized here, once, at the
// mapping boundary; rendering components only ever see sanitized HTML.

var (
	md = goldmark.New(goldmark.WithExtensions(extension.GFM))

	sanitizer = bluemonday.UGCPolicy().
			AllowAttrs("class").OnElements("p", "span", "div", "ul", "ol", "li", "h1", "h2", "h3", "h4")
)

// NormalizeRichText converts a Markdown or HTML fragment into sanitized
// HTML. Empty input yields "", never an error.
func NormalizeRichText(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if !looksLikeHTML(s) {
		var buf bytes.Buffer
		if err := md.Convert([]byte(s), &buf); err == nil {
			s = buf.String()
		}
	}
	return sanitizer.Sanitize(s)
}

func looksLikeHTML(s string) bool {
	i := strings.IndexByte(s, '<')
	if i < 0 {
		return false
	}
	rest := s[i+1:]
	return rest != "" && (isAlpha(rest[0]) || rest[0] == '/')
}

func isAlpha(b byte) bool { return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') }
