package services

import (
	"github.com/microcosm-cc/bluemonday"
)

type Sanitizer interface {
	Clean(html string) string
}

type htmlSanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer builds the whitelist policy applied to perex and content
// before every article write. Disallowed tags are dropped while their
// text content is kept, except script and style whose content is
// skipped entirely.
func NewSanitizer() Sanitizer {
	p := bluemonday.NewPolicy()

	p.AllowElements("b", "strong", "i", "em", "u", "mark", "br", "p", "ul", "ol", "li")
	p.AllowAttrs("href", "target", "rel", "title").OnElements("a")
	p.AllowAttrs("src", "alt", "style", "title").OnElements("img")
	p.AllowAttrs("style").OnElements("span")
	p.AllowStyles("color", "background-color", "font-size", "text-align", "width", "height").
		OnElements("span", "img")

	// http/https links only; relative src for uploaded images
	p.AllowURLSchemes("http", "https")
	p.AllowRelativeURLs(true)

	p.SkipElementsContent("script", "style")

	return &htmlSanitizer{policy: p}
}

func (s *htmlSanitizer) Clean(html string) string {
	return s.policy.Sanitize(html)
}
