package services_test

import (
	"testing"

	"redakce-cms/services"

	"github.com/stretchr/testify/assert"
)

func TestSanitizerAllowedTagsRoundTrip(t *testing.T) {
	s := services.NewSanitizer()

	cases := []string{
		"<b>tučné</b>",
		"<i>kurzíva</i>",
		"<u>podtržené</u>",
		"<mark>zvýrazněné</mark>",
		"<p>odstavec</p>",
		"<ul><li>jedna</li><li>dvě</li></ul>",
		"<ol><li>první</li></ol>",
		"řádek<br/>zlom",
	}
	for _, html := range cases {
		assert.Equal(t, html, s.Clean(html))
	}
}

func TestSanitizerStripsScript(t *testing.T) {
	s := services.NewSanitizer()

	out := s.Clean(`<p>ahoj</p><script>alert("x")</script>`)
	assert.Equal(t, "<p>ahoj</p>", out)
	assert.NotContains(t, out, "script")
	assert.NotContains(t, out, "alert")
}

func TestSanitizerUnwrapsDisallowedTagKeepingText(t *testing.T) {
	s := services.NewSanitizer()

	assert.Equal(t, "nadpis", s.Clean("<h1>nadpis</h1>"))
	assert.Equal(t, "obsah", s.Clean("<div>obsah</div>"))
}

func TestSanitizerLinkAttributes(t *testing.T) {
	s := services.NewSanitizer()

	in := `<a href="https://example.com" target="_blank" rel="noopener" title="odkaz">sem</a>`
	assert.Equal(t, in, s.Clean(in))

	// disallowed protocol drops the attribute
	out := s.Clean(`<a href="javascript:alert(1)">sem</a>`)
	assert.NotContains(t, out, "javascript")

	out = s.Clean(`<a href="https://example.com" onclick="evil()">sem</a>`)
	assert.NotContains(t, out, "onclick")
}

func TestSanitizerImageAndSpan(t *testing.T) {
	s := services.NewSanitizer()

	in := `<img src="/static/uploads/1700000000_foto.png" alt="foto" title="foto"/>`
	assert.Equal(t, in, s.Clean(in))

	in = `<span style="color: red">barva</span>`
	assert.Equal(t, in, s.Clean(in))

	// unknown style properties are dropped with the attribute intact
	out := s.Clean(`<span style="position: fixed">text</span>`)
	assert.NotContains(t, out, "position")
}
