package content

import (
	"strings"
	"testing"
)

func TestNormalizeRichTextMarkdown(t *testing.T) {
	got := NormalizeRichText("## Amenities\n\nA quiet street with **old trees**.")
	if !strings.Contains(got, "<h2>Amenities</h2>") {
		t.Errorf("missing heading: %q", got)
	}
	if !strings.Contains(got, "<strong>old trees</strong>") {
		t.Errorf("missing emphasis: %q", got)
	}
}

func TestNormalizeRichTextHTMLPassesThroughSanitized(t *testing.T) {
	got := NormalizeRichText(`<p class="lead">Hello</p><script>alert(1)</script>`)
	if !strings.Contains(got, `<p class="lead">Hello</p>`) {
		t.Errorf("lost allowed markup: %q", got)
	}
	if strings.Contains(got, "<script") || strings.Contains(got, "alert(1)") {
		t.Errorf("script survived sanitization: %q", got)
	}
}

func TestNormalizeRichTextStripsEventHandlers(t *testing.T) {
	got := NormalizeRichText(`<p onclick="steal()">x</p>`)
	if strings.Contains(got, "onclick") {
		t.Errorf("event handler survived: %q", got)
	}
}

func TestNormalizeRichTextEmpty(t *testing.T) {
	if got := NormalizeRichText("   "); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestLooksLikeHTML(t *testing.T) {
	if looksLikeHTML("plain text, 2 < 3") {
		t.Error("bare less-than misread as HTML")
	}
	if !looksLikeHTML("<p>hi</p>") {
		t.Error("paragraph not recognized")
	}
	if !looksLikeHTML("</div>") {
		t.Error("closing tag not recognized")
	}
}
