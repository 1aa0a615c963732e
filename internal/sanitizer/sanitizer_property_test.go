//go:build property

package sanitizer

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var fragments = []interface{}{
	"<p>", "</p>", "<div class=\"d-wrap evil\">", "</div>", "text", " ", "&", "&amp;",
	"&lt;", "<", ">", "\"", "'", "<a href=\"javascript:alert(1)\">", "<a href=\"https://x.example/?a=1&b=2\">",
	"</a>", "<script>", "</script>", "<table>", "</table>", "<iframe src=\"https://evil.example\">",
	"<iframe src=\"https://good.example/e\">", "</iframe>", "<br/>", "<img src=\"x\" alt=\"a'b\">",
	"<!-- c -->", "<video autoplay>", "</video>", "<h2 id=\"heading--a\">", "<h2 id=\"x\">", "</h2>",
	"-STRIP-", "<details open>", "</details>", "<xmp>", "</xmp>", "<div data-x=\"1\" data-html-y=\"2\">",
	"&#39;", "<style>", "</style>", "<template>", "</template>",
}

func TestSanitizerProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(2468)
	parameters.MinSuccessfulTests = 300

	properties := gopter.NewProperties(parameters)
	s := New(newTestBuilder())

	properties.Property("sanitizing is idempotent", prop.ForAll(
		func(parts []string) bool {
			once := s.Sanitize(strings.Join(parts, ""))
			return s.Sanitize(once) == once
		},
		gen.SliceOf(gen.OneConstOf(fragments...)),
	))

	properties.Property("no script survives", prop.ForAll(
		func(parts []string) bool {
			out := strings.ToLower(s.Sanitize(strings.Join(parts, "")))
			return !strings.Contains(out, "<script") && !strings.Contains(out, `<a href="javascript:`)
		},
		gen.SliceOf(gen.OneConstOf(fragments...)),
	))

	properties.Property("plain text round trips escaped", prop.ForAll(
		func(text string) bool {
			return s.Sanitize(text) == textEscaper.Replace(text)
		},
		gen.RegexMatch(`^[a-z >]*$`),
	))

	properties.TestingRun(t)
}
