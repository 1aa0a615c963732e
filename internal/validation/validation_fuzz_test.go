package validation

import (
	"strings"
	"testing"
)

// FuzzSchemeMatcher checks that no script-capable scheme ever passes.
func FuzzSchemeMatcher(f *testing.F) {
	f.Add("https://example.com")
	f.Add("javascript:alert('xss')")
	f.Add("JaVaScRiPt:alert(1)")
	f.Add("data:text/html,<script>alert('xss')</script>")
	f.Add("vbscript:msgbox(1)")
	f.Add("/relative/path")
	f.Add("#anchor")
	f.Add("tel:+15550100")
	f.Add("")

	m := MustSchemeMatcher([]string{"tel"})

	f.Fuzz(func(t *testing.T, href string) {
		if !m.Allowed(href) {
			return
		}
		lower := strings.ToLower(href)
		for _, scheme := range []string{"javascript:", "vbscript:", "data:"} {
			if strings.HasPrefix(lower, scheme) {
				t.Errorf("Allowed passed for dangerous scheme: %q", href)
			}
		}
	})
}
