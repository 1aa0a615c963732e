//go:build property

package ruler

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestRulerProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("lookup returns the most recent rule for each tag", prop.ForAll(
		func(tags []string) bool {
			r := New()
			last := make(map[string]string)
			for i, tag := range tags {
				name := fmt.Sprintf("rule-%d", i)
				r.Push(name, Rule{Tag: tag, Wrap: func(tok *Token, _ TagInfo) bool {
					tok.SetAttr("data-rule", name)
					return true
				}})
				last[tag] = name
			}

			for tag, want := range last {
				rule, ok := r.RuleForTag(tag)
				if !ok {
					return false
				}
				tok := &Token{}
				rule.Wrap(tok, TagInfo{Tag: tag})
				if got, _ := tok.AttrGet("data-rule"); got != want {
					return false
				}
			}
			return r.Len() == len(tags)
		},
		gen.SliceOf(gen.OneConstOf("event", "details", "wrap", "spoiler", "quote")),
	))

	properties.Property("parsed default attribute round-trips", prop.ForAll(
		func(value string) bool {
			info, n, ok := ParseTag(fmt.Sprintf("[wrap=%s]", value))
			return ok && n == len(value)+7 && info.Default() == value
		},
		gen.Identifier(),
	))

	properties.TestingRun(t)
}
