//go:build property

package allowlist

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var propertySelectors = []string{
	"details", "summary", "details[open]", "div.d-wrap", "div[data-wrap]",
	"span.spoiled", "table", "th[style=text-align:left]", "img.emoji",
	"a.mention", "aside.quote", "video[autoplay]", "code.lang-go",
}

// subsetOf reports whether every tag, attribute and value in a also
// appears in b.
func subsetOf(a, b AllowList) bool {
	for tag := range a.TagList {
		if !b.AllowsTag(tag) {
			return false
		}
	}
	for tag, attrs := range a.AttrList {
		for name, vals := range attrs {
			for _, v := range vals {
				if !b.Allows(tag, name, v) {
					return false
				}
			}
		}
	}
	return true
}

func TestAllowListProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(9753)
	parameters.MinSuccessfulTests = 150

	properties := gopter.NewProperties(parameters)

	properties.Property("disabling never grows and re-enabling restores", prop.ForAll(
		func(assignments []int, victim int) bool {
			features := []string{"details", "wrap", "spoiler", "table", "emoji"}
			b := NewBuilder()
			for i, a := range assignments {
				feature := features[a%len(features)]
				b.AllowListFeature(feature, Info{Selectors: []string{propertySelectors[i%len(propertySelectors)]}})
			}

			before := b.AllowList()
			target := features[victim%len(features)]

			b.Disable(target)
			after := b.AllowList()
			if !subsetOf(after, before) {
				return false
			}

			b.Enable(target)
			return reflect.DeepEqual(before, b.AllowList())
		},
		gen.SliceOf(gen.IntRange(0, 100)),
		gen.IntRange(0, 100),
	))

	properties.Property("selector round trip keeps tag", prop.ForAll(
		func(tag, class string) bool {
			s, ok := ParseSelector(tag + "." + class)
			return ok && s.Tag == tag && len(s.Classes) == 1 && s.Classes[0] == class
		},
		gen.RegexMatch(`^[a-z][a-z0-9]{0,6}$`),
		gen.RegexMatch(`^[a-z][a-z0-9-]{0,8}$`),
	))

	properties.TestingRun(t)
}
