//go:build property

package emoji

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/conneroisu/prettytext/internal/emoji/emojidata"
)

func TestEmojiProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(4242)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	e := New()

	var canonicalNames []interface{}
	for _, em := range emojidata.Emojis {
		canonicalNames = append(canonicalNames, em.Name)
	}

	properties.Property("escape inverts unescape for canonical names", prop.ForAll(
		func(name string, inline bool) bool {
			opts := Options{InlineEmoji: inline}
			code := ":" + name + ":"
			return e.Escape(e.Unescape(code, opts), opts) == code
		},
		gen.OneConstOf(canonicalNames...),
		gen.Bool(),
	))

	properties.Property("glyphs escape to their canonical name", prop.ForAll(
		func(name string) bool {
			glyph, ok := Glyph(name)
			return ok && e.Escape(glyph, Options{}) == ":"+name+":"
		},
		gen.OneConstOf(canonicalNames...),
	))

	properties.Property("alias search yields canonical names only", prop.ForAll(
		func(name string) bool {
			for _, result := range e.Search(name, SearchOptions{}) {
				if _, isAlias := aliases[result]; isAlias {
					return false
				}
			}
			return true
		},
		gen.OneConstOf(canonicalNames...),
	))

	properties.TestingRun(t)
}
