//go:build property

package engine

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestImageSizeProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(9001)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("percentage scales both sides", prop.ForAll(
		func(w, h, pct int) bool {
			gotW, gotH, ok := parseImageSize(fmt.Sprintf("%dx%d,%d%%", w, h, pct))
			return ok && gotW == w*pct/100 && gotH == h*pct/100
		},
		gen.IntRange(1, 5000),
		gen.IntRange(1, 5000),
		gen.IntRange(1, 999),
	))

	properties.Property("width override keeps the aspect ratio", prop.ForAll(
		func(w, h, nw int) bool {
			gotW, gotH, ok := parseImageSize(fmt.Sprintf("%dx%d,%dx", w, h, nw))
			return ok && gotW == nw && gotH == h*nw/w
		},
		gen.IntRange(1, 5000),
		gen.IntRange(1, 5000),
		gen.IntRange(1, 5000),
	))

	properties.Property("plain sizes pass through", prop.ForAll(
		func(w, h int) bool {
			alt := ParseImageAlt(fmt.Sprintf("img|%dx%d", w, h))
			return alt.HasSize && alt.Width == w && alt.Height == h && alt.Alt == "img"
		},
		gen.IntRange(0, 99999),
		gen.IntRange(0, 99999),
	))

	properties.TestingRun(t)
}
