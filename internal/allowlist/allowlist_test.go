package allowlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/prettytext/internal/errors"
)

func TestParseSelector(t *testing.T) {
	tests := []struct {
		in       string
		expected Selector
		ok       bool
	}{
		{"div", Selector{Tag: "div"}, true},
		{"div.foo", Selector{Tag: "div", Classes: []string{"foo"}}, true},
		{"div.foo.bar", Selector{Tag: "div", Classes: []string{"foo", "bar"}}, true},
		{"div[data-bar]", Selector{Tag: "div", Attr: "data-bar"}, true},
		{"div[data-bar=baz]", Selector{Tag: "div", Attr: "data-bar", Value: "baz", HasValue: true}, true},
		{"div.x[data-bar=baz]", Selector{Tag: "div", Classes: []string{"x"}, Attr: "data-bar", Value: "baz", HasValue: true}, true},
		{"th[style=text-align:left]", Selector{Tag: "th", Attr: "style", Value: "text-align:left", HasValue: true}, true},
		{"", Selector{}, false},
		{".foo", Selector{}, false},
		{"div.", Selector{}, false},
		{"div[bar", Selector{}, false},
		{"div[]", Selector{}, false},
		{"di v", Selector{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			s, ok := ParseSelector(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, s)
			}
		})
	}
}

func TestMalformedSelectorsReported(t *testing.T) {
	b := NewBuilder()

	err := b.AllowListFeature("mixed", Info{Selectors: []string{"span.ok", ".nameless", "div[open"}})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
	assert.Contains(t, err.Error(), errors.ErrCodeInvalidSelector)
	assert.Contains(t, err.Error(), `".nameless"`)
	assert.Contains(t, err.Error(), `"div[open"`)

	// The well-formed part of the contribution still applies.
	assert.True(t, b.AllowList().Allows("span", "class", "ok"))
	assert.Contains(t, b.Features(), "mixed")

	assert.NoError(t, b.AllowListFeature("fine", Info{Selectors: []string{"details[open]"}}))
}

func TestDefaultFeatureAlwaysActive(t *testing.T) {
	b := NewBuilder()
	b.Disable(DefaultFeature)

	al := b.AllowList()
	assert.True(t, al.AllowsTag("p"))
	assert.True(t, al.AllowsTag("blockquote"))
	assert.True(t, b.IsEnabled(DefaultFeature))
}

func TestFeatureContributions(t *testing.T) {
	b := NewBuilder()
	b.AllowListFeature("details", Info{Selectors: []string{"details", "summary", "details[open]"}})
	b.AllowListFeature("wrap", Info{Selectors: []string{"div.d-wrap", "div[data-wrap]"}})
	b.AllowListFeature("wrap", Info{Selectors: []string{"span.d-wrap"}})

	al := b.AllowList()
	assert.True(t, al.AllowsTag("details"))
	assert.True(t, al.Allows("details", "open", ""))
	assert.True(t, al.Allows("div", "class", "d-wrap"))
	assert.True(t, al.Allows("div", "data-wrap", "anything"))
	assert.True(t, al.Allows("span", "class", "d-wrap"))
	assert.False(t, al.Allows("div", "class", "evil"))

	b.Disable("wrap")
	al = b.AllowList()
	assert.False(t, al.Allows("div", "class", "d-wrap"))
	assert.False(t, al.Allows("span", "class", "d-wrap"))
	assert.True(t, al.AllowsTag("div"), "default feature still allows div")
	assert.True(t, al.AllowsTag("details"))

	b.Enable("wrap")
	assert.True(t, b.AllowList().Allows("div", "class", "d-wrap"))
}

func TestAttributeValueSelectors(t *testing.T) {
	b := NewBuilder()
	b.AllowListFeature("table", Info{Selectors: []string{
		"th[style=text-align:left]",
		"th[style=text-align:right]",
	}})

	al := b.AllowList()
	assert.True(t, al.Allows("th", "style", "text-align:left"))
	assert.True(t, al.Allows("th", "style", "text-align:right"))
	assert.False(t, al.Allows("th", "style", "color:red"))
	vals, ok := al.Values("th", "style")
	require.True(t, ok)
	assert.Equal(t, []string{"text-align:left", "text-align:right"}, vals)
}

func TestAllowListReturnsCopies(t *testing.T) {
	b := NewBuilder()
	al := b.AllowList()
	al.TagList["script"] = struct{}{}
	al.AttrList["a"]["onclick"] = []string{Wildcard}

	fresh := b.AllowList()
	assert.False(t, fresh.AllowsTag("script"))
	assert.False(t, fresh.Allows("a", "onclick", "x"))
}

func TestCustomPredicatesOrderAndToggle(t *testing.T) {
	b := NewBuilder()
	var calls []string
	b.AllowListFeature("code", Info{Custom: func(tag, attr, value string) bool {
		calls = append(calls, "code")
		return tag == "code" && attr == "class" && value == "lang-go"
	}})
	b.AllowListFeature("events", Info{Custom: func(tag, attr, value string) bool {
		calls = append(calls, "events")
		return false
	}})

	preds := b.Custom()
	require.Len(t, preds, 2)
	for _, p := range preds {
		p("code", "class", "lang-go")
	}
	assert.Equal(t, []string{"code", "events"}, calls)

	b.Disable("code")
	assert.Len(t, b.Custom(), 1)
}

func TestStaticLists(t *testing.T) {
	b := NewBuilder(
		WithHrefSchemes("tel", "steam"),
		WithIframes("https://www.youtube.com/embed/"),
	)
	assert.Equal(t, []string{"tel", "steam"}, b.AllowedHrefSchemes())
	assert.Equal(t, []string{"https://www.youtube.com/embed/"}, b.AllowedIframes())

	b.AllowedIframes()[0] = "mutated"
	assert.Equal(t, "https://www.youtube.com/embed/", b.AllowedIframes()[0])
}

func TestFeaturesListing(t *testing.T) {
	b := NewBuilder()
	b.AllowListFeature("spoiler", Info{Selectors: []string{"span.spoiled"}})
	b.AllowListFeature("details", Info{Selectors: []string{"details"}})
	assert.Equal(t, []string{"default", "details", "spoiler"}, b.Features())
}
