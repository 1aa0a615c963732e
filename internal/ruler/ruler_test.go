package ruler

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wrapWith(class string) WrapFunc {
	return func(tok *Token, _ TagInfo) bool {
		tok.AddClass(class)
		return true
	}
}

func TestRuleForTagLastRegistrationWins(t *testing.T) {
	r := New()
	r.Push("calendar-event", Rule{Tag: "event", Wrap: wrapWith("first")})
	r.Push("details", Rule{Tag: "details", Wrap: wrapWith("details")})
	r.Push("discourse-event", Rule{Tag: "event", Wrap: wrapWith("second")})

	rule, ok := r.RuleForTag("event")
	require.True(t, ok)

	tok := &Token{Type: TokenOpen, Tag: "div"}
	require.True(t, rule.Wrap(tok, TagInfo{Tag: "event"}))
	class, _ := tok.AttrGet("class")
	assert.Equal(t, "second", class)

	_, ok = r.RuleForTag("missing")
	assert.False(t, ok)
}

func TestRulesPreserveRegistrationOrder(t *testing.T) {
	r := New()
	r.Push("a", Rule{Tag: "x"})
	r.Push("b", Rule{Tag: "y"})
	r.Push("c", Rule{Tag: "x"})

	names := make([]string, 0, 3)
	for _, e := range r.Rules() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
	assert.Equal(t, 3, r.Len())
}

func TestPushInvalidatesLookup(t *testing.T) {
	r := New()
	r.Push("one", Rule{Tag: "event", Wrap: wrapWith("one")})

	_, ok := r.RuleForTag("event")
	require.True(t, ok)
	_, ok = r.RuleForTag("spoiler")
	require.False(t, ok)

	r.Push("two", Rule{Tag: "spoiler", Wrap: wrapWith("two")})
	_, ok = r.RuleForTag("spoiler")
	assert.True(t, ok)
}

func TestRuleForTagConcurrentReads(t *testing.T) {
	r := New()
	r.Push("one", Rule{Tag: "event"})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, ok := r.RuleForTag("event")
			assert.True(t, ok)
		}()
	}
	wg.Wait()
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		tag   string
		attrs map[string]string
		n     int
		ok    bool
	}{
		{"bare", "[details]rest", "details", map[string]string{}, 9, true},
		{"default quoted", `[details="Click me"]`, "details", map[string]string{DefaultAttr: "Click me"}, 20, true},
		{"default bare", "[wrap=toc]", "wrap", map[string]string{DefaultAttr: "toc"}, 10, true},
		{"named attrs", `[wrap=toc level=2 title='A B']`, "wrap", map[string]string{DefaultAttr: "toc", "level": "2", "title": "A B"}, 30, true},
		{"upper case", "[SPOILER]", "spoiler", map[string]string{}, 9, true},
		{"not a tag", "[ details]", "", nil, 0, false},
		{"unterminated", "[details", "", nil, 0, false},
		{"bare word attr", "[wrap toc]", "", nil, 0, false},
		{"unterminated quote", `[details="x]`, "", nil, 0, false},
		{"empty", "[]", "", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, n, ok := ParseTag(tt.src)
			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}
			assert.Equal(t, tt.tag, info.Tag)
			assert.Equal(t, tt.attrs, info.Attrs)
			assert.Equal(t, tt.n, n)
		})
	}
}

func TestFindClose(t *testing.T) {
	src := "outer [spoiler]inner[/spoiler] tail[/SPOILER] after"
	idx, n, ok := FindClose(src, "spoiler")
	require.True(t, ok)
	assert.Equal(t, "[/SPOILER]", src[idx:idx+n])

	_, _, ok = FindClose("no close here", "spoiler")
	assert.False(t, ok)
}

func TestStreamRender(t *testing.T) {
	var s Stream
	open := s.Push(TokenOpen, "details")
	open.SetAttr("open", "")
	s.Push(TokenOpen, "summary")
	s.PushText(`Fish & "chips"`)
	s.Push(TokenClose, "summary")
	s.PushRaw("<svg></svg>")
	s.Push(TokenClose, "details")

	assert.Equal(t,
		`<details open=""><summary>Fish &amp; &#34;chips&#34;</summary><svg></svg></details>`,
		s.Render(nil))

	hoisted := s.Render(func(string) string { return "HOIST" })
	assert.Contains(t, hoisted, "HOIST")
	assert.NotContains(t, hoisted, "<svg>")
}

func TestTokenAttrHelpers(t *testing.T) {
	tok := &Token{Type: TokenOpen, Tag: "div"}
	tok.AddClass("d-wrap")
	tok.AddClass("toc")
	tok.SetAttr("data-wrap", "toc")
	tok.SetAttr("data-wrap", "index")

	class, _ := tok.AttrGet("class")
	assert.Equal(t, "d-wrap toc", class)
	v, ok := tok.AttrGet("data-wrap")
	assert.True(t, ok)
	assert.Equal(t, "index", v)
	assert.Len(t, tok.Attrs, 2)
}
