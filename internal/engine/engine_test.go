package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"

	"github.com/conneroisu/prettytext/internal/config"
	"github.com/conneroisu/prettytext/internal/errors"
	"github.com/conneroisu/prettytext/internal/features"
	"github.com/conneroisu/prettytext/internal/hoist"
	"github.com/conneroisu/prettytext/internal/ruler"
)

func newEngine(t *testing.T, m features.Manifest, state features.State, mutate func(*config.SiteConfig)) *Engine {
	t.Helper()
	site := config.Default().Site
	if mutate != nil {
		mutate(&site)
	}
	cfg := &features.Config{}
	require.NoError(t, features.NewComposer(m, nil).Setup(cfg, site, state))
	e, err := New(cfg, nil)
	require.NoError(t, err)
	return e
}

func render(t *testing.T, e *Engine, src string) string {
	t.Helper()
	res, err := e.Render(src)
	require.NoError(t, err)
	return Unhoist(res.HTML, res.Hoisted)
}

func blockRule(id string, rule ruler.Rule) features.Feature {
	return features.Feature{ID: id, Setup: func(h *features.Helper) {
		h.RegisterPlugin(func(c features.Compiler) {
			c.BlockBBCode().Push(id, rule)
		})
	}}
}

func inlineRule(id string, rule ruler.Rule) features.Feature {
	return features.Feature{ID: id, Setup: func(h *features.Helper) {
		h.RegisterPlugin(func(c features.Compiler) {
			c.InlineBBCode().Push(id, rule)
		})
	}}
}

var (
	spoilerRule = ruler.Rule{Tag: "spoiler", Wrap: func(tok *ruler.Token, _ ruler.TagInfo) bool {
		tok.AddClass("spoiler")
		return true
	}}
	detailsRule = ruler.Rule{
		Tag: "details",
		Before: func(s *ruler.Stream, info ruler.TagInfo) bool {
			s.Push(ruler.TokenOpen, "details")
			s.Push(ruler.TokenOpen, "summary")
			s.PushText(info.Default())
			s.Push(ruler.TokenClose, "summary")
			return true
		},
		After: func(s *ruler.Stream, _ ruler.TagInfo) {
			s.Push(ruler.TokenClose, "details")
		},
	}
	boldRule = ruler.Rule{Tag: "b", Wrap: func(tok *ruler.Token, _ ruler.TagInfo) bool {
		tok.AddClass("bbcode-b")
		return true
	}}
	codeRule = ruler.Rule{Tag: "c", Replace: func(s *ruler.Stream, _ ruler.TagInfo, content string) bool {
		s.Push(ruler.TokenOpen, "code")
		s.PushText(content)
		s.Push(ruler.TokenClose, "code")
		return true
	}}
	embedRule = ruler.Rule{Tag: "embed", Replace: func(s *ruler.Stream, _ ruler.TagInfo, content string) bool {
		s.PushRaw(`<iframe src="` + content + `"></iframe>`)
		return true
	}}
	refuseRule = ruler.Rule{Tag: "wrap", Wrap: func(*ruler.Token, ruler.TagInfo) bool {
		return false
	}}
)

func TestNewRequiresCompleteConfig(t *testing.T) {
	_, err := New(&features.Config{}, nil)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))

	_, err = New(nil, nil)
	require.Error(t, err)
}

func TestRenderMarkdown(t *testing.T) {
	e := newEngine(t, nil, features.State{}, nil)
	assert.Equal(t, "<p>hello <em>world</em></p>\n", render(t, e, "hello *world*"))
}

func TestBlockBBCode(t *testing.T) {
	e := newEngine(t, features.Manifest{
		blockRule("spoiler", spoilerRule),
		blockRule("details", detailsRule),
		blockRule("embed", embedRule),
		blockRule("wrap", refuseRule),
	}, features.State{}, nil)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "wrap rule",
			input: "[spoiler]\nsecret\n[/spoiler]\n",
			want:  "<div class=\"spoiler\">\n<p>secret</p>\n</div>\n",
		},
		{
			name:  "before and after",
			input: "[details=\"Title\"]\nbody\n[/details]\n",
			want:  "<details><summary>Title</summary>\n<p>body</p>\n</details>\n",
		},
		{
			name:  "nested",
			input: "[details=a]\n[details=b]\ninner\n[/details]\n[/details]\n",
			want:  "<details><summary>a</summary>\n<details><summary>b</summary>\n<p>inner</p>\n</details>\n</details>\n",
		},
		{
			name:  "markdown inside",
			input: "[spoiler]\n- one\n- two\n[/spoiler]\n",
			want:  "<div class=\"spoiler\">\n<ul>\n<li>one</li>\n<li>two</li>\n</ul>\n</div>\n",
		},
		{
			name:  "unhandled renders literally",
			input: "[wrap]\nx\n[/wrap]\n",
			want:  "<p>[wrap]</p>\n<p>x</p>\n<p>[/wrap]</p>\n",
		},
		{
			name:  "unknown tag is text",
			input: "[nope]\nx\n[/nope]\n",
			want:  "<p>[nope]\nx\n[/nope]</p>\n",
		},
		{
			name:  "missing close is text",
			input: "[spoiler]\nx\n",
			want:  "<p>[spoiler]\nx</p>\n",
		},
		{
			name:  "replace rule",
			input: "[embed]\nhttps://example.com/v\n[/embed]\n",
			want:  "<iframe src=\"https://example.com/v\"></iframe>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, e, tt.input))
		})
	}
}

func TestRawTokensAreHoisted(t *testing.T) {
	e := newEngine(t, features.Manifest{blockRule("embed", embedRule)}, features.State{}, nil)

	res, err := e.Render("[embed]\nx\n[/embed]\n")
	require.NoError(t, err)
	require.Len(t, res.Hoisted, 1)
	assert.NotContains(t, res.HTML, "<iframe")
	for id, frag := range res.Hoisted {
		assert.True(t, hoist.IsID(id))
		assert.Equal(t, id+"\n", res.HTML)
		assert.Equal(t, `<iframe src="x"></iframe>`, frag)
	}
}

func TestInlineBBCode(t *testing.T) {
	e := newEngine(t, features.Manifest{
		inlineRule("b", boldRule),
		inlineRule("c", codeRule),
	}, features.State{}, nil)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"wrap", "a [b]bold *x*[/b] c", "<p>a <span class=\"bbcode-b\">bold <em>x</em></span> c</p>\n"},
		{"nested", "[b]1 [b]2[/b][/b]", "<p><span class=\"bbcode-b\">1 <span class=\"bbcode-b\">2</span></span></p>\n"},
		{"unpaired open", "x [b]y", "<p>x [b]y</p>\n"},
		{"unpaired close", "x[/b] y", "<p>x[/b] y</p>\n"},
		{"replace", "use [c]a<b[/c]", "<p>use <code>a&lt;b</code></p>\n"},
		{"replace without close", "use [c]a", "<p>use [c]a</p>\n"},
		{"links still parse", "[text](/x)", "<p><a href=\"/x\">text</a></p>\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, e, tt.input))
		})
	}
}

func TestImageRendering(t *testing.T) {
	lookup := func(short string) (string, bool) {
		if short == "upload://known.png" {
			return "/uploads/known.png", true
		}
		return "", false
	}
	e := newEngine(t, nil, features.State{Lookups: features.Lookups{UploadURL: lookup}}, nil)

	tests := []struct {
		name     string
		input    string
		contains []string
	}{
		{
			name:     "size percentage",
			input:    "![photo|300x200,50%](/a.png)",
			contains: []string{`<img src="/a.png" alt="photo" width="150" height="100">`},
		},
		{
			name:     "thumbnail and data",
			input:    "![photo|thumbnail|caption=sunset](/a.png)",
			contains: []string{`alt="photo"`, `data-thumbnail="true"`, `data-caption="sunset"`},
		},
		{
			name:     "unresolved upload",
			input:    "![x](upload://missing.png)",
			contains: []string{`src="/images/transparent.png"`, `data-orig-src="upload://missing.png"`},
		},
		{
			name:     "resolved upload",
			input:    "![x](upload://known.png)",
			contains: []string{`src="/uploads/known.png"`, `data-orig-src="upload://known.png"`},
		},
		{
			name:  "video",
			input: "![clip|video](/v.mp4)",
			contains: []string{
				`<div class="video-container"><video width="100%" height="100%" preload="metadata" controls>`,
				`<source src="/v.mp4"><a href="/v.mp4">/v.mp4</a></video></div>`,
			},
		},
		{
			name:     "audio",
			input:    "![song|audio](/s.mp3)",
			contains: []string{`<audio preload="metadata" controls><source src="/s.mp3">`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := render(t, e, tt.input)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestMediaPreviewPlaceholder(t *testing.T) {
	e := newEngine(t, nil, features.State{Preview: true}, nil)
	out := render(t, e, "![clip|video](/v.mp4)")
	assert.Contains(t, out, `<div class="onebox-placeholder-container"><span class="placeholder-icon video"></span></div>`)
	assert.NotContains(t, out, "<video")
}

func TestAttachmentLinks(t *testing.T) {
	e := newEngine(t, nil, features.State{}, nil)

	out := render(t, e, "[report.pdf|attachment|size=2mb](upload://r.pdf)")
	assert.Contains(t, out, `href="/404"`)
	assert.Contains(t, out, `data-orig-href="upload://r.pdf"`)
	assert.Contains(t, out, `class="attachment"`)
	assert.Contains(t, out, `data-size="2mb"`)
	assert.Contains(t, out, `>report.pdf</a>`)

	plain := render(t, e, "[a|b](/x)")
	assert.Equal(t, "<p><a href=\"/x\">a|b</a></p>\n", plain)
}

func TestAutoLinkDecoding(t *testing.T) {
	e := newEngine(t, nil, features.State{}, nil)

	out := render(t, e, "see https://example.com/a%20b")
	assert.Equal(t, "<p>see <a href=\"https://example.com/a%20b\">https://example.com/a b</a></p>\n", out)

	bad := render(t, e, "see https://example.com/%zz")
	assert.Contains(t, bad, ">https://example.com/%zz</a>")
}

func TestEmojiSubstitution(t *testing.T) {
	m := features.Manifest{{ID: "emoji"}}
	e := newEngine(t, m, features.State{}, nil)

	out := render(t, e, "hi :smile: and `:smile:`")
	assert.Equal(t, 1, strings.Count(out, `class="emoji"`))
	assert.Contains(t, out, `alt=":smile:"`)
	assert.Contains(t, out, "<code>:smile:</code>")

	multi := render(t, e, "a :smile:\nb")
	assert.True(t, strings.HasPrefix(multi, "<p>a <img "))
	assert.True(t, strings.HasSuffix(multi, "\nb</p>\n"))
}

func TestEmojiDisabled(t *testing.T) {
	e := newEngine(t, features.Manifest{{ID: "emoji"}}, features.State{}, func(s *config.SiteConfig) {
		s.Features.Disabled = []string{"emoji"}
	})
	assert.Equal(t, "<p>hi :smile:</p>\n", render(t, e, "hi :smile:"))

	none := newEngine(t, nil, features.State{}, nil)
	assert.Equal(t, "<p>hi :smile:</p>\n", render(t, none, "hi :smile:"))
}

type autoHeadingID struct{}

func (autoHeadingID) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithAutoHeadingID())
}

func TestHeadingIDs(t *testing.T) {
	m := features.Manifest{{ID: "anchors", Setup: func(h *features.Helper) {
		h.RegisterPlugin(func(c features.Compiler) { c.Use(autoHeadingID{}) })
	}}}
	e := newEngine(t, m, features.State{}, nil)

	out := render(t, e, "# Hello World\n\n# Hello World\n\n# !!!\n")
	assert.Contains(t, out, `<h1 id="heading--hello-world">`)
	assert.Contains(t, out, `<h1 id="heading--hello-world-1">`)
	assert.Contains(t, out, `<h1 id="heading--section">`)
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"Hello World":     "hello-world",
		"  a -- b  ":      "a-b",
		"snake_case":      "snake_case",
		"Ünïcode only":    "ncode-only",
		"":                "section",
		"What's new? v2.": "what-s-new-v2",
	}
	for in, want := range tests {
		assert.Equal(t, want, slug(in), in)
	}
}
