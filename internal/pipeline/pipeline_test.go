package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/prettytext/internal/config"
	"github.com/conneroisu/prettytext/internal/features"
)

func defaultPipeline(t *testing.T, mutate func(*config.SiteConfig)) *Pipeline {
	t.Helper()
	site := config.Default().Site
	if mutate != nil {
		mutate(&site)
	}
	p, err := Default(site, features.State{}, nil)
	require.NoError(t, err)
	return p
}

func TestRender(t *testing.T) {
	p := defaultPipeline(t, nil)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"paragraph", "Hello *world*", "<p>Hello <em>world</em></p>\n"},
		{"unsafe href dropped", `<a href="javascript:alert(1)">x</a>`, "<p><a>x</a></p>\n"},
		{"spoiler", "a [spoiler]b[/spoiler]", "<p>a <span class=\"spoiler\">b</span></p>\n"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := p.Render(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRenderDropsScripts(t *testing.T) {
	p := defaultPipeline(t, nil)
	out, err := p.Render("<script>alert(1)</script>\n\nok")
	require.NoError(t, err)
	assert.NotContains(t, out, "script")
	assert.NotContains(t, out, "alert")
	assert.Contains(t, out, "<p>ok</p>")
}

func TestRenderIsIdempotentUnderSanitizer(t *testing.T) {
	p := defaultPipeline(t, nil)
	out, err := p.Render("# Title\n\n> quote with :smile:\n\n- [b]bold[/b]\n")
	require.NoError(t, err)
	assert.Equal(t, out, p.Sanitize(out))
}

func TestRenderWithoutSanitizing(t *testing.T) {
	p := defaultPipeline(t, func(s *config.SiteConfig) { s.Sanitize = false })

	out, err := p.Render(`<div onclick="x()">raw</div>`)
	require.NoError(t, err)
	assert.Contains(t, out, `onclick="x()"`)

	assert.NotContains(t, p.Sanitize(out), "onclick")
}

func TestDefaultLoadsCustomEmojiFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emoji.yml")
	require.NoError(t, os.WriteFile(path, []byte("emoji:\n  parrot: /uploads/parrot.gif\n"), 0644))

	p := defaultPipeline(t, func(s *config.SiteConfig) { s.CustomEmojiFile = path })
	out, err := p.Render("party :parrot:")
	require.NoError(t, err)
	assert.Contains(t, out, `src="/uploads/parrot.gif"`)
	assert.Contains(t, out, `class="emoji emoji-custom"`)
}

func TestDefaultRejectsBadCustomEmojiFile(t *testing.T) {
	site := config.Default().Site
	site.CustomEmojiFile = filepath.Join(t.TempDir(), "missing.yml")

	_, err := Default(site, features.State{}, nil)
	assert.Error(t, err)
}

func TestCustomEmojiConfigOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emoji.yml")
	require.NoError(t, os.WriteFile(path, []byte("emoji:\n  parrot: /file.gif\n"), 0644))

	p := defaultPipeline(t, func(s *config.SiteConfig) {
		s.CustomEmojiFile = path
		s.CustomEmoji = map[string]string{"parrot": "/config.gif"}
	})
	out, err := p.Render(":parrot:")
	require.NoError(t, err)
	assert.Contains(t, out, `src="/config.gif"`)
}

func TestFeatures(t *testing.T) {
	p := defaultPipeline(t, func(s *config.SiteConfig) {
		s.Features.Disabled = []string{"spoiler"}
	})
	for _, f := range p.Features() {
		assert.Equal(t, f.ID != "spoiler", f.Enabled, f.ID)
	}
}

func TestExcerpt(t *testing.T) {
	tests := []struct {
		name   string
		html   string
		maxLen int
		want   string
	}{
		{"strips tags", "<p>Hello <em>world</em></p>", 0, "Hello world"},
		{"separates blocks", "<p>one</p><p>two</p><ul><li>a</li><li>b</li></ul>", 0, "one two a b"},
		{"decodes entities", "<p>a &amp; b &lt;c&gt;</p>", 0, "a & b <c>"},
		{"drops script bodies", "<p>x</p><script>alert(1)</script>", 0, "x"},
		{"truncates", "<p>abcdef</p>", 3, "abc…"},
		{"trims before ellipsis", "<p>abc def</p>", 4, "abc…"},
		{"no cut needed", "<p>abc</p>", 3, "abc"},
		{"rune safe", "<p>héllo wörld</p>", 5, "héllo…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Excerpt(tt.html, tt.maxLen))
		})
	}
}

func TestRenderExcerpt(t *testing.T) {
	p := defaultPipeline(t, nil)
	got, err := p.RenderExcerpt("# Title\n\nSome **bold** text that goes on", 20)
	require.NoError(t, err)
	assert.Equal(t, "Title Some bold text…", got)
}

func TestRenderContextAppliesPostprocessors(t *testing.T) {
	p := defaultPipeline(t, nil)

	upper := func(_ context.Context, html string) (string, error) { return strings.ToUpper(html), nil }
	broken := func(context.Context, string) (string, error) { return "", errors.New("remote down") }
	suffix := func(_ context.Context, html string) (string, error) { return html + "<!-- done -->", nil }

	out, err := p.RenderContext(context.Background(), "hi", upper, broken, suffix)
	require.NoError(t, err)
	assert.Equal(t, "<P>HI</P>\n<!-- done -->", out)
}

func TestRenderContextStopsOnCancel(t *testing.T) {
	p := defaultPipeline(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	failing := func(ctx context.Context, _ string) (string, error) { return "", ctx.Err() }
	_, err := p.RenderContext(ctx, "hi", failing)
	assert.ErrorIs(t, err, context.Canceled)
}
