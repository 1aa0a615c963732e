package emoji

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/prettytext/internal/emoji/emojidata"
	"github.com/conneroisu/prettytext/internal/errors"
)

func smileTag(name, url string) string {
	return `<img width="20" height="20" src="` + url + `" title=":` + name + `:" alt=":` + name + `:" class="emoji">`
}

func TestUnescape(t *testing.T) {
	e := New()
	shortcuts := Options{EnableEmojiShortcuts: true}

	tests := []struct {
		name     string
		input    string
		opts     Options
		expected string
	}{
		{
			name:     "shortcode",
			input:    ":smile:",
			expected: smileTag("smile", "/images/emoji/twitter/smile.png?v=12"),
		},
		{
			name:     "shortcode in prose",
			input:    "hi :smile: there",
			expected: "hi " + smileTag("smile", "/images/emoji/twitter/smile.png?v=12") + " there",
		},
		{
			name:     "shortcode glued to a word is not replaced",
			input:    "foo:smile:",
			expected: "foo:smile:",
		},
		{
			name:     "inline mode allows glued shortcodes",
			input:    "foo:smile:",
			opts:     Options{InlineEmoji: true},
			expected: "foo" + smileTag("smile", "/images/emoji/twitter/smile.png?v=12"),
		},
		{
			name:     "alias resolves to canonical image",
			input:    ":thumbsup:",
			expected: smileTag("thumbsup", "/images/emoji/twitter/+1.png?v=12"),
		},
		{
			name:     "tonable shortcode",
			input:    ":wave:t3:",
			expected: smileTag("wave:t3", "/images/emoji/twitter/wave/3.png?v=12"),
		},
		{
			name:     "tone ignored on untonable emoji",
			input:    ":smile:t3:",
			expected: smileTag("smile:t3", "/images/emoji/twitter/smile.png?v=12"),
		},
		{
			name:     "unknown shortcode untouched",
			input:    "a :not_an_emoji: b",
			expected: "a :not_an_emoji: b",
		},
		{
			name:     "glyph always eligible",
			input:    "a😄b",
			expected: "a" + smileTag("smile", "/images/emoji/twitter/smile.png?v=12") + "b",
		},
		{
			name:     "glyph with variation selector",
			input:    "❤️",
			expected: smileTag("heart", "/images/emoji/twitter/heart.png?v=12"),
		},
		{
			name:     "glyph with skin tone",
			input:    "👋🏽",
			expected: smileTag("wave:t4", "/images/emoji/twitter/wave/4.png?v=12"),
		},
		{
			name:     "emoticon with shortcuts",
			input:    "ok :)",
			opts:     shortcuts,
			expected: "ok " + smileTag("slight_smile", "/images/emoji/twitter/slight_smile.png?v=12"),
		},
		{
			name:     "emoticon without shortcuts",
			input:    "ok :)",
			expected: "ok :)",
		},
		{
			name:     "emoticon must stand alone",
			input:    "see http://example.com and x:)",
			opts:     shortcuts,
			expected: "see http://example.com and x:)",
		},
		{
			name:     "emoticon glued to a word is left alone",
			input:    "happy:)",
			opts:     shortcuts,
			expected: "happy:)",
		},
		{
			name:     "emoticon glued to a word is left alone inline",
			input:    "happy:)",
			opts:     Options{InlineEmoji: true, EnableEmojiShortcuts: true},
			expected: "happy:)",
		},
		{
			name:     "zwj sequence",
			input:    "👨‍👩‍👧",
			expected: smileTag("family_man_woman_girl", "/images/emoji/twitter/family_man_woman_girl.png?v=12"),
		},
		{
			name:     "flag",
			input:    "go 🇺🇸",
			expected: "go " + smileTag("us", "/images/emoji/twitter/us.png?v=12"),
		},
		{
			name:     "keycap",
			input:    "1️⃣ not 1",
			expected: smileTag("one", "/images/emoji/twitter/one.png?v=12") + " not 1",
		},
		{
			name:     "text-default glyph needs its selector",
			input:    "© 2024 ©️",
			expected: "© 2024 " + smileTag("copyright", "/images/emoji/twitter/copyright.png?v=12"),
		},
		{
			name:     "configured set and base",
			input:    ":smile:",
			opts:     Options{EmojiSet: "apple", BaseURL: "https://cdn.example/"},
			expected: smileTag("smile", "https://cdn.example/images/emoji/apple/smile.png?v=12"),
		},
		{
			name:  "custom emoji",
			input: ":parrot:",
			opts:  Options{CustomEmoji: map[string]string{"parrot": "/uploads/parrot.gif"}},
			expected: `<img width="20" height="20" src="/uploads/parrot.gif" title=":parrot:" ` +
				`alt=":parrot:" class="emoji emoji-custom">`,
		},
		{
			name:     "custom translation",
			input:    "(y)",
			opts:     Options{EnableEmojiShortcuts: true, CustomEmojiTranslation: map[string]string{"(y)": "+1"}},
			expected: smileTag("+1", "/images/emoji/twitter/+1.png?v=12"),
		},
		{
			name:  "skip title and lazy",
			input: ":smile:",
			opts:  Options{SkipTitle: true, Lazy: true, Class: "big"},
			expected: `<img width="20" height="20" src="/images/emoji/twitter/smile.png?v=12" loading="lazy" ` +
				`alt=":smile:" class="emoji big">`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, e.Unescape(tt.input, tt.opts))
		})
	}
}

func TestExtendedEmoji(t *testing.T) {
	e := New()
	opts := Options{CustomEmoji: map[string]string{"partyparrot": "/custom/parrot.gif"}}

	e.RegisterExtended("partyparrot", "/extended/parrot.gif")
	assert.Equal(t, "/extended/parrot.gif", e.URL(":partyparrot:", opts))
	assert.True(t, e.Exists("partyparrot"))
	assert.Contains(t, e.Search("partyp", SearchOptions{}), "partyparrot")

	e.ResetExtended()
	assert.Equal(t, "/custom/parrot.gif", e.URL("partyparrot", opts))
	assert.Equal(t, "", e.URL("partyparrot", Options{}))
	assert.False(t, e.Exists("partyparrot"))
	assert.NotContains(t, e.Search("partyp", SearchOptions{}), "partyparrot")
}

func TestEscape(t *testing.T) {
	e := New()
	shortcuts := Options{EnableEmojiShortcuts: true}

	assert.Equal(t, "I :smile: it", e.Escape("I 😄 it", Options{}))
	assert.Equal(t, "hi :slight_smile:", e.Escape("hi :)", shortcuts))
	assert.Equal(t, "hi :)", e.Escape("hi :)", Options{}))
	assert.Equal(t, "x:)", e.Escape("x:)", shortcuts))
	assert.Equal(t, ":+1:t4:", e.Escape("👍🏽", Options{}))
	assert.Equal(t, "already :smile:", e.Escape("already :smile:", Options{}))
	assert.Equal(t, ":smile:", e.Escape(e.Unescape(":smile:", Options{}), Options{}))
	assert.Equal(t, "a :heart: b", e.Escape("a "+e.Unescape(":heart:", Options{})+" b", Options{}))
	assert.Equal(t, "happy:)", e.Escape("happy:)", Options{InlineEmoji: true, EnableEmojiShortcuts: true}))
}

func TestEscapeMultiCodepointGlyphs(t *testing.T) {
	e := New()

	tests := []struct {
		glyph string
		name  string
	}{
		{"👨‍👩‍👧", "family_man_woman_girl"},
		{"🏳️‍🌈", "rainbow_flag"},
		{"🇯🇵", "jp"},
		{"#️⃣", "hash"},
		{"©️", "copyright"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := ":" + tt.name + ":"
			assert.Equal(t, code, e.Escape(tt.glyph, Options{}))
			assert.Equal(t, code, e.Escape(e.Unescape(tt.glyph, Options{}), Options{}))
			g, ok := Glyph(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.glyph, g)
		})
	}
}

func TestFindAll(t *testing.T) {
	e := New()
	matches := e.FindAll("a :smile: b 🚀", Options{})
	require.Len(t, matches, 2)

	assert.Equal(t, Match{Start: 2, End: 9, Text: ":smile:", Name: "smile", URL: "/images/emoji/twitter/smile.png?v=12"}, matches[0])
	assert.Equal(t, "rocket", matches[1].Name)
	assert.Equal(t, "🚀", "a :smile: b 🚀"[matches[1].Start:matches[1].End])
	assert.Empty(t, e.FindAll("", Options{}))
}

func TestPatternCache(t *testing.T) {
	e := New()
	a, _ := e.pattern(Options{})
	b, _ := e.pattern(Options{})
	c, _ := e.pattern(Options{InlineEmoji: true})
	d, _ := e.pattern(Options{EnableEmojiShortcuts: true, CustomEmojiTranslation: map[string]string{"(y)": "+1"}})
	f, _ := e.pattern(Options{EnableEmojiShortcuts: true, CustomEmojiTranslation: map[string]string{"(y)": "+1"}})

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Same(t, d, f)
	assert.NotEqual(t, a.String(), c.String())
}

func TestGeneratedPatternsMatchTables(t *testing.T) {
	assert.Equal(t, translationPattern, alternation(emojidata.Translations))
	for glyph := range glyphs {
		assert.Contains(t, glyphPattern, glyph)
	}
}

func TestGlyph(t *testing.T) {
	g, ok := Glyph("thumbsup")
	require.True(t, ok)
	assert.Equal(t, "👍", g)
	_, ok = Glyph("nope")
	assert.False(t, ok)
}

func TestSearch(t *testing.T) {
	e := New()

	assert.Equal(t, []string{"+1"}, e.Search("thumbsup", SearchOptions{}))
	assert.Equal(t,
		[]string{"smile", "smile_cat", "smiley", "smiley_cat", "smiling_face_with_tear",
			"smiling_face_with_three_hearts", "smiling_imp", "kissing_smiling_eyes", "slight_smile", "sweat_smile"},
		e.Search("smil", SearchOptions{}))
	assert.Equal(t, []string{"smile", "smile_cat"}, e.Search("SMIL", SearchOptions{MaxResults: 2}))
	assert.Equal(t, []string{"wave:t3"}, e.Search("wave", SearchOptions{Diversity: 3}))
	assert.Equal(t, []string{"smile_cat", "smiley", "smiley_cat"},
		e.Search(":smil:", SearchOptions{Exclude: []string{"smile"}, MaxResults: 3}))
	assert.Equal(t, []string{"tada"}, e.Search("tada", SearchOptions{}))
}

func TestParseCustom(t *testing.T) {
	set, err := ParseCustom([]byte(`
emoji:
  parrot: /uploads/parrot.gif
translations:
  "(y)": "+1"
  "(p)": parrot
`))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/parrot.gif", set.Emoji["parrot"])
	assert.Equal(t, "parrot", set.Translations["(p)"])

	_, err = ParseCustom([]byte(`
emoji:
  "bad name": /x.gif
translations:
  "(z)": nothing
`))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))

	_, err = ParseCustom([]byte("emoji: [unclosed"))
	assert.Error(t, err)
}

func TestLoadCustomFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "emoji.yml")
	require.NoError(t, os.WriteFile(path, []byte("emoji:\n  blob: /blob.png\n"), 0o600))

	set, err := LoadCustomFile(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"blob": "/blob.png"}, set.Emoji)

	_, err = LoadCustomFile(filepath.Join(dir, "missing.yml"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeIO))
}
