// Package emoji converts between emoji shortcodes, unicode glyphs, typed
// emoticons and emoji image markup.
package emoji

//go:generate go run gen.go

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/conneroisu/prettytext/internal/emoji/emojidata"
	"github.com/conneroisu/prettytext/internal/logging"
)

// DefaultSet is the image set used when Options.EmojiSet is empty.
const DefaultSet = "twitter"

const (
	shortcodePattern = `:[\w+\-]+(?::t[1-6])?:`
	glyphSuffix      = `\x{FE0F}?[\x{1F3FB}-\x{1F3FF}]?`

	variationSelector = "\uFE0F"
	firstToneModifier = 0x1F3FB
	lastToneModifier  = 0x1F3FF
)

var tonePattern = regexp.MustCompile(`^(.+):t([1-6])$`)

// Static lookup tables derived from emojidata.
var (
	names     = make(map[string]bool)
	aliases   = make(map[string]string)
	glyphs    = make(map[string]string)
	nameGlyph = make(map[string]string)
	tonable   = make(map[string]bool)
)

func init() {
	for _, e := range emojidata.Emojis {
		names[e.Name] = true
		if e.Glyph != "" {
			glyphs[e.Glyph] = e.Name
			nameGlyph[e.Name] = e.Glyph
		}
		for _, alias := range e.Aliases {
			aliases[alias] = e.Name
		}
	}
	for _, name := range emojidata.Tonable {
		tonable[name] = true
	}
}

// Options controls a single conversion.
type Options struct {
	// InlineEmoji allows shortcodes directly next to word characters.
	InlineEmoji bool
	// EnableEmojiShortcuts turns typed emoticons such as ":)" into emoji.
	EnableEmojiShortcuts bool

	EmojiSet string
	BaseURL  string

	// CustomEmoji maps a name to an image URL.
	CustomEmoji map[string]string
	// CustomEmojiTranslation adds emoticons on top of the built-in ones.
	CustomEmojiTranslation map[string]string

	Class     string
	SkipTitle bool
	Lazy      bool
}

// Match is one replaceable emoji occurrence in a text.
type Match struct {
	Start  int
	End    int
	Text   string
	Name   string
	URL    string
	Custom bool
}

// Engine performs emoji conversions. The static tables are shared; the
// extended registry and the compiled patterns are per engine.
type Engine struct {
	mu       sync.RWMutex
	extended map[string]string
	patterns map[string]*regexp.Regexp
	index    []string

	logger logging.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(l logging.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		extended: make(map[string]string),
		patterns: make(map[string]*regexp.Regexp),
		logger:   logging.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RegisterExtended adds a site emoji that takes precedence over every
// other source.
func (e *Engine) RegisterExtended(name, url string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.extended[name] = url
	e.index = nil
	e.logger.Debug(context.Background(), "registered extended emoji", "name", name)
}

// ResetExtended drops every extended emoji.
func (e *Engine) ResetExtended() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.extended = make(map[string]string)
	e.index = nil
}

// Exists reports whether name (or an alias of it) is a static or extended
// emoji.
func (e *Engine) Exists(name string) bool {
	base, _ := splitTone(strings.Trim(name, ":"))
	e.mu.RLock()
	_, ok := e.extended[base]
	e.mu.RUnlock()
	if ok {
		return true
	}
	_, ok = canonical(base)
	return ok
}

// Glyph returns the unicode glyph of a static emoji.
func Glyph(name string) (string, bool) {
	canon, ok := canonical(name)
	if !ok {
		return "", false
	}
	g, ok := nameGlyph[canon]
	return g, ok
}

// URL returns the image URL of name, or "" when it is unknown. Extended
// emoji win over custom emoji, which win over the static set.
func (e *Engine) URL(name string, opts Options) string {
	url, _ := e.resolve(strings.Trim(name, ":"), opts)
	return url
}

func (e *Engine) resolve(name string, opts Options) (string, bool) {
	base, tone := splitTone(name)

	e.mu.RLock()
	url, ok := e.extended[base]
	e.mu.RUnlock()
	if ok {
		return url, true
	}
	if url, ok := opts.CustomEmoji[name]; ok {
		return url, true
	}
	if url, ok := opts.CustomEmoji[base]; ok {
		return url, true
	}

	canon, ok := canonical(base)
	if !ok {
		return "", false
	}
	path := canon
	if tone > 0 && tonable[canon] {
		path += "/" + strconv.Itoa(tone)
	}
	set := opts.EmojiSet
	if set == "" {
		set = DefaultSet
	}
	return fmt.Sprintf("%s/images/emoji/%s/%s.png?v=%d",
		strings.TrimRight(opts.BaseURL, "/"), set, path, emojidata.ImageVersion), false
}

func canonical(name string) (string, bool) {
	if names[name] {
		return name, true
	}
	if canon, ok := aliases[name]; ok {
		return canon, true
	}
	return "", false
}

func splitTone(name string) (string, int) {
	m := tonePattern.FindStringSubmatch(name)
	if m == nil {
		return name, 0
	}
	tone, _ := strconv.Atoi(m[2])
	return m[1], tone
}

// FindAll returns the replaceable emoji in text, in order.
func (e *Engine) FindAll(text string, opts Options) []Match {
	if text == "" {
		return nil
	}
	re, translations := e.pattern(opts)

	var out []Match
	for _, loc := range re.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]
		m := text[start:end]
		name, emoticon := classify(m, translations)
		if name == "" {
			continue
		}
		if emoticon && !delimited(text, start, end) {
			continue
		}
		url, custom := e.resolve(name, opts)
		if url == "" {
			continue
		}
		out = append(out, Match{Start: start, End: end, Text: m, Name: name, URL: url, Custom: custom})
	}
	return out
}

// Unescape replaces shortcodes, glyphs and (when enabled) emoticons with
// emoji image markup. Text that does not resolve is left untouched.
func (e *Engine) Unescape(text string, opts Options) string {
	matches := e.FindAll(text, opts)
	if len(matches) == 0 {
		return text
	}
	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(text[last:m.Start])
		b.WriteString(ImageTag(m, opts))
		last = m.End
	}
	b.WriteString(text[last:])
	return b.String()
}

// ImageTag renders the markup for a single match.
func ImageTag(m Match, opts Options) string {
	class := "emoji"
	if m.Custom {
		class += " emoji-custom"
	}
	if opts.Class != "" {
		class += " " + opts.Class
	}
	title := html.EscapeString(":" + m.Name + ":")

	var b strings.Builder
	fmt.Fprintf(&b, `<img width="20" height="20" src="%s"`, html.EscapeString(m.URL))
	if !opts.SkipTitle {
		fmt.Fprintf(&b, ` title="%s"`, title)
	}
	if opts.Lazy {
		b.WriteString(` loading="lazy"`)
	}
	fmt.Fprintf(&b, ` alt="%s" class="%s">`, title, class)
	return b.String()
}

var imagePattern = regexp.MustCompile(`<img\s[^>]*?\balt="(:[^"]+:)"[^>]*?\bclass="emoji(?:\s[^"]*)?"[^>]*>`)

// Escape is the inverse of Unescape: emoji images, glyphs and emoticons
// become ":name:" shortcodes.
func (e *Engine) Escape(text string, opts Options) string {
	text = imagePattern.ReplaceAllString(text, "$1")

	re, translations := e.pattern(opts)
	var b strings.Builder
	last := 0
	for _, loc := range re.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]
		m := text[start:end]
		name, emoticon := classify(m, translations)
		if name == "" || m == ":"+name+":" {
			continue
		}
		if emoticon && !delimited(text, start, end) {
			continue
		}
		b.WriteString(text[last:start])
		b.WriteString(":" + name + ":")
		last = end
	}
	if last == 0 {
		return text
	}
	b.WriteString(text[last:])
	return b.String()
}

// classify resolves a raw match: emoticon translations first, then
// glyphs, then bare shortcodes.
func classify(m string, translations map[string]string) (string, bool) {
	if n, ok := translations[m]; ok {
		return n, true
	}
	if n := glyphName(m); n != "" {
		return n, false
	}
	if len(m) > 2 && m[0] == ':' && m[len(m)-1] == ':' {
		return m[1 : len(m)-1], false
	}
	return "", false
}

func glyphName(m string) string {
	tone := 0
	if r, size := utf8.DecodeLastRuneInString(m); r >= firstToneModifier && r <= lastToneModifier {
		tone = int(r-firstToneModifier) + 2
		m = m[:len(m)-size]
	}
	// Text-default glyphs are stored with their selector.
	name, ok := glyphs[m]
	if !ok {
		name, ok = glyphs[strings.TrimSuffix(m, variationSelector)]
	}
	if !ok {
		return ""
	}
	if tone > 0 && tonable[name] {
		name += ":t" + strconv.Itoa(tone)
	}
	return name
}

// delimited reports whether text[start:end] stands alone between
// whitespace or the string edges. Emoticons need this even in inline mode:
// ":/" sits inside every "http://" and "happy:)" is prose.
func delimited(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if !unicode.IsSpace(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// pattern returns the compiled matcher for opts along with the emoticon
// table it covers. Matchers are cached per inline mode and emoticon set.
func (e *Engine) pattern(opts Options) (*regexp.Regexp, map[string]string) {
	var translations map[string]string
	emoticons := ""
	customKey := ""
	if opts.EnableEmojiShortcuts {
		translations = emojidata.Translations
		emoticons = translationPattern
		if len(opts.CustomEmojiTranslation) > 0 {
			translations = make(map[string]string, len(emojidata.Translations)+len(opts.CustomEmojiTranslation))
			for k, v := range emojidata.Translations {
				translations[k] = v
			}
			keys := make([]string, 0, len(opts.CustomEmojiTranslation))
			for k, v := range opts.CustomEmojiTranslation {
				translations[k] = v
				keys = append(keys, k+"\x00"+v)
			}
			sort.Strings(keys)
			customKey = strings.Join(keys, "\x01")
			emoticons = alternation(translations)
		}
	}
	key := fmt.Sprintf("%t|%t|%s", opts.InlineEmoji, opts.EnableEmojiShortcuts, customKey)

	e.mu.RLock()
	re, ok := e.patterns[key]
	e.mu.RUnlock()
	if ok {
		return re, translations
	}

	re = regexp.MustCompile(buildPattern(opts.InlineEmoji, emoticons))
	e.mu.Lock()
	e.patterns[key] = re
	e.mu.Unlock()
	return re, translations
}

// buildPattern assembles the matcher. Outside inline mode a shortcode must
// not touch a word character on either side.
func buildPattern(inline bool, emoticons string) string {
	shortcode := shortcodePattern
	if !inline {
		shortcode = `\B` + shortcode + `\B`
	}
	parts := []string{shortcode, `(?:` + glyphPattern + `)` + glyphSuffix}
	if emoticons != "" {
		parts = append(parts, emoticons)
	}
	return strings.Join(parts, "|")
}

// alternation quotes the keys of m into a longest-first alternation, the
// same way gen.go builds translationPattern.
func alternation(m map[string]string) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	for i, k := range keys {
		keys[i] = regexp.QuoteMeta(k)
	}
	return strings.Join(keys, "|")
}
