// Package sanitizer filters HTML against the allow-list derived from the
// enabled rendering features.
package sanitizer

import (
	"context"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/cases"

	"github.com/conneroisu/prettytext/internal/allowlist"
	"github.com/conneroisu/prettytext/internal/logging"
	"github.com/conneroisu/prettytext/internal/validation"
)

var (
	headingIDPattern = regexp.MustCompile(`^heading--[a-zA-Z0-9\-_]+$`)
	dataImagePattern = regexp.MustCompile(`(?i)^data:image/`)

	selfClosingPattern = regexp.MustCompile(`<([a-zA-Z][a-zA-Z0-9]*)((?:\s[^<>]*?)?)\s*/>`)
)

// stripBody lists the tags whose whole subtree goes when they are not allowed.
var stripBody = map[string]bool{
	"script":   true,
	"style":    true,
	"table":    true,
	"noscript": true,
	"template": true,
}

// rawText lists the tags whose content the tokenizer reads verbatim.
var rawText = map[string]bool{
	"iframe":    true,
	"noembed":   true,
	"noframes":  true,
	"noscript":  true,
	"plaintext": true,
	"script":    true,
	"style":     true,
	"xmp":       true,
}

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

var urlAttrs = map[string]bool{
	"action": true,
	"cite":   true,
	"href":   true,
	"poster": true,
	"src":    true,
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Sanitizer filters HTML. It is safe for concurrent use; the allow-list is
// read from the builder on every call so enable and disable take effect
// immediately.
type Sanitizer struct {
	builder *allowlist.Builder
	schemes *validation.SchemeMatcher
	iframes []string
	logger  logging.Logger
}

// Option configures a Sanitizer.
type Option func(*Sanitizer)

// WithLogger sets the logger rejections are reported to at debug level.
func WithLogger(l logging.Logger) Option {
	return func(s *Sanitizer) {
		s.logger = l
	}
}

// New creates a Sanitizer for b. Href scheme patterns that do not compile
// are ignored.
func New(b *allowlist.Builder, opts ...Option) *Sanitizer {
	s := &Sanitizer{
		builder: b,
		logger:  logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	schemes, err := validation.NewSchemeMatcher(b.AllowedHrefSchemes())
	if err != nil {
		s.logger.Warn(context.Background(), err, "ignoring extra href schemes")
		schemes = validation.MustSchemeMatcher(nil)
	}
	s.schemes = schemes

	for _, origin := range b.AllowedIframes() {
		if origin = strings.TrimSpace(origin); origin != "" {
			s.iframes = append(s.iframes, cases.Fold().String(origin))
		}
	}
	return s
}

// pass carries the per-call state of one Sanitize run.
type pass struct {
	s      *Sanitizer
	al     allowlist.AllowList
	custom []allowlist.Predicate
	out    strings.Builder

	skipTag   string
	skipDepth int
	rawOpen   string
}

// Sanitize filters input and returns the safe HTML. Unknown tags and
// attributes are dropped; it never fails.
func (s *Sanitizer) Sanitize(input string) string {
	p := &pass{
		s:      s,
		al:     s.builder.AllowList(),
		custom: s.builder.Custom(),
	}
	p.out.Grow(len(input))

	z := html.NewTokenizer(strings.NewReader(input))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if z.Err() != io.EOF {
				s.logger.Debug(context.Background(), "tokenizer stopped early", "error", z.Err())
			}
			break
		}
		p.token(z, tt)
	}
	if p.rawOpen != "" {
		p.out.WriteString("</" + p.rawOpen + ">")
	}

	return fixup(p.out.String())
}

func (p *pass) token(z *html.Tokenizer, tt html.TokenType) {
	switch tt {
	case html.TextToken:
		if p.skipDepth > 0 || p.rawOpen != "" {
			return
		}
		p.out.WriteString(textEscaper.Replace(string(z.Text())))

	case html.StartTagToken, html.SelfClosingTagToken:
		name, hasAttr := z.TagName()
		tag := string(name)
		// The tokenizer reads raw-text content even after "<script/>".
		opens := tt == html.StartTagToken || rawText[tag]
		if p.skipDepth > 0 {
			if tag == p.skipTag && opens {
				p.skipDepth++
			}
			return
		}
		if !p.al.AllowsTag(tag) {
			if stripBody[tag] && opens {
				p.skipTag, p.skipDepth = tag, 1
			}
			p.s.logger.Debug(context.Background(), "dropped tag", "tag", tag)
			return
		}
		if !p.startTag(z, tag, hasAttr) {
			// A condemned element goes with everything up to its end tag.
			if opens {
				p.skipTag, p.skipDepth = tag, 1
			}
			return
		}
		if rawText[tag] {
			p.rawOpen = tag
		}

	case html.EndTagToken:
		name, _ := z.TagName()
		tag := string(name)
		if p.skipDepth > 0 {
			if tag == p.skipTag {
				p.skipDepth--
			}
			return
		}
		if tag == p.rawOpen {
			p.rawOpen = ""
		}
		if p.al.AllowsTag(tag) && !voidElements[tag] {
			p.out.WriteString("</" + tag + ">")
		}

	case html.CommentToken, html.DoctypeToken:
	}
}

// startTag writes the filtered start tag. It writes nothing and returns
// false when an attribute condemns the whole element.
func (p *pass) startTag(z *html.Tokenizer, tag string, hasAttr bool) bool {
	var b strings.Builder
	b.WriteString("<" + tag)
	seen := make(map[string]bool)
	muted := false
	for hasAttr {
		var k, v []byte
		k, v, hasAttr = z.TagAttr()
		name, value := string(k), string(v)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		switch v, kept := p.attribute(tag, name, value); v {
		case keep:
			b.WriteString(" " + name + `="` + html.EscapeString(kept) + `"`)
		case keepBare:
			b.WriteString(" " + name)
			if name == "muted" {
				muted = true
			}
		case autoplay:
			b.WriteString(" autoplay")
			if !muted {
				b.WriteString(" muted")
				muted, seen["muted"] = true, true
			}
		case strip:
			p.s.logger.Debug(context.Background(), "rejected iframe", "src", value)
			return false
		default:
			p.s.logger.Debug(context.Background(), "dropped attribute",
				"tag", tag, "attr", name, "value", value)
		}
	}
	b.WriteString(">")
	p.out.WriteString(b.String())
	return true
}

type verdict int

const (
	drop verdict = iota
	keep
	keepBare
	autoplay
	strip
)

// attribute applies the acceptance rules to one attribute. Custom
// predicates are consulted before an iframe source is condemned.
func (p *pass) attribute(tag, name, value string) (verdict, string) {
	if isHeading(tag) && name == "id" {
		if headingIDPattern.MatchString(value) {
			return keep, value
		}
		return drop, ""
	}
	if tag == "video" && name == "autoplay" {
		return autoplay, ""
	}
	if name == "class" {
		if kept := p.classes(tag, value); kept != "" {
			return keep, kept
		}
		return drop, ""
	}

	if p.static(tag, name, value) {
		if value == "" && !urlAttrs[name] {
			return keepBare, ""
		}
		return keep, value
	}
	for _, pred := range p.custom {
		if pred(tag, name, value) {
			return keep, value
		}
	}
	if tag == "iframe" && name == "src" {
		return strip, ""
	}
	return drop, ""
}

// static covers the selector, data-* and URL rules.
func (p *pass) static(tag, name, value string) bool {
	switch {
	case tag == "a" && name == "href":
		return p.s.schemes.Allowed(value)
	case tag == "img" && name == "src":
		return dataImagePattern.MatchString(value) || p.s.schemes.Allowed(value)
	case tag == "iframe" && name == "src":
		return p.iframeAllowed(value)
	case urlAttrs[name]:
		return p.al.Allows(tag, name, value) && p.s.schemes.Allowed(value)
	}
	if p.al.Allows(tag, name, value) {
		return true
	}
	return strings.HasPrefix(name, "data-") &&
		!strings.HasPrefix(name, "data-html-") &&
		p.al.Allows(tag, "data-*", value)
}

func (p *pass) iframeAllowed(src string) bool {
	folded := cases.Fold().String(src)
	for _, origin := range p.s.iframes {
		if strings.HasPrefix(folded, origin) {
			return true
		}
	}
	return false
}

// classes keeps only the class tokens the allow-list or a custom predicate
// accepts.
func (p *pass) classes(tag, value string) string {
	var kept []string
	for _, class := range strings.Fields(value) {
		if p.al.Allows(tag, "class", class) {
			kept = append(kept, class)
			continue
		}
		for _, pred := range p.custom {
			if pred(tag, "class", class) {
				kept = append(kept, class)
				break
			}
		}
	}
	return strings.Join(kept, " ")
}

func isHeading(tag string) bool {
	return len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6'
}

// fixup normalises the serialised output.
func fixup(s string) string {
	s = encodeBareAmpersands(s)
	s = strings.ReplaceAll(s, "&#39;", "'")
	s = selfClosingPattern.ReplaceAllString(s, "<$1$2>")
	return s
}

// encodeBareAmpersands escapes every '&' that does not start an entity.
func encodeBareAmpersands(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '&' && !startsEntity(s[i+1:]) {
			b.WriteString("&amp;")
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func startsEntity(s string) bool {
	i := 0
	switch {
	case strings.HasPrefix(s, "#x") || strings.HasPrefix(s, "#X"):
		i = 2
		for i < len(s) && isHex(s[i]) {
			i++
		}
		if i == 2 {
			return false
		}
	case strings.HasPrefix(s, "#"):
		i = 1
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == 1 {
			return false
		}
	default:
		for i < len(s) && isAlnum(s[i]) {
			i++
		}
		if i == 0 {
			return false
		}
	}
	return i < len(s) && s[i] == ';'
}

func isHex(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
