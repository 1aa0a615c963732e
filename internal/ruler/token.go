package ruler

import (
	"strings"

	"golang.org/x/net/html"
)

// TokenType identifies what a Token renders to.
type TokenType int

const (
	// TokenOpen renders an opening tag with attributes.
	TokenOpen TokenType = iota
	// TokenClose renders a closing tag.
	TokenClose
	// TokenText renders escaped text.
	TokenText
	// TokenHTMLRaw carries trusted markup that must reach the output
	// without passing through the sanitizer.
	TokenHTMLRaw
)

// Attr is a single name/value pair on an opening token.
type Attr struct {
	Name  string
	Value string
}

// Token is one unit of compiler output produced by a rule.
type Token struct {
	Type    TokenType
	Tag     string
	Attrs   []Attr
	Content string
}

// SetAttr sets name to value, replacing an existing value.
func (t *Token) SetAttr(name, value string) {
	for i := range t.Attrs {
		if t.Attrs[i].Name == name {
			t.Attrs[i].Value = value
			return
		}
	}
	t.Attrs = append(t.Attrs, Attr{Name: name, Value: value})
}

// AttrGet returns the value of name.
func (t *Token) AttrGet(name string) (string, bool) {
	for _, a := range t.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// AddClass appends class to the token's class attribute.
func (t *Token) AddClass(class string) {
	if cur, ok := t.AttrGet("class"); ok && cur != "" {
		t.SetAttr("class", cur+" "+class)
		return
	}
	t.SetAttr("class", class)
}

// Stream collects the tokens pushed by rules for a single invocation.
type Stream struct {
	tokens []*Token
}

// Push appends a token of the given type and returns it for further setup.
func (s *Stream) Push(typ TokenType, tag string) *Token {
	tok := &Token{Type: typ, Tag: tag}
	s.tokens = append(s.tokens, tok)
	return tok
}

// PushText appends an escaped text token.
func (s *Stream) PushText(content string) *Token {
	tok := s.Push(TokenText, "")
	tok.Content = content
	return tok
}

// PushRaw appends a trusted markup token.
func (s *Stream) PushRaw(content string) *Token {
	tok := s.Push(TokenHTMLRaw, "")
	tok.Content = content
	return tok
}

// Tokens returns the pushed tokens.
func (s *Stream) Tokens() []*Token {
	return s.tokens
}

// Reset drops every pushed token.
func (s *Stream) Reset() {
	s.tokens = s.tokens[:0]
}

// Render serialises the tokens to HTML. Raw tokens are passed to hoist,
// whose return value is emitted in their place; a nil hoist emits them as-is.
func (s *Stream) Render(hoist func(string) string) string {
	var b strings.Builder
	for _, tok := range s.tokens {
		WriteToken(&b, tok, hoist)
	}
	return b.String()
}

// WriteToken serialises a single token.
func WriteToken(b *strings.Builder, tok *Token, hoist func(string) string) {
	switch tok.Type {
	case TokenOpen:
		b.WriteByte('<')
		b.WriteString(tok.Tag)
		for _, a := range tok.Attrs {
			b.WriteByte(' ')
			b.WriteString(a.Name)
			b.WriteString(`="`)
			b.WriteString(html.EscapeString(a.Value))
			b.WriteByte('"')
		}
		b.WriteByte('>')
	case TokenClose:
		b.WriteString("</")
		b.WriteString(tok.Tag)
		b.WriteByte('>')
	case TokenText:
		b.WriteString(html.EscapeString(tok.Content))
	case TokenHTMLRaw:
		if tok.Content == "" {
			return
		}
		if hoist != nil {
			b.WriteString(hoist(tok.Content))
			return
		}
		b.WriteString(tok.Content)
	}
}
