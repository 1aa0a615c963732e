package hoist

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

func TestHoistAndUnhoist(t *testing.T) {
	s := New()
	id := s.Hoist(`<iframe src="x"></iframe>`)

	assert.True(t, IsID(id))
	assert.Equal(t, 1, s.Len())

	out := Unhoist("<p>"+id+"</p>", s.Map())
	assert.Equal(t, `<p><iframe src="x"></iframe></p>`, out)
}

func TestUnhoistNested(t *testing.T) {
	s := New()
	inner := s.Hoist("<b>inner</b>")
	outer := s.Hoist("<div>" + inner + "</div>")

	assert.Equal(t, "<div><b>inner</b></div>", Unhoist(outer, s.Map()))
}

func TestUnhoistLeavesUnknownIDs(t *testing.T) {
	stray := "hoisted-00000000-0000-4000-8000-000000000000"
	s := New()
	id := s.Hoist("x")

	assert.Equal(t, "x "+stray, Unhoist(id+" "+stray, s.Map()))
	assert.Equal(t, stray, Unhoist(stray, nil))
}

func TestUnhoistTerminatesOnSelfReference(t *testing.T) {
	id := "hoisted-11111111-1111-4111-8111-111111111111"
	frags := map[string]string{id: "<" + id + ">"}

	out := Unhoist(id, frags)
	assert.True(t, strings.HasPrefix(out, "<<"))
}

func TestIDsAreUnique(t *testing.T) {
	s := New()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := s.Hoist("x")
		require.False(t, seen[id])
		seen[id] = true
	}
	assert.Equal(t, 100, s.Len())
}

func TestNodesRenderThroughStore(t *testing.T) {
	md := goldmark.New(goldmark.WithExtensions(Extension))

	src := []byte("hello\n")
	doc := md.Parser().Parse(text.NewReader(src))
	doc.AppendChild(doc, NewBlock(`<aside class="onebox">preview</aside>`))
	para := doc.FirstChild()
	para.AppendChild(para, NewInline("<span>raw</span>"))

	s := New()
	Attach(doc, s)
	assert.Same(t, s, FromNode(para.LastChild()))

	var buf bytes.Buffer
	require.NoError(t, md.Renderer().Render(&buf, src, doc))

	require.Equal(t, 2, s.Len())
	assert.NotContains(t, buf.String(), "<aside")
	assert.Equal(t, "<p>hello<span>raw</span></p>\n<aside class=\"onebox\">preview</aside>\n", Unhoist(buf.String(), s.Map()))
}

func TestRenderWithoutStoreWritesMarkup(t *testing.T) {
	md := goldmark.New(goldmark.WithExtensions(Extension))
	src := []byte("hi\n")
	doc := md.Parser().Parse(text.NewReader(src))
	doc.FirstChild().AppendChild(doc.FirstChild(), NewInline("<i>x</i>"))

	var buf bytes.Buffer
	require.NoError(t, md.Renderer().Render(&buf, src, doc))
	assert.Equal(t, "<p>hi<i>x</i></p>\n", buf.String())
}

func TestContextStore(t *testing.T) {
	pc := parser.NewContext()
	assert.Nil(t, FromContext(pc))

	s := New()
	WithContext(pc, s)
	assert.Same(t, s, FromContext(pc))
}
