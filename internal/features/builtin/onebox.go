package builtin

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/conneroisu/prettytext/internal/features"
	"github.com/conneroisu/prettytext/internal/hoist"
)

// oneboxTransformer finds paragraphs holding nothing but a bare URL. A
// cached preview replaces the paragraph; otherwise the link is marked for
// the onebox loader.
type oneboxTransformer struct {
	lookup features.LookupOneboxFunc
	max    int
}

func (t *oneboxTransformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	source := reader.Source()
	count := 0
	for c := doc.FirstChild(); c != nil; {
		next := c.NextSibling()
		link := bareLink(c)
		if link == nil {
			c = next
			continue
		}
		if count >= t.max {
			break
		}
		count++

		url := string(link.URL(source))
		if t.lookup != nil {
			if preview, ok := t.lookup(url); ok && preview != "" {
				doc.ReplaceChild(doc, c, hoist.NewBlock(preview))
				c = next
				continue
			}
		}
		link.SetAttributeString("class", []byte("onebox"))
		link.SetAttributeString("target", []byte("_blank"))
		c = next
	}
}

func bareLink(n ast.Node) *ast.AutoLink {
	if n.Kind() != ast.KindParagraph || n.ChildCount() != 1 {
		return nil
	}
	link, ok := n.FirstChild().(*ast.AutoLink)
	if !ok || link.AutoLinkType != ast.AutoLinkURL {
		return nil
	}
	return link
}

type oneboxExtension struct {
	transformer *oneboxTransformer
}

func (e *oneboxExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(util.Prioritized(e.transformer, 300)))
}

func setupOnebox(h *features.Helper) {
	h.AllowList("a.onebox", "a[target=_blank]", "aside.onebox", "aside[data-*]")
	h.RegisterPlugin(func(c features.Compiler) {
		opts := c.Options()
		c.Use(&oneboxExtension{transformer: &oneboxTransformer{
			lookup: opts.LookupOnebox,
			max:    opts.MaxOneboxes,
		}})
	})
}
