package builtin

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	"github.com/conneroisu/prettytext/internal/features"
)

func setupTable(h *features.Helper) {
	h.AllowList(
		"table", "thead", "tbody", "tr",
		"th", "th[align]",
		"td", "td[align]",
	)
	h.RegisterPlugin(func(c features.Compiler) {
		c.Use(extension.NewTable(
			extension.WithTableCellAlignMethod(extension.TableCellAlignAttribute),
		))
	})
}

func setupStrikethrough(h *features.Helper) {
	h.AllowList("del", "s")
	h.RegisterPlugin(func(c features.Compiler) {
		c.Use(extension.Strikethrough)
	})
}

// anchorRenderer prefixes headings carrying an id with an empty anchor
// link to themselves.
type anchorRenderer struct{}

func (r *anchorRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindHeading, r.renderHeading)
}

func (r *anchorRenderer) renderHeading(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Heading)
	if !entering {
		_, _ = w.WriteString("</h")
		_ = w.WriteByte("0123456"[n.Level])
		_, _ = w.WriteString(">\n")
		return ast.WalkContinue, nil
	}

	_, _ = w.WriteString("<h")
	_ = w.WriteByte("0123456"[n.Level])
	if n.Attributes() != nil {
		gmhtml.RenderAttributes(w, node, gmhtml.HeadingAttributeFilter)
	}
	_ = w.WriteByte('>')
	if v, ok := n.AttributeString("id"); ok {
		if id, ok := v.([]byte); ok && len(id) > 0 {
			escaped := util.EscapeHTML(id)
			_, _ = w.WriteString(`<a name="`)
			_, _ = w.Write(escaped)
			_, _ = w.WriteString(`" class="anchor" href="#`)
			_, _ = w.Write(escaped)
			_, _ = w.WriteString(`"></a>`)
		}
	}
	return ast.WalkContinue, nil
}

type anchorExtension struct{}

func (e *anchorExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithAutoHeadingID())
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&anchorRenderer{}, 100),
	))
}

func setupHeadingAnchors(h *features.Helper) {
	h.AllowList("a.anchor", "a[name]")
	h.RegisterPlugin(func(c features.Compiler) {
		c.Use(&anchorExtension{})
	})
}
