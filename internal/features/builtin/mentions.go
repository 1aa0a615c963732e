package builtin

import (
	"html"
	"regexp"
	"unicode"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/conneroisu/prettytext/internal/features"
)

var mentionPattern = regexp.MustCompile(`^@([\w][\w.-]*[\w]|[\w])`)

// KindMention is the kind of Mention nodes.
var KindMention = ast.NewNodeKind("Mention")

// Mention is an @name reference.
type Mention struct {
	ast.BaseInline
	Name string
}

func (n *Mention) Kind() ast.NodeKind { return KindMention }

func (n *Mention) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Name": n.Name}, nil)
}

type mentionParser struct{}

func (p *mentionParser) Trigger() []byte {
	return []byte{'@'}
}

func (p *mentionParser) Parse(_ ast.Node, block text.Reader, pc parser.Context) ast.Node {
	if pc.IsInLinkLabel() {
		return nil
	}
	if prev := block.PrecendingCharacter(); unicode.IsLetter(prev) || unicode.IsDigit(prev) || prev == '_' || prev == '`' {
		return nil
	}
	line, _ := block.PeekLine()
	m := mentionPattern.FindSubmatch(line)
	if m == nil {
		return nil
	}
	block.Advance(len(m[0]))
	return &Mention{Name: string(m[1])}
}

type mentionRenderer struct {
	lookup features.LookupMentionFunc
}

func (r *mentionRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindMention, r.render)
}

func (r *mentionRenderer) render(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkSkipChildren, nil
	}
	name := html.EscapeString(node.(*Mention).Name)
	if r.lookup != nil {
		if href, ok := r.lookup(node.(*Mention).Name); ok {
			_, _ = w.WriteString(`<a class="mention" href="` + html.EscapeString(href) + `">@` + name + `</a>`)
			return ast.WalkSkipChildren, nil
		}
	}
	_, _ = w.WriteString(`<span class="mention">@` + name + `</span>`)
	return ast.WalkSkipChildren, nil
}

type mentionExtension struct {
	lookup features.LookupMentionFunc
}

func (e *mentionExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(util.Prioritized(&mentionParser{}, 500)))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(util.Prioritized(&mentionRenderer{lookup: e.lookup}, 100)))
}

func setupMentions(h *features.Helper) {
	h.AllowList("a.mention", "span.mention")
	h.RegisterPlugin(func(c features.Compiler) {
		c.Use(&mentionExtension{lookup: c.Options().LookupMention})
	})
}
