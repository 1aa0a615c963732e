package engine

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/conneroisu/prettytext/internal/hoist"
	"github.com/conneroisu/prettytext/internal/ruler"
)

var (
	KindBBCodeBlock  = ast.NewNodeKind("BBCodeBlock")
	KindBBCodeInline = ast.NewNodeKind("BBCodeInline")
	KindBBCodeMarker = ast.NewNodeKind("BBCodeMarker")
)

// invocation is the state shared by block and inline tag nodes.
type invocation struct {
	info    ruler.TagInfo
	rule    ruler.Rule
	open    string
	close   string
	content string
	leaf    bool

	handled bool
	wrap    *ruler.Token
}

func (inv *invocation) dumpAttrs() map[string]string {
	m := map[string]string{"Tag": inv.info.Tag}
	for k, v := range inv.info.Attrs {
		m["Attr."+k] = v
	}
	return m
}

// BBCodeBlock is a block-level [tag]...[/tag] invocation. Replace rules make
// it a leaf carrying the raw content; every other rule makes it a container.
type BBCodeBlock struct {
	ast.BaseBlock
	invocation
	closeStart int
}

func (n *BBCodeBlock) Kind() ast.NodeKind { return KindBBCodeBlock }

func (n *BBCodeBlock) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, n.dumpAttrs(), nil)
}

// BBCodeInline is a paired inline invocation.
type BBCodeInline struct {
	ast.BaseInline
	invocation
}

func (n *BBCodeInline) Kind() ast.NodeKind { return KindBBCodeInline }

func (n *BBCodeInline) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, n.dumpAttrs(), nil)
}

// bbcodeMarker is an inline opening or closing tag waiting to be paired.
// Markers left unpaired render as literal text.
type bbcodeMarker struct {
	ast.BaseInline
	info    ruler.TagInfo
	rule    ruler.Rule
	raw     string
	closing bool
}

func (n *bbcodeMarker) Kind() ast.NodeKind { return KindBBCodeMarker }

func (n *bbcodeMarker) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Raw": n.raw}, nil)
}

type blockParser struct {
	rules *ruler.Ruler
}

func (p *blockParser) Trigger() []byte {
	return []byte{'['}
}

func (p *blockParser) Open(_ ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	line, segment := reader.PeekLine()
	pos := pc.BlockOffset()
	if pos < 0 || line[pos] != '[' {
		return nil, parser.NoChildren
	}
	rest := line[pos:]
	info, n, ok := ruler.ParseTag(string(rest))
	if !ok || !util.IsBlank(rest[n:]) {
		return nil, parser.NoChildren
	}
	rule, ok := p.rules.RuleForTag(info.Tag)
	if !ok {
		return nil, parser.NoChildren
	}

	source := reader.Source()
	after := segment.Stop
	if after > len(source) || after == 0 || source[after-1] != '\n' {
		return nil, parser.NoChildren
	}
	off, closeLen, ok := ruler.FindClose(string(source[after:]), info.Tag)
	if !ok {
		return nil, parser.NoChildren
	}
	closeStart := after + off
	closeEnd := closeStart + closeLen
	lineStart := strings.LastIndexByte(string(source[:closeStart]), '\n') + 1
	lineEnd := closeEnd
	for lineEnd < len(source) && source[lineEnd] != '\n' {
		lineEnd++
	}
	if !util.IsBlank(source[lineStart:closeStart]) || !util.IsBlank(source[closeEnd:lineEnd]) {
		return nil, parser.NoChildren
	}

	node := &BBCodeBlock{closeStart: closeStart}
	node.info = info
	node.rule = rule
	node.open = string(rest[:n])
	node.close = string(source[closeStart:closeEnd])

	reader.Advance(segment.Len() - 1)
	if rule.Replace != nil {
		node.leaf = true
		node.content = strings.TrimSuffix(string(source[after:lineStart]), "\n")
		return node, parser.NoChildren
	}
	return node, parser.HasChildren
}

func (p *blockParser) Continue(node ast.Node, reader text.Reader, _ parser.Context) parser.State {
	n := node.(*BBCodeBlock)
	line, segment := reader.PeekLine()
	if line == nil {
		return parser.Close
	}
	if segment.Start > n.closeStart {
		return parser.Close
	}
	if segment.Stop > n.closeStart {
		newline := 1
		if line[len(line)-1] != '\n' {
			newline = 0
		}
		reader.Advance(segment.Stop - segment.Start - newline + segment.Padding)
		return parser.Close
	}
	if n.leaf {
		reader.Advance(segment.Len() - 1)
		return parser.Continue | parser.NoChildren
	}
	return parser.Continue | parser.HasChildren
}

func (p *blockParser) Close(ast.Node, text.Reader, parser.Context) {}

func (p *blockParser) CanInterruptParagraph() bool {
	return true
}

func (p *blockParser) CanAcceptIndentedLine() bool {
	return false
}

type inlineParser struct {
	rules *ruler.Ruler
}

func (p *inlineParser) Trigger() []byte {
	return []byte{'['}
}

func (p *inlineParser) Parse(_ ast.Node, block text.Reader, _ parser.Context) ast.Node {
	line, _ := block.PeekLine()
	if len(line) < 3 {
		return nil
	}
	src := string(line)

	if src[1] == '/' {
		end := strings.IndexByte(src, ']')
		if end < 3 {
			return nil
		}
		tag := strings.ToLower(src[2:end])
		rule, ok := p.rules.RuleForTag(tag)
		if !ok {
			return nil
		}
		block.Advance(end + 1)
		return &bbcodeMarker{info: ruler.TagInfo{Tag: tag}, rule: rule, raw: src[:end+1], closing: true}
	}

	info, n, ok := ruler.ParseTag(src)
	if !ok {
		return nil
	}
	rule, ok := p.rules.RuleForTag(info.Tag)
	if !ok {
		return nil
	}

	if rule.Replace != nil {
		off, closeLen, ok := ruler.FindClose(src[n:], info.Tag)
		if !ok {
			return nil
		}
		node := &BBCodeInline{}
		node.info = info
		node.rule = rule
		node.leaf = true
		node.open = src[:n]
		node.content = src[n : n+off]
		node.close = src[n+off : n+off+closeLen]
		block.Advance(n + off + closeLen)
		return node
	}

	block.Advance(n)
	return &bbcodeMarker{info: info, rule: rule, raw: src[:n]}
}

// pairTransformer turns matching open/close markers that share a parent
// into BBCodeInline nodes holding the content between them.
type pairTransformer struct{}

func (t *pairTransformer) Transform(doc *ast.Document, _ text.Reader, _ parser.Context) {
	var parents []ast.Node
	seen := make(map[ast.Node]bool)
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == KindBBCodeMarker {
			if p := n.Parent(); !seen[p] {
				seen[p] = true
				parents = append(parents, p)
			}
		}
		return ast.WalkContinue, nil
	})
	for _, p := range parents {
		pairMarkers(p)
	}
}

func pairMarkers(parent ast.Node) {
	var stack []*bbcodeMarker
	for c := parent.FirstChild(); c != nil; {
		next := c.NextSibling()
		m, ok := c.(*bbcodeMarker)
		if !ok {
			c = next
			continue
		}
		if !m.closing {
			stack = append(stack, m)
			c = next
			continue
		}

		idx := -1
		for i := len(stack) - 1; i >= 0; i-- {
			if stack[i].info.Tag == m.info.Tag {
				idx = i
				break
			}
		}
		if idx >= 0 {
			open := stack[idx]
			stack = stack[:idx]

			node := &BBCodeInline{}
			node.info = open.info
			node.rule = open.rule
			node.open = open.raw
			node.close = m.raw
			for s := open.NextSibling(); s != nil && s != ast.Node(m); {
				sn := s.NextSibling()
				node.AppendChild(node, s)
				s = sn
			}
			parent.ReplaceChild(parent, open, node)
			parent.RemoveChild(parent, m)
		}
		c = next
	}
}

func hoistFunc(n ast.Node) func(string) string {
	if s := hoist.FromNode(n); s != nil {
		return s.Hoist
	}
	return nil
}

func (r *coreRenderer) renderBBCodeBlock(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*BBCodeBlock)
	if entering {
		if r.enter(w, node, &n.invocation, "div") {
			_ = w.WriteByte('\n')
			return ast.WalkContinue, nil
		}
		if n.leaf {
			writeLiteralParagraph(w, n.open+"\n"+n.content+"\n"+n.close)
			return ast.WalkSkipChildren, nil
		}
		writeLiteralParagraph(w, n.open)
		return ast.WalkContinue, nil
	}

	if n.handled {
		if r.exit(w, node, &n.invocation) {
			_ = w.WriteByte('\n')
		}
		return ast.WalkContinue, nil
	}
	writeLiteralParagraph(w, n.close)
	return ast.WalkContinue, nil
}

func (r *coreRenderer) renderBBCodeInline(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*BBCodeInline)
	if entering {
		if r.enter(w, node, &n.invocation, "span") {
			if n.leaf {
				return ast.WalkSkipChildren, nil
			}
			return ast.WalkContinue, nil
		}
		if n.leaf {
			_, _ = w.Write(util.EscapeHTML([]byte(n.open + n.content + n.close)))
			return ast.WalkSkipChildren, nil
		}
		_, _ = w.Write(util.EscapeHTML([]byte(n.open)))
		return ast.WalkContinue, nil
	}

	if n.handled {
		r.exit(w, node, &n.invocation)
		return ast.WalkContinue, nil
	}
	_, _ = w.Write(util.EscapeHTML([]byte(n.close)))
	return ast.WalkContinue, nil
}

func (r *coreRenderer) renderMarker(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.Write(util.EscapeHTML([]byte(node.(*bbcodeMarker).raw)))
	}
	return ast.WalkSkipChildren, nil
}

// enter dispatches an invocation to its rule: Replace, then Wrap, then
// Before. It reports whether the rule handled the invocation.
func (r *coreRenderer) enter(w util.BufWriter, node ast.Node, inv *invocation, wrapTag string) bool {
	h := hoistFunc(node)
	var s ruler.Stream

	switch {
	case inv.rule.Replace != nil:
		if !inv.leaf || !inv.rule.Replace(&s, inv.info, inv.content) {
			return false
		}
		_, _ = w.WriteString(s.Render(h))
	case inv.rule.Wrap != nil:
		tok := &ruler.Token{Type: ruler.TokenOpen, Tag: wrapTag}
		if !inv.rule.Wrap(tok, inv.info) {
			return false
		}
		inv.wrap = tok
		var b strings.Builder
		ruler.WriteToken(&b, tok, h)
		_, _ = w.WriteString(b.String())
	case inv.rule.Before != nil:
		if !inv.rule.Before(&s, inv.info) {
			return false
		}
		_, _ = w.WriteString(s.Render(h))
	default:
		return false
	}
	inv.handled = true
	return true
}

// exit writes the closing output of a handled invocation and reports
// whether anything was written.
func (r *coreRenderer) exit(w util.BufWriter, node ast.Node, inv *invocation) bool {
	switch {
	case inv.leaf:
		return false
	case inv.wrap != nil:
		_, _ = w.WriteString("</" + inv.wrap.Tag + ">")
		return true
	case inv.rule.After != nil:
		var s ruler.Stream
		inv.rule.After(&s, inv.info)
		_, _ = w.WriteString(s.Render(hoistFunc(node)))
		return true
	}
	return false
}

func writeLiteralParagraph(w util.BufWriter, raw string) {
	_, _ = w.WriteString("<p>")
	_, _ = w.Write(util.EscapeHTML([]byte(raw)))
	_, _ = w.WriteString("</p>\n")
}
