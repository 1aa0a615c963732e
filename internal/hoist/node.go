package hoist

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// KindBlock is the kind of Block nodes.
var KindBlock = ast.NewNodeKind("HoistedBlock")

// KindInline is the kind of Inline nodes.
var KindInline = ast.NewNodeKind("HoistedInline")

// Block is a block node whose markup is hoisted when rendered.
type Block struct {
	ast.BaseBlock
	HTML string
}

// NewBlock returns a Block carrying html.
func NewBlock(html string) *Block {
	return &Block{HTML: html}
}

func (n *Block) Kind() ast.NodeKind { return KindBlock }

func (n *Block) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"HTML": n.HTML}, nil)
}

// Inline is an inline node whose markup is hoisted when rendered.
type Inline struct {
	ast.BaseInline
	HTML string
}

// NewInline returns an Inline carrying html.
func NewInline(html string) *Inline {
	return &Inline{HTML: html}
}

func (n *Inline) Kind() ast.NodeKind { return KindInline }

func (n *Inline) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"HTML": n.HTML}, nil)
}

// Write emits the id for html, or html itself when n's document carries no
// store.
func Write(w util.BufWriter, n ast.Node, html string) {
	if s := FromNode(n); s != nil {
		_, _ = w.WriteString(s.Hoist(html))
		return
	}
	_, _ = w.WriteString(html)
}

type nodeRenderer struct{}

func (r *nodeRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindBlock, r.renderBlock)
	reg.Register(KindInline, r.renderInline)
}

func (r *nodeRenderer) renderBlock(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		Write(w, node, node.(*Block).HTML)
		_ = w.WriteByte('\n')
	}
	return ast.WalkSkipChildren, nil
}

func (r *nodeRenderer) renderInline(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		Write(w, node, node.(*Inline).HTML)
	}
	return ast.WalkSkipChildren, nil
}

type extension struct{}

// Extension renders Block and Inline nodes through the document's store.
var Extension goldmark.Extender = &extension{}

func (e *extension) Extend(m goldmark.Markdown) {
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&nodeRenderer{}, 100),
	))
}
