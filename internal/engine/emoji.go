package engine

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/conneroisu/prettytext/internal/emoji"
)

// KindEmoji is the kind of Emoji nodes.
var KindEmoji = ast.NewNodeKind("Emoji")

// Emoji is a resolved emoji occurrence.
type Emoji struct {
	ast.BaseInline
	Match emoji.Match
}

func (n *Emoji) Kind() ast.NodeKind { return KindEmoji }

func (n *Emoji) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Name": n.Match.Name, "URL": n.Match.URL}, nil)
}

// emojiTransformer splits text nodes around emoji matches.
type emojiTransformer struct {
	engine *emoji.Engine
	opts   emoji.Options
}

func (t *emojiTransformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	source := reader.Source()
	var texts []*ast.Text
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindCodeSpan, ast.KindImage, ast.KindAutoLink, ast.KindRawHTML,
			ast.KindCodeBlock, ast.KindFencedCodeBlock, ast.KindHTMLBlock:
			return ast.WalkSkipChildren, nil
		case ast.KindText:
			if t := n.(*ast.Text); !t.IsRaw() {
				texts = append(texts, t)
			}
		}
		return ast.WalkContinue, nil
	})

	for _, tx := range texts {
		t.split(tx, source)
	}
}

func (t *emojiTransformer) split(tx *ast.Text, source []byte) {
	seg := tx.Segment
	matches := t.engine.FindAll(string(seg.Value(source)), t.opts)
	if len(matches) == 0 {
		return
	}
	parent := tx.Parent()
	last := 0
	for _, m := range matches {
		if m.Start > last {
			parent.InsertBefore(parent, tx, ast.NewTextSegment(text.NewSegment(seg.Start+last, seg.Start+m.Start)))
		}
		parent.InsertBefore(parent, tx, &Emoji{Match: m})
		last = m.End
	}

	if last < seg.Len() || tx.SoftLineBreak() || tx.HardLineBreak() {
		tx.Segment = text.NewSegment(seg.Start+last, seg.Stop)
		return
	}
	parent.RemoveChild(parent, tx)
}

func (r *coreRenderer) renderEmoji(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString(emoji.ImageTag(node.(*Emoji).Match, r.emojiOpts))
	}
	return ast.WalkSkipChildren, nil
}
