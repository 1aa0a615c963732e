package engine

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"

	"github.com/conneroisu/prettytext/internal/emoji"
	"github.com/conneroisu/prettytext/internal/features"
)

// coreExtension installs the tag parsers, the transformers and the custom
// renderers. Feature extensions may override any renderer by registering
// with a priority below 100.
type coreExtension struct {
	engine *Engine
}

func (x *coreExtension) Extend(m goldmark.Markdown) {
	e := x.engine
	transformers := []util.PrioritizedValue{
		util.Prioritized(&pairTransformer{}, 100),
		util.Prioritized(&attachmentTransformer{}, 200),
	}
	if e.emojiEnabled() {
		transformers = append(transformers,
			util.Prioritized(&emojiTransformer{engine: e.emoji, opts: e.opts.EmojiOptions()}, 900))
	}

	m.Parser().AddOptions(
		parser.WithBlockParsers(util.Prioritized(&blockParser{rules: e.block}, 850)),
		parser.WithInlineParsers(util.Prioritized(&inlineParser{rules: e.inline}, 150)),
		parser.WithASTTransformers(transformers...),
	)
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(newCoreRenderer(e.opts), 100),
	))
}

type coreRenderer struct {
	opts      features.Options
	emojiOpts emoji.Options
}

func newCoreRenderer(opts features.Options) *coreRenderer {
	return &coreRenderer{opts: opts, emojiOpts: opts.EmojiOptions()}
}

func (r *coreRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindLink, r.renderLink)
	reg.Register(ast.KindAutoLink, r.renderAutoLink)
	reg.Register(ast.KindImage, r.renderImage)
	reg.Register(KindBBCodeBlock, r.renderBBCodeBlock)
	reg.Register(KindBBCodeInline, r.renderBBCodeInline)
	reg.Register(KindBBCodeMarker, r.renderMarker)
	reg.Register(KindEmoji, r.renderEmoji)
}
