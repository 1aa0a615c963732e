// Package engine compiles markup to HTML with goldmark. It adds BBCode tag
// dispatch through the feature rulers, hoisting of markup that must bypass
// the sanitizer, media-aware images, attachment links, decoded autolinks and
// emoji substitution.
package engine

import (
	"bytes"
	"context"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"

	"github.com/conneroisu/prettytext/internal/emoji"
	"github.com/conneroisu/prettytext/internal/errors"
	"github.com/conneroisu/prettytext/internal/features"
	"github.com/conneroisu/prettytext/internal/hoist"
	"github.com/conneroisu/prettytext/internal/logging"
	"github.com/conneroisu/prettytext/internal/ruler"
)

// EmojiFeature is the feature id that switches emoji substitution on.
const EmojiFeature = "emoji"

// Result is the output of one render.
type Result struct {
	HTML    string
	Hoisted map[string]string
}

// Engine is a configured compiler. It is safe for concurrent use once built.
type Engine struct {
	md     goldmark.Markdown
	opts   features.Options
	block  *ruler.Ruler
	inline *ruler.Ruler
	emoji  *emoji.Engine
	exts   []goldmark.Extender
	built  bool
	logger logging.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithEmojiEngine sets the emoji engine used for substitution, for example
// one carrying extended emoji.
func WithEmojiEngine(e *emoji.Engine) Option {
	return func(en *Engine) {
		en.emoji = e
	}
}

// New builds an engine from a composed feature configuration.
func New(cfg *features.Config, logger logging.Logger, opts ...Option) (*Engine, error) {
	if cfg == nil || !cfg.Complete() {
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig, "feature configuration has not been set up").
			WithComponent("engine")
	}
	if logger == nil {
		logger = logging.Nop()
	}

	e := &Engine{
		opts:   cfg.Options(),
		block:  ruler.New(),
		inline: ruler.New(),
		logger: logger.WithComponent("engine"),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.emoji == nil {
		e.emoji = emoji.New(emoji.WithLogger(logger))
	}

	cfg.ApplyPlugins(e)
	e.built = true

	exts := []goldmark.Extender{extension.Linkify, hoist.Extension}
	exts = append(exts, e.exts...)
	exts = append(exts, &coreExtension{engine: e})

	e.md = goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	e.logger.Debug(context.Background(), "engine built",
		"block_rules", e.block.Len(),
		"inline_rules", e.inline.Len(),
		"extensions", len(e.exts))

	return e, nil
}

// BlockBBCode returns the ruler for block tag invocations.
func (e *Engine) BlockBBCode() *ruler.Ruler {
	return e.block
}

// InlineBBCode returns the ruler for inline tag invocations.
func (e *Engine) InlineBBCode() *ruler.Ruler {
	return e.inline
}

// Use adds a goldmark extension. It only has an effect while plugins are
// being applied.
func (e *Engine) Use(ext goldmark.Extender) {
	if e.built {
		e.logger.Warn(context.Background(), nil, "extension added after build is ignored")
		return
	}
	e.exts = append(e.exts, ext)
}

// Options returns a copy of the render options.
func (e *Engine) Options() features.Options {
	return e.opts.Clone()
}

// Emoji returns the emoji engine used for substitution.
func (e *Engine) Emoji() *emoji.Engine {
	return e.emoji
}

func (e *Engine) emojiEnabled() bool {
	return e.opts.EnableEmoji && e.opts.FeatureEnabled(EmojiFeature)
}

// Render compiles raw. Markup hoisted during compilation is returned in
// Result.Hoisted and must be put back with Unhoist after sanitizing.
func (e *Engine) Render(raw string) (Result, error) {
	store := hoist.New()
	pc := parser.NewContext(parser.WithIDs(newHeadingIDs()))
	hoist.WithContext(pc, store)

	src := []byte(raw)
	doc := e.md.Parser().Parse(text.NewReader(src), parser.WithContext(pc))
	hoist.Attach(doc, store)

	var buf bytes.Buffer
	if err := e.md.Renderer().Render(&buf, src, doc); err != nil {
		return Result{}, errors.NewRenderError(errors.ErrCodeRenderFailed, "render markup", err).
			WithComponent("engine")
	}

	return Result{HTML: buf.String(), Hoisted: store.Map()}, nil
}

// Unhoist puts hoisted markup back into html.
func Unhoist(html string, hoisted map[string]string) string {
	return hoist.Unhoist(html, hoisted)
}
