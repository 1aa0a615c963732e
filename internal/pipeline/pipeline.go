// Package pipeline is the render entry point: compile the markup, sanitize
// the HTML, then restore the hoisted fragments.
package pipeline

import (
	"context"
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"

	"github.com/conneroisu/prettytext/internal/config"
	"github.com/conneroisu/prettytext/internal/emoji"
	"github.com/conneroisu/prettytext/internal/engine"
	"github.com/conneroisu/prettytext/internal/errors"
	"github.com/conneroisu/prettytext/internal/features"
	"github.com/conneroisu/prettytext/internal/features/builtin"
	"github.com/conneroisu/prettytext/internal/logging"
	"github.com/conneroisu/prettytext/internal/sanitizer"
)

// Pipeline renders markup to safe HTML. It is safe for concurrent use.
type Pipeline struct {
	cfg       *features.Config
	engine    *engine.Engine
	sanitizer *sanitizer.Sanitizer
	sanitize  bool
	logger    logging.Logger
}

// New builds a pipeline from a composed configuration.
func New(cfg *features.Config, logger logging.Logger, opts ...engine.Option) (*Pipeline, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	e, err := engine.New(cfg, logger, opts...)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		cfg:       cfg,
		engine:    e,
		sanitizer: sanitizer.New(cfg.AllowList(), sanitizer.WithLogger(logger)),
		sanitize:  cfg.Options().Sanitize,
		logger:    logger.WithComponent("pipeline"),
	}, nil
}

// Default composes the built-in features for site and state. A configured
// custom emoji file is merged under the inline custom emoji settings.
func Default(site config.SiteConfig, state features.State, logger logging.Logger) (*Pipeline, error) {
	if logger == nil {
		logger = logging.Nop()
	}

	if site.CustomEmojiFile != "" {
		set, err := emoji.LoadCustomFile(site.CustomEmojiFile)
		if err != nil {
			return nil, err
		}
		site.CustomEmoji = merge(set.Emoji, site.CustomEmoji)
		site.CustomEmojiTranslation = merge(set.Translations, site.CustomEmojiTranslation)
	}

	cfg := &features.Config{}
	if err := features.NewComposer(builtin.Manifest(), logger).Setup(cfg, site, state); err != nil {
		return nil, err
	}
	return New(cfg, logger, engine.WithEmojiEngine(emoji.New(emoji.WithLogger(logger))))
}

// merge returns base overlaid with override.
func merge(base, override map[string]string) map[string]string {
	if len(base) == 0 {
		return override
	}
	out := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

// Render compiles raw and returns the final HTML.
func (p *Pipeline) Render(raw string) (string, error) {
	op := logging.StartOperation(p.logger, "render")

	res, err := p.engine.Render(raw)
	if err != nil {
		op.EndWithError(context.Background(), err)
		return "", err
	}
	out := res.HTML
	if p.sanitize {
		out = p.sanitizer.Sanitize(out)
	}
	out = engine.Unhoist(out, res.Hoisted)

	op.End(context.Background(), "input_bytes", len(raw), "output_bytes", len(out), "hoisted", len(res.Hoisted))
	return out, nil
}

// Sanitize filters html against the composed allow-list, whatever the
// sanitize option says.
func (p *Pipeline) Sanitize(html string) string {
	return p.sanitizer.Sanitize(html)
}

// Engine returns the underlying engine.
func (p *Pipeline) Engine() *engine.Engine {
	return p.engine
}

// Config returns the composed configuration.
func (p *Pipeline) Config() *features.Config {
	return p.cfg
}

// Features lists the composed features.
func (p *Pipeline) Features() []features.FeatureInfo {
	return p.cfg.Features()
}

const ellipsis = "…"

var (
	strictPolicy = bluemonday.StrictPolicy()
	blockEnd     = regexp.MustCompile(`(?i)</(?:p|div|li|h[1-6]|blockquote|pre|tr|td|th|aside|details|summary)>|<br\s*/?>`)
)

// Excerpt strips all markup from html and truncates the text to maxLen
// runes, adding an ellipsis when it cuts. maxLen <= 0 disables truncation.
func Excerpt(htmlText string, maxLen int) string {
	spaced := blockEnd.ReplaceAllString(htmlText, "$0 ")
	text := html.UnescapeString(strictPolicy.Sanitize(spaced))
	text = strings.Join(strings.Fields(text), " ")

	if maxLen <= 0 || utf8.RuneCountInString(text) <= maxLen {
		return text
	}
	runes := []rune(text)
	return strings.TrimRight(string(runes[:maxLen]), " ") + ellipsis
}

// RenderExcerpt renders raw and returns its plain-text excerpt.
func (p *Pipeline) RenderExcerpt(raw string, maxLen int) (string, error) {
	out, err := p.Render(raw)
	if err != nil {
		return "", errors.NewRenderError(errors.ErrCodeRenderFailed, "render excerpt", err).
			WithComponent("pipeline")
	}
	return Excerpt(out, maxLen), nil
}
