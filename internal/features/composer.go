package features

import (
	"context"
	"fmt"

	"github.com/conneroisu/prettytext/internal/allowlist"
	"github.com/conneroisu/prettytext/internal/config"
	"github.com/conneroisu/prettytext/internal/errors"
	"github.com/conneroisu/prettytext/internal/logging"
	"github.com/conneroisu/prettytext/internal/validation"
)

type plugin struct {
	feature string
	fn      PluginFunc
}

// FeatureInfo describes a feature after setup.
type FeatureInfo struct {
	ID          string `json:"id" yaml:"id"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Priority    int    `json:"priority" yaml:"priority"`
	Enabled     bool   `json:"enabled" yaml:"enabled"`
}

// Config is the composed render configuration. The zero value is ready for
// Composer.Setup; after setup it is read-only.
type Config struct {
	options   Options
	allowList *allowlist.Builder
	optionFns []OptionsFunc
	plugins   []plugin
	features  []FeatureInfo
	setupErrs *errors.Collector
	complete  bool
}

// Complete reports whether Setup has run.
func (c *Config) Complete() bool {
	return c.complete
}

// Options returns a copy of the finalized options.
func (c *Config) Options() Options {
	return c.options.Clone()
}

// AllowList returns the allow-list builder populated by the features.
func (c *Config) AllowList() *allowlist.Builder {
	return c.allowList
}

// ApplyPlugins runs the plugins of every enabled feature in discovery order.
func (c *Config) ApplyPlugins(comp Compiler) {
	for _, p := range c.plugins {
		if !c.options.Features[p.feature] {
			continue
		}
		p.fn(comp)
	}
}

// Features lists the manifest's features in setup order.
func (c *Config) Features() []FeatureInfo {
	out := make([]FeatureInfo, len(c.features))
	copy(out, c.features)
	return out
}

// Composer runs a manifest's setup against a Config.
type Composer struct {
	manifest Manifest
	logger   logging.Logger
}

// NewComposer creates a composer for manifest. A nil logger discards output.
func NewComposer(manifest Manifest, logger logging.Logger) *Composer {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Composer{
		manifest: manifest,
		logger:   logger.WithComponent("features"),
	}
}

// Manifest returns the composer's manifest.
func (c *Composer) Manifest() Manifest {
	return c.manifest
}

// Setup runs each feature's setup exactly once, threads the option callbacks
// and switches off disabled features on the allow-list. Calling Setup on a
// complete cfg does nothing.
func (c *Composer) Setup(cfg *Config, site config.SiteConfig, state State) error {
	if cfg.complete {
		return nil
	}

	if err := c.validate(); err != nil {
		return err
	}

	cfg.allowList = allowlist.NewBuilder(
		allowlist.WithHrefSchemes(site.AllowedHrefSchemes...),
		allowlist.WithIframes(site.AllowedIframes...),
	)
	cfg.options = baseOptions(site, state)
	cfg.optionFns = nil
	cfg.plugins = nil
	cfg.setupErrs = errors.NewCollector()

	sorted := c.manifest.Sorted()
	for _, f := range sorted {
		if f.Setup == nil {
			continue
		}
		f.Setup(&Helper{id: f.ID, cfg: cfg})
	}
	if err := cfg.setupErrs.Err(errors.ErrCodeInvalidSelector, "feature setup rejected"); err != nil {
		return err
	}

	opts := cfg.options
	for _, fn := range cfg.optionFns {
		opts = fn(opts, site, state)
	}
	if opts.Features == nil {
		opts.Features = make(map[string]bool)
	}

	cfg.features = make([]FeatureInfo, 0, len(sorted))
	for _, f := range sorted {
		enabled, explicit := site.Features.FeatureState(f.ID)
		if explicit {
			opts.Features[f.ID] = enabled
		} else if _, named := opts.Features[f.ID]; !named {
			opts.Features[f.ID] = true
		}

		if !opts.Features[f.ID] {
			cfg.allowList.Disable(f.ID)
		}

		cfg.features = append(cfg.features, FeatureInfo{
			ID:          f.ID,
			Description: f.Description,
			Priority:    f.Priority,
			Enabled:     opts.Features[f.ID],
		})
	}

	cfg.options = opts
	cfg.complete = true

	c.logger.Debug(context.Background(), "features composed",
		"features", len(cfg.features),
		"plugins", len(cfg.plugins),
		"option_callbacks", len(cfg.optionFns))

	return nil
}

func (c *Composer) validate() error {
	seen := make(map[string]bool, len(c.manifest))
	for _, f := range c.manifest {
		if err := validation.ValidateFeatureName(f.ID); err != nil {
			return errors.NewConfigError(errors.ErrCodeInvalidConfig, "invalid feature id").
				WithContext("feature", f.ID).
				WithComponent("features")
		}
		if seen[f.ID] {
			return errors.NewConfigError(errors.ErrCodeDuplicateFeature,
				fmt.Sprintf("feature %q is declared more than once", f.ID)).
				WithContext("feature", f.ID).
				WithComponent("features")
		}
		seen[f.ID] = true
	}
	return nil
}

func baseOptions(site config.SiteConfig, state State) Options {
	return Options{
		Features:               make(map[string]bool),
		AllowedHrefSchemes:     cloneStrings(site.AllowedHrefSchemes),
		AllowedIframes:         cloneStrings(site.AllowedIframes),
		Sanitize:               site.Sanitize,
		EnableEmoji:            site.EnableEmoji,
		InlineEmoji:            site.InlineEmoji,
		EnableEmojiShortcuts:   site.EnableEmojiShortcuts,
		EmojiSet:               site.EmojiSet,
		EmojiBaseURL:           site.BaseURL,
		CustomEmoji:            cloneStringMap(site.CustomEmoji),
		CustomEmojiTranslation: cloneStringMap(site.CustomEmojiTranslation),
		Preview:                state.Preview,
		LookupUploadURL:        state.Lookups.UploadURL,
		LookupOnebox:           state.Lookups.Onebox,
		LookupMention:          state.Lookups.Mention,
		AcceptableCodeClasses:  cloneStrings(site.AcceptableCodeClasses),
		MaxOneboxes:            site.MaxOneboxes,
	}
}
