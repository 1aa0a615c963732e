// Package features composes the render configuration from a static manifest
// of features. Each feature contributes allow-list selectors, option
// callbacks and compiler plugins through a Helper bound to its id.
package features

import (
	"sort"

	"github.com/yuin/goldmark"

	"github.com/conneroisu/prettytext/internal/allowlist"
	"github.com/conneroisu/prettytext/internal/config"
	"github.com/conneroisu/prettytext/internal/ruler"
)

// Feature is one entry of a manifest.
type Feature struct {
	ID          string
	Description string
	// Priority orders setup; lower values run first.
	Priority int
	Setup    func(h *Helper)
}

// Manifest is the ordered list of known features.
type Manifest []Feature

// Sorted returns the features ordered by priority. Features with equal
// priority keep their declaration order.
func (m Manifest) Sorted() []Feature {
	out := make([]Feature, len(m))
	copy(out, m)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority < out[j].Priority
	})
	return out
}

// IDs returns the feature ids in declaration order.
func (m Manifest) IDs() []string {
	ids := make([]string, len(m))
	for i, f := range m {
		ids[i] = f.ID
	}
	return ids
}

// OptionsFunc transforms the in-progress options. Callbacks run in discovery
// order and must not retain opts.
type OptionsFunc func(opts Options, site config.SiteConfig, state State) Options

// PluginFunc installs a feature's rules and extensions on a compiler.
type PluginFunc func(c Compiler)

// Compiler is the surface a plugin sees of the markdown engine.
type Compiler interface {
	BlockBBCode() *ruler.Ruler
	InlineBBCode() *ruler.Ruler
	Use(ext goldmark.Extender)
	Options() Options
}

// Helper is handed to a feature's Setup and records its contributions.
type Helper struct {
	id  string
	cfg *Config
}

// ID returns the id of the feature being set up.
func (h *Helper) ID() string {
	return h.id
}

// AllowList admits the given selectors while the feature is enabled. A
// malformed selector fails the setup.
func (h *Helper) AllowList(selectors ...string) {
	h.cfg.setupErrs.Add(h.cfg.allowList.AllowListFeature(h.id, allowlist.Info{Selectors: selectors}))
}

// AllowListCustom admits attributes accepted by pred while the feature is
// enabled.
func (h *Helper) AllowListCustom(pred allowlist.Predicate) {
	h.cfg.setupErrs.Add(h.cfg.allowList.AllowListFeature(h.id, allowlist.Info{Custom: pred}))
}

// RegisterOptions adds a callback to the option chain.
func (h *Helper) RegisterOptions(fn OptionsFunc) {
	h.cfg.optionFns = append(h.cfg.optionFns, fn)
}

// RegisterPlugin adds a compiler plugin that runs while the feature is enabled.
func (h *Helper) RegisterPlugin(fn PluginFunc) {
	h.cfg.plugins = append(h.cfg.plugins, plugin{feature: h.id, fn: fn})
}

// GetOptions returns a live view of the options. During setup it holds the
// site defaults; once setup completes it holds the finalized options, so
// plugins may keep the pointer and read it at compile time. Do not modify.
func (h *Helper) GetOptions() *Options {
	return &h.cfg.options
}
