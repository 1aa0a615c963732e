package builtin

import (
	"github.com/conneroisu/prettytext/internal/config"
	"github.com/conneroisu/prettytext/internal/features"
)

// setupEmoji only configures options and the allow-list. Substitution
// itself happens in the engine whenever this feature is enabled.
func setupEmoji(h *features.Helper) {
	h.AllowList("img.emoji", "img.emoji-custom", "img[loading]")
	h.RegisterOptions(func(o features.Options, site config.SiteConfig, _ features.State) features.Options {
		o.EnableEmoji = site.EnableEmoji
		o.Features[h.ID()] = site.EnableEmoji
		if site.EnableEmoji {
			o.EnableEmojiShortcuts = site.EnableEmojiShortcuts
		} else {
			o.EnableEmojiShortcuts = false
		}
		return o
	})
}
