package features

import (
	"github.com/conneroisu/prettytext/internal/emoji"
)

// LookupUploadFunc maps an upload:// short URL to its real URL.
type LookupUploadFunc func(shortURL string) (string, bool)

// LookupOneboxFunc returns cached preview markup for a URL.
type LookupOneboxFunc func(url string) (string, bool)

// LookupMentionFunc returns the profile link for a mentioned name.
type LookupMentionFunc func(name string) (string, bool)

// Lookups are the context callbacks a caller can supply per render.
type Lookups struct {
	UploadURL LookupUploadFunc
	Onebox    LookupOneboxFunc
	Mention   LookupMentionFunc
}

// State carries per-render facts that are not site configuration.
type State struct {
	Preview bool
	UserID  int
	Lookups Lookups
}

// Options is the render configuration produced by the option callbacks.
// Once setup completes it is only handed out as copies.
type Options struct {
	Features map[string]bool

	AllowedHrefSchemes []string
	AllowedIframes     []string
	Sanitize           bool

	EnableEmoji            bool
	InlineEmoji            bool
	EnableEmojiShortcuts   bool
	EmojiSet               string
	EmojiBaseURL           string
	CustomEmoji            map[string]string
	CustomEmojiTranslation map[string]string

	Preview bool

	LookupUploadURL LookupUploadFunc
	LookupOnebox    LookupOneboxFunc
	LookupMention   LookupMentionFunc

	AcceptableCodeClasses []string
	MaxOneboxes           int
}

// FeatureEnabled reports whether id is switched on.
func (o Options) FeatureEnabled(id string) bool {
	return o.Features[id]
}

// Clone returns a deep copy of the maps and slices in o.
func (o Options) Clone() Options {
	c := o
	c.Features = cloneBoolMap(o.Features)
	c.AllowedHrefSchemes = cloneStrings(o.AllowedHrefSchemes)
	c.AllowedIframes = cloneStrings(o.AllowedIframes)
	c.CustomEmoji = cloneStringMap(o.CustomEmoji)
	c.CustomEmojiTranslation = cloneStringMap(o.CustomEmojiTranslation)
	c.AcceptableCodeClasses = cloneStrings(o.AcceptableCodeClasses)
	return c
}

// EmojiOptions derives the emoji engine settings.
func (o Options) EmojiOptions() emoji.Options {
	return emoji.Options{
		InlineEmoji:            o.InlineEmoji,
		EnableEmojiShortcuts:   o.EnableEmojiShortcuts,
		EmojiSet:               o.EmojiSet,
		BaseURL:                o.EmojiBaseURL,
		CustomEmoji:            o.CustomEmoji,
		CustomEmojiTranslation: o.CustomEmojiTranslation,
	}
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

func cloneStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneBoolMap(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
