// Package builtin is the manifest of features that ship with prettytext.
// Each feature contributes allow-list selectors, option callbacks and
// compiler plugins through the features.Helper it is set up with.
package builtin

import (
	"github.com/conneroisu/prettytext/internal/features"
)

// Manifest returns the built-in features. A new slice is returned on every
// call so callers may append their own.
func Manifest() features.Manifest {
	return features.Manifest{
		{ID: "emoji", Description: "Emoji shortcodes, glyphs and emoticons as images", Priority: -10, Setup: setupEmoji},
		{ID: "details", Description: "[details] collapsible sections", Setup: setupDetails},
		{ID: "quote", Description: "[quote] blocks with attribution", Setup: setupQuote},
		{ID: "wrap", Description: "[wrap] named block and inline containers", Setup: setupWrap},
		{ID: "spoiler", Description: "[spoiler] hidden content", Setup: setupSpoiler},
		{ID: "bbcode-inline", Description: "[b] [i] [u] [s] [url] [email] [img] tags", Setup: setupBBCodeInline},
		{ID: "mentions", Description: "@name mentions", Setup: setupMentions},
		{ID: "onebox", Description: "Link previews for bare URLs", Setup: setupOnebox},
		{ID: "upload", Description: "upload:// references and attachments", Setup: setupUpload},
		{ID: "media", Description: "Video and audio players", Setup: setupMedia},
		{ID: "code", Description: "Fenced code blocks with language classes", Setup: setupCode},
		{ID: "table", Description: "Pipe tables", Setup: setupTable},
		{ID: "strikethrough", Description: "~~strikethrough~~", Setup: setupStrikethrough},
		{ID: "heading-anchors", Description: "Heading ids with anchor links", Priority: 10, Setup: setupHeadingAnchors},
		{ID: "html-embed", Description: "Embedded iframes from allowed origins", Setup: setupHTMLEmbed},
	}
}
