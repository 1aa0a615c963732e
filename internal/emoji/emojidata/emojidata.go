// Package emojidata holds the static emoji tables: canonical names,
// glyphs, aliases, emoticon translations and the tonable set.
//
// Emojis and Tonable are generated from the gemoji database; the emoticon
// translations are maintained by hand.
package emojidata

//go:generate go run gen.go

// ImageVersion is appended to image URLs to bust caches when the sets change.
const ImageVersion = 12

// Emoji is one canonical emoji.
type Emoji struct {
	Name    string
	Glyph   string
	Aliases []string
}

// Translations maps typed emoticons to canonical names.
var Translations = map[string]string{
	":)":   "slight_smile",
	":-)":  "slight_smile",
	"^_^":  "slight_smile",
	":(":   "frowning",
	":-(":  "frowning",
	";)":   "wink",
	";-)":  "wink",
	":'(":  "cry",
	":'-(": "cry",
	":-'(": "cry",
	":p":   "stuck_out_tongue",
	":P":   "stuck_out_tongue",
	":-P":  "stuck_out_tongue",
	":O":   "open_mouth",
	":-O":  "open_mouth",
	":D":   "smiley",
	":-D":  "smiley",
	":|":   "expressionless",
	":-|":  "expressionless",
	":/":   "confused",
	":-/":  "confused",
	"8-)":  "sunglasses",
	";P":   "stuck_out_tongue_winking_eye",
	";-P":  "stuck_out_tongue_winking_eye",
	":$":   "blush",
	":-$":  "blush",
	"<3":   "heart",
	"</3":  "broken_heart",
}
