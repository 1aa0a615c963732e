package allowlist

// DefaultSelectors is the allow-list of the always-active default feature.
// href, src and heading ids are not listed: the sanitizer validates them
// separately.
var DefaultSelectors = []string{
	"a.attachment",
	"a.hashtag",
	"a.mention",
	"a.mention-group",
	"a.onebox",
	"a.inline-onebox",
	"a.inline-onebox-loading",
	"a[data-bbcode]",
	"a[name]",
	"a[rel=nofollow]",
	"a[target=_blank]",
	"a[title]",
	"abbr[title]",
	"aside.quote",
	"aside[data-*]",
	"b",
	"big",
	"blockquote",
	"br",
	"code",
	"dd",
	"del",
	"div",
	"div.quote-controls",
	"div.title",
	"div.excerpt",
	"div.video-container",
	"div.onebox-placeholder-container",
	"div[align]",
	"div[dir]",
	"div[lang]",
	"div[data-*]",
	"dl",
	"dt",
	"em",
	"h1",
	"h2",
	"h3",
	"h4",
	"h5",
	"h6",
	"hr",
	"i",
	"iframe",
	"iframe[allowfullscreen]",
	"iframe[frameborder]",
	"iframe[height]",
	"iframe[marginheight]",
	"iframe[marginwidth]",
	"iframe[width]",
	"img[alt]",
	"img[height]",
	"img[title]",
	"img[width]",
	"ins",
	"kbd",
	"li",
	"ol",
	"ol[start]",
	"p",
	"p[lang]",
	"pre",
	"s",
	"small",
	"span",
	"span.excerpt",
	"span.hashtag",
	"span.mention",
	"span.placeholder-icon",
	"span.video",
	"span.audio",
	"span[lang]",
	"strike",
	"strong",
	"sub",
	"sup",
	"ul",
}

