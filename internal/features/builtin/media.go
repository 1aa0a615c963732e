package builtin

import (
	"github.com/conneroisu/prettytext/internal/features"
)

func setupUpload(h *features.Helper) {
	h.AllowList(
		"img[data-orig-src]",
		"img[data-thumbnail]",
		"img[data-*]",
		"a[data-orig-href]",
		"a[data-*]",
		"a.attachment",
		"img.image-removed",
	)
}

func setupMedia(h *features.Helper) {
	h.AllowList(
		"div.video-container",
		"div.onebox-placeholder-container",
		"span.placeholder-icon",
		"span.video",
		"span.audio",
		"video[width]",
		"video[height]",
		"video[preload]",
		"video[controls]",
		"video[loop]",
		"video[poster]",
		"audio[preload]",
		"audio[controls]",
		"audio[loop]",
		"source[src]",
		"source[type]",
		"source[data-orig-src]",
	)
}

func setupHTMLEmbed(h *features.Helper) {
	h.AllowList(
		"iframe[allow]",
		"iframe[allowfullscreen]",
		"iframe[frameborder]",
		"iframe[height]",
		"iframe[width]",
		"iframe[loading]",
		"iframe[referrerpolicy]",
		"iframe[sandbox]",
		"iframe[title]",
	)
}
