package onebox

import (
	"context"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/conneroisu/prettytext/internal/errors"
)

// EnrichHTML loads a preview for every a.onebox link in src and substitutes
// the previews that resolve. Links that fail stay as they are.
func EnrichHTML(ctx context.Context, src string, loader *Loader) (string, error) {
	z := html.NewTokenizer(strings.NewReader(src))
	var out strings.Builder
	out.Grow(len(src))

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); err != io.EOF {
				return "", errors.NewRenderError(errors.ErrCodeRenderFailed, "tokenize rendered html", err).
					WithComponent("onebox")
			}
			return out.String(), nil
		}

		raw := string(z.Raw())
		if tt != html.StartTagToken {
			out.WriteString(raw)
			continue
		}
		href, class, ok := oneboxAnchor(z)
		if !ok {
			out.WriteString(raw)
			continue
		}

		anchor, complete := readAnchor(z, raw)
		if !complete {
			out.WriteString(anchor)
			return out.String(), nil
		}
		if preview, ok := loader.Load(ctx, NewLink(href, class), LoadOptions{Synchronous: true}); ok {
			out.WriteString(preview)
			continue
		}
		out.WriteString(anchor)
	}
}

// oneboxAnchor reports whether the current start tag is an a.onebox with an
// href.
func oneboxAnchor(z *html.Tokenizer) (href, class string, ok bool) {
	name, hasAttr := z.TagName()
	if string(name) != "a" {
		return "", "", false
	}
	for hasAttr {
		var k, v []byte
		k, v, hasAttr = z.TagAttr()
		switch string(k) {
		case "href":
			href = string(v)
		case "class":
			class = string(v)
		}
	}
	for _, c := range strings.Fields(class) {
		if c == "onebox" {
			return href, class, href != ""
		}
	}
	return "", "", false
}

// readAnchor consumes tokens up to and including </a>. complete is false
// when the input ends first.
func readAnchor(z *html.Tokenizer, start string) (string, bool) {
	var b strings.Builder
	b.WriteString(start)
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return b.String(), false
		}
		b.WriteString(string(z.Raw()))
		if tt == html.EndTagToken {
			if name, _ := z.TagName(); string(name) == "a" {
				return b.String(), true
			}
		}
	}
}
