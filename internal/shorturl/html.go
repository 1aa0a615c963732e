package shorturl

import (
	"context"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/conneroisu/prettytext/internal/errors"
)

// RemovedClass marks an element whose upload no longer exists.
const RemovedClass = "image-removed"

// origAttrs maps the attribute holding the short URL to the one it resolves.
var origAttrs = map[string]string{
	"data-orig-src":  "src",
	"data-orig-href": "href",
}

// ResolveHTML rewrites src/href of elements carrying a data-orig-src or
// data-orig-href upload reference. All references are looked up in one
// batch. Missing uploads get the image-removed class.
func ResolveHTML(ctx context.Context, src string, resolver *Resolver) (string, error) {
	shorts, err := collect(src)
	if err != nil {
		return "", err
	}
	if len(shorts) == 0 {
		return src, nil
	}

	uploads, err := resolver.Lookup(ctx, shorts)
	if err != nil {
		return "", err
	}

	z := html.NewTokenizer(strings.NewReader(src))
	var out strings.Builder
	out.Grow(len(src))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); err != io.EOF {
				return "", tokenizeError(err)
			}
			return out.String(), nil
		}
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			out.Write(z.Raw())
			continue
		}

		raw := string(z.Raw())
		tok := z.Token()
		if !rewrite(&tok, uploads) {
			out.WriteString(raw)
			continue
		}
		out.WriteString(tok.String())
	}
}

// collect returns the distinct upload references in src, in document order.
func collect(src string) ([]string, error) {
	z := html.NewTokenizer(strings.NewReader(src))
	seen := make(map[string]bool)
	var shorts []string
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, tokenizeError(err)
			}
			return shorts, nil
		case html.StartTagToken, html.SelfClosingTagToken:
			_, hasAttr := z.TagName()
			for hasAttr {
				var k, v []byte
				k, v, hasAttr = z.TagAttr()
				if _, ok := origAttrs[string(k)]; !ok {
					continue
				}
				if s := string(v); IsShortURL(s) && !seen[s] {
					seen[s] = true
					shorts = append(shorts, s)
				}
			}
		}
	}
}

// rewrite applies resolved uploads to tok and reports whether it changed.
func rewrite(tok *html.Token, uploads map[string]Upload) bool {
	changed := false
	for _, a := range tok.Attr {
		target, ok := origAttrs[a.Key]
		if !ok {
			continue
		}
		u, ok := uploads[a.Val]
		if !ok {
			continue
		}
		if u.IsMissing() {
			addClass(tok, RemovedClass)
			changed = true
			continue
		}
		if u.URL != "" {
			setAttr(tok, target, u.URL)
			changed = true
		}
	}
	return changed
}

func setAttr(tok *html.Token, key, val string) {
	for i := range tok.Attr {
		if tok.Attr[i].Key == key {
			tok.Attr[i].Val = val
			return
		}
	}
	tok.Attr = append(tok.Attr, html.Attribute{Key: key, Val: val})
}

func addClass(tok *html.Token, class string) {
	for i := range tok.Attr {
		if tok.Attr[i].Key != "class" {
			continue
		}
		for _, c := range strings.Fields(tok.Attr[i].Val) {
			if c == class {
				return
			}
		}
		tok.Attr[i].Val = strings.TrimSpace(tok.Attr[i].Val + " " + class)
		return
	}
	tok.Attr = append(tok.Attr, html.Attribute{Key: "class", Val: class})
}

func tokenizeError(err error) error {
	return errors.NewRenderError(errors.ErrCodeRenderFailed, "tokenize rendered html", err).
		WithComponent("shorturl")
}
