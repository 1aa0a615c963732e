package engine

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

const attachmentMarker = "attachment"

func (r *coreRenderer) renderLink(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Link)
	if !entering {
		_, _ = w.WriteString("</a>")
		return ast.WalkContinue, nil
	}

	href, orig := r.resolveUpload(string(n.Destination), missingUpload)
	_, _ = w.WriteString(`<a href="`)
	_, _ = w.Write(util.EscapeHTML(util.URLEscape([]byte(href), true)))
	_ = w.WriteByte('"')
	if n.Title != nil {
		_, _ = w.WriteString(` title="`)
		gmhtml.DefaultWriter.Write(w, n.Title)
		_ = w.WriteByte('"')
	}
	if orig != "" {
		writeAttr(w, "data-orig-href", orig)
	}
	if n.Attributes() != nil {
		gmhtml.RenderAttributes(w, n, gmhtml.LinkAttributeFilter)
	}
	_ = w.WriteByte('>')
	return ast.WalkContinue, nil
}

// renderAutoLink keeps valid %XX escapes in the href and shows the label
// percent-decoded, so "a%20b" reads as "a b" without being re-encoded.
func (r *coreRenderer) renderAutoLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.AutoLink)
	href := n.URL(source)
	label := string(n.Label(source))

	_, _ = w.WriteString(`<a href="`)
	if n.AutoLinkType == ast.AutoLinkEmail && !bytes.HasPrefix(bytes.ToLower(href), []byte("mailto:")) {
		_, _ = w.WriteString("mailto:")
	}
	_, _ = w.Write(util.EscapeHTML(util.URLEscape(href, false)))
	_ = w.WriteByte('"')
	if n.Attributes() != nil {
		gmhtml.RenderAttributes(w, n, gmhtml.LinkAttributeFilter)
	}
	_ = w.WriteByte('>')

	if decoded, err := url.PathUnescape(label); err == nil {
		label = decoded
	}
	_, _ = w.Write(util.EscapeHTML([]byte(label)))
	_, _ = w.WriteString("</a>")
	return ast.WalkContinue, nil
}

// attachmentTransformer rewrites links whose text ends in "|attachment".
type attachmentTransformer struct{}

func (t *attachmentTransformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	source := reader.Source()
	var links []*ast.Link
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if l, ok := n.(*ast.Link); ok {
				links = append(links, l)
			}
		}
		return ast.WalkContinue, nil
	})
	for _, l := range links {
		applyAttachment(l, source)
	}
}

func applyAttachment(l *ast.Link, source []byte) {
	last, ok := l.LastChild().(*ast.Text)
	if !ok {
		return
	}
	value := string(last.Segment.Value(source))
	head, rest, found := strings.Cut(value, "|")
	if !found {
		return
	}

	segs := strings.Split(rest, "|")
	marked := false
	for _, s := range segs {
		if strings.TrimSpace(s) == attachmentMarker {
			marked = true
			break
		}
	}
	if !marked {
		return
	}

	keep := []string{head}
	for _, s := range segs {
		seg := strings.TrimSpace(s)
		if seg == attachmentMarker {
			continue
		}
		if key, val, ok := strings.Cut(seg, "="); ok {
			if dataKeyPattern.MatchString(key) {
				l.SetAttributeString("data-"+key, []byte(val))
			}
			continue
		}
		keep = append(keep, s)
	}

	class := attachmentMarker
	if v, ok := l.AttributeString("class"); ok {
		if b, ok := v.([]byte); ok && len(b) > 0 {
			class = attachmentMarker + " " + string(b)
		}
	}
	l.SetAttributeString("class", []byte(class))

	str := ast.NewString([]byte(strings.Join(keep, "|")))
	l.ReplaceChild(l, last, str)
}
