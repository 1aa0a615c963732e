package engine

import (
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	"github.com/conneroisu/prettytext/internal/ruler"
)

const (
	uploadScheme     = "upload://"
	transparentImage = "/images/transparent.png"
	missingUpload    = "/404"
)

var (
	// WxH, optionally followed by ,P% or ,Wx or ,xH.
	imageSizePattern = regexp.MustCompile(`^(\d{1,6})x(\d{1,6})(?:,(?:([1-9]\d{0,2})%|(\d{1,6})x|x(\d{1,6})))?$`)
	dataKeyPattern   = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)
)

// ImageAlt is the decoded form of an image's alt text.
type ImageAlt struct {
	Alt       string
	Width     int
	Height    int
	HasSize   bool
	Thumbnail bool
	// Media is "video", "audio" or empty.
	Media string
	// Data holds data-* attributes from key=value segments, in order.
	Data []ruler.Attr
}

// ParseImageAlt decodes the pipe-delimited alt micro-language, for example
// "photo|300x200,50%|thumbnail|caption=Sunset". The first segment is always
// alt text. Segments that are not directives are rejoined into the alt text.
func ParseImageAlt(alt string) ImageAlt {
	parts := strings.Split(alt, "|")
	out := ImageAlt{}
	keep := parts[:1:1]

	for _, part := range parts[1:] {
		seg := strings.TrimSpace(part)
		switch seg {
		case "video", "audio":
			out.Media = seg
			continue
		case "thumbnail":
			out.Thumbnail = true
			continue
		}
		if w, h, ok := parseImageSize(seg); ok {
			out.Width, out.Height, out.HasSize = w, h, true
			continue
		}
		if key, value, ok := strings.Cut(seg, "="); ok {
			if dataKeyPattern.MatchString(key) {
				out.Data = append(out.Data, ruler.Attr{Name: "data-" + key, Value: value})
			}
			continue
		}
		keep = append(keep, part)
	}

	out.Alt = strings.Join(keep, "|")
	return out
}

// parseImageSize computes the final dimensions of a size directive. A
// percentage scales both sides; a width or height override rescales the
// other side proportionally.
func parseImageSize(s string) (int, int, bool) {
	m := imageSizePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	w, _ := strconv.Atoi(m[1])
	h, _ := strconv.Atoi(m[2])

	switch {
	case m[3] != "":
		pct, _ := strconv.Atoi(m[3])
		w, h = w*pct/100, h*pct/100
	case m[4] != "":
		nw, _ := strconv.Atoi(m[4])
		if w > 0 {
			h = h * nw / w
		}
		w = nw
	case m[5] != "":
		nh, _ := strconv.Atoi(m[5])
		if h > 0 {
			w = w * nh / h
		}
		h = nh
	}
	return w, h, true
}

// resolveUpload maps an upload:// reference to a servable URL. The second
// result is the original reference, empty for ordinary URLs.
func (r *coreRenderer) resolveUpload(dest, fallback string) (string, string) {
	if !strings.HasPrefix(dest, uploadScheme) {
		return dest, ""
	}
	if r.opts.LookupUploadURL != nil {
		if u, ok := r.opts.LookupUploadURL(dest); ok && u != "" {
			return u, dest
		}
	}
	return fallback, dest
}

func (r *coreRenderer) renderImage(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.Image)
	alt := ParseImageAlt(plainText(n, source))
	src, orig := r.resolveUpload(string(n.Destination), transparentImage)

	if alt.Media != "" {
		r.writeMedia(w, alt.Media, src, orig)
		return ast.WalkSkipChildren, nil
	}

	_, _ = w.WriteString(`<img src="`)
	_, _ = w.Write(util.EscapeHTML(util.URLEscape([]byte(src), true)))
	_, _ = w.WriteString(`" alt="`)
	_, _ = w.WriteString(html.EscapeString(alt.Alt))
	_ = w.WriteByte('"')
	if n.Title != nil {
		_, _ = w.WriteString(` title="`)
		gmhtml.DefaultWriter.Write(w, n.Title)
		_ = w.WriteByte('"')
	}
	if alt.HasSize {
		fmt.Fprintf(w, ` width="%d" height="%d"`, alt.Width, alt.Height)
	}
	if orig != "" {
		writeAttr(w, "data-orig-src", orig)
	}
	if alt.Thumbnail {
		writeAttr(w, "data-thumbnail", "true")
	}
	for _, a := range alt.Data {
		writeAttr(w, a.Name, a.Value)
	}
	if n.Attributes() != nil {
		gmhtml.RenderAttributes(w, n, gmhtml.ImageAttributeFilter)
	}
	_ = w.WriteByte('>')
	return ast.WalkSkipChildren, nil
}

func (r *coreRenderer) writeMedia(w util.BufWriter, media, src, orig string) {
	if r.opts.Preview {
		fmt.Fprintf(w, `<div class="onebox-placeholder-container"><span class="placeholder-icon %s"></span></div>`, media)
		return
	}

	escaped := html.EscapeString(src)
	if media == "video" {
		_, _ = w.WriteString(`<div class="video-container">`)
		_, _ = w.WriteString(`<video width="100%" height="100%" preload="metadata" controls>`)
	} else {
		_, _ = w.WriteString(`<audio preload="metadata" controls>`)
	}
	_, _ = w.WriteString(`<source src="` + escaped + `"`)
	if orig != "" {
		writeAttr(w, "data-orig-src", orig)
	}
	_, _ = w.WriteString(`><a href="` + escaped + `">` + escaped + `</a>`)
	if media == "video" {
		_, _ = w.WriteString(`</video></div>`)
	} else {
		_, _ = w.WriteString(`</audio>`)
	}
}

func writeAttr(w util.BufWriter, name, value string) {
	_ = w.WriteByte(' ')
	_, _ = w.WriteString(name)
	_, _ = w.WriteString(`="`)
	_, _ = w.WriteString(html.EscapeString(value))
	_ = w.WriteByte('"')
}

// plainText returns the text content of n's descendants.
func plainText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}
