package builtin

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"

	"github.com/conneroisu/prettytext/internal/features"
)

const langPrefix = "lang-"

// alwaysAcceptedLanguages are accepted whatever the site configures.
var alwaysAcceptedLanguages = []string{"auto", "plaintext", "nohighlight"}

type codeRenderer struct {
	defaultLang string
	opts        *features.Options
}

func (r *codeRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFenced)
}

func (r *codeRenderer) renderFenced(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.FencedCodeBlock)
	// Languages the site does not accept fall back to the default.
	lang := r.defaultLang
	if l := n.Language(source); len(l) > 0 && acceptsLanguageClass(r.opts, langPrefix+string(l)) {
		lang = string(l)
	}

	_, _ = w.WriteString(`<pre><code class="` + langPrefix)
	_, _ = w.Write(util.EscapeHTML([]byte(lang)))
	_, _ = w.WriteString(`">`)
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		_, _ = w.Write(util.EscapeHTML(line.Value(source)))
	}
	_, _ = w.WriteString("</code></pre>\n")
	return ast.WalkSkipChildren, nil
}

type codeExtension struct {
	opts *features.Options
}

func (e *codeExtension) Extend(m goldmark.Markdown) {
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&codeRenderer{defaultLang: "auto", opts: e.opts}, 100),
	))
}

// acceptsLanguageClass reports whether class names a language the site
// accepts.
func acceptsLanguageClass(opts *features.Options, class string) bool {
	lang, ok := strings.CutPrefix(class, langPrefix)
	if !ok || lang == "" {
		return false
	}
	for _, l := range alwaysAcceptedLanguages {
		if lang == l {
			return true
		}
	}
	for _, l := range opts.AcceptableCodeClasses {
		if strings.EqualFold(lang, l) {
			return true
		}
	}
	return false
}

func setupCode(h *features.Helper) {
	opts := h.GetOptions()
	h.AllowListCustom(func(tag, attr, value string) bool {
		return tag == "code" && attr == "class" && acceptsLanguageClass(opts, value)
	})
	h.RegisterPlugin(func(c features.Compiler) {
		c.Use(&codeExtension{opts: opts})
	})
}
