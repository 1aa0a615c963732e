package builtin

import (
	"regexp"
	"sort"
	"strings"

	"github.com/conneroisu/prettytext/internal/features"
	"github.com/conneroisu/prettytext/internal/ruler"
)

var dataKeyPattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

func setupDetails(h *features.Helper) {
	h.AllowList("details", "details[open]", "summary")
	h.RegisterPlugin(func(c features.Compiler) {
		c.BlockBBCode().Push("details", ruler.Rule{
			Tag: "details",
			Before: func(s *ruler.Stream, info ruler.TagInfo) bool {
				tok := s.Push(ruler.TokenOpen, "details")
				if open := info.Attrs["open"]; open == "true" || open == "open" {
					tok.SetAttr("open", "")
				}
				s.Push(ruler.TokenOpen, "summary")
				s.PushText(info.Default())
				s.Push(ruler.TokenClose, "summary")
				return true
			},
			After: func(s *ruler.Stream, _ ruler.TagInfo) {
				s.Push(ruler.TokenClose, "details")
			},
		})
	})
}

// quoteAttribution is parsed from [quote="name, post:1, topic:2"] or from
// named attributes.
type quoteAttribution struct {
	username string
	post     string
	topic    string
}

func parseQuote(info ruler.TagInfo) quoteAttribution {
	q := quoteAttribution{
		username: info.Attrs["username"],
		post:     info.Attrs["post"],
		topic:    info.Attrs["topic"],
	}
	for _, part := range strings.Split(info.Default(), ",") {
		part = strings.TrimSpace(part)
		key, value, ok := strings.Cut(part, ":")
		switch {
		case ok && key == "post":
			q.post = value
		case ok && key == "topic":
			q.topic = value
		case !ok && part != "" && q.username == "":
			q.username = part
		}
	}
	return q
}

func setupQuote(h *features.Helper) {
	h.AllowList("aside.quote", "aside[data-*]", "div.title", "blockquote")
	h.RegisterPlugin(func(c features.Compiler) {
		c.BlockBBCode().Push("quote", ruler.Rule{
			Tag: "quote",
			Before: func(s *ruler.Stream, info ruler.TagInfo) bool {
				q := parseQuote(info)
				aside := s.Push(ruler.TokenOpen, "aside")
				aside.AddClass("quote")
				if q.username != "" {
					aside.SetAttr("data-username", q.username)
				}
				if q.post != "" {
					aside.SetAttr("data-post", q.post)
				}
				if q.topic != "" {
					aside.SetAttr("data-topic", q.topic)
				}
				if q.username != "" {
					s.Push(ruler.TokenOpen, "div").AddClass("title")
					s.PushText(q.username + ":")
					s.Push(ruler.TokenClose, "div")
				}
				s.Push(ruler.TokenOpen, "blockquote")
				return true
			},
			After: func(s *ruler.Stream, _ ruler.TagInfo) {
				s.Push(ruler.TokenClose, "blockquote")
				s.Push(ruler.TokenClose, "aside")
			},
		})
	})
}

// wrapToken marks a [wrap=name] container. A wrap without a name is left
// unhandled.
func wrapToken(tok *ruler.Token, info ruler.TagInfo) bool {
	name := info.Default()
	if name == "" {
		return false
	}
	tok.AddClass("d-wrap")
	tok.SetAttr("data-wrap", name)

	keys := make([]string, 0, len(info.Attrs))
	for k := range info.Attrs {
		if k != ruler.DefaultAttr && dataKeyPattern.MatchString(k) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		tok.SetAttr("data-"+k, info.Attrs[k])
	}
	return true
}

func setupWrap(h *features.Helper) {
	h.AllowList("div.d-wrap", "div[data-*]", "span.d-wrap", "span[data-*]")
	h.RegisterPlugin(func(c features.Compiler) {
		rule := ruler.Rule{Tag: "wrap", Wrap: wrapToken}
		c.BlockBBCode().Push("wrap", rule)
		c.InlineBBCode().Push("wrap", rule)
	})
}

func setupSpoiler(h *features.Helper) {
	h.AllowList("div.spoiler", "span.spoiler")
	h.RegisterPlugin(func(c features.Compiler) {
		rule := ruler.Rule{Tag: "spoiler", Wrap: func(tok *ruler.Token, _ ruler.TagInfo) bool {
			tok.AddClass("spoiler")
			return true
		}}
		c.BlockBBCode().Push("spoiler", rule)
		c.InlineBBCode().Push("spoiler", rule)
	})
}

func classWrap(tag string) ruler.Rule {
	return ruler.Rule{Tag: tag, Wrap: func(tok *ruler.Token, _ ruler.TagInfo) bool {
		tok.Tag = "span"
		tok.AddClass("bbcode-" + tag)
		return true
	}}
}

func setupBBCodeInline(h *features.Helper) {
	h.AllowList(
		"span.bbcode-b", "span.bbcode-i", "span.bbcode-u", "span.bbcode-s",
		"a[data-bbcode]",
	)
	h.RegisterPlugin(func(c features.Compiler) {
		inline := c.InlineBBCode()
		for _, tag := range []string{"b", "i", "u", "s"} {
			inline.Push(tag, classWrap(tag))
		}

		inline.Push("url", ruler.Rule{Tag: "url", Replace: func(s *ruler.Stream, info ruler.TagInfo, content string) bool {
			href := info.Default()
			if href == "" {
				href = strings.TrimSpace(content)
			}
			if href == "" {
				return false
			}
			a := s.Push(ruler.TokenOpen, "a")
			a.SetAttr("href", href)
			a.SetAttr("data-bbcode", "true")
			s.PushText(content)
			s.Push(ruler.TokenClose, "a")
			return true
		}})

		inline.Push("email", ruler.Rule{Tag: "email", Replace: func(s *ruler.Stream, info ruler.TagInfo, content string) bool {
			addr := info.Default()
			if addr == "" {
				addr = strings.TrimSpace(content)
			}
			if !strings.Contains(addr, "@") {
				return false
			}
			a := s.Push(ruler.TokenOpen, "a")
			a.SetAttr("href", "mailto:"+addr)
			a.SetAttr("data-bbcode", "true")
			s.PushText(content)
			s.Push(ruler.TokenClose, "a")
			return true
		}})

		inline.Push("img", ruler.Rule{Tag: "img", Replace: func(s *ruler.Stream, _ ruler.TagInfo, content string) bool {
			src := strings.TrimSpace(content)
			if src == "" {
				return false
			}
			img := s.Push(ruler.TokenOpen, "img")
			img.SetAttr("src", src)
			return true
		}})
	})
}
