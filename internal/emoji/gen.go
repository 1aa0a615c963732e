//go:build ignore

// gen.go writes pattern_gen.go from the emojidata tables.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/conneroisu/prettytext/internal/emoji/emojidata"
)

func alternation(keys []string) string {
	sort.Strings(keys)
	for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
		keys[i], keys[j] = keys[j], keys[i]
	}
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = regexp.QuoteMeta(k)
	}
	return strings.Join(quoted, "|")
}

func main() {
	var glyphs []string
	for _, e := range emojidata.Emojis {
		if e.Glyph != "" {
			glyphs = append(glyphs, e.Glyph)
		}
	}
	var emoticons []string
	for k := range emojidata.Translations {
		emoticons = append(emoticons, k)
	}

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "// Code generated by gen.go; DO NOT EDIT.")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "package emoji")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "// glyphPattern matches every glyph in emojidata.Emojis, longest first.")
	fmt.Fprintf(&buf, "const glyphPattern = %s\n", strconv.QuoteToASCII(alternation(glyphs)))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "// translationPattern matches every emoticon in emojidata.Translations.")
	fmt.Fprintf(&buf, "const translationPattern = %s\n", strconv.QuoteToASCII(alternation(emoticons)))

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile("pattern_gen.go", src, 0o644); err != nil {
		log.Fatal(err)
	}
}
