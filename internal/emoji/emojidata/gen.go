//go:build ignore

// gen.go writes tables_gen.go from the gemoji database.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"go/format"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"
)

const source = "https://raw.githubusercontent.com/github/gemoji/master/db/emoji.json"

var (
	outfile = flag.String("o", "tables_gen.go", "write output to `file`")
	input   = flag.String("i", "", "read the database from `file` instead of fetching it")
)

// renames keeps the established canonical names where gemoji lists a
// different alias first. The gemoji name stays available as an alias.
var renames = map[string]string{
	"slightly_smiling_face": "slight_smile",
	"monocle_face":          "face_with_monocle",
	"hankey":                "poop",
}

const variationSelector = "\uFE0F"

type entry struct {
	Emoji     string   `json:"emoji"`
	Aliases   []string `json:"aliases"`
	SkinTones bool     `json:"skin_tones"`
}

func load() ([]byte, error) {
	if *input != "" {
		return os.ReadFile(*input)
	}
	resp, err := http.Get(source)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: %s", source, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// glyph drops a trailing variation selector, except on a lone text-default
// character that takes no tone: without the selector "©" or "↔" is
// ordinary text.
func glyph(e entry) string {
	g := e.Emoji
	if !strings.HasSuffix(g, variationSelector) {
		return g
	}
	if utf8.RuneCountInString(g) == 2 && !e.SkinTones {
		return g
	}
	return strings.TrimSuffix(g, variationSelector)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("emojidata: ")
	flag.Parse()

	data, err := load()
	if err != nil {
		log.Fatal(err)
	}
	var entries []entry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Fatal(err)
	}

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "// Code generated by gen.go; DO NOT EDIT.")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "package emojidata")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "// Emojis lists every canonical emoji.")
	fmt.Fprintln(&buf, "var Emojis = []Emoji{")

	var tonable []string
	seen := make(map[string]bool)
	for _, e := range entries {
		if e.Emoji == "" || len(e.Aliases) == 0 {
			continue
		}
		g := glyph(e)
		if seen[g] {
			log.Printf("duplicate glyph for :%s:", e.Aliases[0])
			continue
		}
		seen[g] = true

		name := e.Aliases[0]
		for _, a := range e.Aliases {
			if r, ok := renames[a]; ok {
				name = r
			}
		}
		var aliases []string
		for _, a := range e.Aliases {
			if a != name {
				aliases = append(aliases, strconv.Quote(a))
			}
		}

		fmt.Fprintf(&buf, "\t{Name: %q, Glyph: %s", name, strconv.QuoteToASCII(g))
		if len(aliases) > 0 {
			fmt.Fprintf(&buf, ", Aliases: []string{%s}", strings.Join(aliases, ", "))
		}
		fmt.Fprintln(&buf, "},")
		if e.SkinTones {
			tonable = append(tonable, name)
		}
	}
	fmt.Fprintln(&buf, "}")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "// Tonable lists the emoji that accept a skin tone modifier.")
	fmt.Fprintln(&buf, "var Tonable = []string{")
	for i := 0; i < len(tonable); i += 8 {
		line := tonable[i:min(i+8, len(tonable))]
		quoted := make([]string, len(line))
		for j, name := range line {
			quoted[j] = strconv.Quote(name) + ","
		}
		fmt.Fprintf(&buf, "\t%s\n", strings.Join(quoted, " "))
	}
	fmt.Fprintln(&buf, "}")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("reformatting output: %v", err)
	}
	if err := os.WriteFile(*outfile, src, 0o644); err != nil {
		log.Fatal(err)
	}
}
