package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/conneroisu/prettytext/internal/emoji"
	"github.com/conneroisu/prettytext/internal/features"
	"github.com/conneroisu/prettytext/internal/pipeline"
)

var emojiCmd = &cobra.Command{
	Use:   "emoji",
	Short: "Search and convert emoji",
	Long: `Look up emoji by name and convert between shortcodes and images.

Examples:
  prettytext emoji search wave --tone 3
  prettytext emoji unescape "hello :wave: :)"
  prettytext emoji escape "hi 👋"`,
}

var (
	emojiMax    int
	emojiTone   int
	emojiOutput *OutputFlags
)

var emojiSearchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Find emoji whose name contains term",
	Args:  cobra.ExactArgs(1),
	RunE:  runEmojiSearch,
}

var emojiUnescapeCmd = &cobra.Command{
	Use:   "unescape [text]",
	Short: "Replace shortcodes, glyphs and emoticons with image tags",
	RunE:  runEmojiConvert(false),
}

var emojiEscapeCmd = &cobra.Command{
	Use:   "escape [text]",
	Short: "Replace emoji images and glyphs with :shortcodes:",
	RunE:  runEmojiConvert(true),
}

func init() {
	rootCmd.AddCommand(emojiCmd)
	emojiCmd.AddCommand(emojiSearchCmd, emojiUnescapeCmd, emojiEscapeCmd)

	emojiSearchCmd.Flags().IntVarP(&emojiMax, "max", "n", 20, "Maximum results (0 for no limit)")
	emojiSearchCmd.Flags().IntVar(&emojiTone, "tone", 1, "Skin tone 1-6 applied to tonable results")
	AddFlagValidation(emojiSearchCmd, "tone", ValidateTone)
	emojiOutput = AddOutputFlags(emojiSearchCmd)
}

// emojiEngine builds the configured emoji engine and its options.
func emojiEngine() (*emoji.Engine, emoji.Options, error) {
	cfg, logger, err := loadConfig()
	if err != nil {
		return nil, emoji.Options{}, err
	}
	p, err := pipeline.Default(cfg.Site, features.State{}, logger)
	if err != nil {
		return nil, emoji.Options{}, err
	}
	e := p.Engine()
	return e.Emoji(), e.Options().EmojiOptions(), nil
}

type emojiHit struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

func runEmojiSearch(cmd *cobra.Command, args []string) error {
	e, opts, err := emojiEngine()
	if err != nil {
		return err
	}
	names := e.Search(args[0], emoji.SearchOptions{MaxResults: emojiMax, Diversity: emojiTone})

	hits := make([]emojiHit, 0, len(names))
	for _, name := range names {
		hits = append(hits, emojiHit{Name: name, URL: e.URL(name, opts)})
	}
	if done, err := emojiOutput.Encode(cmd.OutOrStdout(), hits); done {
		return err
	}

	if len(hits) == 0 {
		if !emojiOutput.Quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "No emoji match %q\n", args[0])
		}
		return nil
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, h := range hits {
		glyph, _ := emoji.Glyph(strings.SplitN(h.Name, ":", 2)[0])
		fmt.Fprintf(w, ":%s:\t%s\t%s\n", h.Name, glyph, h.URL)
	}
	return w.Flush()
}

func runEmojiConvert(escape bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		var text string
		if len(args) > 0 {
			text = strings.Join(args, " ")
		} else {
			in, err := readInput(cmd, nil)
			if err != nil {
				return err
			}
			text = in
		}
		e, opts, err := emojiEngine()
		if err != nil {
			return err
		}
		if escape {
			fmt.Fprintln(cmd.OutOrStdout(), e.Escape(text, opts))
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), e.Unescape(text, opts))
		}
		return nil
	}
}
