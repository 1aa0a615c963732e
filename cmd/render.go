package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/prettytext/internal/features"
	"github.com/conneroisu/prettytext/internal/logging"
	"github.com/conneroisu/prettytext/internal/pipeline"
)

var (
	renderExcerpt        int
	renderResolveUploads bool
	renderEnrich         bool
	renderNoSanitize     bool
)

var renderCmd = &cobra.Command{
	Use:     "render [file]",
	Aliases: []string{"r"},
	Short:   "Render markdown to sanitized HTML",
	Long: `Render a markdown file, or stdin when no file is given, to HTML.

Examples:
  prettytext render post.md                   # Render to stdout
  cat post.md | prettytext render             # Render stdin
  prettytext render post.md --excerpt 200     # Plain-text excerpt only
  prettytext render post.md --resolve-uploads # Rewrite upload:// URLs
  prettytext render post.md --enrich          # Replace onebox links with previews`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().IntVar(&renderExcerpt, "excerpt", 0, "Print a plain-text excerpt of at most this many characters")
	renderCmd.Flags().BoolVar(&renderResolveUploads, "resolve-uploads", false, "Resolve upload:// short URLs against site.base_url")
	renderCmd.Flags().BoolVar(&renderEnrich, "enrich", false, "Fetch onebox previews for standalone links")
	renderCmd.Flags().BoolVar(&renderNoSanitize, "no-sanitize", false, "Skip the allow-list sanitizer (unsafe)")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	raw, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	if renderNoSanitize {
		cfg.Site.Sanitize = false
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	perf := logging.StartOperation(logger, "render")

	var post []pipeline.Postprocessor
	state := features.State{}
	if renderResolveUploads {
		resolver, err := newUploadResolver(cfg, logger)
		if err != nil {
			return err
		}
		state.Lookups.UploadURL = resolver.LookupFunc()
		post = append(post, pipeline.ResolveUploads(resolver))
	}
	if renderEnrich {
		svc, err := openOnebox(cfg, logger, nil)
		if err != nil {
			return err
		}
		defer svc.Close()
		post = append(post, pipeline.LoadOneboxes(svc.Loader))
	}

	p, err := pipeline.Default(cfg.Site, state, logger)
	if err != nil {
		perf.EndWithError(ctx, err)
		return err
	}
	html, err := p.RenderContext(ctx, raw, post...)
	if err != nil {
		perf.EndWithError(ctx, err)
		return fmt.Errorf("render failed: %w", err)
	}
	perf.End(ctx, "bytes_in", len(raw), "bytes_out", len(html))

	if renderExcerpt > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), pipeline.Excerpt(html, renderExcerpt))
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), html)
	return nil
}
