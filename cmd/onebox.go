package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/conneroisu/prettytext/internal/onebox"
)

var oneboxRefresh bool

var oneboxCmd = &cobra.Command{
	Use:   "onebox",
	Short: "Manage the link preview cache",
	Long: `Fetch link previews into the cache at onebox.cache_path, or inspect
and clear it.

Examples:
  prettytext onebox fetch https://example.com/article
  prettytext onebox fetch --refresh https://example.com/article
  prettytext onebox stats
  prettytext onebox clear`,
}

var oneboxFetchCmd = &cobra.Command{
	Use:   "fetch <url>...",
	Short: "Fetch previews for the given URLs",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runOneboxFetch,
}

var oneboxStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show how many previews and failures are cached",
	Args:  cobra.NoArgs,
	RunE:  runOneboxStats,
}

var oneboxClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget every cached preview and failure",
	Args:  cobra.NoArgs,
	RunE:  runOneboxClear,
}

func init() {
	rootCmd.AddCommand(oneboxCmd)
	oneboxCmd.AddCommand(oneboxFetchCmd, oneboxStatsCmd, oneboxClearCmd)

	oneboxFetchCmd.Flags().BoolVar(&oneboxRefresh, "refresh", false, "Refetch even when a preview is cached")
}

func runOneboxFetch(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	svc, err := openOnebox(cfg, logger, nil)
	if err != nil {
		return err
	}
	defer svc.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	failed := 0
	for _, url := range args {
		link := onebox.NewLink(url, "onebox")
		html, ok := svc.Loader.Load(ctx, link, onebox.LoadOptions{Synchronous: true, Refresh: oneboxRefresh})
		if !ok {
			failed++
			fmt.Fprintf(w, "%s\tfailed\n", url)
			continue
		}
		fmt.Fprintf(w, "%s\tok\t%d bytes\n", url, len(html))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d previews could not be loaded", failed, len(args))
	}
	return nil
}

func runOneboxStats(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openOneboxStore(cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	cached, failed, err := store.Len()
	if err != nil {
		return fmt.Errorf("failed to read onebox cache: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "cached: %d\nfailed: %d\n", cached, failed)
	return nil
}

func runOneboxClear(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openOneboxStore(cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	store.Reset()
	fmt.Fprintln(cmd.OutOrStdout(), "Onebox cache cleared")
	return nil
}
