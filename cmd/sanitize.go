package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/prettytext/internal/features"
	"github.com/conneroisu/prettytext/internal/pipeline"
)

var sanitizeCmd = &cobra.Command{
	Use:   "sanitize [file]",
	Short: "Filter HTML through the render allow-list",
	Long: `Remove every tag, attribute and URL the enabled features do not allow.
Reads the file argument or stdin.

Examples:
  prettytext sanitize page.html
  echo '<b onclick="x()">hi</b>' | prettytext sanitize`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSanitize,
}

func init() {
	rootCmd.AddCommand(sanitizeCmd)
}

func runSanitize(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	p, err := pipeline.Default(cfg.Site, features.State{}, logger)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), p.Sanitize(input))
	return nil
}
