package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/conneroisu/prettytext/internal/features"
	"github.com/conneroisu/prettytext/internal/pipeline"
)

var featuresOutput *OutputFlags

var featuresCmd = &cobra.Command{
	Use:     "features",
	Aliases: []string{"f"},
	Short:   "List the markup features and whether they are enabled",
	Long: `List every registered markup feature in setup order with its priority
and whether the current configuration enables it.

Examples:
  prettytext features
  prettytext features -o yaml`,
	Args: cobra.NoArgs,
	RunE: runFeatures,
}

func init() {
	rootCmd.AddCommand(featuresCmd)
	featuresOutput = AddOutputFlags(featuresCmd)
}

func runFeatures(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	p, err := pipeline.Default(cfg.Site, features.State{}, logger)
	if err != nil {
		return err
	}
	list := p.Features()
	if done, err := featuresOutput.Encode(cmd.OutOrStdout(), list); done {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FEATURE\tPRIORITY\tENABLED\tDESCRIPTION")
	for _, f := range list {
		fmt.Fprintf(w, "%s\t%d\t%t\t%s\n", f.ID, f.Priority, f.Enabled, f.Description)
	}
	return w.Flush()
}
