package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect prettytext configuration",
	Long: `Inspect the configuration merged from flags, PRETTYTEXT_* environment
variables, the config file and defaults.

Examples:
  prettytext config show              # Show merged configuration as YAML
  prettytext config show -o json
  prettytext config validate          # Check the configuration`,
}

var configShowOutput *OutputFlags

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the merged configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigValidate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configValidateCmd)

	configShowOutput = AddOutputFlags(configShowCmd)
	configShowOutput.OutputFormat = "yaml"
	configShowCmd.Flags().Lookup("output").DefValue = "yaml"
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	if configShowOutput.OutputFormat == "table" {
		configShowOutput.OutputFormat = "yaml"
	}
	_, err = configShowOutput.Encode(cmd.OutOrStdout(), cfg)
	return err
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	source := viper.ConfigFileUsed()
	if source == "" {
		source = "defaults and environment"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Configuration from %s is valid\n", source)
	return nil
}
