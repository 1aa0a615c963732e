// Package cmd provides the prettytext command-line interface.
//
// Configuration is read, highest priority first, from command-line flags,
// PRETTYTEXT_* environment variables (PRETTYTEXT_SITE_BASE_URL,
// PRETTYTEXT_SERVER_PORT and so on), the file named by --config or
// PRETTYTEXT_CONFIG_FILE, and finally .prettytext.yml in the current
// directory.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/prettytext/internal/config"
	"github.com/conneroisu/prettytext/internal/logging"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "prettytext",
	Short: "Render forum-style markdown to sanitized HTML",
	Long: `prettytext renders forum-flavoured markdown (BBCode tags, emoji,
mentions, oneboxes, spoilers, uploads) into HTML restricted to an allow-list.

Quick Start:
  prettytext render post.md            Render a file to stdout
  prettytext sanitize page.html        Filter HTML through the allow-list
  prettytext emoji search wave         Find emoji by name
  prettytext serve docs/               Live preview with reload on save
  prettytext init                      Write a starter .prettytext.yml`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .prettytext.yml, can also use PRETTYTEXT_CONFIG_FILE)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "log format (text, json)")
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("PRETTYTEXT_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".prettytext")
	}

	viper.SetEnvPrefix("PRETTYTEXT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig reads the merged configuration and builds the logger it
// describes. Logs go to stderr so stdout carries only command output.
func loadConfig() (*config.Config, logging.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, newLogger(cfg.Logging), nil
}

func newLogger(lc config.LoggingConfig) logging.Logger {
	lcfg := logging.DefaultConfig()
	if level, err := logging.ParseLevel(lc.Level); err == nil {
		lcfg.Level = level
	}
	if lc.Format != "" {
		lcfg.Format = strings.ToLower(lc.Format)
	}
	lcfg.Output = os.Stderr
	lcfg.Component = "prettytext"
	return logging.NewLogger(lcfg)
}
