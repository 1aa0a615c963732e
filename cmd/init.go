package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/prettytext/internal/config"
	"github.com/conneroisu/prettytext/internal/server"
)

var initCmd = &cobra.Command{
	Use:     "init [dir]",
	Aliases: []string{"i"},
	Short:   "Write a starter configuration and sample document",
	Long: `Write .prettytext.yml with every setting at its default, plus a
sample document to preview. If no directory is given, the current one is used.

Examples:
  prettytext init
  prettytext init notes --minimal
  prettytext init --force          # Overwrite an existing configuration`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

var (
	initMinimal bool
	initForce   bool
)

const welcomeDocument = `# Welcome

This document is rendered by **prettytext**. Save it while ` + "`prettytext serve`" + `
is running and the page updates by itself :tada:

[quote="editor"]
BBCode works too.
[/quote]

[spoiler]Hidden until hovered[/spoiler]
`

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&initMinimal, "minimal", false, "Only write the configuration file")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing configuration file")
}

func runInit(cmd *cobra.Command, args []string) error {
	projectDir := "."
	if len(args) > 0 {
		projectDir = args[0]
	}
	if err := os.MkdirAll(projectDir, 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	if err := createConfigFile(projectDir, initForce); err != nil {
		return err
	}
	if !initMinimal {
		docs := filepath.Join(projectDir, "docs")
		if err := os.MkdirAll(docs, 0755); err != nil {
			return fmt.Errorf("failed to create docs directory: %w", err)
		}
		welcome := filepath.Join(docs, "welcome.md")
		if _, err := os.Stat(welcome); os.IsNotExist(err) {
			if err := os.WriteFile(welcome, []byte(welcomeDocument), 0644); err != nil {
				return fmt.Errorf("failed to write sample document: %w", err)
			}
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized prettytext in %s\n", projectDir)
	fmt.Fprintln(cmd.OutOrStdout(), "Run 'prettytext serve' to preview your documents.")
	return nil
}

func createConfigFile(projectDir string, force bool) error {
	path := filepath.Join(projectDir, server.ConfigFileName)
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg := config.Default()
	cfg.Onebox.CachePath = filepath.Join(".prettytext", "cache", "onebox.db")
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
