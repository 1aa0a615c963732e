package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/prettytext/internal/config"
	"github.com/conneroisu/prettytext/internal/onebox"
	"github.com/conneroisu/prettytext/internal/pipeline"
	"github.com/conneroisu/prettytext/internal/server"
)

var serveCmd = &cobra.Command{
	Use:     "serve [dir]",
	Aliases: []string{"s"},
	Short:   "Preview markdown documents with live reload",
	Long: `Serve the markdown documents under dir (default: the current directory)
as rendered pages. Pages re-render in the browser when a document is saved
and reload when the configuration file changes.

Endpoints:
  /                    Document index
  /doc/<path>          Rendered document
  /api/render          POST markdown, receive HTML
  /api/emoji/search    Emoji lookup (?q=term&max=n&tone=t)
  /api/features        Enabled features
  /ws                  Live reload websocket
  /metrics             Prometheus metrics

Examples:
  prettytext serve
  prettytext serve docs --port 9000
  prettytext serve --enrich --watch "**/*.md"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

var serveEnrich bool

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntP("port", "p", config.DefaultPort, "Port to serve on")
	serveCmd.Flags().String("host", config.DefaultHost, "Host to bind to")
	serveCmd.Flags().StringSliceP("watch", "w", nil, "Document glob patterns (default **/*.md)")
	serveCmd.Flags().BoolVar(&serveEnrich, "enrich", false, "Replace onebox links with fetched previews")
	AddFlagValidation(serveCmd, "port", ValidatePort)

	_ = viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("server.host", serveCmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("server.watch", serveCmd.Flags().Lookup("watch"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	root := "."
	if len(args) > 0 {
		root = args[0]
	}
	cfg.TargetFiles = args

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	opts := []server.Option{
		server.WithLogger(logger),
		server.WithRegistry(reg),
		server.WithConfigReloader(viper.ConfigFileUsed(), reloadConfig),
	}
	if serveEnrich {
		metrics, err := onebox.NewMetrics(reg)
		if err != nil {
			return fmt.Errorf("failed to register onebox metrics: %w", err)
		}
		svc, err := openOnebox(cfg, logger, metrics)
		if err != nil {
			return err
		}
		defer svc.Close()
		opts = append(opts, server.WithPostprocessors(pipeline.LoadOneboxes(svc.Loader)))
	}

	srv, err := server.New(cfg, root, opts...)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "Serving %s at http://%s:%d\n", root, cfg.Server.Host, cfg.Server.Port)
	return srv.Start(ctx)
}

// reloadConfig re-reads the configuration file before merging. A file that
// has been deleted leaves the environment and defaults in effect.
func reloadConfig() (*config.Config, error) {
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read configuration: %w", err)
		}
	}
	return config.Load()
}
