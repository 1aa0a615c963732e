// Package server runs the live preview: it renders markup documents under a
// root directory, serves a render API, and pushes re-rendered HTML to open
// pages over a websocket whenever a document or the configuration changes.
package server

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/conneroisu/prettytext/internal/config"
	"github.com/conneroisu/prettytext/internal/errors"
	"github.com/conneroisu/prettytext/internal/features"
	"github.com/conneroisu/prettytext/internal/logging"
	"github.com/conneroisu/prettytext/internal/pipeline"
	"github.com/conneroisu/prettytext/internal/watcher"
	"github.com/conneroisu/prettytext/internal/websocket"
)

// ConfigFileName is the configuration file whose changes trigger a reload.
const ConfigFileName = ".prettytext.yml"

const debounceDelay = 200 * time.Millisecond

// PreviewServer serves rendered documents with live reload.
type PreviewServer struct {
	config   *config.Config
	docs     *DocumentSet
	pipeline *pipeline.Pipeline
	post     []pipeline.Postprocessor
	reload     func() (*config.Config, error)
	configFile string
	mu         sync.RWMutex // guards config and pipeline

	ws       *websocket.WebSocketManager
	watcher  *watcher.FileWatcher
	registry *prometheus.Registry
	metrics  *httpMetrics
	limiter  *RateLimiter
	logger   logging.Logger

	httpServer   *http.Server
	serverMutex  sync.Mutex
	shutdownOnce sync.Once
}

// Option configures a PreviewServer.
type Option func(*PreviewServer)

// WithLogger sets the server logger.
func WithLogger(l logging.Logger) Option {
	return func(s *PreviewServer) { s.logger = l }
}

// WithRegistry exposes metrics from reg on /metrics. Collectors registered
// by the caller, such as the onebox loader's, are served too.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *PreviewServer) { s.registry = reg }
}

// WithPostprocessors runs post on every document render.
func WithPostprocessors(post ...pipeline.Postprocessor) Option {
	return func(s *PreviewServer) { s.post = post }
}

// WithConfigReloader calls fn when the configuration file at path changes.
// The file's directory is watched even when it lies outside the root.
func WithConfigReloader(path string, fn func() (*config.Config, error)) Option {
	return func(s *PreviewServer) {
		s.configFile = path
		s.reload = fn
	}
}

// WithRateLimit overrides the API rate limit.
func WithRateLimit(cfg RateLimitConfig) Option {
	return func(s *PreviewServer) { s.limiter = NewRateLimiter(cfg, s.logger) }
}

// New creates a preview server for the documents under root.
func New(cfg *config.Config, root string, opts ...Option) (*PreviewServer, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.NewIOError(errors.ErrCodeInvalidPath, "resolve preview root", err)
	}
	s := &PreviewServer{
		config: cfg,
		docs:   NewDocumentSet(absRoot, cfg.Server.Watch),
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithComponent("server")

	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
		s.registry.MustRegister(collectors.NewGoCollector())
	}
	metrics, err := newHTTPMetrics(s.registry)
	if err != nil {
		return nil, errors.NewInternalError(errors.ErrCodeInvalidConfig, "register server metrics", err)
	}
	s.metrics = metrics

	if s.limiter == nil {
		s.limiter = NewRateLimiter(DefaultRateLimitConfig(), s.logger)
	}

	p, err := newPipeline(cfg, s.logger)
	if err != nil {
		return nil, err
	}
	s.pipeline = p
	s.ws = websocket.NewWebSocketManager(websocket.AllowedOrigins(cfg.Server.AllowedOrigins), s.logger)
	return s, nil
}

func newPipeline(cfg *config.Config, logger logging.Logger) (*pipeline.Pipeline, error) {
	return pipeline.Default(cfg.Site, features.State{Preview: true}, logger)
}

// Pipeline returns the current render pipeline.
func (s *PreviewServer) Pipeline() *pipeline.Pipeline {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pipeline
}

// Handler returns the routed and wrapped HTTP handler.
func (s *PreviewServer) Handler() http.Handler {
	api := RateLimitMiddleware(s.limiter)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /doc/{path...}", s.handleDocument)
	mux.Handle("POST /api/render", api(http.HandlerFunc(s.handleRender)))
	mux.Handle("GET /api/emoji/search", api(http.HandlerFunc(s.handleEmojiSearch)))
	mux.Handle("GET /api/features", api(http.HandlerFunc(s.handleFeatures)))
	mux.Handle("GET /api/documents", api(http.HandlerFunc(s.handleDocuments)))
	mux.HandleFunc("GET /ws", s.ws.HandleWebSocket)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", promhttpHandler(s.registry))

	s.mu.RLock()
	csp := contentSecurityPolicy(s.config.Site.AllowedIframes)
	s.mu.RUnlock()

	return chain(mux, s.instrument, securityHeaders(csp), s.cors)
}

// Start watches the document root and serves HTTP until ctx is cancelled
// or Shutdown is called.
func (s *PreviewServer) Start(ctx context.Context) error {
	if err := s.startWatcher(ctx); err != nil {
		s.logger.Warn(ctx, err, "Live reload disabled")
	}

	s.mu.RLock()
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.mu.RUnlock()

	s.serverMutex.Lock()
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	server := s.httpServer
	s.serverMutex.Unlock()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Preview server listening", "addr", "http://"+addr, "root", s.docs.Root())
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return errors.NewNetworkError(errors.ErrCodeRemoteUnreachable, "preview server stopped", err)
	}
	return nil
}

func (s *PreviewServer) startWatcher(ctx context.Context) error {
	fw, err := watcher.NewFileWatcher(debounceDelay, s.logger)
	if err != nil {
		return err
	}
	configName := ConfigFileName
	if s.configFile != "" {
		configName = filepath.Base(s.configFile)
		if err := fw.AddPath(filepath.Dir(s.configFile)); err != nil {
			s.logger.Warn(ctx, err, "Configuration changes will not be picked up", "file", s.configFile)
		}
	}
	fw.AddFilter(watcher.AnyOf(
		watcher.ConfigFilter(configName),
		func(p string) bool {
			rel, ok := s.docs.Rel(p)
			return ok && s.docs.Matches(rel)
		},
	))
	fw.AddHandler(func(events []watcher.ChangeEvent) error {
		return s.handleFileChange(ctx, events)
	})
	if err := fw.AddRecursive(s.docs.Root()); err != nil {
		_ = fw.Stop()
		return err
	}
	if err := fw.Start(ctx); err != nil {
		_ = fw.Stop()
		return err
	}
	s.watcher = fw
	return nil
}

// handleFileChange re-renders changed documents and broadcasts the result.
// A configuration change rebuilds the pipeline and asks pages to reload.
func (s *PreviewServer) handleFileChange(ctx context.Context, events []watcher.ChangeEvent) error {
	configName := ConfigFileName
	if s.configFile != "" {
		configName = filepath.Base(s.configFile)
	}
	for _, event := range events {
		if filepath.Base(event.Path) == configName {
			s.reloadConfig(ctx)
			return nil
		}
	}

	for _, event := range events {
		rel, ok := s.docs.Rel(event.Path)
		if !ok {
			continue
		}
		if event.Type == watcher.EventTypeDeleted || event.Type == watcher.EventTypeRenamed {
			s.ws.BroadcastMessage(websocket.UpdateMessage{Type: websocket.MessageRemoved, Target: rel})
			continue
		}

		_, html, err := s.renderDocument(ctx, rel)
		s.metrics.render("watch", err)
		if err != nil {
			s.logger.Warn(ctx, err, "Re-render failed", "path", rel)
			s.ws.BroadcastMessage(websocket.UpdateMessage{Type: websocket.MessageError, Target: rel, Content: err.Error()})
			continue
		}
		s.ws.BroadcastMessage(websocket.UpdateMessage{Type: websocket.MessageRendered, Target: rel, Content: html})
	}
	return nil
}

func (s *PreviewServer) reloadConfig(ctx context.Context) {
	if s.reload == nil {
		return
	}
	cfg, err := s.reload()
	if err == nil {
		var p *pipeline.Pipeline
		if p, err = newPipeline(cfg, s.logger); err == nil {
			s.mu.Lock()
			s.config, s.pipeline = cfg, p
			s.mu.Unlock()
		}
	}
	if err != nil {
		s.logger.Error(ctx, err, "Configuration reload failed, keeping previous configuration")
		s.ws.BroadcastMessage(websocket.UpdateMessage{Type: websocket.MessageError, Content: err.Error()})
		return
	}
	s.logger.Info(ctx, "Configuration reloaded")
	s.ws.BroadcastMessage(websocket.UpdateMessage{Type: websocket.MessageReload})
}

// renderDocument reads and renders the document at rel.
func (s *PreviewServer) renderDocument(ctx context.Context, rel string) (Document, string, error) {
	doc, raw, err := s.docs.Read(rel)
	if err != nil {
		return Document{}, "", err
	}
	html, err := s.Pipeline().RenderContext(ctx, string(raw), s.post...)
	if err != nil {
		return Document{}, "", err
	}
	return doc, html, nil
}

// Shutdown stops the watcher, disconnects websocket clients and shuts the
// HTTP server down. It is safe to call more than once.
func (s *PreviewServer) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		if s.watcher != nil {
			_ = s.watcher.Stop()
		}
		_ = s.ws.Shutdown(ctx)

		s.serverMutex.Lock()
		server := s.httpServer
		s.serverMutex.Unlock()
		if server != nil {
			shutdownErr = server.Shutdown(ctx)
		}
		s.logger.Info(ctx, "Preview server stopped")
	})
	return shutdownErr
}
