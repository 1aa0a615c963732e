package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/conneroisu/prettytext/internal/config"
	"github.com/conneroisu/prettytext/internal/logging"
	"github.com/conneroisu/prettytext/internal/onebox"
	"github.com/conneroisu/prettytext/internal/shorturl"
)

// oneboxService is a loader backed by the on-disk preview cache.
type oneboxService struct {
	Loader *onebox.Loader
	Store  *onebox.SQLiteStore
}

func (s *oneboxService) Close() {
	s.Loader.Close()
	_ = s.Store.Close()
}

// openOnebox opens the preview cache and a loader fetching from the
// configured endpoint. metrics may be nil.
func openOnebox(cfg *config.Config, logger logging.Logger, metrics *onebox.Metrics) (*oneboxService, error) {
	if cfg.Onebox.Endpoint == "" && cfg.Site.BaseURL == "" {
		return nil, fmt.Errorf("oneboxes need onebox.endpoint or site.base_url to be set")
	}
	endpoint := cfg.Onebox.Endpoint
	if endpoint == "" {
		endpoint = cfg.Site.BaseURL
	}

	store, err := openOneboxStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	fetcher := onebox.NewHTTPFetcher(endpoint, cfg.Onebox.Timeout, logger)
	loader := onebox.New(store, fetcher, onebox.LoaderConfig{
		Delay:        cfg.Onebox.Delay,
		BackoffDelay: cfg.Onebox.BackoffDelay,
	}, logger, metrics)
	return &oneboxService{Loader: loader, Store: store}, nil
}

// openOneboxStore opens onebox.cache_path, or an in-memory cache when it
// is unset.
func openOneboxStore(cfg *config.Config, logger logging.Logger) (*onebox.SQLiteStore, error) {
	path := cfg.Onebox.CachePath
	if path == "" {
		path = ":memory:"
	} else if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create onebox cache directory: %w", err)
		}
	}
	return onebox.OpenSQLiteStore(path, logger)
}

// newUploadResolver resolves upload:// short URLs against the site.
func newUploadResolver(cfg *config.Config, logger logging.Logger) (*shorturl.Resolver, error) {
	if cfg.Site.BaseURL == "" {
		return nil, fmt.Errorf("resolving uploads needs site.base_url to be set")
	}
	client := shorturl.NewHTTPClient(cfg.Site.BaseURL, cfg.Onebox.Timeout, logger)
	return shorturl.NewResolver(client, logger), nil
}
