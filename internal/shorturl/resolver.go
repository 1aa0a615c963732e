// Package shorturl resolves upload:// references in batches and remembers
// both the hits and the references the server no longer knows.
package shorturl

import (
	"context"
	"strings"
	"sync"

	"github.com/conneroisu/prettytext/internal/features"
	"github.com/conneroisu/prettytext/internal/logging"
)

// Scheme prefixes every short upload reference.
const Scheme = "upload://"

// Upload is a resolved short URL.
type Upload struct {
	ShortURL  string `json:"short_url"`
	URL       string `json:"url"`
	ShortPath string `json:"short_path"`

	missing bool
}

// Missing is cached for short URLs the server did not return. It lets a
// caller tell "resolved, gone" from "not resolved yet".
var Missing = Upload{missing: true}

// IsMissing reports whether u is the Missing sentinel.
func (u Upload) IsMissing() bool {
	return u.missing
}

// Resolver caches batch lookups. Every short URL is sent to the server at
// most once until Reset.
type Resolver struct {
	client Client
	logger logging.Logger

	mu    sync.RWMutex
	cache map[string]Upload
}

// NewResolver creates a Resolver backed by client.
func NewResolver(client Client, logger logging.Logger) *Resolver {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Resolver{
		client: client,
		logger: logger.WithComponent("shorturl"),
		cache:  make(map[string]Upload),
	}
}

// Lookup resolves shortURLs, issuing one batched call for the ones not yet
// cached. URLs absent from the response are recorded as Missing. On error
// nothing new is cached.
func (r *Resolver) Lookup(ctx context.Context, shortURLs []string) (map[string]Upload, error) {
	result := make(map[string]Upload, len(shortURLs))
	var uncached []string

	r.mu.RLock()
	for _, short := range shortURLs {
		if _, seen := result[short]; seen {
			continue
		}
		if u, ok := r.cache[short]; ok {
			result[short] = u
			continue
		}
		result[short] = Upload{}
		uncached = append(uncached, short)
	}
	r.mu.RUnlock()

	if len(uncached) == 0 {
		return result, nil
	}

	uploads, err := r.client.LookupURLs(ctx, uncached)
	if err != nil {
		r.logger.Warn(ctx, err, "upload lookup failed", "count", len(uncached))
		return nil, err
	}

	found := make(map[string]Upload, len(uploads))
	for _, u := range uploads {
		found[u.ShortURL] = u
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, short := range uncached {
		u, ok := found[short]
		if !ok {
			u = Missing
		}
		r.cache[short] = u
		result[short] = u
	}
	return result, nil
}

// Cached returns the cached entry for short, which may be Missing.
func (r *Resolver) Cached(short string) (Upload, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.cache[short]
	return u, ok
}

// Reset forgets every cached entry.
func (r *Resolver) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = make(map[string]Upload)
}

// LookupFunc adapts the cache for render-time use: only resolved, present
// uploads are reported.
func (r *Resolver) LookupFunc() features.LookupUploadFunc {
	return func(short string) (string, bool) {
		u, ok := r.Cached(short)
		if !ok || u.IsMissing() || u.URL == "" {
			return "", false
		}
		return u.URL, true
	}
}

// IsShortURL reports whether s is an upload:// reference.
func IsShortURL(s string) bool {
	return strings.HasPrefix(s, Scheme)
}
