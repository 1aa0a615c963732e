// Package onebox resolves link previews against a remote endpoint. Requests
// are drained one at a time from a FIFO queue; results land in a success
// cache or a failure cache, and rate-limited requests go back on the queue.
package onebox

import (
	"strings"
	"sync"
)

// Store is the cache service behind the loader. A URL is never cached as
// both a success and a failure.
type Store interface {
	Get(url string) (string, bool)
	Failed(url string) bool
	Put(url, html string)
	PutFailure(url string)
	Reset()
}

// NormalizeURL strips a single trailing slash so "https://a/" and
// "https://a" share a cache entry.
func NormalizeURL(url string) string {
	return strings.TrimSuffix(url, "/")
}

// MemoryStore is a process-local Store.
type MemoryStore struct {
	mu     sync.RWMutex
	cache  map[string]string
	failed map[string]bool
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cache:  make(map[string]string),
		failed: make(map[string]bool),
	}
}

func (s *MemoryStore) Get(url string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	html, ok := s.cache[NormalizeURL(url)]
	return html, ok
}

func (s *MemoryStore) Failed(url string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.failed[NormalizeURL(url)]
}

func (s *MemoryStore) Put(url, html string) {
	key := NormalizeURL(url)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[key] = html
	delete(s.failed, key)
}

func (s *MemoryStore) PutFailure(url string) {
	key := NormalizeURL(url)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failed[key] = true
	delete(s.cache, key)
}

func (s *MemoryStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[string]string)
	s.failed = make(map[string]bool)
}

// Len returns the number of cached previews and recorded failures.
func (s *MemoryStore) Len() (cached, failed int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cache), len(s.failed)
}
