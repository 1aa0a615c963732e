package testutils

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/conneroisu/prettytext/internal/config"
	"github.com/conneroisu/prettytext/internal/onebox"
)

// CreateTempProject creates a temporary directory laid out like a
// documentation project: a docs folder and a cache folder.
func CreateTempProject(t *testing.T) string {
	tempDir := t.TempDir()

	dirs := []string{
		"docs",
		".prettytext/cache",
	}

	for _, dir := range dirs {
		err := os.MkdirAll(filepath.Join(tempDir, dir), 0755)
		require.NoError(t, err)
	}

	return tempDir
}

// CreateTestDocument writes a markup document named name+".md" into dir.
func CreateTestDocument(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name+".md")
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)
	return path
}

// CreateTestConfig returns the default configuration rooted at projectDir,
// with the onebox cache inside the project and short delays.
func CreateTestConfig(projectDir string) *config.Config {
	cfg := config.Default()
	cfg.Onebox.CachePath = filepath.Join(projectDir, ".prettytext", "cache", "onebox.db")
	cfg.Onebox.Delay = 5 * time.Millisecond
	cfg.Onebox.BackoffDelay = 20 * time.Millisecond
	cfg.Server.Watch = []string{"docs/*.md", "docs/**/*.md"}
	return cfg
}

// StandardDocuments provides markup samples exercising the built-in
// features.
var StandardDocuments = map[string]string{
	"basic": "# Title\n\nSome *emphasis* and a [link](https://example.com).\n",
	"bbcode": "[details=\"Summary\"]\nHidden **text**\n[/details]\n\n" +
		"[quote=\"alice, post:1, topic:2\"]\nquoted\n[/quote]\n",
	"emoji":  "Hello :smile: and :+1:\n",
	"media":  "![clip|video](/clip.mp4)\n\n![photo|300x200,50%](/photo.jpg)\n",
	"onebox": "https://example.com/article\n",
}

// SecurityTestCases provides common injection vectors for sanitizer tests.
var SecurityTestCases = struct {
	ScriptInjection []string
	URLInjection    []string
}{
	ScriptInjection: []string{
		"<script>alert('xss')</script>",
		"<img src=x onerror=alert('xss')>",
		"<svg onload=alert('xss')>",
		"<iframe src=javascript:alert('xss')>",
		"<body onload=alert('xss')>",
		"<div onclick=alert('xss')>",
		"<script src=//evil.com/malicious.js></script>",
		"<style>body{display:none}</style>",
	},
	URLInjection: []string{
		"javascript:alert('xss')",
		"JaVaScRiPt:alert('xss')",
		"vbscript:msgbox('xss')",
		"data:text/html;base64,PHNjcmlwdD5hbGVydCgxKTwvc2NyaXB0Pg==",
	},
}

// FakeResponse is one scripted answer of a FakeFetcher.
type FakeResponse struct {
	HTML string
	Err  error
}

// FakeFetcher is an onebox.Fetcher that replays scripted responses per URL.
// Once a URL's script is exhausted its last response repeats; URLs without
// a script fail with Default.
type FakeFetcher struct {
	mu        sync.Mutex
	responses map[string][]FakeResponse
	requests  []onebox.Request

	// Default is returned for URLs with no script.
	Default FakeResponse
	// Block, when set, makes Fetch wait until it is closed or ctx ends.
	Block chan struct{}
}

// NewFakeFetcher creates a FakeFetcher with no scripts.
func NewFakeFetcher() *FakeFetcher {
	return &FakeFetcher{responses: make(map[string][]FakeResponse)}
}

// Script queues responses for url.
func (f *FakeFetcher) Script(url string, responses ...FakeResponse) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[url] = append(f.responses[url], responses...)
}

// Fetch implements onebox.Fetcher.
func (f *FakeFetcher) Fetch(ctx context.Context, req onebox.Request) (string, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	block := f.Block
	f.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	script, ok := f.responses[req.URL]
	if !ok || len(script) == 0 {
		return f.Default.HTML, f.Default.Err
	}
	resp := script[0]
	if len(script) > 1 {
		f.responses[req.URL] = script[1:]
	}
	return resp.HTML, resp.Err
}

// Requests returns a copy of the requests seen so far.
func (f *FakeFetcher) Requests() []onebox.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]onebox.Request(nil), f.requests...)
}

// Calls returns how many requests were made for url.
func (f *FakeFetcher) Calls(url string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, r := range f.requests {
		if r.URL == url {
			n++
		}
	}
	return n
}

// WaitFor polls cond until it holds or timeout passes.
func WaitFor(t *testing.T, timeout time.Duration, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within %v: %s", timeout, msg)
}

// WaitForFileChange waits for a file to be modified (useful for testing file watchers)
func WaitForFileChange(
	t *testing.T,
	filePath string,
	originalModTime time.Time,
	timeout time.Duration,
) {
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		info, err := os.Stat(filePath)
		if err == nil && info.ModTime().After(originalModTime) {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Fatalf("File %s was not modified within %v", filePath, timeout)
}
