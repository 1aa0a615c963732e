package testutils

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/prettytext/internal/onebox"
)

func TestCreateTempProject(t *testing.T) {
	projectDir := CreateTempProject(t)

	for _, dir := range []string{"docs", ".prettytext/cache"} {
		info, err := os.Stat(filepath.Join(projectDir, dir))
		require.NoError(t, err)
		assert.True(t, info.IsDir(), "Expected %s to be a directory", dir)
	}
}

func TestCreateTestDocument(t *testing.T) {
	docs := filepath.Join(CreateTempProject(t), "docs")

	path := CreateTestDocument(t, docs, "intro", StandardDocuments["basic"])

	assert.FileExists(t, path)
	assert.Equal(t, ".md", filepath.Ext(path))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, StandardDocuments["basic"], string(content))
}

func TestCreateTestConfig(t *testing.T) {
	projectDir := CreateTempProject(t)
	cfg := CreateTestConfig(projectDir)

	assert.Equal(t, filepath.Join(projectDir, ".prettytext", "cache", "onebox.db"), cfg.Onebox.CachePath)
	assert.Less(t, cfg.Onebox.Delay, cfg.Onebox.BackoffDelay)
	assert.True(t, cfg.Site.Sanitize)
	assert.True(t, cfg.Site.EnableEmoji)
}

func TestSecurityTestCases(t *testing.T) {
	assert.GreaterOrEqual(t, len(SecurityTestCases.ScriptInjection), 6)
	assert.NotEmpty(t, SecurityTestCases.URLInjection)
	assert.Contains(t, SecurityTestCases.ScriptInjection, "<script>alert('xss')</script>")
}

func TestFakeFetcher(t *testing.T) {
	f := NewFakeFetcher()
	f.Default = FakeResponse{Err: errors.New("no script")}
	f.Script("https://a.example", FakeResponse{Err: onebox.ErrRateLimited}, FakeResponse{HTML: "<aside>a</aside>"})

	ctx := context.Background()
	_, err := f.Fetch(ctx, onebox.Request{URL: "https://a.example"})
	assert.ErrorIs(t, err, onebox.ErrRateLimited)

	for i := 0; i < 2; i++ {
		html, err := f.Fetch(ctx, onebox.Request{URL: "https://a.example"})
		require.NoError(t, err)
		assert.Equal(t, "<aside>a</aside>", html)
	}

	_, err = f.Fetch(ctx, onebox.Request{URL: "https://b.example"})
	assert.EqualError(t, err, "no script")

	assert.Equal(t, 3, f.Calls("https://a.example"))
	assert.Len(t, f.Requests(), 4)
}

func TestFakeFetcherBlockHonoursContext(t *testing.T) {
	f := NewFakeFetcher()
	f.Block = make(chan struct{})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := f.Fetch(ctx, onebox.Request{URL: "https://a.example"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWaitForFileChange(t *testing.T) {
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "test.txt")

	err := os.WriteFile(testFile, []byte("initial"), 0644)
	require.NoError(t, err)

	info, err := os.Stat(testFile)
	require.NoError(t, err)
	originalModTime := info.ModTime()

	go func() {
		time.Sleep(50 * time.Millisecond)
		_ = os.WriteFile(testFile, []byte("modified"), 0644)
	}()

	WaitForFileChange(t, testFile, originalModTime, time.Second)

	content, err := os.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, "modified", string(content))
}

func TestWaitFor(t *testing.T) {
	start := time.Now()
	WaitFor(t, time.Second, func() bool {
		return time.Since(start) > 20*time.Millisecond
	}, "clock advanced")
}
