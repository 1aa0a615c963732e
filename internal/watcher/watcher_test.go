package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/prettytext/internal/errors"
)

func TestEventTypeString(t *testing.T) {
	testCases := []struct {
		eventType EventType
		expected  string
	}{
		{EventTypeCreated, "created"},
		{EventTypeModified, "modified"},
		{EventTypeDeleted, "deleted"},
		{EventTypeRenamed, "renamed"},
		{EventType(42), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.eventType.String())
		})
	}
}

func TestNewFileWatcher(t *testing.T) {
	watcher, err := NewFileWatcher(100*time.Millisecond, nil)
	require.NoError(t, err)
	defer watcher.Stop()

	assert.NotNil(t, watcher.watcher)
	assert.NotNil(t, watcher.debouncer)
	assert.Empty(t, watcher.filters)
	assert.Empty(t, watcher.handlers)

	watcher.AddFilter(MarkupFilter)
	watcher.AddHandler(func([]ChangeEvent) error { return nil })
	assert.Len(t, watcher.filters, 1)
	assert.Len(t, watcher.handlers, 1)
}

func TestFileWatcherAddPath(t *testing.T) {
	watcher, err := NewFileWatcher(100*time.Millisecond, nil)
	require.NoError(t, err)
	defer watcher.Stop()

	assert.NoError(t, watcher.AddPath(t.TempDir()))
	assert.Error(t, watcher.AddPath("/non/existent/path"))
}

func TestFileWatcherValidation(t *testing.T) {
	watcher, err := NewFileWatcher(100*time.Millisecond, nil)
	require.NoError(t, err)
	defer watcher.Stop()

	for _, path := range []string{"../../../etc", "./../..", ".."} {
		err := watcher.AddPath(path)
		require.Error(t, err, path)
		assert.True(t, errors.IsType(err, errors.ErrorTypeValidation), path)
	}
	assert.Error(t, watcher.AddRecursive("../outside"))
}

func TestAddRecursiveSkipsHiddenDirectories(t *testing.T) {
	watcher, err := NewFileWatcher(100*time.Millisecond, nil)
	require.NoError(t, err)
	defer watcher.Stop()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs", "guides"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git", "objects"), 0755))

	require.NoError(t, watcher.AddRecursive(root))

	watched := watcher.watcher.WatchList()
	assert.Contains(t, watched, root)
	assert.Contains(t, watched, filepath.Join(root, "docs"))
	assert.Contains(t, watched, filepath.Join(root, "docs", "guides"))
	assert.NotContains(t, watched, filepath.Join(root, ".git"))
	assert.NotContains(t, watched, filepath.Join(root, ".git", "objects"))
}

func TestFileWatcherDeliversFilteredChanges(t *testing.T) {
	watcher, err := NewFileWatcher(30*time.Millisecond, nil)
	require.NoError(t, err)
	defer watcher.Stop()

	dir := t.TempDir()
	require.NoError(t, watcher.AddPath(dir))
	watcher.AddFilter(MarkupFilter)

	var (
		mu     sync.Mutex
		paths  []string
		called = make(chan struct{}, 10)
	)
	watcher.AddHandler(func(events []ChangeEvent) error {
		mu.Lock()
		for _, e := range events {
			paths = append(paths, e.Path)
		}
		mu.Unlock()
		called <- struct{}{}
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, watcher.Start(ctx))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.go"), []byte("package x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "post.md"), []byte("# hi"), 0644))

	select {
	case <-called:
	case <-time.After(2 * time.Second):
		t.Fatal("no change batch delivered")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, paths, filepath.Join(dir, "post.md"))
	assert.NotContains(t, paths, filepath.Join(dir, "ignored.go"))
}

func TestDebouncer(t *testing.T) {
	debouncer := &Debouncer{
		delay:   30 * time.Millisecond,
		events:  make(chan ChangeEvent, 100),
		output:  make(chan []ChangeEvent, 10),
		pending: make(map[string]ChangeEvent),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go debouncer.start(ctx)

	debouncer.events <- ChangeEvent{Path: "b.md", Type: EventTypeCreated}
	debouncer.events <- ChangeEvent{Path: "a.md", Type: EventTypeModified}
	debouncer.events <- ChangeEvent{Path: "b.md", Type: EventTypeModified}

	select {
	case events := <-debouncer.output:
		require.Len(t, events, 2)
		assert.Equal(t, "a.md", events[0].Path)
		assert.Equal(t, "b.md", events[1].Path)
		assert.Equal(t, EventTypeModified, events[1].Type, "latest event per path wins")
	case <-time.After(2 * time.Second):
		t.Fatal("debouncer never flushed")
	}
}

func TestFilters(t *testing.T) {
	configOrMarkup := AnyOf(ConfigFilter(".prettytext.yml"), MarkupFilter)

	tests := []struct {
		path     string
		markup   bool
		hidden   bool
		combined bool
	}{
		{"docs/post.md", true, false, true},
		{"README.MARKDOWN", true, false, true},
		{"notes.txt", true, false, true},
		{"main.go", false, false, false},
		{".prettytext.yml", false, true, true},
		{"docs/.draft.md", true, true, true},
		{".git/HEAD", false, true, false},
		{"docs/post.md~", false, true, false},
		{"../docs/post.md", true, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.markup, MarkupFilter(tt.path))
			assert.Equal(t, !tt.hidden, NoHiddenFilter(tt.path))
			assert.Equal(t, tt.combined, configOrMarkup(tt.path))
		})
	}
}
