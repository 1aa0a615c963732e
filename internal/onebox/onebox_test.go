package onebox_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perrors "github.com/conneroisu/prettytext/internal/errors"
	"github.com/conneroisu/prettytext/internal/onebox"
	"github.com/conneroisu/prettytext/internal/testutils"
)

const preview = `<aside class="onebox">preview</aside>`

func fastConfig() onebox.LoaderConfig {
	return onebox.LoaderConfig{Delay: 5 * time.Millisecond, BackoffDelay: 20 * time.Millisecond}
}

func TestStores(t *testing.T) {
	sqlite, err := onebox.OpenSQLiteStore(filepath.Join(t.TempDir(), "cache.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close() })

	stores := map[string]onebox.Store{
		"memory": onebox.NewMemoryStore(),
		"sqlite": sqlite,
	}
	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			_, ok := store.Get("https://a.example")
			assert.False(t, ok)

			store.Put("https://a.example/", preview)
			got, ok := store.Get("https://a.example")
			assert.True(t, ok)
			assert.Equal(t, preview, got)
			assert.False(t, store.Failed("https://a.example"))

			store.PutFailure("https://a.example")
			_, ok = store.Get("https://a.example")
			assert.False(t, ok)
			assert.True(t, store.Failed("https://a.example/"))

			store.Put("https://a.example", preview)
			assert.False(t, store.Failed("https://a.example"))

			store.PutFailure("https://b.example")
			store.Reset()
			_, ok = store.Get("https://a.example")
			assert.False(t, ok)
			assert.False(t, store.Failed("https://b.example"))
		})
	}
}

func TestSQLiteStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")

	store, err := onebox.OpenSQLiteStore(path, nil)
	require.NoError(t, err)
	store.Put("https://a.example", preview)
	store.PutFailure("https://b.example")
	require.NoError(t, store.Close())

	reopened, err := onebox.OpenSQLiteStore(path, nil)
	require.NoError(t, err)
	defer reopened.Close()

	got, ok := reopened.Get("https://a.example")
	assert.True(t, ok)
	assert.Equal(t, preview, got)
	assert.True(t, reopened.Failed("https://b.example"))

	cached, failed, err := reopened.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, cached)
	assert.Equal(t, 1, failed)
}

func TestNormalizeURL(t *testing.T) {
	assert.Equal(t, "https://a.example", onebox.NormalizeURL("https://a.example/"))
	assert.Equal(t, "https://a.example/x/", onebox.NormalizeURL("https://a.example/x//"))
	assert.Equal(t, "https://a.example", onebox.NormalizeURL("https://a.example"))
}

func TestHTTPFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/onebox", r.URL.Path)
		q := r.URL.Query()
		switch q.Get("url") {
		case "https://ok.example":
			assert.Equal(t, "true", q.Get("refresh"))
			assert.Equal(t, "3", q.Get("category_id"))
			assert.Equal(t, "9", q.Get("topic_id"))
			_, _ = w.Write([]byte(preview))
		case "https://busy.example":
			w.WriteHeader(http.StatusTooManyRequests)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	f := onebox.NewHTTPFetcher(srv.URL+"/", time.Second, nil)
	ctx := context.Background()

	html, err := f.Fetch(ctx, onebox.Request{URL: "https://ok.example", Refresh: true, CategoryID: 3, TopicID: 9})
	require.NoError(t, err)
	assert.Equal(t, preview, html)

	_, err = f.Fetch(ctx, onebox.Request{URL: "https://busy.example"})
	assert.True(t, errors.Is(err, onebox.ErrRateLimited))

	_, err = f.Fetch(ctx, onebox.Request{URL: "https://missing.example"})
	require.Error(t, err)
	assert.False(t, errors.Is(err, onebox.ErrRateLimited))
	assert.True(t, perrors.IsType(err, perrors.ErrorTypeNetwork))
}

func TestLoaderCacheHit(t *testing.T) {
	store := onebox.NewMemoryStore()
	store.Put("https://a.example", preview)
	fetcher := testutils.NewFakeFetcher()
	l := onebox.New(store, fetcher, fastConfig(), nil, nil)
	defer l.Close()

	link := onebox.NewLink("https://a.example/", "onebox")
	html, ok := l.Load(context.Background(), link, onebox.LoadOptions{})

	assert.True(t, ok)
	assert.Equal(t, preview, html)
	assert.True(t, link.Loaded())
	assert.Empty(t, fetcher.Requests())
}

func TestLoaderSynchronousSuccess(t *testing.T) {
	store := onebox.NewMemoryStore()
	fetcher := testutils.NewFakeFetcher()
	fetcher.Script("https://a.example", testutils.FakeResponse{HTML: preview})
	l := onebox.New(store, fetcher, fastConfig(), nil, nil)
	defer l.Close()

	link := onebox.NewLink("https://a.example", "onebox")
	html, ok := l.Load(context.Background(), link, onebox.LoadOptions{Synchronous: true, TopicID: 4})
	require.True(t, ok)
	assert.Equal(t, preview, html)

	replaced, ok := link.Replacement()
	assert.True(t, ok)
	assert.Equal(t, preview, replaced)
	assert.True(t, link.Loaded())
	assert.False(t, link.HasClass(onebox.LoadingClass))

	cached, ok := store.Get("https://a.example")
	assert.True(t, ok)
	assert.Equal(t, preview, cached)
	assert.False(t, store.Failed("https://a.example"))
	assert.False(t, l.Queued("https://a.example"))

	again := onebox.NewLink("https://a.example", "onebox")
	_, ok = l.Load(context.Background(), again, onebox.LoadOptions{})
	assert.True(t, ok)
	assert.Equal(t, 1, fetcher.Calls("https://a.example"))
	assert.Equal(t, 4, fetcher.Requests()[0].TopicID)
}

func TestLoaderFailureIsPermanent(t *testing.T) {
	store := onebox.NewMemoryStore()
	fetcher := testutils.NewFakeFetcher()
	fetcher.Default = testutils.FakeResponse{Err: errors.New("boom")}
	l := onebox.New(store, fetcher, fastConfig(), nil, nil)
	defer l.Close()

	link := onebox.NewLink("https://a.example", "onebox")
	_, ok := l.Load(context.Background(), link, onebox.LoadOptions{Synchronous: true})
	assert.False(t, ok)
	assert.False(t, link.Loaded())
	assert.False(t, link.HasClass(onebox.LoadingClass))
	assert.True(t, store.Failed("https://a.example"))
	_, cached := store.Get("https://a.example")
	assert.False(t, cached)

	_, ok = l.Load(context.Background(), onebox.NewLink("https://a.example", "onebox"), onebox.LoadOptions{Synchronous: true})
	assert.False(t, ok)
	assert.Equal(t, 1, fetcher.Calls("https://a.example"))
}

func TestLoaderEmptyPreviewIsFailure(t *testing.T) {
	store := onebox.NewMemoryStore()
	fetcher := testutils.NewFakeFetcher()
	fetcher.Script("https://a.example", testutils.FakeResponse{HTML: "  \n"})
	l := onebox.New(store, fetcher, fastConfig(), nil, nil)
	defer l.Close()

	_, ok := l.Load(context.Background(), onebox.NewLink("https://a.example", ""), onebox.LoadOptions{Synchronous: true})
	assert.False(t, ok)
	assert.True(t, store.Failed("https://a.example"))
}

func TestLoaderRateLimitBackoff(t *testing.T) {
	store := onebox.NewMemoryStore()
	fetcher := testutils.NewFakeFetcher()
	fetcher.Script("https://a.example",
		testutils.FakeResponse{Err: onebox.ErrRateLimited},
		testutils.FakeResponse{HTML: preview},
	)
	cfg := fastConfig()
	cfg.BackoffDelay = 200 * time.Millisecond
	l := onebox.New(store, fetcher, cfg, nil, nil)
	defer l.Close()

	link := onebox.NewLink("https://a.example", "onebox")
	_, ok := l.Load(context.Background(), link, onebox.LoadOptions{Synchronous: true})
	assert.False(t, ok)

	// Rate limited: still queued, still loading, in neither cache.
	assert.True(t, l.Queued("https://a.example"))
	assert.Equal(t, 1, l.Pending())
	assert.True(t, link.HasClass(onebox.LoadingClass))
	_, cached := store.Get("https://a.example")
	assert.False(t, cached)
	assert.False(t, store.Failed("https://a.example"))

	testutils.WaitFor(t, 2*time.Second, link.Loaded, "link loaded after backoff")
	assert.Equal(t, 2, fetcher.Calls("https://a.example"))
	assert.False(t, store.Failed("https://a.example"))
	assert.False(t, l.Queued("https://a.example"))
	assert.False(t, link.HasClass(onebox.LoadingClass))
}

// slowFetcher delays every request and records when each one started.
type slowFetcher struct {
	*testutils.FakeFetcher
	latency time.Duration

	mu     sync.Mutex
	starts map[string][]time.Time
}

func newSlowFetcher(latency time.Duration) *slowFetcher {
	return &slowFetcher{
		FakeFetcher: testutils.NewFakeFetcher(),
		latency:     latency,
		starts:      make(map[string][]time.Time),
	}
}

func (f *slowFetcher) Fetch(ctx context.Context, req onebox.Request) (string, error) {
	f.mu.Lock()
	f.starts[req.URL] = append(f.starts[req.URL], time.Now())
	f.mu.Unlock()
	time.Sleep(f.latency)
	return f.FakeFetcher.Fetch(ctx, req)
}

func (f *slowFetcher) startsFor(url string) []time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]time.Time(nil), f.starts[url]...)
}

func TestLoaderBackoffHoldsQueuedDrain(t *testing.T) {
	fetcher := newSlowFetcher(100 * time.Millisecond)
	fetcher.Default = testutils.FakeResponse{HTML: preview}
	fetcher.Script("https://a.example",
		testutils.FakeResponse{Err: onebox.ErrRateLimited},
		testutils.FakeResponse{HTML: preview},
	)
	backoff := 300 * time.Millisecond
	l := onebox.New(onebox.NewMemoryStore(), fetcher,
		onebox.LoaderConfig{Delay: 20 * time.Millisecond, BackoffDelay: backoff}, nil, nil)
	defer l.Close()

	a := onebox.NewLink("https://a.example", "onebox")
	l.Load(context.Background(), a, onebox.LoadOptions{})
	testutils.WaitFor(t, 2*time.Second, func() bool {
		return len(fetcher.startsFor("https://a.example")) == 1
	}, "first request in flight")

	// Queued while the request that gets rate limited is still running.
	b := onebox.NewLink("https://b.example", "onebox")
	l.Load(context.Background(), b, onebox.LoadOptions{})

	testutils.WaitFor(t, 5*time.Second, func() bool {
		return a.Loaded() && b.Loaded()
	}, "both links loaded")

	starts := fetcher.startsFor("https://a.example")
	require.Len(t, starts, 2)
	assert.GreaterOrEqual(t, starts[1].Sub(starts[0]), fetcher.latency+backoff)
	later := fetcher.startsFor("https://b.example")
	require.Len(t, later, 1)
	assert.True(t, later[0].After(starts[1]), "b waits behind a")
}

func TestLoaderSynchronousLoadRespectsBackoff(t *testing.T) {
	fetcher := testutils.NewFakeFetcher()
	fetcher.Default = testutils.FakeResponse{HTML: preview}
	fetcher.Script("https://a.example",
		testutils.FakeResponse{Err: onebox.ErrRateLimited},
		testutils.FakeResponse{HTML: preview},
	)
	cfg := fastConfig()
	cfg.BackoffDelay = 200 * time.Millisecond
	l := onebox.New(onebox.NewMemoryStore(), fetcher, cfg, nil, nil)
	defer l.Close()

	a := onebox.NewLink("https://a.example", "onebox")
	_, ok := l.Load(context.Background(), a, onebox.LoadOptions{Synchronous: true})
	assert.False(t, ok)

	b := onebox.NewLink("https://b.example", "onebox")
	_, ok = l.Load(context.Background(), b, onebox.LoadOptions{Synchronous: true})
	assert.False(t, ok)
	assert.Equal(t, 1, fetcher.Calls("https://a.example"))
	assert.Equal(t, 0, fetcher.Calls("https://b.example"))
	assert.Equal(t, 2, l.Pending())

	testutils.WaitFor(t, 2*time.Second, func() bool {
		return a.Loaded() && b.Loaded()
	}, "both links loaded after backoff")
	assert.Equal(t, 2, fetcher.Calls("https://a.example"))
}

func TestLoaderSkipsLoadingAndLoadedElements(t *testing.T) {
	fetcher := testutils.NewFakeFetcher()
	l := onebox.New(onebox.NewMemoryStore(), fetcher, fastConfig(), nil, nil)
	defer l.Close()

	loading := onebox.NewLink("https://a.example", "onebox "+onebox.LoadingClass)
	_, ok := l.Load(context.Background(), loading, onebox.LoadOptions{Synchronous: true})
	assert.False(t, ok)

	loaded := onebox.NewLink("https://a.example", "onebox")
	loaded.MarkLoaded()
	_, ok = l.Load(context.Background(), loaded, onebox.LoadOptions{Synchronous: true})
	assert.False(t, ok)

	assert.Empty(t, fetcher.Requests())
}

func TestLoaderCoalescesQueuedURL(t *testing.T) {
	fetcher := testutils.NewFakeFetcher()
	fetcher.Script("https://a.example", testutils.FakeResponse{HTML: preview})
	cfg := fastConfig()
	cfg.Delay = 50 * time.Millisecond
	l := onebox.New(onebox.NewMemoryStore(), fetcher, cfg, nil, nil)
	defer l.Close()

	first := onebox.NewLink("https://a.example", "onebox")
	second := onebox.NewLink("https://a.example/", "onebox")
	_, ok := l.Load(context.Background(), first, onebox.LoadOptions{})
	assert.False(t, ok)
	_, ok = l.Load(context.Background(), second, onebox.LoadOptions{})
	assert.False(t, ok)
	assert.Equal(t, 1, l.Pending())

	testutils.WaitFor(t, 2*time.Second, func() bool {
		return first.Loaded() && second.Loaded()
	}, "both links loaded")
	assert.Equal(t, 1, fetcher.Calls("https://a.example"))
}

func TestLoaderDrainsInOrder(t *testing.T) {
	fetcher := testutils.NewFakeFetcher()
	fetcher.Default = testutils.FakeResponse{HTML: preview}
	l := onebox.New(onebox.NewMemoryStore(), fetcher, fastConfig(), nil, nil)
	defer l.Close()

	urls := []string{"https://a.example", "https://b.example", "https://c.example"}
	links := make([]*onebox.Link, len(urls))
	for i, u := range urls {
		links[i] = onebox.NewLink(u, "onebox")
		l.Load(context.Background(), links[i], onebox.LoadOptions{})
	}

	testutils.WaitFor(t, 2*time.Second, links[2].Loaded, "last link loaded")
	reqs := fetcher.Requests()
	require.Len(t, reqs, 3)
	for i, u := range urls {
		assert.Equal(t, u, reqs[i].URL)
	}
}

func TestLoaderInFlightCountsAsQueued(t *testing.T) {
	fetcher := testutils.NewFakeFetcher()
	fetcher.Default = testutils.FakeResponse{HTML: preview}
	fetcher.Block = make(chan struct{})
	l := onebox.New(onebox.NewMemoryStore(), fetcher, fastConfig(), nil, nil)
	defer l.Close()

	link := onebox.NewLink("https://a.example", "onebox")
	l.Load(context.Background(), link, onebox.LoadOptions{})

	testutils.WaitFor(t, 2*time.Second, func() bool {
		return len(fetcher.Requests()) == 1
	}, "request in flight")
	assert.Equal(t, 0, l.Pending())
	assert.True(t, l.Queued("https://a.example"))

	close(fetcher.Block)
	testutils.WaitFor(t, 2*time.Second, link.Loaded, "link loaded")
	assert.False(t, l.Queued("https://a.example"))
}

func TestLoaderClose(t *testing.T) {
	fetcher := testutils.NewFakeFetcher()
	fetcher.Block = make(chan struct{})
	store := onebox.NewMemoryStore()
	l := onebox.New(store, fetcher, fastConfig(), nil, nil)

	link := onebox.NewLink("https://a.example", "onebox")
	l.Load(context.Background(), link, onebox.LoadOptions{})
	testutils.WaitFor(t, 2*time.Second, func() bool {
		return len(fetcher.Requests()) == 1
	}, "request in flight")

	l.Close()
	testutils.WaitFor(t, 2*time.Second, func() bool {
		return l.Pending() == 1
	}, "cancelled request re-queued")
	assert.False(t, store.Failed("https://a.example"))

	_, ok := l.Load(context.Background(), onebox.NewLink("https://b.example", "onebox"), onebox.LoadOptions{})
	assert.False(t, ok)
	assert.False(t, l.Queued("https://b.example"))
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := onebox.NewMetrics(reg)
	require.NoError(t, err)

	store := onebox.NewMemoryStore()
	fetcher := testutils.NewFakeFetcher()
	fetcher.Script("https://a.example", testutils.FakeResponse{HTML: preview})
	fetcher.Default = testutils.FakeResponse{Err: errors.New("boom")}
	l := onebox.New(store, fetcher, fastConfig(), nil, metrics)
	defer l.Close()

	ctx := context.Background()
	l.Load(ctx, onebox.NewLink("https://a.example", ""), onebox.LoadOptions{Synchronous: true})
	l.Load(ctx, onebox.NewLink("https://a.example", ""), onebox.LoadOptions{Synchronous: true})
	l.Load(ctx, onebox.NewLink("https://b.example", ""), onebox.LoadOptions{Synchronous: true})

	families, err := reg.Gather()
	require.NoError(t, err)
	values := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			name := mf.GetName()
			for _, lp := range m.GetLabel() {
				name += "/" + lp.GetValue()
			}
			switch {
			case m.GetCounter() != nil:
				values[name] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				values[name] = m.GetGauge().GetValue()
			}
		}
	}

	assert.Equal(t, 1.0, values["prettytext_onebox_cache_hits_total"])
	assert.Equal(t, 1.0, values["prettytext_onebox_requests_total/success"])
	assert.Equal(t, 1.0, values["prettytext_onebox_requests_total/failure"])
	assert.Equal(t, 1.0, values["prettytext_onebox_failures_total"])
	assert.Equal(t, 0.0, values["prettytext_onebox_queue_length"])

	_, err = onebox.NewMetrics(reg)
	assert.Error(t, err, "registering twice must fail")

	none, err := onebox.NewMetrics(nil)
	assert.NoError(t, err)
	assert.Nil(t, none)
}

func TestEnrichHTML(t *testing.T) {
	fetcher := testutils.NewFakeFetcher()
	fetcher.Script("https://a.example", testutils.FakeResponse{HTML: preview})
	fetcher.Default = testutils.FakeResponse{Err: errors.New("boom")}
	l := onebox.New(onebox.NewMemoryStore(), fetcher, fastConfig(), nil, nil)
	defer l.Close()

	src := `<p><a href="https://a.example" class="onebox" target="_blank">https://a.example</a></p>` +
		`<p><a href="https://b.example" class="onebox">https://b.example</a></p>` +
		`<p>see <a href="https://c.example">c</a></p>`

	out, err := onebox.EnrichHTML(context.Background(), src, l)
	require.NoError(t, err)

	assert.Equal(t, `<p>`+preview+`</p>`+
		`<p><a href="https://b.example" class="onebox">https://b.example</a></p>`+
		`<p>see <a href="https://c.example">c</a></p>`, out)
	assert.Equal(t, 0, fetcher.Calls("https://c.example"))
}
