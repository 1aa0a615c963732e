package shorturl

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perrors "github.com/conneroisu/prettytext/internal/errors"
)

type fakeClient struct {
	mu      sync.Mutex
	known   map[string]Upload
	batches [][]string
	err     error
}

func (c *fakeClient) LookupURLs(_ context.Context, shortURLs []string) ([]Upload, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.batches = append(c.batches, append([]string(nil), shortURLs...))
	if c.err != nil {
		return nil, c.err
	}
	var out []Upload
	for _, s := range shortURLs {
		if u, ok := c.known[s]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func newFakeClient() *fakeClient {
	return &fakeClient{known: map[string]Upload{
		"upload://a.png": {ShortURL: "upload://a.png", URL: "/uploads/a.png", ShortPath: "/uploads/short-url/a.png"},
		"upload://b.pdf": {ShortURL: "upload://b.pdf", URL: "/uploads/b.pdf", ShortPath: "/uploads/short-url/b.pdf"},
	}}
}

func TestResolverLookup(t *testing.T) {
	client := newFakeClient()
	r := NewResolver(client, nil)
	ctx := context.Background()

	got, err := r.Lookup(ctx, []string{"upload://a.png", "upload://gone.png", "upload://a.png"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "/uploads/a.png", got["upload://a.png"].URL)
	assert.True(t, got["upload://gone.png"].IsMissing())
	assert.Equal(t, Missing, got["upload://gone.png"])
	require.Len(t, client.batches, 1)
	assert.Equal(t, []string{"upload://a.png", "upload://gone.png"}, client.batches[0])

	// Cached hits and cached misses never go back to the server.
	got, err = r.Lookup(ctx, []string{"upload://gone.png", "upload://a.png", "upload://b.pdf"})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/b.pdf", got["upload://b.pdf"].URL)
	require.Len(t, client.batches, 2)
	assert.Equal(t, []string{"upload://b.pdf"}, client.batches[1])

	_, err = r.Lookup(ctx, []string{"upload://gone.png"})
	require.NoError(t, err)
	assert.Len(t, client.batches, 2)
}

func TestResolverErrorCachesNothing(t *testing.T) {
	client := newFakeClient()
	client.err = errors.New("offline")
	r := NewResolver(client, nil)

	_, err := r.Lookup(context.Background(), []string{"upload://a.png"})
	require.Error(t, err)
	_, ok := r.Cached("upload://a.png")
	assert.False(t, ok)
}

func TestResolverCachedAndReset(t *testing.T) {
	r := NewResolver(newFakeClient(), nil)
	_, err := r.Lookup(context.Background(), []string{"upload://a.png", "upload://x.png"})
	require.NoError(t, err)

	u, ok := r.Cached("upload://a.png")
	assert.True(t, ok)
	assert.Equal(t, "/uploads/short-url/a.png", u.ShortPath)

	lookup := r.LookupFunc()
	url, ok := lookup("upload://a.png")
	assert.True(t, ok)
	assert.Equal(t, "/uploads/a.png", url)
	_, ok = lookup("upload://x.png")
	assert.False(t, ok, "missing uploads are not reported as resolved")

	r.Reset()
	_, ok = r.Cached("upload://a.png")
	assert.False(t, ok)
}

func TestHTTPClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/uploads/lookup-urls", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req lookupRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if len(req.ShortURLs) == 1 && req.ShortURLs[0] == "upload://busy" {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		var out []map[string]string
		for _, s := range req.ShortURLs {
			if s == "upload://a.png" {
				out = append(out, map[string]string{"short_url": s, "url": "/uploads/a.png", "short_path": "/u/a"})
			}
		}
		_ = json.NewEncoder(w).Encode(out)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, nil)
	uploads, err := c.LookupURLs(context.Background(), []string{"upload://a.png", "upload://b.png"})
	require.NoError(t, err)
	require.Len(t, uploads, 1)
	assert.Equal(t, Upload{ShortURL: "upload://a.png", URL: "/uploads/a.png", ShortPath: "/u/a"}, uploads[0])

	_, err = c.LookupURLs(context.Background(), []string{"upload://busy"})
	require.Error(t, err)
	var perr *perrors.Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, perrors.ErrCodeRateLimited, perr.Code)
}

func TestResolveHTML(t *testing.T) {
	client := newFakeClient()
	r := NewResolver(client, nil)

	src := `<p><img src="/images/transparent.png" alt="a" data-orig-src="upload://a.png">` +
		`<img src="/images/transparent.png" class="thumb" data-orig-src="upload://gone.png">` +
		`<a href="/404" data-orig-href="upload://b.pdf">b.pdf</a>` +
		`<a href="https://example.com">plain</a></p>`

	out, err := ResolveHTML(context.Background(), src, r)
	require.NoError(t, err)

	assert.Contains(t, out, `<img src="/uploads/a.png" alt="a" data-orig-src="upload://a.png">`)
	assert.Contains(t, out, `class="thumb image-removed"`)
	assert.Contains(t, out, `<a href="/uploads/b.pdf" data-orig-href="upload://b.pdf">b.pdf</a>`)
	assert.Contains(t, out, `<a href="https://example.com">plain</a>`)
	require.Len(t, client.batches, 1)
	assert.ElementsMatch(t, []string{"upload://a.png", "upload://gone.png", "upload://b.pdf"}, client.batches[0])
}

func TestResolveHTMLWithoutUploads(t *testing.T) {
	client := newFakeClient()
	src := `<p>nothing <a href="/x">here</a></p>`

	out, err := ResolveHTML(context.Background(), src, NewResolver(client, nil))
	require.NoError(t, err)
	assert.Equal(t, src, out)
	assert.Empty(t, client.batches)
}
