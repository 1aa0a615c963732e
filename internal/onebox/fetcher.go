package onebox

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/conneroisu/prettytext/internal/errors"
	"github.com/conneroisu/prettytext/internal/logging"
	"github.com/conneroisu/prettytext/internal/version"
)

// maxPreviewBytes caps the size of a preview body.
const maxPreviewBytes = 1 << 20

// ErrRateLimited is returned by a Fetcher when the endpoint answers 429.
// Match it with errors.Is.
var ErrRateLimited = errors.NewNetworkError(errors.ErrCodeRateLimited, "onebox endpoint rate limited", nil)

// Request is one preview lookup.
type Request struct {
	URL        string
	Refresh    bool
	CategoryID int
	TopicID    int
}

// Fetcher resolves a URL into preview HTML.
type Fetcher interface {
	Fetch(ctx context.Context, req Request) (string, error)
}

// HTTPFetcher calls GET {base}/onebox.
type HTTPFetcher struct {
	baseURL string
	client  *http.Client
	logger  logging.Logger
}

// NewHTTPFetcher creates a fetcher for the endpoint at baseURL.
func NewHTTPFetcher(baseURL string, timeout time.Duration, logger logging.Logger) *HTTPFetcher {
	if logger == nil {
		logger = logging.Nop()
	}
	return &HTTPFetcher{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger.WithComponent("onebox_fetcher"),
	}
}

// Fetch issues the lookup. A 429 yields ErrRateLimited; any other non-2xx
// status or transport failure yields a network error.
func (f *HTTPFetcher) Fetch(ctx context.Context, req Request) (string, error) {
	q := url.Values{}
	q.Set("url", req.URL)
	q.Set("refresh", strconv.FormatBool(req.Refresh))
	if req.CategoryID != 0 {
		q.Set("category_id", strconv.Itoa(req.CategoryID))
	}
	if req.TopicID != 0 {
		q.Set("topic_id", strconv.Itoa(req.TopicID))
	}
	endpoint := f.baseURL + "/onebox?" + q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", errors.NewInternalError(errors.ErrCodeRemoteUnreachable, "build onebox request", err).
			WithComponent("onebox")
	}
	httpReq.Header.Set("Accept", "text/html")
	httpReq.Header.Set("User-Agent", version.UserAgent())

	resp, err := f.client.Do(httpReq)
	if err != nil {
		return "", errors.NewNetworkError(errors.ErrCodeRemoteUnreachable, "onebox request failed", err).
			WithContext("url", req.URL).
			WithComponent("onebox")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		f.logger.Debug(ctx, "onebox endpoint rate limited", "url", req.URL)
		return "", ErrRateLimited
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return "", errors.NewNetworkError(errors.ErrCodeRemoteStatus,
			fmt.Sprintf("onebox endpoint returned %d", resp.StatusCode), nil).
			WithContext("url", req.URL).
			WithComponent("onebox")
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPreviewBytes))
	if err != nil {
		return "", errors.NewNetworkError(errors.ErrCodeRemoteUnreachable, "read onebox response", err).
			WithContext("url", req.URL).
			WithComponent("onebox")
	}
	return string(body), nil
}
