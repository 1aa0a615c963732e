package shorturl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/conneroisu/prettytext/internal/errors"
	"github.com/conneroisu/prettytext/internal/logging"
	"github.com/conneroisu/prettytext/internal/version"
)

// Client resolves a batch of short URLs in one call.
type Client interface {
	LookupURLs(ctx context.Context, shortURLs []string) ([]Upload, error)
}

type lookupRequest struct {
	ShortURLs []string `json:"short_urls"`
}

// HTTPClient calls POST {base}/uploads/lookup-urls.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	logger  logging.Logger
}

// NewHTTPClient creates a client for the endpoint at baseURL.
func NewHTTPClient(baseURL string, timeout time.Duration, logger logging.Logger) *HTTPClient {
	if logger == nil {
		logger = logging.Nop()
	}
	return &HTTPClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger.WithComponent("shorturl_client"),
	}
}

// LookupURLs posts the batch and decodes the uploads the endpoint knows.
func (c *HTTPClient) LookupURLs(ctx context.Context, shortURLs []string) ([]Upload, error) {
	body, err := json.Marshal(lookupRequest{ShortURLs: shortURLs})
	if err != nil {
		return nil, errors.NewInternalError(errors.ErrCodeRemoteUnreachable, "encode lookup request", err).
			WithComponent("shorturl")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/uploads/lookup-urls", bytes.NewReader(body))
	if err != nil {
		return nil, errors.NewInternalError(errors.ErrCodeRemoteUnreachable, "build lookup request", err).
			WithComponent("shorturl")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.NewNetworkError(errors.ErrCodeRemoteUnreachable, "upload lookup failed", err).
			WithComponent("shorturl")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, errors.NewNetworkError(errors.ErrCodeRateLimited, "upload lookup rate limited", nil).
			WithComponent("shorturl")
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, errors.NewNetworkError(errors.ErrCodeRemoteStatus,
			fmt.Sprintf("upload lookup returned %d", resp.StatusCode), nil).
			WithComponent("shorturl")
	}

	var uploads []Upload
	if err := json.NewDecoder(resp.Body).Decode(&uploads); err != nil {
		return nil, errors.NewNetworkError(errors.ErrCodeRemoteStatus, "decode upload lookup response", err).
			WithComponent("shorturl")
	}
	c.logger.Debug(ctx, "uploads resolved", "requested", len(shortURLs), "found", len(uploads))
	return uploads, nil
}
