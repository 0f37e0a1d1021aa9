package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/JustBeyond/packedbubble/pkg/chart"
	"github.com/JustBeyond/packedbubble/pkg/errors"
	"github.com/JustBeyond/packedbubble/pkg/httputil"
	"github.com/JustBeyond/packedbubble/pkg/observability"
)

const httpTimeout = 10 * time.Second

// Client fetches remote datasets over HTTP.
// Responses are cached, so repeated fetches of the same URL only touch the
// network after the cache entry expires.
type Client struct {
	http  *http.Client
	cache *httputil.Cache
}

// NewClient creates a Client that stores responses in cache.
func NewClient(cache *httputil.Cache) *Client {
	return &Client{
		http:  &http.Client{Timeout: httpTimeout},
		cache: cache.Namespace("dataset:"),
	}
}

// FetchDataset downloads, decodes, and validates the dataset at url.
// If refresh is false, a cached response is used when available.
// Only payloads that decode to a valid dataset are cached.
func (c *Client) FetchDataset(ctx context.Context, url string, refresh bool) (chart.Dataset, error) {
	if err := errors.ValidateURL(url); err != nil {
		return chart.Dataset{}, err
	}

	var body []byte
	if !refresh {
		if ok, _ := c.cache.Get(url, &body); ok {
			return chart.ReadDataset(bytes.NewReader(body))
		}
	}

	err := httputil.RetryWithBackoff(ctx, func() error {
		data, err := c.get(ctx, url)
		if err != nil {
			return err
		}
		body = data
		return nil
	})
	if err != nil {
		return chart.Dataset{}, err
	}

	ds, err := chart.ReadDataset(bytes.NewReader(body))
	if err != nil {
		return chart.Dataset{}, err
	}
	_ = c.cache.Set(url, body)
	return ds, nil
}

// get performs a single GET attempt. Transient failures come back wrapped
// in [httputil.RetryableError] so the retry loop knows to try again.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	observability.HTTP().OnRequest(ctx, http.MethodGet, req.URL.Host, req.URL.Path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		observability.HTTP().OnError(ctx, http.MethodGet, req.URL.Host, req.URL.Path, err)
		return nil, &httputil.RetryableError{Err: errors.Wrap(errors.ErrCodeNetwork, err, "fetching %s", url)}
	}
	defer resp.Body.Close()
	observability.HTTP().OnResponse(ctx, http.MethodGet, req.URL.Host, req.URL.Path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp, url); err != nil {
		return nil, err
	}
	return io.ReadAll(resp.Body)
}

func checkStatus(resp *http.Response, url string) error {
	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return errors.New(errors.ErrCodeNotFound, "dataset %s not found", url)
	case resp.StatusCode == http.StatusTooManyRequests:
		retryAfter, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		return &httputil.RetryableError{Err: &errors.RateLimitedError{
			RetryAfter: retryAfter,
			Message:    fmt.Sprintf("rate limited fetching %s", url),
		}}
	case resp.StatusCode >= 500:
		return &httputil.RetryableError{Err: errors.New(errors.ErrCodeNetwork, "status %d fetching %s", resp.StatusCode, url)}
	default:
		return errors.New(errors.ErrCodeNetwork, "status %d fetching %s", resp.StatusCode, url)
	}
}
