// Package httputil provides HTTP utilities for remote dataset clients.
//
// # Overview
//
// This package provides infrastructure shared by everything that fetches
// data over the network:
//
//   - [Cache]: File-based HTTP response caching
//   - [Retry]: Automatic retry with exponential backoff
//
// # Caching
//
// [Cache] stores HTTP responses in the filesystem
// (~/.cache/packedbubble/http/) with configurable TTL. This speeds up
// repeated layout runs against the same remote dataset and avoids hammering
// the servers that host them.
//
// Usage:
//
//	cache, err := httputil.NewCache("", 24*time.Hour)
//	ok, _ := cache.Get(url, &body)  // Check cache
//	if !ok {
//	    body = fetchFromServer()
//	    cache.Set(url, body)        // Store for later
//	}
//
// Cache keys should be namespaced by concern to avoid collisions.
//
// # Retry
//
// [Retry] wraps HTTP requests with automatic retry for transient failures:
//
//   - Network errors
//   - 5xx server errors
//   - 429 rate limit responses
//
// Wrap transient errors in [RetryableError] so that Retry knows to try the
// operation again; all other errors abort immediately:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    return fetch(url)
//	})
//
// # Configuration
//
// Default settings are suitable for most use cases:
//
//   - Cache directory: ~/.cache/packedbubble/http/
//   - Default TTL: 24 hours
//   - Max retries: 3
//   - Base backoff: 1 second
//
// The cache can be cleared via `packedbubble cache clear` or by deleting
// the cache directory.
package httputil
