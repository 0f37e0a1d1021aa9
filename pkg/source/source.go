// Package source resolves dataset references into datasets.
//
// A reference is one of three things: a local file path, an http(s) URL,
// or "-" for standard input. Local references are read through the io
// package; remote references are fetched by [Client] with response
// caching and automatic retry.
package source

import (
	"context"
	"strings"
	"time"

	"github.com/JustBeyond/packedbubble/pkg/chart"
	"github.com/JustBeyond/packedbubble/pkg/httputil"
	"github.com/JustBeyond/packedbubble/pkg/io"
)

// DefaultTTL is how long fetched datasets stay in the HTTP response cache
// when the caller does not configure a TTL.
const DefaultTTL = 24 * time.Hour

// Options controls how remote references are fetched.
type Options struct {
	CacheDir string        // HTTP cache directory; "" selects the default
	CacheTTL time.Duration // response cache TTL; 0 selects DefaultTTL
	Refresh  bool          // bypass the cache and refetch
}

// IsURL reports whether ref names a remote dataset.
func IsURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// Resolve loads the dataset referenced by ref.
//
// Local paths and "-" (standard input) are read directly. Remote URLs are
// fetched with retry and cached, so repeated runs against the same URL do
// not touch the network until the cache entry expires.
func Resolve(ctx context.Context, ref string, opts Options) (chart.Dataset, error) {
	if !IsURL(ref) {
		return io.ImportDataset(ref)
	}

	ttl := opts.CacheTTL
	if ttl == 0 {
		ttl = DefaultTTL
	}
	hc, err := httputil.NewCache(opts.CacheDir, ttl)
	if err != nil {
		return chart.Dataset{}, err
	}
	return NewClient(hc).FetchDataset(ctx, ref, opts.Refresh)
}
