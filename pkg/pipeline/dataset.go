package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/JustBeyond/packedbubble/pkg/chart"
	"github.com/JustBeyond/packedbubble/pkg/observability"
	"github.com/JustBeyond/packedbubble/pkg/source"
)

// Load resolves the dataset for a run. An inline dataset takes precedence;
// otherwise the Input reference is resolved through the source package
// (local path, HTTP(S) URL, or "-" for stdin). The dataset is validated
// either way, so a successful Load is ready for layout.
func Load(ctx context.Context, opts Options) (chart.Dataset, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return chart.Dataset{}, err
	}

	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnLoadStart(ctx, loadRef(opts))

	d, err := load(ctx, opts)
	hooks.OnLoadComplete(ctx, loadRef(opts), pointCount(d), time.Since(start), err)
	return d, err
}

func load(ctx context.Context, opts Options) (chart.Dataset, error) {
	if opts.Dataset != nil {
		if err := opts.Dataset.Validate(); err != nil {
			return chart.Dataset{}, fmt.Errorf("inline dataset: %w", err)
		}
		return *opts.Dataset, nil
	}

	return source.Resolve(ctx, opts.Input, source.Options{
		CacheDir: opts.CacheDir,
		CacheTTL: opts.CacheTTL,
		Refresh:  opts.Refresh,
	})
}

// loadRef names the input source for logging and observability.
func loadRef(opts Options) string {
	if opts.Dataset != nil {
		return "inline"
	}
	return opts.Input
}
