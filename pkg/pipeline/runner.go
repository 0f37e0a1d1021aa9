package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/JustBeyond/packedbubble/pkg/cache"
	"github.com/JustBeyond/packedbubble/pkg/chart"
	"github.com/JustBeyond/packedbubble/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	d, err := Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Dataset = d
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.SeriesCount = len(d.Series)
	result.Stats.PointCount = pointCount(d)

	// Compute dataset hash for cache keys and API responses
	if data, err := chart.MarshalDataset(d); err == nil {
		result.DatasetHash = cache.Hash(data)
	}

	r.Logger.Info("loaded dataset",
		"series", result.Stats.SeriesCount,
		"points", result.Stats.PointCount,
		"duration", result.Stats.LoadTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	l, layoutHit, err := r.GenerateLayoutWithCacheInfo(ctx, d, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = l
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.BubbleCount = len(l.Bubbles)
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"bubbles", len(l.Bubbles),
		"converged", l.Converged,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifact, renderHit, err := r.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifact = artifact
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered output",
		"format", opts.Format,
		"bytes", len(artifact),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// GenerateLayoutWithCacheInfo generates a layout with caching and returns cache hit info.
func (r *Runner) GenerateLayoutWithCacheInfo(ctx context.Context, d chart.Dataset, opts Options) (l chart.Layout, hit bool, err error) {
	if err := opts.ValidateForLayout(); err != nil {
		return chart.Layout{}, false, err
	}
	r.applyLogger(&opts)

	hooks := observability.Pipeline()
	layoutStart := time.Now()
	hooks.OnLayoutStart(ctx, pointCount(d))
	defer func() {
		hooks.OnLayoutComplete(ctx, l.Iterations, l.Converged, time.Since(layoutStart), err)
	}()

	// Compute cache key
	datasetData, err := chart.MarshalDataset(d)
	if err != nil {
		return chart.Layout{}, false, fmt.Errorf("serialize dataset for cache key: %w", err)
	}
	cacheKey := r.Keyer.LayoutKey(cache.Hash(datasetData), opts.LayoutKeyOpts())

	// Try cache first
	if data, found, err := r.Cache.Get(ctx, cacheKey); err == nil && found {
		cached, err := chart.UnmarshalLayout(data)
		if err == nil {
			return cached, true, nil // Cache hit
		}
		// If deserialization fails, fall through to recompute
	}

	l, err = GenerateLayout(d, opts)
	if err != nil {
		return chart.Layout{}, false, err
	}

	// Cache the result
	if data, err := chart.MarshalLayout(l); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout)
	}

	return l, false, nil // Cache miss
}

// GenerateLayout is a convenience wrapper that calls GenerateLayoutWithCacheInfo and discards the cache hit info.
func (r *Runner) GenerateLayout(ctx context.Context, d chart.Dataset, opts Options) (chart.Layout, error) {
	l, _, err := r.GenerateLayoutWithCacheInfo(ctx, d, opts)
	return l, err
}

// RenderWithCacheInfo renders an artifact with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l chart.Layout, opts Options) (artifact []byte, hit bool, err error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	hooks := observability.Pipeline()
	renderStart := time.Now()
	hooks.OnRenderStart(ctx, opts.Format)
	defer func() {
		hooks.OnRenderComplete(ctx, opts.Format, len(artifact), time.Since(renderStart), err)
	}()

	// Compute cache key from layout data
	layoutData, err := chart.MarshalLayout(l)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	cacheKey := r.Keyer.ArtifactKey(cache.Hash(layoutData), opts.ArtifactKeyOpts())

	// Try cache first
	if data, found, err := r.Cache.Get(ctx, cacheKey); err == nil && found {
		return data, true, nil // Cache hit
	}

	artifact, err = RenderFromLayout(l, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache the result
	_ = r.Cache.Set(ctx, cacheKey, artifact, cache.TTLArtifact)

	return artifact, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, l chart.Layout, opts Options) ([]byte, error) {
	artifact, _, err := r.RenderWithCacheInfo(ctx, l, opts)
	return artifact, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
