// Package cache provides pluggable caching for layout and render results.
//
// The [Cache] interface abstracts over storage backends: [FileCache] for CLI
// usage, [RedisCache] for server deployments, and [NullCache] to disable
// caching entirely. Keys are generated through a [Keyer] so that every
// component hashes options the same way; [ScopedKeyer] adds per-tenant
// prefixes on top.
package cache

import (
	"context"
	"os"
	"path/filepath"
	"time"
)

// Entry lifetimes by content class. Layouts and artifacts derive
// deterministically from their inputs, so stale entries are merely wasted
// disk, never wrong answers.
const (
	// DefaultTTL is the expiration applied to cache entries when the
	// caller has no more specific policy.
	DefaultTTL = 24 * time.Hour

	// TTLLayout is the lifetime of computed layouts.
	TTLLayout = 7 * 24 * time.Hour

	// TTLArtifact is the lifetime of rendered artifacts, which are cheap
	// to regenerate from a cached layout.
	TTLArtifact = 24 * time.Hour
)

// Cache is the interface implemented by all cache backends.
// Implementations are safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was found; expired entries count as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A TTL of zero means the
	// entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// Keyer generates cache keys for the pipeline stages. Implementations must
// be deterministic: equal inputs always produce equal keys.
type Keyer interface {
	// LayoutKey returns the key for a computed layout. datasetHash is the
	// SHA-256 hash of the canonical dataset JSON.
	LayoutKey(datasetHash string, opts LayoutKeyOpts) string

	// ArtifactKey returns the key for a rendered artifact. layoutHash is
	// the SHA-256 hash of the layout JSON.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts captures every option that changes the result of a layout
// computation. Two cached layouts with equal dataset hashes and equal opts
// are interchangeable.
type LayoutKeyOpts struct {
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	MinSize       string  `json:"min_size"`
	MaxSize       string  `json:"max_size"`
	SizeBy        string  `json:"size_by"`
	MaxIterations int     `json:"max_iterations"`
}

// ArtifactKeyOpts captures every option that changes a rendered artifact.
type ArtifactKeyOpts struct {
	Format     string  `json:"format"`
	Style      string  `json:"style"`
	Scale      float64 `json:"scale"` // raster scale; zero for vector formats
	NoLabels   bool    `json:"no_labels,omitempty"`
	Background string  `json:"background,omitempty"`
}

// DefaultKeyer is the standard Keyer implementation. Layout and artifact
// keys hash their options so that any parameter change produces a distinct
// key.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key generator.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for layout caching.
func (k *DefaultKeyer) LayoutKey(datasetHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", datasetHash, opts)
}

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)

// DefaultDir returns the default cache directory (~/.cache/packedbubble).
// It falls back to the OS temp directory when no home directory is known.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "packedbubble")
	}
	return filepath.Join(home, ".cache", "packedbubble")
}
