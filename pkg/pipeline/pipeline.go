// Package pipeline provides the core chart pipeline for packedbubble.
//
// This package implements the complete load → layout → render pipeline that
// can be used by CLI and API components. By centralizing this logic, we
// ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read a dataset from a local file, remote URL, stdin, or an
//     inline request body
//  2. Layout: Size the bubbles, pack them, and fit the cluster to the frame
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON, DOT)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Input:  "fruit.json",
//	    Format: "svg",
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifact
//
// Run individual stages:
//
//	// Load only
//	d, err := pipeline.Load(ctx, opts)
//
//	// Layout with an existing dataset
//	layout, err := runner.GenerateLayout(ctx, d, opts)
//
//	// Render with an existing layout
//	artifact, err := runner.Render(ctx, layout, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/JustBeyond/packedbubble/pkg/bubble"
	"github.com/JustBeyond/packedbubble/pkg/cache"
	"github.com/JustBeyond/packedbubble/pkg/chart"
	"github.com/JustBeyond/packedbubble/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultMinSize is the smallest bubble diameter: a percentage of the
	// smaller frame dimension, or an absolute length in pixels.
	DefaultMinSize = "10%"

	// DefaultMaxSize is the largest bubble diameter.
	DefaultMaxSize = "50%"

	// DefaultWidth is the default frame width in pixels.
	DefaultWidth = 400.0

	// DefaultHeight is the default frame height in pixels.
	DefaultHeight = 400.0

	// DefaultPNGScale is the raster scale factor for PNG output.
	DefaultPNGScale = 2.0
)

// DefaultMaxIterations bounds the fit loop. Mirrors the packing engine's
// own default so CLI flags, API requests, and direct library use agree.
const DefaultMaxIterations = bubble.DefaultMaxIterations

// DefaultSizeBy is the default value-to-size mapping.
const DefaultSizeBy = chart.SizeByArea

// DefaultFormat is the default output format.
const DefaultFormat = chart.FormatSVG

// DefaultStyle is the default visual style.
const DefaultStyle = chart.StyleFlat

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	chart.FormatSVG:  true,
	chart.FormatPNG:  true,
	chart.FormatPDF:  true,
	chart.FormatJSON: true,
	chart.FormatDOT:  true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	chart.StyleFlat:  true,
	chart.StyleGloss: true,
}

// ValidSizeBy is the set of supported value-to-size mappings.
var ValidSizeBy = map[string]bool{
	chart.SizeByArea:  true,
	chart.SizeByWidth: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the chart pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options
	Input   string         `json:"input,omitempty"`   // Local path, HTTP(S) URL, or "-" for stdin
	Dataset *chart.Dataset `json:"dataset,omitempty"` // Inline dataset; takes precedence over Input
	Refresh bool           `json:"refresh,omitempty"` // Bypass the HTTP response cache

	// Layout options
	Width         float64 `json:"width,omitempty"`
	Height        float64 `json:"height,omitempty"`
	MinSize       string  `json:"min_size,omitempty"`
	MaxSize       string  `json:"max_size,omitempty"`
	SizeBy        string  `json:"size_by,omitempty"` // "area" or "width"
	MaxIterations int     `json:"max_iterations,omitempty"`

	// Render options
	Format     string  `json:"format,omitempty"`
	Style      string  `json:"style,omitempty"`
	NoLabels   bool    `json:"no_labels,omitempty"`
	Background string  `json:"background,omitempty"`
	Scale      float64 `json:"scale,omitempty"` // PNG raster scale

	// Runtime options (not serialized)
	Logger   *log.Logger   `json:"-"`
	CacheDir string        `json:"-"` // HTTP response cache directory
	CacheTTL time.Duration `json:"-"` // HTTP response cache TTL; 0 selects the source default

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Dataset is the loaded and validated chart input.
	Dataset chart.Dataset

	// DatasetHash is the content hash of the dataset.
	DatasetHash string

	// Layout contains the placed bubbles in frame coordinates.
	Layout chart.Layout

	// Artifact is the rendered output in the requested format.
	Artifact []byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SeriesCount int
	PointCount  int
	BubbleCount int
	LoadTime    time.Duration
	LayoutTime  time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether the artifact came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json, dot)", format)
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errors.New(errors.ErrCodeInvalidStyle,
			"invalid style: %q (must be one of: flat, gloss)", style)
	}
	return nil
}

// ValidateSizeBy checks that a size mapping is valid.
func ValidateSizeBy(sizeBy string) error {
	if !ValidSizeBy[sizeBy] {
		return errors.New(errors.ErrCodeInvalidSize,
			"invalid size_by: %q (must be one of: area, width)", sizeBy)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks that the pipeline has an input source.
func (o *Options) ValidateForLoad() error {
	if o.Dataset == nil && o.Input == "" {
		return errors.New(errors.ErrCodeInvalidInput, "input or dataset is required")
	}

	// Logger default
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.MinSize == "" {
		o.MinSize = DefaultMinSize
	}
	if o.MaxSize == "" {
		o.MaxSize = DefaultMaxSize
	}
	if o.SizeBy == "" {
		o.SizeBy = DefaultSizeBy
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if o.Width <= 0 || o.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidFrame,
			"frame must have positive dimensions, got %gx%g", o.Width, o.Height)
	}
	if err := ValidateSizeBy(o.SizeBy); err != nil {
		return err
	}
	_, err := o.sizing()
	return err
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Scale == 0 {
		o.Scale = DefaultPNGScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	return ValidateStyle(o.Style)
}

// sizing resolves the size specs into the packing configuration.
func (o *Options) sizing() (bubble.Sizing, error) {
	minSize, err := bubble.ParseSize(o.MinSize)
	if err != nil {
		return bubble.Sizing{}, errors.Wrap(errors.ErrCodeInvalidSize, err, "invalid min size")
	}
	maxSize, err := bubble.ParseSize(o.MaxSize)
	if err != nil {
		return bubble.Sizing{}, errors.Wrap(errors.ErrCodeInvalidSize, err, "invalid max size")
	}
	return bubble.Sizing{
		MinSize: minSize,
		MaxSize: maxSize,
		ByArea:  o.SizeBy == chart.SizeByArea,
	}, nil
}

// frame returns the target rectangle for layout.
func (o *Options) frame() bubble.Frame {
	return bubble.Frame{Width: o.Width, Height: o.Height}
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Width:         o.Width,
		Height:        o.Height,
		MinSize:       o.MinSize,
		MaxSize:       o.MaxSize,
		SizeBy:        o.SizeBy,
		MaxIterations: o.MaxIterations,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts() cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{
		Format:     o.Format,
		Style:      o.Style,
		NoLabels:   o.NoLabels,
		Background: o.Background,
	}
	// Scale changes raster output only; vector keys ignore it.
	if o.Format == chart.FormatPNG {
		opts.Scale = o.Scale
	}
	return opts
}

// pointCount returns the total number of points across all series,
// including hidden series and null points.
func pointCount(d chart.Dataset) int {
	n := 0
	for _, s := range d.Series {
		n += len(s.Points)
	}
	return n
}
