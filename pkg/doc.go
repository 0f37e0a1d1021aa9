// Package pkg provides the core libraries for packedbubble chart generation.
//
// # Overview
//
// Packedbubble turns weighted datasets into deterministic packed-bubble
// charts: every point becomes a circle sized by its value, circles are
// packed around the frame center, and the cluster is rescaled until it
// fits. The pkg directory is organized into four main areas:
//
//  1. [bubble] - The packing engine (radius mapping, placement, fitting)
//  2. [chart] - Serialization types for datasets and layouts
//  3. [render] - Visual output (SVG, PNG, PDF, JSON, DOT)
//  4. [pipeline] - Orchestration (load → layout → render) with caching
//
// # Architecture
//
// The typical data flow through packedbubble:
//
//	Dataset (file, stdin, or URL)
//	         ↓
//	    [source] package (acquire + decode)
//	         ↓
//	    [bubble] package (radii + packing + frame fitting)
//	         ↓
//	    [render] package (styles + output formats)
//	         ↓
//	    SVG/PNG/PDF/JSON/DOT output
//
// # Quick Start
//
// Lay out a dataset and render it to SVG:
//
//	import (
//	    "context"
//	    "github.com/JustBeyond/packedbubble/pkg/chart"
//	    "github.com/JustBeyond/packedbubble/pkg/pipeline"
//	)
//
//	// 1. Load the dataset
//	opts := pipeline.Options{Input: "fruit.json"}
//	opts.SetLayoutDefaults()
//	opts.SetRenderDefaults()
//	d, _ := pipeline.Load(context.Background(), opts)
//
//	// 2. Compute the layout and render
//	runner := pipeline.NewRunner(nil, nil, nil)
//	defer runner.Close()
//	layout, _ := runner.GenerateLayout(context.Background(), d, opts)
//	svg, _ := runner.Render(context.Background(), layout, opts)
//
// # Main Packages
//
// ## Layout Engine
//
// [bubble] - The deterministic packing engine. Values map to radii (by area
// or width), bubbles spiral out from the frame center until they rest
// against the cluster, a relaxation pass separates residual overlaps, and
// the whole cluster rescales to fit the frame. Same input, same layout.
//
// [chart] - Canonical types: Dataset/Series/Point on the way in,
// Layout/Bubble on the way out. Null point values survive round-trips but
// are never placed.
//
// ## Visualization
//
// [render] - Top-level utilities for format conversion (SVG to PDF/PNG).
//
//   - [render/bubble/sink]: Output formats (SVG, PNG, PDF, JSON)
//   - [render/bubble/styles]: Visual styles (flat, gloss), palette, labels
//   - [render/contact]: Tangency diagrams of a packing via Graphviz
//
// ## Orchestration
//
// [pipeline] - Complete chart pipeline (load → layout → render) used by the
// CLI and the API server. Ensures consistent behavior across entry points
// and caches layouts and artifacts keyed by input hashes.
//
// [source] - Dataset acquisition from local files, stdin, and HTTP(S) URLs
// with a cached, retrying HTTP client.
//
// [io] - Import/export of datasets and layouts as JSON files.
//
// ## Infrastructure
//
// [cache] - Cache backends: file (CLI), Redis (server), null (disabled).
// Scoped keys separate layouts from rendered artifacts.
//
// [store] - Chart stores for the API server: in-memory and MongoDB.
//
// [httputil] - HTTP client with response caching and retry/backoff.
//
// [config] - Optional packedbubble.toml configuration file.
//
// [errors] - Error codes shared by the CLI and the HTTP API, plus input
// validation helpers.
//
// [observability] - Optional hooks for pipeline, cache, and HTTP events.
//
// # Common Workflows
//
// Import a dataset from a file:
//
//	d, _ := io.ImportDataset("fruit.json")
//
// Compute a layout directly on the engine:
//
//	items := d.Items()
//	frame := bubble.Frame{Width: 400, Height: 400}
//	sizing := bubble.Sizing{
//	    MinSize: bubble.Size{Value: 10, Percent: true},
//	    MaxSize: bubble.Size{Value: 50, Percent: true},
//	    ByArea:  true,
//	}
//	radii := bubble.Radii(items, sizing, frame)
//	packed := bubble.Fit(bubble.Circles(items, radii), frame)
//
// Render with a custom style:
//
//	svg := sink.RenderSVG(layout, sink.WithStyle(styles.Gloss{}))
//
// Inspect the packing's contact structure:
//
//	dot := contact.ToDOT(layout, contact.Options{})
//	svg, _ := contact.RenderSVG(dot)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/bubble/...     # Specific package
//	go test -run Example         # Examples only
//
// [bubble]: https://pkg.go.dev/github.com/JustBeyond/packedbubble/pkg/bubble
// [chart]: https://pkg.go.dev/github.com/JustBeyond/packedbubble/pkg/chart
// [render]: https://pkg.go.dev/github.com/JustBeyond/packedbubble/pkg/render
// [render/bubble/sink]: https://pkg.go.dev/github.com/JustBeyond/packedbubble/pkg/render/bubble/sink
// [render/bubble/styles]: https://pkg.go.dev/github.com/JustBeyond/packedbubble/pkg/render/bubble/styles
// [render/contact]: https://pkg.go.dev/github.com/JustBeyond/packedbubble/pkg/render/contact
// [pipeline]: https://pkg.go.dev/github.com/JustBeyond/packedbubble/pkg/pipeline
// [source]: https://pkg.go.dev/github.com/JustBeyond/packedbubble/pkg/source
// [io]: https://pkg.go.dev/github.com/JustBeyond/packedbubble/pkg/io
// [cache]: https://pkg.go.dev/github.com/JustBeyond/packedbubble/pkg/cache
// [store]: https://pkg.go.dev/github.com/JustBeyond/packedbubble/pkg/store
// [httputil]: https://pkg.go.dev/github.com/JustBeyond/packedbubble/pkg/httputil
// [config]: https://pkg.go.dev/github.com/JustBeyond/packedbubble/pkg/config
// [errors]: https://pkg.go.dev/github.com/JustBeyond/packedbubble/pkg/errors
// [observability]: https://pkg.go.dev/github.com/JustBeyond/packedbubble/pkg/observability
package pkg
