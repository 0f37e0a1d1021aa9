// Package chart provides serialization types for datasets and computed layouts.
//
// This package defines the canonical wire format for packedbubble's chart data,
// used for JSON files, API requests and responses, caching, and storage.
//
// # Architecture
//
// The package sits at the serialization boundary between the layout engine
// and external formats:
//
//   - [Dataset], [Layout]: Serialization types (this package)
//   - pkg/bubble: Internal packing engine (items, circles, rings)
//
// Use [Dataset.Items] to feed the engine and [BuildLayout] to convert its
// result back into host coordinates.
//
// # Core Types
//
//   - [Dataset]: Titled collection of series for one chart
//   - [Series], [Point]: Weighted input data; point values may be null
//   - [Layout]: Placed bubbles in host coordinates with convergence info
//   - [Bubble]: One placed circle keyed by (series id, point index)
//
// # Constants
//
// This package is the single source of truth for chart constants:
//
//	chart.FormatSVG     // "svg"
//	chart.FormatPNG     // "png"
//	chart.FormatPDF     // "pdf"
//	chart.FormatJSON    // "json"
//	chart.FormatDOT     // "dot"
//	chart.StyleFlat     // "flat"
//	chart.StyleGloss    // "gloss"
//	chart.SizeByArea    // "area"
//	chart.SizeByWidth   // "width"
//
// # Dataset Serialization
//
// Datasets use a simple series/points JSON format:
//
//	{
//	  "title": "Fruit consumption",
//	  "series": [
//	    {"id": "berries", "points": [
//	      {"name": "Strawberry", "value": 12},
//	      {"name": "Blueberry", "value": 7},
//	      {"name": "Unknown", "value": null}
//	    ]}
//	  ]
//	}
//
// Common operations:
//
//	data, _ := chart.MarshalDataset(d)    // Dataset → []byte
//	parsed, _ := chart.ReadDataset(r)     // io.Reader → Dataset
//	chart.WriteDataset(d, w)              // Dataset → io.Writer
//
// File and stdin/stdout handling live in pkg/io.
//
// # Layout Serialization
//
// Layouts carry final coordinates, ready to draw:
//
//	l, _ := chart.ReadLayout(r)
//	for _, b := range l.Bubbles {
//	    draw(b.X, b.Y, b.R, b.Label)
//	}
//
// # Concurrency
//
// All functions are safe for concurrent reads but not concurrent writes.
package chart
