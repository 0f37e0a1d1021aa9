// Package bubble implements the packed-bubble layout core: deterministic,
// incremental circle packing for value-weighted data points.
//
// # Overview
//
// A packed-bubble chart merges the points of many data series into one
// population of circles, sizes each circle relative to its value, and
// arranges the circles into a compact, non-overlapping cluster centered in a
// target frame. This package is the layout engine behind that chart type.
// It knows nothing about markers, tooltips, or rendering; it consumes
// weighted items and a frame, and produces centers and radii.
//
// The pipeline has three stages:
//
//  1. [Radii] maps raw values onto radii between a minimum and maximum size
//     (absolute or percentage of the frame's smaller side), scaling either
//     the radius or the area linearly with the value.
//  2. [Pack] arranges the circles into concentric rings around the largest
//     one, using exact tangent placement ([Place]) driven by law-of-cosines
//     geometry and an overlap predicate ([Overlaps]) that tolerates exact
//     tangency.
//  3. [Fit] rescales the radii and repacks until the cluster's bounding box
//     matches the frame, then derives the offsets that center the cluster.
//
// # Basic Usage
//
//	items := dataset.Items()
//	frame := bubble.Frame{Width: 400, Height: 400}
//	sizing := bubble.Sizing{
//		MinSize: bubble.Size{Value: 10, Percent: true},
//		MaxSize: bubble.Size{Value: 50, Percent: true},
//		ByArea:  true,
//	}
//
//	radii := bubble.Radii(items, sizing, frame)
//	layout := bubble.Fit(bubble.Circles(items, radii), frame)
//	for _, c := range layout.Circles() {
//		x := c.X + layout.OffsetX + frame.Left
//		y := c.Y + layout.OffsetY + frame.Top
//		// draw circle (x, y, c.R), keyed by (c.SeriesID, c.Index)
//	}
//
// # Coordinate Space
//
// Packing happens in an internal space anchored at the first circle's
// center; y grows downward as in SVG, so ring 1's seed sits at negative y,
// "above" the seed circle. [Layout.OffsetX] and [Layout.OffsetY] translate
// the cluster's bounding box onto the frame center; the frame's Left/Top
// offsets are the caller's to apply.
//
// # Determinism
//
// Identical items, sizing, and frame produce a bit-identical [Layout] on
// every run: circles are processed in descending radius order with a stable
// sort, placement is closed-form, and the rescale loop is a bounded
// iteration with a fixed tolerance. There is no randomness and no shared
// state; every call owns its inputs and results, so concurrent layout
// requests are safe as long as they do not share slices.
//
// # Limits
//
// The packing is a deterministic heuristic, not an optimal-packing solver.
// Placement assumes finite inputs; NaN or Inf values propagate into the
// layout and are the caller's responsibility to reject beforehand.
package bubble
