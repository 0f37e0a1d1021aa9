// Package sink provides output format renderers for bubble charts.
//
// # Overview
//
// A "sink" transforms a computed [chart.Layout] into a final output format.
// This package provides renderers for:
//
//   - SVG: Scalable vector graphics with hover tooltips
//   - JSON: Layout data export for caching and external tools
//   - PDF: Print-ready output (requires rsvg-convert)
//   - PNG: Raster image output (requires rsvg-convert)
//
// # SVG Output
//
// [RenderSVG] produces a standalone SVG with:
//
//   - Visual styles (flat solid fills or glossy gradients)
//   - Per-series colors from a deterministic palette
//   - Native tooltips showing each point's label and value
//   - Optional point labels fitted inside their bubbles
//   - Optional solid background
//
// Basic usage:
//
//	svg := sink.RenderSVG(layout,
//	    sink.WithStyle(styles.Gloss{}),
//	    sink.WithLabels(),
//	)
//
// # SVG Options
//
//   - [WithStyle]: Visual style ([styles.Flat] or [styles.Gloss])
//   - [WithLabels]: Draw point labels inside bubbles
//   - [WithBackground]: Paint a solid background color
//
// # JSON Output
//
// [RenderJSON] exports the complete layout as JSON, enabling:
//
//   - Caching of layout computations
//   - Round-trip rendering (re-import and render identically)
//   - Integration with external visualization tools
//
// The JSON records the style name when [WithJSONStyle] is given, so the
// exact visual can be reproduced from the exported data.
//
// # PDF and PNG Output
//
// [RenderPDF] and [RenderPNG] render the layout as PDF/PNG by first
// generating SVG, then converting via [render.ToPDF] and [render.ToPNG]:
//
//	pdf, err := sink.RenderPDF(layout, opts...)
//	png, err := sink.RenderPNG(layout, sink.WithScale(2), opts...)
//
// These require librsvg to be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// The conversion functions are shared with [contact] so the contact graph
// view can export to PDF/PNG as well.
//
// [chart.Layout]: github.com/JustBeyond/packedbubble/pkg/chart.Layout
// [render.ToPDF]: github.com/JustBeyond/packedbubble/pkg/render.ToPDF
// [render.ToPNG]: github.com/JustBeyond/packedbubble/pkg/render.ToPNG
// [styles.Flat]: github.com/JustBeyond/packedbubble/pkg/render/bubble/styles.Flat
// [styles.Gloss]: github.com/JustBeyond/packedbubble/pkg/render/bubble/styles.Gloss
// [contact]: github.com/JustBeyond/packedbubble/pkg/render/contact
package sink
