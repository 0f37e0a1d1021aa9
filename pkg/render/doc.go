// Package render provides visualization rendering for bubble charts.
//
// # Overview
//
// This package contains the rendering pipeline that transforms computed
// layouts into visual outputs. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Bubble chart rendering (in [bubble/sink] and [bubble/styles])
//   - Contact graph diagrams (in [contact])
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). These are used by both the
// bubble sinks and the contact renderer.
//
//	svg := sink.RenderSVG(layout, opts...)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Bubble Charts
//
// The [bubble/sink] subpackage renders packed layouts in the supported
// output formats; [bubble/styles] holds the visual styles (flat, gloss),
// the series color palette, and label fitting.
//
// # Contact Graphs
//
// The [contact] subpackage renders the tangency structure of a packed
// layout as a node-link diagram using Graphviz: bubbles appear as nodes,
// touching pairs as edges. It exists to inspect the packing itself rather
// than the data.
//
//	dot := contact.ToDOT(layout, contact.Options{})
//	svg, err := contact.RenderSVG(dot)
//
// [bubble/sink]: github.com/JustBeyond/packedbubble/pkg/render/bubble/sink
// [bubble/styles]: github.com/JustBeyond/packedbubble/pkg/render/bubble/styles
// [contact]: github.com/JustBeyond/packedbubble/pkg/render/contact
package render
