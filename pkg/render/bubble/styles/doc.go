// Package styles defines visual styles for bubble rendering.
//
// # Overview
//
// Packedbubble supports multiple visual styles that control how bubbles
// and their labels are rendered. This package provides:
//
//   - [Style]: The interface that all styles implement
//   - [Flat]: Solid fills with a thin outline
//   - [Gloss]: Radial gradients imitating lit spheres
//
// # The Style Interface
//
// All styles implement [Style], which provides methods for rendering each
// visual element:
//
//   - RenderDefs: SVG <defs> section (gradients, filters)
//   - RenderBubble: Individual circle shapes with hover tooltips
//   - RenderLabel: Point labels fitted inside their bubble
//
// Usage:
//
//	svg := sink.RenderSVG(layout, sink.WithStyle(styles.Gloss{}))
//
// # Colors
//
// Bubbles are colored by series: every series gets the next color from a
// fixed ten-color cycle, in first-appearance order. The assignment depends
// only on the layout, so re-rendering the same layout always produces the
// same colors.
//
// # Labels
//
// Label font sizes are fitted to the bubble diameter by [FontSize]. Labels
// that do not fit even at the minimum size are skipped rather than drawn
// overflowing; small bubbles keep their tooltip, which shows the label and
// value on hover.
//
// # Creating Custom Styles
//
// To create a custom style:
//
//  1. Implement the [Style] interface
//  2. Use the provided [Bubble] data for positioning and color
//  3. Write SVG elements to the provided bytes.Buffer
//
// Example structure:
//
//	type Outline struct{}
//
//	func (Outline) RenderBubble(buf *bytes.Buffer, b Bubble) {
//	    fmt.Fprintf(buf, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s"/>`,
//	        b.CX, b.CY, b.R, b.Fill)
//	}
package styles
