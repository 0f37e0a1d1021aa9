package styles

import "bytes"

// Style defines the visual appearance for bubble rendering.
// Implementations control how bubbles and their labels are drawn.
type Style interface {
	// RenderDefs writes SVG <defs> content (gradients, filters).
	RenderDefs(buf *bytes.Buffer)
	// RenderBubble writes the SVG for a single bubble shape.
	RenderBubble(buf *bytes.Buffer, b Bubble)
	// RenderLabel writes the SVG for a bubble's label text.
	RenderLabel(buf *bytes.Buffer, b Bubble)
}

// Bubble contains all data needed to render a single chart bubble.
type Bubble struct {
	SeriesID string  // Owning series identifier
	Index    int     // Point index within the series
	Label    string  // Display text
	Value    float64 // Source data value (shown in the hover tooltip)
	CX, CY   float64 // Center coordinates
	R        float64 // Radius
	Fill     string  // Series color (hex)
}

// palette is the series color cycle. Series receive colors in
// first-appearance order; the cycle wraps after ten series.
var palette = [...]string{
	"#7cb5ec", "#434348", "#90ed7d", "#f7a35c", "#8085e9",
	"#f15c80", "#e4d354", "#2b908f", "#f45b5b", "#91e8e1",
}

// SeriesColor returns the palette color for series ordinal n.
func SeriesColor(n int) string {
	if n < 0 {
		n = 0
	}
	return palette[n%len(palette)]
}
