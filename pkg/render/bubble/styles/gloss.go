package styles

import (
	"bytes"
	"fmt"
	"strings"
)

// Gloss renders bubbles as lit spheres: a radial gradient with a white
// highlight offset toward the upper left. RenderDefs emits one gradient per
// palette color; bubbles reference their series gradient by fill color.
type Gloss struct{}

var _ Style = Gloss{}

// GradientID returns the defs id of the gloss gradient for a fill color.
func GradientID(fill string) string {
	return "gloss-" + strings.TrimPrefix(fill, "#")
}

// RenderDefs writes a radial gradient for every palette color.
func (Gloss) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString("  <defs>\n")
	for _, color := range palette {
		fmt.Fprintf(buf, `    <radialGradient id="%s" cx="0.35" cy="0.3" r="0.85">`+"\n", GradientID(color))
		buf.WriteString(`      <stop offset="0%" stop-color="#ffffff" stop-opacity="0.9"/>` + "\n")
		fmt.Fprintf(buf, `      <stop offset="45%%" stop-color="%s" stop-opacity="0.85"/>`+"\n", color)
		fmt.Fprintf(buf, `      <stop offset="100%%" stop-color="%s"/>`+"\n", color)
		buf.WriteString("    </radialGradient>\n")
	}
	buf.WriteString("  </defs>\n")
}

// RenderBubble writes one gradient-filled circle with a hover tooltip.
func (Gloss) RenderBubble(buf *bytes.Buffer, b Bubble) {
	fmt.Fprintf(buf,
		`  <circle id="bubble-%s-%d" class="bubble" cx="%.2f" cy="%.2f" r="%.2f" fill="url(#%s)" stroke="%s" stroke-width="1">`,
		EscapeXML(b.SeriesID), b.Index, b.CX, b.CY, b.R, GradientID(b.Fill), b.Fill)
	fmt.Fprintf(buf, "<title>%s</title></circle>\n", EscapeXML(Tooltip(b)))
}

// RenderLabel writes the label in white bold text so it reads against the
// gradient, or nothing when the label does not fit.
func (Gloss) RenderLabel(buf *bytes.Buffer, b Bubble) {
	size := FontSize(b)
	if size == 0 {
		return
	}
	fmt.Fprintf(buf,
		`  <text class="bubble-label" x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" font-family="sans-serif" font-size="%.1f" font-weight="bold" fill="#ffffff" pointer-events="none">%s</text>`+"\n",
		b.CX, b.CY, size, EscapeXML(b.Label))
}
