package styles

import (
	"bytes"
	"fmt"
)

// Flat renders bubbles as solid circles: series-colored fill at reduced
// opacity with a full-opacity outline. It writes no defs.
type Flat struct{}

var _ Style = Flat{}

// RenderDefs writes nothing; the flat style needs no shared definitions.
func (Flat) RenderDefs(buf *bytes.Buffer) {}

// RenderBubble writes one circle with a hover tooltip.
func (Flat) RenderBubble(buf *bytes.Buffer, b Bubble) {
	fmt.Fprintf(buf,
		`  <circle id="bubble-%s-%d" class="bubble" cx="%.2f" cy="%.2f" r="%.2f" fill="%s" fill-opacity="0.75" stroke="%s" stroke-width="1">`,
		EscapeXML(b.SeriesID), b.Index, b.CX, b.CY, b.R, b.Fill, b.Fill)
	fmt.Fprintf(buf, "<title>%s</title></circle>\n", EscapeXML(Tooltip(b)))
}

// RenderLabel writes the label centered in the bubble, or nothing when the
// label does not fit.
func (Flat) RenderLabel(buf *bytes.Buffer, b Bubble) {
	size := FontSize(b)
	if size == 0 {
		return
	}
	fmt.Fprintf(buf,
		`  <text class="bubble-label" x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" font-family="sans-serif" font-size="%.1f" fill="#333333" pointer-events="none">%s</text>`+"\n",
		b.CX, b.CY, size, EscapeXML(b.Label))
}
