package sink

import (
	"bytes"
	"fmt"

	"github.com/JustBeyond/packedbubble/pkg/chart"
	"github.com/JustBeyond/packedbubble/pkg/render/bubble/styles"
)

const bubbleInteractionCSS = `
    .bubble { transition: stroke-width 0.15s ease, fill-opacity 0.15s ease; }
    .bubble:hover { stroke-width: 3; fill-opacity: 1; }`

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style      styles.Style
	background string
	labels     bool
}

// WithStyle sets the visual style. Defaults to [styles.Flat].
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithLabels draws point labels inside bubbles large enough to hold them.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// WithBackground paints a solid background behind the chart. Without it the
// SVG is transparent.
func WithBackground(color string) SVGOption {
	return func(r *svgRenderer) { r.background = color }
}

// RenderSVG renders the layout as a standalone SVG document. Bubbles are
// drawn in layout order (series order, then point order) and colored per
// series; every bubble carries a native tooltip showing its label and value.
func RenderSVG(l chart.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	bubbles := buildBubbles(l)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.Width, l.Height, l.Width, l.Height)

	if l.Title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", styles.EscapeXML(l.Title))
	}
	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect class="background" width="100%%" height="100%%" fill="%s"/>`+"\n",
			styles.EscapeXML(r.background))
	}

	r.style.RenderDefs(&buf)

	for _, b := range bubbles {
		r.style.RenderBubble(&buf, b)
	}
	if r.labels {
		for _, b := range bubbles {
			r.style.RenderLabel(&buf, b)
		}
	}

	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", bubbleInteractionCSS)
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Flat{}}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// buildBubbles converts placed bubbles into style render data, assigning
// palette colors to series in first-appearance order.
func buildBubbles(l chart.Layout) []styles.Bubble {
	ordinal := make(map[string]int)
	bubbles := make([]styles.Bubble, 0, len(l.Bubbles))
	for _, b := range l.Bubbles {
		n, ok := ordinal[b.SeriesID]
		if !ok {
			n = len(ordinal)
			ordinal[b.SeriesID] = n
		}
		bubbles = append(bubbles, styles.Bubble{
			SeriesID: b.SeriesID,
			Index:    b.Index,
			Label:    b.Label,
			Value:    b.Value,
			CX:       b.X,
			CY:       b.Y,
			R:        b.R,
			Fill:     styles.SeriesColor(n),
		})
	}
	return bubbles
}
