package styles

import (
	"bytes"
	"encoding/xml"
	"strconv"
)

const (
	fontDiameterRatio = 0.4
	fontWidthRatio    = 0.85
	fontCharWidth     = 0.55
	fontSizeMin       = 8.0
	fontSizeMax       = 24.0
)

// FontSize returns the label font size fitted to the bubble: the largest
// size, clamped to [8, 24], at which the label's estimated width still fits
// the bubble's diameter. Returns 0 when the label does not fit even at the
// minimum size; such labels are skipped entirely rather than overflowing
// their bubble.
func FontSize(b Bubble) float64 {
	n := len(b.Label)
	if n == 0 {
		return 0
	}
	d := 2 * b.R
	byHeight := d * fontDiameterRatio
	byWidth := (d * fontWidthRatio) / (float64(n) * fontCharWidth)
	size := min(byHeight, byWidth, fontSizeMax)
	if size < fontSizeMin {
		return 0
	}
	return size
}

// Tooltip formats the hover text for a bubble: "Label: value", or just the
// value for unlabeled points.
func Tooltip(b Bubble) string {
	v := strconv.FormatFloat(b.Value, 'f', -1, 64)
	if b.Label == "" {
		return v
	}
	return b.Label + ": " + v
}

// EscapeXML escapes text for safe embedding in SVG attributes and content.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
