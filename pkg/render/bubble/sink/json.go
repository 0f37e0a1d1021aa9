package sink

import (
	"github.com/JustBeyond/packedbubble/pkg/chart"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	style string
}

// WithJSONStyle records the style name ("flat", "gloss") in the JSON output
// so a later render reproduces the same look.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

// RenderJSON exports the layout as a pretty-printed JSON document: every
// placed bubble in frame coordinates plus the frame and convergence
// diagnostics. The output round-trips through [chart.UnmarshalLayout], so a
// cached or exported layout can be re-rendered in any format without
// repeating the packing.
//
// RenderJSON does not modify l and is safe to call concurrently.
func RenderJSON(l chart.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	if r.style != "" {
		l.Style = r.style
	}
	return chart.MarshalLayout(l)
}
