package chart

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/JustBeyond/packedbubble/pkg/bubble"
)

// =============================================================================
// Layout - Computed Chart
// =============================================================================

// Layout is the serialization format for a computed chart: every placed
// bubble in host coordinates, plus the frame and convergence diagnostics.
// Used for API responses, storage, caching, and the JSON sink.
type Layout struct {
	Title  string  `json:"title,omitempty" bson:"title,omitempty"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
	Style  string  `json:"style,omitempty" bson:"style,omitempty"`

	Bubbles []Bubble `json:"bubbles" bson:"bubbles"`

	// Convergence diagnostics from the rescale loop.
	Converged  bool `json:"converged" bson:"converged"`
	Iterations int  `json:"iterations" bson:"iterations"`
}

// Bubble is one placed circle keyed back to its source point.
type Bubble struct {
	SeriesID string  `json:"series_id" bson:"series_id"`
	Index    int     `json:"index" bson:"index"`
	Label    string  `json:"label,omitempty" bson:"label,omitempty"`
	Value    float64 `json:"value" bson:"value"`
	X        float64 `json:"x" bson:"x"`
	Y        float64 `json:"y" bson:"y"`
	R        float64 `json:"r" bson:"r"`
}

// =============================================================================
// Building a Layout
// =============================================================================

// BuildLayout converts a packed layout into host coordinates: centering
// offsets plus the frame's Left/Top are applied to every circle, and each
// bubble is joined back to its source point for label and value.
func BuildLayout(d Dataset, l bubble.Layout, frame bubble.Frame) Layout {
	points := make(map[string][]Point, len(d.Series))
	for _, s := range d.Series {
		points[s.ID] = s.Points
	}

	circles := l.Circles()
	out := Layout{
		Title:      d.Title,
		Width:      frame.Width,
		Height:     frame.Height,
		Bubbles:    make([]Bubble, 0, len(circles)),
		Converged:  l.Converged,
		Iterations: l.Iterations,
	}

	for _, c := range circles {
		b := Bubble{
			SeriesID: c.SeriesID,
			Index:    c.Index,
			X:        c.X + l.OffsetX + frame.Left,
			Y:        c.Y + l.OffsetY + frame.Top,
			R:        c.R,
		}
		if ps := points[c.SeriesID]; c.Index >= 0 && c.Index < len(ps) {
			b.Label = ps[c.Index].Name
			if v := ps[c.Index].Value; v != nil {
				b.Value = *v
			}
		}
		out.Bubbles = append(out.Bubbles, b)
	}
	return out
}

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout.
// Validates that the frame dimensions are usable; an empty bubble list is
// legal (an empty dataset lays out to an empty chart).
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}

	if l.Width <= 0 || l.Height <= 0 {
		return Layout{}, fmt.Errorf("layout must have positive dimensions, got %gx%g", l.Width, l.Height)
	}

	return l, nil
}

// WriteLayout writes a Layout as pretty-printed JSON to an io.Writer.
func WriteLayout(l Layout, w io.Writer) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// ReadLayout decodes a JSON layout from an io.Reader.
func ReadLayout(r io.Reader) (Layout, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Layout{}, fmt.Errorf("read layout: %w", err)
	}
	return UnmarshalLayout(data)
}
