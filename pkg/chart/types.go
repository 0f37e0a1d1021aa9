package chart

import (
	"github.com/JustBeyond/packedbubble/pkg/bubble"
	"github.com/JustBeyond/packedbubble/pkg/errors"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// Visual styles for rendering.
const (
	StyleFlat  = "flat"
	StyleGloss = "gloss"
)

// Size-by modes: whether a value scales the bubble's area or its width.
const (
	SizeByArea  = "area"
	SizeByWidth = "width"
)

// =============================================================================
// Dataset - Chart Input
// =============================================================================

// Dataset is the canonical serialization format for chart input.
// Used for API requests, storage, caching, and file import/export.
//
// The format is human-readable and designed for round-trip fidelity:
// import → layout → export → re-import produces identical results,
// null point values included.
type Dataset struct {
	Title  string   `json:"title,omitempty" bson:"title,omitempty"`
	Series []Series `json:"series" bson:"series"`
}

// Series is one named group of points. Hidden series stay in the dataset
// but are excluded from the packed population.
type Series struct {
	ID     string  `json:"id" bson:"id"`
	Name   string  `json:"name,omitempty" bson:"name,omitempty"` // Display name (defaults to ID)
	Hidden bool    `json:"hidden,omitempty" bson:"hidden,omitempty"`
	Points []Point `json:"points" bson:"points"`
}

// Point is one weighted data point. A nil Value is a null point: it is
// preserved through serialization but never placed.
type Point struct {
	Name  string   `json:"name,omitempty" bson:"name,omitempty"`
	Value *float64 `json:"value" bson:"value"`
}

// DisplayName returns the series name if set, otherwise the ID.
func (s *Series) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.ID
}

// Items flattens the visible series into the layout population, in series
// order then point order. The order is what makes repeated layouts of the
// same dataset identical.
func (d *Dataset) Items() []bubble.Item {
	var items []bubble.Item
	for _, s := range d.Series {
		if s.Hidden {
			continue
		}
		for i, p := range s.Points {
			items = append(items, bubble.Item{Value: p.Value, SeriesID: s.ID, Index: i})
		}
	}
	return items
}

// Validate checks the dataset against the input rules shared by the CLI and
// the API: at least one series, safe and unique series IDs, safe labels.
func (d *Dataset) Validate() error {
	if len(d.Series) == 0 {
		return errors.New(errors.ErrCodeInvalidDataset, "dataset has no series")
	}
	if err := errors.ValidateLabel(d.Title); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidDataset, err, "invalid title")
	}

	seen := make(map[string]bool, len(d.Series))
	for _, s := range d.Series {
		if err := errors.ValidateSeriesID(s.ID); err != nil {
			return err
		}
		if seen[s.ID] {
			return errors.New(errors.ErrCodeInvalidDataset, "duplicate series id %q", s.ID)
		}
		seen[s.ID] = true

		if err := errors.ValidateLabel(s.Name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDataset, err, "invalid name in series %q", s.ID)
		}
		for i, p := range s.Points {
			if err := errors.ValidateLabel(p.Name); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidDataset, err, "invalid label at point %d of series %q", i, s.ID)
			}
		}
	}
	return nil
}
