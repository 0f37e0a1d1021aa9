package bubble

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Item is one weighted input to the layout: the raw value of a data point
// and the identity it is keyed by. A nil Value marks a null point.
type Item struct {
	Value    *float64
	SeriesID string
	Index    int
}

// Size is a bubble size specification: an absolute length in user units, or
// a percentage of the reference dimension (the smaller side of the frame).
type Size struct {
	Value   float64
	Percent bool
}

// ParseSize parses a size spec such as "25%" or "64".
func ParseSize(s string) (Size, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Size{}, fmt.Errorf("empty size spec")
	}
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(strings.TrimSpace(pct), 64)
		if err != nil {
			return Size{}, fmt.Errorf("parse size %q: %w", s, err)
		}
		return Size{Value: v, Percent: true}, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Size{}, fmt.Errorf("parse size %q: %w", s, err)
	}
	return Size{Value: v}, nil
}

// Resolve returns the size in user units against the reference dimension.
func (s Size) Resolve(ref float64) float64 {
	if s.Percent {
		return ref * s.Value / 100
	}
	return s.Value
}

// String formats the size spec in its parseable form.
func (s Size) String() string {
	if s.Percent {
		return strconv.FormatFloat(s.Value, 'f', -1, 64) + "%"
	}
	return strconv.FormatFloat(s.Value, 'f', -1, 64)
}

// Sizing configures how values map onto radii.
type Sizing struct {
	MinSize Size
	MaxSize Size
	// ByArea scales the circle's area linearly with the value instead of
	// its radius, by square-rooting the normalized position.
	ByArea bool
}

// Radius is the resolved radius for one item. Valid is false for null and
// zero values, which carry no size and are excluded from placement.
type Radius struct {
	Value float64
	Valid bool
}

// Radii derives a radius per item from the sizing configuration. MinSize
// and MaxSize resolve against the smaller frame dimension to the radius
// range [minRadius, maxRadius]; each value is normalized within that range
// and interpolated, with the result halved to a radius:
//
//	ceil(minRadius + pos·(maxRadius−minRadius)) / 2
//
// Values below minRadius get minRadius/2−1, strictly smaller than any
// in-range radius so sub-floor points stay visually ordered against points
// at the floor. An inverted range (maxRadius < minRadius) pins pos at the
// 0.5 midpoint and produces degenerate but finite sizes.
//
// The returned slice aligns 1:1 with items. Radii is pure and deterministic.
func Radii(items []Item, sizing Sizing, frame Frame) []Radius {
	ref := math.Min(frame.Width, frame.Height)
	minRadius := sizing.MinSize.Resolve(ref)
	maxRadius := sizing.MaxSize.Resolve(ref)

	radii := make([]Radius, len(items))
	for i, it := range items {
		if it.Value == nil || *it.Value == 0 {
			continue
		}
		v := *it.Value

		if v < minRadius {
			radii[i] = Radius{Value: minRadius/2 - 1, Valid: true}
			continue
		}

		pos := 0.5
		if r := maxRadius - minRadius; r > 0 {
			pos = (v - minRadius) / r
		}
		if sizing.ByArea {
			pos = math.Sqrt(pos)
		}

		radii[i] = Radius{
			Value: math.Ceil(minRadius+pos*(maxRadius-minRadius)) / 2,
			Valid: true,
		}
	}
	return radii
}
