package bubble

import (
	"math"
	"slices"
)

// Frame is the target rectangle a packed cluster must fit. Width and Height
// are the usable span; Left and Top offset the final coordinates into the
// host's space and are applied by the caller, not by [Fit].
type Frame struct {
	Width, Height float64
	Left, Top     float64
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the horizontal span of the box.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical span of the box.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Layout is the result of packing one population of circles. It is a plain
// value with no ambient state: every [Fit] call builds a fresh one.
type Layout struct {
	// Rings holds the packed circles in internal coordinates, ring by ring.
	Rings [][]Circle
	// Bounds is the bounding box over all circles (center ± radius).
	Bounds Rect
	// OffsetX and OffsetY translate internal coordinates so that Bounds is
	// centered in the frame. Frame Left/Top are not included.
	OffsetX, OffsetY float64
	// Converged reports whether the rescale loop settled within tolerance.
	// When false, the layout is the last one computed before the iteration
	// cap and callers should treat it as a best effort.
	Converged bool
	// Iterations counts the packing passes performed.
	Iterations int
}

// Circles returns the packed circles flattened into one slice, in the
// descending radius order they were placed in.
func (l Layout) Circles() []Circle {
	var out []Circle
	for _, ring := range l.Rings {
		out = append(out, ring...)
	}
	return out
}

// DefaultMaxIterations bounds the rescale-and-repack loop in [Fit]. The
// loop settles in two or three passes on well-formed input; the cap keeps
// pathological configurations, such as a zero-size frame, from looping
// forever.
const DefaultMaxIterations = 16

// convergenceTolerance is the allowed deviation of the fit scale from 1.
const convergenceTolerance = 1e-10

// FitOption configures [Fit].
type FitOption func(*fitConfig)

type fitConfig struct {
	maxIterations int
}

// WithMaxIterations caps the number of packing passes. Values below 1 are
// ignored.
func WithMaxIterations(n int) FitOption {
	return func(c *fitConfig) {
		if n >= 1 {
			c.maxIterations = n
		}
	}
}

// Fit packs circles and rescales them until the cluster fills the frame.
// After each pass the radii are multiplied by the limiting frame/bounds
// ratio and the circles repacked — positions are re-derived from the new
// radii rather than scaled, so tangencies stay exact. Once the ratio is
// within tolerance of 1, Fit derives the offsets that center the bounding
// box in the frame and returns.
//
// An empty population yields an empty, converged layout. The input slice is
// not modified.
func Fit(circles []Circle, frame Frame, opts ...FitOption) Layout {
	cfg := fitConfig{maxIterations: DefaultMaxIterations}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(circles) == 0 {
		return Layout{Converged: true}
	}

	working := slices.Clone(circles)
	var l Layout
	for {
		l.Rings = Pack(working)
		l.Iterations++

		flat := l.Circles()
		l.Bounds = bounds(flat)

		scale := math.Min(frame.Width/l.Bounds.Width(), frame.Height/l.Bounds.Height())
		if math.Abs(scale-1) <= convergenceTolerance {
			l.Converged = true
			break
		}
		if l.Iterations >= cfg.maxIterations {
			break
		}

		// Repack with the previous pass's radii scaled in place; coercions
		// applied during packing feed forward, and flat is already sorted
		// so the next pass's stable sort leaves it untouched.
		for i := range flat {
			flat[i].R *= scale
		}
		working = flat
	}

	l.OffsetX = frame.Width/2 - (l.Bounds.MinX + l.Bounds.Width()/2)
	l.OffsetY = frame.Height/2 - (l.Bounds.MinY + l.Bounds.Height()/2)
	return l
}

func bounds(circles []Circle) Rect {
	r := Rect{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, c := range circles {
		r.MinX = math.Min(r.MinX, c.X-c.R)
		r.MaxX = math.Max(r.MaxX, c.X+c.R)
		r.MinY = math.Min(r.MinY, c.Y-c.R)
		r.MaxY = math.Max(r.MaxY, c.Y+c.R)
	}
	return r
}
