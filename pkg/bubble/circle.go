package bubble

import "math"

// Circle is one placed bubble: a center and radius in the internal packing
// space, plus the identity of the data point it represents. SeriesID and
// Index are carried through the layout untouched so callers can attach the
// result back to their own point records.
type Circle struct {
	X, Y, R  float64
	SeriesID string
	Index    int
}

// DefaultEpsilon is the overlap tolerance used during packing. The placer
// constructs circles that touch exactly, so the tolerance must absorb the
// floating-point noise of tangency without letting real overlaps through.
const DefaultEpsilon = 0.001

// Overlaps reports whether two circles overlap by more than eps. Circles
// that merely touch do not overlap: the center distance must undershoot the
// radius sum by more than eps.
func Overlaps(c1, c2 Circle, eps float64) bool {
	d := math.Hypot(c1.X-c2.X, c1.Y-c2.Y)
	return d-(c1.R+c2.R) < -eps
}

// Place positions next so that it is exactly tangent to origin, on the side
// of origin consistent with where last sits. The three circles span a
// triangle with sides dist(last, origin), origin.R+next.R and last.R+next.R:
// the law of cosines recovers the angle at origin between the last and next
// directions, the law of sines recovers the base angle of the last→origin
// direction, and two quadrant corrections combine them into an absolute
// placement angle. The returned circle is next with X and Y filled in.
//
// Place is closed-form, not iterative. It requires strictly positive radii
// and distinct last/origin centers; degenerate inputs produce NaN
// coordinates rather than panicking.
func Place(last, origin, next Circle) Circle {
	distance := math.Hypot(last.X-origin.X, last.Y-origin.Y)

	alpha := math.Acos(
		(distance*distance +
			(next.R+origin.R)*(next.R+origin.R) -
			(next.R+last.R)*(next.R+last.R)) /
			(2 * (next.R + origin.R) * distance),
	)
	beta := math.Asin(math.Abs(last.X-origin.X) / distance)

	// Half-plane corrections: gamma flips the base direction when last sits
	// below origin, delta mirrors beta in the second and fourth quadrants.
	gamma := 0.0
	if last.Y-origin.Y >= 0 {
		gamma = math.Pi
	}
	delta := -1.0
	if (last.X-origin.X)*(last.Y-origin.Y) < 0 {
		delta = 1
	}

	angle := gamma + alpha + beta*delta
	next.X = origin.X + (origin.R+next.R)*math.Sin(angle)
	next.Y = origin.Y - (origin.R+next.R)*math.Cos(angle)
	return next
}
