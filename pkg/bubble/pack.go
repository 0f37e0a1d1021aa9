package bubble

import (
	"cmp"
	"slices"
)

// Circles pairs items with their resolved radii, dropping every item whose
// radius is invalid: a null or zero value has no size and does not occupy a
// slot in the packed layout. The radii slice must align 1:1 with items, as
// returned by [Radii]. Positions are left at zero for [Pack] to fill.
func Circles(items []Item, radii []Radius) []Circle {
	out := make([]Circle, 0, len(items))
	for i, it := range items {
		if !radii[i].Valid {
			continue
		}
		out = append(out, Circle{R: radii[i].Value, SeriesID: it.SeriesID, Index: it.Index})
	}
	return out
}

// Pack arranges circles into concentric rings. The largest circle anchors
// ring 0 at the origin and the second largest seeds ring 1 directly above
// it; every further circle is placed tangent to a pivot circle of the
// previous ring, next to the last circle appended to the current ring. A
// ring closes as soon as a candidate position would collide with the ring's
// first circle — that check takes precedence over advancing the pivot,
// which happens when the candidate collides with the pivot's successor.
//
// Circles are processed in descending radius order, stable for ties, and
// appends always target the newest ring, so the flattened rings come back
// in that same sorted order. Rings are rebuilt from scratch on every call;
// the input slice is not modified. A non-positive radius is coerced to 1
// before placement, which needs strictly positive radii.
func Pack(circles []Circle) [][]Circle {
	sorted := slices.Clone(circles)
	slices.SortStableFunc(sorted, func(a, b Circle) int {
		return cmp.Compare(b.R, a.R)
	})

	if len(sorted) == 0 {
		return nil
	}

	sorted[0].X, sorted[0].Y = 0, 0
	rings := [][]Circle{{sorted[0]}}
	if len(sorted) == 1 {
		return rings
	}

	sorted[1].X = 0
	sorted[1].Y = -(sorted[0].R + sorted[1].R)
	rings = append(rings, []Circle{sorted[1]})

	// Cursor: stage is the current ring, j the last circle appended to it,
	// k the pivot within the previous ring.
	stage, j, k := 1, 0, 0
	for _, next := range sorted[2:] {
		if next.R <= 0 {
			next.R = 1
		}

		candidate := Place(rings[stage][j], rings[stage-1][k], next)

		switch {
		case Overlaps(candidate, rings[stage][0], DefaultEpsilon):
			// The ring is full. Its first circle becomes the anchor for the
			// next ring's first placement.
			first := Place(rings[stage][j], rings[stage][0], next)
			rings = append(rings, []Circle{first})
			stage++
			j, k = 0, 0
		case stage > 1 && k+1 < len(rings[stage-1]) &&
			Overlaps(candidate, rings[stage-1][k+1], DefaultEpsilon):
			// The candidate ran into the pivot's successor: the pivot
			// advances and the circle is placed against it instead.
			k++
			rings[stage] = append(rings[stage], Place(rings[stage][j], rings[stage-1][k], next))
			j++
		default:
			rings[stage] = append(rings[stage], candidate)
			j++
		}
	}
	return rings
}
