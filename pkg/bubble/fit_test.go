package bubble

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"
)

func TestFit_Empty(t *testing.T) {
	l := Fit(nil, Frame{Width: 400, Height: 400})

	if !l.Converged {
		t.Error("Fit(nil) not converged, want converged empty layout")
	}
	if l.Iterations != 0 {
		t.Errorf("Iterations = %d, want 0", l.Iterations)
	}
	if len(l.Circles()) != 0 {
		t.Errorf("Circles() = %v, want none", l.Circles())
	}
}

func TestFit_SingleCircleFillsFrame(t *testing.T) {
	l := Fit([]Circle{{R: 10}}, Frame{Width: 400, Height: 400})

	// One circle rescales to the frame in a single correction pass, and the
	// chain of scale factors is exact in floating point.
	if !l.Converged {
		t.Fatal("Fit() did not converge")
	}
	if l.Iterations != 2 {
		t.Errorf("Iterations = %d, want 2", l.Iterations)
	}

	flat := l.Circles()
	if len(flat) != 1 {
		t.Fatalf("Circles() placed %d circles, want 1", len(flat))
	}
	if flat[0].R != 200 {
		t.Errorf("R = %v, want 200", flat[0].R)
	}
	if want := (Rect{MinX: -200, MinY: -200, MaxX: 200, MaxY: 200}); l.Bounds != want {
		t.Errorf("Bounds = %+v, want %+v", l.Bounds, want)
	}
	if l.OffsetX != 200 || l.OffsetY != 200 {
		t.Errorf("offsets = (%v, %v), want (200, 200)", l.OffsetX, l.OffsetY)
	}
}

func TestFit_CentersClusterInFrame(t *testing.T) {
	circles := []Circle{{R: 10, Index: 0}, {R: 10, Index: 1}}
	frame := Frame{Width: 400, Height: 200}

	l := Fit(circles, frame)

	if !l.Converged {
		t.Fatal("Fit() did not converge")
	}
	if l.Iterations != 2 {
		t.Errorf("Iterations = %d, want 2", l.Iterations)
	}

	flat := l.Circles()
	if len(flat) != 2 {
		t.Fatalf("Circles() placed %d circles, want 2", len(flat))
	}

	// Equal radii keep input order: the first circle anchors the cluster.
	if flat[0].Index != 0 || flat[1].Index != 1 {
		t.Errorf("tie order = [%d, %d], want [0, 1]", flat[0].Index, flat[1].Index)
	}
	if flat[0].R != 50 || flat[1].R != 50 {
		t.Errorf("radii = (%v, %v), want (50, 50)", flat[0].R, flat[1].R)
	}
	if want := (Rect{MinX: -50, MinY: -150, MaxX: 50, MaxY: 50}); l.Bounds != want {
		t.Errorf("Bounds = %+v, want %+v", l.Bounds, want)
	}
	if l.OffsetX != 200 || l.OffsetY != 150 {
		t.Errorf("offsets = (%v, %v), want (200, 150)", l.OffsetX, l.OffsetY)
	}

	// Offsets drop every circle inside the frame.
	for i, c := range flat {
		x, y := c.X+l.OffsetX, c.Y+l.OffsetY
		if x-c.R < 0 || x+c.R > frame.Width || y-c.R < 0 || y+c.R > frame.Height {
			t.Errorf("circle %d at (%v, %v) r=%v leaves the %vx%v frame", i, x, y, c.R, frame.Width, frame.Height)
		}
	}
}

func TestFit_EqualCirclesConvergeInTwoPasses(t *testing.T) {
	circles := make([]Circle, 7)
	for i := range circles {
		circles[i] = Circle{R: 1}
	}

	l := Fit(circles, Frame{Width: 400, Height: 400})

	if !l.Converged {
		t.Fatal("Fit() did not converge")
	}
	// The second pass repacks at the corrected scale; equal radii make every
	// placement decision scale along, so the correction lands exactly.
	if l.Iterations != 2 {
		t.Errorf("Iterations = %d, want 2", l.Iterations)
	}

	// The hexagon is taller than wide, so height binds.
	if h := l.Bounds.Height(); math.Abs(h-400) > 1e-6 {
		t.Errorf("Bounds.Height() = %v, want 400", h)
	}
	wantW := (2*math.Sqrt(3) + 2) * 400 / 6
	if w := l.Bounds.Width(); math.Abs(w-wantW) > 1e-6 {
		t.Errorf("Bounds.Width() = %v, want %v", w, wantW)
	}

	for i, c := range l.Circles() {
		if math.Abs(c.R-400.0/6) > 1e-9 {
			t.Errorf("circle %d radius = %v, want %v", i, c.R, 400.0/6)
		}
	}

	assertNoOverlaps(t, l.Circles())
}

func TestFit_LargeEqualPopulation(t *testing.T) {
	circles := make([]Circle, 50)
	for i := range circles {
		circles[i] = Circle{R: 3, Index: i}
	}
	frame := Frame{Width: 400, Height: 400}

	l := Fit(circles, frame)

	if !l.Converged {
		t.Fatal("Fit() did not converge")
	}
	flat := l.Circles()
	if len(flat) != 50 {
		t.Fatalf("Circles() placed %d circles, want 50", len(flat))
	}

	w, h := l.Bounds.Width(), l.Bounds.Height()
	if longest := math.Max(w, h); math.Abs(longest-400) > 1e-6 {
		t.Errorf("binding dimension = %v, want 400", longest)
	}
	if w > 400+1e-6 || h > 400+1e-6 {
		t.Errorf("bounds %vx%v exceed the frame", w, h)
	}

	assertNoOverlaps(t, flat)
}

func TestFit_RandomizedValues(t *testing.T) {
	const seed = 11
	rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))

	items := make([]Item, 50)
	for i := range items {
		items[i] = Item{Value: ptr(10 + rng.Float64()*90), SeriesID: "s0", Index: i}
	}
	sizing := Sizing{
		MinSize: Size{Value: 10, Percent: true},
		MaxSize: Size{Value: 50, Percent: true},
		ByArea:  true,
	}
	frame := Frame{Width: 400, Height: 400}

	l := Fit(Circles(items, Radii(items, sizing, frame)), frame)

	if !l.Converged {
		t.Fatalf("Fit() did not converge after %d iterations", l.Iterations)
	}
	if l.Iterations < 2 {
		t.Errorf("Iterations = %d, want at least one correction pass", l.Iterations)
	}
	if n := len(l.Circles()); n != 50 {
		t.Errorf("Circles() placed %d circles, want 50", n)
	}

	w, h := l.Bounds.Width(), l.Bounds.Height()
	if longest := math.Max(w, h); math.Abs(longest-400) > 1e-6 {
		t.Errorf("binding dimension = %v, want 400", longest)
	}
	if w > 400+1e-6 || h > 400+1e-6 {
		t.Errorf("bounds %vx%v exceed the frame", w, h)
	}
}

func TestFit_Deterministic(t *testing.T) {
	build := func() Layout {
		const seed = 23
		rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
		items := make([]Item, 30)
		for i := range items {
			items[i] = Item{Value: ptr(1 + rng.Float64()*99), Index: i}
		}
		sizing := Sizing{MinSize: Size{Value: 20}, MaxSize: Size{Value: 80}, ByArea: true}
		frame := Frame{Width: 300, Height: 500}
		return Fit(Circles(items, Radii(items, sizing, frame)), frame)
	}

	first, second := build(), build()

	if !slices.Equal(first.Circles(), second.Circles()) {
		t.Error("repeated runs placed circles differently")
	}
	if first.Bounds != second.Bounds {
		t.Errorf("Bounds differ between runs: %+v vs %+v", first.Bounds, second.Bounds)
	}
	if first.OffsetX != second.OffsetX || first.OffsetY != second.OffsetY {
		t.Error("offsets differ between runs")
	}
	if first.Iterations != second.Iterations {
		t.Errorf("Iterations differ between runs: %d vs %d", first.Iterations, second.Iterations)
	}
}

func TestFit_ZeroFrameHitsIterationCap(t *testing.T) {
	circles := []Circle{{R: 5}, {R: 3}}

	l := Fit(circles, Frame{})
	if l.Converged {
		t.Error("Fit() into a zero-size frame reported convergence")
	}
	if l.Iterations != DefaultMaxIterations {
		t.Errorf("Iterations = %d, want %d", l.Iterations, DefaultMaxIterations)
	}

	l = Fit(circles, Frame{}, WithMaxIterations(3))
	if l.Converged || l.Iterations != 3 {
		t.Errorf("with cap 3: converged=%v iterations=%d, want capped at 3", l.Converged, l.Iterations)
	}

	// Non-positive caps are ignored.
	l = Fit(circles, Frame{}, WithMaxIterations(0))
	if l.Iterations != DefaultMaxIterations {
		t.Errorf("with cap 0: Iterations = %d, want %d", l.Iterations, DefaultMaxIterations)
	}
}

func TestFit_InputUnmodified(t *testing.T) {
	circles := []Circle{{R: 10}, {R: 4}}

	Fit(circles, Frame{Width: 400, Height: 400})

	if circles[0].R != 10 || circles[1].R != 4 {
		t.Errorf("Fit() scaled its input: %+v", circles)
	}
	if circles[0].X != 0 || circles[0].Y != 0 {
		t.Errorf("Fit() moved its input: %+v", circles)
	}
}
