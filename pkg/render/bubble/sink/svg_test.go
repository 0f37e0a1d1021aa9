package sink

import (
	"strings"
	"testing"

	"github.com/JustBeyond/packedbubble/pkg/chart"
	"github.com/JustBeyond/packedbubble/pkg/render/bubble/styles"
)

// fruitLayout is a small two-series layout used across sink tests.
func fruitLayout() chart.Layout {
	return chart.Layout{
		Title:  "Fruit Consumption",
		Width:  400,
		Height: 400,
		Bubbles: []chart.Bubble{
			{SeriesID: "fruit", Index: 0, Label: "Apples", Value: 5, X: 180, Y: 200, R: 70},
			{SeriesID: "fruit", Index: 1, Label: "Pears", Value: 3, X: 290, Y: 200, R: 40},
			{SeriesID: "veg", Index: 0, Label: "Kale", Value: 2, X: 200, Y: 310, R: 30},
		},
		Converged:  true,
		Iterations: 2,
	}
}

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(fruitLayout()))

	expected := []string{
		`<svg xmlns="http://www.w3.org/2000/svg"`,
		`viewBox="0 0 400.0 400.0"`,
		`width="400" height="400"`,
		`<title>Fruit Consumption</title>`,
		`id="bubble-fruit-0"`,
		`id="bubble-fruit-1"`,
		`id="bubble-veg-0"`,
		`<title>Apples: 5</title>`,
		`</svg>`,
	}
	for _, want := range expected {
		if !strings.Contains(svg, want) {
			t.Errorf("RenderSVG() output missing %q", want)
		}
	}

	if got := strings.Count(svg, "<circle"); got != 3 {
		t.Errorf("RenderSVG() drew %d circles, want 3", got)
	}
}

func TestRenderSVGSeriesColors(t *testing.T) {
	svg := string(RenderSVG(fruitLayout()))

	// Colors follow first-appearance order of series.
	if !strings.Contains(svg, styles.SeriesColor(0)) {
		t.Errorf("RenderSVG() missing first series color %s", styles.SeriesColor(0))
	}
	if !strings.Contains(svg, styles.SeriesColor(1)) {
		t.Errorf("RenderSVG() missing second series color %s", styles.SeriesColor(1))
	}
}

func TestRenderSVGLabels(t *testing.T) {
	plain := string(RenderSVG(fruitLayout()))
	labeled := string(RenderSVG(fruitLayout(), WithLabels()))

	if strings.Contains(plain, `class="bubble-label"`) {
		t.Error("RenderSVG() should not draw labels by default")
	}
	if !strings.Contains(labeled, ">Apples</text>") {
		t.Error("RenderSVG(WithLabels()) missing label text")
	}
}

func TestRenderSVGBackground(t *testing.T) {
	plain := string(RenderSVG(fruitLayout()))
	painted := string(RenderSVG(fruitLayout(), WithBackground("#f4f4f4")))

	if strings.Contains(plain, `class="background"`) {
		t.Error("RenderSVG() should be transparent by default")
	}
	if !strings.Contains(painted, `<rect class="background" width="100%" height="100%" fill="#f4f4f4"/>`) {
		t.Error("RenderSVG(WithBackground) missing background rect")
	}
}

func TestRenderSVGGlossStyle(t *testing.T) {
	svg := string(RenderSVG(fruitLayout(), WithStyle(styles.Gloss{})))

	if !strings.Contains(svg, "<radialGradient") {
		t.Error("RenderSVG(gloss) missing gradient defs")
	}
	if !strings.Contains(svg, `fill="url(#gloss-`) {
		t.Error("RenderSVG(gloss) bubbles should reference gradients")
	}
}

func TestRenderSVGEmptyLayout(t *testing.T) {
	svg := string(RenderSVG(chart.Layout{Width: 200, Height: 100}))

	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Errorf("RenderSVG() empty layout should still be a valid document:\n%s", svg)
	}
	if strings.Contains(svg, "<circle") {
		t.Error("RenderSVG() empty layout should draw no circles")
	}
}

func TestBuildBubblesColorAssignment(t *testing.T) {
	l := chart.Layout{
		Bubbles: []chart.Bubble{
			{SeriesID: "a", Index: 0},
			{SeriesID: "b", Index: 0},
			{SeriesID: "a", Index: 1},
		},
	}

	bubbles := buildBubbles(l)

	if bubbles[0].Fill != bubbles[2].Fill {
		t.Error("Bubbles of the same series should share a color")
	}
	if bubbles[0].Fill == bubbles[1].Fill {
		t.Error("Bubbles of different series should get distinct colors")
	}
}
