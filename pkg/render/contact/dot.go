// Package contact renders the tangency structure of a packed layout as a
// node-link diagram. Bubbles become nodes pinned at their packed positions;
// pairs whose gap is within tolerance become edges. The result shows which
// bubbles actually rest against each other, which the filled rendering
// hides, and is the view to reach for when a packing looks wrong.
package contact

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/JustBeyond/packedbubble/pkg/chart"
	"github.com/JustBeyond/packedbubble/pkg/render"
)

// DefaultTolerance is the maximum gap, in user units, at which two bubbles
// count as touching. Ring placement makes neighbors exactly tangent up to
// float error; half a pixel absorbs that error without connecting bubbles
// that merely sit near each other.
const DefaultTolerance = 0.5

// Graphviz measures node positions in points and node sizes in inches.
const pointsPerInch = 72.0

// Options configures contact graph generation.
type Options struct {
	// Labels uses point labels for node names instead of series/index ids.
	Labels bool
	// Tolerance overrides DefaultTolerance when positive.
	Tolerance float64
}

// ToDOT converts a layout's contact structure to Graphviz DOT format. The
// resulting DOT string can be rendered using [RenderSVG], [RenderPDF], or
// [RenderPNG].
//
// Nodes carry pinned positions and radius-proportional sizes, so the neato
// engine reproduces the packed geometry instead of inventing its own.
func ToDOT(l chart.Layout, opts Options) string {
	tol := opts.Tolerance
	if tol <= 0 {
		tol = DefaultTolerance
	}

	var buf bytes.Buffer
	buf.WriteString("graph contact {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=10, fixedsize=true];\n")
	buf.WriteString("\n")

	for _, b := range l.Bubbles {
		// Graphviz has its origin at the bottom left, SVG at the top left.
		fmt.Fprintf(&buf, "  %q [label=%q, pos=\"%.1f,%.1f!\", width=%.2f];\n",
			nodeID(b), nodeLabel(b, opts.Labels), b.X, l.Height-b.Y, 2*b.R/pointsPerInch)
	}

	buf.WriteString("\n")
	for _, e := range touching(l.Bubbles, tol) {
		fmt.Fprintf(&buf, "  %q -- %q;\n", nodeID(l.Bubbles[e.from]), nodeID(l.Bubbles[e.to]))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(b chart.Bubble) string {
	return fmt.Sprintf("%s/%d", b.SeriesID, b.Index)
}

func nodeLabel(b chart.Bubble, labels bool) string {
	if labels && b.Label != "" {
		return b.Label
	}
	return nodeID(b)
}

type pair struct{ from, to int }

// touching returns the index pairs whose circles are tangent within tol.
// The gap of a pair overlapping inside the packing epsilon is slightly
// negative, which the comparison covers.
func touching(bubbles []chart.Bubble, tol float64) []pair {
	var pairs []pair
	for i := range bubbles {
		for j := i + 1; j < len(bubbles); j++ {
			if gap(bubbles[i], bubbles[j]) <= tol {
				pairs = append(pairs, pair{i, j})
			}
		}
	}
	return pairs
}

func gap(a, b chart.Bubble) float64 {
	d := math.Hypot(a.X-b.X, a.Y-b.Y)
	return d - (a.R + b.R)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with
// [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPNG].
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
