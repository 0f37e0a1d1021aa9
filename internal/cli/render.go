package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JustBeyond/packedbubble/pkg/chart"
	"github.com/JustBeyond/packedbubble/pkg/io"
	"github.com/JustBeyond/packedbubble/pkg/pipeline"
	"github.com/JustBeyond/packedbubble/pkg/source"
)

// renderCommand creates the render command producing chart artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}
	opts.SetLayoutDefaults()
	opts.SetRenderDefaults()

	cmd := &cobra.Command{
		Use:   "render [dataset|layout.json]",
		Short: "Render a dataset or precomputed layout to chart artifacts",
		Long: `Render a dataset or a precomputed layout.

The input is either a dataset (local file, HTTP(S) URL, or "-" for stdin)
or a layout.json file produced by 'layout'. Local files are inspected to
tell the two apart; remote URLs and stdin are always read as datasets.

Formats: svg (default), png, pdf, json (layout export), and dot (Graphviz
contact graph). Multiple formats render in one run: -f svg,png,json.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(formatsStr)
			for _, f := range formats {
				if err := pipeline.ValidateFormat(f); err != nil {
					return err
				}
			}
			if err := pipeline.ValidateStyle(opts.Style); err != nil {
				return err
			}
			c.overlayLayoutConfig(cmd, &opts)
			return c.runRender(cmd.Context(), args[0], opts, formats, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "out", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "refetch remote datasets, bypassing the HTTP cache")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json, dot (comma-separated)")

	// Layout flags (used when the input is a dataset)
	cmd.Flags().Float64Var(&opts.Width, "width", opts.Width, "frame width in pixels")
	cmd.Flags().Float64Var(&opts.Height, "height", opts.Height, "frame height in pixels")
	cmd.Flags().StringVar(&opts.MinSize, "min-size", opts.MinSize, "smallest bubble diameter (px or % of the frame)")
	cmd.Flags().StringVar(&opts.MaxSize, "max-size", opts.MaxSize, "largest bubble diameter (px or % of the frame)")
	cmd.Flags().StringVar(&opts.SizeBy, "size-by", opts.SizeBy, "value-to-size mapping: area (default), width")
	cmd.Flags().IntVar(&opts.MaxIterations, "max-iterations", opts.MaxIterations, "iteration cap for the fit loop")

	// Render flags
	cmd.Flags().StringVar(&opts.Style, "style", opts.Style, "visual style: flat (default), gloss")
	cmd.Flags().Float64Var(&opts.Scale, "scale", opts.Scale, "PNG raster scale factor")
	cmd.Flags().BoolVar(&opts.NoLabels, "no-labels", opts.NoLabels, "omit bubble labels")
	cmd.Flags().StringVar(&opts.Background, "background", opts.Background, "background color (CSS color)")

	return cmd
}

// runRender resolves the layout from the input and renders every requested
// format.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, formats []string, output string, noCache bool) error {
	c.applyRuntime(&opts)

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	layout, stats, err := c.resolveLayout(ctx, runner, input, opts)
	if err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", strings.Join(formats, ", ")))
	spinner.Start()

	artifacts := make([][]byte, len(formats))
	allHit := stats.layoutHit
	for i, f := range formats {
		opts.Format = f
		artifact, hit, err := runner.RenderWithCacheInfo(ctx, layout, opts)
		if err != nil {
			spinner.StopWithError("Render failed")
			return fmt.Errorf("render %s: %w", f, err)
		}
		artifacts[i] = artifact
		allHit = allHit && hit
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	paths := artifactPaths(input, output, formats)
	for i, p := range paths {
		if err := os.WriteFile(p, artifacts[i], 0o644); err != nil {
			return fmt.Errorf("write output %s: %w", p, err)
		}
	}

	printSuccess("Render complete")
	for _, p := range paths {
		printFile(p)
	}
	printStats(stats.series, stats.points, len(layout.Bubbles), allHit)

	return nil
}

// layoutStats carries dataset counts alongside a resolved layout.
type layoutStats struct {
	series    int
	points    int
	layoutHit bool
}

// resolveLayout turns the input reference into a layout: precomputed layout
// files are imported directly, everything else is loaded as a dataset and
// packed.
func (c *CLI) resolveLayout(ctx context.Context, runner *pipeline.Runner, input string, opts pipeline.Options) (chart.Layout, layoutStats, error) {
	if !source.IsURL(input) && input != "-" && looksLikeLayout(input) {
		layout, err := io.ImportLayout(input)
		if err != nil {
			return chart.Layout{}, layoutStats{}, fmt.Errorf("load layout %s: %w", input, err)
		}
		c.Logger.Debug("using precomputed layout", "input", input, "bubbles", len(layout.Bubbles))
		stats := layoutStats{series: countLayoutSeries(layout), layoutHit: true}
		return layout, stats, nil
	}

	opts.Input = input
	prog := newProgress(c.Logger)
	d, err := pipeline.Load(ctx, opts)
	if err != nil {
		return chart.Layout{}, layoutStats{}, fmt.Errorf("load dataset %s: %w", input, err)
	}
	prog.done(fmt.Sprintf("Loaded %d series", len(d.Series)))

	layout, hit, err := runner.GenerateLayoutWithCacheInfo(ctx, d, opts)
	if err != nil {
		return chart.Layout{}, layoutStats{}, fmt.Errorf("compute layout: %w", err)
	}
	if !layout.Converged {
		printWarning("Layout did not converge after %d iterations", layout.Iterations)
	}

	stats := layoutStats{series: len(d.Series), points: len(d.Items()), layoutHit: hit}
	return layout, stats, nil
}

// looksLikeLayout reports whether the local file contains a precomputed
// layout rather than a dataset. Layouts carry a "bubbles" array, datasets
// a "series" array.
func looksLikeLayout(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}

	var probe struct {
		Bubbles []json.RawMessage `json:"bubbles"`
		Series  []json.RawMessage `json:"series"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return false
	}
	return len(probe.Bubbles) > 0 && len(probe.Series) == 0
}

// countLayoutSeries counts the distinct series represented in a layout.
func countLayoutSeries(l chart.Layout) int {
	seen := make(map[string]bool)
	for _, b := range l.Bubbles {
		seen[b.SeriesID] = true
	}
	return len(seen)
}

// artifactPaths decides the output file per format. A single format with an
// explicit output path uses it verbatim; otherwise paths derive from the
// base name, with json artifacts marked as layouts.
func artifactPaths(input, output string, formats []string) []string {
	if len(formats) == 1 && output != "" {
		return []string{output}
	}

	base := basePath(output, input)
	paths := make([]string, len(formats))
	for i, f := range formats {
		if f == chart.FormatJSON {
			paths[i] = base + ".layout.json"
		} else {
			paths[i] = base + "." + f
		}
	}
	return paths
}

// basePath derives the base output path from the output and input references.
// A known format extension on the output path is stripped so "-o chart.svg"
// with multiple formats yields chart.svg, chart.png, and so on.
func basePath(output, input string) string {
	if output == "" {
		return inputBase(input)
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	if pipeline.ValidFormats[ext] {
		return strings.TrimSuffix(output, "."+ext)
	}
	return output
}
