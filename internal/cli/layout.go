package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JustBeyond/packedbubble/pkg/io"
	"github.com/JustBeyond/packedbubble/pkg/pipeline"
)

// layoutCommand creates the layout command for computing bubble layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{}
	opts.SetLayoutDefaults()

	cmd := &cobra.Command{
		Use:   "layout [dataset]",
		Short: "Compute a packed-bubble layout from a dataset",
		Long: `Compute a packed-bubble layout from a dataset.

The layout command reads a dataset (local file, HTTP(S) URL, or "-" for
stdin), sizes one bubble per point, packs the bubbles in a spiral around
the frame center, and rescales until the cluster fits the frame. The
output is a layout.json file (same format as 'render -f json') that the
'render' command turns into SVG, PNG, or PDF.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.overlayLayoutConfig(cmd, &opts)
			return c.runLayout(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "out", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "refetch remote datasets, bypassing the HTTP cache")

	// Layout flags
	cmd.Flags().Float64Var(&opts.Width, "width", opts.Width, "frame width in pixels")
	cmd.Flags().Float64Var(&opts.Height, "height", opts.Height, "frame height in pixels")
	cmd.Flags().StringVar(&opts.MinSize, "min-size", opts.MinSize, "smallest bubble diameter (px or % of the frame)")
	cmd.Flags().StringVar(&opts.MaxSize, "max-size", opts.MaxSize, "largest bubble diameter (px or % of the frame)")
	cmd.Flags().StringVar(&opts.SizeBy, "size-by", opts.SizeBy, "value-to-size mapping: area (default), width")
	cmd.Flags().IntVar(&opts.MaxIterations, "max-iterations", opts.MaxIterations, "iteration cap for the fit loop")

	return cmd
}

// runLayout loads the dataset, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	opts.Input = input
	c.applyRuntime(&opts)

	prog := newProgress(c.Logger)
	d, err := pipeline.Load(ctx, opts)
	if err != nil {
		return fmt.Errorf("load dataset %s: %w", input, err)
	}
	prog.done(fmt.Sprintf("Loaded %d series", len(d.Series)))

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	points := len(d.Items())
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Packing %d bubbles...", points))
	spinner.Start()

	layout, cacheHit, err := runner.GenerateLayoutWithCacheInfo(ctx, d, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		outputPath = inputBase(input) + ".layout.json"
	}

	if err := io.ExportLayout(layout, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	if !layout.Converged {
		printWarning("Layout did not converge after %d iterations", layout.Iterations)
	}
	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(d.Series), points, len(layout.Bubbles), cacheHit)
	printNewline()
	printNextStep("Render", "packedbubble render "+outputPath)

	return nil
}
