package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/JustBeyond/packedbubble/pkg/chart"
	"github.com/JustBeyond/packedbubble/pkg/pipeline"
)

// inspectCommand creates the inspect command for browsing datasets.
func (c *CLI) inspectCommand() *cobra.Command {
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "inspect [dataset]",
		Short: "Browse a dataset's series interactively",
		Long: `Browse a dataset's series interactively.

The inspect command loads a dataset (local file or HTTP(S) URL) and opens
an interactive series browser: arrow keys navigate, "/" filters by name,
and enter prints the selected series' statistics. Standard input cannot
be inspected because the terminal UI needs it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "refetch remote datasets, bypassing the HTTP cache")

	return cmd
}

// runInspect loads the dataset and runs the series browser.
func (c *CLI) runInspect(ctx context.Context, input string, opts pipeline.Options) error {
	if input == "-" {
		return fmt.Errorf("inspect cannot read the dataset from stdin: the terminal UI needs it")
	}

	opts.Input = input
	c.applyRuntime(&opts)

	d, err := pipeline.Load(ctx, opts)
	if err != nil {
		return fmt.Errorf("load dataset %s: %w", input, err)
	}

	m := NewSeriesListModel(d)
	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	fm, ok := finalModel.(SeriesListModel)
	if !ok || fm.Selected == nil {
		printDetail("No selection made")
		return nil
	}

	printSeriesStats(fm.Selected.Series, fm.total)
	return nil
}

// printSeriesStats prints the selected series' summary.
func printSeriesStats(s chart.Series, datasetTotal float64) {
	total, placed := seriesTotal(s)

	printSuccess("Series %s", StyleHighlight.Render(s.DisplayName()))
	printKeyValue("ID", s.ID)
	printKeyValue("Points", fmt.Sprintf("%d (%d placed)", len(s.Points), placed))
	printKeyValue("Total", StyleNumber.Render(formatValue(total)))
	if min, max, ok := seriesRange(s); ok {
		printKeyValue("Min", formatValue(min))
		printKeyValue("Max", formatValue(max))
	}
	if s.Hidden {
		printDetail("hidden: excluded from layout")
	} else if datasetTotal > 0 {
		printKeyValue("Share", fmt.Sprintf("%.1f%%", total/datasetTotal*100))
	}
}

// seriesRange returns the smallest and largest point values of a series.
// ok is false when every point is null.
func seriesRange(s chart.Series) (min, max float64, ok bool) {
	for _, p := range s.Points {
		if p.Value == nil {
			continue
		}
		v := *p.Value
		if !ok || v < min {
			min = v
		}
		if !ok || v > max {
			max = v
		}
		ok = true
	}
	return min, max, ok
}
