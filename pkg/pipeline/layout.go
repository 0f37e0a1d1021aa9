package pipeline

import (
	"github.com/JustBeyond/packedbubble/pkg/bubble"
	"github.com/JustBeyond/packedbubble/pkg/chart"
)

// GenerateLayout packs the dataset into a fitted layout: values become
// radii, radii become packed circles, and the cluster is rescaled until it
// fills the frame. The result is deterministic for a given dataset and
// options.
//
// An iteration-capped fit still returns the best layout found; it is
// reported through the layout's Converged flag and a warning log rather
// than an error.
func GenerateLayout(d chart.Dataset, opts Options) (chart.Layout, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return chart.Layout{}, err
	}

	sizing, err := opts.sizing()
	if err != nil {
		return chart.Layout{}, err
	}

	frame := opts.frame()
	items := d.Items()
	radii := bubble.Radii(items, sizing, frame)
	circles := bubble.Circles(items, radii)
	packed := bubble.Fit(circles, frame, bubble.WithMaxIterations(opts.MaxIterations))

	if !packed.Converged {
		opts.Logger.Warn("layout stopped at iteration cap",
			"iterations", packed.Iterations,
			"bubbles", len(circles))
	}

	return chart.BuildLayout(d, packed, frame), nil
}
