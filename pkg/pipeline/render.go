package pipeline

import (
	"github.com/JustBeyond/packedbubble/pkg/chart"
	"github.com/JustBeyond/packedbubble/pkg/errors"
	"github.com/JustBeyond/packedbubble/pkg/render/bubble/sink"
	"github.com/JustBeyond/packedbubble/pkg/render/bubble/styles"
	"github.com/JustBeyond/packedbubble/pkg/render/contact"
)

// RenderFromLayout renders the layout in the requested format.
//
// SVG, JSON, and DOT render in-process; PNG and PDF go through SVG and the
// external rsvg-convert tool.
func RenderFromLayout(l chart.Layout, opts Options) ([]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	switch opts.Format {
	case chart.FormatSVG:
		return sink.RenderSVG(l, svgOptions(opts)...), nil
	case chart.FormatPNG:
		return sink.RenderPNG(l,
			sink.WithScale(opts.Scale),
			sink.WithPNGSVGOptions(svgOptions(opts)...))
	case chart.FormatPDF:
		return sink.RenderPDF(l, sink.WithPDFSVGOptions(svgOptions(opts)...))
	case chart.FormatJSON:
		return sink.RenderJSON(l, sink.WithJSONStyle(opts.Style))
	case chart.FormatDOT:
		return []byte(contact.ToDOT(l, contact.Options{Labels: !opts.NoLabels})), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", opts.Format)
	}
}

// svgOptions maps pipeline options onto the SVG sink's functional options.
func svgOptions(opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{sink.WithStyle(styleFor(opts.Style))}
	if !opts.NoLabels {
		svgOpts = append(svgOpts, sink.WithLabels())
	}
	if opts.Background != "" {
		svgOpts = append(svgOpts, sink.WithBackground(opts.Background))
	}
	return svgOpts
}

// styleFor maps a validated style name onto its renderer.
func styleFor(name string) styles.Style {
	switch name {
	case chart.StyleGloss:
		return styles.Gloss{}
	default:
		return styles.Flat{}
	}
}
