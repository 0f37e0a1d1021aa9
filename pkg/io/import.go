package io

import (
	"fmt"
	"os"

	"github.com/JustBeyond/packedbubble/pkg/chart"
	"github.com/JustBeyond/packedbubble/pkg/errors"
)

// Stdio is the path that selects standard input or output instead of a file.
const Stdio = "-"

// ImportDataset reads a dataset from the JSON file at path, or from
// standard input when path is [Stdio].
//
// ImportDataset opens the file, decodes it using [chart.ReadDataset], and
// closes the file. Decoding validates the dataset (safe series IDs, unique
// IDs, safe labels), so a successful import is ready for layout.
//
// A missing file maps to [errors.ErrCodeFileNotFound] so callers can
// distinguish a bad path from a bad dataset.
func ImportDataset(path string) (chart.Dataset, error) {
	if path == Stdio {
		return chart.ReadDataset(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return chart.Dataset{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "dataset %s not found", path)
		}
		return chart.Dataset{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	d, err := chart.ReadDataset(f)
	if err != nil {
		return chart.Dataset{}, fmt.Errorf("import %s: %w", path, err)
	}
	return d, nil
}

// ImportLayout reads a computed layout from the JSON file at path, or from
// standard input when path is [Stdio]. The inverse of [ExportLayout].
func ImportLayout(path string) (chart.Layout, error) {
	if path == Stdio {
		return chart.ReadLayout(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return chart.Layout{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "layout %s not found", path)
		}
		return chart.Layout{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	l, err := chart.ReadLayout(f)
	if err != nil {
		return chart.Layout{}, fmt.Errorf("import %s: %w", path, err)
	}
	return l, nil
}
