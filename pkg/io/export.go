package io

import (
	"fmt"
	"os"

	"github.com/JustBeyond/packedbubble/pkg/chart"
	"github.com/JustBeyond/packedbubble/pkg/errors"
)

// ExportDataset writes a dataset as indented JSON to the file at path, or
// to standard output when path is [Stdio]. The output round-trips through
// [ImportDataset], null point values included.
func ExportDataset(d chart.Dataset, path string) error {
	if path == Stdio {
		return chart.WriteDataset(d, os.Stdout)
	}
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return chart.WriteDataset(d, f)
}

// ExportLayout writes a computed layout as indented JSON to the file at
// path, or to standard output when path is [Stdio].
func ExportLayout(l chart.Layout, path string) error {
	if path == Stdio {
		return chart.WriteLayout(l, os.Stdout)
	}
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return chart.WriteLayout(l, f)
}
