// Package io provides file-level import and export for datasets and layouts.
//
// # Overview
//
// This package is the filesystem boundary of the application. The wire
// format itself lives in [chart]; this package adds what the CLI and the
// pipeline need on top of it:
//
//   - Path handling, including the "-" convention for stdin/stdout
//   - Output path validation before anything is created
//   - Structured errors ([errors.ErrCodeFileNotFound]) for missing inputs
//
// # Import
//
// Use [ImportDataset] to read chart input from a file path:
//
//	d, err := io.ImportDataset("fruit.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// A path of "-" reads from standard input instead, so datasets can be piped:
//
//	cat fruit.json | packedbubble layout -i -
//
// Imports are validated on decode: unsafe series IDs, duplicate IDs, and
// control characters in labels are rejected before any layout work happens.
//
// # Export
//
// Use [ExportLayout] to write a computed layout, or [ExportDataset] to write
// a dataset back out:
//
//	err := io.ExportLayout(l, "layout.json")
//
// Exports are round-trip faithful: importing an exported file reproduces the
// original value, including null point values.
//
// # Concurrency
//
// All functions are stateless and safe for concurrent use, as long as two
// exports do not target the same path.
//
// [chart]: github.com/JustBeyond/packedbubble/pkg/chart
// [errors.ErrCodeFileNotFound]: github.com/JustBeyond/packedbubble/pkg/errors
package io
