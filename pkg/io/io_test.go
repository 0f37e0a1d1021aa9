package io

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/JustBeyond/packedbubble/pkg/chart"
	"github.com/JustBeyond/packedbubble/pkg/errors"
)

func ptr(v float64) *float64 { return &v }

func TestDatasetRoundTrip(t *testing.T) {
	d := chart.Dataset{
		Title: "Round trip",
		Series: []chart.Series{
			{ID: "a", Points: []chart.Point{
				{Name: "one", Value: ptr(1)},
				{Name: "gap", Value: nil},
			}},
		},
	}
	path := filepath.Join(t.TempDir(), "dataset.json")

	if err := ExportDataset(d, path); err != nil {
		t.Fatalf("ExportDataset() error = %v", err)
	}

	got, err := ImportDataset(path)
	if err != nil {
		t.Fatalf("ImportDataset() error = %v", err)
	}

	if got.Title != d.Title || len(got.Series) != 1 || len(got.Series[0].Points) != 2 {
		t.Fatalf("round trip lost structure: %+v", got)
	}
	if got.Series[0].Points[1].Value != nil {
		t.Error("null point value did not survive the round trip")
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	l := chart.Layout{
		Width:  400,
		Height: 300,
		Style:  chart.StyleGloss,
		Bubbles: []chart.Bubble{
			{SeriesID: "a", Index: 0, Label: "A", Value: 10, X: 200, Y: 150, R: 80},
		},
		Converged:  true,
		Iterations: 2,
	}
	path := filepath.Join(t.TempDir(), "layout.json")

	if err := ExportLayout(l, path); err != nil {
		t.Fatalf("ExportLayout() error = %v", err)
	}

	got, err := ImportLayout(path)
	if err != nil {
		t.Fatalf("ImportLayout() error = %v", err)
	}

	if got.Style != chart.StyleGloss || got.Iterations != 2 || !got.Converged {
		t.Errorf("round trip lost fields: %+v", got)
	}
	if len(got.Bubbles) != 1 || got.Bubbles[0] != l.Bubbles[0] {
		t.Errorf("Bubbles = %+v, want %+v", got.Bubbles, l.Bubbles)
	}
}

func TestImportDataset_NotFound(t *testing.T) {
	_, err := ImportDataset(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ImportDataset() error = %v, want %v", err, errors.ErrCodeFileNotFound)
	}
}

func TestImportDataset_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte(`{"series": [`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ImportDataset(path); err == nil {
		t.Error("ImportDataset() accepted malformed JSON")
	}
}

func TestExportLayout_RejectsDirectoryPath(t *testing.T) {
	l := chart.Layout{Width: 400, Height: 300}

	err := ExportLayout(l, t.TempDir()+"/")
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("ExportLayout() error = %v, want %v", err, errors.ErrCodeInvalidPath)
	}
}
