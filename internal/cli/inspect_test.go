package cli

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/JustBeyond/packedbubble/pkg/chart"
	"github.com/JustBeyond/packedbubble/pkg/pipeline"
)

func TestRunInspectRejectsStdin(t *testing.T) {
	c := New(io.Discard, LogInfo)

	err := c.runInspect(context.Background(), "-", pipeline.Options{})
	if err == nil {
		t.Fatal("inspect from stdin should fail")
	}
	if !strings.Contains(err.Error(), "stdin") {
		t.Errorf("error %q should mention stdin", err)
	}
}

func TestSeriesRange(t *testing.T) {
	s := chart.Series{
		Points: []chart.Point{
			{Name: "a", Value: floatPtr(3)},
			{Name: "b", Value: nil},
			{Name: "c", Value: floatPtr(1)},
			{Name: "d", Value: floatPtr(5)},
		},
	}

	min, max, ok := seriesRange(s)
	if !ok {
		t.Fatal("seriesRange() ok = false, want true")
	}
	if min != 1 {
		t.Errorf("min = %v, want 1", min)
	}
	if max != 5 {
		t.Errorf("max = %v, want 5", max)
	}
}

func TestSeriesRangeAllNull(t *testing.T) {
	s := chart.Series{
		Points: []chart.Point{
			{Name: "a", Value: nil},
			{Name: "b", Value: nil},
		},
	}

	if _, _, ok := seriesRange(s); ok {
		t.Error("seriesRange() ok = true for all-null series, want false")
	}
}
