package cli

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/JustBeyond/packedbubble/pkg/cache"
	"github.com/JustBeyond/packedbubble/pkg/config"
	"github.com/JustBeyond/packedbubble/pkg/pipeline"
)

// layoutFlagCommand binds the layout flags to opts the way every
// layout-bearing command does, without running anything.
func layoutFlagCommand(opts *pipeline.Options) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Flags().Float64Var(&opts.Width, "width", opts.Width, "")
	cmd.Flags().Float64Var(&opts.Height, "height", opts.Height, "")
	cmd.Flags().StringVar(&opts.MinSize, "min-size", opts.MinSize, "")
	cmd.Flags().StringVar(&opts.MaxSize, "max-size", opts.MaxSize, "")
	cmd.Flags().StringVar(&opts.SizeBy, "size-by", opts.SizeBy, "")
	cmd.Flags().IntVar(&opts.MaxIterations, "max-iterations", opts.MaxIterations, "")
	return cmd
}

func TestOverlayLayoutConfig(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.Config.Layout = config.LayoutConfig{
		Width:         640,
		Height:        480,
		MinSize:       "5%",
		MaxSize:       "40%",
		SizeBy:        "width",
		MaxIterations: 32,
	}

	opts := pipeline.Options{}
	opts.SetLayoutDefaults()
	cmd := layoutFlagCommand(&opts)

	c.overlayLayoutConfig(cmd, &opts)

	if opts.Width != 640 {
		t.Errorf("Width = %v, want 640 from config", opts.Width)
	}
	if opts.Height != 480 {
		t.Errorf("Height = %v, want 480 from config", opts.Height)
	}
	if opts.MinSize != "5%" {
		t.Errorf("MinSize = %q, want 5%% from config", opts.MinSize)
	}
	if opts.MaxSize != "40%" {
		t.Errorf("MaxSize = %q, want 40%% from config", opts.MaxSize)
	}
	if opts.SizeBy != "width" {
		t.Errorf("SizeBy = %q, want width from config", opts.SizeBy)
	}
	if opts.MaxIterations != 32 {
		t.Errorf("MaxIterations = %d, want 32 from config", opts.MaxIterations)
	}
}

func TestOverlayLayoutConfigFlagWins(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.Config.Layout = config.LayoutConfig{Width: 640}

	opts := pipeline.Options{}
	opts.SetLayoutDefaults()
	cmd := layoutFlagCommand(&opts)

	if err := cmd.Flags().Set("width", "900"); err != nil {
		t.Fatalf("Set(width) error: %v", err)
	}

	c.overlayLayoutConfig(cmd, &opts)

	if opts.Width != 900 {
		t.Errorf("Width = %v, explicit flag should win over config", opts.Width)
	}
}

func TestOverlayLayoutConfigEmptyConfig(t *testing.T) {
	c := New(io.Discard, LogInfo)

	opts := pipeline.Options{}
	opts.SetLayoutDefaults()
	cmd := layoutFlagCommand(&opts)

	c.overlayLayoutConfig(cmd, &opts)

	if opts.Width != pipeline.DefaultWidth {
		t.Errorf("Width = %v, want default %v", opts.Width, pipeline.DefaultWidth)
	}
	if opts.SizeBy != pipeline.DefaultSizeBy {
		t.Errorf("SizeBy = %q, want default %q", opts.SizeBy, pipeline.DefaultSizeBy)
	}
}

func TestApplyRuntime(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.Config.Cache.Dir = "/tmp/chart-cache"
	c.Config.Cache.TTL = config.Duration{Duration: 48 * time.Hour}

	opts := pipeline.Options{}
	c.applyRuntime(&opts)

	if opts.Logger != c.Logger {
		t.Error("Logger not propagated")
	}
	if want := filepath.Join("/tmp/chart-cache", "http"); opts.CacheDir != want {
		t.Errorf("CacheDir = %q, want %q", opts.CacheDir, want)
	}
	if opts.CacheTTL != 48*time.Hour {
		t.Errorf("CacheTTL = %v, want 48h", opts.CacheTTL)
	}
}

func TestNewCacheDisabled(t *testing.T) {
	c := New(io.Discard, LogInfo)

	got, err := c.newCache(true)
	if err != nil {
		t.Fatalf("newCache(true) error: %v", err)
	}
	if _, ok := got.(*cache.NullCache); !ok {
		t.Errorf("newCache(true) = %T, want *cache.NullCache", got)
	}
}

func TestNewCacheFile(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.Config.Cache.Dir = t.TempDir()

	got, err := c.newCache(false)
	if err != nil {
		t.Fatalf("newCache(false) error: %v", err)
	}
	defer got.Close()

	if _, ok := got.(*cache.FileCache); !ok {
		t.Errorf("newCache(false) = %T, want *cache.FileCache", got)
	}
}
