// Package cli implements the packedbubble command-line interface.
//
// This package provides commands for computing packed-bubble layouts from
// datasets, rendering them to various formats, serving the HTTP API, and
// managing the local cache. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - layout: Compute a packed-bubble layout from a dataset
//   - render: Render a dataset or precomputed layout to SVG, PNG, PDF, JSON, or DOT
//   - serve: Run the HTTP API server
//   - inspect: Browse a dataset's series interactively
//   - cache: Manage the layout and HTTP response caches
//
// # Configuration
//
// An optional packedbubble.toml file overlays the built-in defaults; explicit
// command-line flags always win. See the config package for the file format.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging and --quiet (-q)
// to suppress everything below warnings. User-facing output goes through the
// lipgloss printers in ui.go, not the logger.
package cli

import (
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/JustBeyond/packedbubble/pkg/cache"
	"github.com/JustBeyond/packedbubble/pkg/config"
	"github.com/JustBeyond/packedbubble/pkg/pipeline"
	"github.com/JustBeyond/packedbubble/pkg/source"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "packedbubble"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
	LogWarn  = log.WarnLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *config.Config
}

// New creates a new CLI instance with a default logger and an empty config.
// The config is replaced when the root command resolves packedbubble.toml.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: &config.Config{},
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	store, err := c.newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, c.Logger), nil
}

func (c *CLI) newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := c.cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory: the configured one when set,
// otherwise the XDG default (~/.cache/packedbubble/).
func (c *CLI) cacheDir() (string, error) {
	if c.Config != nil && c.Config.Cache.Dir != "" {
		return c.Config.Cache.Dir, nil
	}
	return defaultCacheDir()
}

// defaultCacheDir returns the cache directory using the XDG standard.
func defaultCacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// inputBase derives a local artifact base name from an input reference.
// URLs keep only the final path element; stdin becomes "chart". A trailing
// ".layout" marker is stripped so rendering fruit.layout.json produces
// fruit.svg, not fruit.layout.svg.
func inputBase(input string) string {
	if input == "-" {
		return "chart"
	}
	if source.IsURL(input) {
		name := "chart"
		if u, err := url.Parse(input); err == nil {
			if b := path.Base(u.Path); b != "." && b != "/" && b != "" {
				name = b
			}
		}
		input = name
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return strings.TrimSuffix(base, ".layout")
}

// =============================================================================
// Options Helpers
// =============================================================================

/// applyRuntime fills the runtime option fields shared by every command:
// the logger and the HTTP response cache location under the cache root.
func (c *CLI) applyRuntime(opts *pipeline.Options) {
	opts.Logger = c.Logger
	if dir, err := c.cacheDir(); err == nil {
		opts.CacheDir = filepath.Join(dir, "http")
	}
	opts.CacheTTL = c.Config.Cache.TTL.Duration
}

// overlayLayoutConfig applies [layout] config values to flags the user did
// not set explicitly. Flags win over config; config wins over defaults.
func (c *CLI) overlayLayoutConfig(cmd *cobra.Command, opts *pipeline.Options) {
	lc := c.Config.Layout
	flags := cmd.Flags()

	if !flags.Changed("width") && lc.Width > 0 {
		opts.Width = lc.Width
	}
	if !flags.Changed("height") && lc.Height > 0 {
		opts.Height = lc.Height
	}
	if !flags.Changed("min-size") && lc.MinSize != "" {
		opts.MinSize = lc.MinSize
	}
	if !flags.Changed("max-size") && lc.MaxSize != "" {
		opts.MaxSize = lc.MaxSize
	}
	if !flags.Changed("size-by") && lc.SizeBy != "" {
		opts.SizeBy = lc.SizeBy
	}
	if !flags.Changed("max-iterations") && lc.MaxIterations > 0 {
		opts.MaxIterations = lc.MaxIterations
	}
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.DefaultFormat}
	}
	parts := strings.Split(s, ",")
	formats := make([]string, 0, len(parts))
	for _, p := range parts {
		if f := strings.TrimSpace(p); f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}
