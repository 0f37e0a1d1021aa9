package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JustBeyond/packedbubble/pkg/buildinfo"
	"github.com/JustBeyond/packedbubble/pkg/config"
)

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "packedbubble",
		Short: "Packedbubble lays out and renders packed-bubble charts",
		Long: `Packedbubble turns weighted datasets into deterministic packed-bubble charts.

Bubbles are sized from point values, packed in a spiral around the frame
center, and the cluster is rescaled until it fits the frame. The same
dataset always produces the same layout. Layouts and rendered artifacts
are cached locally for fast repeat runs.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig(configPath)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: packedbubble.toml in . or the XDG config dir)")

	// Register all subcommands
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())
	root.AddCommand(c.versionCommand())

	return root
}

// loadConfig resolves the configuration file before any command runs.
// An explicit --config path must exist; the default locations may not.
func (c *CLI) loadConfig(path string) error {
	if path == "" {
		cfg, err := config.LoadDefault()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		c.Config = cfg
		return nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	c.Config = cfg
	return nil
}

// versionCommand creates the version command printing full build information.
func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}
