// Package cmd implements the cellkit CLI commands.
//
// The root command dispatches to run (the interactive dashboard), layout
// (a one-frame dump for inspection without a terminal) and version.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/cellkit/cmd/cellkit/internal/config"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

type rootOptions struct {
	configPath string
}

// NewRootCommand returns the cellkit command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "cellkit",
		Short: "cellkit - terminal dashboards from stateful components",
		Long: `cellkit renders a dashboard of bordered panels in the terminal.

Panels are read from cellkit.yaml in the working directory, or from the
file given with --config. Without a config a default dashboard is shown.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default ./"+config.FileName+")")

	root.AddCommand(
		newRunCommand(opts),
		newLayoutCommand(opts),
		newVersionCommand(),
	)
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	err := NewRootCommand().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func (o *rootOptions) resolve() (*config.Resolved, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return config.Resolve(dir, o.configPath)
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cellkit version %s (built %s)\n", Version, BuildTime)
		},
	}
}
