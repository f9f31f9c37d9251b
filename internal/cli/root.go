package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// rootFlags exposes the persistent flags to subcommands.
type rootFlags struct {
	config *string
	debug  *bool
}

func (f *rootFlags) deps() (*appDeps, error) {
	return newAppDeps(*f.config, *f.debug)
}

func newRootCmd() *cobra.Command {
	var cfgPath string
	var debug bool

	cmd := &cobra.Command{
		Use:          "pixels",
		Short:        "Client for the Pixels canvas API",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to pixels.yaml (optional; autodetected if omitted)")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .pixels/logs/pixels.log")

	rf := &rootFlags{config: &cfgPath, debug: &debug}
	cmd.AddCommand(
		sizeCmd(rf),
		getCmd(rf),
		inspectCmd(rf),
		setCmd(rf),
		showCmd(rf),
		snapshotCmd(rf),
		watchCmd(rf),
		versionCmd(),
	)
	return cmd
}
