// Package main provides the entry point for the activityviz CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/activityviz/cmd/activityviz/commands"
	"github.com/Sumatoshi-tech/activityviz/pkg/version"
)

func main() {
	version.InitBinaryVersion()

	err := newRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(commands.ExitCode(err))
	}
}

func newRootCommand() *cobra.Command {
	var globals commands.GlobalFlags

	rootCmd := &cobra.Command{
		Use:   "activityviz",
		Short: "Activityviz - commit activity calendar and trend visualizer",
		Long: `Activityviz turns per-day, per-hour, per-weekday and per-month commit
counts into a contribution calendar heat map and trend charts.

Commands:
  render    Standalone HTML report
  show      Terminal calendar and trends
  export    Visualization model as JSON, YAML or TOML
  validate  Schema check for snapshots
  serve     HTML preview and JSON API
  mcp       MCP server on stdio`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&globals.ConfigPath, "config", "c", "", "config file (default: ./config.yaml if present)")
	rootCmd.PersistentFlags().BoolVarP(&globals.Verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&globals.Quiet, "quiet", "q", false, "suppress output")

	rootCmd.AddCommand(commands.NewRenderCommand(&globals))
	rootCmd.AddCommand(commands.NewShowCommand(&globals))
	rootCmd.AddCommand(commands.NewExportCommand(&globals))
	rootCmd.AddCommand(commands.NewValidateCommand(&globals))
	rootCmd.AddCommand(commands.NewServeCommand(&globals))
	rootCmd.AddCommand(commands.NewMCPCommand(&globals))
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
