package commands

import (
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/activityviz/pkg/mcp"
	"github.com/Sumatoshi-tech/activityviz/pkg/observability"
)

// NewMCPCommand creates the MCP server command.
func NewMCPCommand(globals *GlobalFlags) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for AI agent integration",
		Long: `Start a Model Context Protocol (MCP) server on stdio transport.

The server exposes the visualizer as tools that AI agents can discover and invoke:
  - activity_visualize: calendar grid, closed trend series and summary
  - activity_summary: headline statistics only
  - activity_calendar: plain-text calendar heat map, summary table and trend bars`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if debug {
				globals.Verbose = true
			}

			e, err := setup(globals, observability.ModeMCP)
			if err != nil {
				return err
			}
			defer e.close()

			opts, err := e.cfg.Visualizer.Options()
			if err != nil {
				return err
			}

			red, err := observability.NewREDMetrics(e.providers.Meter)
			if err != nil {
				return err
			}

			srv := mcp.NewServer(mcp.ServerDeps{
				Logger:   e.logger,
				Metrics:  red,
				Tracer:   e.providers.Tracer,
				Defaults: opts,
			})

			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging to stderr")

	return cmd
}
