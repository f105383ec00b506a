package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/activityviz/pkg/config"
	"github.com/Sumatoshi-tech/activityviz/pkg/observability"
	"github.com/Sumatoshi-tech/activityviz/pkg/plotpage"
	"github.com/Sumatoshi-tech/activityviz/pkg/server"
)

// NewServeCommand creates the serve subcommand.
func NewServeCommand(globals *GlobalFlags) *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve [snapshot]",
		Short: "Serve an HTML preview and JSON API",
		Long: `Start a read-only preview server.

With a snapshot argument, GET / renders it and GET /api/visualization returns
its model; the file is re-read on every request. POST /api/visualization and
POST /api/render accept snapshots in the request body.

Health probes are served at /healthz and /readyz; /metrics is served when
telemetry.prometheus is enabled.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(globals, observability.ModeServe)
			if err != nil {
				return err
			}
			defer e.close()

			opts, err := e.cfg.Visualizer.Options()
			if err != nil {
				return err
			}

			theme, err := plotpage.ParseTheme(e.cfg.Render.Theme)
			if err != nil {
				return err
			}

			maxBody, err := e.cfg.Server.MaxSnapshotBytes()
			if err != nil {
				return err
			}

			red, err := observability.NewREDMetrics(e.providers.Meter)
			if err != nil {
				return err
			}

			deps := server.Deps{
				Logger:         e.logger,
				Tracer:         e.providers.Tracer,
				Metrics:        red,
				MetricsHandler: e.providers.MetricsHandler,
				Visualizer:     opts,
				Theme:          theme,
				Title:          e.cfg.Render.Title,
				MaxBodyBytes:   maxBody,
				CacheEntries:   e.cfg.Server.CacheEntries,
			}

			if len(args) > 0 {
				deps.Source = server.FileSource(args[0])
			}

			srvCfg := e.cfg.Server
			if cmd.Flags().Changed("host") {
				srvCfg.Host = host
			}

			if cmd.Flags().Changed("port") {
				srvCfg.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(deps).Run(ctx, srvCfg.Addr(), server.Timeouts{
				Read:     srvCfg.ReadTimeout,
				Write:    srvCfg.WriteTimeout,
				Idle:     srvCfg.IdleTimeout,
				Shutdown: srvCfg.ShutdownTimeout,
			})
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "listen host (default from config)")
	cmd.Flags().IntVarP(&port, "port", "p", config.DefaultPort, "listen port (overrides config)")

	return cmd
}
