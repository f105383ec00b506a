package commands

import (
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/activityviz/pkg/observability"
	"github.com/Sumatoshi-tech/activityviz/pkg/report"
	"github.com/Sumatoshi-tech/activityviz/pkg/terminal"
)

// NewShowCommand creates the show subcommand.
func NewShowCommand(globals *GlobalFlags) *cobra.Command {
	var (
		colorMode  string
		width      int
		transform  string
		hourLabels string
	)

	cmd := &cobra.Command{
		Use:   "show <snapshot>",
		Short: "Print a snapshot's calendar and trends to the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(globals, observability.ModeCLI)
			if err != nil {
				return err
			}
			defer e.close()

			opts, err := e.options(transform, hourLabels)
			if err != nil {
				return err
			}

			if colorMode == "" {
				colorMode = e.cfg.Render.Color
			}

			mode, err := terminal.ParseColorMode(colorMode)
			if err != nil {
				return err
			}

			snap, vis, err := e.visualize(args[0], opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			cfg := terminal.NewConfig(out, mode)
			if width > 0 {
				cfg.Width = terminal.ClampWidth(width)
			}

			return report.WriteText(out, vis, report.TextOptions{Name: snap.Name, Config: cfg})
		},
	}

	cmd.Flags().StringVar(&colorMode, "color", "", "color output: auto, always or never (default from config)")
	cmd.Flags().IntVar(&width, "width", 0, "output width in columns (default: terminal width)")
	addVisualizerFlags(cmd, &transform, &hourLabels)

	return cmd
}
