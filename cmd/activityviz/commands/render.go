package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/activityviz/pkg/observability"
	"github.com/Sumatoshi-tech/activityviz/pkg/plotpage"
	"github.com/Sumatoshi-tech/activityviz/pkg/report"
)

const (
	renderCmdUse      = "render <snapshot>"
	renderCmdShort    = "Render a snapshot as a standalone HTML report"
	renderArgCount    = 1
	renderDefaultPath = "activity.html"
	stdoutPath        = "-"
)

// NewRenderCommand creates the render subcommand.
func NewRenderCommand(globals *GlobalFlags) *cobra.Command {
	var (
		output     string
		theme      string
		title      string
		transform  string
		hourLabels string
	)

	cmd := &cobra.Command{
		Use:   renderCmdUse,
		Short: renderCmdShort,
		Long: `Render a commit-activity snapshot as a single HTML page with a
contribution calendar heat map and hour, weekday and month trend charts.

The snapshot format follows its extension (.json, .yaml, .toml, optionally
.lz4 compressed). Use "-" to read JSON from standard input.`,
		Args: cobra.ExactArgs(renderArgCount),
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

			if theme == "" {
				theme = e.cfg.Render.Theme
			}

			pageTheme, err := plotpage.ParseTheme(theme)
			if err != nil {
				return err
			}

			if title == "" {
				title = e.cfg.Render.Title
			}

			snap, vis, err := e.visualize(args[0], opts)
			if err != nil {
				return err
			}

			po := report.PageOptions{Title: title, Name: snap.Name, Theme: pageTheme}

			if output == stdoutPath {
				return report.WriteHTML(cmd.OutOrStdout(), vis, po)
			}

			err = writeFile(output, func(w io.Writer) error { return report.WriteHTML(w, vis, po) })
			if err != nil {
				return err
			}

			e.logger.Info("report written", "path", output, "year", vis.Year)

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", renderDefaultPath, `output HTML file ("-" for stdout)`)
	cmd.Flags().StringVar(&theme, "theme", "", "page theme: light or dark (default from config)")
	cmd.Flags().StringVar(&title, "title", "", "page title (default derived from snapshot name and year)")
	addVisualizerFlags(cmd, &transform, &hourLabels)

	return cmd
}

func addVisualizerFlags(cmd *cobra.Command, transform, hourLabels *string) {
	cmd.Flags().StringVar(transform, "transform", "", "intensity transform: sqrt or log (default from config)")
	cmd.Flags().StringVar(hourLabels, "hour-labels", "", "hour axis labels: numeric or clock (default from config)")
}

// writeFile creates path and streams write into it.
func writeFile(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	writeErr := write(f)

	closeErr := f.Close()
	if writeErr != nil {
		return writeErr
	}

	if closeErr != nil {
		return fmt.Errorf("close %s: %w", path, closeErr)
	}

	return nil
}
