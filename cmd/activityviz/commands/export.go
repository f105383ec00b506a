package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/activityviz/pkg/observability"
	"github.com/Sumatoshi-tech/activityviz/pkg/snapshot"
)

// NewExportCommand creates the export subcommand.
func NewExportCommand(globals *GlobalFlags) *cobra.Command {
	var (
		output     string
		formatName string
		transform  string
		hourLabels string
	)

	cmd := &cobra.Command{
		Use:   "export <snapshot>",
		Short: "Export the computed grid, trends and summary",
		Long: `Export the visualization model (calendar grid, closed trend series and
summary) for use by other renderers.

The output format follows --format, else the output file extension, else JSON.`,
		Args: cobra.ExactArgs(1),
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

			format, err := exportFormat(formatName, output)
			if err != nil {
				return err
			}

			_, vis, err := e.visualize(args[0], opts)
			if err != nil {
				return err
			}

			if output == stdoutPath {
				return snapshot.Encode(cmd.OutOrStdout(), vis, format)
			}

			err = writeFile(output, func(w io.Writer) error { return snapshot.Encode(w, vis, format) })
			if err != nil {
				return err
			}

			e.logger.Info("visualization exported", "path", output, "format", format.String())

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", stdoutPath, `output file ("-" for stdout)`)
	cmd.Flags().StringVarP(&formatName, "format", "f", "", "output format: json, yaml or toml, with optional .lz4 suffix")
	addVisualizerFlags(cmd, &transform, &hourLabels)

	return cmd
}

func exportFormat(name, output string) (snapshot.Format, error) {
	if name != "" {
		return snapshot.ParseFormat(name)
	}

	if output == stdoutPath {
		return snapshot.Format{Encoding: snapshot.EncodingJSON}, nil
	}

	return snapshot.FormatFromPath(output)
}
