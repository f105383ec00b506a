package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/activityviz/pkg/alg/stats"
	"github.com/Sumatoshi-tech/activityviz/pkg/observability"
	"github.com/Sumatoshi-tech/activityviz/pkg/snapshot"
	"github.com/Sumatoshi-tech/activityviz/pkg/terminal"
)

const (
	markValid   = "✓"
	markInvalid = "✗"
)

// ErrNoSnapshot is returned when validate gets neither a snapshot nor --print-schema.
var ErrNoSnapshot = errors.New("snapshot path is required")

// NewValidateCommand creates the validate subcommand.
func NewValidateCommand(globals *GlobalFlags) *cobra.Command {
	var (
		printSchema bool
		colorMode   string
	)

	cmd := &cobra.Command{
		Use:   "validate <snapshot>",
		Short: "Check a snapshot against the input schema",
		Long: `Check a snapshot against the input schema and report every violation.

Exits with status 2 when the snapshot is readable but invalid.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if printSchema {
				_, err := out.Write(snapshot.Schema())

				return err
			}

			if len(args) == 0 {
				return ErrNoSnapshot
			}

			e, err := setup(globals, observability.ModeCLI)
			if err != nil {
				return err
			}
			defer e.close()

			if colorMode == "" {
				colorMode = e.cfg.Render.Color
			}

			mode, err := terminal.ParseColorMode(colorMode)
			if err != nil {
				return err
			}

			e.logger.Debug("validating snapshot", "path", args[0])

			return runValidate(out, terminal.NewConfig(out, mode), args[0])
		},
	}

	cmd.Flags().BoolVar(&printSchema, "print-schema", false, "print the JSON schema and exit")
	cmd.Flags().StringVar(&colorMode, "color", "", "color output: auto, always or never (default from config)")

	return cmd
}

func runValidate(w io.Writer, cfg terminal.Config, path string) error {
	snap, err := snapshot.Load(path)

	var schemaErr *snapshot.SchemaError

	switch {
	case errors.As(err, &schemaErr):
		fmt.Fprintf(w, "%s %s: %d violation(s)\n",
			cfg.Colorize(markInvalid, terminal.ColorRed), path, len(schemaErr.Violations))

		for _, v := range schemaErr.Violations {
			fmt.Fprintf(w, "  - %s: %s\n", cfg.Colorize(v.Field, terminal.ColorBold), v.Description)
		}

		return &ExitError{Code: ExitInvalid, Err: fmt.Errorf("%s: %w", path, err)}
	case err != nil:
		return err
	}

	fmt.Fprintf(w, "%s %s: valid snapshot for %d (%d days, %s commits)\n",
		cfg.Colorize(markValid, terminal.ColorGreen), path, snap.Year,
		len(snap.CommitsPerDay), humanize.Comma(int64(stats.Sum(snap.CommitsPerDay))))

	return nil
}
