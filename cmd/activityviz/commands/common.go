// Package commands implements the activityviz CLI subcommands.
package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Sumatoshi-tech/activityviz/pkg/activity"
	"github.com/Sumatoshi-tech/activityviz/pkg/config"
	"github.com/Sumatoshi-tech/activityviz/pkg/observability"
	"github.com/Sumatoshi-tech/activityviz/pkg/snapshot"
	"github.com/Sumatoshi-tech/activityviz/pkg/version"
)

// Exit codes.
const (
	ExitFailure = 1
	ExitInvalid = 2
)

// GlobalFlags holds the root command's persistent flags.
type GlobalFlags struct {
	ConfigPath string
	Verbose    bool
	Quiet      bool
}

// ExitError makes the process exit with Code instead of the default failure code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code for err.
func ExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitFailure
}

// env is the per-invocation runtime shared by subcommands.
type env struct {
	cfg       *config.Config
	providers observability.Providers
	logger    *slog.Logger
}

func setup(globals *GlobalFlags, mode observability.AppMode) (*env, error) {
	cfg, err := config.LoadConfig(globals.ConfigPath)
	if err != nil {
		return nil, err
	}

	obsCfg := cfg.Observability(mode, version.Version)

	// stdout carries the MCP protocol; logs stay machine-readable on stderr.
	if mode == observability.ModeMCP {
		obsCfg.LogJSON = true
	}

	switch {
	case globals.Verbose:
		obsCfg.LogLevel = slog.LevelDebug
	case globals.Quiet:
		obsCfg.LogLevel = slog.LevelWarn
	}

	providers, err := observability.Init(obsCfg)
	if err != nil {
		return nil, fmt.Errorf("init observability: %w", err)
	}

	return &env{cfg: cfg, providers: providers, logger: providers.Logger}, nil
}

func (e *env) close() {
	err := e.providers.Shutdown(context.Background())
	if err != nil {
		e.logger.Warn("observability shutdown failed", "error", err)
	}
}

// options merges flag overrides over the configured visualizer settings.
func (e *env) options(transform, hourLabels string) (activity.Options, error) {
	opts, err := e.cfg.Visualizer.Options()
	if err != nil {
		return activity.Options{}, err
	}

	if transform != "" {
		opts.Transform, err = activity.ParseTransform(transform)
		if err != nil {
			return activity.Options{}, err
		}
	}

	if hourLabels != "" {
		opts.HourLabels, err = activity.ParseHourLabelStyle(hourLabels)
		if err != nil {
			return activity.Options{}, err
		}
	}

	return opts, nil
}

// visualize loads the snapshot at path and derives its visualization.
func (e *env) visualize(path string, opts activity.Options) (*snapshot.Snapshot, *activity.Visualization, error) {
	snap, err := snapshot.Load(path)
	if err != nil {
		return nil, nil, err
	}

	vis, err := activity.New(opts).Visualize(snap.Input())
	if err != nil {
		return nil, nil, fmt.Errorf("visualize %s: %w", path, err)
	}

	e.logger.Debug("visualized snapshot",
		"path", path,
		"year", vis.Year,
		"transform", vis.Transform.String(),
		"commits", vis.Summary.Total,
	)

	return snap, vis, nil
}
