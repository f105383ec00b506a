// Package config loads activityviz configuration from a YAML file,
// ACTIVITYVIZ_* environment variables and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"

	"github.com/Sumatoshi-tech/activityviz/pkg/activity"
	"github.com/Sumatoshi-tech/activityviz/pkg/observability"
	"github.com/Sumatoshi-tech/activityviz/pkg/plotpage"
	"github.com/Sumatoshi-tech/activityviz/pkg/terminal"
)

// Sentinel validation errors.
var (
	ErrInvalidPort            = errors.New("invalid server port")
	ErrInvalidTimeout         = errors.New("server timeouts must be positive")
	ErrInvalidSnapshotSize    = errors.New("invalid max snapshot size")
	ErrInvalidCacheSize       = errors.New("cache entries must be positive")
	ErrInvalidLogFormat       = errors.New("invalid log format")
	ErrInvalidSampleRatio     = errors.New("sample ratio must be within [0, 1]")
	ErrInvalidVisualizerValue = errors.New("invalid visualizer setting")
	ErrInvalidRenderValue     = errors.New("invalid render setting")
)

const (
	envPrefix = "ACTIVITYVIZ"
	maxPort   = 65535
)

// Config holds all configuration for activityviz.
type Config struct {
	Visualizer VisualizerConfig `mapstructure:"visualizer"`
	Render     RenderConfig     `mapstructure:"render"`
	Server     ServerConfig     `mapstructure:"server"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Telemetry  TelemetryConfig  `mapstructure:"telemetry"`
}

// VisualizerConfig selects the intensity transform and hour label style.
type VisualizerConfig struct {
	Transform  string `mapstructure:"transform"`
	HourLabels string `mapstructure:"hour_labels"`
}

// RenderConfig holds report rendering settings.
type RenderConfig struct {
	Theme string `mapstructure:"theme"`
	Title string `mapstructure:"title"`
	Color string `mapstructure:"color"`
}

// ServerConfig holds preview server settings.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxSnapshotSize string        `mapstructure:"max_snapshot_size"`
	CacheEntries    int           `mapstructure:"cache_entries"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// TelemetryConfig holds OpenTelemetry export settings.
type TelemetryConfig struct {
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	OTLPInsecure bool    `mapstructure:"otlp_insecure"`
	OTLPHeaders  string  `mapstructure:"otlp_headers"`
	Environment  string  `mapstructure:"environment"`
	SampleRatio  float64 `mapstructure:"sample_ratio"`
	Prometheus   bool    `mapstructure:"prometheus"`
}

// LoadConfig loads configuration from file and environment variables. An
// empty configPath searches ".", "./config" and "/etc/activityviz" for
// config.yaml; a missing file there is not an error.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("config")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("./config")
		viperCfg.AddConfigPath("/etc/activityviz")
	}

	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	return &Config{
		Visualizer: VisualizerConfig{Transform: DefaultTransform, HourLabels: DefaultHourLabels},
		Render:     RenderConfig{Theme: DefaultTheme, Color: DefaultColor},
		Server: ServerConfig{
			Host:            DefaultHost,
			Port:            DefaultPort,
			ReadTimeout:     mustDuration(DefaultReadTimeout),
			WriteTimeout:    mustDuration(DefaultWriteTimeout),
			IdleTimeout:     mustDuration(DefaultIdleTimeout),
			ShutdownTimeout: mustDuration(DefaultShutdownTimeout),
			MaxSnapshotSize: DefaultMaxSnapshotSize,
			CacheEntries:    DefaultCacheEntries,
		},
		Logging:   LoggingConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
		Telemetry: TelemetryConfig{Environment: DefaultEnvironment, SampleRatio: DefaultSampleRatio},
	}
}

func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("visualizer.transform", DefaultTransform)
	viperCfg.SetDefault("visualizer.hour_labels", DefaultHourLabels)

	viperCfg.SetDefault("render.theme", DefaultTheme)
	viperCfg.SetDefault("render.title", "")
	viperCfg.SetDefault("render.color", DefaultColor)

	viperCfg.SetDefault("server.host", DefaultHost)
	viperCfg.SetDefault("server.port", DefaultPort)
	viperCfg.SetDefault("server.read_timeout", DefaultReadTimeout)
	viperCfg.SetDefault("server.write_timeout", DefaultWriteTimeout)
	viperCfg.SetDefault("server.idle_timeout", DefaultIdleTimeout)
	viperCfg.SetDefault("server.shutdown_timeout", DefaultShutdownTimeout)
	viperCfg.SetDefault("server.max_snapshot_size", DefaultMaxSnapshotSize)
	viperCfg.SetDefault("server.cache_entries", DefaultCacheEntries)

	viperCfg.SetDefault("logging.level", DefaultLogLevel)
	viperCfg.SetDefault("logging.format", DefaultLogFormat)

	viperCfg.SetDefault("telemetry.otlp_endpoint", "")
	viperCfg.SetDefault("telemetry.otlp_insecure", false)
	viperCfg.SetDefault("telemetry.otlp_headers", "")
	viperCfg.SetDefault("telemetry.environment", DefaultEnvironment)
	viperCfg.SetDefault("telemetry.sample_ratio", DefaultSampleRatio)
	viperCfg.SetDefault("telemetry.prometheus", false)
}

func validateConfig(config *Config) error {
	_, err := config.Visualizer.Options()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidVisualizerValue, err)
	}

	_, err = plotpage.ParseTheme(config.Render.Theme)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRenderValue, err)
	}

	_, err = terminal.ParseColorMode(config.Render.Color)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRenderValue, err)
	}

	if config.Server.Port <= 0 || config.Server.Port > maxPort {
		return fmt.Errorf("%w: %d", ErrInvalidPort, config.Server.Port)
	}

	if config.Server.ReadTimeout <= 0 || config.Server.WriteTimeout <= 0 ||
		config.Server.IdleTimeout <= 0 || config.Server.ShutdownTimeout <= 0 {
		return ErrInvalidTimeout
	}

	_, err = config.Server.MaxSnapshotBytes()
	if err != nil {
		return err
	}

	if config.Server.CacheEntries <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCacheSize, config.Server.CacheEntries)
	}

	_, err = observability.ParseLogLevel(config.Logging.Level)
	if err != nil {
		return err
	}

	switch strings.ToLower(config.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q (want text or json)", ErrInvalidLogFormat, config.Logging.Format)
	}

	if config.Telemetry.SampleRatio < 0 || config.Telemetry.SampleRatio > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRatio, config.Telemetry.SampleRatio)
	}

	return nil
}

// Options resolves the visualizer settings to core options.
func (v VisualizerConfig) Options() (activity.Options, error) {
	transform, err := activity.ParseTransform(v.Transform)
	if err != nil {
		return activity.Options{}, err
	}

	hourLabels, err := activity.ParseHourLabelStyle(v.HourLabels)
	if err != nil {
		return activity.Options{}, err
	}

	return activity.Options{Transform: transform, HourLabels: hourLabels}, nil
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// MaxSnapshotBytes parses MaxSnapshotSize ("1MB", "512KiB", "2048").
func (s ServerConfig) MaxSnapshotBytes() (int64, error) {
	size, err := humanize.ParseBytes(strings.TrimSpace(s.MaxSnapshotSize))
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidSnapshotSize, s.MaxSnapshotSize, err)
	}

	if size == 0 || size > 1<<40 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSnapshotSize, s.MaxSnapshotSize)
	}

	return int64(size), nil
}

// Observability builds the telemetry configuration for the given mode.
// Level and format are assumed validated by LoadConfig.
func (c *Config) Observability(mode observability.AppMode, version string) observability.Config {
	cfg := observability.DefaultConfig()
	cfg.ServiceVersion = version
	cfg.Mode = mode
	cfg.Environment = c.Telemetry.Environment
	cfg.OTLPEndpoint = c.Telemetry.OTLPEndpoint
	cfg.OTLPInsecure = c.Telemetry.OTLPInsecure
	cfg.OTLPHeaders = observability.ParseOTLPHeaders(c.Telemetry.OTLPHeaders)
	cfg.SampleRatio = c.Telemetry.SampleRatio
	cfg.Prometheus = c.Telemetry.Prometheus
	cfg.LogJSON = strings.EqualFold(c.Logging.Format, "json")

	level, err := observability.ParseLogLevel(c.Logging.Level)
	if err == nil {
		cfg.LogLevel = level
	}

	return cfg
}

func mustDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		panic(err)
	}

	return d
}
