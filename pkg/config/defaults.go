package config

// Visualizer defaults.
const (
	DefaultTransform  = "sqrt"
	DefaultHourLabels = "numeric"
)

// Render defaults.
const (
	DefaultTheme = "light"
	DefaultColor = "auto"
)

// Server defaults.
const (
	DefaultHost            = "127.0.0.1"
	DefaultPort            = 8080
	DefaultReadTimeout     = "10s"
	DefaultWriteTimeout    = "30s"
	DefaultIdleTimeout     = "60s"
	DefaultShutdownTimeout = "10s"
	DefaultMaxSnapshotSize = "1MB"
	DefaultCacheEntries    = 64
)

// Logging defaults.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Telemetry defaults.
const (
	DefaultEnvironment = "dev"
	DefaultSampleRatio = 1.0
)
