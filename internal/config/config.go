// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Loading functions accept context.Context as the first parameter.
// - Loading and validation errors wrap this package's sentinel kinds.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// ReadTimeoutMS and WriteTimeoutMS bound a single HTTP exchange.
	ReadTimeoutMS  int `koanf:"read_timeout_ms"`
	WriteTimeoutMS int `koanf:"write_timeout_ms"`

	// ShutdownTimeoutMS bounds graceful shutdown after SIGINT/SIGTERM.
	ShutdownTimeoutMS int `koanf:"shutdown_timeout_ms"`

	// CORSAllowedOrigins lists origins allowed to call /api/.
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`

	// MetricsEnabled toggles the Prometheus exposition on /healthz.
	MetricsEnabled bool `koanf:"metrics_enabled"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		LogFormat:          "text",
		Addr:               ":9080",
		ReadTimeoutMS:      10_000,
		WriteTimeoutMS:     10_000,
		ShutdownTimeoutMS:  30_000,
		CORSAllowedOrigins: []string{"*"},
		MetricsEnabled:     true,
	}
}
