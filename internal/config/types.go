package config

import (
	"time"

	"github.com/lydakis/dapx/dap"
)

// Defaults applied to fields left unset in config.toml.
const (
	DefaultIndent          = "  "
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultServeAddr       = "127.0.0.1:4711"
	DefaultShutdownTimeout = "10s"
	DefaultBodyLimit       = "1M"
)

// Config is the top-level dapx configuration.
type Config struct {
	// Pretty forces indented JSON output. Unset means indent only when
	// stdout is a terminal.
	Pretty       *bool  `toml:"pretty"`
	Indent       string `toml:"indent"`
	MaxDepth     int    `toml:"max_depth"`
	CheckHandles *bool  `toml:"check_handles"`
	LogLevel     string `toml:"log_level"`
	LogFormat    string `toml:"log_format"`

	Serve ServeConfig `toml:"serve"`

	// LaunchSources lists launch.json documents consulted after the
	// [launch.<name>] tables. Nil means the nearest .vscode/launch.json.
	LaunchSources []string `toml:"launch_sources"`
	// Launch holds named launch configurations, keyed as in launch.json.
	Launch map[string]LaunchConfig `toml:"launch"`
}

// ServeConfig configures the HTTP inspection service.
type ServeConfig struct {
	Addr            string `toml:"addr"`
	ShutdownTimeout string `toml:"shutdown_timeout"`
	BodyLimit       string `toml:"body_limit"`
}

// LaunchConfig is one debug configuration: the attribute set a client sends
// as launch request arguments.
type LaunchConfig map[string]any

// Codec returns the wire codec configured by max_depth and check_handles.
func (c *Config) Codec() dap.Codec {
	codec := dap.NewCodec()
	if c == nil {
		return codec
	}
	if c.MaxDepth > 0 {
		codec.MaxDepth = c.MaxDepth
	}
	if c.CheckHandles != nil {
		codec.CheckHandles = *c.CheckHandles
	}
	return codec
}

// ShutdownTimeoutDuration returns serve.shutdown_timeout as a duration. Validate
// rejects values that do not parse.
func (s ServeConfig) ShutdownTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(s.ShutdownTimeout)
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(DefaultShutdownTimeout)
	}
	return d
}

// Request returns the configuration's "request" attribute, "launch" when
// absent.
func (l LaunchConfig) Request() string {
	if v, ok := l["request"].(string); ok && v != "" {
		return v
	}
	return "launch"
}
