package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
	"github.com/lydakis/dapx/internal/paths"
)

var envVarRe = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Default returns a config with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads the config file and returns the parsed Config.
// If the config file does not exist, it returns the defaults (no error).
func Load() (*Config, error) {
	return LoadFrom(paths.ConfigFile())
}

// LoadFrom reads and parses a config file at the given path.
func LoadFrom(path string) (*Config, error) {
	return loadFrom(path, true)
}

// LoadForEditFrom reads a config file without expanding ${ENV_VAR}
// placeholders, so saving it back does not bake in secrets.
func LoadForEditFrom(path string) (*Config, error) {
	return loadFrom(path, false)
}

func loadFrom(path string, expand bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	applyDefaults(&cfg)
	if expand {
		expandConfigEnvVars(&cfg)
	}
	return &cfg, nil
}

// ExampleConfigPath returns the default config file path (for help messages).
func ExampleConfigPath() string {
	return paths.ConfigFile()
}

func applyDefaults(cfg *Config) {
	if cfg.Indent == "" {
		cfg.Indent = DefaultIndent
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	if cfg.Serve.Addr == "" {
		cfg.Serve.Addr = DefaultServeAddr
	}
	if cfg.Serve.ShutdownTimeout == "" {
		cfg.Serve.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Serve.BodyLimit == "" {
		cfg.Serve.BodyLimit = DefaultBodyLimit
	}
	if cfg.Launch == nil {
		cfg.Launch = make(map[string]LaunchConfig)
	}
}

func expandConfigEnvVars(cfg *Config) {
	if cfg == nil {
		return
	}

	cfg.Serve.Addr = expandEnvVars(cfg.Serve.Addr)
	for i := range cfg.LaunchSources {
		cfg.LaunchSources[i] = expandEnvVars(cfg.LaunchSources[i])
	}
	for name, launch := range cfg.Launch {
		cfg.Launch[name] = expandLaunchEnvVars(launch)
	}
}

// ExpandLaunchForCurrentEnv returns a copy of launch with ${ENV_VAR}
// placeholders in string attributes expanded.
func ExpandLaunchForCurrentEnv(launch LaunchConfig) LaunchConfig {
	return expandLaunchEnvVars(cloneLaunchConfig(launch))
}

func expandLaunchEnvVars(launch LaunchConfig) LaunchConfig {
	for k, v := range launch {
		launch[k] = expandValue(v)
	}
	return launch
}

func expandValue(v any) any {
	switch val := v.(type) {
	case string:
		return expandEnvVars(val)
	case []any:
		for i := range val {
			val[i] = expandValue(val[i])
		}
		return val
	case map[string]any:
		for k := range val {
			val[k] = expandValue(val[k])
		}
		return val
	default:
		return v
	}
}

// expandEnvVars replaces ${VAR_NAME} with the value of the environment variable.
func expandEnvVars(s string) string {
	return envVarRe.ReplaceAllStringFunc(s, func(match string) string {
		name := envVarRe.FindStringSubmatch(match)[1]
		if val, ok := os.LookupEnv(name); ok {
			return val
		}
		return match // leave unresolved vars as-is
	})
}
