package config

import (
	"errors"
	"fmt"
	"net"
	"sort"
	"strings"
	"time"

	"github.com/labstack/gommon/bytes"
	"github.com/sirupsen/logrus"
)

// Validate checks configuration invariants and returns actionable errors.
func Validate(cfg *Config) error {
	if cfg == nil {
		return nil
	}

	var errs []error

	if cfg.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("max_depth: must not be negative, got %d", cfg.MaxDepth))
	}
	if strings.Trim(cfg.Indent, " \t") != "" {
		errs = append(errs, fmt.Errorf("indent: must contain only spaces or tabs, got %q", cfg.Indent))
	}
	if cfg.LogLevel != "" {
		if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
			errs = append(errs, fmt.Errorf("log_level: %w", err))
		}
	}
	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log_format: must be text or json, got %q", cfg.LogFormat))
	}

	errs = append(errs, validateServe(cfg.Serve)...)

	for i, src := range cfg.LaunchSources {
		if strings.TrimSpace(src) == "" {
			errs = append(errs, fmt.Errorf("launch_sources[%d]: empty path", i))
		}
	}

	names := make([]string, 0, len(cfg.Launch))
	for name := range cfg.Launch {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		errs = append(errs, validateLaunch(name, cfg.Launch[name])...)
	}

	return errors.Join(errs...)
}

// ValidateForCurrentEnv checks config invariants after expanding ${ENV_VAR}
// placeholders against the current process environment.
func ValidateForCurrentEnv(cfg *Config) error {
	if cfg == nil {
		return nil
	}

	expanded := cloneConfig(cfg)
	expandConfigEnvVars(expanded)
	return Validate(expanded)
}

func validateServe(srv ServeConfig) []error {
	var errs []error

	if srv.Addr != "" {
		if _, _, err := net.SplitHostPort(srv.Addr); err != nil {
			errs = append(errs, fmt.Errorf("serve.addr: invalid address %q: %w", srv.Addr, err))
		}
	}

	if srv.ShutdownTimeout != "" {
		d, err := time.ParseDuration(srv.ShutdownTimeout)
		if err != nil {
			errs = append(errs, fmt.Errorf("serve.shutdown_timeout: invalid duration %q: %w", srv.ShutdownTimeout, err))
		} else if d <= 0 {
			errs = append(errs, fmt.Errorf("serve.shutdown_timeout: must be > 0, got %q", srv.ShutdownTimeout))
		}
	}

	if srv.BodyLimit != "" {
		n, err := bytes.Parse(srv.BodyLimit)
		if err != nil {
			errs = append(errs, fmt.Errorf("serve.body_limit: invalid size %q: %w", srv.BodyLimit, err))
		} else if n <= 0 {
			errs = append(errs, fmt.Errorf("serve.body_limit: must be > 0, got %q", srv.BodyLimit))
		}
	}

	return errs
}

func validateLaunch(name string, launch LaunchConfig) []error {
	var errs []error

	if raw, ok := launch["request"]; ok {
		req, isString := raw.(string)
		switch {
		case !isString:
			errs = append(errs, fmt.Errorf("launch.%s.request: must be a string, got %T", name, raw))
		case req != "launch" && req != "attach":
			errs = append(errs, fmt.Errorf("launch.%s.request: must be launch or attach, got %q", name, req))
		}
	}
	if raw, ok := launch["noDebug"]; ok {
		if _, isBool := raw.(bool); !isBool {
			errs = append(errs, fmt.Errorf("launch.%s.noDebug: must be a boolean, got %T", name, raw))
		}
	}

	return errs
}

func cloneConfig(cfg *Config) *Config {
	if cfg == nil {
		return nil
	}

	cloned := *cfg
	cloned.LaunchSources = append([]string(nil), cfg.LaunchSources...)
	if cfg.LaunchSources == nil {
		cloned.LaunchSources = nil
	}
	cloned.Launch = make(map[string]LaunchConfig, len(cfg.Launch))
	for name, launch := range cfg.Launch {
		cloned.Launch[name] = cloneLaunchConfig(launch)
	}
	return &cloned
}

func cloneLaunchConfig(launch LaunchConfig) LaunchConfig {
	if launch == nil {
		return nil
	}
	out := make(LaunchConfig, len(launch))
	for k, v := range launch {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case []any:
		out := make([]any, len(val))
		for i := range val {
			out[i] = cloneValue(val[i])
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k := range val {
			out[k] = cloneValue(val[k])
		}
		return out
	default:
		return v
	}
}
