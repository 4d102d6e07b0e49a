package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/lydakis/dapx/dap"
	"github.com/lydakis/dapx/internal/paths"
	"github.com/tailscale/hujson"
)

// launchDocument is the .vscode/launch.json shape.
type launchDocument struct {
	Version        string         `json:"version"`
	Configurations []LaunchConfig `json:"configurations"`
}

// LoadLaunchConfigs returns every named launch configuration: the
// [launch.<name>] tables of cfg first, then the configurations of each launch
// source in order. The first definition of a name wins. Missing sources are
// skipped; unreadable ones are reported together with whatever did load.
func LoadLaunchConfigs(cfg *Config, cwd string) (map[string]LaunchConfig, error) {
	out := make(map[string]LaunchConfig)
	if cfg != nil {
		for name, launch := range cfg.Launch {
			out[name] = launch
		}
	}

	var errs []error
	for _, path := range launchSourcePathsForCWD(cfg, cwd) {
		found, err := loadLaunchFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		for name, launch := range found {
			if _, exists := out[name]; exists {
				continue
			}
			out[name] = ExpandLaunchForCurrentEnv(launch)
		}
	}

	return out, errors.Join(errs...)
}

// LaunchNames returns the sorted names of launch.
func LaunchNames(launch map[string]LaunchConfig) []string {
	names := make([]string, 0, len(launch))
	for name := range launch {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func loadLaunchFile(path string) (map[string]LaunchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("parsing launch JSON: %w", err)
	}
	var doc launchDocument
	if err := json.Unmarshal(std, &doc); err != nil {
		return nil, fmt.Errorf("parsing launch JSON: %w", err)
	}

	out := make(map[string]LaunchConfig, len(doc.Configurations))
	for i, launch := range doc.Configurations {
		name, _ := launch["name"].(string)
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("configurations[%d]: missing name", i)
		}
		if _, exists := out[name]; exists {
			continue
		}
		out[name] = launch
	}
	return out, nil
}

// Arguments converts a launch configuration into launch request arguments.
// noDebug and __restart map to the declared fields; every other attribute is
// carried in Extra.
func (l LaunchConfig) Arguments() (dap.LaunchRequestArguments, error) {
	var args dap.LaunchRequestArguments
	for key, value := range l {
		switch key {
		case "noDebug":
			b, ok := value.(bool)
			if !ok {
				return dap.LaunchRequestArguments{}, fmt.Errorf("noDebug: must be a boolean, got %T", value)
			}
			args.NoDebug = b
		case "__restart":
			raw, err := json.Marshal(value)
			if err != nil {
				return dap.LaunchRequestArguments{}, fmt.Errorf("__restart: %w", err)
			}
			args.Restart = raw
		default:
			raw, err := json.Marshal(value)
			if err != nil {
				return dap.LaunchRequestArguments{}, fmt.Errorf("%s: %w", key, err)
			}
			if args.Extra == nil {
				args.Extra = make(map[string]json.RawMessage)
			}
			args.Extra[key] = raw
		}
	}
	return args, nil
}

func launchSourcePathsForCWD(cfg *Config, cwd string) []string {
	if cfg != nil && cfg.LaunchSources != nil {
		return compactPaths(cfg.LaunchSources)
	}
	return compactPaths([]string{paths.LaunchFile(cwd)})
}

func compactPaths(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := make([]string, 0, len(paths))
	for _, path := range paths {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		if _, ok := seen[path]; ok {
			continue
		}
		seen[path] = struct{}{}
		out = append(out, path)
	}
	return out
}
