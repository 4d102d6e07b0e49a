package paths

import (
	"os"
	"path/filepath"
	"strings"
)

const appName = "dapx"

func homeDir() string {
	if h := os.Getenv("HOME"); h != "" {
		return h
	}
	h, _ := os.UserHomeDir()
	return h
}

func xdgDir(envVar, fallbackSuffix string) string {
	if v := os.Getenv(envVar); v != "" {
		return filepath.Join(v, appName)
	}
	return filepath.Join(homeDir(), fallbackSuffix, appName)
}

// ConfigDir returns the dapx config directory ($XDG_CONFIG_HOME/dapx).
func ConfigDir() string {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// ConfigFile returns the path to config.toml.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// EnsureDir creates a directory and parents if needed.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0700)
}

// WorkingDir returns cwd cleaned, or the process working directory when cwd
// is blank. It returns "" when neither is available.
func WorkingDir(cwd string) string {
	cwd = strings.TrimSpace(cwd)
	if cwd != "" {
		return filepath.Clean(cwd)
	}

	wd, err := os.Getwd()
	if err != nil || wd == "" {
		return ""
	}
	return filepath.Clean(wd)
}

// NearestUpward walks from cwd toward the filesystem root and returns the
// first existing regular file at relPath, or "".
func NearestUpward(relPath, cwd string) string {
	dir := WorkingDir(cwd)
	if dir == "" {
		return ""
	}

	for {
		candidate := filepath.Join(dir, relPath)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// LaunchFile returns the nearest .vscode/launch.json above cwd, or "".
func LaunchFile(cwd string) string {
	return NearestUpward(filepath.Join(".vscode", "launch.json"), cwd)
}
