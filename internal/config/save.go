package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/lydakis/dapx/internal/paths"
)

const fileHeader = "# dapx configuration. Validate edits with `dapx config check`.\n\n"

// SaveTo validates cfg and writes it to path atomically with mode 0600. An
// invalid config is not written and any existing file is left as it was.
// nil writes the defaults.
func SaveTo(path string, cfg *Config) error {
	if cfg == nil {
		cfg = Default()
	}
	if err := ValidateForCurrentEnv(cfg); err != nil {
		return fmt.Errorf("refusing to write invalid config: %w", err)
	}

	var payload bytes.Buffer
	payload.WriteString(fileHeader)
	if err := toml.NewEncoder(&payload).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return writeFileAtomic(path, payload.Bytes(), 0o600)
}

// writeFileAtomic replaces path with data through a temp file in the same
// directory, so readers never observe a partial file.
func writeFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(path)
	if err := paths.EnsureDir(dir); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp config file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = tmp.Chmod(perm); err != nil {
		return fmt.Errorf("setting temp config permissions: %w", err)
	}
	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("writing temp config file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("syncing temp config file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing temp config file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing config file: %w", err)
	}
	return nil
}
