package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// gripConfig is the optional grip.toml discovered upward from the working
// directory. Flags override whatever it carries.
type gripConfig struct {
	Stress stressConfig `toml:"stress"`
}

type stressConfig struct {
	Iterations int      `toml:"iterations"`
	Scenarios  []string `toml:"scenarios"`
	Parallel   bool     `toml:"parallel"`
}

func findGripToml(startDir string) (string, bool, error) {
	return findGripTomlUntil(startDir, "")
}

// findGripTomlUntil walks upward from startDir looking for grip.toml. The
// walk stops after checking stopDir; an empty stopDir walks to the
// filesystem root.
func findGripTomlUntil(startDir, stopDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	if stopDir != "" {
		if stopDir, err = filepath.Abs(stopDir); err != nil {
			return "", false, fmt.Errorf("failed to resolve stop directory: %w", err)
		}
	}
	for {
		candidate := filepath.Join(dir, "grip.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if dir == stopDir || parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadConfig returns the discovered config, or a zero config when no
// grip.toml exists.
func loadConfig(startDir string) (gripConfig, error) {
	var cfg gripConfig
	path, ok, err := findGripToml(startDir)
	if err != nil || !ok {
		return cfg, err
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}
