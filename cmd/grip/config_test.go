package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFindsTomlUpward(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	content := `[stress]
iterations = 250
scenarios = ["cow-sharing", "slot-resize"]
parallel = true
`
	if err := os.WriteFile(filepath.Join(root, "grip.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	cfg, err := loadConfig(nested)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Stress.Iterations != 250 {
		t.Errorf("iterations: got %d, want 250", cfg.Stress.Iterations)
	}
	if len(cfg.Stress.Scenarios) != 2 || cfg.Stress.Scenarios[0] != "cow-sharing" {
		t.Errorf("scenarios: got %v", cfg.Stress.Scenarios)
	}
	if !cfg.Stress.Parallel {
		t.Errorf("parallel flag not loaded")
	}
}

func TestFindGripTomlMissing(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}

	// Bound the walk to the temp tree so a grip.toml in an unrelated
	// ancestor directory cannot reach the result.
	path, ok, err := findGripTomlUntil(nested, root)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if ok {
		t.Fatalf("unexpected grip.toml at %s", path)
	}
}
