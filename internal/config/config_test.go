package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "capture.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.OutputDir != "captured_images" {
		t.Errorf("expected default output dir captured_images, got %q", cfg.OutputDir)
	}
	if cfg.PreviewAddr != "" {
		t.Errorf("expected preview disabled by default, got %q", cfg.PreviewAddr)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
output_dir: /data/captures
retry_policy: retry
preview_addr: ":8089"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.OutputDir != "/data/captures" {
		t.Errorf("expected output dir /data/captures, got %q", cfg.OutputDir)
	}
	if cfg.RetryPolicy != "retry" {
		t.Errorf("expected retry policy retry, got %q", cfg.RetryPolicy)
	}
	// Unset fields keep defaults
	if cfg.WindowTitle != "Clinical Capture System" {
		t.Errorf("expected default window title, got %q", cfg.WindowTitle)
	}
}

func TestLoadInvalidPolicy(t *testing.T) {
	path := writeConfig(t, "retry_policy: sometimes\n")

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid retry_policy")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("CAPTURE_OUTPUT_DIR", "/tmp/env-captures")
	t.Setenv("CAPTURE_RETRY_POLICY", "terminate")

	cfg := FromEnv(Default())

	if cfg.OutputDir != "/tmp/env-captures" {
		t.Errorf("expected env output dir, got %q", cfg.OutputDir)
	}
	if cfg.RetryPolicy != "terminate" {
		t.Errorf("expected env retry policy, got %q", cfg.RetryPolicy)
	}
	// Untouched fields keep defaults
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level, got %q", cfg.LogLevel)
	}
}
