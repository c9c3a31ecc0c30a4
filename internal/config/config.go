// Package config provides application configuration for clinical-capture.
// Defaults can be overridden by an optional YAML file and then by
// environment variables, in that order.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config aggregates all application configuration.
type Config struct {
	// OutputDir is where captured stills and their metadata are written.
	OutputDir string `yaml:"output_dir"`

	// WindowTitle is the display window title.
	WindowTitle string `yaml:"window_title"`

	// RetryPolicy controls mid-session frame read failures.
	// Values: "" (choose by source kind), "retry", "terminate".
	RetryPolicy string `yaml:"retry_policy"`

	// PreviewAddr enables the HTTP preview server when non-empty,
	// e.g. ":8089". Empty disables it.
	PreviewAddr string `yaml:"preview_addr"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		OutputDir:   "captured_images",
		WindowTitle: "Clinical Capture System",
		RetryPolicy: "",
		PreviewAddr: "",
		LogLevel:    "info",
	}
}

// Load reads a YAML file over the defaults and returns the configuration.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks config values that have a closed set of choices.
func (c Config) Validate() error {
	switch c.RetryPolicy {
	case "", "retry", "terminate":
	default:
		return fmt.Errorf("retry_policy must be empty, retry, or terminate (got %q)", c.RetryPolicy)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	return nil
}

// FromEnv applies environment variable overrides on top of cfg.
//
//	CAPTURE_OUTPUT_DIR, CAPTURE_RETRY_POLICY, CAPTURE_PREVIEW_ADDR,
//	CAPTURE_LOG_LEVEL
func FromEnv(cfg Config) Config {
	if v := os.Getenv("CAPTURE_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("CAPTURE_RETRY_POLICY"); v != "" {
		cfg.RetryPolicy = v
	}
	if v := os.Getenv("CAPTURE_PREVIEW_ADDR"); v != "" {
		cfg.PreviewAddr = v
	}
	if v := os.Getenv("CAPTURE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return cfg
}
