package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/CTAG07/landingkit/pkg/templating"
	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"
)

// RunConfig holds the settings of a single templater run.
type RunConfig struct {
	// DocumentPath is the HTML file rewritten in place.
	DocumentPath string `json:"document_path" yaml:"document_path"`
	LogLevel     string `json:"log_level" yaml:"log_level"`
	// CatalogPath points at a SQLite keyword catalog. Empty means the
	// built-in pools are used.
	CatalogPath string `json:"catalog_path" yaml:"catalog_path"`
	// Seed makes the run reproducible when non-zero.
	Seed uint64 `json:"seed" yaml:"seed"`
}

// Config is the top-level configuration struct that aggregates all other configs.
type Config struct {
	Run       *RunConfig                 `json:"run_config" yaml:"run_config"`
	Templates *templating.TemplateConfig `json:"template_config" yaml:"template_config"`
}

// DefaultRunConfig creates a run configuration with default values.
func DefaultRunConfig() *RunConfig {
	return &RunConfig{
		DocumentPath: "index.html",
		LogLevel:     "info",
		CatalogPath:  "",
		Seed:         0,
	}
}

// DefaultConfig returns the full default configuration.
func DefaultConfig() *Config {
	return &Config{
		Run:       DefaultRunConfig(),
		Templates: templating.DefaultConfig(),
	}
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func marshalConfig(path string, config *Config) ([]byte, error) {
	if isYAML(path) {
		return yaml.Marshal(config)
	}
	return json.MarshalIndent(config, "", "  ")
}

// LoadConfig reads the configuration from a JSON or YAML file, chosen by
// extension. An empty path yields the defaults. If the file doesn't exist,
// it is created with default values.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			var data []byte
			data, err = marshalConfig(path, config)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal default config: %w", err)
			}
			if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
				// The run can still go ahead with defaults.
				fmt.Fprintf(os.Stderr, "warning: failed to write default config file: %v\n", err)
			}
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if isYAML(path) {
		err = yaml.Unmarshal(file, config)
	} else {
		err = json.Unmarshal(file, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// A file may null out a whole section; fall back to defaults for it.
	if config.Run == nil {
		config.Run = DefaultRunConfig()
	}
	if config.Templates == nil {
		config.Templates = templating.DefaultConfig()
	}
	return config, nil
}

// parseLogLevel maps a config string to a slog level, defaulting to info.
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
