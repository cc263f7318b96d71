// Package config provides configuration loading and management for skosread.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/skosread/document"
	"github.com/c360studio/skosread/export"
	"github.com/c360studio/skosread/graph"
	"github.com/c360studio/skosread/watch"
)

// Config represents the complete skosread configuration
type Config struct {
	// Backend is the document object model: graph, ontology or dataset
	Backend string `yaml:"backend"`
	// InputFormat forces the input syntax (empty = detect from extension)
	InputFormat string       `yaml:"input_format,omitempty"`
	Report      ReportConfig  `yaml:"report"`
	Publish     PublishConfig `yaml:"publish"`
	Watch       watch.Config  `yaml:"watch"`
	Log         LogConfig     `yaml:"log"`
}

// ReportConfig configures report output
type ReportConfig struct {
	// Format is the report format (text, json, yaml, jsonld, turtle, ntriples)
	Format string `yaml:"format"`
	// Output is the report file (empty = stdout)
	Output string `yaml:"output,omitempty"`
}

// PublishConfig configures publishing concepts to NATS
type PublishConfig struct {
	// Enabled turns publishing on
	Enabled bool `yaml:"enabled"`
	// URL is the NATS server URL
	URL string `yaml:"url"`
	// Subject is the ingestion subject
	Subject string `yaml:"subject"`
	// Timeout bounds connecting and flushing
	Timeout time.Duration `yaml:"timeout"`
	// Bucket is the KV bucket for concept snapshots (empty = none)
	Bucket string `yaml:"bucket,omitempty"`
}

// LogConfig configures logging
type LogConfig struct {
	// Level is the minimum level: debug, info, warn or error
	Level string `yaml:"level"`
}

// SlogLevel parses Level.
func (c LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if c.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Backend: string(document.BackendGraph),
		Report: ReportConfig{
			Format: string(export.FormatText),
		},
		Publish: PublishConfig{
			Enabled: false,
			URL:     "nats://127.0.0.1:4222",
			Subject: graph.GraphIngestSubject,
			Timeout: 10 * time.Second,
		},
		Watch: watch.DefaultConfig(),
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if _, err := document.ParseBackend(c.Backend); err != nil {
		return fmt.Errorf("backend: %w", err)
	}
	if c.InputFormat != "" {
		if _, ok := document.ParseFormat(c.InputFormat); !ok {
			return fmt.Errorf("input_format: unsupported format %q", c.InputFormat)
		}
	}
	if _, err := export.ParseFormat(c.Report.Format); err != nil {
		return fmt.Errorf("report.format: %w", err)
	}
	if c.Publish.Enabled {
		if c.Publish.URL == "" {
			return fmt.Errorf("publish.url is required when publishing is enabled")
		}
		if c.Publish.Subject == "" {
			return fmt.Errorf("publish.subject is required when publishing is enabled")
		}
	}
	if c.Publish.Bucket != "" && !c.Publish.Enabled {
		return fmt.Errorf("publish.bucket requires publishing to be enabled")
	}
	if c.Publish.Timeout < 0 {
		return fmt.Errorf("publish.timeout must not be negative")
	}
	if c.Watch.DebounceDelay != "" {
		if _, err := time.ParseDuration(c.Watch.DebounceDelay); err != nil {
			return fmt.Errorf("watch.debounce_delay: %w", err)
		}
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file. Fields the file does
// not set keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	config := DefaultConfig()
	if err := decodeFile(path, config); err != nil {
		return nil, err
	}
	return config, nil
}

// loadLayer reads path into a zero Config, so that Merge only applies the
// fields the file actually sets.
func loadLayer(path string) (*Config, error) {
	config := &Config{}
	if err := decodeFile(path, config); err != nil {
		return nil, err
	}
	return config, nil
}

func decodeFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Backend != "" {
		c.Backend = other.Backend
	}
	if other.InputFormat != "" {
		c.InputFormat = other.InputFormat
	}

	// Report
	if other.Report.Format != "" {
		c.Report.Format = other.Report.Format
	}
	if other.Report.Output != "" {
		c.Report.Output = other.Report.Output
	}

	// Publish
	if other.Publish.Enabled {
		c.Publish.Enabled = true
	}
	if other.Publish.URL != "" {
		c.Publish.URL = other.Publish.URL
	}
	if other.Publish.Subject != "" {
		c.Publish.Subject = other.Publish.Subject
	}
	if other.Publish.Timeout != 0 {
		c.Publish.Timeout = other.Publish.Timeout
	}
	if other.Publish.Bucket != "" {
		c.Publish.Bucket = other.Publish.Bucket
	}

	// Watch
	if other.Watch.DebounceDelay != "" {
		c.Watch.DebounceDelay = other.Watch.DebounceDelay
	}

	// Log
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
}
