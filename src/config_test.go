package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// createTempConfigFile writes content to a config file in a test directory.
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

// TestLoadConfigValid tests loading a valid configuration file.
//
// Rationale: This is the happy path test that ensures the basic configuration loading
// functionality works correctly with a well-formed config file.
func TestLoadConfigValid(t *testing.T) {
	validConfig := `
source: file
input:
  - healthtech/ht.json
  - digitalhealth/dh.json
keyword: wearable
log_dir: ../logs
log_level: debug
output_dir: ../out
format: yaml
thresholds:
  min_word_count: 30
  min_user_count: 5
  min_reach_count: 1000
  min_keyword_count: 2
chart:
  top_n: 10
  width: 40
mq:
  host: rabbit
  port: 5673
  queue: tweets
`
	cfg, err := loadConfig(createTempConfigFile(t, validConfig))
	if err != nil {
		t.Fatalf("Expected no error loading valid config, got: %v", err)
	}

	if len(cfg.Input) != 2 || cfg.Input[1] != "digitalhealth/dh.json" {
		t.Errorf("Expected two inputs, got %v", cfg.Input)
	}
	if cfg.LogDir != "../logs" {
		t.Errorf("Expected LogDir to be '../logs', got '%s'", cfg.LogDir)
	}
	if cfg.Format != "yaml" {
		t.Errorf("Expected Format to be 'yaml', got '%s'", cfg.Format)
	}
	if cfg.Thresholds.MinWordCount != 30 || cfg.Thresholds.MinKeywordCount != 2 {
		t.Errorf("Unexpected thresholds: %+v", cfg.Thresholds)
	}
	if cfg.Chart.TopN != 10 || cfg.Chart.Width != 40 {
		t.Errorf("Unexpected chart config: %+v", cfg.Chart)
	}
	if cfg.MQ.Host != "rabbit" || cfg.MQ.Port != 5673 || cfg.MQ.Queue != "tweets" {
		t.Errorf("Unexpected mq config: %+v", cfg.MQ)
	}
	// Credentials were not in the file and keep their defaults.
	if cfg.MQ.Username != "guest" {
		t.Errorf("Expected default mq username 'guest', got '%s'", cfg.MQ.Username)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected valid config, got: %v", err)
	}
}

// TestLoadConfigDefaults tests that absent keys fall back to the defaults.
//
// Rationale: The stock thresholds (25 words, 10 posts, 10 reach) are policy that
// lives in configuration. A minimal file must still produce them.
func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(createTempConfigFile(t, "input: [ht.json]\nthresholds:\n  min_word_count: 40\n"))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.Source != sourceFile {
		t.Errorf("Expected default source 'file', got '%s'", cfg.Source)
	}
	if cfg.Thresholds.MinWordCount != 40 {
		t.Errorf("Expected MinWordCount 40, got %d", cfg.Thresholds.MinWordCount)
	}
	if cfg.Thresholds.MinUserCount != 10 || cfg.Thresholds.MinReachCount != 10 {
		t.Errorf("Expected user and reach thresholds of 10, got %+v", cfg.Thresholds)
	}
	if cfg.Thresholds.MinKeywordCount != 0 {
		t.Errorf("Expected keyword threshold 0, got %d", cfg.Thresholds.MinKeywordCount)
	}
	if cfg.Chart.TopN != 25 {
		t.Errorf("Expected 25 chart entries, got %d", cfg.Chart.TopN)
	}
	if cfg.Keyword != "wearable" {
		t.Errorf("Expected default keyword 'wearable', got '%s'", cfg.Keyword)
	}
}

// TestLoadConfigInvalidYAML tests that loading an invalid YAML file fails.
//
// Rationale: The system should gracefully handle malformed YAML files and provide
// meaningful error messages rather than crashing.
func TestLoadConfigInvalidYAML(t *testing.T) {
	invalidYAML := `
input: [1, 2, 3,  # Missing closing bracket
`
	if _, err := loadConfig(createTempConfigFile(t, invalidYAML)); err == nil {
		t.Fatal("Expected error loading invalid YAML, got nil")
	}
}

// TestLoadConfigNonexistentFile tests that loading a nonexistent file fails.
//
// Rationale: The system should handle missing config files gracefully and provide
// clear error messages to help with debugging.
func TestLoadConfigNonexistentFile(t *testing.T) {
	if _, err := loadConfig("/nonexistent/path/config.yaml"); err == nil {
		t.Fatal("Expected error loading nonexistent file, got nil")
	}
}

// TestValidate tests each validation rule.
//
// Rationale: Bad values should be rejected before any tweets are read so that a
// run never produces output under a configuration it cannot honor.
func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		errPart string
	}{
		{"valid", func(c *Config) {}, ""},
		{"no input", func(c *Config) { c.Input = nil }, "input"},
		{"unknown source", func(c *Config) { c.Source = "kafka" }, "source"},
		{"amqp without input", func(c *Config) { c.Source = sourceAMQP; c.Input = nil }, ""},
		{"amqp bad port", func(c *Config) { c.Source = sourceAMQP; c.MQ.Port = 0 }, "invalid port"},
		{"amqp empty queue", func(c *Config) { c.Source = sourceAMQP; c.MQ.Queue = "" }, "empty queue"},
		{"negative threshold", func(c *Config) { c.Thresholds.MinReachCount = -1 }, "min_reach_count"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
		{"bad format", func(c *Config) { c.Format = "xml" }, "format"},
		{"zero top", func(c *Config) { c.Chart.TopN = 0 }, "top_n"},
		{"zero width", func(c *Config) { c.Chart.Width = 0 }, "width"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.Input = []string{"ht.json"}
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.errPart == "" {
				if err != nil {
					t.Errorf("Expected no error, got: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Expected error containing %q, got nil", tc.errPart)
			}
			if !strings.Contains(err.Error(), tc.errPart) {
				t.Errorf("Expected error containing %q, got: %v", tc.errPart, err)
			}
		})
	}
}

// TestSetupLoggerWritesToLogDir tests that the log file is created in log_dir.
//
// Rationale: Runs are audited through pipeline.log, so the file must appear where
// the configuration says.
func TestSetupLoggerWritesToLogDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	logger, closer, err := setupLogger(dir, "info")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	logger.Info("hello", "key", "value")
	if err := closer.Close(); err != nil {
		t.Fatalf("Failed to close log: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "pipeline.log"))
	if err != nil {
		t.Fatalf("Expected pipeline.log to exist: %v", err)
	}
	if !strings.Contains(string(data), "key=value") {
		t.Errorf("Expected log line in file, got %q", string(data))
	}
}
