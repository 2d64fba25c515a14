package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"tweet-stats/src/pipeline"
)

const (
	sourceFile = "file"
	sourceAMQP = "amqp"

	formatText = "text"
	formatYAML = "yaml"
)

// Config struct for YAML config file
type Config struct {
	Source     string              `yaml:"source"`
	Input      []string            `yaml:"input"`
	Keyword    string              `yaml:"keyword"`
	LogDir     string              `yaml:"log_dir"`
	LogLevel   string              `yaml:"log_level"`
	OutputDir  string              `yaml:"output_dir"`
	Format     string              `yaml:"format"`
	Thresholds pipeline.Thresholds `yaml:"thresholds"`
	Chart      ChartConfig         `yaml:"chart"`
	MQ         RabbitMQConfig      `yaml:"mq"`
}

// ChartConfig controls the bar charts.
type ChartConfig struct {
	TopN  int `yaml:"top_n"`
	Width int `yaml:"width"`
}

// defaultConfig returns the values used for any key the file leaves out.
func defaultConfig() *Config {
	return &Config{
		Source:     sourceFile,
		Keyword:    "wearable",
		LogLevel:   "info",
		Format:     formatText,
		Thresholds: pipeline.DefaultThresholds(),
		Chart: ChartConfig{
			TopN:  25,
			Width: 60,
		},
		MQ: RabbitMQConfig{
			Host:     "localhost",
			Port:     5672,
			Username: "guest",
			Password: "guest",
			Queue:    "tweet_in",
		},
	}
}

// loadConfig loads the YAML config file on top of the defaults.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Validate checks that all configuration values are usable.
func (c *Config) Validate() error {
	checks := []func(*Config) error{
		validateSource,
		validateThresholds,
		validateOutput,
	}
	for _, check := range checks {
		if err := check(c); err != nil {
			return err
		}
	}
	return nil
}

func validateSource(c *Config) error {
	switch c.Source {
	case sourceFile:
		if len(c.Input) == 0 {
			return fmt.Errorf("input must list at least one file when source is %q", sourceFile)
		}
	case sourceAMQP:
		if err := c.MQ.Validate(); err != nil {
			return fmt.Errorf("mq: %w", err)
		}
	default:
		return fmt.Errorf("source must be one of: %s, %s; got %q", sourceFile, sourceAMQP, c.Source)
	}
	return nil
}

func validateThresholds(c *Config) error {
	th := c.Thresholds
	values := map[string]int{
		"min_word_count":    th.MinWordCount,
		"min_user_count":    th.MinUserCount,
		"min_reach_count":   th.MinReachCount,
		"min_keyword_count": th.MinKeywordCount,
	}
	for name, v := range values {
		if v < 0 {
			return fmt.Errorf("thresholds.%s must be non-negative, got %d", name, v)
		}
	}
	return nil
}

func validateOutput(c *Config) error {
	if _, ok := logLevels[strings.ToLower(c.LogLevel)]; !ok {
		return fmt.Errorf("log_level must be one of: debug, info, warn, error; got %q", c.LogLevel)
	}
	if c.Format != formatText && c.Format != formatYAML {
		return fmt.Errorf("format must be one of: %s, %s; got %q", formatText, formatYAML, c.Format)
	}
	if c.Chart.TopN < 1 {
		return fmt.Errorf("chart.top_n must be at least 1, got %d", c.Chart.TopN)
	}
	if c.Chart.Width < 1 {
		return fmt.Errorf("chart.width must be at least 1, got %d", c.Chart.Width)
	}
	return nil
}
