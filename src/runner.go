package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"tweet-stats/src/ingest"
	"tweet-stats/src/report"
	"tweet-stats/src/tweets"
)

// runner holds the state of one command invocation.
type runner struct {
	out     io.Writer
	cfg     *Config
	logger  *slog.Logger
	logFile io.Closer
	runID   string
	started time.Time
	table   *tweets.Table
	results report.Results
}

// action wraps an analysis with config loading, ingestion and output.
func (r *runner) action(analysis func() error) cli.ActionFunc {
	return func(c *cli.Context) error {
		if err := r.setup(c); err != nil {
			return err
		}
		if err := r.load(); err != nil {
			return err
		}
		if err := analysis(); err != nil {
			return err
		}
		return r.finish()
	}
}

// setup loads the config, applies flag overrides and opens the log.
func (r *runner) setup(c *cli.Context) error {
	cfg := defaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := loadConfig(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	applyFlags(c, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, logFile, err := setupLogger(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		return err
	}

	r.cfg = cfg
	r.logFile = logFile
	r.runID = uuid.NewString()
	r.logger = logger.With("run_id", r.runID)
	r.started = time.Now()
	r.results = report.Results{RunID: r.runID}
	command := "all"
	if c.Command != nil && c.Command.Name != "" {
		command = c.Command.Name
	}
	r.logger.Info("Starting analysis run", "command", command, "source", cfg.Source, "format", cfg.Format)
	return nil
}

// applyFlags overrides config values with any flag given on the command line.
func applyFlags(c *cli.Context, cfg *Config) {
	if c.IsSet("input") {
		cfg.Input = c.StringSlice("input")
	}
	if c.IsSet("source") {
		cfg.Source = c.String("source")
	}
	if c.IsSet("keyword") {
		cfg.Keyword = c.String("keyword")
	}
	if c.IsSet("output-dir") {
		cfg.OutputDir = c.String("output-dir")
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("log-dir") {
		cfg.LogDir = c.String("log-dir")
	}
	if c.IsSet("top") {
		cfg.Chart.TopN = c.Int("top")
	}
	if c.IsSet("min-word-count") {
		cfg.Thresholds.MinWordCount = c.Int("min-word-count")
	}
	if c.IsSet("min-user-count") {
		cfg.Thresholds.MinUserCount = c.Int("min-user-count")
	}
	if c.IsSet("min-reach-count") {
		cfg.Thresholds.MinReachCount = c.Int("min-reach-count")
	}
	if c.IsSet("min-keyword-count") {
		cfg.Thresholds.MinKeywordCount = c.Int("min-keyword-count")
	}
}

// close releases the log file. It runs after every invocation.
func (r *runner) close(c *cli.Context) error {
	if r.logFile == nil {
		return nil
	}
	err := r.logFile.Close()
	r.logFile = nil
	return err
}

// load builds the table from the configured source. Any failure aborts the
// run before anything is written to the output.
func (r *runner) load() error {
	var (
		table *tweets.Table
		err   error
	)
	switch r.cfg.Source {
	case sourceAMQP:
		table, err = loadFromQueue(r.cfg.MQ, r.logger)
	default:
		var files []string
		files, err = ingest.ExpandInputs(r.cfg.Input)
		if err == nil {
			table, err = ingest.ReadFiles(files, r.logger)
		}
	}
	if err != nil {
		r.logger.Error("Failed to load tweets", "error", err)
		return fmt.Errorf("failed to load tweets: %w", err)
	}

	r.table = table
	r.logger.Info("Loaded tweets", "rows", table.Len())
	return nil
}

// finish writes CSV exports and, in YAML mode, the collected results.
func (r *runner) finish() error {
	if r.cfg.OutputDir != "" {
		for _, s := range r.results.Sections {
			path, err := report.WriteSectionCSV(r.cfg.OutputDir, s)
			if err != nil {
				return err
			}
			r.logger.Info("Wrote ranked result", "analysis", s.Name, "path", path)
		}
	}
	if r.cfg.Format == formatYAML {
		if err := report.WriteYAML(r.out, r.results); err != nil {
			return err
		}
	}
	r.logger.Info("Analysis run finished", "duration", time.Since(r.started), "sections", len(r.results.Sections))
	return nil
}

// emit records a ranked result, draws it in text mode and returns the keys
// of the plotted entries.
func (r *runner) emit(s report.Section) []string {
	r.logger.Info("Analysis complete", "analysis", s.Name, "entries", len(s.Entries))
	r.results.Sections = append(r.results.Sections, s)

	if r.cfg.Format != formatText {
		return s.Entries.Top(r.cfg.Chart.TopN).Keys()
	}
	_, keys := report.BarChart(r.out, s.Entries, s.Title, s.ValueLabel, report.ChartOptions{
		TopN:  r.cfg.Chart.TopN,
		Width: r.cfg.Chart.Width,
	})
	return keys
}
