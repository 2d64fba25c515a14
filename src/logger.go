package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// setupLogger returns a slog.Logger that appends to pipeline.log in logDir,
// or writes to stderr when logDir is empty.
func setupLogger(logDir, level string) (*slog.Logger, io.Closer, error) {
	opts := &slog.HandlerOptions{Level: logLevels[strings.ToLower(level)]}
	if logDir == "" {
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), nopCloser{}, nil
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory %s: %w", logDir, err)
	}
	logPath := filepath.Join(logDir, "pipeline.log")
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", logPath, err)
	}
	return slog.New(slog.NewTextHandler(logFile, opts)), logFile, nil
}
