package ingest

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"tweet-stats/src/tweets"
)

// maxRecordBytes bounds a single JSON line.
const maxRecordBytes = 4 * 1024 * 1024

// ExpandInputs resolves each pattern with filepath.Glob, keeping the order of
// the patterns. A pattern with no glob metacharacters is kept as is so that a
// missing file surfaces as an open error instead of being silently skipped.
func ExpandInputs(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		if !strings.ContainsAny(pattern, "*?[") {
			files = append(files, pattern)
			continue
		}
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: bad input pattern %q: %v", ErrIngestion, pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: no files match %q", ErrIngestion, pattern)
		}
		files = append(files, matches...)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no input files given", ErrIngestion)
	}
	return files, nil
}

// ReadRecords decodes line-delimited JSON records from r. Whitespace-only
// lines are skipped. The first bad record aborts the read.
func ReadRecords(r io.Reader, source string) ([]tweets.Tweet, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRecordBytes)

	var rows []tweets.Tweet
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		tweet, err := DecodeTweet(line)
		if err != nil {
			return nil, locate(err, source, lineNum)
		}
		rows = append(rows, tweet)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading %s at line %d: %v", ErrIngestion, source, lineNum+1, err)
	}
	return rows, nil
}

// ReadFile reads one input file. Files ending in .gz are decompressed.
func ReadFile(path string) ([]tweets.Tweet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %v", ErrIngestion, path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to open gzip %s: %v", ErrIngestion, path, err)
		}
		defer gz.Close()
		r = gz
	}
	return ReadRecords(r, path)
}

// ReadFiles reads every file in order and builds one table. Nothing is
// returned if any file fails.
func ReadFiles(paths []string, logger *slog.Logger) (*tweets.Table, error) {
	var rows []tweets.Tweet
	for _, path := range paths {
		fileRows, err := ReadFile(path)
		if err != nil {
			return nil, err
		}
		logger.Info("Read tweet file", "file", path, "records", len(fileRows))
		rows = append(rows, fileRows...)
	}
	return tweets.NewTable(rows), nil
}
