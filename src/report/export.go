package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"tweet-stats/src/pipeline"
)

// Section is one named ranked result of a run.
type Section struct {
	Name       string          `yaml:"name"`
	Title      string          `yaml:"title"`
	KeyLabel   string          `yaml:"key_label"`
	ValueLabel string          `yaml:"value_label"`
	Entries    pipeline.Ranked `yaml:"entries"`
}

// Results is everything a run produced, for machine-readable output.
type Results struct {
	RunID    string            `yaml:"run_id"`
	Summary  *pipeline.Summary `yaml:"summary,omitempty"`
	Sections []Section         `yaml:"sections,omitempty"`
}

// WriteYAML writes results as a YAML document.
func WriteYAML(w io.Writer, results Results) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	return enc.Close()
}

// createFile opens an output file for writing.
var createFile = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// WriteRankedCSV writes ranked to <dir>/<name>.csv with a header row.
func WriteRankedCSV(dir, name, keyHeader, valueHeader string, ranked pipeline.Ranked) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, name+".csv")
	f, err := createFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := writeRanked(f, keyHeader, valueHeader, ranked); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", path, err)
	}
	return path, nil
}

func writeRanked(w io.Writer, keyHeader, valueHeader string, ranked pipeline.Ranked) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{keyHeader, valueHeader}); err != nil {
		return err
	}
	for _, e := range ranked {
		if err := writer.Write([]string{e.Key, strconv.Itoa(e.Count)}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteSectionCSV writes a section to <dir>/<name>.csv using its labels as
// the header.
func WriteSectionCSV(dir string, s Section) (string, error) {
	return WriteRankedCSV(dir, s.Name, s.KeyLabel, s.ValueLabel, s.Entries)
}
