// Package export serializes benchmark runs to the formats selectable
// with the --export-* flags.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"hyperbench/internal/benchmark"
)

// Exporter serializes one benchmark run.
type Exporter interface {
	Export(run benchmark.Run) ([]byte, error)
}

// New returns the exporter for a format name.
func New(format string) (Exporter, error) {
	switch format {
	case "json":
		return JSONExporter{}, nil
	case "csv":
		return CSVExporter{}, nil
	case "markdown":
		return MarkdownExporter{}, nil
	case "yaml":
		return YAMLExporter{}, nil
	}
	return nil, fmt.Errorf("unknown export format %q", format)
}

// WriteFile serializes run with the given exporter and writes it to
// path, creating parent directories as needed.
func WriteFile(path string, e Exporter, run benchmark.Run) error {
	data, err := e.Export(run)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return os.WriteFile(path, data, 0644)
}
