package export

import (
	"encoding/json"

	"hyperbench/internal/benchmark"
)

// JSONExporter writes the run as indented JSON, including the raw
// wall-clock samples of every result.
type JSONExporter struct{}

func (JSONExporter) Export(run benchmark.Run) ([]byte, error) {
	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
