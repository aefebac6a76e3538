package export

import (
	"gopkg.in/yaml.v3"

	"hyperbench/internal/benchmark"
)

// YAMLExporter writes the run as YAML.
type YAMLExporter struct{}

func (YAMLExporter) Export(run benchmark.Run) ([]byte, error) {
	return yaml.Marshal(run)
}
