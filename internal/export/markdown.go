package export

import (
	"bytes"
	"fmt"

	"hyperbench/internal/benchmark"
)

// MarkdownExporter writes a results table with a relative-speed column,
// suitable for pasting into a README.
type MarkdownExporter struct{}

func (MarkdownExporter) Export(run benchmark.Run) ([]byte, error) {
	annotated, err := benchmark.ComputeRelativeSpeed(run.Results)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("| Command | Mean [s] | Min [s] | Max [s] | Relative |\n")
	buf.WriteString("|:---|---:|---:|---:|---:|\n")

	for _, item := range annotated {
		res := item.Result
		relative := fmt.Sprintf("%.2f ± %.2f", item.Ratio, item.RatioStddev)
		if item.IsFastest {
			relative = "1.00"
		}
		fmt.Fprintf(&buf, "| `%s` | %.3f ± %.3f | %.3f | %.3f | %s |\n",
			res.Command, res.Mean, res.Stddev, res.Min, res.Max, relative)
	}

	return buf.Bytes(), nil
}
