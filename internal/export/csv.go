package export

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"hyperbench/internal/benchmark"
)

// CSVExporter writes one row of aggregate statistics per result.
type CSVExporter struct{}

func (CSVExporter) Export(run benchmark.Run) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"command", "mean", "stddev", "median", "user", "system", "min", "max", "parameter"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, res := range run.Results {
		row := []string{
			res.Command,
			formatFloat(res.Mean),
			formatFloat(res.Stddev),
			formatFloat(res.Median),
			formatFloat(res.User),
			formatFloat(res.System),
			formatFloat(res.Min),
			formatFloat(res.Max),
			res.Parameter,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
