package report

import (
	"bytes"
	"strings"
	"testing"

	"hyperbench/internal/benchmark"
	"hyperbench/internal/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func result(name string, mean float64) benchmark.Result {
	return benchmark.Result{
		Command: name,
		Mean:    mean,
		Stddev:  1.0,
		Median:  mean,
		Min:     mean,
		Max:     mean,
		Times:   []float64{mean},
	}
}

func TestWriteComparisonSingleResultIsNoOp(t *testing.T) {
	var buf bytes.Buffer
	err := WriteComparison(&buf, []benchmark.Result{result("only", 1.0)}, ui.StyleBasic)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestWriteComparison(t *testing.T) {
	var buf bytes.Buffer
	results := []benchmark.Result{
		result("cmd1", 3.0),
		result("cmd2", 2.0),
		result("cmd3", 5.0),
	}

	err := WriteComparison(&buf, results, ui.StyleBasic)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "'cmd2' ran")
	assert.Contains(t, out, "1.50")
	assert.Contains(t, out, "2.50")
	assert.Contains(t, out, "times faster than 'cmd1'")
	assert.Contains(t, out, "times faster than 'cmd3'")

	// The ranking is ascending by mean: cmd1 before cmd3.
	assert.Less(t, strings.Index(out, "'cmd1'"), strings.Index(out, "'cmd3'"))

	// Percent change of cmd1 relative to its own mean: (3-2)/3.
	assert.Contains(t, out, "-33.3%")
}

func TestWriteComparisonQuietStyleStillReports(t *testing.T) {
	// The comparison is the final output of a run; only the progress
	// machinery honors quiet mode, so the summary is printed as-is.
	var buf bytes.Buffer
	results := []benchmark.Result{result("a", 1.0), result("b", 2.0)}

	err := WriteComparison(&buf, results, ui.StyleNone)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "'a' ran")
}

func TestWriteRunSummary(t *testing.T) {
	var buf bytes.Buffer
	res := benchmark.Result{
		Command: "sleep 0.3",
		Mean:    0.3042,
		Stddev:  0.0025,
		Min:     0.3011,
		Max:     0.3100,
		User:    0.0012,
		System:  0.0018,
		Times:   []float64{0.301, 0.304, 0.310},
	}

	WriteRunSummary(&buf, res, ui.StyleBasic)

	out := buf.String()
	assert.Contains(t, out, "Time (mean ± σ)")
	assert.Contains(t, out, "304.2 ms")
	assert.Contains(t, out, "3 runs")
}

func TestWriteWarning(t *testing.T) {
	var buf bytes.Buffer
	WriteWarning(&buf, ui.StyleBasic, "Command took less than %s to complete", "5 ms")
	assert.Contains(t, buf.String(), "Warning:")
	assert.Contains(t, buf.String(), "5 ms")

	buf.Reset()
	WriteWarning(&buf, ui.StyleNone, "hidden")
	assert.Empty(t, buf.String())
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "500.0 µs", FormatDuration(0.0005))
	assert.Equal(t, "304.2 ms", FormatDuration(0.3042))
	assert.Equal(t, "1.500 s", FormatDuration(1.5))
}
