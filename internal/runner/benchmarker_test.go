package runner

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"hyperbench/internal/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner records every command it is asked to run and replays a
// fixed sequence of timings for the benchmarked command.
type fakeRunner struct {
	timings []Timing
	next    int
	calls   []string
	failOn  string
}

func (f *fakeRunner) Run(ctx context.Context, command string) (Timing, error) {
	f.calls = append(f.calls, command)
	if f.failOn != "" && command == f.failOn {
		return Timing{}, errors.New("boom")
	}
	if command == "bench" && f.next < len(f.timings) {
		t := f.timings[f.next]
		f.next++
		return t, nil
	}
	return Timing{Real: 0.1}, nil
}

func (f *fakeRunner) count(command string) int {
	n := 0
	for _, c := range f.calls {
		if c == command {
			n++
		}
	}
	return n
}

func TestBenchmarkFixedRuns(t *testing.T) {
	fake := &fakeRunner{timings: []Timing{
		{Real: 1.0, User: 0.5, System: 0.1},
		{Real: 2.0, User: 0.6, System: 0.2},
		{Real: 3.0, User: 0.7, System: 0.3},
	}}
	b := NewBenchmarker(fake, nil, nil, ui.StyleNone, Options{Runs: 3})

	res, err := b.Benchmark(context.Background(), "bench", "")
	require.NoError(t, err)

	assert.Equal(t, "bench", res.Command)
	assert.Equal(t, 3, fake.count("bench"))
	assert.InDelta(t, 2.0, res.Mean, 1e-9)
	assert.InDelta(t, 2.0, res.Median, 1e-9)
	assert.InDelta(t, 1.0, res.Min, 1e-9)
	assert.InDelta(t, 3.0, res.Max, 1e-9)
	assert.InDelta(t, 0.6, res.User, 1e-9)
	assert.InDelta(t, 0.2, res.System, 1e-9)
	assert.Len(t, res.Times, 3)
}

func TestBenchmarkWarmupAndPrepare(t *testing.T) {
	fake := &fakeRunner{timings: []Timing{{Real: 1.0}, {Real: 1.0}}}
	b := NewBenchmarker(fake, nil, nil, ui.StyleNone, Options{
		Runs:    2,
		Warmup:  3,
		Prepare: "prep",
		Cleanup: "clean",
	})

	_, err := b.Benchmark(context.Background(), "bench", "")
	require.NoError(t, err)

	// Prepare runs before every warmup and timed run.
	assert.Equal(t, 5, fake.count("prep"))
	assert.Equal(t, 5, fake.count("bench"))
	assert.Equal(t, 1, fake.count("clean"))

	// Cleanup is the very last command.
	assert.Equal(t, "clean", fake.calls[len(fake.calls)-1])
}

func TestBenchmarkAdaptiveRunCount(t *testing.T) {
	// First run takes 0.25 s against a 1 s budget: four runs expected,
	// which also clears the MinRuns floor of 2.
	timings := make([]Timing, 10)
	for i := range timings {
		timings[i] = Timing{Real: 0.25}
	}
	fake := &fakeRunner{timings: timings}
	b := NewBenchmarker(fake, nil, nil, ui.StyleNone, Options{
		MinRuns:             2,
		MinBenchmarkingTime: 1.0,
	})

	res, err := b.Benchmark(context.Background(), "bench", "")
	require.NoError(t, err)
	assert.Len(t, res.Times, 4)
}

func TestBenchmarkMaxRunsCap(t *testing.T) {
	timings := make([]Timing, 10)
	for i := range timings {
		timings[i] = Timing{Real: 0.01}
	}
	fake := &fakeRunner{timings: timings}
	b := NewBenchmarker(fake, nil, nil, ui.StyleNone, Options{
		MinRuns:             2,
		MaxRuns:             3,
		MinBenchmarkingTime: 10.0,
	})

	res, err := b.Benchmark(context.Background(), "bench", "")
	require.NoError(t, err)
	assert.Len(t, res.Times, 3)
}

func TestBenchmarkPrepareFailure(t *testing.T) {
	fake := &fakeRunner{failOn: "prep"}
	b := NewBenchmarker(fake, nil, nil, ui.StyleNone, Options{Runs: 2, Prepare: "prep", Cleanup: "clean"})

	_, err := b.Benchmark(context.Background(), "bench", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prepare command failed")

	// Cleanup still ran.
	assert.Equal(t, 1, fake.count("clean"))
}

func TestBenchmarkCommandFailure(t *testing.T) {
	fake := &fakeRunner{failOn: "bench"}
	b := NewBenchmarker(fake, nil, nil, ui.StyleNone, Options{Runs: 2})

	_, err := b.Benchmark(context.Background(), "bench", "")
	assert.Error(t, err)
}

func TestBenchmarkRecordsParameter(t *testing.T) {
	fake := &fakeRunner{timings: []Timing{{Real: 0.2}, {Real: 0.2}}}
	b := NewBenchmarker(fake, nil, nil, ui.StyleNone, Options{Runs: 2})

	res, err := b.Benchmark(context.Background(), "sleep 2", "2")
	require.NoError(t, err)
	assert.Equal(t, "2", res.Parameter)
}

func TestBenchmarkFastCommandWarning(t *testing.T) {
	fake := &fakeRunner{timings: []Timing{{Real: 0.0001}, {Real: 0.0001}}}
	var warnings bytes.Buffer
	b := NewBenchmarker(fake, nil, &warnings, ui.StyleBasic, Options{Runs: 2})

	_, err := b.Benchmark(context.Background(), "bench", "")
	require.NoError(t, err)
	assert.Contains(t, warnings.String(), "Results might be inaccurate")
}
