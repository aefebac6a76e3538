package runner

import (
	"context"
	"fmt"
	"io"

	"hyperbench/internal/benchmark"
	"hyperbench/internal/report"
	"hyperbench/internal/ui"
)

const (
	defaultMinRuns         = 10
	defaultMinBenchmarking = 3.0 // seconds
)

// Options controls how many times a command is executed and what runs
// around it.
type Options struct {
	// Runs fixes the exact number of timed runs. Zero selects the
	// adaptive count derived from MinRuns and MinBenchmarkingTime.
	Runs int

	// MinRuns is the lower bound for the adaptive count (default 10).
	MinRuns int

	// MaxRuns caps the adaptive count; zero means no cap.
	MaxRuns int

	// Warmup is the number of untimed runs executed first.
	Warmup int

	// Prepare is executed before every timed run, Cleanup once after
	// the last one.
	Prepare string
	Cleanup string

	// MinBenchmarkingTime is the wall-clock budget (seconds) the
	// adaptive count tries to fill (default 3.0).
	MinBenchmarkingTime float64
}

// Benchmarker runs one command repeatedly and condenses the measured
// samples into a benchmark.Result.
type Benchmarker struct {
	Runner    CommandRunner
	Indicator ui.Indicator
	Out       io.Writer
	Style     ui.OutputStyle
	Opts      Options
}

// NewBenchmarker fills in defaults for unset options.
func NewBenchmarker(r CommandRunner, ind ui.Indicator, out io.Writer, style ui.OutputStyle, opts Options) *Benchmarker {
	if opts.MinRuns <= 0 {
		opts.MinRuns = defaultMinRuns
	}
	if opts.MinBenchmarkingTime <= 0 {
		opts.MinBenchmarkingTime = defaultMinBenchmarking
	}
	if ind == nil {
		ind = ui.NewIndicator(ui.StyleNone, io.Discard)
	}
	return &Benchmarker{Runner: r, Indicator: ind, Out: out, Style: style, Opts: opts}
}

// Benchmark measures command and returns its aggregate statistics.
// parameter records the swept value the command was instantiated with,
// if any. The cleanup command runs even when the benchmark fails partway
// through.
func (b *Benchmarker) Benchmark(ctx context.Context, command, parameter string) (benchmark.Result, error) {
	res, err := b.benchmark(ctx, command, parameter)

	if b.Opts.Cleanup != "" {
		if _, cleanupErr := b.Runner.Run(context.WithoutCancel(ctx), b.Opts.Cleanup); cleanupErr != nil && err == nil {
			err = fmt.Errorf("cleanup command failed: %w", cleanupErr)
		}
	}
	return res, err
}

func (b *Benchmarker) benchmark(ctx context.Context, command, parameter string) (benchmark.Result, error) {
	for i := 0; i < b.Opts.Warmup; i++ {
		if i == 0 {
			b.Indicator.Start("Performing warmup runs", b.Opts.Warmup)
		}
		if err := b.prepare(ctx); err != nil {
			return benchmark.Result{}, err
		}
		if _, err := b.Runner.Run(ctx, command); err != nil {
			return benchmark.Result{}, err
		}
		b.Indicator.Increment()
	}

	// First timed run; its duration drives the adaptive run count.
	if err := b.prepare(ctx); err != nil {
		return benchmark.Result{}, err
	}
	first, err := b.Runner.Run(ctx, command)
	if err != nil {
		return benchmark.Result{}, err
	}

	runs := b.runCount(first.Real)
	times := []float64{first.Real}
	users := []float64{first.User}
	systems := []float64{first.System}

	b.Indicator.Start(fmt.Sprintf("Current estimate: %s", report.FormatDuration(first.Real)), runs)
	b.Indicator.Increment()

	for len(times) < runs {
		if err := ctx.Err(); err != nil {
			return benchmark.Result{}, err
		}
		if err := b.prepare(ctx); err != nil {
			return benchmark.Result{}, err
		}
		timing, err := b.Runner.Run(ctx, command)
		if err != nil {
			return benchmark.Result{}, err
		}
		times = append(times, timing.Real)
		users = append(users, timing.User)
		systems = append(systems, timing.System)

		b.Indicator.SetMessage(fmt.Sprintf("Current estimate: %s", report.FormatDuration(benchmark.Mean(times))))
		b.Indicator.Increment()
	}
	b.Indicator.Finish()

	res := benchmark.Result{
		Command:   command,
		Mean:      benchmark.Mean(times),
		Stddev:    benchmark.Stddev(times),
		Median:    benchmark.Median(times),
		User:      benchmark.Mean(users),
		System:    benchmark.Mean(systems),
		Min:       benchmark.Min(times),
		Max:       benchmark.Max(times),
		Times:     times,
		Parameter: parameter,
	}

	b.warn(res)
	return res, nil
}

func (b *Benchmarker) prepare(ctx context.Context) error {
	if b.Opts.Prepare == "" {
		return nil
	}
	if _, err := b.Runner.Run(ctx, b.Opts.Prepare); err != nil {
		return fmt.Errorf("prepare command failed: %w", err)
	}
	return nil
}

// runCount derives the number of timed runs from the duration of the
// first run: enough runs to fill the benchmarking-time budget, at least
// MinRuns, at most MaxRuns.
func (b *Benchmarker) runCount(firstRun float64) int {
	if b.Opts.Runs > 0 {
		return b.Opts.Runs
	}

	runs := b.Opts.MinRuns
	if firstRun > 0 {
		if estimate := int(b.Opts.MinBenchmarkingTime / firstRun); estimate > runs {
			runs = estimate
		}
	}
	if b.Opts.MaxRuns > 0 && runs > b.Opts.MaxRuns {
		runs = b.Opts.MaxRuns
	}
	if runs < 1 {
		runs = 1
	}
	return runs
}

func (b *Benchmarker) warn(res benchmark.Result) {
	if b.Out == nil {
		return
	}
	if res.Mean < benchmark.MinExecutionTime.Seconds() {
		report.WriteWarning(b.Out, b.Style,
			"Command took less than %s to complete. Results might be inaccurate.",
			report.FormatDuration(benchmark.MinExecutionTime.Seconds()))
	}
	if benchmark.HasOutliers(res.Times) {
		report.WriteWarning(b.Out, b.Style,
			"Statistical outliers were detected. Consider re-running this benchmark on a quiet system.")
	}
}
