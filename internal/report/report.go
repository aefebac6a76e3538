// Package report renders benchmark results and relative-speed
// comparisons as human-readable text.
package report

import (
	"fmt"
	"io"
	"sort"

	"hyperbench/internal/benchmark"
	"hyperbench/internal/ui"
)

// WriteRunSummary prints the aggregate statistics of a single
// benchmarked command.
func WriteRunSummary(w io.Writer, res benchmark.Result, style ui.OutputStyle) {
	if style.Quiet() {
		return
	}
	styles := ui.NewReportStyles(style.ColorEnabled())

	fmt.Fprintf(w, "  Time (mean ± σ):     %s ± %s    [User: %s, System: %s]\n",
		styles.Speed.Render(FormatDuration(res.Mean)),
		FormatDuration(res.Stddev),
		FormatDuration(res.User),
		FormatDuration(res.System))
	fmt.Fprintf(w, "  Range (min … max):   %s … %s    %d runs\n",
		FormatDuration(res.Min),
		FormatDuration(res.Max),
		len(res.Times))
}

// WriteComparison ranks results by mean time and prints how many times
// faster the fastest command is than each of the others, with the
// propagated uncertainty of every ratio. Fewer than two results is a
// valid no-op: there is nothing to compare.
func WriteComparison(w io.Writer, results []benchmark.Result, style ui.OutputStyle) error {
	if len(results) < 2 {
		return nil
	}

	annotated, err := benchmark.ComputeRelativeSpeed(results)
	if err != nil {
		return err
	}

	// Stable sort keeps the input order among equal means.
	sort.SliceStable(annotated, func(i, j int) bool {
		return benchmark.LessMeanTime(annotated[i].Result, annotated[j].Result)
	})

	styles := ui.NewReportStyles(style.ColorEnabled())
	fastest := annotated[0]

	fmt.Fprintln(w, styles.Header.Render("Summary"))
	fmt.Fprintf(w, "  '%s' ran\n", styles.Command.Render(fastest.Result.Command))

	for _, item := range annotated[1:] {
		fmt.Fprintf(w, "%s ± %s times faster than '%s', -%s%%\n",
			styles.Speed.Render(fmt.Sprintf("%8.2f", item.Ratio)),
			styles.Speed.Render(fmt.Sprintf("%.2f", item.RatioStddev)),
			styles.Other.Render(item.Result.Command),
			styles.Speed.Render(fmt.Sprintf("%.1f", item.PercentChange)))
	}

	return nil
}

// WriteWarning prints a measurement-quality warning.
func WriteWarning(w io.Writer, style ui.OutputStyle, format string, args ...any) {
	if style.Quiet() {
		return
	}
	styles := ui.NewReportStyles(style.ColorEnabled())
	fmt.Fprintf(w, "  %s %s\n",
		styles.Warning.Render("Warning:"),
		fmt.Sprintf(format, args...))
}
