package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hyperbench/internal/benchmark"
	"hyperbench/internal/report"
	"hyperbench/internal/ui"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved benchmark runs",
	Long: `Lists the benchmark runs saved with --save, oldest first, with the
fastest command of each run.`,
	RunE: runHistory,
}

var historyCompareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the results of the most recent saved run",
	RunE:  runHistoryCompare,
}

func init() {
	historyCmd.AddCommand(historyCompareCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := newHistoryStore(viper.GetString("history_path"))
	if err != nil {
		return fmt.Errorf("failed to open benchmark history: %w", err)
	}
	defer store.Close()

	runs, err := store.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load benchmark history: %w", err)
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No saved benchmark runs.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "WHEN\tCOMMIT\tCOMMANDS\tFASTEST")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Commit,
			len(run.Results),
			fastestCommand(run.Results))
	}
	return w.Flush()
}

func runHistoryCompare(cmd *cobra.Command, args []string) error {
	store, err := newHistoryStore(viper.GetString("history_path"))
	if err != nil {
		return fmt.Errorf("failed to open benchmark history: %w", err)
	}
	defer store.Close()

	run, err := store.LoadLatest()
	if err != nil {
		return fmt.Errorf("failed to load benchmark history: %w", err)
	}
	if run == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "No saved benchmark runs.")
		return nil
	}
	if len(run.Results) < 2 {
		fmt.Fprintln(cmd.OutOrStdout(), "The last saved run has a single command; nothing to compare.")
		return nil
	}

	style, err := ui.ParseOutputStyle(viper.GetString("style"))
	if err != nil {
		return err
	}
	return report.WriteComparison(cmd.OutOrStdout(), run.Results, style.Resolve())
}

func fastestCommand(results []benchmark.Result) string {
	if len(results) == 0 {
		return "-"
	}
	fastest := &results[0]
	for i := range results[1:] {
		if benchmark.LessMeanTime(&results[i+1], fastest) {
			fastest = &results[i+1]
		}
	}
	return fastest.Command
}
