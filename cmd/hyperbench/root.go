package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hyperbench/internal/benchmark"
	"hyperbench/internal/config"
	"hyperbench/internal/export"
	"hyperbench/internal/git"
	"hyperbench/internal/history"
	"hyperbench/internal/params"
	"hyperbench/internal/report"
	"hyperbench/internal/runner"
	"hyperbench/internal/ui"
)

var exit = os.Exit
var cfgFile string

// Factories swapped out in tests.
var (
	newBenchmarker = func(r runner.CommandRunner, ind ui.Indicator, out io.Writer, style ui.OutputStyle, opts runner.Options) benchRunner {
		return runner.NewBenchmarker(r, ind, out, style, opts)
	}
	newHistoryStore = func(path string) (history.Store, error) {
		return history.NewSQLiteStore(path)
	}
)

// benchRunner is what the root command needs from a Benchmarker.
type benchRunner interface {
	Benchmark(ctx context.Context, command, parameter string) (benchmark.Result, error)
}

var rootCmd = newRootCmd()

// Execute runs the root command. Called once from main.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hyperbench [flags] COMMAND...",
		Short: "A command-line benchmarking tool",
		Long: `hyperbench runs each given command repeatedly through a shell,
measures wall-clock and CPU time, and prints aggregate statistics plus a
relative-speed comparison of all benchmarked commands.

Commands can be swept over a set of parameter values with
--parameter-scan or --parameter-list; every {name} placeholder in the
command line is replaced by the current value.`,
		Args:          cobra.MinimumNArgs(1),
		RunE:          runRoot,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./hyperbench.yaml)")

	cmd.Flags().IntP("warmup", "w", 0, "Number of untimed warmup runs before the benchmark")
	cmd.Flags().IntP("runs", "r", 0, "Exact number of timed runs (default: adaptive)")
	cmd.Flags().IntP("min-runs", "m", 10, "Minimum number of timed runs")
	cmd.Flags().IntP("max-runs", "M", 0, "Maximum number of timed runs (0 = no limit)")
	cmd.Flags().StringP("prepare", "p", "", "Command to run before every timed run")
	cmd.Flags().StringP("cleanup", "c", "", "Command to run after the last timed run")
	cmd.Flags().StringP("shell", "S", "", "Shell to run commands with (default: sh, cmd on windows)")
	cmd.Flags().String("style", "auto", "Output style: auto, basic, full, nocolor, color or none")
	cmd.Flags().Bool("show-output", false, "Print the benchmarked command's output instead of discarding it")
	cmd.Flags().BoolP("ignore-failure", "i", false, "Keep timing commands that exit non-zero")

	cmd.Flags().StringP("parameter-scan", "P", "", "Sweep an integer range: 'NAME MIN MAX [STEP]'")
	cmd.Flags().StringP("parameter-list", "L", "", "Sweep a value list: 'NAME v1,v2,...' (escape commas with backslash)")

	cmd.Flags().String("export-json", "", "Write results to the given file as JSON")
	cmd.Flags().String("export-csv", "", "Write results to the given file as CSV")
	cmd.Flags().String("export-markdown", "", "Write results to the given file as a Markdown table")
	cmd.Flags().String("export-yaml", "", "Write results to the given file as YAML")

	cmd.Flags().Bool("save", false, "Save results to the benchmark history")

	for _, key := range []string{"warmup", "runs", "shell", "style"} {
		viper.BindPFlag(key, cmd.Flags().Lookup(key))
	}
	viper.BindPFlag("min_runs", cmd.Flags().Lookup("min-runs"))
	viper.BindPFlag("max_runs", cmd.Flags().Lookup("max-runs"))
	viper.BindPFlag("show_output", cmd.Flags().Lookup("show-output"))
	viper.BindPFlag("ignore_failure", cmd.Flags().Lookup("ignore-failure"))

	return cmd
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if err := config.Load(cfgFile); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load configuration: %v\n", err)
	}
}

// benchCommand is one fully instantiated command line to benchmark.
type benchCommand struct {
	command   string
	parameter string
}

// expandCommands applies the parameter sweep flags to the raw command
// arguments.
func expandCommands(cmd *cobra.Command, args []string) ([]benchCommand, error) {
	scan, _ := cmd.Flags().GetString("parameter-scan")
	list, _ := cmd.Flags().GetString("parameter-list")
	if scan != "" && list != "" {
		return nil, fmt.Errorf("--parameter-scan and --parameter-list are mutually exclusive")
	}

	var name string
	var values []string
	switch {
	case scan != "":
		fields := strings.Fields(scan)
		if len(fields) != 3 && len(fields) != 4 {
			return nil, fmt.Errorf("--parameter-scan expects 'NAME MIN MAX [STEP]', got %q", scan)
		}
		name = fields[0]
		min, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("invalid parameter range minimum %q", fields[1])
		}
		max, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("invalid parameter range maximum %q", fields[2])
		}
		step := 1
		if len(fields) == 4 {
			step, err = strconv.Atoi(fields[3])
			if err != nil {
				return nil, fmt.Errorf("invalid parameter range step %q", fields[3])
			}
		}
		values, err = params.ExpandRange(min, max, step)
		if err != nil {
			return nil, err
		}

	case list != "":
		parts := strings.SplitN(list, " ", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("--parameter-list expects 'NAME v1,v2,...', got %q", list)
		}
		name = parts[0]
		values = params.Tokenize(parts[1])

	default:
		commands := make([]benchCommand, len(args))
		for i, arg := range args {
			commands[i] = benchCommand{command: arg}
		}
		return commands, nil
	}

	var commands []benchCommand
	for _, arg := range args {
		for _, value := range values {
			commands = append(commands, benchCommand{
				command:   params.Substitute(arg, name, value),
				parameter: value,
			})
		}
	}
	return commands, nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	style, err := ui.ParseOutputStyle(viper.GetString("style"))
	if err != nil {
		return err
	}
	style = style.Resolve()

	commands, err := expandCommands(cmd, args)
	if err != nil {
		return err
	}

	prepare, _ := cmd.Flags().GetString("prepare")
	cleanup, _ := cmd.Flags().GetString("cleanup")
	opts := runner.Options{
		Runs:                viper.GetInt("runs"),
		MinRuns:             viper.GetInt("min_runs"),
		MaxRuns:             viper.GetInt("max_runs"),
		Warmup:              viper.GetInt("warmup"),
		Prepare:             prepare,
		Cleanup:             cleanup,
		MinBenchmarkingTime: viper.GetFloat64("min_benchmarking_time"),
	}

	executor := &runner.Executor{
		Shell:         viper.GetString("shell"),
		ShowOutput:    viper.GetBool("show_output"),
		IgnoreFailure: viper.GetBool("ignore_failure"),
		Stdout:        cmd.OutOrStdout(),
		Stderr:        cmd.ErrOrStderr(),
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	styles := ui.NewReportStyles(style.ColorEnabled())

	results := make([]benchmark.Result, 0, len(commands))
	for i, bc := range commands {
		if !style.Quiet() {
			fmt.Fprintf(out, "%s %s\n",
				styles.Header.Render(fmt.Sprintf("Benchmark %d:", i+1)),
				styles.Command.Render(bc.command))
		}

		bench := newBenchmarker(executor, ui.NewIndicator(style, out), cmd.ErrOrStderr(), style, opts)
		res, err := bench.Benchmark(ctx, bc.command, bc.parameter)
		if err != nil {
			return err
		}
		results = append(results, res)

		if !style.Quiet() {
			report.WriteRunSummary(out, res, style)
			fmt.Fprintln(out)
		}
	}

	if !style.Quiet() && len(results) >= 2 {
		if err := report.WriteComparison(out, results, style); err != nil {
			return err
		}
	}

	run := benchmark.Run{
		Timestamp: time.Now(),
		Commit:    git.NewClient("").Describe(),
		Results:   results,
	}

	if err := exportRun(cmd, run); err != nil {
		return err
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		store, err := newHistoryStore(viper.GetString("history_path"))
		if err != nil {
			return fmt.Errorf("failed to open benchmark history: %w", err)
		}
		defer store.Close()
		if err := store.Save(run); err != nil {
			return fmt.Errorf("failed to save benchmark history: %w", err)
		}
	}

	return nil
}

func exportRun(cmd *cobra.Command, run benchmark.Run) error {
	for _, format := range []string{"json", "csv", "markdown", "yaml"} {
		path, _ := cmd.Flags().GetString("export-" + format)
		if path == "" {
			continue
		}
		exporter, err := export.New(format)
		if err != nil {
			return err
		}
		if err := export.WriteFile(path, exporter, run); err != nil {
			return fmt.Errorf("failed to export %s results: %w", format, err)
		}
	}
	return nil
}

