package runner

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"
)

// Timing is the measured cost of a single command invocation, in
// seconds.
type Timing struct {
	Real   float64
	User   float64
	System float64
}

// CommandRunner runs one command once and reports its timing.
type CommandRunner interface {
	Run(ctx context.Context, command string) (Timing, error)
}

// Executor implements CommandRunner by spawning the command through a
// shell.
type Executor struct {
	// Shell overrides the platform default shell binary.
	Shell string

	// ShowOutput connects the command's stdout/stderr to Stdout and
	// Stderr instead of discarding them.
	ShowOutput bool

	// IgnoreFailure keeps the timing of commands that exit non-zero
	// instead of aborting the benchmark.
	IgnoreFailure bool

	Stdout io.Writer
	Stderr io.Writer
}

// Run executes command once and measures wall-clock time plus the
// user/system CPU time reported by the OS for the spawned process tree.
func (e *Executor) Run(ctx context.Context, command string) (Timing, error) {
	shell, flag := DefaultShell()
	if e.Shell != "" {
		shell = e.Shell
	}

	cmd := exec.CommandContext(ctx, shell, flag, command)
	if e.ShowOutput {
		cmd.Stdout = e.Stdout
		cmd.Stderr = e.Stderr
	}

	start := time.Now()
	err := cmd.Run()
	wall := time.Since(start).Seconds()

	if ctx.Err() != nil {
		return Timing{}, ctx.Err()
	}

	if err != nil {
		if _, isExit := err.(*exec.ExitError); isExit && e.IgnoreFailure {
			// Non-zero exit, but the process ran and was timed.
		} else if isExit {
			return Timing{}, fmt.Errorf(
				"command %q terminated with a non-zero exit code: %w (use --ignore-failure to continue anyway)",
				command, err)
		} else {
			return Timing{}, fmt.Errorf("failed to run command %q: %w", command, err)
		}
	}

	timing := Timing{Real: wall}
	if state := cmd.ProcessState; state != nil {
		timing.User = state.UserTime().Seconds()
		timing.System = state.SystemTime().Seconds()
	}
	return timing, nil
}
