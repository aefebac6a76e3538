// Package runner executes benchmarked commands through an intermediate
// shell and measures their wall-clock and CPU time.
package runner

import "runtime"

// DefaultShell returns the shell binary used to run commands on this
// platform and the flag that makes it execute a command string.
func DefaultShell() (shell, flag string) {
	if runtime.GOOS == "windows" {
		return "cmd", "/C"
	}
	return "sh", "-c"
}
