package report

import "fmt"

// FormatDuration renders a duration in seconds with a unit adapted to
// its magnitude.
func FormatDuration(seconds float64) string {
	switch {
	case seconds < 0.001:
		return fmt.Sprintf("%.1f µs", seconds*1e6)
	case seconds < 1:
		return fmt.Sprintf("%.1f ms", seconds*1e3)
	default:
		return fmt.Sprintf("%.3f s", seconds)
	}
}
