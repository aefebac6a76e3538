// Package ui selects how benchmark progress and results are rendered:
// output styles, terminal colors, and progress indicators.
package ui

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
)

// OutputStyle is the closed set of rendering modes selectable with
// --style.
type OutputStyle int

const (
	// StyleAuto picks StyleFull on a color terminal and StyleBasic
	// otherwise.
	StyleAuto OutputStyle = iota
	// StyleBasic disables colors and progress output.
	StyleBasic
	// StyleFull shows a colored progress bar and colored results.
	StyleFull
	// StyleNoColor shows the progress bar without colors.
	StyleNoColor
	// StyleColor shows a colored spinner instead of a progress bar.
	StyleColor
	// StyleNone suppresses all benchmarking output.
	StyleNone
)

// ParseOutputStyle maps a --style flag value to its OutputStyle.
func ParseOutputStyle(s string) (OutputStyle, error) {
	switch s {
	case "auto":
		return StyleAuto, nil
	case "basic":
		return StyleBasic, nil
	case "full":
		return StyleFull, nil
	case "nocolor":
		return StyleNoColor, nil
	case "color":
		return StyleColor, nil
	case "none":
		return StyleNone, nil
	}
	return StyleAuto, fmt.Errorf("unknown output style %q (expected auto, basic, full, nocolor, color or none)", s)
}

func (s OutputStyle) String() string {
	switch s {
	case StyleAuto:
		return "auto"
	case StyleBasic:
		return "basic"
	case StyleFull:
		return "full"
	case StyleNoColor:
		return "nocolor"
	case StyleColor:
		return "color"
	case StyleNone:
		return "none"
	}
	return "unknown"
}

// Resolve replaces StyleAuto with a concrete style based on the
// terminal attached to stdout.
func (s OutputStyle) Resolve() OutputStyle {
	if s != StyleAuto {
		return s
	}
	out := termenv.NewOutput(os.Stdout)
	if out.EnvNoColor() || out.Profile == termenv.Ascii {
		return StyleBasic
	}
	return StyleFull
}

// ColorEnabled reports whether result output should use colors.
func (s OutputStyle) ColorEnabled() bool {
	return s == StyleFull || s == StyleColor
}

// Quiet reports whether all benchmarking output is suppressed.
func (s OutputStyle) Quiet() bool {
	return s == StyleNone
}
