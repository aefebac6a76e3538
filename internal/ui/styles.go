package ui

import "github.com/charmbracelet/lipgloss"

// ReportStyles centralizes the lipgloss styles used by result and
// comparison output.
type ReportStyles struct {
	Header   lipgloss.Style // section headers ("Summary", "Benchmark 1: ...")
	Command  lipgloss.Style // the fastest command
	Other    lipgloss.Style // every other command
	Speed    lipgloss.Style // relative speed figures
	Warning  lipgloss.Style
	ErrorMsg lipgloss.Style
}

// NewReportStyles returns the style set for colored output, or inert
// styles when colors are disabled.
func NewReportStyles(colored bool) ReportStyles {
	if !colored {
		return ReportStyles{
			Header:   lipgloss.NewStyle(),
			Command:  lipgloss.NewStyle(),
			Other:    lipgloss.NewStyle(),
			Speed:    lipgloss.NewStyle(),
			Warning:  lipgloss.NewStyle(),
			ErrorMsg: lipgloss.NewStyle(),
		}
	}

	return ReportStyles{
		Header: lipgloss.NewStyle().Bold(true),
		Command: lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")), // Cyan
		Other: lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")), // Magenta
		Speed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("2")). // Green
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("3")), // Yellow
		ErrorMsg: lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")). // Red
			Bold(true),
	}
}
