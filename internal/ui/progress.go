package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
)

// Indicator shows the progress of a long-running measurement loop. The
// benchmark loop drives it; implementations decide what (if anything)
// appears on screen.
type Indicator interface {
	Start(msg string, total int)
	Increment()
	SetMessage(msg string)
	Finish()
}

// NewIndicator returns the progress indicator for the given output
// style: a progress bar for StyleFull and StyleNoColor, a spinner for
// StyleColor, and a silent no-op for everything else.
func NewIndicator(style OutputStyle, w io.Writer) Indicator {
	switch style {
	case StyleFull, StyleNoColor:
		return newBarIndicator(w, style.ColorEnabled())
	case StyleColor:
		return newSpinnerIndicator(w)
	}
	return hiddenIndicator{}
}

// hiddenIndicator is the quiet mode: it renders nothing.
type hiddenIndicator struct{}

func (hiddenIndicator) Start(string, int) {}
func (hiddenIndicator) Increment()        {}
func (hiddenIndicator) SetMessage(string) {}
func (hiddenIndicator) Finish()           {}

// barIndicator redraws a single line with a spinner frame, a message
// and a progress bar.
type barIndicator struct {
	w      io.Writer
	bar    progress.Model
	frames spinner.Spinner
	frame  int
	msg    string
	total  int
	done   int
}

func newBarIndicator(w io.Writer, colored bool) *barIndicator {
	opts := []progress.Option{
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	}
	if colored {
		opts = append(opts, progress.WithDefaultGradient())
	} else {
		opts = append(opts, progress.WithSolidFill("7"))
	}
	return &barIndicator{
		w:      w,
		bar:    progress.New(opts...),
		frames: spinner.MiniDot,
	}
}

func (b *barIndicator) Start(msg string, total int) {
	b.msg = msg
	b.total = total
	b.done = 0
	b.render()
}

func (b *barIndicator) Increment() {
	b.done++
	b.frame = (b.frame + 1) % len(b.frames.Frames)
	b.render()
}

func (b *barIndicator) SetMessage(msg string) {
	b.msg = msg
	b.render()
}

func (b *barIndicator) Finish() {
	// Clear the progress line so the report starts on a clean row.
	fmt.Fprintf(b.w, "\r%s\r", strings.Repeat(" ", 80))
}

func (b *barIndicator) render() {
	percent := 0.0
	if b.total > 0 {
		percent = float64(b.done) / float64(b.total)
		if percent > 1 {
			percent = 1
		}
	}
	fmt.Fprintf(b.w, "\r %s %-30s %s %d/%d",
		b.frames.Frames[b.frame], b.msg, b.bar.ViewAs(percent), b.done, b.total)
}

// spinnerIndicator animates a spinner next to the message, without a
// bar. Used when total progress is not worth a full bar.
type spinnerIndicator struct {
	w      io.Writer
	frames spinner.Spinner
	frame  int
	msg    string
}

func newSpinnerIndicator(w io.Writer) *spinnerIndicator {
	return &spinnerIndicator{w: w, frames: spinner.MiniDot}
}

func (s *spinnerIndicator) Start(msg string, total int) {
	s.msg = msg
	s.render()
}

func (s *spinnerIndicator) Increment() {
	s.frame = (s.frame + 1) % len(s.frames.Frames)
	s.render()
}

func (s *spinnerIndicator) SetMessage(msg string) {
	s.msg = msg
	s.render()
}

func (s *spinnerIndicator) Finish() {
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", 80))
}

func (s *spinnerIndicator) render() {
	fmt.Fprintf(s.w, "\r %s %s", s.frames.Frames[s.frame], s.msg)
}
