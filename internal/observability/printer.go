// Package observability provides formatted terminal output for the CLI:
// boxed summaries, aligned tables and status colouring.
package observability

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/api-catalog/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 10
)

// ANSI escape sequences
const (
	green  = "\033[92m"
	red    = "\033[91m"
	yellow = "\033[93m"
	cyan   = "\033[96m"
	dim    = "\033[2m"
	bold   = "\033[1m"
	reset  = "\033[0m"
)

var statusColors = map[types.Status]string{
	types.StatusPending:  dim,
	types.StatusWorking:  green,
	types.StatusBroken:   red,
	types.StatusPaidOnly: yellow,
	types.StatusNeedsKey: yellow,
	types.StatusSkipped:  dim,
}

// Printer handles formatted output
type Printer struct {
	out   io.Writer
	color bool
}

// NewPrinter creates a new Printer that writes to the given writer. Colour is
// used only on a terminal and only when NO_COLOR is unset.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, color: colorSupported(out)}
}

// WithColor forces colour on or off
func (p *Printer) WithColor(enabled bool) *Printer {
	p.color = enabled
	return p
}

func colorSupported(out io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

func (p *Printer) paint(code, text string) string {
	if !p.color || code == "" {
		return text
	}
	return code + text + reset
}

// Status renders a status padded to width and coloured by kind
func (p *Printer) Status(s types.Status, width int) string {
	return p.paint(statusColors[s], fmt.Sprintf("%-*s", width, s))
}

// Printf writes a plain formatted line
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

// Success prints a green line
func (p *Printer) Success(format string, args ...interface{}) {
	p.Printf("%s\n", p.paint(green, fmt.Sprintf(format, args...)))
}

// Warn prints a yellow line
func (p *Printer) Warn(format string, args ...interface{}) {
	p.Printf("%s\n", p.paint(yellow, fmt.Sprintf(format, args...)))
}

// Fail prints a red line
func (p *Printer) Fail(format string, args ...interface{}) {
	p.Printf("%s\n", p.paint(red, fmt.Sprintf(format, args...)))
}

// Heading prints a bold line
func (p *Printer) Heading(format string, args ...interface{}) {
	p.Printf("%s\n", p.paint(bold, fmt.Sprintf(format, args...)))
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, boxWidth-4), boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most width runes, marking the cut with "..."
func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}

// pad right-pads s with spaces to width runes
func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
