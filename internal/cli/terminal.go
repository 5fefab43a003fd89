// Package cli renders the console's notification surface on a terminal:
// colored status lines, a loading spinner, and confirmation prompts.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Color codes for terminal output
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorCyan   = "\033[36m"
	ColorBold   = "\033[1m"
)

// Terminal presents notifications and confirmation dialogs on a TTY. It
// satisfies the console Notifier contract and is safe for concurrent use;
// the wizard reports per-line failures from multiple goroutines.
type Terminal struct {
	mu       sync.Mutex
	out      io.Writer
	in       *bufio.Reader
	colorize bool
}

// NewTerminal creates a terminal notifier on stdin/stdout.
func NewTerminal() *Terminal {
	return &Terminal{
		out:      os.Stdout,
		in:       bufio.NewReader(os.Stdin),
		colorize: isTerminal(),
	}
}

// NewTerminalWith creates a terminal notifier on explicit streams, with
// color disabled. Used by tests.
func NewTerminalWith(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		out: out,
		in:  bufio.NewReader(in),
	}
}

// Success prints a success line.
func (t *Terminal) Success(message string) { t.line("✓", ColorGreen, message) }

// Error prints an error line.
func (t *Terminal) Error(message string) { t.line("✗", ColorRed, message) }

// Warning prints a warning line.
func (t *Terminal) Warning(message string) { t.line("⚠", ColorYellow, message) }

// Info prints an informational line.
func (t *Terminal) Info(message string) { t.line("ℹ", ColorBlue, message) }

// ConfirmDelete asks for an explicit decision before a destructive
// action. Only "y"/"yes" confirms; anything else declines.
func (t *Terminal) ConfirmDelete() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprint(t.out, t.color("Delete this record? [y/N] ", ColorBold))
	answer, err := t.in.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// Prompt prints a label and reads one trimmed line of input. An input
// error reads as an empty answer.
func (t *Terminal) Prompt(label string) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprint(t.out, t.color(label+" ", ColorBold))
	answer, err := t.in.ReadString('\n')
	if err != nil {
		return strings.TrimSpace(answer)
	}
	return strings.TrimSpace(answer)
}

// Loading shows a spinner until the returned stop function is called.
func (t *Terminal) Loading(label string) func() {
	s := newSpinner(t.out, label, t.colorize)
	s.Start()
	return s.Stop
}

func (t *Terminal) line(mark, color, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "%s %s\n", t.color(mark, color), message)
}

func (t *Terminal) color(text, color string) string {
	if !t.colorize {
		return text
	}
	return color + text + ColorReset
}

// isTerminal checks if stdout is a terminal
func isTerminal() bool {
	fileInfo, _ := os.Stdout.Stat()
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
