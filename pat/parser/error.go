package parser

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// ErrorContext indicates the environment where parser errors will be displayed
type ErrorContext string

const (
	// ErrorContextTerminal indicates errors will be displayed in terminal with ANSI colors
	ErrorContextTerminal ErrorContext = "terminal"
	// ErrorContextPlain indicates errors will be displayed without ANSI codes (logs, tests)
	ErrorContextPlain ErrorContext = "plain"
)

// ErrorKind categorizes syntax errors for programmatic handling
type ErrorKind string

const (
	ErrorKindEOF     ErrorKind = "eof"     // Input ended while a scan or frame was open
	ErrorKindRepeat  ErrorKind = "repeat"  // Malformed or misplaced <n> modifier
	ErrorKindRange   ErrorKind = "range"   // Malformed :start-end; block
	ErrorKindUnknown ErrorKind = "unknown" // Uncategorized
)

// SyntaxError is the single fault type the parser raises. It carries a
// human-readable message and the zero-based character index at which the
// fault was detected; no partial tree accompanies it.
type SyntaxError struct {
	Kind     ErrorKind // Error category
	Message  string    // Human-readable message
	Offset   int       // Zero-based character index of the fault
	Expected []string  // Terminator(s) that would have satisfied the scan, if any
}

// Error implements the error interface
func (e *SyntaxError) Error() string {
	return e.Format(ErrorContextPlain)
}

// Format generates a context-appropriate error message
func (e *SyntaxError) Format(ctx ErrorContext) string {
	if ctx == ErrorContextTerminal {
		return e.formatTerminal()
	}
	return e.formatPlain()
}

// formatPlain creates a concise message for logs and wrapped errors
func (e *SyntaxError) formatPlain() string {
	msg := e.Message
	if e.Offset >= 0 {
		msg += fmt.Sprintf(" (at index %d)", e.Offset)
	}
	return msg
}

// formatTerminal creates a colored message for terminal display
func (e *SyntaxError) formatTerminal() string {
	msg := pterm.Red(e.Message)
	if e.Offset >= 0 {
		msg += pterm.Gray(fmt.Sprintf("  index %d", e.Offset))
	}
	if len(e.Expected) > 0 {
		msg += "\n" + pterm.LightCyan("Expected: ") + strings.Join(e.Expected, " or ")
	}
	return msg
}

// CaretLine returns a line of spaces sized to the fault index, terminated
// by a caret, for alignment under the offending pattern text.
func (e *SyntaxError) CaretLine() string {
	if e.Offset < 0 {
		return "^"
	}
	return strings.Repeat(" ", e.Offset) + "^"
}

// newSyntaxError creates a SyntaxError with the given kind, offset and message
func newSyntaxError(kind ErrorKind, offset int, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Offset:  offset,
	}
}

// withExpected records the terminators a scan was looking for
func (e *SyntaxError) withExpected(terms ...string) *SyntaxError {
	e.Expected = append(e.Expected, terms...)
	return e
}
