package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// StatusReporter writes colored, user-facing workflow messages.
type StatusReporter struct {
	writer       io.Writer
	successColor *color.Color
	warningColor *color.Color
	errorColor   *color.Color
}

// NewStatusReporter constructs a reporter bound to the provided writer.
func NewStatusReporter(writer io.Writer) *StatusReporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &StatusReporter{
		writer:       writer,
		successColor: color.New(color.FgGreen),
		warningColor: color.New(color.FgYellow),
		errorColor:   color.New(color.FgRed, color.Bold),
	}
}

// Plainf writes an uncolored message.
func (reporter *StatusReporter) Plainf(format string, formatArguments ...any) {
	fmt.Fprintf(reporter.writer, format, formatArguments...)
}

// Successf writes a green message.
func (reporter *StatusReporter) Successf(format string, formatArguments ...any) {
	reporter.successColor.Fprintf(reporter.writer, format, formatArguments...)
}

// Warningf writes a yellow message.
func (reporter *StatusReporter) Warningf(format string, formatArguments ...any) {
	reporter.warningColor.Fprintf(reporter.writer, format, formatArguments...)
}

// Errorf writes a bold red message.
func (reporter *StatusReporter) Errorf(format string, formatArguments ...any) {
	reporter.errorColor.Fprintf(reporter.writer, format, formatArguments...)
}
