// Package logger wraps charm/log for structured logging.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// NewFileLogger creates a logger that writes to a file
func NewFileLogger(path string) (*Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})

	cleanup := func() {
		f.Close()
	}

	return &Logger{Logger: l}, cleanup, nil
}

// NewMultiLogger creates a logger that writes to multiple outputs
func NewMultiLogger(writers ...io.Writer) *Logger {
	w := io.MultiWriter(writers...)
	return New(w)
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// ConversionStarted logs the start of a conversion
func (l *Logger) ConversionStarted(id, input, from, to string) {
	l.Info("conversion started",
		"id", id,
		"input", input,
		"from", from,
		"to", to)
}

// ConversionCompleted logs a finished conversion
func (l *Logger) ConversionCompleted(id string, diagnostics int, duration time.Duration) {
	l.Info("conversion completed",
		"id", id,
		"diagnostics", diagnostics,
		"duration", duration.Round(time.Millisecond))
}

// Diagnostic logs one diagnostic collected from the document
func (l *Logger) Diagnostic(input, severity, message string) {
	l.Warn("diagnostic",
		"input", input,
		"severity", severity,
		"message", message)
}

// ReadError logs a failure to read an input file
func (l *Logger) ReadError(input string, err error) {
	l.Error("read failed",
		"input", input,
		"error", err)
}

// WriteError logs a failure to write an output file
func (l *Logger) WriteError(output string, err error) {
	l.Error("write failed",
		"output", output,
		"error", err)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(from, to, floor string) {
	l.Debug("config loaded",
		"default_from", from,
		"default_to", to,
		"message_floor", floor)
}
