package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"
)

// Logger provides leveled logging for the ingest and recommend pipelines.
// Info/Warn/Debug go to stdout, Error to stderr. Debug output is dropped
// unless verbose mode is enabled.
type Logger struct {
	out     *log.Logger
	err     *log.Logger
	verbose bool
}

// New creates a Logger writing to stdout/stderr.
func New(verbose bool) *Logger {
	return &Logger{
		out:     log.New(os.Stdout, "", 0),
		err:     log.New(os.Stderr, "", 0),
		verbose: verbose,
	}
}

// NewWithWriters creates a Logger with custom writers, for tests.
func NewWithWriters(out, err io.Writer, verbose bool) *Logger {
	return &Logger{
		out:     log.New(out, "", 0),
		err:     log.New(err, "", 0),
		verbose: verbose,
	}
}

func timestamp() string {
	return time.Now().Format("2006-01-02 15:04:05")
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...any) {
	l.out.Printf(fmt.Sprintf("[%s] INFO  %s", timestamp(), format), args...)
}

// Warn logs a warning.
func (l *Logger) Warn(format string, args ...any) {
	l.out.Printf(fmt.Sprintf("[%s] WARN  %s", timestamp(), format), args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...any) {
	l.err.Printf(fmt.Sprintf("[%s] ERROR %s", timestamp(), format), args...)
}

// Debug logs a debug message when verbose mode is on.
func (l *Logger) Debug(format string, args ...any) {
	if !l.verbose {
		return
	}
	l.out.Printf(fmt.Sprintf("[%s] DEBUG %s", timestamp(), format), args...)
}
