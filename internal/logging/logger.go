// Package logging provides the plugin's logging surface: a nil-safe Logger
// writing timestamped lines to an io.Writer, with verbose-gated detail.
package logging

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

type Logger interface {
	// Log prints a line to the output writer with a timestamp header.
	Log(msg ...any)
	// Logf prints a formatted line to the output writer with a timestamp header.
	Logf(format string, args ...any)
	// Verbose returns the logger when verbose logging is enabled and nil
	// otherwise. A nil Logger is safe to call methods on.
	Verbose() Logger
	// SetVerbose sets the verbose logging flag.
	SetVerbose(verbose bool)
}

var _ Logger = (*logger)(nil)

type logger struct {
	mu      sync.Mutex
	verbose bool
	writer  io.Writer
	now     func() time.Time
}

func NewLogger(output io.Writer) Logger {
	return &logger{writer: output, now: time.Now}
}

func (l *logger) Log(msg ...any) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.writer, l.prefix(), fmt.Sprint(msg...))
}

func (l *logger) Logf(format string, args ...any) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.writer, "%s %s\n", l.prefix(), fmt.Sprintf(format, args...))
}

func (l *logger) Verbose() Logger {
	// Returns a typed nil so chained calls stay safe when verbose is off.
	if l == nil {
		return (*logger)(nil)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.verbose {
		return (*logger)(nil)
	}
	return l
}

func (l *logger) SetVerbose(verbose bool) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = verbose
}

func (l *logger) prefix() string {
	return "[" + l.now().Format("15:04:05.000") + "]"
}

// LogCollector is a Logger accumulating output in memory, for tests.
type LogCollector struct {
	Logger
	sb *strings.Builder
}

func NewLogCollector() *LogCollector {
	sb := &strings.Builder{}
	return &LogCollector{Logger: NewLogger(sb), sb: sb}
}

func (c *LogCollector) String() string {
	return c.sb.String()
}
