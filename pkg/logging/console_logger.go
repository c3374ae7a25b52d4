package logging

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// ColorMode selects whether console output is colorized.
type ColorMode string

const (
	// ColorAuto defers to fatih/color terminal detection.
	ColorAuto ColorMode = "auto"
	// ColorAlways forces ANSI colors.
	ColorAlways ColorMode = "always"
	// ColorNever disables ANSI colors.
	ColorNever ColorMode = "never"
)

// palette holds the per-level color printers of a console
// logger.
type palette struct {
	gray   *color.Color
	blue   *color.Color
	yellow *color.Color
	red    *color.Color
}

func newPalette(mode ColorMode) palette {
	p := palette{
		gray:   color.New(color.FgHiBlack),
		blue:   color.New(color.FgBlue),
		yellow: color.New(color.FgYellow),
		red:    color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.gray, p.blue, p.yellow, p.red} {
		switch mode {
		case ColorAlways:
			c.EnableColor()
		case ColorNever:
			c.DisableColor()
		}
	}
	return p
}

// ConsoleLogger writes human-readable, optionally colored lines.
// Multi-line messages such as expectation diagnostics are kept
// intact below the level prefix.
type ConsoleLogger struct {
	mu      *sync.Mutex
	output  io.Writer
	level   LogLevel
	verbose bool
	colors  palette
	fields  map[string]any
}

// NewConsoleLogger creates a console logger writing to stderr.
// When verbose is true, debug messages are emitted.
func NewConsoleLogger(verbose bool, mode ColorMode) *ConsoleLogger {
	return NewConsoleLoggerTo(os.Stderr, verbose, mode)
}

// NewConsoleLoggerTo creates a console logger writing to w.
func NewConsoleLoggerTo(
	w io.Writer, verbose bool, mode ColorMode,
) *ConsoleLogger {
	return &ConsoleLogger{
		mu:      &sync.Mutex{},
		output:  w,
		verbose: verbose,
		colors:  newPalette(mode),
		fields:  make(map[string]any),
	}
}

func (c *ConsoleLogger) log(
	level LogLevel, tint *color.Color, msg string, fields ...Field,
) {
	if level < c.level {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	ts := time.Now().Format("15:04:05")

	var fieldStr string
	all := mergeFields(c.fields, fields)
	if len(all) > 0 {
		keys := make([]string, 0, len(all))
		for k := range all {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%v", k, all[k]))
		}
		fieldStr = " " + c.colors.gray.Sprintf(
			"{%s}", strings.Join(parts, ", "),
		)
	}

	fmt.Fprintf(
		c.output, "%s [%s] %s%s\n",
		c.colors.gray.Sprint(ts),
		tint.Sprintf("%-5s", level.String()),
		msg, fieldStr,
	)
}

// Info logs an informational message.
func (c *ConsoleLogger) Info(msg string, fields ...Field) {
	c.log(LevelInfo, c.colors.blue, msg, fields...)
}

// Warn logs a warning message.
func (c *ConsoleLogger) Warn(msg string, fields ...Field) {
	c.log(LevelWarn, c.colors.yellow, msg, fields...)
}

// Error logs an error message.
func (c *ConsoleLogger) Error(msg string, fields ...Field) {
	c.log(LevelError, c.colors.red, msg, fields...)
}

// Debug logs a debug message only if verbose is enabled.
func (c *ConsoleLogger) Debug(msg string, fields ...Field) {
	if c.verbose {
		c.log(LevelDebug, c.colors.gray, msg, fields...)
	}
}

// WithFields returns a new Logger with additional default
// fields. The child shares the parent's output and lock.
func (c *ConsoleLogger) WithFields(fields ...Field) Logger {
	return &ConsoleLogger{
		mu:      c.mu,
		output:  c.output,
		level:   c.level,
		verbose: c.verbose,
		colors:  c.colors,
		fields:  mergeFields(c.fields, fields),
	}
}

// Close is a no-op for ConsoleLogger.
func (c *ConsoleLogger) Close() error {
	return nil
}
