package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestConsole(buf *bytes.Buffer, verbose bool) *ConsoleLogger {
	return NewConsoleLoggerTo(buf, verbose, ColorNever)
}

func TestConsoleLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		log   func(l *ConsoleLogger)
		level string
	}{
		{"info", func(l *ConsoleLogger) { l.Info("hello world") }, "INFO"},
		{"warn", func(l *ConsoleLogger) { l.Warn("hello world") }, "WARN"},
		{"error", func(l *ConsoleLogger) { l.Error("hello world") }, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(newTestConsole(&buf, false))

			output := buf.String()
			assert.Contains(t, output, tt.level)
			assert.Contains(t, output, "hello world")
		})
	}
}

func TestConsoleLogger_DebugRequiresVerbose(t *testing.T) {
	var quiet, loud bytes.Buffer

	newTestConsole(&quiet, false).Debug("hidden")
	newTestConsole(&loud, true).Debug("shown")

	assert.Empty(t, quiet.String())
	assert.Contains(t, loud.String(), "DEBUG")
	assert.Contains(t, loud.String(), "shown")
}

func TestConsoleLogger_MinimumLevel(t *testing.T) {
	var buf bytes.Buffer
	l := newTestConsole(&buf, true)
	l.level = LevelWarn

	l.Debug("debug entry")
	l.Info("info entry")
	l.Warn("warn entry")

	assert.NotContains(t, buf.String(), "debug entry")
	assert.NotContains(t, buf.String(), "info entry")
	assert.Contains(t, buf.String(), "warn entry")
}

func TestConsoleLogger_FieldsSorted(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestConsole(&buf, false)

	logger.Info("msg", LogField("zeta", 1), LogField("alpha", "a"))

	assert.Contains(t, buf.String(), "{alpha=a, zeta=1}")
}

func TestConsoleLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	parent := newTestConsole(&buf, false)

	child := parent.WithFields(LogField("expression", "x"))
	child.Error("failed")
	parent.Info("plain")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "expression=x")
	assert.NotContains(t, lines[1], "expression=x")
}

func TestConsoleLogger_ColorNeverHasNoEscapes(t *testing.T) {
	var buf bytes.Buffer
	newTestConsole(&buf, false).Error("plain")

	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestConsoleLogger_ColorAlways(t *testing.T) {
	var buf bytes.Buffer
	NewConsoleLoggerTo(&buf, false, ColorAlways).Error("loud")

	assert.Contains(t, buf.String(), "\x1b[")
}

func TestConsoleLogger_Close(t *testing.T) {
	assert.NoError(t, NewConsoleLogger(false, ColorNever).Close())
}
