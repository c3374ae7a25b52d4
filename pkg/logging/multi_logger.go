package logging

import "errors"

// MultiLogger copies every entry to several loggers, for example
// a console for the developer and a JSON file for CI.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger combines loggers; nil entries are dropped.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	m := &MultiLogger{}
	for _, l := range loggers {
		if l != nil {
			m.loggers = append(m.loggers, l)
		}
	}
	return m
}

func (m *MultiLogger) each(fn func(Logger)) {
	for _, l := range m.loggers {
		fn(l)
	}
}

func (m *MultiLogger) Info(msg string, fields ...Field) {
	m.each(func(l Logger) { l.Info(msg, fields...) })
}

func (m *MultiLogger) Warn(msg string, fields ...Field) {
	m.each(func(l Logger) { l.Warn(msg, fields...) })
}

func (m *MultiLogger) Error(msg string, fields ...Field) {
	m.each(func(l Logger) { l.Error(msg, fields...) })
}

func (m *MultiLogger) Debug(msg string, fields ...Field) {
	m.each(func(l Logger) { l.Debug(msg, fields...) })
}

// WithFields derives a child of every destination.
func (m *MultiLogger) WithFields(fields ...Field) Logger {
	child := &MultiLogger{loggers: make([]Logger, 0, len(m.loggers))}
	m.each(func(l Logger) {
		child.loggers = append(child.loggers, l.WithFields(fields...))
	})
	return child
}

// Close closes every destination, even after a failure, and
// reports all errors together.
func (m *MultiLogger) Close() error {
	var err error
	m.each(func(l Logger) {
		err = errors.Join(err, l.Close())
	})
	return err
}
