package expect

import (
	"io"
	"os"
	"sync"

	"digital.vasic.expect/pkg/config"
	"digital.vasic.expect/pkg/logging"
)

// settings is the per-chain snapshot of engine defaults.
type settings struct {
	logger logging.Logger
	output io.Writer
	soft   bool
}

func builtinSettings() settings {
	return settings{
		logger: logging.NullLogger{},
		output: os.Stderr,
	}
}

var (
	defaultsMu sync.RWMutex
	defaults   = builtinSettings()
	valueLimit = config.DefaultMaxValueLength
)

func currentSettings() settings {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return defaults
}

func currentValueLimit() int {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return valueLimit
}

// Option customizes a single chain.
type Option func(*settings)

// WithLogger sets the logger that records conclusions.
func WithLogger(logger logging.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithOutput sets where Conclude writes the diagnostic of a
// chain that has no TestingT.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		if w != nil {
			s.output = w
		}
	}
}

// WithSoft starts the chain in collect-all-failures mode.
func WithSoft() Option {
	return func(s *settings) {
		s.soft = true
	}
}

// Configure installs cfg as the default for chains created
// afterwards. The previously configured logger is closed.
func Configure(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(logging.Settings{
		Format:  cfg.LogFormat,
		Path:    cfg.LogPath,
		Level:   cfg.LogLevel,
		Verbose: cfg.Verbose,
		Color:   logging.ColorMode(cfg.Color),
		Redact:  cfg.Redact,
	})
	if err != nil {
		return err
	}

	next := builtinSettings()
	next.logger = logger
	next.soft = cfg.Soft

	install(next, cfg.MaxValueLength)
	return nil
}

// ConfigureFromEnvironment loads the configuration named by the
// EXPECT_* environment variables and installs it.
func ConfigureFromEnvironment() error {
	cfg, err := config.FromEnvironment(config.NewEnvLoader())
	if err != nil {
		return err
	}
	return Configure(cfg)
}

// Reset restores the built-in defaults.
func Reset() {
	install(builtinSettings(), config.DefaultMaxValueLength)
}

func install(next settings, limit int) {
	defaultsMu.Lock()
	prev := defaults.logger
	defaults = next
	valueLimit = limit
	defaultsMu.Unlock()

	if prev != nil {
		_ = prev.Close()
	}
}
