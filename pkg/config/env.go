package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// Environment variables read by ApplyEnv.
const (
	EnvConfigFile     = "EXPECT_CONFIG"
	EnvFile           = "EXPECT_ENV_FILE"
	EnvSoft           = "EXPECT_SOFT"
	EnvColor          = "EXPECT_COLOR"
	EnvLogFormat      = "EXPECT_LOG_FORMAT"
	EnvLogPath        = "EXPECT_LOG_PATH"
	EnvLogLevel       = "EXPECT_LOG_LEVEL"
	EnvVerbose        = "EXPECT_VERBOSE"
	EnvMaxValueLength = "EXPECT_MAX_VALUE_LENGTH"
	EnvRedact         = "EXPECT_REDACT"
)

// DefaultEnvFile is loaded by FromEnvironment when EnvFile is
// unset and the file exists in the working directory.
const DefaultEnvFile = ".env"

// EnvLoader resolves variables from .env files with the process
// environment taking precedence.
type EnvLoader struct {
	mu   sync.RWMutex
	vars map[string]string
}

// NewEnvLoader creates an empty loader.
func NewEnvLoader() *EnvLoader {
	return &EnvLoader{vars: make(map[string]string)}
}

// Load merges the variables of a .env file into the loader.
// Later files override earlier ones.
func (l *EnvLoader) Load(path string) error {
	vars, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for k, v := range vars {
		l.vars[k] = v
	}
	return nil
}

// Get returns the value of key; the OS environment wins over
// loaded files.
func (l *EnvLoader) Get(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.vars[key]
}

// GetWithDefault returns the value of key or defaultValue.
func (l *EnvLoader) GetWithDefault(key, defaultValue string) string {
	if v := l.Get(key); v != "" {
		return v
	}
	return defaultValue
}

// ApplyEnv overrides cfg with any EXPECT_* variables visible to
// the loader, then validates the result.
func ApplyEnv(cfg *Config, l *EnvLoader) error {
	if v := l.Get(EnvSoft); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSoft, err)
		}
		cfg.Soft = b
	}
	if v := l.Get(EnvVerbose); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvVerbose, err)
		}
		cfg.Verbose = b
	}
	if v := l.Get(EnvMaxValueLength); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxValueLength, err)
		}
		cfg.MaxValueLength = n
	}
	cfg.Color = l.GetWithDefault(EnvColor, cfg.Color)
	cfg.LogFormat = l.GetWithDefault(EnvLogFormat, cfg.LogFormat)
	cfg.LogPath = l.GetWithDefault(EnvLogPath, cfg.LogPath)
	cfg.LogLevel = l.GetWithDefault(EnvLogLevel, cfg.LogLevel)

	if v := l.Get(EnvRedact); v != "" {
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				cfg.Redact = append(cfg.Redact, s)
			}
		}
	}

	return cfg.Validate()
}

// FromEnvironment builds a Config from the .env file named by
// EXPECT_ENV_FILE (or ./.env when present), then the YAML file
// named by EXPECT_CONFIG, then the EXPECT_* overrides.
func FromEnvironment(l *EnvLoader) (*Config, error) {
	if err := loadEnvFile(l); err != nil {
		return nil, err
	}

	cfg := Default()
	if path := l.Get(EnvConfigFile); path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := ApplyEnv(cfg, l); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadEnvFile(l *EnvLoader) error {
	if path := l.Get(EnvFile); path != "" {
		return l.Load(path)
	}
	if _, err := os.Stat(DefaultEnvFile); err != nil {
		return nil
	}
	return l.Load(DefaultEnvFile)
}
