package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.False(t, cfg.Soft)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Equal(t, LogNone, cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, DefaultMaxValueLength, cfg.MaxValueLength)
	assert.NoError(t, cfg.Validate())
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
soft: true
color: never
log_format: json
log_path: /tmp/expect.log
verbose: true
max_value_length: 80
redact:
  - hunter22
`))
	require.NoError(t, err)

	assert.True(t, cfg.Soft)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.Equal(t, LogJSON, cfg.LogFormat)
	assert.Equal(t, "/tmp/expect.log", cfg.LogPath)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 80, cfg.MaxValueLength)
	assert.Equal(t, []string{"hunter22"}, cfg.Redact)
}

func TestParse_EmptyKeepsDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"unknown key", "colour: never\n", "failed to parse config"},
		{"bad yaml", "soft: [\n", "failed to parse config"},
		{"bad color", "color: rainbow\n", "invalid color mode"},
		{"bad format", "log_format: xml\n", "invalid log format"},
		{"bad level", "log_level: loud\n", "invalid log level"},
		{"negative length", "max_value_length: -1\n", "must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expect.yaml")
	require.NoError(t, os.WriteFile(path, []byte("soft: true\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Soft)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestMarshal_RoundTrips(t *testing.T) {
	cfg := Default()
	cfg.Soft = true
	cfg.Redact = []string{"token-value"}

	data, err := cfg.Marshal()
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}
