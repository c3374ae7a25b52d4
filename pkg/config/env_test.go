package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func loaderWith(t *testing.T, content string) *EnvLoader {
	t.Helper()
	l := NewEnvLoader()
	require.NoError(t, l.Load(writeEnvFile(t, t.TempDir(), content)))
	return l
}

func TestEnvLoader_Load(t *testing.T) {
	l := loaderWith(t, `
# comment
EXPECT_TEST_A=plain
EXPECT_TEST_B="quoted value"
export EXPECT_TEST_C='single'
`)

	assert.Equal(t, "plain", l.Get("EXPECT_TEST_A"))
	assert.Equal(t, "quoted value", l.Get("EXPECT_TEST_B"))
	assert.Equal(t, "single", l.Get("EXPECT_TEST_C"))
	assert.Empty(t, l.Get("EXPECT_TEST_MISSING"))
}

func TestEnvLoader_LaterFileWins(t *testing.T) {
	l := loaderWith(t, "EXPECT_TEST_KEY=first\nEXPECT_TEST_OTHER=kept\n")
	require.NoError(t, l.Load(writeEnvFile(t, t.TempDir(), "EXPECT_TEST_KEY=second\n")))

	assert.Equal(t, "second", l.Get("EXPECT_TEST_KEY"))
	assert.Equal(t, "kept", l.Get("EXPECT_TEST_OTHER"))
}

func TestEnvLoader_LoadMissing(t *testing.T) {
	err := NewEnvLoader().Load(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load env file")
}

func TestEnvLoader_OSPrecedence(t *testing.T) {
	l := loaderWith(t, "EXPECT_TEST_KEY=from-file\n")
	t.Setenv("EXPECT_TEST_KEY", "from-os")

	assert.Equal(t, "from-os", l.Get("EXPECT_TEST_KEY"))
}

func TestEnvLoader_GetWithDefault(t *testing.T) {
	l := loaderWith(t, "EXPECT_TEST_SET=v\n")

	assert.Equal(t, "fallback", l.GetWithDefault("EXPECT_TEST_UNSET", "fallback"))
	assert.Equal(t, "v", l.GetWithDefault("EXPECT_TEST_SET", "fallback"))
}

func TestApplyEnv(t *testing.T) {
	l := loaderWith(t, `
EXPECT_SOFT=true
EXPECT_VERBOSE=1
EXPECT_COLOR=never
EXPECT_LOG_FORMAT=json
EXPECT_LOG_PATH=out.log
EXPECT_LOG_LEVEL=warn
EXPECT_MAX_VALUE_LENGTH=64
EXPECT_REDACT="alpha-secret, ,beta-secret"
`)

	cfg := Default()
	require.NoError(t, ApplyEnv(cfg, l))

	assert.True(t, cfg.Soft)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.Equal(t, LogJSON, cfg.LogFormat)
	assert.Equal(t, "out.log", cfg.LogPath)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 64, cfg.MaxValueLength)
	assert.Equal(t, []string{"alpha-secret", "beta-secret"}, cfg.Redact)
}

func TestApplyEnv_Errors(t *testing.T) {
	tests := []struct {
		key, value, message string
	}{
		{EnvSoft, "maybe", EnvSoft},
		{EnvVerbose, "loud", EnvVerbose},
		{EnvMaxValueLength, "many", EnvMaxValueLength},
		{EnvColor, "plaid", "invalid color mode"},
		{EnvLogLevel, "chatty", "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			l := loaderWith(t, tt.key+"="+tt.value+"\n")

			err := ApplyEnv(Default(), l)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "expect.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_format: console\n"), 0644))

	envPath := filepath.Join(dir, "ci.env")
	require.NoError(t, os.WriteFile(envPath, []byte(
		"EXPECT_CONFIG="+path+"\nEXPECT_SOFT=true\n",
	), 0644))
	t.Setenv(EnvFile, envPath)

	cfg, err := FromEnvironment(NewEnvLoader())
	require.NoError(t, err)
	assert.Equal(t, LogConsole, cfg.LogFormat)
	assert.True(t, cfg.Soft)
}

func TestFromEnvironment_DefaultEnvFile(t *testing.T) {
	dir := t.TempDir()
	writeEnvFile(t, dir, "EXPECT_MAX_VALUE_LENGTH=12\n")
	chdir(t, dir)

	cfg, err := FromEnvironment(NewEnvLoader())
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.MaxValueLength)
}

func TestFromEnvironment_NoEnvFile(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := FromEnvironment(NewEnvLoader())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestFromEnvironment_MissingEnvFile(t *testing.T) {
	t.Setenv(EnvFile, filepath.Join(t.TempDir(), "absent.env"))

	_, err := FromEnvironment(NewEnvLoader())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load env file")
}

func TestFromEnvironment_BadConfigFile(t *testing.T) {
	l := loaderWith(t, "EXPECT_CONFIG="+filepath.Join(t.TempDir(), "missing.yaml")+"\n")

	_, err := FromEnvironment(l)
	require.Error(t, err)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
