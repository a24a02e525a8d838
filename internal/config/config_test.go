package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "worktime.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, OutputText, cfg.Output.Format)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, "log:\n  level: debug\n  file: logs/worktime.log\noutput:\n  format: json\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "logs/worktime.log", cfg.Log.File)
	assert.Equal(t, OutputJSON, cfg.Output.Format)

	level, err := cfg.Log.ZapLevel()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "output:\n  format: text\n")
	t.Setenv("WORKTIME_OUTPUT_FORMAT", "json")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, OutputJSON, cfg.Output.Format)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("WORKTIME_LOG_LEVEL=warn\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("WORKTIME_LOG_LEVEL") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"Valid text", Config{Log: LogConfig{Level: "info"}, Output: OutputConfig{Format: OutputText}}, false},
		{"Valid json", Config{Log: LogConfig{Level: "error"}, Output: OutputConfig{Format: OutputJSON}}, false},
		{"Unknown format", Config{Log: LogConfig{Level: "info"}, Output: OutputConfig{Format: "xml"}}, true},
		{"Unknown level", Config{Log: LogConfig{Level: "loud"}, Output: OutputConfig{Format: OutputText}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
