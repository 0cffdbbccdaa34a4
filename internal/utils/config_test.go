package utils

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves into dir for the rest of the test so the default config search
// path does not pick up files from the package directory.
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(oldWd) })
}

func TestLoadConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	config, err := LoadConfig("", io.Discard, nil)
	require.NoError(t, err)

	assert.Equal(t, LogLevelWarn, config.Log.Level)
	assert.Equal(t, LogFormatText, config.Log.Format)
	assert.Equal(t, "text", config.Output.Format)
}

func TestLoadConfigFromFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "custom.yaml")
	content := `
log:
  level: debug
  format: json
output:
  format: JSON
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))

	config, err := LoadConfig(configFile, io.Discard, nil)
	require.NoError(t, err)

	assert.Equal(t, LogLevelDebug, config.Log.Level)
	assert.Equal(t, LogFormatJSON, config.Log.Format)
	assert.Equal(t, "json", config.Output.Format)
}

func TestLoadConfigSearchesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readbyte.yaml"), []byte("output:\n  format: json\n"), 0644))

	config, err := LoadConfig("", io.Discard, nil)
	require.NoError(t, err)
	assert.Equal(t, "json", config.Output.Format)
}

func TestLoadConfigEnvironmentOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("READBYTE_LOG_LEVEL", "error")
	t.Setenv("READBYTE_OUTPUT_FORMAT", "json")

	config, err := LoadConfig("", io.Discard, nil)
	require.NoError(t, err)

	assert.Equal(t, LogLevelError, config.Log.Level)
	assert.Equal(t, "json", config.Output.Format)
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "invalid log level",
			content: "log:\n  level: loud\n",
			errMsg:  "invalid log level",
		},
		{
			name:    "invalid log format",
			content: "log:\n  format: xml\n",
			errMsg:  "invalid log format",
		},
		{
			name:    "invalid output format",
			content: "output:\n  format: csv\n",
			errMsg:  "invalid output format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configFile := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(configFile, []byte(tt.content), 0644))

			_, err := LoadConfig(configFile, io.Discard, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"), io.Discard, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestConfigManagerSetConfigValue(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	manager := NewConfigManager()
	manager.SetLogger(NewLogger(LoggerConfig{Output: io.Discard}))
	manager.SetConfigValue("output.format", "json")
	require.NoError(t, manager.LoadConfig(""))

	assert.Equal(t, "json", manager.GetConfig().Output.Format)
}

func TestLoadConfigOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("READBYTE_OUTPUT_FORMAT", "text")

	config, err := LoadConfig("", io.Discard, map[string]interface{}{
		"output.format": "json",
		"log.level":     "debug",
		"log.format":    "json",
	})
	require.NoError(t, err)

	assert.Equal(t, "json", config.Output.Format)
	assert.Equal(t, LogLevelDebug, config.Log.Level)
	assert.Equal(t, LogFormatJSON, config.Log.Format)

	_, err = LoadConfig("", io.Discard, map[string]interface{}{"log.level": "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}
