package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"out_dir": "parsed",
		"mime": "application/pdf",
		"pretty": true,
		"verbose": true,
		"workers": 8
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "parsed", cfg.OutDir)
	assert.Equal(t, "application/pdf", cfg.Mime)
	assert.True(t, cfg.Pretty)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.ValidateRecords)
	assert.Equal(t, 8, cfg.Workers)
}

func TestLoadConfig_ValidateKey(t *testing.T) {
	// The "validate" JSON key maps to ValidateRecords; the Validate method
	// must still be callable on the loaded config.
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{"validate": true}`), 0644))

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)

	assert.True(t, cfg.ValidateRecords)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_NegativeWorkers(t *testing.T) {
	cfg := &Config{
		Workers: -1,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "'workers' must be non-negative")
}

func TestValidate_OutDirIsFile(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(tmpFile, []byte("x"), 0644))

	cfg := &Config{OutDir: tmpFile}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "'out_dir' is not a directory")
}

func TestValidate_ZeroValueIsValid(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{
		Mime:    "text/plain",
		Verbose: true,
	}
	defaults := Config{
		OutDir:          "parsed",
		Mime:            "application/pdf",
		Pretty:          true,
		ValidateRecords: true,
		Workers:         2,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "parsed", merged.OutDir)
	assert.Equal(t, "text/plain", merged.Mime) // explicit value wins
	assert.True(t, merged.Pretty)
	assert.True(t, merged.ValidateRecords)
	assert.True(t, merged.Verbose)
	assert.Equal(t, 2, merged.Workers)
}

func TestEffectiveWorkers(t *testing.T) {
	assert.Equal(t, DefaultWorkers, (&Config{}).EffectiveWorkers())
	assert.Equal(t, 16, (&Config{Workers: 16}).EffectiveWorkers())
}
