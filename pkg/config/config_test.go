package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/bashglob/pkg/config"
	"github.com/arthur-debert/bashglob/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tempDir, "config"))

	cfg, err := config.Load(tempDir)
	require.NoError(t, err)

	assert.False(t, cfg.Dotglob)
	assert.False(t, cfg.Extglob)
	assert.False(t, cfg.Nocaseglob)
	assert.False(t, cfg.StrictErrors)
	assert.Empty(t, cfg.Cwd)
}

func TestLoadConfigFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tempDir, "config"))

	content := []byte("dotglob = true\nnocaseglob = true\nstrict_errors = true\n")
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, config.ConfigFileName), content, 0644))

	cfg, err := config.Load(tempDir)
	require.NoError(t, err)

	assert.True(t, cfg.Dotglob)
	assert.True(t, cfg.Nocaseglob)
	assert.True(t, cfg.StrictErrors)

	// Unset keys keep their defaults
	assert.False(t, cfg.Extglob)
	assert.False(t, cfg.Nullglob)
}

func TestLoadXDGFallback(t *testing.T) {
	tempDir := t.TempDir()
	configHome := filepath.Join(tempDir, "config")
	t.Setenv("XDG_CONFIG_HOME", configHome)

	appDir := filepath.Join(configHome, "bashglob")
	require.NoError(t, os.MkdirAll(appDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(appDir, "bashglob.toml"), []byte("globstar = true\n"), 0644))

	// No config file in the search dir, so the XDG one applies
	cfg, err := config.Load(filepath.Join(tempDir, "empty"))
	require.NoError(t, err)
	assert.True(t, cfg.Globstar)
}

func TestLoadWorkingDirWinsOverXDG(t *testing.T) {
	tempDir := t.TempDir()
	configHome := filepath.Join(tempDir, "config")
	t.Setenv("XDG_CONFIG_HOME", configHome)

	appDir := filepath.Join(configHome, "bashglob")
	require.NoError(t, os.MkdirAll(appDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(appDir, "bashglob.toml"), []byte("dotglob = true\n"), 0644))

	workDir := filepath.Join(tempDir, "work")
	require.NoError(t, os.MkdirAll(workDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(workDir, config.ConfigFileName), []byte("extglob = true\n"), 0644))

	cfg, err := config.Load(workDir)
	require.NoError(t, err)
	assert.True(t, cfg.Extglob)
	assert.False(t, cfg.Dotglob, "only the first config file found applies")
}

func TestLoadMalformedConfig(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tempDir, "config"))

	require.NoError(t, os.WriteFile(filepath.Join(tempDir, config.ConfigFileName), []byte("dotglob = [broken\n"), 0644))

	_, err := config.Load(tempDir)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestOptions(t *testing.T) {
	cfg := &config.Config{
		Dotglob:      true,
		Nocaseglob:   true,
		StrictErrors: true,
		Cwd:          "/tmp",
	}

	opts := cfg.Options()
	require.NotNil(t, opts)

	assert.True(t, opts.Dotglob)
	assert.True(t, opts.Nocaseglob)
	assert.True(t, opts.StrictErrors)
	assert.Equal(t, "/tmp", opts.Cwd)
	assert.False(t, opts.Normalized, "config produces a raw record, not a canonical one")
}
