package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("CLARITY_MODEL", "")
	t.Setenv("CLARITY_THEME", "")
	return home
}

func TestLoadMissingFileYieldsZeroConfig(t *testing.T) {
	setHome(t)
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	home := setHome(t)

	cfg := &Config{
		GeminiAPIKey: "secret",
		Model:        "gemini-2.5-pro",
		Theme:        "dark",
		DebugMode:    true,
	}
	require.NoError(t, cfg.Save())

	// The key is in this file; permissions matter.
	info, err := os.Stat(filepath.Join(home, ".clarity", "config.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestEnvOverridesFile(t *testing.T) {
	setHome(t)
	require.NoError(t, (&Config{GeminiAPIKey: "from-file", Theme: "light"}).Save())

	t.Setenv("GEMINI_API_KEY", "from-env")
	t.Setenv("CLARITY_THEME", "dark")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.GeminiAPIKey)
	assert.Equal(t, "dark", cfg.Theme)
}

func TestLoadRejectsInvalidJSON(t *testing.T) {
	home := setHome(t)
	dir := filepath.Join(home, ".clarity")
	require.NoError(t, os.MkdirAll(dir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("{nope"), 0600))

	_, err := Load()
	assert.Error(t, err)
}
