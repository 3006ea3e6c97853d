package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	store := NewStore(path)

	cfg, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	store := NewStore(path)

	cfg := Default()
	cfg.Settings.ShowHiddenFiles = true
	cfg.Settings.PipelineConcurrency = 9

	require.NoError(t, store.Save(cfg))
	require.True(t, store.Exists())

	loaded, err := store.Load()
	require.NoError(t, err)
	require.True(t, loaded.Settings.ShowHiddenFiles)
	require.Equal(t, int64(9), loaded.Settings.PipelineConcurrency)
}

func TestSaveRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	store := NewStore(path)

	cfg := Default()
	cfg.Settings.PipelineConcurrency = 0 // below the gte=1 validation floor

	err := store.Save(cfg)
	require.Error(t, err)
	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr), "invalid config must not reach disk")
}

func TestSaveLeavesNoTempFileBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	store := NewStore(path)

	require.NoError(t, store.Save(Default()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "config.yaml", entries[0].Name())
}

func TestLoadBackfillsMissingThemes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	store := NewStore(path)

	partial := Config{
		Settings: DefaultSettings(),
		Themes:   map[string]Theme{"norton_commander": BuiltinThemes()["norton_commander"]},
	}
	require.NoError(t, store.Save(partial))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Contains(t, loaded.Themes, "modern_dark")
}
