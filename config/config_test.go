package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natscamp/money-manager/common"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.MinimizeToTray, "MinimizeToTray should be true by default")
	assert.True(t, cfg.ShowNotifications, "ShowNotifications should be true by default")
	assert.True(t, cfg.MaximizeOnStart, "MaximizeOnStart should be true by default")
}

func TestLoadFile_CreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", common.ConfigFileName)

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().MinimizeToTray, cfg.MinimizeToTray)
	assert.Equal(t, path, cfg.Path())
	assert.FileExists(t, path, "defaults should be written on first load")
}

func TestLoadFile_ReadsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), common.ConfigFileName)
	data := []byte("minimize_to_tray: false\nmaximize_on_start: false\n")
	require.NoError(t, os.WriteFile(path, data, 0600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.False(t, cfg.MinimizeToTray)
	assert.False(t, cfg.MaximizeOnStart)
	// missing keys keep their defaults
	assert.True(t, cfg.ShowNotifications)
}

func TestLoadFile_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), common.ConfigFileName)
	require.NoError(t, os.WriteFile(path, nil, 0600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().ShowNotifications, cfg.ShowNotifications)
}

func TestLoadFile_RejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), common.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("theme: dark\n"), 0600))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrConfigLoad))
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), common.ConfigFileName)
	cfg, err := LoadFile(path)
	require.NoError(t, err)

	cfg.ShowNotifications = false
	require.NoError(t, cfg.Save())

	reloaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.False(t, reloaded.ShowNotifications)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, common.ConfigFileName, filepath.Base(path))
	assert.Equal(t, common.ConfigDirName, filepath.Base(filepath.Dir(path)))
}
