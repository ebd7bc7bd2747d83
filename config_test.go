package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigManagerMissingFile(t *testing.T) {
	cm, err := NewConfigManager(filepath.Join(t.TempDir(), "none.json"))
	require.NoError(t, err)
	assert.Empty(t, cm.Presets)
	assert.Nil(t, cm.GetPreset("x"))
}

func TestConfigManagerEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	cm, err := NewConfigManager(path)
	require.NoError(t, err)
	assert.Empty(t, cm.Presets)
}

func TestConfigManagerCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0o644))

	_, err := NewConfigManager(path)
	assert.Error(t, err)
}

func TestConfigManagerCreateAndDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "presets.json")

	cm, err := NewConfigManager(path)
	require.NoError(t, err)
	require.NoError(t, cm.CreatePreset(Preset{Key: "a", Tempo: 100, Duration: 1000}))
	require.NoError(t, cm.CreatePreset(Preset{Key: "b", Tempo: 140, Duration: 500, Timesig: "6/8"}))
	assert.Error(t, cm.CreatePreset(Preset{Key: "a"}))
	assert.Error(t, cm.CreatePreset(Preset{}))

	reloaded, err := NewConfigManager(path)
	require.NoError(t, err)
	require.Len(t, reloaded.Presets, 2)
	assert.Equal(t, 140, reloaded.GetPreset("b").Tempo)
	assert.Equal(t, "a\ttempo=100 duration=1000 timesig=4/4", reloaded.GetPreset("a").String())

	require.NoError(t, reloaded.DeletePreset("a"))
	assert.Error(t, reloaded.DeletePreset("a"))

	again, err := NewConfigManager(path)
	require.NoError(t, err)
	require.Len(t, again.Presets, 1)
	assert.Equal(t, "b", again.Presets[0].Key)
}
