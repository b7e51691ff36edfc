package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"respite/internal/core/model"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	store := NewStore(t.TempDir())

	snapshot, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, model.DefaultSnapshot(), snapshot)
}

func TestSettersPersistAcrossStores(t *testing.T) {
	dir := t.TempDir()

	store := NewStore(dir)
	_, err := store.Load()
	require.NoError(t, err)

	store.SetShouldRun(false)
	store.SetWorkInterval(45)
	store.SetBreakInterval(10)
	store.SetSoundEnabled(false)
	store.SetLaunchAtLogin(true)

	reopened := NewStore(dir)
	snapshot, err := reopened.Load()
	require.NoError(t, err)

	assert.Equal(t, model.Snapshot{
		ShouldRun:            false,
		WorkIntervalMinutes:  45,
		BreakIntervalMinutes: 10,
		SoundEnabled:         false,
		LaunchAtLogin:        true,
	}, snapshot)
}

func TestLoadRejectsNonPositiveIntervals(t *testing.T) {
	dir := t.TempDir()
	content := "should_run: true\nwork_interval_minutes: -3\nbreak_interval_minutes: 0\nsound_enabled: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, settingsFileName), []byte(content), 0o644))

	snapshot, err := NewStore(dir).Load()

	require.NoError(t, err)
	assert.Equal(t, model.DefaultSnapshot().WorkIntervalMinutes, snapshot.WorkIntervalMinutes)
	assert.Equal(t, model.DefaultSnapshot().BreakIntervalMinutes, snapshot.BreakIntervalMinutes)
	assert.True(t, snapshot.ShouldRun)
}

func TestLoadMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, settingsFileName), []byte("{not yaml"), 0o644))

	snapshot, err := NewStore(dir).Load()

	assert.Error(t, err)
	assert.Equal(t, model.DefaultSnapshot(), snapshot, "parse failure falls back to defaults")
}

func TestSetterCreatesConfigDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "Respite")

	store := NewStore(dir)
	store.SetWorkInterval(30)

	_, err := os.Stat(filepath.Join(dir, settingsFileName))
	assert.NoError(t, err)
}
