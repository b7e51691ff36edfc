// Package storage persists user preferences as a YAML file in the OS
// config directory. The Store implements the scheduler's preferences
// port: each setter updates one field and rewrites the file, best
// effort.
package storage

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"respite/internal/core/model"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	ShouldRun            bool `yaml:"should_run"`
	WorkIntervalMinutes  int  `yaml:"work_interval_minutes"`
	BreakIntervalMinutes int  `yaml:"break_interval_minutes"`
	SoundEnabled         bool `yaml:"sound_enabled"`
	LaunchAtLogin        bool `yaml:"launch_at_login"`
}

// Store reads and writes the settings file.
type Store struct {
	mu      sync.Mutex
	path    string
	current model.Snapshot
}

// NewStore creates a store rooted at dir. The settings file is
// dir/settings.yaml.
func NewStore(dir string) *Store {
	return &Store{
		path:    filepath.Join(dir, settingsFileName),
		current: model.DefaultSnapshot(),
	}
}

// Load reads the settings file and returns the persisted snapshot. A
// missing file yields the defaults; loaded values are validated field by
// field, with invalid ones falling back to their default.
func (store *Store) Load() (model.Snapshot, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	snapshot := model.DefaultSnapshot()
	rawData, err := os.ReadFile(store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			store.current = snapshot
			return snapshot, nil
		}
		return snapshot, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return snapshot, fmt.Errorf("parse settings yaml: %w", err)
	}

	snapshot.ShouldRun = fileData.ShouldRun
	snapshot.SoundEnabled = fileData.SoundEnabled
	snapshot.LaunchAtLogin = fileData.LaunchAtLogin
	if fileData.WorkIntervalMinutes > 0 {
		snapshot.WorkIntervalMinutes = fileData.WorkIntervalMinutes
	}
	if fileData.BreakIntervalMinutes > 0 {
		snapshot.BreakIntervalMinutes = fileData.BreakIntervalMinutes
	}

	store.current = snapshot
	return snapshot, nil
}

// SetShouldRun persists the run flag.
func (store *Store) SetShouldRun(run bool) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.current.ShouldRun = run
	store.saveLocked()
}

// SetWorkInterval persists the work interval in minutes.
func (store *Store) SetWorkInterval(minutes int) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.current.WorkIntervalMinutes = minutes
	store.saveLocked()
}

// SetBreakInterval persists the break interval in minutes.
func (store *Store) SetBreakInterval(minutes int) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.current.BreakIntervalMinutes = minutes
	store.saveLocked()
}

// SetLaunchAtLogin persists the autostart flag.
func (store *Store) SetLaunchAtLogin(enabled bool) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.current.LaunchAtLogin = enabled
	store.saveLocked()
}

// SetSoundEnabled persists the sound flag.
func (store *Store) SetSoundEnabled(enabled bool) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.current.SoundEnabled = enabled
	store.saveLocked()
}

// saveLocked writes the current snapshot. Persistence is best effort:
// the scheduler never learns about write failures, so they are logged
// here.
func (store *Store) saveLocked() {
	if err := store.writeLocked(); err != nil {
		log.Printf("settings: %v", err)
	}
}

func (store *Store) writeLocked() error {
	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		ShouldRun:            store.current.ShouldRun,
		WorkIntervalMinutes:  store.current.WorkIntervalMinutes,
		BreakIntervalMinutes: store.current.BreakIntervalMinutes,
		SoundEnabled:         store.current.SoundEnabled,
		LaunchAtLogin:        store.current.LaunchAtLogin,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}
	if err := os.WriteFile(store.path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}
