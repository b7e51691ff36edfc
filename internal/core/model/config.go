package model

import "time"

// Config contains runtime options for the break scheduler.
type Config struct {
	// TickInterval is the period between scheduler ticks. The countdown is
	// measured in ticks, so one tick nominally equals one minute.
	TickInterval time.Duration

	// AllowedInactivityMinutes is both the inactivity threshold passed to
	// the probe and the cap on the one-time idle credit.
	AllowedInactivityMinutes int

	Defaults Snapshot
}

// Snapshot is one consistent reading of every user-configurable value.
type Snapshot struct {
	ShouldRun            bool
	WorkIntervalMinutes  int
	BreakIntervalMinutes int
	SoundEnabled         bool
	LaunchAtLogin        bool
}

// DefaultSnapshot returns the built-in configuration defaults.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		ShouldRun:            true,
		WorkIntervalMinutes:  25,
		BreakIntervalMinutes: 5,
		SoundEnabled:         true,
		LaunchAtLogin:        false,
	}
}

// DefaultConfig returns runtime options matching the original deployment:
// one tick per minute, five minutes of tolerated inactivity.
func DefaultConfig() Config {
	return Config{
		TickInterval:             time.Minute,
		AllowedInactivityMinutes: 5,
		Defaults:                 DefaultSnapshot(),
	}
}
