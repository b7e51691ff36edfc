package scheduler

// Phase says whether the countdown currently measures work time or
// break time.
type Phase string

const (
	PhaseWork  Phase = "work"
	PhaseBreak Phase = "break"
)

// InactivityProbe reports whether the user has been inactive for at
// least thresholdMinutes. Queried once per tick, never cached here.
type InactivityProbe interface {
	IsInactive(thresholdMinutes int) bool
}

// NotificationPort delivers a single fire-and-forget notification.
type NotificationPort interface {
	SendSingle(title, subtitle string, soundEnabled bool)
}

// PreferencesPort persists configuration values. Best effort: failures
// are the collaborator's concern and never surface back here.
type PreferencesPort interface {
	SetShouldRun(run bool)
	SetWorkInterval(minutes int)
	SetBreakInterval(minutes int)
	SetLaunchAtLogin(enabled bool)
	SetSoundEnabled(enabled bool)
}

// LoginItemPort registers or unregisters OS autostart. Idempotent.
type LoginItemPort interface {
	SetEnabled(enabled bool)
}

// Ports bundles the external collaborators the scheduler calls into.
type Ports struct {
	Notifications NotificationPort
	Preferences   PreferencesPort
	LoginItems    LoginItemPort
}
