// Package scheduler implements the work/break state machine: a
// tick-driven countdown that alternates between phases, credits idle
// time, and reacts to configuration changes through observable values.
package scheduler

import (
	"fmt"
	"sync"

	"respite/internal/core/model"
	"respite/internal/core/observable"
	"respite/internal/core/ticker"
	"respite/internal/i18n"
)

// Scheduler owns the current phase, the remaining-minutes countdown and
// the inactivity bookkeeping. Configuration values live in observable
// holders; the scheduler reacts to writes through subscriptions wired at
// construction.
//
// All state mutation happens under mu: the tick callback and every
// configuration handler acquire it, which serializes the ticker
// goroutine against writes arriving from the UI.
type Scheduler struct {
	mu     sync.Mutex
	config model.Config
	probe  InactivityProbe
	ports  Ports
	ticker *ticker.Ticker

	userInactive bool

	phase         *observable.Value[Phase]
	shouldRun     *observable.Value[bool]
	workInterval  *observable.Value[int]
	breakInterval *observable.Value[int]
	soundEnabled  *observable.Value[bool]
	launchAtLogin *observable.Value[bool]
	remaining     *observable.Value[int]
}

// New creates a Scheduler from an initial configuration snapshot and
// wires all change reactions. ShouldRun is subscribed last, so its
// replay starts the ticker only once every other reaction is in place.
func New(config model.Config, initial model.Snapshot, probe InactivityProbe, ports Ports) *Scheduler {
	s := &Scheduler{
		config:        config,
		probe:         probe,
		ports:         ports,
		phase:         observable.New(PhaseWork),
		shouldRun:     observable.New(initial.ShouldRun),
		workInterval:  observable.New(initial.WorkIntervalMinutes),
		breakInterval: observable.New(initial.BreakIntervalMinutes),
		soundEnabled:  observable.New(initial.SoundEnabled),
		launchAtLogin: observable.New(initial.LaunchAtLogin),
		remaining:     observable.New(initial.WorkIntervalMinutes),
	}
	s.ticker = ticker.New(config.TickInterval, s.tick)

	s.soundEnabled.Subscribe(s.handleSoundEnabled)
	s.workInterval.Subscribe(s.handleWorkInterval)
	s.breakInterval.Subscribe(s.handleBreakInterval)
	s.launchAtLogin.Subscribe(s.handleLaunchAtLogin)
	s.shouldRun.Subscribe(s.handleShouldRun)

	return s
}

// ShouldRun gates whether the ticker is active.
func (s *Scheduler) ShouldRun() *observable.Value[bool] { return s.shouldRun }

// WorkInterval is the configured work phase length in minutes.
func (s *Scheduler) WorkInterval() *observable.Value[int] { return s.workInterval }

// BreakInterval is the configured break phase length in minutes.
func (s *Scheduler) BreakInterval() *observable.Value[int] { return s.breakInterval }

// SoundEnabled selects whether notifications play a sound.
func (s *Scheduler) SoundEnabled() *observable.Value[bool] { return s.soundEnabled }

// LaunchAtLogin mirrors the OS autostart registration.
func (s *Scheduler) LaunchAtLogin() *observable.Value[bool] { return s.launchAtLogin }

// Remaining is the countdown, in minutes, until the next phase change.
func (s *Scheduler) Remaining() *observable.Value[int] { return s.remaining }

// Phase is the current phase. Observable so displays can follow
// transitions; only the scheduler writes it.
func (s *Scheduler) Phase() *observable.Value[Phase] { return s.phase }

// TickerRunning reports whether the underlying ticker is active.
func (s *Scheduler) TickerRunning() bool {
	return s.ticker.IsRunning()
}

// PauseTimer stops the countdown and re-publishes the unchanged
// remaining value, so observers that refresh on write events repaint
// deterministically.
func (s *Scheduler) PauseTimer() {
	s.shouldRun.Set(false)
	s.remaining.Set(s.remaining.Get())
}

// ResetToDefaults writes the built-in defaults back through each
// observable, in a fixed order, so every normal change reaction runs.
// ShouldRun comes last and restarts the ticker.
func (s *Scheduler) ResetToDefaults() {
	defaults := s.config.Defaults
	s.soundEnabled.Set(defaults.SoundEnabled)
	s.workInterval.Set(defaults.WorkIntervalMinutes)
	s.breakInterval.Set(defaults.BreakIntervalMinutes)
	s.shouldRun.Set(defaults.ShouldRun)
}

// Shutdown stops the ticker without going through ShouldRun, so the
// persisted run flag keeps its value across restarts. Used at process
// exit only.
func (s *Scheduler) Shutdown() {
	s.ticker.Stop()
}

// tick processes one firing of the periodic ticker.
func (s *Scheduler) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A firing that raced a stop lands here after the handler already
	// flipped ShouldRun; it must not touch the countdown.
	if !s.shouldRun.Get() {
		return
	}

	nowInactive := s.probe.IsInactive(s.config.AllowedInactivityMinutes)
	remaining := s.remaining.Get()
	mutated := false

	// One-time credit on the active-to-inactive edge: give back up to
	// AllowedInactivityMinutes of countdown, never more than it takes to
	// refill the work interval, and never a negative amount.
	if nowInactive && !s.userInactive {
		credit := s.workInterval.Get() - remaining
		if credit > s.config.AllowedInactivityMinutes {
			credit = s.config.AllowedInactivityMinutes
		}
		if credit > 0 {
			remaining += credit
			mutated = true
		}
	}
	s.userInactive = nowInactive

	// Break countdown always progresses; work countdown freezes while
	// the user is away, since only active screen time counts.
	if s.phase.Get() == PhaseBreak || !s.userInactive {
		remaining--
		mutated = true
	}

	if remaining <= 0 {
		s.advancePhaseLocked()
		return
	}
	if mutated {
		s.remaining.Set(remaining)
	}
}

// advancePhaseLocked toggles the phase, retargets the countdown to the
// new phase's interval and emits the transition notification. This is
// the only place a notification is sent.
func (s *Scheduler) advancePhaseLocked() {
	if s.phase.Get() == PhaseWork {
		s.phase.Set(PhaseBreak)
		breakMinutes := s.breakInterval.Get()
		s.remaining.Set(breakMinutes)
		s.ports.Notifications.SendSingle(
			i18n.T("Time for a break!"),
			fmt.Sprintf(i18n.T("Step away for %d minutes."), breakMinutes),
			s.soundEnabled.Get(),
		)
		return
	}

	s.phase.Set(PhaseWork)
	s.remaining.Set(s.workInterval.Get())
	s.ports.Notifications.SendSingle(
		i18n.T("Break is over"),
		i18n.T("Back to work."),
		s.soundEnabled.Get(),
	)
}

func (s *Scheduler) handleShouldRun(run bool) {
	s.mu.Lock()
	if run {
		s.ticker.Start()
	} else {
		s.ticker.Stop()
	}
	s.mu.Unlock()

	s.ports.Preferences.SetShouldRun(run)
}

func (s *Scheduler) handleWorkInterval(minutes int) {
	s.mu.Lock()
	if s.phase.Get() == PhaseWork {
		s.remaining.Set(minutes)
	}
	s.mu.Unlock()

	s.ports.Preferences.SetWorkInterval(minutes)
}

func (s *Scheduler) handleBreakInterval(minutes int) {
	s.mu.Lock()
	if s.phase.Get() == PhaseBreak {
		s.remaining.Set(minutes)
	}
	s.mu.Unlock()

	s.ports.Preferences.SetBreakInterval(minutes)
}

func (s *Scheduler) handleLaunchAtLogin(enabled bool) {
	s.ports.LoginItems.SetEnabled(enabled)
	s.ports.Preferences.SetLaunchAtLogin(enabled)
}

func (s *Scheduler) handleSoundEnabled(enabled bool) {
	s.ports.Preferences.SetSoundEnabled(enabled)
}
