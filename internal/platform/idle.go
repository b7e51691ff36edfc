// Package platform holds the OS-specific collaborators: user idle
// detection, login-item registration and the single-instance guard.
package platform

import (
	"errors"
	"log"
	"time"
)

// ErrIdleUnsupported indicates idle detection is not available on this
// system.
var ErrIdleUnsupported = errors.New("idle detection unsupported")

// IdleProvider reports the duration since the last user input.
type IdleProvider interface {
	IdleDuration() (time.Duration, error)
}

// InactivityMonitor answers the scheduler's once-per-tick inactivity
// query by comparing the provider's idle duration against a threshold.
// Probe errors are logged and treated as "user active", so a broken
// provider degrades to a plain countdown instead of freezing it.
type InactivityMonitor struct {
	provider          IdleProvider
	loggedUnsupported bool
}

// NewInactivityMonitor creates a monitor backed by the platform idle
// provider.
func NewInactivityMonitor() *InactivityMonitor {
	return &InactivityMonitor{provider: newIdleProvider()}
}

// NewInactivityMonitorWith creates a monitor with an explicit provider.
func NewInactivityMonitorWith(provider IdleProvider) *InactivityMonitor {
	return &InactivityMonitor{provider: provider}
}

// IsInactive reports whether the user has been idle for at least
// thresholdMinutes.
func (monitor *InactivityMonitor) IsInactive(thresholdMinutes int) bool {
	idle, err := monitor.provider.IdleDuration()
	if err != nil {
		if errors.Is(err, ErrIdleUnsupported) {
			if !monitor.loggedUnsupported {
				log.Printf("idle probe: %v", err)
				monitor.loggedUnsupported = true
			}
			return false
		}
		log.Printf("idle probe: %v", err)
		return false
	}
	return idle >= time.Duration(thresholdMinutes)*time.Minute
}
