// Package tray renders the system tray menu. It is a thin display
// layer: every action maps to a callback wired up by the composition
// root, and every state change arrives through a setter.
package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"respite/internal/i18n"
)

// Callbacks defines the tray action handlers.
type Callbacks struct {
	OnTogglePause     func()
	OnResetDefaults   func()
	OnToggleSound     func()
	OnToggleLoginItem func()
	OnQuit            func()
}

// Manager owns the tray menu state.
type Manager struct {
	app       desktop.App
	callbacks Callbacks

	statusLabel   string
	paused        bool
	soundEnabled  bool
	launchAtLogin bool
}

// New creates a tray manager and installs the initial menu.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:         app,
		callbacks:   callbacks,
		statusLabel: "...",
	}
	manager.refresh()
	return manager
}

// SetStatus updates the status line.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.refresh()
}

// SetPaused switches the pause item between Pause and Resume.
func (manager *Manager) SetPaused(paused bool) {
	manager.paused = paused
	manager.refresh()
}

// SetSoundEnabled updates the sound checkmark.
func (manager *Manager) SetSoundEnabled(enabled bool) {
	manager.soundEnabled = enabled
	manager.refresh()
}

// SetLaunchAtLogin updates the autostart checkmark.
func (manager *Manager) SetLaunchAtLogin(enabled bool) {
	manager.launchAtLogin = enabled
	manager.refresh()
}

// refresh rebuilds and reinstalls the menu. Fyne tray menus do not
// repaint on item mutation, so the whole menu is replaced, as small as
// it is.
func (manager *Manager) refresh() {
	status := manager.statusLabel
	if manager.paused {
		status = fmt.Sprintf("%s (%s)", status, i18n.T("paused"))
	}
	statusItem := fyne.NewMenuItem(status, nil)
	statusItem.Disabled = true

	pauseLabel := i18n.T("Pause")
	if manager.paused {
		pauseLabel = i18n.T("Resume")
	}
	pauseItem := fyne.NewMenuItem(pauseLabel, func() {
		if manager.callbacks.OnTogglePause != nil {
			manager.callbacks.OnTogglePause()
		}
	})

	soundItem := fyne.NewMenuItem(i18n.T("Sound"), func() {
		if manager.callbacks.OnToggleSound != nil {
			manager.callbacks.OnToggleSound()
		}
	})
	soundItem.Checked = manager.soundEnabled

	loginItem := fyne.NewMenuItem(i18n.T("Launch at login"), func() {
		if manager.callbacks.OnToggleLoginItem != nil {
			manager.callbacks.OnToggleLoginItem()
		}
	})
	loginItem.Checked = manager.launchAtLogin

	resetItem := fyne.NewMenuItem(i18n.T("Reset to defaults"), func() {
		if manager.callbacks.OnResetDefaults != nil {
			manager.callbacks.OnResetDefaults()
		}
	})

	quitItem := fyne.NewMenuItem(i18n.T("Quit"), func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})

	manager.app.SetSystemTrayMenu(fyne.NewMenu("Respite",
		statusItem,
		fyne.NewMenuItemSeparator(),
		pauseItem,
		resetItem,
		fyne.NewMenuItemSeparator(),
		soundItem,
		loginItem,
		fyne.NewMenuItemSeparator(),
		quitItem,
	))
}
