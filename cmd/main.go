package main

import (
	"fmt"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"respite/internal/core/model"
	"respite/internal/core/scheduler"
	"respite/internal/i18n"
	"respite/internal/notify"
	"respite/internal/platform"
	"respite/internal/storage"
	"respite/internal/ui/tray"
)

const appName = "Respite"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.respite.app")
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		log.Printf("system tray unsupported on this platform")
		return
	}

	trayWindow := fyneApp.NewWindow(appName)
	trayWindow.SetContent(widget.NewLabel("Respite is running in the system tray."))
	trayWindow.SetCloseIntercept(func() {
		trayWindow.Hide()
	})
	trayWindow.Hide()
	desktopApp.SetSystemTrayWindow(trayWindow)

	configDir, err := platform.ConfigDir()
	if err != nil {
		log.Printf("config dir: %v", err)
		configDir = "."
	}
	store := storage.NewStore(filepath.Join(configDir, appName))
	snapshot, err := store.Load()
	if err != nil {
		log.Printf("load settings: %v", err)
	}

	var sched *scheduler.Scheduler
	trayManager := tray.New(desktopApp, tray.Callbacks{
		OnTogglePause: func() {
			if sched.ShouldRun().Get() {
				sched.PauseTimer()
			} else {
				sched.ShouldRun().Set(true)
			}
		},
		OnResetDefaults: func() {
			sched.ResetToDefaults()
		},
		OnToggleSound: func() {
			sched.SoundEnabled().Set(!sched.SoundEnabled().Get())
		},
		OnToggleLoginItem: func() {
			sched.LaunchAtLogin().Set(!sched.LaunchAtLogin().Get())
		},
		OnQuit: func() {
			sched.Shutdown()
			fyneApp.Quit()
		},
	})

	sched = scheduler.New(
		model.DefaultConfig(),
		snapshot,
		platform.NewInactivityMonitor(),
		scheduler.Ports{
			Notifications: notify.New(fyneApp),
			Preferences:   store,
			LoginItems:    platform.NewLoginItems(appName),
		},
	)

	// Tray updates can arrive from the tick goroutine, so they go
	// through fyne.Do.
	refreshStatus := func() {
		status := statusLine(sched.Phase().Get(), sched.Remaining().Get())
		fyne.Do(func() {
			trayManager.SetStatus(status)
		})
	}
	sched.Remaining().Subscribe(func(int) {
		refreshStatus()
	})
	sched.Phase().Subscribe(func(scheduler.Phase) {
		refreshStatus()
	})
	sched.ShouldRun().Subscribe(func(run bool) {
		fyne.Do(func() {
			trayManager.SetPaused(!run)
		})
	})
	sched.SoundEnabled().Subscribe(func(enabled bool) {
		fyne.Do(func() {
			trayManager.SetSoundEnabled(enabled)
		})
	})
	sched.LaunchAtLogin().Subscribe(func(enabled bool) {
		fyne.Do(func() {
			trayManager.SetLaunchAtLogin(enabled)
		})
	})

	fyneApp.Run()
}

func statusLine(phase scheduler.Phase, remaining int) string {
	label := i18n.T("Work")
	if phase == scheduler.PhaseBreak {
		label = i18n.T("Break")
	}
	if remaining < 0 {
		remaining = 0
	}
	return fmt.Sprintf("%s: %s", label, fmt.Sprintf(i18n.T("%d min remaining"), remaining))
}
