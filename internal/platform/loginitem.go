package platform

import (
	"fmt"
	"log"
	"os"
)

// LoginItems registers or unregisters the running executable as an OS
// autostart entry. Calls are best effort and idempotent; failures are
// logged, never returned to the scheduler.
type LoginItems struct {
	appName string
}

// NewLoginItems creates a login-item registrar for the given app name.
func NewLoginItems(appName string) *LoginItems {
	return &LoginItems{appName: appName}
}

// SetEnabled turns the autostart entry on or off.
func (items *LoginItems) SetEnabled(enabled bool) {
	if enabled {
		execPath, err := os.Executable()
		if err != nil {
			log.Printf("login item: resolve executable: %v", err)
			return
		}
		if err := enableAutostart(items.appName, execPath); err != nil {
			log.Printf("login item: %v", err)
		}
		return
	}

	if err := disableAutostart(items.appName); err != nil {
		log.Printf("login item: %v", err)
	}
}

// ConfigDir returns the OS-standard configuration directory, falling
// back to the conventional per-OS location under the home directory.
func ConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return configDir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}
	return fallbackConfigDir(homeDir), nil
}
