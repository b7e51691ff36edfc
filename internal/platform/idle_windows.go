package platform

import (
	"fmt"
	"syscall"
	"time"
	"unsafe"
)

type winIdleProvider struct{}

type lastInputInfo struct {
	cbSize uint32
	dwTime uint32
}

func newIdleProvider() IdleProvider {
	return winIdleProvider{}
}

// IdleDuration derives idle time from GetLastInputInfo against the
// system tick counter.
func (winIdleProvider) IdleDuration() (time.Duration, error) {
	info := lastInputInfo{cbSize: uint32(unsafe.Sizeof(lastInputInfo{}))}

	user32 := syscall.NewLazyDLL("user32.dll")
	result, _, err := user32.NewProc("GetLastInputInfo").Call(uintptr(unsafe.Pointer(&info)))
	if result == 0 {
		if err != nil {
			return 0, fmt.Errorf("get last input info: %w", err)
		}
		return 0, fmt.Errorf("get last input info: unknown error")
	}

	kernel32 := syscall.NewLazyDLL("kernel32.dll")
	ticks, _, tickErr := kernel32.NewProc("GetTickCount64").Call()
	if ticks == 0 && tickErr != nil {
		return 0, fmt.Errorf("get tick count: %w", tickErr)
	}

	idleMillis := uint64(ticks) - uint64(info.dwTime)
	return time.Duration(idleMillis) * time.Millisecond, nil
}
