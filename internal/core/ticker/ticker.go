// Package ticker wraps time.Ticker into a restartable fixed-interval
// callback source with guaranteed cancellation.
package ticker

import (
	"sync"
	"time"
)

// Ticker invokes a callback at a fixed interval. It can be started,
// stopped and started again; a firing that races Stop observes a stale
// generation token and never reaches the callback.
type Ticker struct {
	mu       sync.Mutex
	interval time.Duration
	callback func()
	stop     chan struct{}
}

// New creates a Ticker. The interval must be positive; callers that pass
// a non-positive interval get one second, matching the smallest useful
// tick.
func New(interval time.Duration, callback func()) *Ticker {
	if interval <= 0 {
		interval = time.Second
	}
	return &Ticker{interval: interval, callback: callback}
}

// Start begins firing the callback every interval. Calling Start while
// already running is a no-op.
func (t *Ticker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil {
		return
	}
	stop := make(chan struct{})
	t.stop = stop
	go t.run(stop)
}

// Stop cancels future firings. Idempotent.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop == nil {
		return
	}
	close(t.stop)
	t.stop = nil
}

// IsRunning reports whether the ticker is currently active.
func (t *Ticker) IsRunning() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stop != nil
}

func (t *Ticker) run(stop chan struct{}) {
	tick := time.NewTicker(t.interval)
	defer tick.Stop()

	for {
		select {
		case <-stop:
			return
		case <-tick.C:
			if !t.isCurrent(stop) {
				return
			}
			t.callback()
		}
	}
}

// isCurrent reports whether stop is still this ticker's live generation.
// A goroutine left over from a previous Start exits here instead of
// firing into a stopped or restarted ticker.
func (t *Ticker) isCurrent(stop chan struct{}) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stop == stop
}
