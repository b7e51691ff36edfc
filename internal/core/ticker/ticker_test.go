package ticker

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForTicks(t *testing.T, count *atomic.Int64, want int64) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for count.Load() < want {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %d ticks, got %d", want, count.Load())
		}
		time.Sleep(time.Millisecond)
	}
}

func TestStartStopIsRunning(t *testing.T) {
	tk := New(10*time.Millisecond, func() {})

	assert.False(t, tk.IsRunning())
	tk.Start()
	assert.True(t, tk.IsRunning())
	tk.Stop()
	assert.False(t, tk.IsRunning())

	// Stop is idempotent
	tk.Stop()
	assert.False(t, tk.IsRunning())
}

func TestCallbackFiresRepeatedly(t *testing.T) {
	var count atomic.Int64
	tk := New(5*time.Millisecond, func() {
		count.Add(1)
	})

	tk.Start()
	defer tk.Stop()
	waitForTicks(t, &count, 3)
}

func TestStopCancelsPendingFirings(t *testing.T) {
	var count atomic.Int64
	tk := New(5*time.Millisecond, func() {
		count.Add(1)
	})

	tk.Start()
	waitForTicks(t, &count, 2)
	tk.Stop()

	settled := count.Load()
	time.Sleep(50 * time.Millisecond)
	require.LessOrEqual(t, count.Load(), settled+1,
		"callback kept firing after Stop")
	final := count.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, final, count.Load(), "late firing invoked the callback")
}

func TestRestartAfterStop(t *testing.T) {
	var count atomic.Int64
	tk := New(5*time.Millisecond, func() {
		count.Add(1)
	})

	tk.Start()
	waitForTicks(t, &count, 1)
	tk.Stop()

	before := count.Load()
	tk.Start()
	defer tk.Stop()
	waitForTicks(t, &count, before+2)
}

func TestStartWhileRunningIsNoOp(t *testing.T) {
	var count atomic.Int64
	tk := New(5*time.Millisecond, func() {
		count.Add(1)
	})

	tk.Start()
	tk.Start()
	waitForTicks(t, &count, 2)
	tk.Stop()

	assert.False(t, tk.IsRunning())
	final := count.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, final, count.Load(),
		"a second firing sequence survived Stop")
}

func TestNonPositiveIntervalFallsBack(t *testing.T) {
	tk := New(0, func() {})
	assert.Equal(t, time.Second, tk.interval)
}
