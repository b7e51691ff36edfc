package platform

import "time"

// Querying HIDIdleTime needs cgo against IOKit, which this build avoids.
// The monitor logs the unsupported probe once and treats the user as
// always active.
type darwinIdleProvider struct{}

func newIdleProvider() IdleProvider {
	return darwinIdleProvider{}
}

func (darwinIdleProvider) IdleDuration() (time.Duration, error) {
	return 0, ErrIdleUnsupported
}
