// Package clock provides an injectable time source so that countdowns can
// be driven by real time in production and stepped by hand in tests.
package clock

import "time"

// Clock abstracts the time operations used by the focus timer.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// AfterFunc waits for d, then calls f. The returned Timer cancels the
	// pending call with Stop. Real clocks call f on their own goroutine;
	// the fake clock calls it synchronously from Advance.
	AfterFunc(d time.Duration, f func()) *Timer
}

// Timer is a cancellable handle to a scheduled callback.
type Timer struct {
	stopFunc func() bool
}

// Stop prevents the callback from firing. It returns false if the callback
// already fired or the timer was already stopped.
func (t *Timer) Stop() bool {
	if t == nil || t.stopFunc == nil {
		return false
	}
	return t.stopFunc()
}

// Real returns a Clock backed by the time package.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) *Timer {
	timer := time.AfterFunc(d, f)
	return &Timer{stopFunc: timer.Stop}
}
