package clock

import (
	"sync/atomic"
	"testing"
	"time"
)

var epoch = time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

func TestFakeClockNow(t *testing.T) {
	clock := Fake(epoch)
	if got := clock.Now(); !got.Equal(epoch) {
		t.Fatalf("Now() = %v, want %v", got, epoch)
	}
	clock.Advance(90 * time.Second)
	if got, want := clock.Now(), epoch.Add(90*time.Second); !got.Equal(want) {
		t.Fatalf("Now() after Advance = %v, want %v", got, want)
	}
}

func TestFakeClockAfterFuncFiresAtDeadline(t *testing.T) {
	clock := Fake(epoch)
	var calls atomic.Int32
	clock.AfterFunc(2*time.Second, func() { calls.Add(1) })

	clock.Advance(time.Second)
	if calls.Load() != 0 {
		t.Fatal("AfterFunc fired before deadline")
	}
	clock.Advance(time.Second)
	if calls.Load() != 1 {
		t.Fatalf("calls = %d, want 1", calls.Load())
	}
	clock.Advance(10 * time.Second)
	if calls.Load() != 1 {
		t.Fatalf("one-shot callback fired again: calls = %d", calls.Load())
	}
}

func TestFakeClockAfterFuncZeroDurationRunsImmediately(t *testing.T) {
	clock := Fake(epoch)
	var called atomic.Bool
	clock.AfterFunc(0, func() { called.Store(true) })
	if !called.Load() {
		t.Fatal("AfterFunc(0) should run synchronously")
	}
}

func TestFakeClockStop(t *testing.T) {
	clock := Fake(epoch)
	var called atomic.Bool
	timer := clock.AfterFunc(time.Second, func() { called.Store(true) })

	if !timer.Stop() {
		t.Fatal("Stop() = false on pending timer, want true")
	}
	if timer.Stop() {
		t.Fatal("second Stop() = true, want false")
	}
	clock.Advance(time.Second)
	if called.Load() {
		t.Fatal("stopped timer fired")
	}
	if clock.PendingCount() != 0 {
		t.Fatalf("PendingCount() = %d, want 0", clock.PendingCount())
	}
}

func TestFakeClockStopAfterFire(t *testing.T) {
	clock := Fake(epoch)
	timer := clock.AfterFunc(time.Second, func() {})
	clock.Advance(time.Second)
	if timer.Stop() {
		t.Fatal("Stop() after fire = true, want false")
	}
}

func TestFakeClockRearmInsideCallback(t *testing.T) {
	clock := Fake(epoch)
	var ticks atomic.Int32
	var arm func()
	arm = func() {
		clock.AfterFunc(time.Second, func() {
			ticks.Add(1)
			arm()
		})
	}
	arm()

	for i := 0; i < 5; i++ {
		clock.Advance(time.Second)
	}
	if ticks.Load() != 5 {
		t.Fatalf("ticks = %d, want 5", ticks.Load())
	}
	if clock.PendingCount() != 1 {
		t.Fatalf("PendingCount() = %d, want 1", clock.PendingCount())
	}
}

func TestFakeClockDeadlineOrder(t *testing.T) {
	clock := Fake(epoch)
	var order []int
	clock.AfterFunc(3*time.Second, func() { order = append(order, 3) })
	clock.AfterFunc(1*time.Second, func() { order = append(order, 1) })
	clock.AfterFunc(2*time.Second, func() { order = append(order, 2) })

	clock.Advance(5 * time.Second)
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("order = %v, want [1 2 3]", order)
	}
}

func TestFakeClockWaitForTimers(t *testing.T) {
	clock := Fake(epoch)
	done := make(chan struct{})
	go func() {
		clock.AfterFunc(time.Second, func() { close(done) })
	}()

	clock.WaitForTimers(1)
	clock.Advance(time.Second)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("callback did not fire")
	}
}

func TestRealClockAfterFuncStop(t *testing.T) {
	timer := Real().AfterFunc(time.Hour, func() {})
	if !timer.Stop() {
		t.Fatal("Stop() on pending real timer = false, want true")
	}
}
