package focus

import (
	"sync"
	"time"

	"focusdesk/internal/clock"
	"focusdesk/internal/core/model"
)

// Config contains runtime options for Timer.
type Config struct {
	TickInterval time.Duration
}

// Timer owns a Session and the single scheduled tick that drives it.
//
// Ticks are scheduled one at a time with AfterFunc and re-armed after each
// one is applied, so the cadence is "one tick per TickInterval of
// scheduling" and drift accumulates. Every operation cancels the pending
// tick before changing state and arms a new one only if the session is
// running afterwards.
type Timer struct {
	mu         sync.Mutex
	clock      clock.Clock
	options    Config
	session    Session
	pending    *clock.Timer
	generation uint64
	events     []chan Event
	closed     bool
}

// New creates an idle work Timer.
func New(clk clock.Clock, options Config) *Timer {
	if clk == nil {
		clk = clock.Real()
	}
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	return &Timer{
		clock:   clk,
		options: options,
		session: NewSession(),
	}
}

// Subscribe registers a new observer channel. Sends never block: an
// observer that falls behind by more than buffer events misses them.
func (timer *Timer) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	timer.mu.Lock()
	defer timer.mu.Unlock()
	if timer.closed {
		close(ch)
		return ch
	}
	timer.events = append(timer.events, ch)
	return ch
}

// Snapshot returns the current state.
func (timer *Timer) Snapshot() Snapshot {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.snapshotLocked()
}

// Toggle starts or pauses the countdown.
func (timer *Timer) Toggle() {
	timer.apply(func(session *Session) { session.Toggle() })
}

// Reset returns to an idle work interval.
func (timer *Timer) Reset() {
	timer.apply(func(session *Session) { session.Reset() })
}

// SelectMode switches to a full, idle interval of target.
func (timer *Timer) SelectMode(target model.Mode) {
	if !target.Valid() {
		return
	}
	timer.apply(func(session *Session) { session.SelectMode(target) })
}

// Close cancels the pending tick and closes all observer channels. It is
// safe to call more than once; operations after Close do nothing.
func (timer *Timer) Close() {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	if timer.closed {
		return
	}
	timer.cancelLocked()
	timer.closed = true
	for _, ch := range timer.events {
		close(ch)
	}
	timer.events = nil
}

func (timer *Timer) apply(mutate func(*Session)) {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	if timer.closed {
		return
	}
	timer.cancelLocked()
	mutate(&timer.session)
	timer.armLocked()
	timer.emitLocked(Event{
		Type:     EventStateChange,
		Snapshot: timer.snapshotLocked(),
		At:       timer.clock.Now(),
	})
}

func (timer *Timer) onTick(generation uint64) {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	if timer.closed || generation != timer.generation {
		return
	}
	timer.pending = nil

	planned := timer.session.Mode.Duration()
	ended, completed := timer.session.Tick()
	now := timer.clock.Now()
	if completed {
		timer.generation++
		timer.emitLocked(Event{
			Type:     EventIntervalEnded,
			Snapshot: timer.snapshotLocked(),
			Ended:    ended,
			Planned:  planned,
			At:       now,
		})
		return
	}

	timer.armLocked()
	timer.emitLocked(Event{
		Type:     EventProgress,
		Snapshot: timer.snapshotLocked(),
		At:       now,
	})
}

// cancelLocked stops the pending tick and invalidates any callback that is
// already in flight.
func (timer *Timer) cancelLocked() {
	if timer.pending != nil {
		timer.pending.Stop()
		timer.pending = nil
	}
	timer.generation++
}

func (timer *Timer) armLocked() {
	if !timer.session.Running || timer.pending != nil {
		return
	}
	generation := timer.generation
	timer.pending = timer.clock.AfterFunc(timer.options.TickInterval, func() {
		timer.onTick(generation)
	})
}

func (timer *Timer) snapshotLocked() Snapshot {
	return Snapshot{
		Mode:      timer.session.Mode,
		Remaining: timer.session.Remaining,
		Running:   timer.session.Running,
		Progress:  timer.session.Progress(),
	}
}

func (timer *Timer) emitLocked(event Event) {
	for _, ch := range timer.events {
		select {
		case ch <- event:
		default:
		}
	}
}
