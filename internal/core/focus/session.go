package focus

import (
	"fmt"
	"time"

	"focusdesk/internal/core/model"
)

// Session is the Pomodoro countdown state. The zero value is not useful;
// start from NewSession.
type Session struct {
	Mode      model.Mode
	Remaining time.Duration
	Running   bool
}

// NewSession returns an idle work session with a full interval.
func NewSession() Session {
	return Session{
		Mode:      model.ModeWork,
		Remaining: model.WorkDuration,
	}
}

// Toggle starts a paused countdown or pauses a running one.
func (session *Session) Toggle() {
	session.Running = !session.Running
}

// Reset returns to an idle work session regardless of the current state.
func (session *Session) Reset() {
	*session = NewSession()
}

// SelectMode switches to target with a full, idle interval. Any countdown
// in progress is discarded. Unknown targets are ignored and reported false.
func (session *Session) SelectMode(target model.Mode) bool {
	if !target.Valid() {
		return false
	}
	session.Mode = target
	session.Remaining = target.Duration()
	session.Running = false
	return true
}

// Tick applies one second of countdown. It does nothing while paused.
// When the countdown reaches zero the session stops, flips to the next
// mode with a full interval, and Tick returns the mode that just ended.
func (session *Session) Tick() (ended model.Mode, completed bool) {
	if !session.Running {
		return "", false
	}

	session.Remaining = session.Remaining.Truncate(time.Second)
	if session.Remaining > 0 {
		session.Remaining -= time.Second
	}
	if session.Remaining > 0 {
		return "", false
	}

	ended = session.Mode
	session.Running = false
	session.Mode = ended.Next()
	session.Remaining = session.Mode.Duration()
	return ended, true
}

// Minutes returns the whole minutes left.
func (session Session) Minutes() int {
	return int(session.Remaining / time.Minute)
}

// Seconds returns the seconds left within the current minute.
func (session Session) Seconds() int {
	return int(session.Remaining%time.Minute) / int(time.Second)
}

// Clock formats the remaining time as MM:SS.
func (session Session) Clock() string {
	return fmt.Sprintf("%02d:%02d", session.Minutes(), session.Seconds())
}

// Progress returns the elapsed share of the interval as a percentage.
func (session Session) Progress() float64 {
	total := session.Mode.Duration()
	if total <= 0 {
		return 0
	}
	progress := float64(total-session.Remaining) / float64(total) * 100
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}
