package focus

import (
	"time"

	"focusdesk/internal/core/model"
)

// EventType defines the type of Timer event.
type EventType string

const (
	EventStateChange   EventType = "state_change"
	EventProgress      EventType = "progress"
	EventIntervalEnded EventType = "interval_ended"
)

// Snapshot is a copy of the session state plus its derived progress.
type Snapshot struct {
	Mode      model.Mode
	Remaining time.Duration
	Running   bool
	Progress  float64
}

// Clock formats the remaining time as MM:SS.
func (snapshot Snapshot) Clock() string {
	session := Session{Mode: snapshot.Mode, Remaining: snapshot.Remaining}
	return session.Clock()
}

// Event represents a Timer update for observers. Snapshot always holds the
// state after the change. For EventIntervalEnded, Ended and Planned describe
// the interval that just finished.
type Event struct {
	Type EventType
	Snapshot
	Ended   model.Mode
	Planned time.Duration
	At      time.Time
}
