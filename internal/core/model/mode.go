package model

import "time"

// Mode identifies which kind of interval is active.
type Mode string

const (
	ModeWork  Mode = "work"
	ModeBreak Mode = "break"
)

// Fixed interval lengths.
const (
	WorkDuration  = 25 * time.Minute
	BreakDuration = 5 * time.Minute
)

// Duration returns the full configured length of an interval in mode.
// Unknown modes report zero.
func (mode Mode) Duration() time.Duration {
	switch mode {
	case ModeWork:
		return WorkDuration
	case ModeBreak:
		return BreakDuration
	}
	return 0
}

// Next returns the mode that follows mode when an interval elapses.
func (mode Mode) Next() Mode {
	if mode == ModeWork {
		return ModeBreak
	}
	return ModeWork
}

// Valid reports whether mode is one of the known modes.
func (mode Mode) Valid() bool {
	return mode == ModeWork || mode == ModeBreak
}

// Label returns the user-facing name of the mode.
func (mode Mode) Label() string {
	switch mode {
	case ModeWork:
		return "Focus"
	case ModeBreak:
		return "Break"
	}
	return string(mode)
}
