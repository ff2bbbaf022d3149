package model

import "time"

// IntervalRecord describes an interval that ran to completion.
type IntervalRecord struct {
	ID      int64
	Mode    Mode
	Planned time.Duration
	EndedAt time.Time
}

// DailySummary aggregates completed intervals for one calendar day.
type DailySummary struct {
	Day            time.Time
	WorkIntervals  int
	BreakIntervals int
	FocusTime      time.Duration
}
