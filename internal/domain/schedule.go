package domain

import (
	"fmt"
	"time"
)

const (
	// DateLayout is used for membership start dates.
	DateLayout = "2006-01-02"
	// ClockLayout is used for schedule start and end times.
	ClockLayout = "15:04"
)

// Schedule is a weekly training slot. DayOfWeek is a free-form, locale-specific
// label (e.g. "Δευτέρα"). Only the clock part of StartTime and EndTime is used;
// nothing checks that StartTime comes before EndTime.
type Schedule struct {
	DayOfWeek string    `json:"dayOfWeek"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

func (s Schedule) String() string {
	return fmt.Sprintf("%s %s - %s", s.DayOfWeek, s.StartTime.Format(ClockLayout), s.EndTime.Format(ClockLayout))
}
