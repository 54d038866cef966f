package datemath

import (
	"fmt"
	"time"
)

// Period is the Korean AM/PM marker that may precede an hour expression.
type Period string

const (
	PeriodNone Period = ""
	PeriodAM   Period = "오전"
	PeriodPM   Period = "오후"
)

// ParsedDate is the month/day pair captured from "<M>월 <D>일".
// Values are not range-checked here.
type ParsedDate struct {
	Month int
	Day   int
}

// ParsedTime is the hour captured from "(오전|오후)? <H>시".
type ParsedTime struct {
	Period Period
	Hour   int
}

// NormalizedDateTime is a legal calendar instant with hour resolution.
type NormalizedDateTime struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
}

// Date renders the date as YYYY-MM-DD.
func (n NormalizedDateTime) Date() string {
	return fmt.Sprintf("%04d-%02d-%02d", n.Year, n.Month, n.Day)
}

// Time renders the time as HH:MM (24-hour).
func (n NormalizedDateTime) Time() string {
	return fmt.Sprintf("%02d:%02d", n.Hour, n.Minute)
}

// In returns the instant as a time.Time in loc. A nil loc means UTC.
func (n NormalizedDateTime) In(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(n.Year, time.Month(n.Month), n.Day, n.Hour, n.Minute, 0, 0, loc)
}
