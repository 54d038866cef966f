package datemath

import (
	"errors"
	"fmt"
)

// User-facing diagnostics, returned verbatim to the end user.
const (
	MsgDateFormat = "날짜 형식을 이해하지 못했습니다. '7월 30일' 형식으로 입력해주세요."
	MsgTimeFormat = "시간 형식을 이해하지 못했습니다. '오전 10시' 또는 '오후 3시' 형식으로 입력해주세요."
)

var (
	// ErrDateFormat means no "<N>월 <N>일" expression was found.
	ErrDateFormat = errors.New(MsgDateFormat)
	// ErrTimeFormat means a date was found but no "<N>시" expression.
	ErrTimeFormat = errors.New(MsgTimeFormat)
	// ErrCalendarConstruction matches every *CalendarConstructionError.
	ErrCalendarConstruction = errors.New("could not build a calendar date/time")
)

// Calendar violations reported by construction.
var (
	ErrYearRange  = errors.New("year is out of range")
	ErrMonthRange = errors.New("month must be in 1..12")
	ErrDayRange   = errors.New("day is out of range for month")
	ErrHourRange  = errors.New("hour must be in 0..23")
)

// CalendarConstructionError reports pieces that were found in the input
// but do not form a legal calendar instant.
type CalendarConstructionError struct {
	Year  int
	Month int
	Day   int
	Hour  int
	Err   error
}

func (e *CalendarConstructionError) Error() string {
	return fmt.Sprintf("%s (%d-%d-%d %d시): %v", ErrCalendarConstruction, e.Year, e.Month, e.Day, e.Hour, e.Err)
}

func (e *CalendarConstructionError) Unwrap() error { return e.Err }

func (e *CalendarConstructionError) Is(target error) bool {
	return target == ErrCalendarConstruction
}
