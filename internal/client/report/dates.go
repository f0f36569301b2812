// Package report holds the pure view-side logic behind the earnings
// reports: date-range rules, owner filtering, trip mapping and table
// sorting. Nothing here touches the network.
package report

import (
	"errors"
	"time"
)

// MaxRangeDays caps a report's date range. The backend aggregates at most
// a month of driver summaries per query.
const MaxRangeDays = 31

var (
	ErrEndBeforeStart = errors.New("end date is before start date")
	ErrRangeTooLong   = errors.New("date range cannot exceed 31 days")
)

// DaysBetween returns the number of whole days from start to end,
// ignoring the time-of-day components.
func DaysBetween(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours() / 24)
}

// ValidateRange checks a report date range: end must not precede start and
// the span must not exceed MaxRangeDays.
func ValidateRange(start, end time.Time) error {
	days := DaysBetween(start, end)
	if days < 0 {
		return ErrEndBeforeStart
	}
	if days > MaxRangeDays {
		return ErrRangeTooLong
	}
	return nil
}
