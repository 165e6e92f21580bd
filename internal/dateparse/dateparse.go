// Package dateparse turns client-supplied date and time strings into the
// normalized forms events are stored with: calendar dates as YYYY-MM-DD
// and times-of-day as 24-hour HH:MM.
package dateparse

import (
	"errors"
	"time"
)

var (
	ErrInvalidDate = errors.New("invalid date format, use an ISO-8601 date or timestamp")
	ErrInvalidTime = errors.New("invalid time format, use HH:MM")
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// dateLayouts are the accepted ISO-8601 shapes, tried in order: a bare
// date, then timestamps with and without seconds/fractions, each with an
// optional zone offset ('Z' or ±HH:MM) and either 'T' or a space as the
// separator. Fractional seconds are optional in every seconds-bearing
// layout.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04Z07:00",
	"2006-01-02 15:04",
}

// Date extracts the calendar-date component from an ISO-8601 date or
// timestamp, discarding any time-of-day and zone offset. Returns
// ErrInvalidDate if s matches none of the accepted shapes.
func Date(s string) (string, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(dateLayout), nil
		}
	}
	return "", ErrInvalidDate
}

// TimeOfDay validates a 24-hour HH:MM string and returns it in normalized
// form. Returns ErrInvalidTime on any mismatch.
func TimeOfDay(s string) (string, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", ErrInvalidTime
	}
	return t.Format(timeLayout), nil
}
