// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package xtime provides a civil Date type: a calendar date with no
// time-of-day and no time zone.
package xtime

import (
	"fmt"
	"time"
)

// Date is a calendar date with no time-of-day and no time zone.
//
// The zero value is not a valid date.
type Date struct {
	// Year is the year (e.g., 2026).
	Year int
	// Month is the month of the year.
	Month time.Month
	// Day is the day of the month, starting at 1.
	Day int
}

// TimeToDate returns the Date in which a time occurs, in that time's location.
func TimeToDate(t time.Time) Date {
	year, month, day := t.Date()
	return Date{
		Year:  year,
		Month: month,
		Day:   day,
	}
}

// ParseDate parses a date string in RFC 3339 full-date format (YYYY-MM-DD).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}
	return TimeToDate(t), nil
}

// String returns the date in RFC 3339 full-date format (YYYY-MM-DD).
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// In returns the time corresponding to midnight at the start of the date
// in the given location.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// IsValid reports whether the date is a real calendar date.
func (d Date) IsValid() bool {
	// time.Date normalizes out-of-range values, so a date is valid exactly
	// when it round-trips unchanged.
	return TimeToDate(d.In(time.UTC)) == d
}

// IsZero reports whether all of the date's fields are zero.
func (d Date) IsZero() bool {
	return d == Date{}
}

// AddDays returns the date that is n days in the future.
// n can also be negative to go into the past.
func (d Date) AddDays(n int) Date {
	return TimeToDate(d.In(time.UTC).AddDate(0, 0, n))
}

// DaysSince returns the signed number of days between the date and s,
// not including the end day.
func (d Date) DaysSince(s Date) int {
	// Both dates are converted at UTC midnight, so the difference is always
	// a whole number of days.
	return int(d.In(time.UTC).Sub(s.In(time.UTC)).Hours() / 24)
}

// Before reports whether d occurs before d2.
func (d Date) Before(d2 Date) bool {
	if d.Year != d2.Year {
		return d.Year < d2.Year
	}
	if d.Month != d2.Month {
		return d.Month < d2.Month
	}
	return d.Day < d2.Day
}

// After reports whether d occurs after d2.
func (d Date) After(d2 Date) bool {
	return d2.Before(d)
}

// EqualOrBefore reports whether d occurs on or before d2.
func (d Date) EqualOrBefore(d2 Date) bool {
	return !d2.Before(d)
}

// EqualOrAfter reports whether d occurs on or after d2.
func (d Date) EqualOrAfter(d2 Date) bool {
	return !d.Before(d2)
}

// Compare returns -1 if d occurs before d2, 0 if the dates are equal,
// and +1 if d occurs after d2.
func (d Date) Compare(d2 Date) int {
	if d.Before(d2) {
		return -1
	}
	if d.After(d2) {
		return +1
	}
	return 0
}

// MarshalText implements encoding.TextMarshaler.
// The output is the result of String.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// The date is expected to be in RFC 3339 full-date format (YYYY-MM-DD).
func (d *Date) UnmarshalText(data []byte) error {
	var err error
	*d, err = ParseDate(string(data))
	return err
}
