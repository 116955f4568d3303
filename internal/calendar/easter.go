// Package calendar provides Orthodox church calendar calculations.
package calendar

import (
	"time"
)

// OrthodoxEaster calculates the date of Orthodox Easter (Pascha) for a
// given year.
//
// It uses the Gauss congruence method for the Julian-calendar paschal full
// moon, then applies the fixed 13-day Julian-to-Gregorian correction. The
// correction constant only holds for 1900-2099; outside that window the
// result is wrong and callers must not rely on it.
func OrthodoxEaster(year int) time.Time {
	a := year % 19
	b := year % 4
	c := year % 7
	d := (19*a + 15) % 30
	e := (2*b + 4*c + 6*d + 6) % 7

	// Julian calendar day in March. time.Date normalizes the overflow
	// into April or May.
	marchDay := d + e + 22

	return time.Date(year, time.March, marchDay+13, 0, 0, 0, 0, time.UTC)
}

// ParseDateString parses a date string in YYYY-MM-DD format.
func ParseDateString(dateStr string) (time.Time, error) {
	return time.Parse("2006-01-02", dateStr)
}

// FormatDate formats a date as YYYY-MM-DD.
func FormatDate(date time.Time) string {
	return date.Format("2006-01-02")
}

// DateKey formats a date as a zero-padded "MM-DD" key.
func DateKey(date time.Time) string {
	return date.Format("01-02")
}
