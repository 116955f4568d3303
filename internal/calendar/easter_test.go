package calendar

import (
	"testing"
	"time"
)

func TestOrthodoxEaster_KnownDates(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		day   int
	}{
		{2024, time.May, 5},
		{2025, time.April, 20},
		{2026, time.April, 12},
		{2027, time.May, 2},
		{2028, time.April, 16},
	}

	for _, tt := range tests {
		got := OrthodoxEaster(tt.year)
		if got.Month() != tt.month || got.Day() != tt.day {
			t.Errorf("OrthodoxEaster(%d) = %s %d, want %s %d",
				tt.year, got.Month(), got.Day(), tt.month, tt.day)
		}
	}
}

func TestOrthodoxEaster_AlwaysSunday(t *testing.T) {
	for year := 1900; year <= 2099; year++ {
		got := OrthodoxEaster(year)
		if got.Weekday() != time.Sunday {
			t.Errorf("OrthodoxEaster(%d) = %s (%s), want Sunday",
				year, FormatDate(got), got.Weekday())
		}
	}
}

func TestOrthodoxEaster_WithinCalendarWindow(t *testing.T) {
	// Julian-shifted Gregorian bound.
	for year := 1900; year <= 2099; year++ {
		got := OrthodoxEaster(year)
		earliest := time.Date(year, time.March, 22, 0, 0, 0, 0, time.UTC)
		latest := time.Date(year, time.May, 8, 0, 0, 0, 0, time.UTC)
		if got.Before(earliest) || got.After(latest) {
			t.Errorf("OrthodoxEaster(%d) = %s, outside Mar 22 - May 8", year, FormatDate(got))
		}
	}
}

func TestParseDateString(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"2026-04-12", false},
		{"2026-12-31", false},
		{"invalid", true},
		{"2026-13-01", true},
		{"04-12", true},
	}

	for _, tt := range tests {
		_, err := ParseDateString(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDateString(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestDateKey(t *testing.T) {
	d := time.Date(2026, time.January, 9, 0, 0, 0, 0, time.UTC)
	if got := DateKey(d); got != "01-09" {
		t.Errorf("DateKey = %q, want %q", got, "01-09")
	}
}
