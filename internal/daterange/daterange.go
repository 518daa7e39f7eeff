// Package daterange computes the calendar windows the sync units query with.
// Every function works in the location carried by its time argument.
package daterange

import "time"

const dayLayout = "2006-01-02"

// DayBounds returns [00:00, next 00:00) of now's calendar day.
func DayBounds(now time.Time) (time.Time, time.Time) {
	y, m, d := now.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}

// RollingWindow covers the trailing days calendar days up to and including today.
func RollingWindow(now time.Time, days int) (time.Time, time.Time) {
	if days < 1 {
		days = 1
	}
	start, _ := DayBounds(now)
	return start.AddDate(0, 0, -(days - 1)), now
}

// WeekStart returns Monday 00:00 of now's ISO week. Sunday belongs to the week before.
func WeekStart(now time.Time) time.Time {
	start, _ := DayBounds(now)
	wd := int(now.Weekday())
	diff := 1 - wd
	if wd == 0 {
		diff = -6
	}
	return start.AddDate(0, 0, diff)
}

// MonthRangeUTC returns [first of month, first of next month) in UTC.
// monthIndex is zero based and overflows into the following years.
func MonthRangeUTC(year, monthIndex int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(monthIndex+1), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// DayKey is the date part of t's RFC 3339 UTC representation.
func DayKey(t time.Time) string {
	return t.UTC().Format(time.RFC3339)[:10]
}

// LocalDay formats t's date in its own location.
func LocalDay(t time.Time) string {
	return t.Format(dayLayout)
}

// ParseDay parses a YYYY-MM-DD string at midnight in loc.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(dayLayout, s, loc)
}
