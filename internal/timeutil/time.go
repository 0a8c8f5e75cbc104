// Package timeutil formats dates and times the way the bot phrases them in chat.
package timeutil

import (
	"fmt"
	"strconv"
	"time"
)

// DateLayout is the wire format of date slots (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Costa Rica observes no DST, so a fixed UTC-6 zone is exact.
var costaRicaTZ = time.FixedZone("UTC-6", -6*60*60)

// CostaRicaLocation returns the fixed UTC-6 zone used for event times.
func CostaRicaLocation() *time.Location {
	return costaRicaTZ
}

// ParseDate parses a YYYY-MM-DD slot value as midnight in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, loc)
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the number of calendar days from a to b, measured in
// a's location. Negative when b is before a.
func DaysBetween(a, b time.Time) int {
	from := StartOfDay(a)
	to := StartOfDay(b.In(a.Location()))
	// Date arithmetic in UTC sidesteps DST-length days.
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	fu := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	tu := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(tu.Sub(fu).Hours() / 24)
}

// Ordinal returns n with its English ordinal suffix ("1st", "12th", "23rd").
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

// LongDate formats t as "Monday, June 9th 2025".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%s, %s %s %d", t.Weekday(), t.Month(), Ordinal(t.Day()), t.Year())
}

// CalendarTime phrases t relative to now, both viewed in loc:
//
//	"Today at 3:04 PM", "Tomorrow at 9:00 AM", "Friday at 5:30 PM",
//	"Yesterday at 8:00 AM", "Last Monday at 1:00 PM", or "06/09/2025"
//
// Times within the coming week use the weekday, times within the past week
// use "Last <weekday>", anything further away falls back to MM/DD/YYYY.
func CalendarTime(t, now time.Time, loc *time.Location) string {
	t = t.In(loc)
	now = now.In(loc)
	clock := t.Format("3:04 PM")

	switch diff := DaysBetween(now, t); {
	case diff < -6:
		return t.Format("01/02/2006")
	case diff < -1:
		return fmt.Sprintf("Last %s at %s", t.Weekday(), clock)
	case diff == -1:
		return "Yesterday at " + clock
	case diff == 0:
		return "Today at " + clock
	case diff == 1:
		return "Tomorrow at " + clock
	case diff < 7:
		return fmt.Sprintf("%s at %s", t.Weekday(), clock)
	default:
		return t.Format("01/02/2006")
	}
}
