package timeoff

import (
	"fmt"
	"time"

	"github.com/garyellow/winston-hrbot-go/internal/timeutil"
)

// BusinessDays counts Monday to Friday dates in the inclusive range
// [start, end] that are not in exclusions. Only the calendar date of each
// value matters. Returns 0 when end is before start.
func BusinessDays(start, end time.Time, exclusions []time.Time) int {
	start = timeutil.StartOfDay(start)
	end = timeutil.StartOfDay(end.In(start.Location()))
	if end.Before(start) {
		return 0
	}

	excluded := make(map[string]struct{}, len(exclusions))
	for _, d := range exclusions {
		excluded[d.Format(timeutil.DateLayout)] = struct{}{}
	}

	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
			continue
		}
		if _, skip := excluded[d.Format(timeutil.DateLayout)]; skip {
			continue
		}
		count++
	}
	return count
}

// ConfirmationPrompt phrases the question the host asks before fulfillment.
// A single-day request drops the "to" clause.
func ConfirmationPrompt(typeOfTimeOff string, start, end time.Time) string {
	displayStart := timeutil.LongDate(start)
	if start.Format(timeutil.DateLayout) == end.Format(timeutil.DateLayout) {
		return fmt.Sprintf("Can you confirm your %s request for %s?", typeOfTimeOff, displayStart)
	}
	return fmt.Sprintf("Can you confirm your %s request from %s to %s?", typeOfTimeOff, displayStart, timeutil.LongDate(end))
}
