package timeoff

import (
	"fmt"
	"time"

	"github.com/garyellow/winston-hrbot-go/internal/lex"
	"github.com/garyellow/winston-hrbot-go/internal/timeutil"
)

// User-facing validation messages.
const (
	msgUnknownType = "Sorry I can't create a time off request for %s, would you like a different type of time off?"
	msgPastStart   = "I can't schedule a time off request in the past! Can you provide a different date?"
	msgEndBefore   = "Your return date must be after your leave date! Can you try a different date?"
	msgBadDate     = "Sorry, I didn't understand the date %s. Can you try a different date?"
)

// Validate checks the slots of a time-off request and reports the first
// violation in order: type, start date, end date. Empty slots are not
// checked. now decides what "today" is, in now's location.
func Validate(typeOfTimeOff, startDate, endDate string, now time.Time) lex.ValidationResult {
	if typeOfTimeOff != "" {
		if _, ok := TypeID(typeOfTimeOff); !ok {
			return lex.BuildValidationResult(false, SlotTypeOfTimeOff, fmt.Sprintf(msgUnknownType, typeOfTimeOff))
		}
	}

	loc := now.Location()
	var start time.Time
	if startDate != "" {
		var err error
		start, err = timeutil.ParseDate(startDate, loc)
		if err != nil {
			return lex.BuildValidationResult(false, SlotStartDate, fmt.Sprintf(msgBadDate, startDate))
		}
		if start.Before(timeutil.StartOfDay(now)) {
			return lex.BuildValidationResult(false, SlotStartDate, msgPastStart)
		}
	}

	if endDate != "" {
		end, err := timeutil.ParseDate(endDate, loc)
		if err != nil {
			return lex.BuildValidationResult(false, SlotEndDate, fmt.Sprintf(msgBadDate, endDate))
		}
		// Without a start date there is nothing to compare against yet.
		if startDate != "" && end.Before(start) {
			return lex.BuildValidationResult(false, SlotEndDate, msgEndBefore)
		}
	}

	return lex.Valid()
}
