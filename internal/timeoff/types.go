// Package timeoff holds the time-off request rules: the accepted request
// types, slot validation, business-day counting and the confirmation prompt.
package timeoff

import (
	"maps"
	"slices"
)

// Slot names of the CreatePTORequest intent.
const (
	SlotTypeOfTimeOff = "typeOfTimeOff"
	SlotStartDate     = "startDate"
	SlotEndDate       = "endDate"
)

// SessionConfirmationPrompt is the session attribute the host reads to
// confirm the request with the user.
const SessionConfirmationPrompt = "confirmationPrompt"

// HR time-off type ids keyed by the label the bot accepts.
var types = map[string]int{
	"PTO":                 1,
	"Unpaid time off":     6,
	"Bereavement Leave":   3,
	"Paid Marriage Leave": 8,
	"Travel Requests":     7,
}

// TypeID returns the HR type id for label.
func TypeID(label string) (int, bool) {
	id, ok := types[label]
	return id, ok
}

// Types returns the accepted labels in sorted order.
func Types() []string {
	return slices.Sorted(maps.Keys(types))
}
