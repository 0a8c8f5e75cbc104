// Package lex defines the intent request and dialog response shapes exchanged
// with the conversational host, plus the builders that produce the three
// terminal dialog actions (ElicitSlot, Delegate, Close).
package lex

import (
	"strings"
)

// InvocationSource tells the hook which conversational phase the host is in.
type InvocationSource string

const (
	// DialogCodeHook is sent while slots are still being collected.
	DialogCodeHook InvocationSource = "DialogCodeHook"
	// FulfillmentCodeHook is sent once the host considers the intent ready.
	FulfillmentCodeHook InvocationSource = "FulfillmentCodeHook"
)

// Valid reports whether s is one of the two known invocation sources.
func (s InvocationSource) Valid() bool {
	return s == DialogCodeHook || s == FulfillmentCodeHook
}

// Slots maps slot names to their values. A nil value means the slot is unset
// and is serialized as JSON null.
type Slots map[string]*string

// Get returns the slot value, or "" when the slot is absent or null.
func (s Slots) Get(name string) string {
	if v, ok := s[name]; ok && v != nil {
		return *v
	}
	return ""
}

// Set stores value under name.
func (s Slots) Set(name, value string) {
	s[name] = &value
}

// Clear keeps the key but nulls its value.
func (s Slots) Clear(name string) {
	s[name] = nil
}

// Clone returns a copy whose values do not alias the receiver.
func (s Slots) Clone() Slots {
	if s == nil {
		return Slots{}
	}
	out := make(Slots, len(s))
	for k, v := range s {
		if v == nil {
			out[k] = nil
			continue
		}
		val := *v
		out[k] = &val
	}
	return out
}

// Bot identifies which bot the host routed the request from.
type Bot struct {
	Name    string `json:"name"`
	Alias   string `json:"alias,omitempty"`
	Version string `json:"version,omitempty"`
}

// Intent is the intent the host matched for the current utterance.
type Intent struct {
	Name               string `json:"name" binding:"required"`
	Slots              Slots  `json:"slots"`
	ConfirmationStatus string `json:"confirmationStatus,omitempty"`
}

// IntentRequest is one inbound hook invocation.
type IntentRequest struct {
	CurrentIntent     Intent            `json:"currentIntent"`
	Bot               Bot               `json:"bot"`
	UserID            string            `json:"userId"`
	InputTranscript   string            `json:"inputTranscript,omitempty"`
	InvocationSource  InvocationSource  `json:"invocationSource" binding:"required"`
	OutputDialogMode  string            `json:"outputDialogMode,omitempty"`
	MessageVersion    string            `json:"messageVersion,omitempty"`
	SessionAttributes map[string]string `json:"sessionAttributes"`
	RequestAttributes map[string]string `json:"requestAttributes,omitempty"`
}

// IntentName is a shorthand for CurrentIntent.Name.
func (r *IntentRequest) IntentName() string {
	return r.CurrentIntent.Name
}

// Slot is a shorthand for CurrentIntent.Slots.Get.
func (r *IntentRequest) Slot(name string) string {
	return r.CurrentIntent.Slots.Get(name)
}

// CallerID extracts the messaging-platform user id from the host's opaque
// user id. Slack-routed ids look like "<team>:<channel>:<user>", so the last
// colon-delimited segment is the user; ids without a colon are returned as is.
func CallerID(userID string) string {
	return userID[strings.LastIndex(userID, ":")+1:]
}

// CallerID returns the messaging-platform user id of the request's caller.
func (r *IntentRequest) CallerID() string {
	return CallerID(r.UserID)
}
