// Package errors provides domain-specific error types and sentinel errors
// for improved error handling across the application.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common scenarios.
// Use errors.Is() to check these errors in your code.
var (
	// ErrUnsupportedIntent indicates the host sent an intent this bot does not serve.
	ErrUnsupportedIntent = errors.New("unsupported intent")

	// ErrInvalidBot indicates the request was addressed to a different bot.
	ErrInvalidBot = errors.New("invalid bot name")

	// ErrInvalidInvocationSource indicates an invocation source outside the dialog/fulfillment pair.
	ErrInvalidInvocationSource = errors.New("invalid invocation source")

	// ErrPersonNotFound indicates the caller has no matching HR record.
	ErrPersonNotFound = errors.New("person not found")

	// ErrMissingSlot indicates a slot required for fulfillment is empty.
	ErrMissingSlot = errors.New("missing required slot")
)

// UnsupportedIntentError names the intent that could not be dispatched.
type UnsupportedIntentError struct {
	Intent string
}

func (e *UnsupportedIntentError) Error() string {
	return fmt.Sprintf("Intent with name %s not supported", e.Intent)
}

// Is lets errors.Is match ErrUnsupportedIntent.
func (e *UnsupportedIntentError) Is(target error) bool {
	return target == ErrUnsupportedIntent
}

// NewUnsupportedIntentError creates an UnsupportedIntentError.
func NewUnsupportedIntentError(intent string) *UnsupportedIntentError {
	return &UnsupportedIntentError{Intent: intent}
}

// PersonNotFoundError is returned when the caller's email has no HR directory match.
// Its message is shown to the user verbatim, so it reads as a sentence.
type PersonNotFoundError struct {
	Email string
}

func (e *PersonNotFoundError) Error() string {
	return fmt.Sprintf("Sorry, %s could not be found", e.Email)
}

// Is lets errors.Is match ErrPersonNotFound.
func (e *PersonNotFoundError) Is(target error) bool {
	return target == ErrPersonNotFound
}

// NewPersonNotFoundError creates a PersonNotFoundError.
func NewPersonNotFoundError(email string) *PersonNotFoundError {
	return &PersonNotFoundError{Email: email}
}

// APIError represents a non-2xx response from an external API.
type APIError struct {
	Service    string
	URL        string
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s request failed with status code %d", e.Service, e.StatusCode)
}

// NewAPIError creates a new API error.
func NewAPIError(service, url string, statusCode int, body []byte) *APIError {
	return &APIError{
		Service:    service,
		URL:        url,
		StatusCode: statusCode,
		Body:       body,
	}
}

// CollaboratorError records which external call failed.
type CollaboratorError struct {
	Collaborator string // e.g. "bamboo", "slack", "parking"
	Operation    string // e.g. "whos_out", "users.profile.get"
	Err          error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Collaborator, e.Operation, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

// NewCollaboratorError wraps err with collaborator context. Returns nil if err is nil.
func NewCollaboratorError(collaborator, operation string, err error) error {
	if err == nil {
		return nil
	}
	return &CollaboratorError{
		Collaborator: collaborator,
		Operation:    operation,
		Err:          err,
	}
}
