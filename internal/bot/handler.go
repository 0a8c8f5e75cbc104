// Package bot routes intent requests to the module that serves them.
// Each module (balance, timeoffrequest, joke, plate, headcount, menu,
// wellness) implements Handler; modules with slot validation also implement
// DialogHandler.
package bot

import (
	"context"

	"github.com/garyellow/winston-hrbot-go/internal/lex"
)

// Handler defines the interface that all intent modules must implement.
type Handler interface {
	// Intent returns the intent name this handler serves.
	Intent() string

	// Fulfill completes the intent and returns the terminal response.
	// Collaborator failures are converted to a Close response here; a
	// handler never returns nil.
	Fulfill(ctx context.Context, req *lex.IntentRequest) *lex.Response
}

// DialogHandler is a Handler with an Eliciting phase. Elicit validates the
// slots collected so far and answers with ElicitSlot or Delegate.
type DialogHandler interface {
	Handler
	Elicit(ctx context.Context, req *lex.IntentRequest) *lex.Response
}
