// Package joke tells a random Chuck Norris joke.
package joke

import (
	"context"

	"github.com/garyellow/winston-hrbot-go/internal/lex"
)

// Module constants
const (
	ModuleName = "joke"
	IntentName = "FunChuckNorrisJokes"
)

// Source picks a joke given a uniform integer generator.
type Source interface {
	Joke(intn func(n int) int) string
}

// Handler serves FunChuckNorrisJokes.
type Handler struct {
	source Source
	intn   func(n int) int
}

// NewHandler creates a joke handler. A nil intn picks uniformly at random.
func NewHandler(source Source, intn func(n int) int) *Handler {
	return &Handler{source: source, intn: intn}
}

// Intent returns the intent name.
func (h *Handler) Intent() string {
	return IntentName
}

// Fulfill replies with one joke.
func (h *Handler) Fulfill(_ context.Context, req *lex.IntentRequest) *lex.Response {
	return lex.FulfillWithSuccess(req, h.source.Joke(h.intn))
}
