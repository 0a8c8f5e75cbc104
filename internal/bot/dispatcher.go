package bot

import (
	"context"
	"fmt"

	"github.com/garyellow/winston-hrbot-go/internal/ctxutil"
	domerrors "github.com/garyellow/winston-hrbot-go/internal/errors"
	"github.com/garyellow/winston-hrbot-go/internal/lex"
	"github.com/garyellow/winston-hrbot-go/internal/logger"
	"github.com/garyellow/winston-hrbot-go/internal/metrics"
)

// DispatcherConfig holds configuration for creating a new Dispatcher.
type DispatcherConfig struct {
	Registry *Registry
	BotName  string // Requests from any other bot are refused
	Logger   *logger.Logger
	Metrics  *metrics.Metrics // Optional
}

// Dispatcher is the single entry point for intent requests.
type Dispatcher struct {
	registry *Registry
	botName  string
	step     Step
}

// NewDispatcher creates a dispatcher whose handlers run behind recovery,
// logging and metrics middleware.
func NewDispatcher(cfg DispatcherConfig) *Dispatcher {
	return &Dispatcher{
		registry: cfg.Registry,
		botName:  cfg.BotName,
		step: Chain(Run,
			RecoveryMiddleware(cfg.Logger),
			LoggingMiddleware(cfg.Logger),
			MetricsMiddleware(cfg.Metrics),
		),
	}
}

// Dispatch validates req and runs its handler in the phase the host asked for.
//
// It returns an error, and no response, when the request is addressed to a
// different bot (errors.ErrInvalidBot), names an intent outside the
// registered set (*errors.UnsupportedIntentError) or carries an unknown
// invocation source (errors.ErrInvalidInvocationSource). Every other outcome,
// including collaborator failures, is a response.
func (d *Dispatcher) Dispatch(ctx context.Context, req *lex.IntentRequest) (*lex.Response, error) {
	if req.Bot.Name != d.botName {
		return nil, fmt.Errorf("%w: %q", domerrors.ErrInvalidBot, req.Bot.Name)
	}

	h, ok := d.registry.Lookup(req.IntentName())
	if !ok {
		return nil, domerrors.NewUnsupportedIntentError(req.IntentName())
	}

	phase, err := PhaseOf(req.InvocationSource)
	if err != nil {
		return nil, err
	}

	ctx = ctxutil.WithIntent(ctx, req.IntentName())
	ctx = ctxutil.WithUserID(ctx, req.CallerID())

	return d.step(ctx, h, phase, req), nil
}
