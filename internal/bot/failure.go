package bot

import (
	"context"
	"errors"

	domerrors "github.com/garyellow/winston-hrbot-go/internal/errors"
	"github.com/garyellow/winston-hrbot-go/internal/lex"
	"github.com/garyellow/winston-hrbot-go/internal/logger"
	"github.com/garyellow/winston-hrbot-go/internal/sentry"
)

// Fail closes the turn after a handler error. The user sees
// "Sorry something failed. I got this error: <text>." where text comes from
// errors.GetUserMessage. Collaborator failures are logged at error level and
// reported; an unmatched person is expected and only logged at info.
func Fail(ctx context.Context, log *logger.Logger, req *lex.IntentRequest, err error) *lex.Response {
	l := log.WithError(err).WithField("intent", req.IntentName())

	var collab *domerrors.CollaboratorError
	switch {
	case errors.Is(err, domerrors.ErrPersonNotFound):
		l.InfoContext(ctx, "Caller not found in HR directory")
	case errors.As(err, &collab):
		l.WithField("collaborator", collab.Collaborator).
			WithField("operation", collab.Operation).
			ErrorContext(ctx, "Collaborator call failed")
		sentry.CaptureHandlerError(ctx, err)
	default:
		l.ErrorContext(ctx, "Intent failed")
		sentry.CaptureHandlerError(ctx, err)
	}

	return lex.FulfillWithError(req, domerrors.GetUserMessage(err))
}
