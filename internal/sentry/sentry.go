// Package sentry initializes error tracking and reports handler failures.
// Events go to any Sentry-protocol backend; the DSN is assembled from a
// token and an ingesting host (Better Stack Errors style).
package sentry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/garyellow/winston-hrbot-go/internal/ctxutil"
	domerrors "github.com/garyellow/winston-hrbot-go/internal/errors"
)

// Config holds Sentry configuration.
type Config struct {
	// Token is the application token embedded in the DSN.
	Token string

	// Host is the ingesting host (e.g., "errors.betterstack.com").
	Host string

	// Environment identifies the deployment environment (e.g., "production", "staging").
	Environment string

	// Release identifies the application release version.
	Release string

	// SampleRate controls error sampling (0.0-1.0, default 1.0 = 100%).
	SampleRate float64

	// Debug enables Sentry SDK debug logging.
	Debug bool

	// BeforeSend optionally inspects or drops events before they are sent.
	BeforeSend func(*sentry.Event, *sentry.EventHint) *sentry.Event
}

// Initialize sets up the Sentry SDK.
// If Token is empty, Sentry is disabled and nil is returned.
// The DSN is constructed as: https://$TOKEN@$HOST/1
func Initialize(cfg Config) error {
	if cfg.Token == "" {
		return nil // Sentry disabled
	}

	if cfg.Host == "" {
		return fmt.Errorf("sentry host is required when token is provided")
	}

	// The project ID (/1) is required by the SDK but ignored by the backend.
	dsn := fmt.Sprintf("https://%s@%s/1", cfg.Token, cfg.Host)

	sampleRate := cfg.SampleRate
	if sampleRate <= 0 {
		sampleRate = 1.0 // Default to 100% sampling
	}

	return sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      cfg.Environment,
		Release:          cfg.Release,
		SampleRate:       sampleRate,
		Debug:            cfg.Debug,
		AttachStacktrace: true,
		BeforeSend:       cfg.BeforeSend,
	})
}

// Flush waits for buffered events to be sent to the server.
// Returns true if all events were sent within the timeout.
func Flush(timeout time.Duration) bool {
	return sentry.Flush(timeout)
}

// IsEnabled returns true if Sentry is initialized and active.
func IsEnabled() bool {
	return sentry.CurrentHub().Client() != nil
}

// CaptureHandlerError reports an error that a handler turned into a chat
// message. The event is tagged with the intent and caller from ctx and, when
// err carries one, the failing collaborator and operation.
func CaptureHandlerError(ctx context.Context, err error) {
	if err == nil || !IsEnabled() {
		return
	}
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub.WithScope(func(scope *sentry.Scope) {
		if intent := ctxutil.GetIntent(ctx); intent != "" {
			scope.SetTag("intent", intent)
		}
		if userID := ctxutil.GetUserID(ctx); userID != "" {
			scope.SetUser(sentry.User{ID: userID})
		}
		if requestID, ok := ctxutil.GetRequestID(ctx); ok {
			scope.SetTag("request_id", requestID)
		}
		var collab *domerrors.CollaboratorError
		if errors.As(err, &collab) {
			scope.SetTag("collaborator", collab.Collaborator)
			scope.SetTag("operation", collab.Operation)
		}
		hub.CaptureException(err)
	})
}
