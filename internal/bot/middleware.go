package bot

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/garyellow/winston-hrbot-go/internal/lex"
	"github.com/garyellow/winston-hrbot-go/internal/logger"
	"github.com/garyellow/winston-hrbot-go/internal/metrics"
	"github.com/garyellow/winston-hrbot-go/internal/sentry"
)

// Step runs one handler for one turn.
type Step func(ctx context.Context, h Handler, p Phase, req *lex.IntentRequest) *lex.Response

// Middleware wraps a Step.
type Middleware func(next Step) Step

// Chain wraps final with mws; the first middleware is the outermost.
func Chain(final Step, mws ...Middleware) Step {
	step := final
	for i := len(mws) - 1; i >= 0; i-- {
		step = mws[i](step)
	}
	return step
}

// LoggingMiddleware logs handler execution with timing and result info.
func LoggingMiddleware(log *logger.Logger) Middleware {
	return func(next Step) Step {
		return func(ctx context.Context, h Handler, p Phase, req *lex.IntentRequest) *lex.Response {
			start := time.Now()
			phase := EffectivePhase(h, p)

			log.WithField("intent", h.Intent()).
				WithField("phase", phase.String()).
				DebugContext(ctx, "Handler started")

			resp := next(ctx, h, p, req)

			log.WithField("intent", h.Intent()).
				WithField("phase", phase.String()).
				WithField("action", string(resp.DialogAction.Type)).
				WithField("duration_ms", time.Since(start).Milliseconds()).
				InfoContext(ctx, "Intent handled")

			return resp
		}
	}
}

// MetricsMiddleware records handler execution metrics.
func MetricsMiddleware(m *metrics.Metrics) Middleware {
	return func(next Step) Step {
		return func(ctx context.Context, h Handler, p Phase, req *lex.IntentRequest) *lex.Response {
			start := time.Now()

			resp := next(ctx, h, p, req)

			if m != nil {
				m.RecordIntent(h.Intent(), EffectivePhase(h, p).String(), string(resp.DialogAction.Type), time.Since(start).Seconds())
			}
			return resp
		}
	}
}

// RecoveryMiddleware recovers from panics in handlers and closes the turn
// with an error message instead of dropping the request.
func RecoveryMiddleware(log *logger.Logger) Middleware {
	return func(next Step) Step {
		return func(ctx context.Context, h Handler, p Phase, req *lex.IntentRequest) (resp *lex.Response) {
			defer func() {
				if r := recover(); r != nil {
					log.WithField("intent", h.Intent()).
						WithField("panic", r).
						WithField("stack", string(debug.Stack())).
						ErrorContext(ctx, "Handler panicked")
					sentry.CaptureHandlerError(ctx, fmt.Errorf("handler %s panicked: %v", h.Intent(), r))
					resp = lex.FulfillWithError(req, "internal error")
				}
			}()

			return next(ctx, h, p, req)
		}
	}
}
