package app

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domerrors "github.com/garyellow/winston-hrbot-go/internal/errors"
	"github.com/garyellow/winston-hrbot-go/internal/lex"
)

// handleLex decodes one intent request, dispatches it and writes the dialog
// action back. Requests the dispatcher refuses get an error status and no
// dialog action.
func (a *Application) handleLex(c *gin.Context) {
	var req lex.IntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		a.reject(c, http.StatusBadRequest, "bad_request", "invalid intent request: "+err.Error())
		return
	}

	resp, err := a.dispatcher.Dispatch(c.Request.Context(), &req)
	if err != nil {
		status, kind := classifyDispatchError(err)
		a.logger.WithError(err).
			WithField("intent", req.IntentName()).
			WithField("bot", req.Bot.Name).
			WarnContext(c.Request.Context(), "Intent request refused")
		a.reject(c, status, kind, err.Error())
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (a *Application) reject(c *gin.Context, status int, kind, msg string) {
	if a.metrics != nil {
		a.metrics.RecordHTTPError(kind)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// classifyDispatchError maps a dispatcher refusal to an HTTP status and a
// metric label.
func classifyDispatchError(err error) (int, string) {
	switch {
	case errors.Is(err, domerrors.ErrInvalidBot):
		return http.StatusForbidden, "invalid_bot"
	case errors.Is(err, domerrors.ErrUnsupportedIntent):
		return http.StatusBadRequest, "unsupported_intent"
	case errors.Is(err, domerrors.ErrInvalidInvocationSource):
		return http.StatusBadRequest, "invalid_invocation_source"
	default:
		return http.StatusInternalServerError, "internal"
	}
}
