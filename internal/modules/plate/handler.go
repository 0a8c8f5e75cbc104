// Package plate updates a caller's registered license plate with the
// parking bot.
package plate

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/garyellow/winston-hrbot-go/internal/bot"
	domerrors "github.com/garyellow/winston-hrbot-go/internal/errors"
	"github.com/garyellow/winston-hrbot-go/internal/lex"
	"github.com/garyellow/winston-hrbot-go/internal/logger"
)

// Module constants
const (
	ModuleName        = "plate"
	IntentName        = "UpdateLicensePlateNumber"
	SlotPreviousPlate = "previousPlate"
	SlotNewPlate      = "newPlate"
)

const msgUserLookupFailed = "Failed to retrieve user's info from Slack"

// UserNamer returns the messaging handle of a user.
type UserNamer interface {
	UserName(ctx context.Context, userID string) (string, error)
}

// PlateUpdater replaces a registered plate and returns the stored value.
type PlateUpdater interface {
	UpdateExistingPlate(ctx context.Context, previousPlate, newPlate, username string) (string, error)
}

// Handler serves UpdateLicensePlateNumber.
type Handler struct {
	users   UserNamer
	parking PlateUpdater
	logger  *logger.Logger
}

// NewHandler creates a plate handler.
func NewHandler(users UserNamer, parking PlateUpdater, log *logger.Logger) *Handler {
	return &Handler{
		users:   users,
		parking: parking,
		logger:  log.WithModule(ModuleName),
	}
}

// Intent returns the intent name.
func (h *Handler) Intent() string {
	return IntentName
}

// Fulfill normalises both plates to upper case, looks up the caller's
// handle and asks the parking bot to swap the plates.
func (h *Handler) Fulfill(ctx context.Context, req *lex.IntentRequest) *lex.Response {
	previous := strings.TrimSpace(req.Slot(SlotPreviousPlate))
	next := strings.TrimSpace(req.Slot(SlotNewPlate))
	if previous == "" || next == "" {
		err := domerrors.NewWrapper(ModuleName, "read_slots").Wrapf(domerrors.ErrMissingSlot,
			"Something failed with arguments previousPlate: %s or newPlate: %s", previous, next)
		return bot.Fail(ctx, h.logger, req, err)
	}

	username, err := h.users.UserName(ctx, req.CallerID())
	if err != nil {
		return bot.Fail(ctx, h.logger, req, domerrors.NewWrapper(ModuleName, "user_lookup").Wrap(err, msgUserLookupFailed))
	}

	// A Caser holds state, so each call gets its own.
	upper := cases.Upper(language.Und)
	previous, next = upper.String(previous), upper.String(next)

	stored, err := h.parking.UpdateExistingPlate(ctx, previous, next, username)
	if err != nil {
		return bot.Fail(ctx, h.logger, req, err)
	}
	if stored == "" {
		stored = next
	}

	return lex.FulfillWithSuccess(req, fmt.Sprintf("Your plate number was updated to %s.", stored))
}
