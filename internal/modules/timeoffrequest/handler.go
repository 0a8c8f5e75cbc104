// Package timeoffrequest collects and submits time-off requests.
//
// While the host is still collecting slots, Elicit validates what it has and
// either re-prompts for the first bad slot or delegates back with a
// confirmation prompt in the session. On fulfillment the caller is resolved,
// company holidays in the range are fetched, business days are counted and the
// request is submitted for approval. The three calls run strictly in order.
package timeoffrequest

import (
	"context"
	"fmt"
	"maps"
	"time"

	"github.com/garyellow/winston-hrbot-go/internal/bamboo"
	"github.com/garyellow/winston-hrbot-go/internal/bot"
	domerrors "github.com/garyellow/winston-hrbot-go/internal/errors"
	"github.com/garyellow/winston-hrbot-go/internal/lex"
	"github.com/garyellow/winston-hrbot-go/internal/logger"
	"github.com/garyellow/winston-hrbot-go/internal/timeoff"
	"github.com/garyellow/winston-hrbot-go/internal/timeutil"
)

// Module constants
const (
	ModuleName = "timeoffrequest"
	IntentName = "CreatePTORequest"
)

// Resolver maps a caller id to an HR record.
type Resolver interface {
	Resolve(ctx context.Context, callerID string) (bamboo.Person, error)
}

// TimeOffService is the part of the HR API used for submissions.
type TimeOffService interface {
	WhosOut(ctx context.Context, start, end string) ([]bamboo.WhosOutEntry, error)
	SendTimeOffRequest(ctx context.Context, employeeID, start, end string, typeID, amount int) (*bamboo.TimeOffRequestResult, error)
}

// Config holds the handler's dependencies.
type Config struct {
	Resolver Resolver
	TimeOff  TimeOffService
	Logger   *logger.Logger
	Location *time.Location   // Decides what "today" is; defaults to UTC-6
	Now      func() time.Time // Defaults to time.Now
}

// Handler serves CreatePTORequest.
type Handler struct {
	resolver Resolver
	timeOff  TimeOffService
	logger   *logger.Logger
	loc      *time.Location
	now      func() time.Time
}

// NewHandler creates a time-off request handler.
func NewHandler(cfg Config) *Handler {
	loc := cfg.Location
	if loc == nil {
		loc = timeutil.CostaRicaLocation()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Handler{
		resolver: cfg.Resolver,
		timeOff:  cfg.TimeOff,
		logger:   cfg.Logger.WithModule(ModuleName),
		loc:      loc,
		now:      now,
	}
}

// Intent returns the intent name.
func (h *Handler) Intent() string {
	return IntentName
}

// Elicit validates the collected slots. The first violation clears its slot
// and re-prompts for it. Otherwise the host is told to carry on, with a
// confirmation prompt stored in the session once both dates are known.
func (h *Handler) Elicit(ctx context.Context, req *lex.IntentRequest) *lex.Response {
	slots := req.CurrentIntent.Slots
	typeOfTimeOff := slots.Get(timeoff.SlotTypeOfTimeOff)
	startDate := slots.Get(timeoff.SlotStartDate)
	endDate := slots.Get(timeoff.SlotEndDate)

	result := timeoff.Validate(typeOfTimeOff, startDate, endDate, h.now().In(h.loc))
	if !result.IsValid {
		h.logger.WithField("slot", result.ViolatedSlot).DebugContext(ctx, "Slot rejected")
		out := slots.Clone()
		out.Clear(result.ViolatedSlot)
		return lex.ElicitSlot(req.SessionAttributes, req.IntentName(), out, result.ViolatedSlot, result.Message)
	}

	session := req.SessionAttributes
	if startDate != "" && endDate != "" {
		// Both dates passed validation, so they parse.
		start, _ := timeutil.ParseDate(startDate, h.loc)
		end, _ := timeutil.ParseDate(endDate, h.loc)

		session = maps.Clone(session)
		if session == nil {
			session = make(map[string]string, 1)
		}
		session[timeoff.SessionConfirmationPrompt] = timeoff.ConfirmationPrompt(typeOfTimeOff, start, end)
	}
	return lex.Delegate(session, slots)
}

// Fulfill submits the request and tells the caller who will approve it.
func (h *Handler) Fulfill(ctx context.Context, req *lex.IntentRequest) *lex.Response {
	typeOfTimeOff := req.Slot(timeoff.SlotTypeOfTimeOff)
	startDate := req.Slot(timeoff.SlotStartDate)
	endDate := req.Slot(timeoff.SlotEndDate)

	if startDate == "" || endDate == "" {
		return bot.Fail(ctx, h.logger, req,
			fmt.Errorf("%w: %s and %s are needed", domerrors.ErrMissingSlot, timeoff.SlotStartDate, timeoff.SlotEndDate))
	}
	typeID, ok := timeoff.TypeID(typeOfTimeOff)
	if !ok {
		return bot.Fail(ctx, h.logger, req, fmt.Errorf("unknown time off type %q", typeOfTimeOff))
	}
	start, err := timeutil.ParseDate(startDate, h.loc)
	if err != nil {
		return bot.Fail(ctx, h.logger, req, fmt.Errorf("invalid start date %q", startDate))
	}
	end, err := timeutil.ParseDate(endDate, h.loc)
	if err != nil {
		return bot.Fail(ctx, h.logger, req, fmt.Errorf("invalid end date %q", endDate))
	}

	person, err := h.resolver.Resolve(ctx, req.CallerID())
	if err != nil {
		return bot.Fail(ctx, h.logger, req, err)
	}

	entries, err := h.timeOff.WhosOut(ctx, startDate, endDate)
	if err != nil {
		return bot.Fail(ctx, h.logger, req, err)
	}
	amount := timeoff.BusinessDays(start, end, bamboo.HolidayDates(entries, h.loc))

	result, err := h.timeOff.SendTimeOffRequest(ctx, person.ID.String(), startDate, endDate, typeID, amount)
	if err != nil {
		return bot.Fail(ctx, h.logger, req, err)
	}

	h.logger.WithFields(map[string]any{
		"employee_id": person.ID.String(),
		"type_id":     typeID,
		"amount":      amount,
	}).InfoContext(ctx, "Time off request submitted")

	return lex.FulfillWithSuccess(req, SubmittedMessage(person.FirstName, result.FirstApprover()))
}

// SubmittedMessage is the reply after a successful submission. The approver
// clause is dropped when approver is empty.
func SubmittedMessage(firstName, approver string) string {
	if approver == "" {
		return fmt.Sprintf("OK %s, I have sent your request. Please wait for approval.", firstName)
	}
	return fmt.Sprintf("OK %s, I have sent your request. Please wait for approval from %s.", firstName, approver)
}
