// Package balance answers how many PTO days the caller has left.
package balance

import (
	"context"
	"fmt"
	"time"

	"github.com/garyellow/winston-hrbot-go/internal/bamboo"
	"github.com/garyellow/winston-hrbot-go/internal/bot"
	"github.com/garyellow/winston-hrbot-go/internal/lex"
	"github.com/garyellow/winston-hrbot-go/internal/logger"
)

// Module constants
const (
	ModuleName = "balance"
	IntentName = "TimeOffPTOBalance"

	// ptoName is the calculator entry the bot reports on.
	ptoName = "PTO"
)

// Resolver maps a caller id to an HR record.
type Resolver interface {
	Resolve(ctx context.Context, callerID string) (bamboo.Person, error)
}

// BalanceCalculator returns an employee's time-off balances as of end.
type BalanceCalculator interface {
	CalculateTimeOffBalance(ctx context.Context, employeeID string, end time.Time) ([]bamboo.TimeOffBalance, error)
}

// Handler serves TimeOffPTOBalance.
type Handler struct {
	resolver   Resolver
	calculator BalanceCalculator
	logger     *logger.Logger
	now        func() time.Time
}

// NewHandler creates a balance handler. now defaults to time.Now.
func NewHandler(resolver Resolver, calculator BalanceCalculator, log *logger.Logger, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{
		resolver:   resolver,
		calculator: calculator,
		logger:     log.WithModule(ModuleName),
		now:        now,
	}
}

// Intent returns the intent name.
func (h *Handler) Intent() string {
	return IntentName
}

// Fulfill resolves the caller and reports the PTO entry of today's balance.
func (h *Handler) Fulfill(ctx context.Context, req *lex.IntentRequest) *lex.Response {
	person, err := h.resolver.Resolve(ctx, req.CallerID())
	if err != nil {
		return bot.Fail(ctx, h.logger, req, err)
	}

	balances, err := h.calculator.CalculateTimeOffBalance(ctx, person.ID.String(), h.now())
	if err != nil {
		return bot.Fail(ctx, h.logger, req, err)
	}

	for _, b := range balances {
		if b.Name == ptoName {
			return lex.FulfillWithSuccess(req,
				fmt.Sprintf("%s you have %s %s left", person.DisplayName, b.Balance, b.Units))
		}
	}

	h.logger.WithField("employee_id", person.ID.String()).
		WarnContext(ctx, "No PTO entry in time off balance")
	return lex.FulfillWithSuccess(req,
		fmt.Sprintf("Sorry, could not find PTO information for %s", person.DisplayName))
}
