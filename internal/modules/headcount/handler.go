// Package headcount tells how many people work at the company, with a
// number trivia when one is available.
package headcount

import (
	"context"
	"fmt"

	"github.com/garyellow/winston-hrbot-go/internal/bamboo"
	"github.com/garyellow/winston-hrbot-go/internal/bot"
	"github.com/garyellow/winston-hrbot-go/internal/lex"
	"github.com/garyellow/winston-hrbot-go/internal/logger"
)

// Module constants
const (
	ModuleName = "headcount"
	IntentName = "InfoEmployeesCount"
)

// EmployeeLister returns the employee directory.
type EmployeeLister interface {
	GetEmployees(ctx context.Context) (*bamboo.Directory, error)
}

// TriviaSource returns a fact about a number.
type TriviaSource interface {
	Trivia(ctx context.Context, n int) (string, error)
}

// Handler serves InfoEmployeesCount.
type Handler struct {
	employees EmployeeLister
	trivia    TriviaSource
	logger    *logger.Logger
}

// NewHandler creates a headcount handler.
func NewHandler(employees EmployeeLister, trivia TriviaSource, log *logger.Logger) *Handler {
	return &Handler{
		employees: employees,
		trivia:    trivia,
		logger:    log.WithModule(ModuleName),
	}
}

// Intent returns the intent name.
func (h *Handler) Intent() string {
	return IntentName
}

// Fulfill counts the directory plus one (the bot) and decorates the count
// with trivia. A trivia failure only drops the decoration.
func (h *Handler) Fulfill(ctx context.Context, req *lex.IntentRequest) *lex.Response {
	dir, err := h.employees.GetEmployees(ctx)
	if err != nil {
		return bot.Fail(ctx, h.logger, req, err)
	}
	count := len(dir.Employees) + 1

	fact, err := h.trivia.Trivia(ctx, count)
	if err != nil || fact == "" {
		if err != nil {
			h.logger.WithError(err).WarnContext(ctx, "Trivia lookup failed")
		}
		return lex.FulfillWithSuccess(req, fmt.Sprintf("We are %d souls.", count))
	}
	return lex.FulfillWithSuccess(req, fmt.Sprintf("We are %d souls which is close to %s.", count, fact))
}
