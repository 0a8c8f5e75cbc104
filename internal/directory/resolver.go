// Package directory resolves a chat caller to their HR record by matching
// the messaging profile email against the employee directory.
package directory

import (
	"context"

	"github.com/garyellow/winston-hrbot-go/internal/bamboo"
	domerrors "github.com/garyellow/winston-hrbot-go/internal/errors"
)

// EmailLookup returns the profile email of a messaging user.
type EmailLookup interface {
	UserEmail(ctx context.Context, userID string) (string, error)
}

// EmployeeLister returns the employee directory.
type EmployeeLister interface {
	GetEmployees(ctx context.Context) (*bamboo.Directory, error)
}

// Resolver maps caller ids to employees.
type Resolver struct {
	users     EmailLookup
	employees EmployeeLister
}

// NewResolver creates a Resolver.
func NewResolver(users EmailLookup, employees EmployeeLister) *Resolver {
	return &Resolver{users: users, employees: employees}
}

// Resolve looks up the caller's email, then the employee with that work
// email. The two calls run in sequence. A missing match returns
// *errors.PersonNotFoundError naming the email.
func (r *Resolver) Resolve(ctx context.Context, callerID string) (bamboo.Person, error) {
	email, err := r.users.UserEmail(ctx, callerID)
	if err != nil {
		return bamboo.Person{}, err
	}

	dir, err := r.employees.GetEmployees(ctx)
	if err != nil {
		return bamboo.Person{}, err
	}

	person, ok := dir.FindByEmail(email)
	if !ok {
		return bamboo.Person{}, domerrors.NewPersonNotFoundError(email)
	}
	return person, nil
}
