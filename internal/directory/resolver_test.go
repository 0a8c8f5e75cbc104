package directory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garyellow/winston-hrbot-go/internal/bamboo"
	domerrors "github.com/garyellow/winston-hrbot-go/internal/errors"
)

type stubUsers struct {
	emails map[string]string
	err    error
	calls  int
}

func (s *stubUsers) UserEmail(_ context.Context, userID string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.emails[userID], nil
}

type stubEmployees struct {
	dir   *bamboo.Directory
	err   error
	calls int
}

func (s *stubEmployees) GetEmployees(context.Context) (*bamboo.Directory, error) {
	s.calls++
	return s.dir, s.err
}

func TestResolve(t *testing.T) {
	t.Parallel()
	users := &stubUsers{emails: map[string]string{"U1": "ana@example.com"}}
	employees := &stubEmployees{dir: &bamboo.Directory{Employees: []bamboo.Person{
		{ID: "7", FirstName: "Luis", WorkEmail: "luis@example.com"},
		{ID: "9", FirstName: "Ana", WorkEmail: "ana@example.com"},
	}}}

	p, err := NewResolver(users, employees).Resolve(context.Background(), "U1")
	require.NoError(t, err)
	assert.Equal(t, bamboo.FlexString("9"), p.ID)
	assert.Equal(t, "Ana", p.FirstName)
}

func TestResolve_NotFound(t *testing.T) {
	t.Parallel()
	users := &stubUsers{emails: map[string]string{"U1": "ghost@example.com"}}
	employees := &stubEmployees{dir: &bamboo.Directory{}}

	_, err := NewResolver(users, employees).Resolve(context.Background(), "U1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domerrors.ErrPersonNotFound)
	assert.Equal(t, "Sorry, ghost@example.com could not be found", err.Error())
}

func TestResolve_LookupFailureSkipsDirectory(t *testing.T) {
	t.Parallel()
	users := &stubUsers{err: errors.New("slack down")}
	employees := &stubEmployees{}

	_, err := NewResolver(users, employees).Resolve(context.Background(), "U1")
	require.EqualError(t, err, "slack down")
	assert.Equal(t, 0, employees.calls)
}

func TestResolve_DirectoryFailure(t *testing.T) {
	t.Parallel()
	users := &stubUsers{emails: map[string]string{"U1": "ana@example.com"}}
	employees := &stubEmployees{err: errors.New("bamboo down")}

	_, err := NewResolver(users, employees).Resolve(context.Background(), "U1")
	require.EqualError(t, err, "bamboo down")
	assert.Equal(t, 1, users.calls)
}
