package headcount

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garyellow/winston-hrbot-go/internal/bamboo"
	domerrors "github.com/garyellow/winston-hrbot-go/internal/errors"
	"github.com/garyellow/winston-hrbot-go/internal/lex"
	"github.com/garyellow/winston-hrbot-go/internal/logger"
)

type fakeDirectory struct {
	dir *bamboo.Directory
	err error
}

func (f *fakeDirectory) GetEmployees(context.Context) (*bamboo.Directory, error) {
	return f.dir, f.err
}

type fakeTrivia struct {
	fact   string
	err    error
	called bool
	gotN   int
}

func (f *fakeTrivia) Trivia(_ context.Context, n int) (string, error) {
	f.called = true
	f.gotN = n
	return f.fact, f.err
}

func employees(n int) *bamboo.Directory {
	dir := &bamboo.Directory{}
	for range n {
		dir.Employees = append(dir.Employees, bamboo.Person{})
	}
	return dir
}

func newRequest() *lex.IntentRequest {
	return &lex.IntentRequest{
		CurrentIntent:    lex.Intent{Name: IntentName},
		InvocationSource: lex.FulfillmentCodeHook,
	}
}

func TestHandler_Fulfill(t *testing.T) {
	tests := []struct {
		name       string
		dir        *fakeDirectory
		trivia     *fakeTrivia
		want       string
		wantTrivia bool
	}{
		{
			name:       "with trivia",
			dir:        &fakeDirectory{dir: employees(41)},
			trivia:     &fakeTrivia{fact: "the number of spots on a pair of dice"},
			want:       "We are 42 souls which is close to the number of spots on a pair of dice.",
			wantTrivia: true,
		},
		{
			name:       "trivia failure degrades",
			dir:        &fakeDirectory{dir: employees(41)},
			trivia:     &fakeTrivia{err: errors.New("numbers request failed with status code 503")},
			want:       "We are 42 souls.",
			wantTrivia: true,
		},
		{
			name:   "directory failure",
			dir:    &fakeDirectory{err: domerrors.NewCollaboratorError("bamboo", "employees_directory", errors.New("bamboo request failed with status code 401"))},
			trivia: &fakeTrivia{},
			want:   "Sorry something failed. I got this error: bamboo request failed with status code 401.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(tt.dir, tt.trivia, logger.NewWithWriter("debug", io.Discard))
			resp := h.Fulfill(context.Background(), newRequest())

			require.Equal(t, lex.ActionClose, resp.DialogAction.Type)
			assert.Equal(t, tt.want, resp.DialogAction.Message.Content)
			assert.Equal(t, tt.wantTrivia, tt.trivia.called)
			if tt.wantTrivia {
				assert.Equal(t, 42, tt.trivia.gotN)
			}
		})
	}
}
