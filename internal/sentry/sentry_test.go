package sentry

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garyellow/winston-hrbot-go/internal/ctxutil"
	domerrors "github.com/garyellow/winston-hrbot-go/internal/errors"
)

// Sentry keeps a global hub, so these tests do not run in parallel.

type recorder struct {
	mu     sync.Mutex
	events []*sentry.Event
}

func (r *recorder) beforeSend(e *sentry.Event, _ *sentry.EventHint) *sentry.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil // never leave the process
}

func (r *recorder) all() []*sentry.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*sentry.Event(nil), r.events...)
}

func initRecorder(t *testing.T) *recorder {
	t.Helper()
	rec := &recorder{}
	require.NoError(t, Initialize(Config{
		Token:       "test-token",
		Host:        "errors.example.com",
		Environment: "test",
		BeforeSend:  rec.beforeSend,
	}))
	t.Cleanup(func() {
		Flush(time.Second)
		sentry.CurrentHub().BindClient(nil)
	})
	return rec
}

func TestInitialize_EmptyToken(t *testing.T) {
	sentry.CurrentHub().BindClient(nil)

	require.NoError(t, Initialize(Config{Token: ""}))
	assert.False(t, IsEnabled())
}

func TestInitialize_MissingHost(t *testing.T) {
	err := Initialize(Config{Token: "test-token", Host: ""})
	assert.Error(t, err)
}

func TestInitialize_ValidConfig(t *testing.T) {
	initRecorder(t)
	assert.True(t, IsEnabled())
}

func TestCaptureHandlerError_Tags(t *testing.T) {
	rec := initRecorder(t)

	ctx := ctxutil.WithIntent(context.Background(), "CreatePTORequest")
	ctx = ctxutil.WithUserID(ctx, "U123")
	ctx = ctxutil.WithRequestID(ctx, "req-1")
	err := domerrors.NewCollaboratorError("bamboo", "whos_out", errors.New("connection reset"))

	CaptureHandlerError(ctx, err)

	events := rec.all()
	require.Len(t, events, 1)
	ev := events[0]
	assert.Equal(t, "CreatePTORequest", ev.Tags["intent"])
	assert.Equal(t, "bamboo", ev.Tags["collaborator"])
	assert.Equal(t, "whos_out", ev.Tags["operation"])
	assert.Equal(t, "req-1", ev.Tags["request_id"])
	assert.Equal(t, "U123", ev.User.ID)
}

func TestCaptureHandlerError_NilAndDisabled(t *testing.T) {
	rec := initRecorder(t)
	CaptureHandlerError(context.Background(), nil)
	assert.Empty(t, rec.all())

	sentry.CurrentHub().BindClient(nil)
	assert.NotPanics(t, func() {
		CaptureHandlerError(context.Background(), errors.New("ignored"))
	})
}

func TestFlush(t *testing.T) {
	initRecorder(t)
	// Nothing is queued since BeforeSend drops every event.
	assert.True(t, Flush(100*time.Millisecond))
}
