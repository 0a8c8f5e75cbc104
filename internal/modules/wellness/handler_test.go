package wellness

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garyellow/winston-hrbot-go/internal/calendar"
	"github.com/garyellow/winston-hrbot-go/internal/content"
	domerrors "github.com/garyellow/winston-hrbot-go/internal/errors"
	"github.com/garyellow/winston-hrbot-go/internal/lex"
	"github.com/garyellow/winston-hrbot-go/internal/logger"
	"github.com/garyellow/winston-hrbot-go/internal/timeutil"
)

const eventsURL = "https://portal.example.com/events/"

type fakeEvents struct {
	events     []calendar.Event
	err        error
	called     bool
	gotTimeMin time.Time
	gotMax     int64
}

func (f *fakeEvents) UpcomingEvents(_ context.Context, timeMin time.Time, maxResults int64) ([]calendar.Event, error) {
	f.called = true
	f.gotTimeMin = timeMin
	f.gotMax = maxResults
	return f.events, f.err
}

// Monday, 08:00 in UTC-6.
var fixedNow = time.Date(2025, 6, 9, 8, 0, 0, 0, timeutil.CostaRicaLocation())

func newHandler(events *fakeEvents) *Handler {
	return NewHandler(Config{
		Activities: content.MustDefault(),
		Events:     events,
		EventsURL:  eventsURL,
		Logger:     logger.NewWithWriter("debug", io.Discard),
		Now:        func() time.Time { return fixedNow },
	})
}

func newRequest(activity string) *lex.IntentRequest {
	slots := lex.Slots{SlotActivity: nil}
	if activity != "" {
		slots.Set(SlotActivity, activity)
	}
	return &lex.IntentRequest{
		CurrentIntent:    lex.Intent{Name: IntentName, Slots: slots},
		InvocationSource: lex.FulfillmentCodeHook,
	}
}

func message(t *testing.T, resp *lex.Response) string {
	t.Helper()
	require.Equal(t, lex.ActionClose, resp.DialogAction.Type)
	return resp.DialogAction.Message.Content
}

func TestHandler_Fulfill_UnknownActivity(t *testing.T) {
	for _, activity := range []string{"", "Chess", "yoga"} {
		t.Run(activity, func(t *testing.T) {
			events := &fakeEvents{}
			resp := newHandler(events).Fulfill(context.Background(), newRequest(activity))

			assert.Equal(t, "Sorry I didn't get the intended activity name", message(t, resp))
			assert.False(t, events.called)
		})
	}
}

func TestHandler_Fulfill_NextEvent(t *testing.T) {
	// Tuesday 17:30 UTC-6, stored in UTC.
	tuesday := time.Date(2025, 6, 10, 23, 30, 0, 0, time.UTC)
	events := &fakeEvents{events: []calendar.Event{
		{Summary: "Zumba", Start: fixedNow.Add(2 * time.Hour)},
		{Summary: "Yoga", Description: "Bring your mat", Start: tuesday},
		{Summary: "Yoga", Start: tuesday.AddDate(0, 0, 7)},
	}}

	resp := newHandler(events).Fulfill(context.Background(), newRequest("Yoga"))

	want := "Next Yoga activity will be Tomorrow at 5:30 PM\n" +
		"Bring your mat. To stay up to date with the coming activities visit the company's portal.\n" +
		"See events:\n" + eventsURL
	assert.Equal(t, want, message(t, resp))
	assert.True(t, events.gotTimeMin.Equal(fixedNow))
	assert.Equal(t, int64(10), events.gotMax)
}

func TestHandler_Fulfill_NoDescription(t *testing.T) {
	events := &fakeEvents{events: []calendar.Event{
		{Summary: "Pilates", Start: fixedNow.Add(3 * time.Hour)},
	}}

	resp := newHandler(events).Fulfill(context.Background(), newRequest("Pilates"))

	want := "Next Pilates activity will be Today at 11:00 AM\n" +
		"To stay up to date with the coming activities visit the company's portal.\n" +
		"See events:\n" + eventsURL
	assert.Equal(t, want, message(t, resp))
}

func TestHandler_Fulfill_NoMatch(t *testing.T) {
	events := &fakeEvents{events: []calendar.Event{{Summary: "Zumba", Start: fixedNow}}}

	resp := newHandler(events).Fulfill(context.Background(), newRequest("Yoga"))
	assert.Equal(t, "No events found", message(t, resp))
}

func TestHandler_Fulfill_CalendarFailure(t *testing.T) {
	events := &fakeEvents{err: domerrors.NewCollaboratorError("calendar", "events.list", errors.New("googleapi: Error 403: forbidden"))}

	resp := newHandler(events).Fulfill(context.Background(), newRequest("Yoga"))
	assert.Equal(t, "Sorry something failed. I got this error: googleapi: Error 403: forbidden.", message(t, resp))
}
