// Package wellness tells when a wellness activity happens next.
package wellness

import (
	"context"
	"time"

	"github.com/garyellow/winston-hrbot-go/internal/bot"
	"github.com/garyellow/winston-hrbot-go/internal/calendar"
	"github.com/garyellow/winston-hrbot-go/internal/lex"
	"github.com/garyellow/winston-hrbot-go/internal/logger"
	"github.com/garyellow/winston-hrbot-go/internal/timeutil"
)

// Module constants
const (
	ModuleName   = "wellness"
	IntentName   = "InfoWellnessActivity"
	SlotActivity = "wellness"

	// maxEvents bounds how far ahead the calendar is searched.
	maxEvents = 10
)

const (
	msgUnknownActivity = "Sorry I didn't get the intended activity name"
	msgNoEvents        = "No events found"
	msgStayUpToDate    = "To stay up to date with the coming activities visit the company's portal."
)

// Activities reports whether a name is a known activity.
type Activities interface {
	IsWellnessActivity(name string) bool
}

// EventLister returns upcoming calendar events ordered by start time.
type EventLister interface {
	UpcomingEvents(ctx context.Context, timeMin time.Time, maxResults int64) ([]calendar.Event, error)
}

// Config holds the handler's dependencies.
type Config struct {
	Activities Activities
	Events     EventLister
	EventsURL  string // Linked at the end of every answer
	Logger     *logger.Logger
	Location   *time.Location   // Zone the event time is phrased in; defaults to UTC-6
	Now        func() time.Time // Defaults to time.Now
}

// Handler serves InfoWellnessActivity.
type Handler struct {
	activities Activities
	events     EventLister
	eventsURL  string
	logger     *logger.Logger
	loc        *time.Location
	now        func() time.Time
}

// NewHandler creates a wellness handler.
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
		activities: cfg.Activities,
		events:     cfg.Events,
		eventsURL:  cfg.EventsURL,
		logger:     cfg.Logger.WithModule(ModuleName),
		loc:        loc,
		now:        now,
	}
}

// Intent returns the intent name.
func (h *Handler) Intent() string {
	return IntentName
}

// Fulfill finds the next occurrence of the requested activity among the
// next few calendar events.
func (h *Handler) Fulfill(ctx context.Context, req *lex.IntentRequest) *lex.Response {
	activity := req.Slot(SlotActivity)
	if activity == "" || !h.activities.IsWellnessActivity(activity) {
		return lex.FulfillWithSuccess(req, msgUnknownActivity)
	}

	now := h.now()
	events, err := h.events.UpcomingEvents(ctx, now, maxEvents)
	if err != nil {
		return bot.Fail(ctx, h.logger, req, err)
	}

	for _, ev := range events {
		if ev.Summary == activity {
			return lex.FulfillWithSuccess(req, h.describe(activity, ev, now))
		}
	}
	return lex.FulfillWithSuccess(req, msgNoEvents)
}

func (h *Handler) describe(activity string, ev calendar.Event, now time.Time) string {
	extra := msgStayUpToDate
	if ev.Description != "" {
		extra = ev.Description + ". " + msgStayUpToDate
	}
	return "Next " + activity + " activity will be " + timeutil.CalendarTime(ev.Start, now, h.loc) +
		"\n" + extra +
		"\nSee events:\n" + h.eventsURL
}
