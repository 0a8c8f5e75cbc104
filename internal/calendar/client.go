// Package calendar lists upcoming events from the wellness calendar.
package calendar

import (
	"context"
	"fmt"
	"os"
	"time"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/garyellow/winston-hrbot-go/internal/apiclient"
	domerrors "github.com/garyellow/winston-hrbot-go/internal/errors"
	"github.com/garyellow/winston-hrbot-go/internal/metrics"
)

// ServiceName labels this collaborator in metrics and errors.
const ServiceName = "calendar"

// Event is the part of a calendar event the bot talks about.
type Event struct {
	Summary     string
	Description string
	Start       time.Time
	AllDay      bool
}

// Config configures the calendar client.
type Config struct {
	CalendarID      string
	CredentialsFile string // Service account JSON; empty uses application default credentials
	Timeout         time.Duration
	Metrics         *metrics.Metrics

	// ClientOptions are appended after the credential options, e.g. an
	// endpoint override in tests.
	ClientOptions []option.ClientOption
}

// Client reads events from one calendar.
type Client struct {
	svc        *gcal.Service
	calendarID string
	timeout    time.Duration
	metrics    *metrics.Metrics
}

// New creates a calendar client with read-only scope.
func New(ctx context.Context, cfg Config) (*Client, error) {
	opts := []option.ClientOption{
		option.WithScopes(gcal.CalendarReadonlyScope),
	}
	if cfg.CredentialsFile != "" {
		data, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("calendar: read credentials: %w", err)
		}
		opts = append(opts, option.WithCredentialsJSON(data))
	}
	opts = append(opts, cfg.ClientOptions...)

	svc, err := gcal.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("calendar: create service: %w", err)
	}
	return &Client{svc: svc, calendarID: cfg.CalendarID, timeout: cfg.Timeout, metrics: cfg.Metrics}, nil
}

// UpcomingEvents lists up to maxResults single events starting at or after
// timeMin, ordered by start time.
func (c *Client) UpcomingEvents(ctx context.Context, timeMin time.Time, maxResults int64) ([]Event, error) {
	// The authenticated transport is built by the library, so the timeout
	// rides on the context instead of an http.Client.
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := c.svc.Events.List(c.calendarID).
		TimeMin(timeMin.Format(time.RFC3339)).
		MaxResults(maxResults).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if c.metrics != nil {
		c.metrics.RecordCollaborator(ServiceName, apiclient.Status(err), time.Since(start).Seconds())
	}
	if err != nil {
		return nil, domerrors.NewCollaboratorError(ServiceName, "events.list", err)
	}

	events := make([]Event, 0, len(resp.Items))
	for _, item := range resp.Items {
		events = append(events, toEvent(item))
	}
	return events, nil
}

func toEvent(item *gcal.Event) Event {
	ev := Event{Summary: item.Summary, Description: item.Description}
	if item.Start == nil {
		return ev
	}
	if item.Start.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, item.Start.DateTime); err == nil {
			ev.Start = t
		}
		return ev
	}
	if item.Start.Date != "" {
		if t, err := time.Parse("2006-01-02", item.Start.Date); err == nil {
			ev.Start = t
			ev.AllDay = true
		}
	}
	return ev
}
