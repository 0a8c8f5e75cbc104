// Package slackapi looks up the messaging-platform user behind a caller id.
package slackapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/slack-go/slack"

	"github.com/garyellow/winston-hrbot-go/internal/apiclient"
	domerrors "github.com/garyellow/winston-hrbot-go/internal/errors"
	"github.com/garyellow/winston-hrbot-go/internal/metrics"
)

// ServiceName labels this collaborator in metrics and errors.
const ServiceName = "slack"

// Config configures the Slack client.
type Config struct {
	Token   string
	APIURL  string // Optional override; must end with "/"
	Timeout time.Duration
	Metrics *metrics.Metrics
}

// Client wraps the Slack Web API user endpoints.
type Client struct {
	api     *slack.Client
	metrics *metrics.Metrics
}

// New creates a Slack client.
func New(cfg Config) *Client {
	opts := []slack.Option{
		slack.OptionHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	}
	if cfg.APIURL != "" {
		apiURL := cfg.APIURL
		if !strings.HasSuffix(apiURL, "/") {
			apiURL += "/"
		}
		opts = append(opts, slack.OptionAPIURL(apiURL))
	}
	return &Client{api: slack.New(cfg.Token, opts...), metrics: cfg.Metrics}
}

// UserEmail returns the profile email of userID.
func (c *Client) UserEmail(ctx context.Context, userID string) (string, error) {
	start := time.Now()
	profile, err := c.api.GetUserProfileContext(ctx, &slack.GetUserProfileParameters{UserID: userID})
	c.record(err, start)
	if err != nil {
		return "", domerrors.NewCollaboratorError(ServiceName, "users.profile.get", err)
	}
	return profile.Email, nil
}

// UserName returns the handle (not the display name) of userID.
func (c *Client) UserName(ctx context.Context, userID string) (string, error) {
	start := time.Now()
	user, err := c.api.GetUserInfoContext(ctx, userID)
	c.record(err, start)
	if err != nil {
		return "", domerrors.NewCollaboratorError(ServiceName, "users.info", err)
	}
	return user.Name, nil
}

func (c *Client) record(err error, start time.Time) {
	if c.metrics != nil {
		c.metrics.RecordCollaborator(ServiceName, apiclient.Status(err), time.Since(start).Seconds())
	}
}
