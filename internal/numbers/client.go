// Package numbers fetches number trivia.
package numbers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/garyellow/winston-hrbot-go/internal/apiclient"
	domerrors "github.com/garyellow/winston-hrbot-go/internal/errors"
	"github.com/garyellow/winston-hrbot-go/internal/metrics"
)

// ServiceName labels this collaborator in metrics and errors.
const ServiceName = "numbers"

// Config configures the trivia client.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Metrics    *metrics.Metrics
}

// Client talks to the numbers trivia API.
type Client struct {
	api *apiclient.Client
}

// New creates a trivia client.
func New(cfg Config) *Client {
	return &Client{api: apiclient.New(apiclient.Config{
		Service: ServiceName,
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Headers: map[string]string{
			"Accept":          "text/plain",
			"Accept-Language": "en-US,en;q=0.8",
		},
		HTTPClient: cfg.HTTPClient,
		Metrics:    cfg.Metrics,
	})}
}

// Trivia returns a sentence fragment about n, e.g. "the number of
// checkers each side has at the start of a backgammon game". When n has no
// trivia the API falls back to the nearest lower number.
func (c *Client) Trivia(ctx context.Context, n int) (string, error) {
	text, err := c.api.GetText(ctx, fmt.Sprintf("/%d/trivia?notfound=floor&fragment", n))
	if err != nil {
		return "", domerrors.NewCollaboratorError(ServiceName, "trivia", err)
	}
	return strings.TrimSpace(text), nil
}
