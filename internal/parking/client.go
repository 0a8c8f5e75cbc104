// Package parking is the client of the parking bot, which keeps the license
// plates registered for the office parking lot.
package parking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/garyellow/winston-hrbot-go/internal/apiclient"
	domerrors "github.com/garyellow/winston-hrbot-go/internal/errors"
	"github.com/garyellow/winston-hrbot-go/internal/metrics"
)

// ServiceName labels this collaborator in metrics and errors.
const ServiceName = "parking"

// Config configures the parking client.
type Config struct {
	BaseURL    string
	MagicKey   string // Shared secret expected in every request body
	Timeout    time.Duration
	HTTPClient *http.Client
	Metrics    *metrics.Metrics
}

// Client talks to the parking bot API.
type Client struct {
	api      *apiclient.Client
	magicKey string
}

// New creates a parking client.
func New(cfg Config) *Client {
	return &Client{
		api: apiclient.New(apiclient.Config{
			Service: ServiceName,
			BaseURL: cfg.BaseURL,
			Timeout: cfg.Timeout,
			Headers: map[string]string{
				"Accept":          "application/json",
				"Accept-Language": "en-US,en;q=0.8",
			},
			HTTPClient: cfg.HTTPClient,
			Metrics:    cfg.Metrics,
		}),
		magicKey: cfg.MagicKey,
	}
}

type updatePlateRequest struct {
	PreviousPlate string `json:"previousPlate"`
	NewPlate      string `json:"newPlate"`
	Username      string `json:"username"`
	MagicKey      string `json:"MAGIC_KEY"`
}

type updatePlateResponse struct {
	NewPlate string `json:"newPlate"`
}

// Error is a rejection reported by the parking bot. Its text is the bot's
// own explanation and is meant to be shown to the user.
type Error struct {
	Message string
	Cause   *domerrors.APIError
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// UpdateExistingPlate replaces previousPlate with newPlate for username and
// returns the plate the bot stored.
func (c *Client) UpdateExistingPlate(ctx context.Context, previousPlate, newPlate, username string) (string, error) {
	req := updatePlateRequest{
		PreviousPlate: previousPlate,
		NewPlate:      newPlate,
		Username:      username,
		MagicKey:      c.magicKey,
	}

	var resp updatePlateResponse
	if err := c.api.SendJSON(ctx, http.MethodPost, "/update-existing-plate", req, &resp); err != nil {
		return "", domerrors.NewCollaboratorError(ServiceName, "update_existing_plate", asParkingError(err))
	}
	return resp.NewPlate, nil
}

// asParkingError surfaces the {"error": "..."} body of a rejected call.
func asParkingError(err error) error {
	var apiErr *domerrors.APIError
	if !errors.As(err, &apiErr) {
		return err
	}
	var body struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(apiErr.Body, &body) != nil || body.Error == "" {
		return err
	}
	return &Error{Message: body.Error, Cause: apiErr}
}
