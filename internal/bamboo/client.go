// Package bamboo is the HR system client: employee directory, time-off
// balances, the who's-out calendar and time-off request submission.
package bamboo

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/garyellow/winston-hrbot-go/internal/apiclient"
	domerrors "github.com/garyellow/winston-hrbot-go/internal/errors"
	"github.com/garyellow/winston-hrbot-go/internal/metrics"
	"github.com/garyellow/winston-hrbot-go/internal/timeutil"
)

// ServiceName labels this collaborator in metrics and errors.
const ServiceName = "bamboo"

// Config configures the HR client.
type Config struct {
	BaseURL    string // e.g. https://api.bamboohr.com/api/gateway.php/<subdomain>
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
	Metrics    *metrics.Metrics
}

// Client talks to the HR API.
type Client struct {
	api *apiclient.Client
}

// New creates an HR client. The API key is sent as the basic-auth user with
// a throwaway password, as the HR API expects.
func New(cfg Config) *Client {
	return &Client{api: apiclient.New(apiclient.Config{
		Service: ServiceName,
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Headers: map[string]string{
			"Accept":          "application/json",
			"Accept-Language": "en-US,en;q=0.8",
		},
		Username:   cfg.APIKey,
		Password:   "x",
		HTTPClient: cfg.HTTPClient,
		Metrics:    cfg.Metrics,
	})}
}

// GetEmployees fetches the full employee directory.
func (c *Client) GetEmployees(ctx context.Context) (*Directory, error) {
	var dir Directory
	if err := c.api.GetJSON(ctx, "/v1/employees/directory", &dir); err != nil {
		return nil, domerrors.NewCollaboratorError(ServiceName, "employees_directory", err)
	}
	return &dir, nil
}

// CalculateTimeOffBalance returns the employee's balances as of end.
func (c *Client) CalculateTimeOffBalance(ctx context.Context, employeeID string, end time.Time) ([]TimeOffBalance, error) {
	path := fmt.Sprintf("/v1/employees/%s/time_off/calculator/?end=%s",
		url.PathEscape(employeeID), end.Format(timeutil.DateLayout))

	var balances []TimeOffBalance
	if err := c.api.GetJSON(ctx, path, &balances); err != nil {
		return nil, domerrors.NewCollaboratorError(ServiceName, "time_off_calculator", err)
	}
	return balances, nil
}

// WhosOut lists time off and company holidays between start and end (YYYY-MM-DD).
func (c *Client) WhosOut(ctx context.Context, start, end string) ([]WhosOutEntry, error) {
	q := url.Values{}
	q.Set("start", start)
	q.Set("end", end)

	var entries []WhosOutEntry
	if err := c.api.GetJSON(ctx, "/v1/time_off/whos_out?"+q.Encode(), &entries); err != nil {
		return nil, domerrors.NewCollaboratorError(ServiceName, "whos_out", err)
	}
	return entries, nil
}

// TimeOffRequest is the XML document the HR API accepts for a new request.
type TimeOffRequest struct {
	XMLName       xml.Name `xml:"request"`
	Status        string   `xml:"status"`
	Start         string   `xml:"start"`
	End           string   `xml:"end"`
	TimeOffTypeID int      `xml:"timeOffTypeId"`
	Amount        int      `xml:"amount"`
}

// SendTimeOffRequest submits a request in "requested" status for approval.
func (c *Client) SendTimeOffRequest(ctx context.Context, employeeID, start, end string, typeID, amount int) (*TimeOffRequestResult, error) {
	payload, err := xml.Marshal(TimeOffRequest{
		Status:        "requested",
		Start:         start,
		End:           end,
		TimeOffTypeID: typeID,
		Amount:        amount,
	})
	if err != nil {
		return nil, fmt.Errorf("bamboo: encode time off request: %w", err)
	}

	path := fmt.Sprintf("/v1/employees/%s/time_off/request/", url.PathEscape(employeeID))
	data, err := c.api.Do(ctx, http.MethodPut, path, bytes.NewReader(payload), "text/xml")
	if err != nil {
		return nil, domerrors.NewCollaboratorError(ServiceName, "time_off_request", err)
	}

	var result TimeOffRequestResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, domerrors.NewCollaboratorError(ServiceName, "time_off_request",
			fmt.Errorf("bamboo: failed to decode response: %w", err))
	}
	return &result, nil
}

// HolidayDates extracts the start dates of holiday entries, skipping any
// that do not parse.
func HolidayDates(entries []WhosOutEntry, loc *time.Location) []time.Time {
	var dates []time.Time
	for _, e := range entries {
		if e.Type != WhosOutTypeHoliday {
			continue
		}
		d, err := timeutil.ParseDate(e.Start, loc)
		if err != nil {
			continue
		}
		dates = append(dates, d)
	}
	return dates
}
