// Package apiclient is the shared HTTP client behind the JSON/XML/text
// collaborator APIs (HR directory, parking bot, trivia). It owns timeouts,
// default headers, basic auth, response decompression and per-service
// metrics. It never retries: a failed call is returned to the handler.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"

	domerrors "github.com/garyellow/winston-hrbot-go/internal/errors"
	"github.com/garyellow/winston-hrbot-go/internal/metrics"
)

// maxResponseSize caps how much of a response body is read.
const maxResponseSize = 4 << 20

// Config configures a Client for one collaborator.
type Config struct {
	Service string // Metrics label and error prefix, e.g. "bamboo"
	BaseURL string
	Timeout time.Duration
	Headers map[string]string // Sent on every request

	// Basic auth, applied when Username is non-empty.
	Username string
	Password string

	HTTPClient *http.Client     // Optional; Timeout is ignored when set
	Metrics    *metrics.Metrics // Optional
}

// Client performs requests against a single collaborator base URL.
type Client struct {
	service    string
	baseURL    string
	headers    map[string]string
	username   string
	password   string
	httpClient *http.Client
	metrics    *metrics.Metrics
}

// New creates a Client from cfg.
func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
	return &Client{
		service:    cfg.Service,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		headers:    cfg.Headers,
		username:   cfg.Username,
		password:   cfg.Password,
		httpClient: httpClient,
		metrics:    cfg.Metrics,
	}
}

// Service returns the collaborator name used in metrics and errors.
func (c *Client) Service() string {
	return c.service
}

// URL joins path onto the base URL.
func (c *Client) URL(path string) string {
	if path == "" {
		return c.baseURL
	}
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

// Do sends one request and returns the decoded response body.
// A non-2xx status yields *errors.APIError carrying the body.
func (c *Client) Do(ctx context.Context, method, path string, body io.Reader, contentType string) ([]byte, error) {
	url := c.URL(path)
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create request: %w", c.service, err)
	}

	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	start := time.Now()
	data, err := c.roundTrip(req)
	c.record(err, time.Since(start))
	return data, err
}

func (c *Client) roundTrip(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: request failed: %w", c.service, err)
	}
	defer func() { _ = resp.Body.Close() }()

	reader, err := decodeBody(resp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.service, err)
	}
	defer func() { _ = reader.Close() }()

	data, err := io.ReadAll(io.LimitReader(reader, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read response: %w", c.service, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, domerrors.NewAPIError(c.service, req.URL.String(), resp.StatusCode, data)
	}
	return data, nil
}

// decodeBody unwraps gzip or deflate bodies. Since Accept-Encoding is set
// explicitly, net/http leaves decompression to us.
func decodeBody(resp *http.Response) (io.ReadCloser, error) {
	switch strings.ToLower(resp.Header.Get("Content-Encoding")) {
	case "gzip":
		zr, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress gzip: %w", err)
		}
		return zr, nil
	case "deflate":
		zr, err := zlib.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress deflate: %w", err)
		}
		return zr, nil
	default:
		return io.NopCloser(resp.Body), nil
	}
}

func (c *Client) record(err error, elapsed time.Duration) {
	if c.metrics == nil {
		return
	}
	c.metrics.RecordCollaborator(c.service, Status(err), elapsed.Seconds())
}

// Status classifies a call outcome for metrics: success, timeout or error.
func Status(err error) string {
	if err == nil {
		return "success"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "timeout"
	}
	return "error"
}

// GetJSON issues a GET and decodes the JSON response into out.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	data, err := c.Do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	return c.decode(data, out)
}

// SendJSON encodes in as the request body and decodes the JSON response
// into out. A nil out discards the response.
func (c *Client) SendJSON(ctx context.Context, method, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%s: failed to encode request: %w", c.service, err)
	}
	data, err := c.Do(ctx, method, path, bytes.NewReader(payload), "application/json")
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return c.decode(data, out)
}

// GetText issues a GET and returns the response body as a string.
func (c *Client) GetText(ctx context.Context, path string) (string, error) {
	data, err := c.Do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (c *Client) decode(data []byte, out any) error {
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", c.service, err)
	}
	return nil
}
