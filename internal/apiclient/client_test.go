package apiclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domerrors "github.com/garyellow/winston-hrbot-go/internal/errors"
	"github.com/garyellow/winston-hrbot-go/internal/metrics"
)

func TestURL(t *testing.T) {
	t.Parallel()
	c := New(Config{BaseURL: "https://api.example.com/gateway.php/acme/"})
	assert.Equal(t, "https://api.example.com/gateway.php/acme/v1/employees", c.URL("/v1/employees"))
	assert.Equal(t, "https://api.example.com/gateway.php/acme/v1/employees", c.URL("v1/employees"))
	assert.Equal(t, "https://api.example.com/gateway.php/acme", c.URL(""))
}

func TestDo_HeadersAndAuth(t *testing.T) {
	t.Parallel()
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := New(Config{
		Service:  "bamboo",
		BaseURL:  srv.URL,
		Timeout:  time.Second,
		Headers:  map[string]string{"Accept": "application/json"},
		Username: "key",
		Password: "x",
	})

	var out struct{ OK bool }
	require.NoError(t, c.GetJSON(context.Background(), "/v1/ping", &out))
	assert.True(t, out.OK)

	require.NotNil(t, got)
	assert.Equal(t, "/v1/ping", got.URL.Path)
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
	assert.Equal(t, "gzip, deflate", got.Header.Get("Accept-Encoding"))
	user, pass, ok := got.BasicAuth()
	assert.True(t, ok)
	assert.Equal(t, "key", user)
	assert.Equal(t, "x", pass)
}

func TestDo_DecodesCompressedBodies(t *testing.T) {
	t.Parallel()

	var gz, zl bytes.Buffer
	gw := gzip.NewWriter(&gz)
	_, _ = gw.Write([]byte("gzip body"))
	require.NoError(t, gw.Close())
	zw := zlib.NewWriter(&zl)
	_, _ = zw.Write([]byte("deflate body"))
	require.NoError(t, zw.Close())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/gzip":
			w.Header().Set("Content-Encoding", "gzip")
			_, _ = w.Write(gz.Bytes())
		case "/deflate":
			w.Header().Set("Content-Encoding", "deflate")
			_, _ = w.Write(zl.Bytes())
		default:
			_, _ = w.Write([]byte("plain body"))
		}
	}))
	defer srv.Close()

	c := New(Config{Service: "numbers", BaseURL: srv.URL, Timeout: time.Second})
	for path, want := range map[string]string{"/gzip": "gzip body", "/deflate": "deflate body", "/plain": "plain body"} {
		text, err := c.GetText(context.Background(), path)
		require.NoError(t, err, path)
		assert.Equal(t, want, text, path)
	}
}

func TestDo_Non2xxIsAPIError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Plate not found"}`))
	}))
	defer srv.Close()

	m := metrics.New(prometheus.NewRegistry())
	c := New(Config{Service: "parking", BaseURL: srv.URL, Timeout: time.Second, Metrics: m})

	err := c.SendJSON(context.Background(), http.MethodPost, "/update", map[string]string{"a": "b"}, nil)
	require.Error(t, err)

	var apiErr *domerrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.JSONEq(t, `{"error":"Plate not found"}`, string(apiErr.Body))
	assert.Equal(t, "parking", apiErr.Service)

	assert.InDelta(t, 1, testutil.ToFloat64(m.CollaboratorRequestsTotal.WithLabelValues("parking", "error")), 0)
}

func TestSendJSON_EncodesBody(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name":"winston"}`, string(body))
		_, _ = w.Write([]byte(`{"echo":"winston"}`))
	}))
	defer srv.Close()

	c := New(Config{Service: "parking", BaseURL: srv.URL, Timeout: time.Second})
	var out struct{ Echo string }
	require.NoError(t, c.SendJSON(context.Background(), http.MethodPost, "/", map[string]string{"name": "winston"}, &out))
	assert.Equal(t, "winston", out.Echo)
}

func TestGetJSON_DecodeError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	}))
	defer srv.Close()

	c := New(Config{Service: "bamboo", BaseURL: srv.URL, Timeout: time.Second})
	var out map[string]any
	err := c.GetJSON(context.Background(), "/", &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bamboo: failed to decode response")
}

func TestDo_Timeout(t *testing.T) {
	t.Parallel()
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	m := metrics.New(prometheus.NewRegistry())
	c := New(Config{Service: "numbers", BaseURL: srv.URL, Timeout: 50 * time.Millisecond, Metrics: m})

	_, err := c.GetText(context.Background(), "/42")
	require.Error(t, err)
	assert.Equal(t, "timeout", Status(err))
	assert.InDelta(t, 1, testutil.ToFloat64(m.CollaboratorRequestsTotal.WithLabelValues("numbers", "timeout")), 0)
}

func TestStatus(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "success", Status(nil))
	assert.Equal(t, "timeout", Status(context.DeadlineExceeded))
	assert.Equal(t, "error", Status(io.EOF))
}
