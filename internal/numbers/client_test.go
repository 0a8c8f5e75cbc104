package numbers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrivia(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/251/trivia", r.URL.Path)
		assert.Equal(t, "floor", r.URL.Query().Get("notfound"))
		assert.True(t, r.URL.Query().Has("fragment"))
		assert.Equal(t, "text/plain", r.Header.Get("Accept"))
		_, _ = w.Write([]byte("the number of  peanuts in a jar\n"))
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL + "/", Timeout: time.Second})
	text, err := c.Trivia(context.Background(), 251)
	require.NoError(t, err)
	assert.Equal(t, "the number of  peanuts in a jar", text)
}

func TestTrivia_Error(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL, Timeout: time.Second})
	_, err := c.Trivia(context.Background(), 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "numbers trivia")
}
