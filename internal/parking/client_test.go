package parking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domerrors "github.com/garyellow/winston-hrbot-go/internal/errors"
)

func TestUpdateExistingPlate(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/dev/update-existing-plate", r.URL.Path)

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{
			"previousPlate": "ABC123",
			"newPlate":      "XYZ789",
			"username":      "ana.mora",
			"MAGIC_KEY":     "magic",
		}, body)

		_, _ = w.Write([]byte(`{"newPlate":"XYZ789"}`))
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL + "/dev", MagicKey: "magic", Timeout: time.Second})
	plate, err := c.UpdateExistingPlate(context.Background(), "ABC123", "XYZ789", "ana.mora")
	require.NoError(t, err)
	assert.Equal(t, "XYZ789", plate)
}

func TestUpdateExistingPlate_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		wantParking bool
	}{
		{"api error text", http.StatusBadRequest, `{"error":"Plate ABC123 is not registered"}`, "Plate ABC123 is not registered", true},
		{"no error field", http.StatusInternalServerError, `{"message":"boom"}`, "parking request failed with status code 500", false},
		{"non json body", http.StatusBadGateway, `Bad Gateway`, "parking request failed with status code 502", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := New(Config{BaseURL: srv.URL, Timeout: time.Second})
			_, err := c.UpdateExistingPlate(context.Background(), "ABC123", "XYZ789", "ana")
			require.Error(t, err)
			assert.Equal(t, tt.wantMessage, domerrors.GetUserMessage(err))

			var perr *Error
			assert.Equal(t, tt.wantParking, errors.As(err, &perr))

			var apiErr *domerrors.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
		})
	}
}

