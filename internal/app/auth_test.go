package app

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/garyellow/winston-hrbot-go/internal/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func basic(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

func serveWith(mw gin.HandlerFunc, method, authHeader string) *httptest.ResponseRecorder {
	router := gin.New()
	router.Handle(method, "/protected", mw, func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(method, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestMetricsAuthMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		header  string
		want    int
	}{
		{"disabled passes through", false, "", http.StatusOK},
		{"valid credentials", true, basic("prometheus", "secret123"), http.StatusOK},
		{"wrong username", true, basic("someone", "secret123"), http.StatusUnauthorized},
		{"wrong password", true, basic("prometheus", "nope"), http.StatusUnauthorized},
		{"no header", true, "", http.StatusUnauthorized},
		{"invalid base64", true, "Basic notbase64!!!", http.StatusUnauthorized},
		{"bearer instead of basic", true, "Bearer secret123", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serveWith(metricsAuthMiddleware(tt.enabled, "prometheus", "secret123"), http.MethodGet, tt.header)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusUnauthorized {
				assert.Contains(t, w.Header().Get("WWW-Authenticate"), "Basic realm=")
			}
		})
	}
}

func TestWebhookAuthMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		header string
		want   int
	}{
		{"no token configured", "", "", http.StatusOK},
		{"matching bearer", "s3cret", "Bearer s3cret", http.StatusOK},
		{"wrong bearer", "s3cret", "Bearer other", http.StatusUnauthorized},
		{"missing header", "s3cret", "", http.StatusUnauthorized},
		{"basic instead of bearer", "s3cret", basic("x", "s3cret"), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := metrics.New(prometheus.NewRegistry())
			w := serveWith(webhookAuthMiddleware(tt.token, m), http.MethodPost, tt.header)

			assert.Equal(t, tt.want, w.Code)
			rejected := testutil.ToFloat64(m.HTTPErrorsTotal.WithLabelValues("unauthorized"))
			if tt.want == http.StatusUnauthorized {
				assert.InDelta(t, 1, rejected, 0)
			} else {
				assert.InDelta(t, 0, rejected, 0)
			}
		})
	}
}
