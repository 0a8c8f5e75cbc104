package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)
	require.NotNil(t, m)

	assert.NotNil(t, m.IntentRequestsTotal)
	assert.NotNil(t, m.IntentDurationSeconds)
	assert.NotNil(t, m.CollaboratorRequestsTotal)
	assert.NotNil(t, m.CollaboratorDurationSeconds)
	assert.NotNil(t, m.HTTPErrorsTotal)
	assert.NotNil(t, m.ContentObjectsTotal)
}

func TestNew_SeparateRegistries(t *testing.T) {
	// Each registry gets its own collectors, so building twice must not panic.
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}

func TestRecordIntent(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordIntent("CreatePTORequest", "eliciting", "Delegate", 0.01)
	m.RecordIntent("CreatePTORequest", "eliciting", "Delegate", 0.02)
	m.RecordIntent("FunChuckNorrisJokes", "fulfilling", "Close", 0.001)

	assert.InDelta(t, 2, testutil.ToFloat64(m.IntentRequestsTotal.WithLabelValues("CreatePTORequest", "eliciting", "Delegate")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.IntentRequestsTotal.WithLabelValues("FunChuckNorrisJokes", "fulfilling", "Close")), 0)
	assert.Equal(t, 2, testutil.CollectAndCount(m.IntentDurationSeconds))
}

func TestRecordCollaborator(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordCollaborator("bamboo", "success", 0.2)
	m.RecordCollaborator("bamboo", "error", 0.1)
	m.RecordCollaborator("slack", "success", 0.05)

	assert.InDelta(t, 1, testutil.ToFloat64(m.CollaboratorRequestsTotal.WithLabelValues("bamboo", "error")), 0)
	assert.Equal(t, 3, testutil.CollectAndCount(m.CollaboratorRequestsTotal))
}

func TestRecordHTTPErrorAndContent(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordHTTPError("invalid_bot")
	m.RecordContentObject("bucket")
	m.RecordContentObject("embedded")
	m.RecordContentObject("embedded")

	assert.InDelta(t, 1, testutil.ToFloat64(m.HTTPErrorsTotal.WithLabelValues("invalid_bot")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.ContentObjectsTotal.WithLabelValues("embedded")), 0)
}
