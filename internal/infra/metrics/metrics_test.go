package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"blindauth/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSessions int

func (f fixedSessions) Len() int { return int(f) }

func TestRecorder_RecordOperation(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(Params{Registry: reg})

	r.RecordOperation("login", service.OutcomeSuccess, "")
	r.RecordOperation("login", service.OutcomeFailure, "INVALID_CREDENTIALS")
	r.RecordOperation("login", service.OutcomeFailure, "INVALID_CREDENTIALS")

	assert.Equal(t, float64(1), testutil.ToFloat64(r.operations.WithLabelValues("login", service.OutcomeSuccess, "")))
	assert.Equal(t, float64(2), testutil.ToFloat64(r.operations.WithLabelValues("login", service.OutcomeFailure, "INVALID_CREDENTIALS")))
}

func TestRecorder_ObserveSecretHash(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(Params{Registry: reg})

	r.ObserveSecretHash("hash", 20*time.Millisecond)
	r.ObserveSecretHash("verify", 30*time.Millisecond)

	count, err := testutil.GatherAndCount(reg, "blindauth_secret_hash_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRecorder_ActiveSessionsGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewRecorder(Params{Registry: reg, Sessions: fixedSessions(3)})

	expected := `
# HELP blindauth_active_sessions Number of bearer tokens currently valid
# TYPE blindauth_active_sessions gauge
blindauth_active_sessions 3
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "blindauth_active_sessions"))
}

func TestHandler_ServesExposition(t *testing.T) {
	reg := NewRegistry()
	r := NewRecorder(Params{Registry: reg})
	r.RecordOperation("register", service.OutcomeSuccess, "")

	srv := httptest.NewServer(Handler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `operation="register",outcome="success"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
