package metrics

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_ObserveRows(t *testing.T) {
	reg := NewRegistry()

	reg.ObserveRows("people", 3, 1)
	reg.ObserveRows("people", 2, 0)

	assert.InDelta(t, 5, testutil.ToFloat64(reg.RowsTotal.WithLabelValues("people", "succeeded")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(reg.RowsTotal.WithLabelValues("people", "skipped")), 0)
}

func TestRegistry_ObserveBatch(t *testing.T) {
	reg := NewRegistry()

	reg.ObserveBatch("transfers", "rejected", 20*time.Millisecond)

	assert.InDelta(t, 1, testutil.ToFloat64(reg.BatchesTotal.WithLabelValues("transfers", "rejected")), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(reg.BatchDuration))
}

func TestRegistry_Handler(t *testing.T) {
	reg := NewRegistry()
	reg.ObserveRows("transactions", 1, 0)

	rec := httptest.NewRecorder()
	reg.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `venmito_ingest_rows_total{family="transactions",outcome="succeeded"} 1`)
}

func TestRegistry_ObserveEvent(t *testing.T) {
	reg := NewRegistry()

	reg.ObserveEvent("people", 2*time.Second)
	reg.ObserveEvent("people", -time.Second)

	assert.InDelta(t, 2, testutil.ToFloat64(reg.EventsReceived.WithLabelValues("people")), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(reg.EventLag))
}

func TestRegistry_RegisterDBStats(t *testing.T) {
	reg := NewRegistry()
	db := &sql.DB{}

	require.NoError(t, reg.RegisterDBStats(db, "venmito"))
	assert.Error(t, reg.RegisterDBStats(db, "venmito"), "same database registered twice")
	assert.NoError(t, reg.RegisterDBStats(db, "venmito_replica"))
}
