package worker

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"venmito/config"
	"venmito/internal/delivery/worker/handler"
	"venmito/internal/domain/constants"
	"venmito/internal/domain/service"
	"venmito/internal/infra/metrics"
	"venmito/internal/infra/pubsub"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T, maxBody string) (*echo.Echo, *metrics.Registry) {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = maxBody
	cfg.Metrics = &config.MetricsConfig{Enabled: true, Path: "/metrics"}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := metrics.NewRegistry()
	push := handler.NewPushHandler(handler.PushHandlerParams{Config: cfg, Logger: logger, Metrics: reg})

	return newWorkerEcho(cfg, logger, push, reg), reg
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func encodedPush(t *testing.T, event *service.IngestionEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m-7"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func TestWorkerEcho_Health(t *testing.T) {
	e, _ := newTestEcho(t, "")

	rec := serve(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestWorkerEcho_PushRecordsEventAndExposesMetrics(t *testing.T) {
	e, reg := newTestEcho(t, "")

	rec := serve(e, http.MethodPost, "/push", encodedPush(t, &service.IngestionEvent{
		EventID:   "e-9",
		Family:    constants.FamilyTransfers,
		Received:  2,
		Succeeded: 2,
	}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.EventsReceived.WithLabelValues(constants.FamilyTransfers)))

	rec = serve(e, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "venmito_worker_events_received_total")
}

func TestWorkerEcho_PushRejectsMalformedMessage(t *testing.T) {
	e, _ := newTestEcho(t, "")

	rec := serve(e, http.MethodPost, "/push", `{"message":{"data":"not base64!"}}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWorkerEcho_BodyLimit(t *testing.T) {
	e, _ := newTestEcho(t, "1K")

	rec := serve(e, http.MethodPost, "/push", `{"message":{"data":"`+strings.Repeat("A", 2048)+`"}}`)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
