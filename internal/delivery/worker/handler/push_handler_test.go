package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"venmito/config"
	"venmito/internal/domain/constants"
	"venmito/internal/domain/service"
	"venmito/internal/infra/metrics"
	"venmito/internal/infra/pubsub"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var committedAt = time.Date(2024, 3, 15, 12, 30, 0, 0, time.UTC)

func newHandler(t *testing.T, cfg *config.Config) (*PushHandler, *metrics.Registry) {
	t.Helper()

	reg := metrics.NewRegistry()
	h := NewPushHandler(PushHandlerParams{
		Config:  cfg,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Metrics: reg,
	})
	h.now = func() time.Time { return committedAt.Add(3 * time.Second) }

	return h, reg
}

func pushBody(t *testing.T, event *service.IngestionEvent, attrs map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = attrs
	msg.Subscription = "projects/local/subscriptions/ingestion-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func post(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestHandlePush_RecordsEvent(t *testing.T) {
	h, reg := newHandler(t, &config.Config{})

	rec := post(h, pushBody(t, &service.IngestionEvent{
		EventID:     "e-1",
		Family:      constants.FamilyPeople,
		Received:    3,
		Succeeded:   2,
		Skipped:     1,
		CompletedAt: committedAt,
	}, map[string]string{"request_id": "req-7"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 1, testutil.ToFloat64(reg.EventsReceived.WithLabelValues(constants.FamilyPeople)), 0)
}

func TestHandlePush_UnknownFamilyIsAcknowledged(t *testing.T) {
	h, reg := newHandler(t, &config.Config{})

	rec := post(h, pushBody(t, &service.IngestionEvent{EventID: "e-2", Family: "invoices"}, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, testutil.CollectAndCount(reg.EventsReceived))
}

func TestHandlePush_MalformedMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "bad base64", body: `{"message":{"data":"***"}}`},
		{name: "bad event", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("[1,2]")) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newHandler(t, &config.Config{})

			assert.Equal(t, http.StatusBadRequest, post(h, tt.body).Code)
		})
	}
}

func TestHandlePush_VerifiesTokenForGoogleOutsideDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = "production"

	h, _ := newHandler(t, cfg)
	require.NotNil(t, h.verify)
	h.verify = func(*http.Request) error { return errors.New("bad token") }

	rec := post(h, pushBody(t, &service.IngestionEvent{Family: constants.FamilyPeople}, nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	cfg.Env.Env = constants.EnvDevelop
	h, _ = newHandler(t, cfg)
	assert.Nil(t, h.verify)
}

func TestVerifyPubSubToken_RejectsMissingBearer(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	require.ErrorContains(t, verifyPubSubToken(req), "missing authorization header")

	req.Header.Set("Authorization", "Basic abc")
	require.ErrorContains(t, verifyPubSubToken(req), "invalid authorization header format")
}

func TestExtractRequestID_Priority(t *testing.T) {
	h, _ := newHandler(t, &config.Config{})
	req := httptest.NewRequest(http.MethodPost, "/push", nil)

	var msg pubsub.PushMessage
	msg.Message.Attributes = map[string]string{"request_id": "from-attrs"}
	event := &service.IngestionEvent{RequestID: "from-event"}
	assert.Equal(t, "from-attrs", h.extractRequestID(req.Context(), &msg, event))

	msg.Message.Attributes = nil
	assert.Equal(t, "from-event", h.extractRequestID(req.Context(), &msg, event))

	event.RequestID = ""
	assert.NotEmpty(t, h.extractRequestID(req.Context(), &msg, event))
}
