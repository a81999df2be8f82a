package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"venmito/config"
	deliverycontext "venmito/internal/delivery/context"
	"venmito/internal/delivery/http/router"
	"venmito/internal/delivery/http/router/handler"
	"venmito/internal/domain/entity"
	"venmito/internal/infra/metrics"
	ucmocks "venmito/internal/mocks/usecase"
	"venmito/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	echo     *echo.Echo
	peopleUC *ucmocks.MockPeopleUsecase
}

func newTestServer(t *testing.T, maxBody string) *testServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = maxBody
	cfg.Metrics = &config.MetricsConfig{Enabled: true, Path: "/metrics"}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	peopleUC := ucmocks.NewMockPeopleUsecase(t)

	params := router.RouterParams{
		PeopleHandler:      handler.NewPeopleHandler(handler.PeopleHandlerParams{PeopleUC: peopleUC, Logger: logger}),
		PromotionHandler:   handler.NewPromotionHandler(handler.PromotionHandlerParams{PromotionUC: ucmocks.NewMockPromotionUsecase(t), Logger: logger}),
		TransferHandler:    handler.NewTransferHandler(handler.TransferHandlerParams{TransferUC: ucmocks.NewMockTransferUsecase(t), Logger: logger}),
		TransactionHandler: handler.NewTransactionHandler(handler.TransactionHandlerParams{TransactionUC: ucmocks.NewMockTransactionUsecase(t), Logger: logger}),
		Metrics:            metrics.NewRegistry(),
		Config:             cfg,
	}

	return &testServer{
		echo:     newEcho(cfg, logger, params),
		peopleUC: peopleUC,
	}
}

func (s *testServer) do(method, target, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_HealthEchoesRequestID(t *testing.T) {
	srv := newTestServer(t, "1MB")

	rec := srv.do(http.MethodGet, "/health", "", map[string]string{deliverycontext.HeaderXRequestID: "abc-123"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, rec.Body.String(), `"request_id":"abc-123"`)
}

func TestServer_MetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, "1MB")

	rec := srv.do(http.MethodGet, "/metrics", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestServer_UploadRoute(t *testing.T) {
	srv := newTestServer(t, "1MB")

	srv.peopleUC.EXPECT().UploadPeople(mock.Anything, mock.Anything).
		Return(&usecase.BatchResult[*entity.Person]{Received: 1, Succeeded: []*entity.Person{{ID: 1}}, Skipped: []usecase.SkippedRow{}}, nil).
		Once()

	rec := srv.do(http.MethodPost, "/people/upload", `[{"email":"jane@example.com"}]`,
		map[string]string{echo.HeaderContentType: echo.MIMEApplicationJSON})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_UnknownRouteUsesErrorEnvelope(t *testing.T) {
	srv := newTestServer(t, "1MB")

	rec := srv.do(http.MethodGet, "/nowhere", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"HTTP_ERROR"`)
}

func TestServer_BodyLimit(t *testing.T) {
	srv := newTestServer(t, "1K")

	body := "[" + strings.Repeat(`{"email":"someone@example.com"},`, 100) + `{}]`
	rec := srv.do(http.MethodPost, "/people/upload", body,
		map[string]string{echo.HeaderContentType: echo.MIMEApplicationJSON})

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
