package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "venmito/internal/delivery/context"
	"venmito/internal/delivery/http/validator"
	"venmito/internal/domain/entity"
	domainerrors "venmito/internal/domain/errors"
	ucmocks "venmito/internal/mocks/usecase"
	"venmito/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func newRequest(method, target, contentType, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetRequestID(c, "req-42")

	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func peopleResult() *usecase.BatchResult[*entity.Person] {
	return &usecase.BatchResult[*entity.Person]{
		Received:  2,
		Succeeded: []*entity.Person{{ID: 1, Identifier: "0001", Email: "jane@example.com"}},
		Skipped:   []usecase.SkippedRow{{Index: 1, Reason: usecase.SkipInvalidRecord, Detail: "missing email"}},
	}
}

func TestPeopleHandler_UploadReturnsCreatedRecords(t *testing.T) {
	peopleUC := ucmocks.NewMockPeopleUsecase(t)
	h := NewPeopleHandler(PeopleHandlerParams{PeopleUC: peopleUC, Logger: discardLogger})

	peopleUC.EXPECT().
		UploadPeople(mock.Anything, mock.MatchedBy(func(records []usecase.RawRecord) bool {
			return len(records) == 2 && records[0]["email"] == "jane@example.com"
		})).
		Return(peopleResult(), nil).
		Once()

	c, rec := newRequest(http.MethodPost, "/people/upload", echo.MIMEApplicationJSON,
		`[{"email":"jane@example.com","first_name":"Jane"},{"first_name":"Nobody"}]`)
	require.NoError(t, h.Upload(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "req-42", body.Meta.RequestID)

	var people []entity.Person
	require.NoError(t, json.Unmarshal(body.Data, &people))
	require.Len(t, people, 1)
	assert.Equal(t, "0001", people[0].Identifier)
}

func TestPeopleHandler_UploadWithDiagnostics(t *testing.T) {
	peopleUC := ucmocks.NewMockPeopleUsecase(t)
	h := NewPeopleHandler(PeopleHandlerParams{PeopleUC: peopleUC, Logger: discardLogger})

	peopleUC.EXPECT().UploadPeople(mock.Anything, mock.Anything).Return(peopleResult(), nil).Once()

	c, rec := newRequest(http.MethodPost, "/people/upload?diagnostics=true", echo.MIMEApplicationJSON,
		`[{"email":"jane@example.com"},{}]`)
	require.NoError(t, h.Upload(c))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var result struct {
		Received int                  `json:"received"`
		Records  []entity.Person      `json:"records"`
		Skipped  []usecase.SkippedRow `json:"skipped"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &result))
	assert.Equal(t, 2, result.Received)
	assert.Len(t, result.Records, 1)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, usecase.SkipInvalidRecord, result.Skipped[0].Reason)
}

func TestPeopleHandler_UploadCSVByContentType(t *testing.T) {
	peopleUC := ucmocks.NewMockPeopleUsecase(t)
	h := NewPeopleHandler(PeopleHandlerParams{PeopleUC: peopleUC, Logger: discardLogger})

	peopleUC.EXPECT().
		UploadPeople(mock.Anything, mock.MatchedBy(func(records []usecase.RawRecord) bool {
			return len(records) == 1 && records[0]["email"] == "jane@example.com"
		})).
		Return(&usecase.BatchResult[*entity.Person]{Received: 1, Skipped: []usecase.SkippedRow{}}, nil).
		Once()

	c, rec := newRequest(http.MethodPost, "/people/upload", "text/csv",
		"email,first_name\njane@example.com,Jane\n")
	require.NoError(t, h.Upload(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestPeopleHandler_UploadFormatQueryOverridesContentType(t *testing.T) {
	peopleUC := ucmocks.NewMockPeopleUsecase(t)
	h := NewPeopleHandler(PeopleHandlerParams{PeopleUC: peopleUC, Logger: discardLogger})

	peopleUC.EXPECT().
		UploadPeople(mock.Anything, mock.MatchedBy(func(records []usecase.RawRecord) bool {
			return len(records) == 1 && records[0]["email"] == "jane@example.com"
		})).
		Return(&usecase.BatchResult[*entity.Person]{Received: 1, Skipped: []usecase.SkippedRow{}}, nil).
		Once()

	c, rec := newRequest(http.MethodPost, "/people/upload?format=yaml", "text/plain",
		"- email: jane@example.com\n")
	require.NoError(t, h.Upload(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestPeopleHandler_UploadRejectsBadInput(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		contentType string
		body        string
		wantStatus  int
		wantCode    string
	}{
		{
			name:        "unsupported content type",
			target:      "/people/upload",
			contentType: "application/pdf",
			body:        "%PDF",
			wantStatus:  http.StatusUnsupportedMediaType,
			wantCode:    "UNSUPPORTED_FORMAT",
		},
		{
			name:        "unknown format query",
			target:      "/people/upload?format=toml",
			contentType: echo.MIMEApplicationJSON,
			body:        "[]",
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
		},
		{
			name:        "malformed json",
			target:      "/people/upload",
			contentType: echo.MIMEApplicationJSON,
			body:        `[{"email":`,
			wantStatus:  http.StatusBadRequest,
			wantCode:    "INVALID_UPLOAD",
		},
		{
			name:        "empty body",
			target:      "/people/upload",
			contentType: echo.MIMEApplicationJSON,
			body:        "",
			wantStatus:  http.StatusBadRequest,
			wantCode:    "INVALID_UPLOAD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No usecase expectations: bad input must never reach the engine.
			h := NewPeopleHandler(PeopleHandlerParams{PeopleUC: ucmocks.NewMockPeopleUsecase(t), Logger: discardLogger})

			c, rec := newRequest(http.MethodPost, tt.target, tt.contentType, tt.body)
			require.NoError(t, h.Upload(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decode(t, rec)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestPeopleHandler_ListPassesThroughUnknownErrors(t *testing.T) {
	peopleUC := ucmocks.NewMockPeopleUsecase(t)
	h := NewPeopleHandler(PeopleHandlerParams{PeopleUC: peopleUC, Logger: discardLogger})

	peopleUC.EXPECT().ListPeople(mock.Anything).Return(nil, errors.New("boom")).Once()

	c, _ := newRequest(http.MethodGet, "/people", "", "")
	assert.EqualError(t, h.List(c), "boom")
}

func TestPromotionHandler_UploadAndList(t *testing.T) {
	promotionUC := ucmocks.NewMockPromotionUsecase(t)
	h := NewPromotionHandler(PromotionHandlerParams{PromotionUC: promotionUC, Logger: discardLogger})

	promotion := &entity.Promotion{ID: 3, Promotion: "ItemA", Responded: true}
	promotionUC.EXPECT().UploadPromotions(mock.Anything, mock.Anything).
		Return(&usecase.BatchResult[*entity.Promotion]{Received: 1, Succeeded: []*entity.Promotion{promotion}, Skipped: []usecase.SkippedRow{}}, nil).
		Once()
	promotionUC.EXPECT().ListPromotions(mock.Anything).Return([]*entity.Promotion{promotion}, nil).Once()

	c, rec := newRequest(http.MethodPost, "/promotions/upload", echo.MIMEApplicationJSON,
		`{"client_email":"jane@example.com","promotion":"ItemA","responded":"Yes"}`)
	require.NoError(t, h.Upload(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	c, rec = newRequest(http.MethodGet, "/promotions", "", "")
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var promotions []entity.Promotion
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &promotions))
	require.Len(t, promotions, 1)
	assert.Equal(t, "ItemA", promotions[0].Promotion)
}

func TestTransferHandler_EmptyBatchIsUnprocessable(t *testing.T) {
	transferUC := ucmocks.NewMockTransferUsecase(t)
	h := NewTransferHandler(TransferHandlerParams{TransferUC: transferUC, Logger: discardLogger})

	transferUC.EXPECT().UploadTransfers(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrTransferBatchEmpty.WithDetails("all 1 rows were skipped: sender_not_found=1")).
		Once()

	c, rec := newRequest(http.MethodPost, "/transfers/upload", echo.MIMEApplicationJSON,
		`[{"sender_id":"9","recipient_id":"2","amount":"10.00","date":"2024-01-01"}]`)
	require.NoError(t, h.Upload(c))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decode(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "TRANSFER_BATCH_EMPTY", body.Error.Code)
	assert.Contains(t, body.Error.Details, "sender_not_found=1")
}

func TestTransferHandler_StorageFailureHidesDetails(t *testing.T) {
	transferUC := ucmocks.NewMockTransferUsecase(t)
	h := NewTransferHandler(TransferHandlerParams{TransferUC: transferUC, Logger: discardLogger})

	transferUC.EXPECT().UploadTransfers(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrStorageUnavailable, "upload aborted")).
		Once()

	c, rec := newRequest(http.MethodPost, "/transfers/upload", echo.MIMEApplicationJSON,
		`[{"sender_id":"1","recipient_id":"2","amount":"10.00","date":"2024-01-01"}]`)
	require.NoError(t, h.Upload(c))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body := decode(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "STORAGE_UNAVAILABLE", body.Error.Code)
	assert.Empty(t, body.Error.Details)
}

func TestTransactionHandler_UploadAndItems(t *testing.T) {
	transactionUC := ucmocks.NewMockTransactionUsecase(t)
	h := NewTransactionHandler(TransactionHandlerParams{TransactionUC: transactionUC, Logger: discardLogger})

	transactionUC.EXPECT().
		UploadTransactions(mock.Anything, mock.MatchedBy(func(records []usecase.RawRecord) bool {
			return len(records) == 1 && records[0]["external_id"] == "T-1"
		})).
		Return(&usecase.BatchResult[*entity.Transaction]{Received: 1, Succeeded: []*entity.Transaction{{ID: 9, ExternalID: "T-1"}}, Skipped: []usecase.SkippedRow{}}, nil).
		Once()
	transactionUC.EXPECT().ListItems(mock.Anything).Return([]*entity.Item{{ID: 1, Name: "Widget"}}, nil).Once()

	c, rec := newRequest(http.MethodPost, "/transactions/upload", echo.MIMEApplicationJSON,
		`[{"external_id":"T-1","phone":"+1-555-0100","store":"Main","items":{"item":[{"item":"Widget","price":"2.50"}]}}]`)
	require.NoError(t, h.Upload(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	c, rec = newRequest(http.MethodGet, "/items", "", "")
	require.NoError(t, h.ListItems(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var items []entity.Item
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Widget", items[0].Name)
}

func TestHealthCheck(t *testing.T) {
	c, rec := newRequest(http.MethodGet, "/health", "", "")
	require.NoError(t, HealthCheck(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
