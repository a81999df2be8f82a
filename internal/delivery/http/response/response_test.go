package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "venmito/internal/delivery/context"
	domainerrors "venmito/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func TestHandleAppError_ClientErrorKeepsDetails(t *testing.T) {
	c, rec := newContext()

	err := errors.Wrap(domainerrors.ErrTransferBatchEmpty.WithDetails("sender_not_found=2"), "upload")
	require.NoError(t, HandleAppError(c, err))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "TRANSFER_BATCH_EMPTY", body.Error.Code)
	assert.Equal(t, "sender_not_found=2", body.Error.Details)
	assert.Equal(t, "req-1", body.Meta.RequestID)
}

func TestHandleAppError_ServerErrorHidesDetails(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, HandleAppError(c, domainerrors.ErrStorageUnavailable.WithDetails("dial tcp: refused")))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.NotContains(t, rec.Body.String(), "refused")
}

func TestHandleAppError_PassesThroughOtherErrors(t *testing.T) {
	c, _ := newContext()

	err := HandleAppError(c, errors.New("boom"))
	assert.EqualError(t, err, "boom")
}
