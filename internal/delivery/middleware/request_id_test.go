package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "venmito/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRequestID(t *testing.T, header string) (string, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var fromCtx string
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := m.Process(func(c echo.Context) error {
		fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return nil
	})(c)
	require.NoError(t, err)

	return fromCtx, rec.Header().Get(deliverycontext.HeaderXRequestID)
}

func TestRequestIDMiddleware_KeepsClientID(t *testing.T) {
	fromCtx, header := runRequestID(t, "abc-123")

	assert.Equal(t, "abc-123", fromCtx)
	assert.Equal(t, "abc-123", header)
}

func TestRequestIDMiddleware_GeneratesMissingOrOversizedID(t *testing.T) {
	for _, in := range []string{"", strings.Repeat("x", maxRequestIDLength+1)} {
		fromCtx, header := runRequestID(t, in)

		assert.NotEmpty(t, fromCtx)
		assert.NotEqual(t, in, fromCtx)
		assert.Equal(t, fromCtx, header)
	}
}
