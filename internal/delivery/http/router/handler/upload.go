// Package handler contains the echo handlers of the HTTP API.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "venmito/internal/delivery/context"
	"venmito/internal/delivery/http/response"
	domainerrors "venmito/internal/domain/errors"
	"venmito/internal/infra/codec"
	"venmito/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// uploadQuery holds the query parameters accepted by upload endpoints.
type uploadQuery struct {
	// Diagnostics adds the received count and skipped rows to the response.
	Diagnostics bool   `query:"diagnostics"`
	Format      string `query:"format" validate:"omitempty,oneof=json yaml csv xml"`
}

// bindUpload reads the query and decodes the body into raw records.
// The body format comes from ?format, else from the Content-Type header (JSON when absent).
func bindUpload(c echo.Context, logger *slog.Logger) (*uploadQuery, []usecase.RawRecord, error) {
	var query uploadQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return nil, nil, domainerrors.ErrValidationFailed.WithDetails("malformed query parameters")
	}
	if err := c.Validate(&query); err != nil {
		return nil, nil, err
	}

	format := codec.Format(query.Format)
	if format == "" {
		var err error
		if format, err = codec.FormatFromContentType(c.Request().Header.Get(echo.HeaderContentType)); err != nil {
			return nil, nil, domainerrors.ErrUnsupportedFormat.WithDetails(err.Error())
		}
	}

	records, err := codec.Decode(format, c.Request().Body)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), logger).Warn("Rejected upload body",
			slog.String("format", string(format)),
			slog.Any("error", err),
		)
		if errors.Is(err, codec.ErrUnsupportedFormat) {
			return nil, nil, domainerrors.ErrUnsupportedFormat.WithDetails(err.Error())
		}

		return nil, nil, domainerrors.ErrInvalidUpload.WithDetails(err.Error())
	}

	return &query, records, nil
}

// respondBatch writes the created records, or the whole batch result when diagnostics were requested.
func respondBatch[T any](c echo.Context, query *uploadQuery, result *usecase.BatchResult[T]) error {
	if query.Diagnostics {
		return response.Success(c, http.StatusCreated, result)
	}

	return response.Success(c, http.StatusCreated, result.Succeeded)
}
