package handler

import (
	"log/slog"
	"net/http"

	"venmito/internal/delivery/http/response"
	"venmito/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TransferHandlerParams holds dependencies for TransferHandler, injected by Fx.
type TransferHandlerParams struct {
	fx.In

	TransferUC usecase.TransferUsecase
	Logger     *slog.Logger
}

// TransferHandler serves transfer uploads and listings.
type TransferHandler struct {
	transferUC usecase.TransferUsecase
	logger     *slog.Logger
}

// NewTransferHandler is the constructor for TransferHandler
func NewTransferHandler(params TransferHandlerParams) *TransferHandler {
	return &TransferHandler{
		transferUC: params.TransferUC,
		logger:     params.Logger,
	}
}

// Upload handles POST /transfers/upload. A batch where no transfer resolves answers 422.
func (h *TransferHandler) Upload(c echo.Context) error {
	query, records, err := bindUpload(c, h.logger)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.transferUC.UploadTransfers(c.Request().Context(), records)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return respondBatch(c, query, result)
}

// List handles GET /transfers
func (h *TransferHandler) List(c echo.Context) error {
	transfers, err := h.transferUC.ListTransfers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, transfers)
}
