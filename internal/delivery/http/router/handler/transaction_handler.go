package handler

import (
	"log/slog"
	"net/http"

	"venmito/internal/delivery/http/response"
	"venmito/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TransactionHandlerParams holds dependencies for TransactionHandler, injected by Fx.
type TransactionHandlerParams struct {
	fx.In

	TransactionUC usecase.TransactionUsecase
	Logger        *slog.Logger
}

// TransactionHandler serves transaction uploads, listings and the item catalog.
type TransactionHandler struct {
	transactionUC usecase.TransactionUsecase
	logger        *slog.Logger
}

// NewTransactionHandler is the constructor for TransactionHandler
func NewTransactionHandler(params TransactionHandlerParams) *TransactionHandler {
	return &TransactionHandler{
		transactionUC: params.TransactionUC,
		logger:        params.Logger,
	}
}

// Upload handles POST /transactions/upload
func (h *TransactionHandler) Upload(c echo.Context) error {
	query, records, err := bindUpload(c, h.logger)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.transactionUC.UploadTransactions(c.Request().Context(), records)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return respondBatch(c, query, result)
}

// List handles GET /transactions
func (h *TransactionHandler) List(c echo.Context) error {
	transactions, err := h.transactionUC.ListTransactions(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, transactions)
}

// ListItems handles GET /items
func (h *TransactionHandler) ListItems(c echo.Context) error {
	items, err := h.transactionUC.ListItems(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}
