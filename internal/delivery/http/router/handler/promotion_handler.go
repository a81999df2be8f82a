package handler

import (
	"log/slog"
	"net/http"

	"venmito/internal/delivery/http/response"
	"venmito/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PromotionHandlerParams holds dependencies for PromotionHandler, injected by Fx.
type PromotionHandlerParams struct {
	fx.In

	PromotionUC usecase.PromotionUsecase
	Logger      *slog.Logger
}

// PromotionHandler serves promotion uploads and listings.
type PromotionHandler struct {
	promotionUC usecase.PromotionUsecase
	logger      *slog.Logger
}

// NewPromotionHandler is the constructor for PromotionHandler
func NewPromotionHandler(params PromotionHandlerParams) *PromotionHandler {
	return &PromotionHandler{
		promotionUC: params.PromotionUC,
		logger:      params.Logger,
	}
}

// Upload handles POST /promotions/upload
func (h *PromotionHandler) Upload(c echo.Context) error {
	query, records, err := bindUpload(c, h.logger)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.promotionUC.UploadPromotions(c.Request().Context(), records)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return respondBatch(c, query, result)
}

// List handles GET /promotions
func (h *PromotionHandler) List(c echo.Context) error {
	promotions, err := h.promotionUC.ListPromotions(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, promotions)
}
