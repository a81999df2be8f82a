package handler

import (
	"log/slog"
	"net/http"

	"venmito/internal/delivery/http/response"
	"venmito/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PeopleHandlerParams holds dependencies for PeopleHandler, injected by Fx.
type PeopleHandlerParams struct {
	fx.In

	PeopleUC usecase.PeopleUsecase
	Logger   *slog.Logger
}

// PeopleHandler serves people uploads and listings.
type PeopleHandler struct {
	peopleUC usecase.PeopleUsecase
	logger   *slog.Logger
}

// NewPeopleHandler is the constructor for PeopleHandler
func NewPeopleHandler(params PeopleHandlerParams) *PeopleHandler {
	return &PeopleHandler{
		peopleUC: params.PeopleUC,
		logger:   params.Logger,
	}
}

// Upload handles POST /people/upload
func (h *PeopleHandler) Upload(c echo.Context) error {
	query, records, err := bindUpload(c, h.logger)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.peopleUC.UploadPeople(c.Request().Context(), records)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return respondBatch(c, query, result)
}

// List handles GET /people
func (h *PeopleHandler) List(c echo.Context) error {
	people, err := h.peopleUC.ListPeople(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, people)
}
