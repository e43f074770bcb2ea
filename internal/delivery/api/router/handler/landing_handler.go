package handler

import (
	"log/slog"
	"net/http"

	"github.com/Ulrich-Yao/website/internal/delivery/api/response"
	"github.com/Ulrich-Yao/website/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LandingHandlerParams holds dependencies for LandingHandler, injected by Fx.
type LandingHandlerParams struct {
	fx.In

	ContentUC usecase.ContentUsecase
	Logger    *slog.Logger
}

// LandingHandler holds dependencies for landing banner handlers.
type LandingHandler struct {
	contentUC usecase.ContentUsecase
	logger    *slog.Logger
}

// NewLandingHandler is the constructor for LandingHandler.
func NewLandingHandler(params LandingHandlerParams) *LandingHandler {
	return &LandingHandler{
		contentUC: params.ContentUC,
		logger:    params.Logger,
	}
}

// LandingRequest represents the writable landing banner fields.
type LandingRequest struct {
	Title       string `json:"title" validate:"required"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Photo       string `json:"photo"`
}

func (r *LandingRequest) toInput() usecase.LandingInput {
	return usecase.LandingInput{
		Title:       r.Title,
		Subtitle:    r.Subtitle,
		Description: r.Description,
		Photo:       r.Photo,
	}
}

// List returns all landing banners, ordered by title.
func (h *LandingHandler) List(c echo.Context) error {
	banners, err := h.contentUC.ListLanding(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, banners)
}

// Get returns one landing banner by id.
func (h *LandingHandler) Get(c echo.Context) error {
	banner, err := h.contentUC.GetLanding(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, banner)
}

// Create adds a landing banner.
func (h *LandingHandler) Create(c echo.Context) error {
	var req LandingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid landing banner input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	banner, err := h.contentUC.CreateLanding(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, banner)
}

// Update overwrites a landing banner.
func (h *LandingHandler) Update(c echo.Context) error {
	var req LandingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid landing banner input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	banner, err := h.contentUC.UpdateLanding(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, banner)
}

// Delete removes a landing banner. Unknown ids succeed silently.
func (h *LandingHandler) Delete(c echo.Context) error {
	if err := h.contentUC.DeleteLanding(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Landing banner deleted"})
}
