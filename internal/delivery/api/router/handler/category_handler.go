package handler

import (
	"log/slog"
	"net/http"

	"github.com/Ulrich-Yao/website/internal/delivery/api/response"
	"github.com/Ulrich-Yao/website/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CategoryHandlerParams holds dependencies for CategoryHandler, injected by Fx.
type CategoryHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CategoryHandler holds dependencies for category handlers.
type CategoryHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler.
func NewCategoryHandler(params CategoryHandlerParams) *CategoryHandler {
	return &CategoryHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// CategoryRequest represents the writable category fields.
type CategoryRequest struct {
	Name  string `json:"name" validate:"required"`
	Photo string `json:"photo"`
}

// List returns all categories, ordered by name.
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories)
}

// Get returns one category by id.
func (h *CategoryHandler) Get(c echo.Context) error {
	category, err := h.catalogUC.GetCategory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, category)
}

// Create adds a category.
func (h *CategoryHandler) Create(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	category, err := h.catalogUC.CreateCategory(c.Request().Context(), usecase.CategoryInput{
		Name:  req.Name,
		Photo: req.Photo,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, category)
}

// Update overwrites a category.
func (h *CategoryHandler) Update(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	category, err := h.catalogUC.UpdateCategory(c.Request().Context(), c.Param("id"), usecase.CategoryInput{
		Name:  req.Name,
		Photo: req.Photo,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, category)
}

// Delete removes a category. Unknown ids succeed silently.
func (h *CategoryHandler) Delete(c echo.Context) error {
	if err := h.catalogUC.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Category deleted"})
}
