package handler

import (
	"log/slog"
	"net/http"

	"github.com/Ulrich-Yao/website/internal/delivery/api/response"
	"github.com/Ulrich-Yao/website/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for product handlers.
type ProductHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler.
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ProductRequest represents the writable product fields. Prices arrive as
// JSON numbers or strings; decimal handles both without float drift.
type ProductRequest struct {
	Name         string          `json:"name" validate:"required"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	PriceWithVAT decimal.Decimal `json:"price_with_vat"`
	Category     string          `json:"category"`
	Photo        string          `json:"photo"`
	KeyFeatures  string          `json:"key_features"`
	Available    bool            `json:"available"`
}

func (r *ProductRequest) toInput() usecase.ProductInput {
	return usecase.ProductInput{
		Name:         r.Name,
		Description:  r.Description,
		Price:        r.Price,
		PriceWithVAT: r.PriceWithVAT,
		Category:     r.Category,
		Photo:        r.Photo,
		KeyFeatures:  r.KeyFeatures,
		Available:    r.Available,
	}
}

// List returns all products, ordered by name.
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.catalogUC.ListProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// Get returns one product by id.
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.catalogUC.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// Create adds a product.
func (h *ProductHandler) Create(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// Update overwrites a product.
func (h *ProductHandler) Update(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.catalogUC.UpdateProduct(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// Delete removes a product. Unknown ids succeed silently.
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.catalogUC.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product deleted"})
}
