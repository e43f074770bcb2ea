package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Ulrich-Yao/website/internal/delivery/api/validator"
	"github.com/Ulrich-Yao/website/internal/domain/entity"
	domainerrors "github.com/Ulrich-Yao/website/internal/domain/errors"
	mockUsecase "github.com/Ulrich-Yao/website/internal/mocks/usecase"
	"github.com/Ulrich-Yao/website/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCategoryHandlerFixture(t *testing.T) (*CategoryHandler, *mockUsecase.MockCatalogUsecase, *echo.Echo) {
	catalogUC := mockUsecase.NewMockCatalogUsecase(t)
	h := &CategoryHandler{
		catalogUC: catalogUC,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	e := echo.New()
	e.Validator = validator.New()

	return h, catalogUC, e
}

func TestCategoryHandler_List(t *testing.T) {
	h, catalogUC, e := newCategoryHandlerFixture(t)

	catalogUC.On("ListCategories", mock.Anything).Return([]*entity.Category{
		{ID: "c1", Name: "Accessories"},
		{ID: "c2", Name: "Consoles"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Accessories")
	assert.Contains(t, rec.Body.String(), "Consoles")
}

func TestCategoryHandler_Create(t *testing.T) {
	h, catalogUC, e := newCategoryHandlerFixture(t)

	created := &entity.Category{ID: "c3", Name: "Arcade", Photo: "/uploads/a.png"}
	catalogUC.On("CreateCategory", mock.Anything, usecase.CategoryInput{Name: "Arcade", Photo: "/uploads/a.png"}).
		Return(created, nil)

	c, rec := postJSON(e, "/api/categories", `{"name":"Arcade","photo":"/uploads/a.png"}`)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"c3"`)
}

func TestCategoryHandler_Create_MissingName(t *testing.T) {
	h, _, e := newCategoryHandlerFixture(t)

	c, rec := postJSON(e, "/api/categories", `{"photo":"/uploads/a.png"}`)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestCategoryHandler_Get_NotFound(t *testing.T) {
	h, catalogUC, e := newCategoryHandlerFixture(t)

	catalogUC.On("GetCategory", mock.Anything, "missing").
		Return(nil, domainerrors.ErrNotFound.WrapMessage("category not found"))

	req := httptest.NewRequest(http.MethodGet, "/api/categories/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCategoryHandler_Delete(t *testing.T) {
	h, catalogUC, e := newCategoryHandlerFixture(t)

	catalogUC.On("DeleteCategory", mock.Anything, "c1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/categories/c1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("c1")

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
