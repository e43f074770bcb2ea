package handler

import (
	"log/slog"
	"net/http"

	"github.com/Ulrich-Yao/website/internal/delivery/api/response"
	"github.com/Ulrich-Yao/website/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NewsHandlerParams holds dependencies for NewsHandler, injected by Fx.
type NewsHandlerParams struct {
	fx.In

	ContentUC usecase.ContentUsecase
	Logger    *slog.Logger
}

// NewsHandler holds dependencies for news handlers.
type NewsHandler struct {
	contentUC usecase.ContentUsecase
	logger    *slog.Logger
}

// NewNewsHandler is the constructor for NewsHandler.
func NewNewsHandler(params NewsHandlerParams) *NewsHandler {
	return &NewsHandler{
		contentUC: params.ContentUC,
		logger:    params.Logger,
	}
}

// NewsRequest represents the writable news fields.
type NewsRequest struct {
	Author   string `json:"author" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Subtitle string `json:"subtitle"`
	Body     string `json:"body"`
	Photo    string `json:"photo"`
	Visible  bool   `json:"visible"`
	Movie    bool   `json:"movie"`
}

func (r *NewsRequest) toInput() usecase.NewsInput {
	return usecase.NewsInput{
		Author:   r.Author,
		Title:    r.Title,
		Subtitle: r.Subtitle,
		Body:     r.Body,
		Photo:    r.Photo,
		Visible:  r.Visible,
		Movie:    r.Movie,
	}
}

// List returns the whole feed, newest first, hidden posts included. The
// public frontend filters on the visible flag.
func (h *NewsHandler) List(c echo.Context) error {
	news, err := h.contentUC.ListNews(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, news)
}

// Get returns one news post by id.
func (h *NewsHandler) Get(c echo.Context) error {
	news, err := h.contentUC.GetNews(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, news)
}

// Create adds a news post.
func (h *NewsHandler) Create(c echo.Context) error {
	var req NewsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid news input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	news, err := h.contentUC.CreateNews(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, news)
}

// Update overwrites a news post.
func (h *NewsHandler) Update(c echo.Context) error {
	var req NewsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid news input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	news, err := h.contentUC.UpdateNews(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, news)
}

// Delete removes a news post. Unknown ids succeed silently.
func (h *NewsHandler) Delete(c echo.Context) error {
	if err := h.contentUC.DeleteNews(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "News deleted"})
}
