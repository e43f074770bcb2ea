package handler

import (
	"log/slog"
	"net/http"

	"github.com/Ulrich-Yao/website/internal/delivery/api/response"
	"github.com/Ulrich-Yao/website/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	GameUC usecase.GameUsecase
	Logger *slog.Logger
}

// ProfileHandler holds dependencies for game profile handlers.
type ProfileHandler struct {
	gameUC usecase.GameUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		gameUC: params.GameUC,
		logger: params.Logger,
	}
}

// ProfileRequest represents the writable game profile fields.
type ProfileRequest struct {
	Name        string `json:"name" validate:"required"`
	Photo       string `json:"photo"`
	Description string `json:"description"`
	Color       string `json:"color"`
	PlayTime    string `json:"play_time"`
	Additional  string `json:"additional"`
	CanWin      string `json:"can_win"`
	Position    int    `json:"position"`
	Active      bool   `json:"active"`
}

func (r *ProfileRequest) toInput() usecase.ProfileInput {
	return usecase.ProfileInput{
		Name:        r.Name,
		Photo:       r.Photo,
		Description: r.Description,
		Color:       r.Color,
		PlayTime:    r.PlayTime,
		Additional:  r.Additional,
		CanWin:      r.CanWin,
		Position:    r.Position,
		Active:      r.Active,
	}
}

// List returns all game profiles in display order.
func (h *ProfileHandler) List(c echo.Context) error {
	profiles, err := h.gameUC.ListProfiles(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profiles)
}

// Get returns one game profile by id.
func (h *ProfileHandler) Get(c echo.Context) error {
	profile, err := h.gameUC.GetProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// Create adds a game profile.
func (h *ProfileHandler) Create(c echo.Context) error {
	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	profile, err := h.gameUC.CreateProfile(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, profile)
}

// Update overwrites a game profile.
func (h *ProfileHandler) Update(c echo.Context) error {
	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	profile, err := h.gameUC.UpdateProfile(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// Delete removes a game profile. Unknown ids succeed silently.
func (h *ProfileHandler) Delete(c echo.Context) error {
	if err := h.gameUC.DeleteProfile(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Profile deleted"})
}
