package handler

import (
	"log/slog"
	"net/http"

	"github.com/Ulrich-Yao/website/internal/delivery/api/response"
	"github.com/Ulrich-Yao/website/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// QuestionHandlerParams holds dependencies for QuestionHandler, injected by Fx.
type QuestionHandlerParams struct {
	fx.In

	GameUC usecase.GameUsecase
	Logger *slog.Logger
}

// QuestionHandler holds dependencies for quiz question handlers.
type QuestionHandler struct {
	gameUC usecase.GameUsecase
	logger *slog.Logger
}

// NewQuestionHandler is the constructor for QuestionHandler.
func NewQuestionHandler(params QuestionHandlerParams) *QuestionHandler {
	return &QuestionHandler{
		gameUC: params.GameUC,
		logger: params.Logger,
	}
}

// QuestionRequest represents the writable quiz question fields. Unused
// option slots stay empty.
type QuestionRequest struct {
	Text        string `json:"text" validate:"required"`
	OptionOne   string `json:"option_one"`
	OptionTwo   string `json:"option_two"`
	OptionThree string `json:"option_three"`
	OptionFour  string `json:"option_four"`
	OptionFive  string `json:"option_five"`
	Answer      string `json:"answer"`
}

func (r *QuestionRequest) toInput() usecase.QuestionInput {
	return usecase.QuestionInput{
		Text:        r.Text,
		OptionOne:   r.OptionOne,
		OptionTwo:   r.OptionTwo,
		OptionThree: r.OptionThree,
		OptionFour:  r.OptionFour,
		OptionFive:  r.OptionFive,
		Answer:      r.Answer,
	}
}

// List returns all quiz questions, ordered by text.
func (h *QuestionHandler) List(c echo.Context) error {
	questions, err := h.gameUC.ListQuestions(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, questions)
}

// Get returns one quiz question by id.
func (h *QuestionHandler) Get(c echo.Context) error {
	question, err := h.gameUC.GetQuestion(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, question)
}

// Create adds a quiz question.
func (h *QuestionHandler) Create(c echo.Context) error {
	var req QuestionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid question input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	question, err := h.gameUC.CreateQuestion(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, question)
}

// Update overwrites a quiz question.
func (h *QuestionHandler) Update(c echo.Context) error {
	var req QuestionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid question input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	question, err := h.gameUC.UpdateQuestion(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, question)
}

// Delete removes a quiz question. Unknown ids succeed silently.
func (h *QuestionHandler) Delete(c echo.Context) error {
	if err := h.gameUC.DeleteQuestion(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Question deleted"})
}
