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

// TransactionHandlerParams holds dependencies for TransactionHandler, injected by Fx.
type TransactionHandlerParams struct {
	fx.In

	TransactionUC usecase.TransactionUsecase
	Logger        *slog.Logger
}

// TransactionHandler holds dependencies for transaction handlers.
type TransactionHandler struct {
	transactionUC usecase.TransactionUsecase
	logger        *slog.Logger
}

// NewTransactionHandler is the constructor for TransactionHandler.
func NewTransactionHandler(params TransactionHandlerParams) *TransactionHandler {
	return &TransactionHandler{
		transactionUC: params.TransactionUC,
		logger:        params.Logger,
	}
}

// TransactionRequest represents the writable transaction fields.
type TransactionRequest struct {
	User    string          `json:"user" validate:"required"`
	Coins   int             `json:"coins"`
	Status  string          `json:"status"`
	Amount  decimal.Decimal `json:"amount"`
	Type    string          `json:"type"`
	Profile string          `json:"profile"`
	Network string          `json:"network"`
}

func (r *TransactionRequest) toInput() usecase.TransactionInput {
	return usecase.TransactionInput{
		User:    r.User,
		Coins:   r.Coins,
		Status:  r.Status,
		Amount:  r.Amount,
		Type:    r.Type,
		Profile: r.Profile,
		Network: r.Network,
	}
}

// List returns all transactions, newest first.
func (h *TransactionHandler) List(c echo.Context) error {
	transactions, err := h.transactionUC.ListTransactions(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, transactions)
}

// Get returns one transaction by id.
func (h *TransactionHandler) Get(c echo.Context) error {
	transaction, err := h.transactionUC.GetTransaction(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, transaction)
}

// Create records a transaction.
func (h *TransactionHandler) Create(c echo.Context) error {
	var req TransactionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transaction input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	transaction, err := h.transactionUC.CreateTransaction(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, transaction)
}

// Update overwrites a transaction.
func (h *TransactionHandler) Update(c echo.Context) error {
	var req TransactionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transaction input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	transaction, err := h.transactionUC.UpdateTransaction(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, transaction)
}

// Delete removes a transaction. Unknown ids succeed silently.
func (h *TransactionHandler) Delete(c echo.Context) error {
	if err := h.transactionUC.DeleteTransaction(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Transaction deleted"})
}
