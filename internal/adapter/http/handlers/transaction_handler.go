package handlers

import (
	"errors"
	"net/http"

	request "autoservice/internal/adapter/http/dto/request"
	response "autoservice/internal/adapter/http/dto/response"
	"autoservice/internal/usecase"
	"autoservice/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidTransactionPayload = pkg.NewDomainErrorSimple("INVALID_TRANSACTION_INPUT", "Invalid transaction payload", http.StatusBadRequest)
)

// TransactionHandler exposes the company ledger.
type TransactionHandler struct {
	usecase usecase.ILedgerUseCase
}

func NewTransactionHandler(uc usecase.ILedgerUseCase) *TransactionHandler {
	return &TransactionHandler{usecase: uc}
}

func (h *TransactionHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	txns, err := h.usecase.ListCompanyTransactions(ctx)
	if err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	balance, err := h.usecase.CompanyBalance(ctx)
	if err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.CompanyLedgerResponse{
		Transactions: response.FromTransactions(txns),
		Balance:      response.FromBalance(balance),
	})
}

// Create records a company transaction. A category naming a worker also
// writes the mirrored entry in that worker's ledger.
func (h *TransactionHandler) Create(c *gin.Context) {
	var payload request.TransactionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTransactionPayload.HTTPStatus, errInvalidTransactionPayload.ToHTTPError())
		return
	}

	txn, err := h.usecase.AddCompanyTransaction(c.Request.Context(), payload.ToTransactionInput())
	if err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromTransaction(txn))
}

func mapTransactionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRecordType), errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAtomicWriteFailed):
		return pkg.NewDomainError("ATOMIC_WRITE_FAILED", "Nothing was written, retry the operation", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
