package handler

import (
	"context"
	"errors"
	"net/http"

	"bank-ledger/internal/adapter/http/dto"
	"bank-ledger/internal/core/domain"
	"bank-ledger/internal/core/ports"
	"bank-ledger/pkg/apperror"
	"bank-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountHandler exposes the bank account service over HTTP.
type AccountHandler struct {
	svc ports.BankAccountService
}

func NewAccountHandler(svc ports.BankAccountService) *AccountHandler {
	return &AccountHandler{svc: svc}
}

// Deposit handles POST /api/v1/accounts/:id/deposits.
func (h *AccountHandler) Deposit(c *gin.Context) {
	h.write(c, h.svc.PerformDeposit)
}

// Withdraw handles POST /api/v1/accounts/:id/withdrawals.
func (h *AccountHandler) Withdraw(c *gin.Context) {
	h.write(c, h.svc.PerformWithdrawal)
}

// History handles GET /api/v1/accounts/:id/history. The statement is
// returned verbatim as plain text.
func (h *AccountHandler) History(c *gin.Context) {
	accountID, ok := bindAccountID(c)
	if !ok {
		return
	}

	statement, err := h.svc.DisplayHistory(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Text(c, http.StatusOK, statement)
}

type writeFunc func(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal) (*domain.Operation, error)

func (h *AccountHandler) write(c *gin.Context, perform writeFunc) {
	accountID, ok := bindAccountID(c)
	if !ok {
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("amount must be a decimal string"))
		return
	}
	amount, err := domain.ParseDecimal(req.Amount)
	if err != nil {
		response.Error(c, apperror.Validation("amount must be a decimal string"))
		return
	}

	op, err := perform(c.Request.Context(), accountID, amount)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, dto.NewOperationResponse(op))
}

func bindAccountID(c *gin.Context) (uuid.UUID, bool) {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("account id must be a UUID"))
		return uuid.Nil, false
	}
	return accountID, true
}

// respondError records err on the context for the request logger and maps
// unclassified failures to SYS_001.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		err = apperror.InternalError(err)
	}
	response.Error(c, err)
}
