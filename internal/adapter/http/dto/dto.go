package dto

import (
	"time"

	"bank-ledger/internal/core/domain"
)

// AmountRequest is the request body for deposits and withdrawals.
// Amount is a decimal string such as "500.00"; positivity is checked by the
// service so that it reports the ledger's own error code.
type AmountRequest struct {
	Amount string `json:"amount" binding:"required,decimal_amount"`
}

// OperationResponse is the response body for an appended operation.
type OperationResponse struct {
	ID            string `json:"id"`
	AccountID     string `json:"account_id"`
	OperationType string `json:"operation_type"`
	Amount        string `json:"amount"`
	Balance       string `json:"balance"`
	Date          string `json:"date"`
}

func NewOperationResponse(op *domain.Operation) OperationResponse {
	return OperationResponse{
		ID:            op.ID.String(),
		AccountID:     op.AccountID.String(),
		OperationType: string(op.OperationType),
		Amount:        domain.FormatDecimal(op.Amount),
		Balance:       domain.FormatDecimal(op.Balance),
		Date:          op.Date.Format(time.RFC3339),
	}
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]DependencyStatus `json:"dependencies"`
}

type DependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}
