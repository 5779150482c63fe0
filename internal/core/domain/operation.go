package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OperationType represents the direction of a money movement.
type OperationType string

const (
	OperationTypeDeposit    OperationType = "DEPOSIT"
	OperationTypeWithdrawal OperationType = "WITHDRAWAL"
)

// IsValid returns true for the known operation types.
func (t OperationType) IsValid() bool {
	return t == OperationTypeDeposit || t == OperationTypeWithdrawal
}

// Operation is an immutable ledger entry for one account.
// Amount is the magnitude of the movement; the sign comes from OperationType.
// Balance is the running balance right after this operation.
// It has no JSON form; transports render decimals with FormatDecimal.
type Operation struct {
	ID            uuid.UUID
	AccountID     uuid.UUID
	Amount        decimal.Decimal
	Balance       decimal.Decimal
	Date          time.Time
	OperationType OperationType
}

// SignedAmount returns Amount negated for withdrawals.
func (o *Operation) SignedAmount() decimal.Decimal {
	if o.OperationType == OperationTypeWithdrawal {
		return o.Amount.Neg()
	}
	return o.Amount
}

// BalanceOf returns the balance carried by the last operation, or zero when
// the ledger is empty.
func BalanceOf(last *Operation) decimal.Decimal {
	if last == nil {
		return decimal.Zero
	}
	return last.Balance
}
