package ports

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"
	"time"

	"bank-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Clock yields the current local date-time.
type Clock interface {
	Now() time.Time
}

// IDProvider yields a fresh unique identifier on each call.
type IDProvider interface {
	Generate() uuid.UUID
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(subject uuid.UUID) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject   uuid.UUID
	ExpiresAt time.Time
}

// --- Service Ports (Business Logic) ---

// BankAccountService records deposits and withdrawals and renders statements.
type BankAccountService interface {
	PerformDeposit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal) (*domain.Operation, error)
	PerformWithdrawal(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal) (*domain.Operation, error)
	DisplayHistory(ctx context.Context, accountID uuid.UUID) (string, error)
}

// OperationPublisher announces appended operations to other systems.
type OperationPublisher interface {
	PublishOperation(ctx context.Context, op *domain.Operation) error
}
