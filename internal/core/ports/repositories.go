package ports

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"
	"time"

	"bank-ledger/internal/core/domain"

	"github.com/google/uuid"
)

// OperationRepository is the append-only per-account operation log.
// Every method fails with an apperror ACC_001 (AccountNotFound) when the
// account is unknown.
type OperationRepository interface {
	// GetLastOperation returns the most recently appended operation, or
	// nil, nil when the account exists but has no operations yet.
	GetLastOperation(ctx context.Context, accountID uuid.UUID) (*domain.Operation, error)
	// GetOperations returns every operation of the account in insertion order.
	GetOperations(ctx context.Context, accountID uuid.UUID) ([]domain.Operation, error)
	// AddOperation appends op to the log of op.AccountID.
	AddOperation(ctx context.Context, op *domain.Operation) error
}

// AccountLocker serializes writers of one account across processes.
type AccountLocker interface {
	// Lock blocks until the account lock is held or acquisition gives up.
	// The returned release func must be called exactly once.
	Lock(ctx context.Context, accountID uuid.UUID) (release func(context.Context) error, err error)
}

// LockOptions tunes AccountLocker implementations.
type LockOptions struct {
	TTL   time.Duration
	// Wait bounds acquisition. Zero waits as long as the caller's ctx allows.
	Wait  time.Duration
	Retry time.Duration
}
