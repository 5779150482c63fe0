package memory

import (
	"context"
	"slices"
	"sync"

	"bank-ledger/internal/core/domain"
	"bank-ledger/pkg/apperror"

	"github.com/google/uuid"
)

// OperationRepo implements ports.OperationRepository in process memory.
// Stored operations are copied on the way in and out so callers never hold
// references into the ledger.
type OperationRepo struct {
	mu      sync.RWMutex
	ledgers map[uuid.UUID][]domain.Operation
}

// NewOperationRepo creates an empty repository. Accounts must be opened
// before operations can be appended to them.
func NewOperationRepo(accountIDs ...uuid.UUID) *OperationRepo {
	r := &OperationRepo{ledgers: make(map[uuid.UUID][]domain.Operation)}
	for _, id := range accountIDs {
		r.ledgers[id] = nil
	}
	return r
}

// OpenAccount registers an account with an empty ledger. Opening an
// existing account is a no-op.
func (r *OperationRepo) OpenAccount(accountID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ledgers[accountID]; !ok {
		r.ledgers[accountID] = nil
	}
}

func (r *OperationRepo) GetLastOperation(_ context.Context, accountID uuid.UUID) (*domain.Operation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ledger, ok := r.ledgers[accountID]
	if !ok {
		return nil, apperror.ErrAccountNotFound()
	}
	if len(ledger) == 0 {
		return nil, nil
	}
	last := ledger[len(ledger)-1]
	return &last, nil
}

func (r *OperationRepo) GetOperations(_ context.Context, accountID uuid.UUID) ([]domain.Operation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ledger, ok := r.ledgers[accountID]
	if !ok {
		return nil, apperror.ErrAccountNotFound()
	}
	if ledger == nil {
		return []domain.Operation{}, nil
	}
	return slices.Clone(ledger), nil
}

func (r *OperationRepo) AddOperation(_ context.Context, op *domain.Operation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ledger, ok := r.ledgers[op.AccountID]
	if !ok {
		return apperror.ErrAccountNotFound()
	}
	r.ledgers[op.AccountID] = append(ledger, *op)
	return nil
}
