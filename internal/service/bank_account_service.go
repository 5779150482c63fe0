package service

import (
	"context"

	"bank-ledger/internal/core/domain"
	"bank-ledger/internal/core/ports"
	"bank-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BankAccountServiceImpl implements ports.BankAccountService.
// It holds no mutable state; the repository owns the ledger.
type BankAccountServiceImpl struct {
	repo  ports.OperationRepository
	clock ports.Clock
	ids   ports.IDProvider
}

// NewBankAccountService creates a new BankAccountServiceImpl.
func NewBankAccountService(repo ports.OperationRepository, clock ports.Clock, ids ports.IDProvider) *BankAccountServiceImpl {
	return &BankAccountServiceImpl{
		repo:  repo,
		clock: clock,
		ids:   ids,
	}
}

// PerformDeposit appends a DEPOSIT carrying the previous balance plus amount.
func (s *BankAccountServiceImpl) PerformDeposit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal) (*domain.Operation, error) {
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	last, err := s.repo.GetLastOperation(ctx, accountID)
	if err != nil {
		return nil, err
	}

	newBalance := domain.BalanceOf(last).Add(amount)

	return s.append(ctx, accountID, amount, newBalance, domain.OperationTypeDeposit)
}

// PerformWithdrawal appends a WITHDRAWAL unless it would overdraw the account.
// Landing exactly on zero is allowed.
func (s *BankAccountServiceImpl) PerformWithdrawal(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal) (*domain.Operation, error) {
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	last, err := s.repo.GetLastOperation(ctx, accountID)
	if err != nil {
		return nil, err
	}

	newBalance := domain.BalanceOf(last).Sub(amount)
	if newBalance.IsNegative() {
		return nil, apperror.ErrInsufficientBalance()
	}

	return s.append(ctx, accountID, amount, newBalance, domain.OperationTypeWithdrawal)
}

// DisplayHistory renders the account statement, most recent operation first.
func (s *BankAccountServiceImpl) DisplayHistory(ctx context.Context, accountID uuid.UUID) (string, error) {
	ops, err := s.repo.GetOperations(ctx, accountID)
	if err != nil {
		return "", err
	}
	return RenderStatement(accountID, ops), nil
}

func (s *BankAccountServiceImpl) append(
	ctx context.Context,
	accountID uuid.UUID,
	amount, balance decimal.Decimal,
	opType domain.OperationType,
) (*domain.Operation, error) {
	op := &domain.Operation{
		ID:            s.ids.Generate(),
		AccountID:     accountID,
		Amount:        amount,
		Balance:       balance,
		Date:          s.clock.Now(),
		OperationType: opType,
	}

	if err := s.repo.AddOperation(ctx, op); err != nil {
		return nil, err
	}
	return op, nil
}
