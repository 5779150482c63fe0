package service

import (
	"context"
	"errors"

	"bank-ledger/internal/core/domain"
	"bank-ledger/internal/core/ports"
	"bank-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// SerializedService decorates a ports.BankAccountService so that writes to
// one account never interleave: the read-last / append pair of a deposit or
// withdrawal runs while holding the account lock. Reads are not locked.
type SerializedService struct {
	inner  ports.BankAccountService
	locker ports.AccountLocker
	log    zerolog.Logger
}

// NewSerializedService wraps inner with locker.
func NewSerializedService(inner ports.BankAccountService, locker ports.AccountLocker, log zerolog.Logger) *SerializedService {
	return &SerializedService{
		inner:  inner,
		locker: locker,
		log:    log,
	}
}

func (s *SerializedService) PerformDeposit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal) (*domain.Operation, error) {
	return s.withLock(ctx, accountID, func() (*domain.Operation, error) {
		return s.inner.PerformDeposit(ctx, accountID, amount)
	})
}

func (s *SerializedService) PerformWithdrawal(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal) (*domain.Operation, error) {
	return s.withLock(ctx, accountID, func() (*domain.Operation, error) {
		return s.inner.PerformWithdrawal(ctx, accountID, amount)
	})
}

func (s *SerializedService) DisplayHistory(ctx context.Context, accountID uuid.UUID) (string, error) {
	return s.inner.DisplayHistory(ctx, accountID)
}

func (s *SerializedService) withLock(ctx context.Context, accountID uuid.UUID, fn func() (*domain.Operation, error)) (*domain.Operation, error) {
	release, err := s.locker.Lock(ctx, accountID)
	if err != nil {
		s.log.Warn().Err(err).Str("account_id", accountID.String()).Msg("account lock not acquired")
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperror.ErrLockTimeout(err)
	}
	defer func() {
		// Release even if the caller's context is already cancelled.
		if err := release(context.WithoutCancel(ctx)); err != nil {
			s.log.Warn().Err(err).Str("account_id", accountID.String()).Msg("failed to release account lock")
		}
	}()

	return fn()
}
