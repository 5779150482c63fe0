package service

import (
	"context"

	"bank-ledger/internal/core/domain"
	"bank-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// PublishingService announces every successfully appended operation.
// The operation is already stored when publishing runs, so a publish failure
// is logged and the write still succeeds.
type PublishingService struct {
	inner ports.BankAccountService
	pub   ports.OperationPublisher
	log   zerolog.Logger
}

func NewPublishingService(inner ports.BankAccountService, pub ports.OperationPublisher, log zerolog.Logger) *PublishingService {
	return &PublishingService{
		inner: inner,
		pub:   pub,
		log:   log,
	}
}

func (s *PublishingService) PerformDeposit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal) (*domain.Operation, error) {
	op, err := s.inner.PerformDeposit(ctx, accountID, amount)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, op)
	return op, nil
}

func (s *PublishingService) PerformWithdrawal(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal) (*domain.Operation, error) {
	op, err := s.inner.PerformWithdrawal(ctx, accountID, amount)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, op)
	return op, nil
}

func (s *PublishingService) DisplayHistory(ctx context.Context, accountID uuid.UUID) (string, error) {
	return s.inner.DisplayHistory(ctx, accountID)
}

func (s *PublishingService) publish(ctx context.Context, op *domain.Operation) {
	if err := s.pub.PublishOperation(context.WithoutCancel(ctx), op); err != nil {
		s.log.Error().
			Err(err).
			Str("operation_id", op.ID.String()).
			Str("account_id", op.AccountID.String()).
			Msg("failed to publish operation event")
	}
}
