package postgres

import (
	"context"
	"errors"
	"fmt"

	"bank-ledger/internal/core/domain"
	"bank-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const operationColumns = `id, account_id, amount::text, balance::text, date, operation_type`

// OperationRepo implements ports.OperationRepository on PostgreSQL.
// Insertion order is the bigserial seq column; amounts and balances travel
// as text so their scale survives the round trip.
type OperationRepo struct {
	pool Pool
}

func NewOperationRepo(pool Pool) *OperationRepo {
	return &OperationRepo{pool: pool}
}

// OpenAccount inserts the account row if it does not exist yet.
func (r *OperationRepo) OpenAccount(ctx context.Context, accountID uuid.UUID) error {
	query := `INSERT INTO accounts (id) VALUES ($1) ON CONFLICT (id) DO NOTHING`

	if _, err := r.pool.Exec(ctx, query, accountID); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("insert account: %w", err))
	}
	return nil
}

func (r *OperationRepo) GetLastOperation(ctx context.Context, accountID uuid.UUID) (*domain.Operation, error) {
	if err := r.ensureAccount(ctx, accountID); err != nil {
		return nil, err
	}

	query := `SELECT ` + operationColumns + `
		FROM operations WHERE account_id = $1
		ORDER BY seq DESC LIMIT 1`

	op, err := scanOperation(r.pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get last operation: %w", err))
	}
	return op, nil
}

func (r *OperationRepo) GetOperations(ctx context.Context, accountID uuid.UUID) ([]domain.Operation, error) {
	if err := r.ensureAccount(ctx, accountID); err != nil {
		return nil, err
	}

	query := `SELECT ` + operationColumns + `
		FROM operations WHERE account_id = $1
		ORDER BY seq ASC`

	rows, err := r.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list operations: %w", err))
	}
	defer rows.Close()

	ops := []domain.Operation{}
	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("scan operation: %w", err))
		}
		ops = append(ops, *op)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("iterate operations: %w", err))
	}
	return ops, nil
}

// AddOperation appends op only if its account exists; zero affected rows
// means the account is unknown.
func (r *OperationRepo) AddOperation(ctx context.Context, op *domain.Operation) error {
	query := `INSERT INTO operations (id, account_id, amount, balance, date, operation_type)
		SELECT $1, $2, $3::numeric, $4::numeric, $5, $6
		WHERE EXISTS (SELECT 1 FROM accounts WHERE id = $2)`

	tag, err := r.pool.Exec(ctx, query,
		op.ID, op.AccountID,
		domain.FormatDecimal(op.Amount), domain.FormatDecimal(op.Balance),
		op.Date, string(op.OperationType),
	)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("insert operation: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrAccountNotFound()
	}
	return nil
}

func (r *OperationRepo) ensureAccount(ctx context.Context, accountID uuid.UUID) error {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM accounts WHERE id = $1)`, accountID).Scan(&exists)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("check account: %w", err))
	}
	if !exists {
		return apperror.ErrAccountNotFound()
	}
	return nil
}

func scanOperation(row pgx.Row) (*domain.Operation, error) {
	var (
		op              domain.Operation
		amount, balance string
		opType          string
	)
	if err := row.Scan(&op.ID, &op.AccountID, &amount, &balance, &op.Date, &opType); err != nil {
		return nil, err
	}

	var err error
	if op.Amount, err = domain.ParseDecimal(amount); err != nil {
		return nil, fmt.Errorf("parse amount %q: %w", amount, err)
	}
	if op.Balance, err = domain.ParseDecimal(balance); err != nil {
		return nil, fmt.Errorf("parse balance %q: %w", balance, err)
	}
	op.OperationType = domain.OperationType(opType)
	if !op.OperationType.IsValid() {
		return nil, fmt.Errorf("unknown operation type %q", opType)
	}
	return &op, nil
}
