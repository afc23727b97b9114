package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cryptopay-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const withdrawalColumnList = `id, merchant_id, wallet_id, kind, payment_id, crypto_type, network,
	amount, to_address, status, approval, gas_estimate, transaction_hash, failure_reason,
	gas_validated_at, processing_started_at, completed_at, created_at, updated_at`

// WithdrawalRepo implements ports.WithdrawalRepository.
type WithdrawalRepo struct {
	pool Pool
}

// NewWithdrawalRepo creates a new WithdrawalRepo.
func NewWithdrawalRepo(pool Pool) *WithdrawalRepo {
	return &WithdrawalRepo{pool: pool}
}

// Create inserts a withdrawal within a database transaction.
func (r *WithdrawalRepo) Create(ctx context.Context, tx pgx.Tx, w *domain.Withdrawal) error {
	query := `INSERT INTO withdrawals (` + withdrawalColumnList + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

	_, err := tx.Exec(ctx, query, withdrawalArgs(w)...)
	if err != nil {
		return wrapWriteErr("insert withdrawal", err)
	}
	return nil
}

// GetByID fetches a withdrawal by its UUID.
func (r *WithdrawalRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumnList + ` FROM withdrawals WHERE id = $1`
	return scanWithdrawal(r.pool.QueryRow(ctx, query, id), "get withdrawal by id")
}

// GetByIDForUpdate locks a withdrawal row.
func (r *WithdrawalRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumnList + ` FROM withdrawals WHERE id = $1 FOR UPDATE`
	return scanWithdrawal(tx.QueryRow(ctx, query, id), "get withdrawal for update")
}

// GetByTxHashForUpdate locks the withdrawal that broadcast txHash on network.
func (r *WithdrawalRepo) GetByTxHashForUpdate(ctx context.Context, tx pgx.Tx, network domain.Network, txHash string) (*domain.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumnList + ` FROM withdrawals
		WHERE network = $1 AND transaction_hash = $2 FOR UPDATE`
	return scanWithdrawal(tx.QueryRow(ctx, query, network, txHash), "get withdrawal by tx hash")
}

// HasActiveForPayment reports whether a forward or refund for the payment is
// in flight or already completed.
func (r *WithdrawalRepo) HasActiveForPayment(ctx context.Context, tx pgx.Tx, paymentID string) (bool, error) {
	query := `SELECT EXISTS(
		SELECT 1 FROM withdrawals WHERE payment_id = $1 AND status NOT IN ('FAILED', 'REJECTED')
	)`

	var exists bool
	if err := tx.QueryRow(ctx, query, paymentID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check active withdrawal: %w", err)
	}
	return exists, nil
}

// Update writes the mutable withdrawal fields.
func (r *WithdrawalRepo) Update(ctx context.Context, tx pgx.Tx, w *domain.Withdrawal) error {
	query := `UPDATE withdrawals
		SET status = $1, approval = $2, gas_estimate = $3, transaction_hash = $4, failure_reason = $5,
			gas_validated_at = $6, processing_started_at = $7, completed_at = $8, updated_at = $9
		WHERE id = $10`

	tag, err := tx.Exec(ctx, query,
		w.Status, w.Approval, w.GasEstimate, w.TransactionHash, w.FailureReason,
		w.GasValidatedAt, w.ProcessingStartedAt, w.CompletedAt, w.UpdatedAt, w.ID,
	)
	if err != nil {
		return wrapWriteErr("update withdrawal", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("withdrawal not found: %s", w.ID)
	}
	return nil
}

// ListStaleProcessing returns withdrawals stuck in PROCESSING since before startedBefore.
func (r *WithdrawalRepo) ListStaleProcessing(ctx context.Context, startedBefore time.Time, limit int) ([]domain.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumnList + ` FROM withdrawals
		WHERE status = 'PROCESSING' AND processing_started_at < $1
		ORDER BY processing_started_at ASC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, startedBefore, limit)
	if err != nil {
		return nil, fmt.Errorf("list stale withdrawals: %w", err)
	}
	defer rows.Close()

	var list []domain.Withdrawal
	for rows.Next() {
		w, err := scanWithdrawal(rows, "scan withdrawal row")
		if err != nil {
			return nil, err
		}
		list = append(list, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate withdrawal rows: %w", err)
	}
	return list, nil
}

func withdrawalArgs(w *domain.Withdrawal) []any {
	return []any{
		w.ID, w.MerchantID, w.WalletID, w.Kind, w.PaymentID, w.CryptoType, w.Network,
		w.Amount, w.ToAddress, w.Status, w.Approval, w.GasEstimate, w.TransactionHash, w.FailureReason,
		w.GasValidatedAt, w.ProcessingStartedAt, w.CompletedAt, w.CreatedAt, w.UpdatedAt,
	}
}

func scanWithdrawal(row pgx.Row, op string) (*domain.Withdrawal, error) {
	w := &domain.Withdrawal{}
	err := row.Scan(
		&w.ID, &w.MerchantID, &w.WalletID, &w.Kind, &w.PaymentID, &w.CryptoType, &w.Network,
		&w.Amount, &w.ToAddress, &w.Status, &w.Approval, &w.GasEstimate, &w.TransactionHash, &w.FailureReason,
		&w.GasValidatedAt, &w.ProcessingStartedAt, &w.CompletedAt, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return w, nil
}
