package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const paymentColumnList = `id, merchant_id, order_id, crypto_type, network, wallet_mode, wallet_id, address,
	amount_usd, fee_usd, customer_amount_usd, merchant_net_usd, customer_pays_fee,
	crypto_amount, exchange_rate, received_amount, status, transaction_hash,
	confirmations, required_confirmations, description, forward_withdrawal_id,
	created_at, expires_at, confirmed_at, forwarded_at, updated_at`

// PaymentRepo implements ports.PaymentRepository.
type PaymentRepo struct {
	pool Pool
}

// NewPaymentRepo creates a new PaymentRepo.
func NewPaymentRepo(pool Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

// Create inserts a payment within a database transaction.
func (r *PaymentRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.Payment) error {
	query := `INSERT INTO payments (` + paymentColumnList + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)`

	_, err := tx.Exec(ctx, query,
		p.ID, p.MerchantID, p.OrderID, p.CryptoType, p.Network, p.WalletMode, p.WalletID, p.Address,
		p.AmountUSD, p.FeeUSD, p.CustomerAmountUSD, p.MerchantNetUSD, p.CustomerPaysFee,
		p.CryptoAmount, p.ExchangeRate, p.ReceivedAmount, p.Status, p.TransactionHash,
		p.Confirmations, p.RequiredConfirmations, p.Description, p.ForwardWithdrawalID,
		p.CreatedAt, p.ExpiresAt, p.ConfirmedAt, p.ForwardedAt, p.UpdatedAt,
	)
	if err != nil {
		return wrapWriteErr("insert payment", err)
	}
	return nil
}

// GetByID fetches a payment by its public ID.
func (r *PaymentRepo) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumnList + ` FROM payments WHERE id = $1`
	return scanPayment(r.pool.QueryRow(ctx, query, id), "get payment by id")
}

// GetByIDForUpdate locks a payment row.
func (r *PaymentRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumnList + ` FROM payments WHERE id = $1 FOR UPDATE`
	return scanPayment(tx.QueryRow(ctx, query, id), "get payment for update")
}

// GetByTxHashForUpdate locks the payment already bound to an on-chain transaction.
func (r *PaymentRepo) GetByTxHashForUpdate(ctx context.Context, tx pgx.Tx, network domain.Network, txHash string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumnList + ` FROM payments
		WHERE network = $1 AND transaction_hash = $2 FOR UPDATE`
	return scanPayment(tx.QueryRow(ctx, query, network, txHash), "get payment by tx hash")
}

// FindPendingForUpdate locks the oldest unbound PENDING payment at address
// that received covers. SKIP LOCKED lets concurrent deposits to the same
// address bind different payments.
func (r *PaymentRepo) FindPendingForUpdate(ctx context.Context, tx pgx.Tx, cryptoType domain.CryptoType, address string, received decimal.Decimal) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumnList + ` FROM payments
		WHERE crypto_type = $1 AND address = $2 AND status = 'PENDING'
			AND transaction_hash IS NULL AND crypto_amount <= $3
		ORDER BY created_at ASC
		LIMIT 1
		FOR UPDATE SKIP LOCKED`
	return scanPayment(tx.QueryRow(ctx, query, cryptoType, address, received), "find pending payment")
}

// Update writes the mutable payment fields.
func (r *PaymentRepo) Update(ctx context.Context, tx pgx.Tx, p *domain.Payment) error {
	query := `UPDATE payments
		SET status = $1, received_amount = $2, transaction_hash = $3, confirmations = $4,
			forward_withdrawal_id = $5, confirmed_at = $6, forwarded_at = $7, updated_at = $8
		WHERE id = $9`

	tag, err := tx.Exec(ctx, query,
		p.Status, p.ReceivedAmount, p.TransactionHash, p.Confirmations,
		p.ForwardWithdrawalID, p.ConfirmedAt, p.ForwardedAt, p.UpdatedAt, p.ID,
	)
	if err != nil {
		return wrapWriteErr("update payment", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payment not found: %s", p.ID)
	}
	return nil
}

// ListExpiredIDs returns PENDING payments whose window closed before now.
func (r *PaymentRepo) ListExpiredIDs(ctx context.Context, now time.Time, limit int) ([]string, error) {
	query := `SELECT id FROM payments
		WHERE status = 'PENDING' AND expires_at <= $1
		ORDER BY expires_at ASC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, now, limit)
	if err != nil {
		return nil, fmt.Errorf("list expired payments: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan expired payment id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expired payments: %w", err)
	}
	return ids, nil
}

// ListForwardable returns confirmed custodial payments still waiting to be
// forwarded, oldest confirmation first.
func (r *PaymentRepo) ListForwardable(ctx context.Context, confirmedBefore time.Time, maxAttempts, limit int) ([]string, error) {
	query := `SELECT p.id FROM payments p
		WHERE p.status = 'CONFIRMED' AND p.wallet_mode <> 'ADDRESS_ONLY'
			AND p.wallet_id IS NOT NULL AND p.confirmed_at <= $1
			AND COALESCE(left(p.transaction_hash, 8), '') <> 'sandbox_'
			AND NOT EXISTS (SELECT 1 FROM withdrawals w
				WHERE w.payment_id = p.id AND w.status IN ('CREATED', 'GAS_VALIDATED', 'PROCESSING', 'COMPLETED'))
			AND (SELECT COUNT(*) FROM withdrawals w
				WHERE w.payment_id = p.id AND w.kind = 'FORWARD') < $2
		ORDER BY p.confirmed_at ASC
		LIMIT $3`

	rows, err := r.pool.Query(ctx, query, confirmedBefore, maxAttempts, limit)
	if err != nil {
		return nil, fmt.Errorf("list forwardable payments: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan forwardable payment id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate forwardable payments: %w", err)
	}
	return ids, nil
}

// List fetches payments with filtering and pagination.
func (r *PaymentRepo) List(ctx context.Context, params ports.PaymentListParams) ([]domain.Payment, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	conditions = append(conditions, fmt.Sprintf("merchant_id = $%d", argIdx))
	args = append(args, params.MerchantID)
	argIdx++

	if params.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *params.Status)
		argIdx++
	}
	if params.CryptoType != nil {
		conditions = append(conditions, fmt.Sprintf("crypto_type = $%d", argIdx))
		args = append(args, *params.CryptoType)
		argIdx++
	}
	if params.WalletMode != nil {
		conditions = append(conditions, fmt.Sprintf("wallet_mode = $%d", argIdx))
		args = append(args, *params.WalletMode)
		argIdx++
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	// Count total
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM payments %s", where)
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count payments: %w", err)
	}

	// Fetch page
	dataQuery := fmt.Sprintf(`SELECT %s FROM payments %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		paymentColumnList, where, argIdx, argIdx+1)
	args = append(args, params.Limit, params.Offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows, "scan payment row")
		if err != nil {
			return nil, 0, err
		}
		payments = append(payments, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate payment rows: %w", err)
	}
	return payments, total, nil
}

// GetStats aggregates a merchant's payments created at or after since, or all
// of them when since is nil.
func (r *PaymentRepo) GetStats(ctx context.Context, merchantID uuid.UUID, since *time.Time) (*ports.PaymentStats, error) {
	args := []any{merchantID}
	condition := "merchant_id = $1"
	if since != nil {
		condition += " AND created_at >= $2"
		args = append(args, *since)
	}

	query := fmt.Sprintf(`SELECT
		COUNT(*) AS total,
		COUNT(*) FILTER (WHERE status IN ('PENDING', 'CONFIRMING')) AS pending,
		COUNT(*) FILTER (WHERE status IN ('CONFIRMED', 'FORWARDED', 'SETTLED')) AS completed,
		COUNT(*) FILTER (WHERE status = 'FAILED') AS failed,
		COUNT(*) FILTER (WHERE status = 'EXPIRED') AS expired,
		COUNT(*) FILTER (WHERE status = 'REFUNDED') AS refunded,
		COALESCE(SUM(amount_usd) FILTER (WHERE status IN ('CONFIRMED', 'FORWARDED', 'SETTLED')), 0) AS volume,
		COALESCE(SUM(fee_usd) FILTER (WHERE status IN ('CONFIRMED', 'FORWARDED', 'SETTLED')), 0) AS fees
		FROM payments WHERE %s`, condition)

	stats := &ports.PaymentStats{}
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&stats.TotalPayments, &stats.Pending, &stats.Completed, &stats.Failed,
		&stats.Expired, &stats.Refunded, &stats.VolumeUSD, &stats.FeesUSD,
	)
	if err != nil {
		return nil, fmt.Errorf("get payment stats: %w", err)
	}
	return stats, nil
}

func scanPayment(row pgx.Row, op string) (*domain.Payment, error) {
	p := &domain.Payment{}
	err := row.Scan(
		&p.ID, &p.MerchantID, &p.OrderID, &p.CryptoType, &p.Network, &p.WalletMode, &p.WalletID, &p.Address,
		&p.AmountUSD, &p.FeeUSD, &p.CustomerAmountUSD, &p.MerchantNetUSD, &p.CustomerPaysFee,
		&p.CryptoAmount, &p.ExchangeRate, &p.ReceivedAmount, &p.Status, &p.TransactionHash,
		&p.Confirmations, &p.RequiredConfirmations, &p.Description, &p.ForwardWithdrawalID,
		&p.CreatedAt, &p.ExpiresAt, &p.ConfirmedAt, &p.ForwardedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}
