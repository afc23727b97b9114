package postgres

import (
	"context"
	"errors"
	"fmt"

	"cryptopay-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const walletColumnList = `id, merchant_id, crypto_type, network, address, mode,
	encrypted_private_key, uses_default_password, available_balance, created_at, updated_at`

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

// Create inserts a new wallet. A second wallet for the same merchant, crypto
// type and mode is rejected with ports.ErrDuplicateRecord.
func (r *WalletRepo) Create(ctx context.Context, w *domain.WalletRecord) error {
	query := `INSERT INTO wallets (` + walletColumnList + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		w.ID, w.MerchantID, w.CryptoType, w.Network, w.Address, w.Mode,
		w.EncryptedPrivateKey, w.UsesDefaultPassword, w.AvailableBalance,
		w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return wrapWriteErr("insert wallet", err)
	}
	return nil
}

// GetByID fetches a wallet by its UUID.
func (r *WalletRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WalletRecord, error) {
	query := `SELECT ` + walletColumnList + ` FROM wallets WHERE id = $1`
	return scanWallet(r.pool.QueryRow(ctx, query, id), "get wallet by id")
}

// Get fetches the merchant's wallet for a crypto type and mode.
func (r *WalletRepo) Get(ctx context.Context, merchantID uuid.UUID, cryptoType domain.CryptoType, mode domain.WalletMode) (*domain.WalletRecord, error) {
	query := `SELECT ` + walletColumnList + ` FROM wallets WHERE merchant_id = $1 AND crypto_type = $2 AND mode = $3`
	return scanWallet(r.pool.QueryRow(ctx, query, merchantID, cryptoType, mode), "get wallet")
}

// ListByMerchant returns every wallet the merchant holds.
func (r *WalletRepo) ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]domain.WalletRecord, error) {
	query := `SELECT ` + walletColumnList + ` FROM wallets WHERE merchant_id = $1 ORDER BY crypto_type, mode`

	rows, err := r.pool.Query(ctx, query, merchantID)
	if err != nil {
		return nil, fmt.Errorf("list wallets: %w", err)
	}
	defer rows.Close()

	var wallets []domain.WalletRecord
	for rows.Next() {
		w, err := scanWallet(rows, "scan wallet row")
		if err != nil {
			return nil, err
		}
		wallets = append(wallets, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wallet rows: %w", err)
	}
	return wallets, nil
}

// GetForUpdate locks the merchant's wallet row (SELECT ... FOR UPDATE).
// Must be called within a transaction.
func (r *WalletRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, cryptoType domain.CryptoType, mode domain.WalletMode) (*domain.WalletRecord, error) {
	query := `SELECT ` + walletColumnList + ` FROM wallets WHERE merchant_id = $1 AND crypto_type = $2 AND mode = $3 FOR UPDATE`
	return scanWallet(tx.QueryRow(ctx, query, merchantID, cryptoType, mode), "get wallet for update")
}

// GetByIDForUpdate locks a wallet row by its ID.
func (r *WalletRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.WalletRecord, error) {
	query := `SELECT ` + walletColumnList + ` FROM wallets WHERE id = $1 FOR UPDATE`
	return scanWallet(tx.QueryRow(ctx, query, id), "get wallet by id for update")
}

// UpdateBalance sets the available balance within a transaction.
func (r *WalletRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, balance decimal.Decimal) error {
	query := `UPDATE wallets SET available_balance = $1, updated_at = NOW() WHERE id = $2`

	tag, err := tx.Exec(ctx, query, balance, walletID)
	if err != nil {
		return fmt.Errorf("update wallet balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found: %s", walletID)
	}
	return nil
}

func scanWallet(row pgx.Row, op string) (*domain.WalletRecord, error) {
	w := &domain.WalletRecord{}
	err := row.Scan(
		&w.ID, &w.MerchantID, &w.CryptoType, &w.Network, &w.Address, &w.Mode,
		&w.EncryptedPrivateKey, &w.UsesDefaultPassword, &w.AvailableBalance,
		&w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return w, nil
}
