package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cryptopay-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const merchantColumnList = `id, username, password_hash, business_name, access_key, secret_key_enc,
	webhook_url, webhook_secret_enc, status, kyc_verified, sandbox, daily_volume_usd, daily_volume_date,
	fee_rate_override, created_at, updated_at`

// MerchantRepo implements ports.MerchantRepository.
type MerchantRepo struct {
	pool Pool
}

// NewMerchantRepo creates a new MerchantRepo.
func NewMerchantRepo(pool Pool) *MerchantRepo {
	return &MerchantRepo{pool: pool}
}

// Create inserts a new merchant into the database.
func (r *MerchantRepo) Create(ctx context.Context, m *domain.Merchant) error {
	query := `INSERT INTO merchants (` + merchantColumnList + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.pool.Exec(ctx, query,
		m.ID, m.Username, m.PasswordHash, m.BusinessName,
		m.AccessKey, m.SecretKeyEnc, m.WebhookURL, m.WebhookSecretEnc,
		m.Status, m.KYCVerified, m.Sandbox, m.DailyVolumeUSD, m.DailyVolumeDate,
		m.FeeRateOverride, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return wrapWriteErr("insert merchant", err)
	}
	return nil
}

// GetByID fetches a merchant by its UUID.
func (r *MerchantRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Merchant, error) {
	query := `SELECT ` + merchantColumnList + ` FROM merchants WHERE id = $1`
	return scanMerchant(r.pool.QueryRow(ctx, query, id), "get merchant by id")
}

// GetByAccessKey fetches a merchant by its public access key.
func (r *MerchantRepo) GetByAccessKey(ctx context.Context, accessKey string) (*domain.Merchant, error) {
	query := `SELECT ` + merchantColumnList + ` FROM merchants WHERE access_key = $1`
	return scanMerchant(r.pool.QueryRow(ctx, query, accessKey), "get merchant by access_key")
}

// GetByUsername fetches a merchant by username.
func (r *MerchantRepo) GetByUsername(ctx context.Context, username string) (*domain.Merchant, error) {
	query := `SELECT ` + merchantColumnList + ` FROM merchants WHERE username = $1`
	return scanMerchant(r.pool.QueryRow(ctx, query, username), "get merchant by username")
}

// GetByIDForUpdate locks the merchant row so the daily volume counter can be
// read and written atomically.
func (r *MerchantRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Merchant, error) {
	query := `SELECT ` + merchantColumnList + ` FROM merchants WHERE id = $1 FOR UPDATE`
	return scanMerchant(tx.QueryRow(ctx, query, id), "get merchant for update")
}

// Update updates a merchant's profile, credentials and status.
func (r *MerchantRepo) Update(ctx context.Context, m *domain.Merchant) error {
	query := `UPDATE merchants
		SET business_name=$1, webhook_url=$2, webhook_secret_enc=$3, access_key=$4, secret_key_enc=$5,
			status=$6, kyc_verified=$7, sandbox=$8, fee_rate_override=$9, updated_at=NOW()
		WHERE id=$10`
	_, err := r.pool.Exec(ctx, query,
		m.BusinessName, m.WebhookURL, m.WebhookSecretEnc, m.AccessKey, m.SecretKeyEnc,
		m.Status, m.KYCVerified, m.Sandbox, m.FeeRateOverride, m.ID,
	)
	if err != nil {
		return wrapWriteErr("update merchant", err)
	}
	return nil
}

// UpdateDailyVolume stores the volume counter and the UTC day it belongs to.
func (r *MerchantRepo) UpdateDailyVolume(ctx context.Context, tx pgx.Tx, id uuid.UUID, volume decimal.Decimal, day time.Time) error {
	query := `UPDATE merchants SET daily_volume_usd = $1, daily_volume_date = $2, updated_at = NOW() WHERE id = $3`
	tag, err := tx.Exec(ctx, query, volume, day, id)
	if err != nil {
		return fmt.Errorf("update daily volume: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update daily volume: merchant not found: %s", id)
	}
	return nil
}

func scanMerchant(row pgx.Row, op string) (*domain.Merchant, error) {
	m := &domain.Merchant{}
	err := row.Scan(
		&m.ID, &m.Username, &m.PasswordHash, &m.BusinessName,
		&m.AccessKey, &m.SecretKeyEnc, &m.WebhookURL, &m.WebhookSecretEnc,
		&m.Status, &m.KYCVerified, &m.Sandbox, &m.DailyVolumeUSD, &m.DailyVolumeDate,
		&m.FeeRateOverride, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return m, nil
}
