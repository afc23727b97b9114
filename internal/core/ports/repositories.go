package ports

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"cryptopay-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ErrDuplicateRecord is returned by repositories when a unique constraint rejects an insert.
var ErrDuplicateRecord = errors.New("duplicate record")

// MerchantRepository defines persistence operations for merchants.
type MerchantRepository interface {
	Create(ctx context.Context, merchant *domain.Merchant) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Merchant, error)
	GetByAccessKey(ctx context.Context, accessKey string) (*domain.Merchant, error)
	GetByUsername(ctx context.Context, username string) (*domain.Merchant, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Merchant, error)
	Update(ctx context.Context, merchant *domain.Merchant) error
	UpdateDailyVolume(ctx context.Context, tx pgx.Tx, id uuid.UUID, volume decimal.Decimal, day time.Time) error
}

// WalletRepository defines persistence operations for wallet records.
// Methods accepting pgx.Tx are used inside transaction blocks for pessimistic locking.
type WalletRepository interface {
	Create(ctx context.Context, wallet *domain.WalletRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WalletRecord, error)
	Get(ctx context.Context, merchantID uuid.UUID, cryptoType domain.CryptoType, mode domain.WalletMode) (*domain.WalletRecord, error)
	ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]domain.WalletRecord, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, cryptoType domain.CryptoType, mode domain.WalletMode) (*domain.WalletRecord, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.WalletRecord, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, balance decimal.Decimal) error
}

// PaymentRepository defines persistence operations for payments.
type PaymentRepository interface {
	Create(ctx context.Context, tx pgx.Tx, payment *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id string) (*domain.Payment, error)
	GetByTxHashForUpdate(ctx context.Context, tx pgx.Tx, network domain.Network, txHash string) (*domain.Payment, error)
	// FindPendingForUpdate locks the oldest PENDING payment at address whose
	// expected crypto amount does not exceed received.
	FindPendingForUpdate(ctx context.Context, tx pgx.Tx, cryptoType domain.CryptoType, address string, received decimal.Decimal) (*domain.Payment, error)
	Update(ctx context.Context, tx pgx.Tx, payment *domain.Payment) error
	ListExpiredIDs(ctx context.Context, now time.Time, limit int) ([]string, error)
	// ListForwardable returns CONFIRMED custodial payments confirmed before
	// confirmedBefore with no withdrawal in flight and fewer than maxAttempts
	// forwards tried.
	ListForwardable(ctx context.Context, confirmedBefore time.Time, maxAttempts, limit int) ([]string, error)
	// Reporting queries
	List(ctx context.Context, params PaymentListParams) ([]domain.Payment, int64, error)
	GetStats(ctx context.Context, merchantID uuid.UUID, since *time.Time) (*PaymentStats, error)
}

// PaymentListParams holds filter + pagination for listing payments.
type PaymentListParams struct {
	MerchantID uuid.UUID
	Status     *domain.PaymentStatus
	CryptoType *domain.CryptoType
	WalletMode *domain.WalletMode
	Limit      int
	Offset     int
}

// PaymentStats holds aggregated statistics for dashboard.
type PaymentStats struct {
	TotalPayments int64           `json:"total_payments"`
	Pending       int64           `json:"pending"`
	Completed     int64           `json:"completed"` // CONFIRMED, FORWARDED or SETTLED
	Failed        int64           `json:"failed"`
	Expired       int64           `json:"expired"`
	Refunded      int64           `json:"refunded"`
	VolumeUSD     decimal.Decimal `json:"volume_usd"` // Sum of completed payment amounts
	FeesUSD       decimal.Decimal `json:"fees_usd"`
}

// WithdrawalRepository defines persistence operations for withdrawals.
type WithdrawalRepository interface {
	Create(ctx context.Context, tx pgx.Tx, withdrawal *domain.Withdrawal) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Withdrawal, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Withdrawal, error)
	GetByTxHashForUpdate(ctx context.Context, tx pgx.Tx, network domain.Network, txHash string) (*domain.Withdrawal, error)
	HasActiveForPayment(ctx context.Context, tx pgx.Tx, paymentID string) (bool, error)
	Update(ctx context.Context, tx pgx.Tx, withdrawal *domain.Withdrawal) error
	ListStaleProcessing(ctx context.Context, startedBefore time.Time, limit int) ([]domain.Withdrawal, error)
}

// WebhookRepository persists webhook events and their delivery log.
type WebhookRepository interface {
	CreateEvent(ctx context.Context, event *domain.WebhookEvent) error
	CreateDelivery(ctx context.Context, delivery *domain.WebhookDelivery) error
	UpdateDelivery(ctx context.Context, delivery *domain.WebhookDelivery) error
	GetDelivery(ctx context.Context, id uuid.UUID) (*domain.WebhookDelivery, error)
	// ClaimDue pushes due PENDING deliveries to leaseUntil and returns them.
	ClaimDue(ctx context.Context, now, leaseUntil time.Time, limit int) ([]domain.WebhookDelivery, error)
	ListByMerchant(ctx context.Context, merchantID uuid.UUID, status *domain.WebhookStatus, limit int) ([]domain.WebhookDelivery, error)
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// IdempotencyRepository defines persistence for idempotency logs (DB backup).
type IdempotencyRepository interface {
	Create(ctx context.Context, tx pgx.Tx, log *domain.IdempotencyLog) error
	Get(ctx context.Context, key string) (*domain.IdempotencyLog, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
