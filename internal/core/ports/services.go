package ports

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"
	"time"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/pkg/secret"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// EncryptionService handles AES-256-GCM encryption/decryption.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// SignatureService handles HMAC-SHA256 signing and verification.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
	BuildCanonicalString(method, path string, timestamp int64, nonce string, body string) string
	BuildWebhookPayload(timestamp int64, body []byte) string
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(merchantID uuid.UUID, accessKey string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	MerchantID uuid.UUID
	AccessKey  string
}

// IdempotencyCache is the Redis-layer idempotency check (fast path).
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached response JSON or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// NonceStore manages nonce uniqueness for replay attack prevention.
type NonceStore interface {
	// CheckAndSet atomically checks if nonce exists, sets it if not.
	// Returns true if nonce is new (valid), false if already used.
	CheckAndSet(ctx context.Context, merchantID string, nonce string, ttl time.Duration) (bool, error)
}

// WalletLock serializes signing per wallet across gateway instances.
type WalletLock interface {
	// Acquire returns a release token when the lock was taken, "" when it is held elsewhere.
	Acquire(ctx context.Context, walletID uuid.UUID, ttl time.Duration) (string, error)
	// Release drops the lock only if token still owns it.
	Release(ctx context.Context, walletID uuid.UUID, token string) error
}

// EventDedup drops chain events that were already seen within a window.
type EventDedup interface {
	FirstSeen(ctx context.Context, key string, ttl time.Duration) (bool, error)
	// Forget releases key so a redelivered event is processed again.
	Forget(ctx context.Context, key string) error
}

// --- Service Ports (Business Logic) ---

// GeneratedWallet is returned once when the gateway creates a key.
type GeneratedWallet struct {
	Wallet     *domain.WalletRecord
	PrivateKey string // hex for EVM, base58 for Solana; never persisted in clear
}

// SigningKey is an unlocked private key. Callers must Destroy it.
type SigningKey struct {
	WalletID   uuid.UUID
	CryptoType domain.CryptoType
	Address    string
	Secret     *secret.Buffer
}

// Destroy zeroes the key material.
func (k *SigningKey) Destroy() {
	if k != nil && k.Secret != nil {
		k.Secret.Destroy()
	}
}

// KeyVault creates, imports and unlocks wallet keys.
type KeyVault interface {
	Generate(ctx context.Context, merchantID uuid.UUID, cryptoType domain.CryptoType, password string) (*GeneratedWallet, error)
	Import(ctx context.Context, merchantID uuid.UUID, cryptoType domain.CryptoType, privateKey, password string) (*domain.WalletRecord, error)
	ConfigureAddress(ctx context.Context, merchantID uuid.UUID, cryptoType domain.CryptoType, address string) (*domain.WalletRecord, error)
	Unlock(ctx context.Context, walletID uuid.UUID, password string) (*SigningKey, error)
	WithKey(ctx context.Context, walletID uuid.UUID, password string, fn func(key *SigningKey) error) error
}

// GasCheck is the input of a pure gas sufficiency check. Amounts are in crypto units.
type GasCheck struct {
	CryptoType    domain.CryptoType
	Amount        decimal.Decimal
	Balance       decimal.Decimal // balance of the wallet being withdrawn from
	NativeBalance decimal.Decimal // native wallet of the same network, ignored for native withdrawals
}

// GasValidator decides whether a withdrawal can pay its network fee.
type GasValidator interface {
	Validate(ctx context.Context, check GasCheck) (*domain.GasValidationResult, error)
	// ValidateLocked locks the native wallet matching wallet inside tx and validates.
	// The returned record is the locked native wallet (wallet itself when native).
	ValidateLocked(ctx context.Context, tx pgx.Tx, wallet *domain.WalletRecord, amount decimal.Decimal) (*domain.GasValidationResult, *domain.WalletRecord, error)
}

// CreatePaymentRequest holds validated input for payment creation.
// A non-nil MerchantAddress selects the address-only flow.
type CreatePaymentRequest struct {
	MerchantID      uuid.UUID
	OrderID         *string
	AmountUSD       decimal.Decimal
	CryptoType      string
	WalletMode      domain.WalletMode
	MerchantAddress *string
	CustomerPaysFee bool
	Description     *string
}

// PaymentLedger owns the payment lifecycle.
type PaymentLedger interface {
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (*domain.Payment, error)
	CreateAddressOnlyPayment(ctx context.Context, req CreatePaymentRequest) (*domain.Payment, error)
	GetPayment(ctx context.Context, merchantID uuid.UUID, paymentID string) (*domain.Payment, error)
	ListPayments(ctx context.Context, params PaymentListParams) ([]domain.Payment, int64, error)
	OnChainEvent(ctx context.Context, event domain.ChainEvent) error
	ExpirePending(ctx context.Context) (int, error)
	ForceTransition(ctx context.Context, paymentID string, target domain.PaymentStatus, actor, reason string) (*domain.Payment, error)
}

// CreateWithdrawalRequest holds validated input for a merchant withdrawal.
type CreateWithdrawalRequest struct {
	MerchantID uuid.UUID
	CryptoType string
	Amount     decimal.Decimal
	ToAddress  string
	WalletMode domain.WalletMode // empty picks GENERATED, then IMPORTED
}

// RefundRequest holds validated input for refunding a confirmed payment.
type RefundRequest struct {
	MerchantID uuid.UUID
	PaymentID  string
	ToAddress  string
	Password   string
}

// WithdrawalProcessor moves funds out of custodial wallets.
type WithdrawalProcessor interface {
	Create(ctx context.Context, req CreateWithdrawalRequest) (*domain.Withdrawal, error)
	Process(ctx context.Context, merchantID, withdrawalID uuid.UUID, password string) (*domain.Withdrawal, error)
	Get(ctx context.Context, merchantID, withdrawalID uuid.UUID) (*domain.Withdrawal, error)
	Forward(ctx context.Context, paymentID string) (*domain.Withdrawal, error)
	Refund(ctx context.Context, req RefundRequest) (*domain.Withdrawal, error)
	Approve(ctx context.Context, withdrawalID uuid.UUID, actor, reason string) (*domain.Withdrawal, error)
	Reject(ctx context.Context, withdrawalID uuid.UUID, actor, reason string) (*domain.Withdrawal, error)
	// OnTransferObserved resolves a withdrawal whose hash the event carries.
	// It reports false when the hash is not a withdrawal.
	OnTransferObserved(ctx context.Context, event domain.ChainEvent) (bool, error)
	ResolveStale(ctx context.Context) (int, error)
}

// WebhookDispatcher emits signed merchant notifications.
type WebhookDispatcher interface {
	Emit(ctx context.Context, merchantID uuid.UUID, eventType domain.WebhookEventType, resourceID string, data any) error
	RetryDue(ctx context.Context) (int, error)
	Redeliver(ctx context.Context, merchantID, deliveryID uuid.UUID) (*domain.WebhookDelivery, error)
	ListDeliveries(ctx context.Context, merchantID uuid.UUID, status *domain.WebhookStatus, limit int) ([]domain.WebhookDelivery, error)
	VerifyInbound(ctx context.Context, merchantID uuid.UUID, timestamp, signature string, body []byte) error
}

// WalletView is a wallet record priced at read time.
type WalletView struct {
	domain.WalletRecord
	BalanceUSD decimal.Decimal `json:"balance_usd"`
}

// WalletService serves wallet reads for the merchant API.
type WalletService interface {
	List(ctx context.Context, merchantID uuid.UUID) ([]WalletView, error)
	GasCheck(ctx context.Context, merchantID uuid.UUID, cryptoType string, amount decimal.Decimal) (*domain.GasValidationResult, error)
}

// AuthService defines authentication business logic.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error)
	Login(ctx context.Context, username, password string) (string, time.Time, error) // token, expiry, error
}

// RegisterRequest holds input for merchant registration.
type RegisterRequest struct {
	Username     string
	Password     string
	BusinessName string
	WebhookURL   *string
}

// RegisterResponse holds the registration result shown once.
type RegisterResponse struct {
	MerchantID    uuid.UUID
	AccessKey     string
	SecretKey     string // Plaintext, shown only at registration
	WebhookSecret string // Plaintext, shown only at registration
}

// MerchantProfile is the merchant's own view of its account.
type MerchantProfile struct {
	ID             uuid.UUID             `json:"id"`
	Username       string                `json:"username"`
	BusinessName   string                `json:"business_name"`
	WebhookURL     *string               `json:"webhook_url,omitempty"`
	Status         domain.MerchantStatus `json:"status"`
	KYCVerified    bool                  `json:"kyc_verified"`
	Sandbox        bool                  `json:"sandbox"`
	DailyVolumeUSD decimal.Decimal       `json:"daily_volume_usd"`
	CreatedAt      string                `json:"created_at"`
}

// RotateKeysResponse holds freshly generated API credentials.
type RotateKeysResponse struct {
	AccessKey string `json:"access_key"`
	SecretKey string `json:"secret_key"`
}

// MerchantManagementService covers self-service and administrative account changes.
type MerchantManagementService interface {
	GetProfile(ctx context.Context, merchantID uuid.UUID) (*MerchantProfile, error)
	UpdateWebhookURL(ctx context.Context, merchantID uuid.UUID, webhookURL *string) error
	RotateKeys(ctx context.Context, merchantID uuid.UUID) (*RotateKeysResponse, error)
	SetStatus(ctx context.Context, merchantID uuid.UUID, status domain.MerchantStatus, actor string) error
	SetKYC(ctx context.Context, merchantID uuid.UUID, verified bool, actor string) error
	// EnableSandbox switches the merchant to sandbox mode. It cannot be undone.
	EnableSandbox(ctx context.Context, merchantID uuid.UUID) (*MerchantProfile, error)
}

// SimulationRequest asks for a sandbox payment outcome.
type SimulationRequest struct {
	MerchantID uuid.UUID
	PaymentID  string
	Success    bool
	TxHash     string // optional; prefixed with domain.SandboxTxPrefix
}

// SandboxSimulation reports the outcome of a simulated payment.
type SandboxSimulation struct {
	PaymentID       string               `json:"payment_id"`
	SimulatedStatus domain.PaymentStatus `json:"simulated_status"`
	TransactionHash *string              `json:"transaction_hash,omitempty"`
	Message         string               `json:"message"`
	Payment         any                  `json:"payment"`
}

// SandboxService drives payments of sandbox merchants without a blockchain.
type SandboxService interface {
	Simulate(ctx context.Context, req SimulationRequest) (*SandboxSimulation, error)
}

// ReportingService defines dashboard/reporting business logic.
type ReportingService interface {
	GetDashboardStats(ctx context.Context, merchantID uuid.UUID, period string) (*PaymentStats, error)
}

// AuditService records audit entries without blocking the caller.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
