package dto

import (
	"github.com/shopspring/decimal"
)

// RegisterRequest is the request body for merchant registration.
type RegisterRequest struct {
	Username     string  `json:"username" binding:"required,min=3,max=50,safe_id"`
	Password     string  `json:"password" binding:"required,min=8,max=128" sanitize:"-"`
	BusinessName string  `json:"business_name" binding:"required,min=1,max=100"`
	WebhookURL   *string `json:"webhook_url,omitempty" binding:"omitempty,max=2048,safe_url"`
}

// LoginRequest is the request body for merchant login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required" sanitize:"-"`
}

// RegisterResponse is shown once; the secrets are not retrievable later.
type RegisterResponse struct {
	MerchantID    string `json:"merchant_id"`
	AccessKey     string `json:"access_key"`
	SecretKey     string `json:"secret_key"`
	WebhookSecret string `json:"webhook_secret"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	Expiry    int64  `json:"expiry"`     // Unix timestamp
	ExpiresIn int64  `json:"expires_in"` // seconds
}

// CreatePaymentRequest opens a payment. Setting merchant_address selects
// the address-only flow, where the amount is usually sent as requested_amount.
type CreatePaymentRequest struct {
	AmountUSD       decimal.Decimal     `json:"amount_usd"`
	RequestedAmount decimal.NullDecimal `json:"requested_amount"`
	CryptoType      string              `json:"crypto_type" binding:"required,max=20"`
	OrderID         *string             `json:"order_id,omitempty" binding:"omitempty,min=1,max=100,safe_id"`
	WalletMode      string              `json:"wallet_mode,omitempty" binding:"omitempty,oneof=GENERATED IMPORTED ADDRESS_ONLY"`
	MerchantAddress *string             `json:"merchant_address,omitempty" binding:"omitempty,max=128" sanitize:"-"`
	CustomerPaysFee bool                `json:"customer_pays_fee"`
	Description     *string             `json:"description,omitempty" binding:"omitempty,max=500"`
}

// Amount returns the USD amount from whichever field carried it. Both may be
// sent only when they agree.
func (r *CreatePaymentRequest) Amount() (decimal.Decimal, bool) {
	if !r.RequestedAmount.Valid {
		return r.AmountUSD, true
	}
	if !r.AmountUSD.IsZero() && !r.AmountUSD.Equal(r.RequestedAmount.Decimal) {
		return decimal.Zero, false
	}
	return r.RequestedAmount.Decimal, true
}

// SimulatePaymentRequest picks the outcome of a sandbox payment.
type SimulatePaymentRequest struct {
	Status          string `json:"status" binding:"required,oneof=completed failed"`
	TransactionHash string `json:"transaction_hash,omitempty" binding:"omitempty,max=100,safe_id"`
}

// RefundRequest refunds a confirmed payment to the customer.
type RefundRequest struct {
	ToAddress          string `json:"to_address" binding:"required,max=128" sanitize:"-"`
	EncryptionPassword string `json:"encryption_password,omitempty" binding:"max=256" sanitize:"-"`
}

// GenerateWalletRequest asks the gateway to create a key.
type GenerateWalletRequest struct {
	CryptoType         string `json:"crypto_type" binding:"required,max=20"`
	EncryptionPassword string `json:"encryption_password,omitempty" binding:"omitempty,min=8,max=256" sanitize:"-"`
}

// ImportWalletRequest stores a merchant-supplied key.
type ImportWalletRequest struct {
	CryptoType         string `json:"crypto_type" binding:"required,max=20"`
	PrivateKey         string `json:"private_key" binding:"required,max=256" sanitize:"-"`
	EncryptionPassword string `json:"encryption_password,omitempty" binding:"omitempty,min=8,max=256" sanitize:"-"`
}

// ConfigureAddressRequest registers a receive-only address.
type ConfigureAddressRequest struct {
	CryptoType string `json:"crypto_type" binding:"required,max=20"`
	Address    string `json:"address" binding:"required,max=128" sanitize:"-"`
}

// GeneratedWalletResponse carries the private key exactly once.
type GeneratedWalletResponse struct {
	Wallet     interface{} `json:"wallet"`
	PrivateKey string      `json:"private_key"`
	Warning    string      `json:"warning"`
}

// CreateWithdrawalRequest moves funds out of a custodial wallet.
type CreateWithdrawalRequest struct {
	CryptoType string          `json:"crypto_type" binding:"required,max=20"`
	Amount     decimal.Decimal `json:"amount"`
	ToAddress  string          `json:"to_address" binding:"required,max=128" sanitize:"-"`
	WalletMode string          `json:"wallet_mode,omitempty" binding:"omitempty,oneof=GENERATED IMPORTED"`
}

// ProcessWithdrawalRequest unlocks the wallet key to sign.
type ProcessWithdrawalRequest struct {
	EncryptionPassword string `json:"encryption_password,omitempty" binding:"max=256" sanitize:"-"`
}

// UpdateWebhookRequest changes where webhooks are delivered. Null clears it.
type UpdateWebhookRequest struct {
	WebhookURL *string `json:"webhook_url" binding:"omitempty,max=2048,safe_url"`
}

// AdminReasonRequest carries the operator's justification.
type AdminReasonRequest struct {
	Reason string `json:"reason" binding:"required,min=3,max=500"`
}

// AdminKYCRequest sets the merchant's verification flag.
type AdminKYCRequest struct {
	Verified *bool `json:"verified" binding:"required"`
}

// ListResponse wraps a paginated list.
type ListResponse struct {
	Items  interface{} `json:"items"`
	Total  int64       `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}
