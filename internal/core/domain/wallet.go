package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletMode is how the gateway holds a merchant's funds for a crypto type.
type WalletMode string

const (
	WalletModeGenerated   WalletMode = "GENERATED"    // key created by the gateway
	WalletModeImported    WalletMode = "IMPORTED"     // key supplied by the merchant
	WalletModeAddressOnly WalletMode = "ADDRESS_ONLY" // no key, funds go straight to the merchant
)

// Valid reports whether m is a known wallet mode.
func (m WalletMode) Valid() bool {
	return m == WalletModeGenerated || m == WalletModeImported || m == WalletModeAddressOnly
}

// Custodial returns true when the gateway holds the signing key.
func (m WalletMode) Custodial() bool {
	return m == WalletModeGenerated || m == WalletModeImported
}

// WalletRecord is one merchant wallet for one crypto type and mode.
type WalletRecord struct {
	ID                  uuid.UUID       `json:"id"`
	MerchantID          uuid.UUID       `json:"merchant_id"`
	CryptoType          CryptoType      `json:"crypto_type"`
	Network             Network         `json:"network"`
	Address             string          `json:"address"`
	Mode                WalletMode      `json:"mode"`
	EncryptedPrivateKey *string         `json:"-"` // sealed key envelope, never expose
	UsesDefaultPassword bool            `json:"uses_default_password"`
	AvailableBalance    decimal.Decimal `json:"available_balance"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// CanSign returns true when the record holds key material.
func (w *WalletRecord) CanSign() bool {
	return w.Mode.Custodial() && w.EncryptedPrivateKey != nil && *w.EncryptedPrivateKey != ""
}
