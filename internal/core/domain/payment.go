package domain

import (
	"crypto/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the lifecycle state of a payment.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "PENDING"
	PaymentStatusConfirming PaymentStatus = "CONFIRMING"
	PaymentStatusConfirmed  PaymentStatus = "CONFIRMED"
	PaymentStatusForwarded  PaymentStatus = "FORWARDED"
	PaymentStatusSettled    PaymentStatus = "SETTLED"
	PaymentStatusFailed     PaymentStatus = "FAILED"
	PaymentStatusExpired    PaymentStatus = "EXPIRED"
	PaymentStatusRefunded   PaymentStatus = "REFUNDED"
)

// Valid reports whether s is a known payment status.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusConfirming, PaymentStatusConfirmed,
		PaymentStatusForwarded, PaymentStatusSettled, PaymentStatusFailed,
		PaymentStatusExpired, PaymentStatusRefunded:
		return true
	}
	return false
}

type transitionRule struct {
	from, to PaymentStatus
}

// modes nil means every wallet mode.
var paymentTransitions = map[transitionRule][]WalletMode{
	{PaymentStatusPending, PaymentStatusConfirming}:   nil,
	{PaymentStatusPending, PaymentStatusExpired}:      nil,
	{PaymentStatusConfirming, PaymentStatusConfirmed}: nil,
	{PaymentStatusConfirming, PaymentStatusFailed}:    nil,
	{PaymentStatusConfirmed, PaymentStatusForwarded}:  {WalletModeGenerated, WalletModeImported},
	{PaymentStatusConfirmed, PaymentStatusSettled}:    {WalletModeAddressOnly},
	{PaymentStatusConfirmed, PaymentStatusRefunded}:   {WalletModeGenerated, WalletModeImported},
}

var forcedTransitions = map[transitionRule]bool{
	{PaymentStatusPending, PaymentStatusConfirmed}:    true,
	{PaymentStatusConfirming, PaymentStatusConfirmed}: true,
	{PaymentStatusExpired, PaymentStatusConfirmed}:    true,
	{PaymentStatusPending, PaymentStatusFailed}:       true,
	{PaymentStatusConfirming, PaymentStatusFailed}:    true,
}

// CanTransitionPayment reports whether a payment in mode may move from -> to.
func CanTransitionPayment(from, to PaymentStatus, mode WalletMode) bool {
	modes, ok := paymentTransitions[transitionRule{from, to}]
	if !ok {
		return false
	}
	if modes == nil {
		return true
	}
	for _, m := range modes {
		if m == mode {
			return true
		}
	}
	return false
}

// CanForcePayment reports whether an administrator may move a payment from -> to.
func CanForcePayment(from, to PaymentStatus) bool {
	return forcedTransitions[transitionRule{from, to}]
}

// Payment is a request for a customer to pay a merchant in crypto.
type Payment struct {
	ID                    string          `json:"payment_id"`
	MerchantID            uuid.UUID       `json:"merchant_id"`
	OrderID               *string         `json:"order_id,omitempty"`
	CryptoType            CryptoType      `json:"crypto_type"`
	Network               Network         `json:"network"`
	WalletMode            WalletMode      `json:"wallet_mode"`
	WalletID              *uuid.UUID      `json:"wallet_id,omitempty"`
	Address               string          `json:"address"` // deposit address, or the merchant's own for address-only
	AmountUSD             decimal.Decimal `json:"amount_usd"`
	FeeUSD                decimal.Decimal `json:"fee_usd"`
	CustomerAmountUSD     decimal.Decimal `json:"customer_amount_usd"`
	MerchantNetUSD        decimal.Decimal `json:"merchant_net_usd"`
	CustomerPaysFee       bool            `json:"customer_pays_fee"`
	CryptoAmount          decimal.Decimal `json:"crypto_amount"`
	ExchangeRate          decimal.Decimal `json:"exchange_rate"` // USD per unit at creation
	ReceivedAmount        decimal.Decimal `json:"received_amount"`
	Status                PaymentStatus   `json:"status"`
	TransactionHash       *string         `json:"transaction_hash,omitempty"`
	Confirmations         int             `json:"confirmations"`
	RequiredConfirmations int             `json:"required_confirmations"`
	Description           *string         `json:"description,omitempty"`
	ForwardWithdrawalID   *uuid.UUID      `json:"forward_withdrawal_id,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
	ExpiresAt             time.Time       `json:"expires_at"`
	ConfirmedAt           *time.Time      `json:"confirmed_at,omitempty"`
	ForwardedAt           *time.Time      `json:"forwarded_at,omitempty"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// SandboxTxPrefix marks transaction hashes of simulated confirmations.
const SandboxTxPrefix = "sandbox_"

// Simulated reports whether p was confirmed by a sandbox simulation rather
// than an observed transfer.
func (p *Payment) Simulated() bool {
	return p.TransactionHash != nil && strings.HasPrefix(*p.TransactionHash, SandboxTxPrefix)
}

// AddressOnlyPayment is how an address-only payment is shown to the merchant:
// the payment plus its quote under requested/fee/customer names.
type AddressOnlyPayment struct {
	*Payment
	MerchantAddress     string          `json:"merchant_address"`
	RequestedAmount     decimal.Decimal `json:"requested_amount"`
	ProcessingFee       decimal.Decimal `json:"processing_fee"`
	CustomerAmount      decimal.Decimal `json:"customer_amount"`
	SupportedCurrencies []CryptoType    `json:"supported_currencies"`
}

// View returns the address-only presentation of p when it is one, else p.
func (p *Payment) View() any {
	if p == nil || p.WalletMode != WalletModeAddressOnly {
		return p
	}
	return &AddressOnlyPayment{
		Payment:             p,
		MerchantAddress:     p.Address,
		RequestedAmount:     p.AmountUSD,
		ProcessingFee:       p.FeeUSD,
		CustomerAmount:      p.CustomerAmountUSD,
		SupportedCurrencies: AllCryptoTypes(),
	}
}

// IsTerminal returns true if the payment can no longer change on its own.
func (p *Payment) IsTerminal() bool {
	switch p.Status {
	case PaymentStatusForwarded, PaymentStatusSettled, PaymentStatusFailed,
		PaymentStatusExpired, PaymentStatusRefunded:
		return true
	}
	return false
}

// IsExpired reports whether a pending payment is past its window.
func (p *Payment) IsExpired(now time.Time) bool {
	return p.Status == PaymentStatusPending && !now.Before(p.ExpiresAt)
}

// IsRefundable returns true for confirmed custodial payments.
func (p *Payment) IsRefundable() bool {
	return p.Status == PaymentStatusConfirmed && p.WalletMode.Custodial()
}

// Transition moves p to status, or reports false if the table forbids it.
func (p *Payment) Transition(to PaymentStatus, now time.Time) bool {
	if !CanTransitionPayment(p.Status, to, p.WalletMode) {
		return false
	}
	p.apply(to, now)
	return true
}

// Force applies an administrative override.
func (p *Payment) Force(to PaymentStatus, now time.Time) bool {
	if !CanForcePayment(p.Status, to) {
		return false
	}
	p.apply(to, now)
	return true
}

func (p *Payment) apply(to PaymentStatus, now time.Time) {
	p.Status = to
	p.UpdatedAt = now
	switch to {
	case PaymentStatusConfirmed:
		p.ConfirmedAt = &now
	case PaymentStatusForwarded:
		p.ForwardedAt = &now
	}
}

const (
	paymentIDPrefix   = "pay_"
	paymentIDLength   = 20
	paymentIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-_"
)

// NewPaymentID returns "pay_" followed by 20 random url-safe characters.
func NewPaymentID() string {
	buf := make([]byte, paymentIDLength)
	if _, err := rand.Read(buf); err != nil {
		panic("crypto/rand unavailable: " + err.Error())
	}
	out := make([]byte, 0, len(paymentIDPrefix)+paymentIDLength)
	out = append(out, paymentIDPrefix...)
	for _, b := range buf {
		out = append(out, paymentIDAlphabet[b&63])
	}
	return string(out)
}
