package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MerchantStatus represents the state of a merchant account.
type MerchantStatus string

const (
	MerchantStatusActive      MerchantStatus = "ACTIVE"
	MerchantStatusSuspended   MerchantStatus = "SUSPENDED"
	MerchantStatusDeactivated MerchantStatus = "DEACTIVATED"
)

// Merchant represents a registered merchant in the system.
type Merchant struct {
	ID               uuid.UUID           `json:"id"`
	Username         string              `json:"username"`
	PasswordHash     string              `json:"-"` // Never expose
	BusinessName     string              `json:"business_name"`
	AccessKey        string              `json:"access_key"`
	SecretKeyEnc     string              `json:"-"` // Encrypted, never expose
	WebhookURL       *string             `json:"webhook_url,omitempty"`
	WebhookSecretEnc string              `json:"-"`
	Status           MerchantStatus      `json:"status"`
	KYCVerified      bool                `json:"kyc_verified"`
	Sandbox          bool                `json:"sandbox"` // payments may be confirmed by simulation
	DailyVolumeUSD   decimal.Decimal     `json:"daily_volume_usd"`
	DailyVolumeDate  time.Time           `json:"daily_volume_date"` // UTC day the counter belongs to
	FeeRateOverride  decimal.NullDecimal `json:"fee_rate_override"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// IsActive returns true if the merchant account is active.
func (m *Merchant) IsActive() bool {
	return m.Status == MerchantStatusActive
}

// VolumeUsedOn returns the volume counted against the merchant's cap on the given day.
func (m *Merchant) VolumeUsedOn(now time.Time) decimal.Decimal {
	if !sameUTCDay(m.DailyVolumeDate, now) {
		return decimal.Zero
	}
	return m.DailyVolumeUSD
}

// ExceedsDailyLimit reports whether adding amount would push an unverified
// merchant past limit. Verified merchants are never capped.
func (m *Merchant) ExceedsDailyLimit(amount, limit decimal.Decimal, now time.Time) bool {
	if m.KYCVerified {
		return false
	}
	return m.VolumeUsedOn(now).Add(amount).GreaterThan(limit)
}

// AddVolume adds amount to today's counter, resetting it on a new UTC day.
func (m *Merchant) AddVolume(amount decimal.Decimal, now time.Time) {
	m.DailyVolumeUSD = m.VolumeUsedOn(now).Add(amount)
	m.DailyVolumeDate = utcDay(now)
}

// ReleaseVolume gives back amount if it was counted on the current day.
func (m *Merchant) ReleaseVolume(amount decimal.Decimal, countedOn, now time.Time) {
	if !sameUTCDay(countedOn, now) || !sameUTCDay(m.DailyVolumeDate, now) {
		return
	}
	m.DailyVolumeUSD = decimal.Max(m.DailyVolumeUSD.Sub(amount), decimal.Zero)
}

func utcDay(t time.Time) time.Time {
	y, mo, d := t.UTC().Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

func sameUTCDay(a, b time.Time) bool {
	return utcDay(a).Equal(utcDay(b))
}
