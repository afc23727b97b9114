package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// WebhookEventType names a merchant-facing notification.
type WebhookEventType string

const (
	EventPaymentConfirmed   WebhookEventType = "payment.confirmed"
	EventPaymentFailed      WebhookEventType = "payment.failed"
	EventPaymentExpired     WebhookEventType = "payment.expired"
	EventPaymentForwarded   WebhookEventType = "payment.forwarded"
	EventAddressOnlyPayment WebhookEventType = "address_only.payment_received"
	EventWithdrawalComplete WebhookEventType = "withdrawal.completed"
	EventWithdrawalFailed   WebhookEventType = "withdrawal.failed"
	EventRefundCompleted    WebhookEventType = "refund.completed"
	EventRefundFailed       WebhookEventType = "refund.failed"
)

// WebhookEvent is immutable once created. Its ID is the receiver's dedup key.
type WebhookEvent struct {
	ID         uuid.UUID        `json:"event_id"`
	MerchantID uuid.UUID        `json:"merchant_id"`
	Type       WebhookEventType `json:"event_type"`
	ResourceID string           `json:"resource_id"`
	Data       json.RawMessage  `json:"data"`
	CreatedAt  time.Time        `json:"created_at"`
}

// WebhookStatus represents the delivery state of a webhook.
type WebhookStatus string

const (
	WebhookStatusPending       WebhookStatus = "PENDING"
	WebhookStatusDelivered     WebhookStatus = "DELIVERED"
	WebhookStatusUndeliverable WebhookStatus = "UNDELIVERABLE"
)

// WebhookDelivery tracks attempts to deliver one event to one URL.
type WebhookDelivery struct {
	ID          uuid.UUID        `json:"id"`
	EventID     uuid.UUID        `json:"event_id"`
	MerchantID  uuid.UUID        `json:"merchant_id"`
	EventType   WebhookEventType `json:"event_type"`
	URL         string           `json:"url"`
	Payload     string           `json:"payload"` // JSON string
	HTTPStatus  *int             `json:"http_status"`
	Attempt     int              `json:"attempt"`
	Status      WebhookStatus    `json:"status"`
	NextRetryAt *time.Time       `json:"next_retry_at"`
	LastError   *string          `json:"last_error"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// WebhookBackoff returns base * 2^(attempt-1), capped at limit.
func WebhookBackoff(attempt int, base, limit time.Duration) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := base
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= limit {
			return limit
		}
	}
	if d > limit {
		return limit
	}
	return d
}
