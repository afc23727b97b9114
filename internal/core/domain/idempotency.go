package domain

import (
	"time"

	"github.com/google/uuid"
)

// IdempotencyLog represents a cached creation result to prevent double-processing.
type IdempotencyLog struct {
	Key          string    `json:"key"` // Format: "merchant_id:order_id"
	ResourceID   string    `json:"resource_id"`
	ResponseJSON []byte    `json:"response_json"` // Cached response to return
	CreatedAt    time.Time `json:"created_at"`
}

// BuildIdempotencyKey constructs the standard key format.
func BuildIdempotencyKey(merchantID uuid.UUID, orderID string) string {
	return merchantID.String() + ":" + orderID
}
