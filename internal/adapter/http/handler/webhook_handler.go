package handler

import (
	"io"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/apperror"
	"cryptopay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	HeaderWebhookSignature = "X-Webhook-Signature"
	HeaderWebhookTimestamp = "X-Webhook-Timestamp"
)

// WebhookHandler serves the delivery log and inbound signed notifications.
type WebhookHandler struct {
	dispatcher ports.WebhookDispatcher
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(dispatcher ports.WebhookDispatcher) *WebhookHandler {
	return &WebhookHandler{dispatcher: dispatcher}
}

// ListDeliveries handles GET /api/v1/webhooks/deliveries?status=.
func (h *WebhookHandler) ListDeliveries(c *gin.Context) {
	mid, ok := merchantID(c)
	if !ok {
		return
	}

	var status *domain.WebhookStatus
	if s := c.Query("status"); s != "" {
		st := domain.WebhookStatus(s)
		switch st {
		case domain.WebhookStatusPending, domain.WebhookStatusDelivered, domain.WebhookStatusUndeliverable:
		default:
			response.Error(c, apperror.Validation("invalid status filter"))
			return
		}
		status = &st
	}
	limit, _ := pagination(c)

	deliveries, err := h.dispatcher.ListDeliveries(c.Request.Context(), mid, status, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	if deliveries == nil {
		deliveries = []domain.WebhookDelivery{}
	}

	response.OK(c, deliveries)
}

// Redeliver handles POST /api/v1/webhooks/deliveries/:id/redeliver.
func (h *WebhookHandler) Redeliver(c *gin.Context) {
	mid, ok := merchantID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "webhook delivery")
	if !ok {
		return
	}

	delivery, err := h.dispatcher.Redeliver(c.Request.Context(), mid, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Accepted(c, delivery)
}

// Inbound handles POST /api/v1/webhooks/:merchant. The body is accepted only
// when its signature verifies under the merchant's webhook secret.
func (h *WebhookHandler) Inbound(c *gin.Context) {
	mid, ok := uuidParam(c, "merchant", "merchant")
	if !ok {
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, apperror.Validation("cannot read request body"))
		return
	}

	err = h.dispatcher.VerifyInbound(c.Request.Context(), mid,
		c.GetHeader(HeaderWebhookTimestamp), c.GetHeader(HeaderWebhookSignature), body)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"verified": true})
}
