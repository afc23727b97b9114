package handler

import (
	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/apperror"
	"cryptopay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// ObserverHandler accepts chain observations pushed over HTTP and feeds
// them to the same sink as broker-fed observers.
type ObserverHandler struct {
	sink ports.ChainEventSink
}

// NewObserverHandler creates a new ObserverHandler.
func NewObserverHandler(sink ports.ChainEventSink) *ObserverHandler {
	return &ObserverHandler{sink: sink}
}

// ChainEvent handles POST /internal/v1/chain-events.
func (h *ObserverHandler) ChainEvent(c *gin.Context) {
	var event domain.ChainEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if event.TxHash == "" || event.Address == "" {
		response.Error(c, apperror.Validation("tx_hash and address are required"))
		return
	}
	if !event.CryptoType.Valid() {
		response.Error(c, apperror.ErrInvalidCryptoType(string(event.CryptoType)))
		return
	}
	if event.Network == "" {
		event.Network = event.CryptoType.Network()
	}
	if event.Network != event.CryptoType.Network() {
		response.Error(c, apperror.Validation("network does not match crypto_type"))
		return
	}
	if event.Amount.IsNegative() || event.Confirmations < 0 {
		response.Error(c, apperror.Validation("amount and confirmations must not be negative"))
		return
	}

	if err := h.sink.OnChainEvent(c.Request.Context(), event); err != nil {
		response.Error(c, err)
		return
	}

	response.Accepted(c, gin.H{"tx_hash": event.TxHash, "accepted": true})
}
