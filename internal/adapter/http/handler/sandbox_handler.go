package handler

import (
	"cryptopay-gateway/internal/adapter/http/dto"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// SandboxHandler lets sandbox merchants settle test payments without a chain.
type SandboxHandler struct {
	sandbox ports.SandboxService
}

// NewSandboxHandler creates a new SandboxHandler.
func NewSandboxHandler(sandbox ports.SandboxService) *SandboxHandler {
	return &SandboxHandler{sandbox: sandbox}
}

// Simulate handles POST /api/v1/sandbox/payments/:id/simulate.
func (h *SandboxHandler) Simulate(c *gin.Context) {
	mid, ok := merchantID(c)
	if !ok {
		return
	}

	req, ok := bindJSON[dto.SimulatePaymentRequest](c)
	if !ok {
		return
	}

	result, err := h.sandbox.Simulate(c.Request.Context(), ports.SimulationRequest{
		MerchantID: mid,
		PaymentID:  c.Param("id"),
		Success:    req.Status == "completed",
		TxHash:     req.TransactionHash,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}
