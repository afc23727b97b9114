package handler

import (
	"cryptopay-gateway/internal/adapter/http/dto"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/apperror"
	"cryptopay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// MerchantHandler handles merchant self-service endpoints.
type MerchantHandler struct {
	merchantSvc ports.MerchantManagementService
}

// NewMerchantHandler creates a new merchant handler.
func NewMerchantHandler(merchantSvc ports.MerchantManagementService) *MerchantHandler {
	return &MerchantHandler{merchantSvc: merchantSvc}
}

// GetProfile returns the authenticated merchant's profile.
func (h *MerchantHandler) GetProfile(c *gin.Context) {
	mid, ok := merchantID(c)
	if !ok {
		return
	}

	profile, err := h.merchantSvc.GetProfile(c.Request.Context(), mid)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, profile)
}

// UpdateWebhookURL updates the merchant's webhook URL.
func (h *MerchantHandler) UpdateWebhookURL(c *gin.Context) {
	mid, ok := merchantID(c)
	if !ok {
		return
	}

	var req dto.UpdateWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.merchantSvc.UpdateWebhookURL(c.Request.Context(), mid, req.WebhookURL); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"message": "webhook URL updated"})
}

// RotateKeys generates new access and secret keys for the merchant.
func (h *MerchantHandler) RotateKeys(c *gin.Context) {
	mid, ok := merchantID(c)
	if !ok {
		return
	}

	result, err := h.merchantSvc.RotateKeys(c.Request.Context(), mid)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// EnableSandbox handles POST /api/v1/merchants/me/sandbox.
func (h *MerchantHandler) EnableSandbox(c *gin.Context) {
	mid, ok := merchantID(c)
	if !ok {
		return
	}

	profile, err := h.merchantSvc.EnableSandbox(c.Request.Context(), mid)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, profile)
}
