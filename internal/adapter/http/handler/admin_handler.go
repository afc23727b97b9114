package handler

import (
	"cryptopay-gateway/internal/adapter/http/dto"
	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/apperror"
	"cryptopay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes operator overrides. Every action is attributed to
// the operator named by the admin token.
type AdminHandler struct {
	ledger      ports.PaymentLedger
	withdrawals ports.WithdrawalProcessor
	merchants   ports.MerchantManagementService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(ledger ports.PaymentLedger, withdrawals ports.WithdrawalProcessor, merchants ports.MerchantManagementService) *AdminHandler {
	return &AdminHandler{ledger: ledger, withdrawals: withdrawals, merchants: merchants}
}

// ForceConfirm handles POST /api/v1/admin/payments/:id/force-confirm.
func (h *AdminHandler) ForceConfirm(c *gin.Context) {
	h.forcePayment(c, domain.PaymentStatusConfirmed)
}

// ForceFail handles POST /api/v1/admin/payments/:id/force-fail.
func (h *AdminHandler) ForceFail(c *gin.Context) {
	h.forcePayment(c, domain.PaymentStatusFailed)
}

func (h *AdminHandler) forcePayment(c *gin.Context, target domain.PaymentStatus) {
	reason, ok := bindReason(c)
	if !ok {
		return
	}

	payment, err := h.ledger.ForceTransition(c.Request.Context(), c.Param("id"), target, actor(c), reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, payment)
}

// ApproveWithdrawal handles POST /api/v1/admin/withdrawals/:id/approve.
func (h *AdminHandler) ApproveWithdrawal(c *gin.Context) {
	id, ok := uuidParam(c, "id", "withdrawal")
	if !ok {
		return
	}
	reason, ok := bindReason(c)
	if !ok {
		return
	}

	withdrawal, err := h.withdrawals.Approve(c.Request.Context(), id, actor(c), reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, withdrawal)
}

// RejectWithdrawal handles POST /api/v1/admin/withdrawals/:id/reject.
func (h *AdminHandler) RejectWithdrawal(c *gin.Context) {
	id, ok := uuidParam(c, "id", "withdrawal")
	if !ok {
		return
	}
	reason, ok := bindReason(c)
	if !ok {
		return
	}

	withdrawal, err := h.withdrawals.Reject(c.Request.Context(), id, actor(c), reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, withdrawal)
}

// SuspendMerchant handles POST /api/v1/admin/merchants/:id/suspend.
func (h *AdminHandler) SuspendMerchant(c *gin.Context) {
	h.setMerchantStatus(c, domain.MerchantStatusSuspended)
}

// ActivateMerchant handles POST /api/v1/admin/merchants/:id/activate.
func (h *AdminHandler) ActivateMerchant(c *gin.Context) {
	h.setMerchantStatus(c, domain.MerchantStatusActive)
}

func (h *AdminHandler) setMerchantStatus(c *gin.Context, status domain.MerchantStatus) {
	id, ok := uuidParam(c, "id", "merchant")
	if !ok {
		return
	}

	if err := h.merchants.SetStatus(c.Request.Context(), id, status, actor(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"merchant_id": id.String(), "status": status})
}

// SetKYC handles PUT /api/v1/admin/merchants/:id/kyc.
func (h *AdminHandler) SetKYC(c *gin.Context) {
	id, ok := uuidParam(c, "id", "merchant")
	if !ok {
		return
	}

	var req dto.AdminKYCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.merchants.SetKYC(c.Request.Context(), id, *req.Verified, actor(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"merchant_id": id.String(), "kyc_verified": *req.Verified})
}

func bindReason(c *gin.Context) (string, bool) {
	var req dto.AdminReasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return "", false
	}
	dto.SanitizeStruct(&req)
	return req.Reason, true
}
