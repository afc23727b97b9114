package handler

import (
	"cryptopay-gateway/internal/adapter/http/dto"
	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/apperror"
	"cryptopay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// WithdrawalHandler handles merchant withdrawals.
type WithdrawalHandler struct {
	processor ports.WithdrawalProcessor
}

// NewWithdrawalHandler creates a new WithdrawalHandler.
func NewWithdrawalHandler(processor ports.WithdrawalProcessor) *WithdrawalHandler {
	return &WithdrawalHandler{processor: processor}
}

// CreateWithdrawal handles POST /api/v1/withdrawals.
func (h *WithdrawalHandler) CreateWithdrawal(c *gin.Context) {
	mid, ok := merchantID(c)
	if !ok {
		return
	}

	var req dto.CreateWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	withdrawal, err := h.processor.Create(c.Request.Context(), ports.CreateWithdrawalRequest{
		MerchantID: mid,
		CryptoType: req.CryptoType,
		Amount:     req.Amount,
		ToAddress:  req.ToAddress,
		WalletMode: domain.WalletMode(req.WalletMode),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, withdrawal)
}

// GetWithdrawal handles GET /api/v1/withdrawals/:id.
func (h *WithdrawalHandler) GetWithdrawal(c *gin.Context) {
	mid, ok := merchantID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "withdrawal")
	if !ok {
		return
	}

	withdrawal, err := h.processor.Get(c.Request.Context(), mid, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, withdrawal)
}

// ProcessWithdrawal handles POST /api/v1/withdrawals/:id/process.
// The broadcast outcome is reported by webhook; the response carries the
// state reached before confirmation.
func (h *WithdrawalHandler) ProcessWithdrawal(c *gin.Context) {
	mid, ok := merchantID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "withdrawal")
	if !ok {
		return
	}

	var req dto.ProcessWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	withdrawal, err := h.processor.Process(c.Request.Context(), mid, id, req.EncryptionPassword)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Accepted(c, withdrawal)
}
