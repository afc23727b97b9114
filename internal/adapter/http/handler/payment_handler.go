package handler

import (
	"cryptopay-gateway/internal/adapter/http/dto"
	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/apperror"
	"cryptopay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment endpoints of the merchant API.
type PaymentHandler struct {
	ledger      ports.PaymentLedger
	withdrawals ports.WithdrawalProcessor
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(ledger ports.PaymentLedger, withdrawals ports.WithdrawalProcessor) *PaymentHandler {
	return &PaymentHandler{ledger: ledger, withdrawals: withdrawals}
}

// CreatePayment handles POST /api/v1/payments.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	mid, ok := merchantID(c)
	if !ok {
		return
	}

	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)
	amount, ok := req.Amount()
	if !ok {
		response.Error(c, apperror.Validation("amount_usd and requested_amount disagree"))
		return
	}

	payment, err := h.ledger.CreatePayment(c.Request.Context(), ports.CreatePaymentRequest{
		MerchantID:      mid,
		OrderID:         req.OrderID,
		AmountUSD:       amount,
		CryptoType:      req.CryptoType,
		WalletMode:      domain.WalletMode(req.WalletMode),
		MerchantAddress: req.MerchantAddress,
		CustomerPaysFee: req.CustomerPaysFee,
		Description:     req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, payment.View())
}

// GetPayment handles GET /api/v1/payments/:id.
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	mid, ok := merchantID(c)
	if !ok {
		return
	}

	payment, err := h.ledger.GetPayment(c.Request.Context(), mid, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, payment.View())
}

// ListPayments handles GET /api/v1/payments.
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	mid, ok := merchantID(c)
	if !ok {
		return
	}

	limit, offset := pagination(c)
	params := ports.PaymentListParams{MerchantID: mid, Limit: limit, Offset: offset}

	if s := c.Query("status"); s != "" {
		status := domain.PaymentStatus(s)
		if !status.Valid() {
			response.Error(c, apperror.Validation("invalid status filter"))
			return
		}
		params.Status = &status
	}
	if s := c.Query("crypto_type"); s != "" {
		ct, err := domain.ParseCryptoType(s)
		if err != nil {
			response.Error(c, apperror.ErrInvalidCryptoType(s))
			return
		}
		params.CryptoType = &ct
	}
	if s := c.Query("wallet_mode"); s != "" {
		mode := domain.WalletMode(s)
		if !mode.Valid() {
			response.Error(c, apperror.Validation("invalid wallet_mode filter"))
			return
		}
		params.WalletMode = &mode
	}

	payments, total, err := h.ledger.ListPayments(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	items := make([]any, 0, len(payments))
	for i := range payments {
		items = append(items, payments[i].View())
	}

	response.OK(c, dto.ListResponse{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

// RefundPayment handles POST /api/v1/payments/:id/refund.
func (h *PaymentHandler) RefundPayment(c *gin.Context) {
	mid, ok := merchantID(c)
	if !ok {
		return
	}

	var req dto.RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	withdrawal, err := h.withdrawals.Refund(c.Request.Context(), ports.RefundRequest{
		MerchantID: mid,
		PaymentID:  c.Param("id"),
		ToAddress:  req.ToAddress,
		Password:   req.EncryptionPassword,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Accepted(c, withdrawal)
}
