package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/internal/core/ports/mocks"
	"cryptopay-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestPayment(merchantID uuid.UUID) *domain.Payment {
	now := time.Now().UTC()
	return &domain.Payment{
		ID:                    "pay_0123456789abcdefghij",
		MerchantID:            merchantID,
		CryptoType:            domain.CryptoUSDTETH,
		Network:               domain.NetworkEthereum,
		WalletMode:            domain.WalletModeGenerated,
		Address:               "0x71C7656EC7ab88b098defB751B7401B5f6d8976F",
		AmountUSD:             decimal.RequireFromString("100"),
		FeeUSD:                decimal.RequireFromString("1"),
		CustomerAmountUSD:     decimal.RequireFromString("100"),
		MerchantNetUSD:        decimal.RequireFromString("99"),
		CryptoAmount:          decimal.RequireFromString("100"),
		ExchangeRate:          decimal.RequireFromString("1"),
		Status:                domain.PaymentStatusPending,
		RequiredConfirmations: 12,
		CreatedAt:             now,
		ExpiresAt:             now.Add(30 * time.Minute),
		UpdatedAt:             now,
	}
}

func TestCreatePayment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := mocks.NewMockPaymentLedger(ctrl)
	h := NewPaymentHandler(ledger, mocks.NewMockWithdrawalProcessor(ctrl))
	mid := uuid.New()
	payment := newTestPayment(mid)

	ledger.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.CreatePaymentRequest) (*domain.Payment, error) {
			assert.Equal(t, mid, req.MerchantID)
			assert.True(t, decimal.RequireFromString("100.50").Equal(req.AmountUSD))
			assert.Equal(t, "USDT_ETH", req.CryptoType)
			assert.Equal(t, domain.WalletModeGenerated, req.WalletMode)
			require.NotNil(t, req.OrderID)
			assert.Equal(t, "order-42", *req.OrderID)
			assert.Nil(t, req.MerchantAddress)
			return payment, nil
		})

	w, c := newTestContext(http.MethodPost, "/api/v1/payments", map[string]interface{}{
		"amount_usd":  "100.50",
		"crypto_type": "USDT_ETH",
		"wallet_mode": "GENERATED",
		"order_id":    "order-42",
	}, &mid)
	h.CreatePayment(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, payment.ID, data["payment_id"])
	assert.Equal(t, "PENDING", data["status"])
	assert.Equal(t, payment.Address, data["address"])
}

func addressOnlyPayment(merchantID uuid.UUID) *domain.Payment {
	p := newTestPayment(merchantID)
	p.WalletMode = domain.WalletModeAddressOnly
	p.CryptoType = domain.CryptoETH
	p.AmountUSD = decimal.RequireFromString("50")
	p.FeeUSD = decimal.RequireFromString("0.5")
	p.CustomerAmountUSD = decimal.RequireFromString("50.5")
	p.MerchantNetUSD = decimal.RequireFromString("50")
	p.CustomerPaysFee = true
	return p
}

func TestCreatePayment_AddressOnlyContract(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := mocks.NewMockPaymentLedger(ctrl)
	h := NewPaymentHandler(ledger, mocks.NewMockWithdrawalProcessor(ctrl))
	mid := uuid.New()
	payment := addressOnlyPayment(mid)

	ledger.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.CreatePaymentRequest) (*domain.Payment, error) {
			require.NotNil(t, req.MerchantAddress)
			assert.Equal(t, "0x71C7656EC7ab88b098defB751B7401B5f6d8976F", *req.MerchantAddress)
			assert.True(t, decimal.RequireFromString("50").Equal(req.AmountUSD))
			assert.True(t, req.CustomerPaysFee)
			return payment, nil
		})

	w, c := newTestContext(http.MethodPost, "/api/v1/payments", map[string]interface{}{
		"requested_amount":  "50",
		"customer_pays_fee": true,
		"crypto_type":       "ETH",
		"merchant_address":  " 0x71C7656EC7ab88b098defB751B7401B5f6d8976F ",
	}, &mid)
	h.CreatePayment(c)

	require.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, payment.ID, data["payment_id"])
	assert.Equal(t, payment.Address, data["merchant_address"])
	assert.Equal(t, "50", data["requested_amount"])
	assert.Equal(t, "0.5", data["processing_fee"])
	assert.Equal(t, "50.5", data["customer_amount"])
	assert.Equal(t, true, data["customer_pays_fee"])
	currencies, ok := data["supported_currencies"].([]interface{})
	require.True(t, ok)
	assert.Len(t, currencies, len(domain.AllCryptoTypes()))
	assert.Contains(t, currencies, "USDT_SPL")
}

func TestCreatePayment_AmountFieldsMustAgree(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := mocks.NewMockPaymentLedger(ctrl)
	h := NewPaymentHandler(ledger, mocks.NewMockWithdrawalProcessor(ctrl))
	mid := uuid.New()

	w, c := newTestContext(http.MethodPost, "/api/v1/payments", map[string]interface{}{
		"amount_usd":       "40",
		"requested_amount": "50",
		"crypto_type":      "ETH",
		"merchant_address": "0x71C7656EC7ab88b098defB751B7401B5f6d8976F",
	}, &mid)
	h.CreatePayment(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Sending both with the same value is accepted.
	ledger.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(addressOnlyPayment(mid), nil)
	w, c = newTestContext(http.MethodPost, "/api/v1/payments", map[string]interface{}{
		"amount_usd":       "50.00",
		"requested_amount": "50",
		"crypto_type":      "ETH",
		"merchant_address": "0x71C7656EC7ab88b098defB751B7401B5f6d8976F",
	}, &mid)
	h.CreatePayment(c)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreatePayment_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body interface{}
	}{
		{"missing crypto type", map[string]interface{}{"amount_usd": "10"}},
		{"bad wallet mode", map[string]interface{}{"amount_usd": "10", "crypto_type": "ETH", "wallet_mode": "CUSTODY"}},
		{"unsafe order id", map[string]interface{}{"amount_usd": "10", "crypto_type": "ETH", "order_id": "a b"}},
		{"malformed json", `{"amount_usd":`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h := NewPaymentHandler(mocks.NewMockPaymentLedger(ctrl), mocks.NewMockWithdrawalProcessor(ctrl))
			mid := uuid.New()

			w, c := newTestContext(http.MethodPost, "/api/v1/payments", tc.body, &mid)
			h.CreatePayment(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCreatePayment_ServiceErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"unsupported crypto", apperror.ErrInvalidCryptoType("DOGE"), http.StatusBadRequest, "PAY_008"},
		{"daily limit", apperror.ErrDailyVolumeLimitExceeded(), http.StatusUnprocessableEntity, "PAY_005"},
		{"suspended", apperror.ErrMerchantSuspended(), http.StatusForbidden, "AUTH_004"},
		{"price feed down", apperror.ErrUpstreamChain(assert.AnError), http.StatusServiceUnavailable, "CHAIN_001"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ledger := mocks.NewMockPaymentLedger(ctrl)
			h := NewPaymentHandler(ledger, mocks.NewMockWithdrawalProcessor(ctrl))
			mid := uuid.New()
			ledger.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			w, c := newTestContext(http.MethodPost, "/api/v1/payments", map[string]interface{}{
				"amount_usd": "10", "crypto_type": "ETH",
			}, &mid)
			h.CreatePayment(c)

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.code, decodeErrorCode(t, w))
		})
	}
}

func TestCreatePayment_RequiresMerchant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewPaymentHandler(mocks.NewMockPaymentLedger(ctrl), mocks.NewMockWithdrawalProcessor(ctrl))
	w, c := newTestContext(http.MethodPost, "/api/v1/payments", map[string]interface{}{}, nil)
	h.CreatePayment(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := mocks.NewMockPaymentLedger(ctrl)
	h := NewPaymentHandler(ledger, mocks.NewMockWithdrawalProcessor(ctrl))
	mid := uuid.New()
	payment := newTestPayment(mid)

	ledger.EXPECT().GetPayment(gomock.Any(), mid, payment.ID).Return(payment, nil)

	w, c := newTestContext(http.MethodGet, "/api/v1/payments/"+payment.ID, nil, &mid)
	withParam(c, "id", payment.ID)
	h.GetPayment(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, payment.ID, data["payment_id"])
	assert.NotContains(t, data, "requested_amount", "custodial payments keep the plain shape")
}

func TestGetPayment_AddressOnlyView(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := mocks.NewMockPaymentLedger(ctrl)
	h := NewPaymentHandler(ledger, mocks.NewMockWithdrawalProcessor(ctrl))
	mid := uuid.New()
	payment := addressOnlyPayment(mid)
	payment.CustomerPaysFee = false
	payment.CustomerAmountUSD = payment.AmountUSD

	ledger.EXPECT().GetPayment(gomock.Any(), mid, payment.ID).Return(payment, nil)

	w, c := newTestContext(http.MethodGet, "/api/v1/payments/"+payment.ID, nil, &mid)
	withParam(c, "id", payment.ID)
	h.GetPayment(c)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "50", data["requested_amount"])
	assert.Equal(t, "50", data["customer_amount"])
	assert.Equal(t, "0.5", data["processing_fee"])
	assert.Equal(t, false, data["customer_pays_fee"])
	assert.Equal(t, "ADDRESS_ONLY", data["wallet_mode"])
}

func TestGetPayment_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := mocks.NewMockPaymentLedger(ctrl)
	h := NewPaymentHandler(ledger, mocks.NewMockWithdrawalProcessor(ctrl))
	mid := uuid.New()

	ledger.EXPECT().GetPayment(gomock.Any(), mid, "pay_missing").Return(nil, apperror.ErrNotFound("payment"))

	w, c := newTestContext(http.MethodGet, "/api/v1/payments/pay_missing", nil, &mid)
	withParam(c, "id", "pay_missing")
	h.GetPayment(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "PAY_004", decodeErrorCode(t, w))
}

func TestListPayments_Filters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := mocks.NewMockPaymentLedger(ctrl)
	h := NewPaymentHandler(ledger, mocks.NewMockWithdrawalProcessor(ctrl))
	mid := uuid.New()

	ledger.EXPECT().ListPayments(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p ports.PaymentListParams) ([]domain.Payment, int64, error) {
			assert.Equal(t, mid, p.MerchantID)
			assert.Equal(t, 100, p.Limit)
			assert.Equal(t, 40, p.Offset)
			require.NotNil(t, p.Status)
			assert.Equal(t, domain.PaymentStatusConfirmed, *p.Status)
			require.NotNil(t, p.CryptoType)
			assert.Equal(t, domain.CryptoSOL, *p.CryptoType)
			require.NotNil(t, p.WalletMode)
			assert.Equal(t, domain.WalletModeImported, *p.WalletMode)
			return []domain.Payment{*newTestPayment(mid), *addressOnlyPayment(mid)}, 41, nil
		})

	w, c := newTestContext(http.MethodGet,
		"/api/v1/payments?limit=500&offset=40&status=CONFIRMED&crypto_type=sol&wallet_mode=IMPORTED", nil, &mid)
	h.ListPayments(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, float64(41), data["total"])
	items := data["items"].([]interface{})
	require.Len(t, items, 2)
	assert.NotContains(t, items[0], "processing_fee")
	assert.Equal(t, "0.5", items[1].(map[string]interface{})["processing_fee"])
}

func TestListPayments_EmptyIsArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := mocks.NewMockPaymentLedger(ctrl)
	h := NewPaymentHandler(ledger, mocks.NewMockWithdrawalProcessor(ctrl))
	mid := uuid.New()

	ledger.EXPECT().ListPayments(gomock.Any(), gomock.Any()).Return(nil, int64(0), nil)

	w, c := newTestContext(http.MethodGet, "/api/v1/payments", nil, &mid)
	h.ListPayments(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"items":[]`)
}

func TestListPayments_InvalidFilters(t *testing.T) {
	tests := []struct {
		query string
		code  string
	}{
		{"status=SHIPPED", "PAY_002"},
		{"crypto_type=DOGE", "PAY_008"},
		{"wallet_mode=HOT", "PAY_002"},
	}

	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h := NewPaymentHandler(mocks.NewMockPaymentLedger(ctrl), mocks.NewMockWithdrawalProcessor(ctrl))
			mid := uuid.New()

			w, c := newTestContext(http.MethodGet, "/api/v1/payments?"+tc.query, nil, &mid)
			h.ListPayments(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tc.code, decodeErrorCode(t, w))
		})
	}
}

func TestRefundPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	processor := mocks.NewMockWithdrawalProcessor(ctrl)
	h := NewPaymentHandler(mocks.NewMockPaymentLedger(ctrl), processor)
	mid := uuid.New()
	paymentID := "pay_0123456789abcdefghij"
	refund := &domain.Withdrawal{
		ID:         uuid.New(),
		MerchantID: mid,
		Kind:       domain.WithdrawalKindRefund,
		PaymentID:  &paymentID,
		Status:     domain.WithdrawalStatusProcessing,
		Amount:     decimal.RequireFromString("99"),
	}

	processor.EXPECT().Refund(gomock.Any(), ports.RefundRequest{
		MerchantID: mid,
		PaymentID:  paymentID,
		ToAddress:  "0x0000000000000000000000000000000000000001",
		Password:   "p&ss<word>",
	}).Return(refund, nil)

	w, c := newTestContext(http.MethodPost, "/api/v1/payments/"+paymentID+"/refund", map[string]string{
		"to_address":          "0x0000000000000000000000000000000000000001",
		"encryption_password": "p&ss<word>",
	}, &mid)
	withParam(c, "id", paymentID)
	h.RefundPayment(c)

	assert.Equal(t, http.StatusAccepted, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "REFUND", data["kind"])
	assert.Equal(t, paymentID, data["payment_id"])
}

func TestRefundPayment_NotRefundable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	processor := mocks.NewMockWithdrawalProcessor(ctrl)
	h := NewPaymentHandler(mocks.NewMockPaymentLedger(ctrl), processor)
	mid := uuid.New()

	processor.EXPECT().Refund(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrInvalidRefund())

	w, c := newTestContext(http.MethodPost, "/api/v1/payments/pay_x/refund", map[string]string{
		"to_address": "0x0000000000000000000000000000000000000001",
	}, &mid)
	withParam(c, "id", "pay_x")
	h.RefundPayment(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "PAY_006", decodeErrorCode(t, w))
}
