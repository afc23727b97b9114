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

func newTestWalletRecord(merchantID uuid.UUID, ct domain.CryptoType, mode domain.WalletMode) *domain.WalletRecord {
	sealed := "sealed"
	now := time.Now().UTC()
	return &domain.WalletRecord{
		ID:                  uuid.New(),
		MerchantID:          merchantID,
		CryptoType:          ct,
		Network:             ct.Network(),
		Address:             "0x71C7656EC7ab88b098defB751B7401B5f6d8976F",
		Mode:                mode,
		EncryptedPrivateKey: &sealed,
		AvailableBalance:    decimal.RequireFromString("2.5"),
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

func TestListWallets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallets := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(wallets, mocks.NewMockKeyVault(ctrl))
	mid := uuid.New()
	record := newTestWalletRecord(mid, domain.CryptoETH, domain.WalletModeGenerated)

	wallets.EXPECT().List(gomock.Any(), mid).Return([]ports.WalletView{
		{WalletRecord: *record, BalanceUSD: decimal.RequireFromString("7500")},
	}, nil)

	w, c := newTestContext(http.MethodGet, "/api/v1/wallets", nil, &mid)
	h.ListWallets(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"balance_usd":"7500"`)
	assert.Contains(t, body, record.Address)
	assert.NotContains(t, body, "sealed")
}

func TestListWallets_EmptyIsArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallets := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(wallets, mocks.NewMockKeyVault(ctrl))
	mid := uuid.New()

	wallets.EXPECT().List(gomock.Any(), mid).Return(nil, nil)

	w, c := newTestContext(http.MethodGet, "/api/v1/wallets", nil, &mid)
	h.ListWallets(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestGenerateWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vault := mocks.NewMockKeyVault(ctrl)
	h := NewWalletHandler(mocks.NewMockWalletService(ctrl), vault)
	mid := uuid.New()
	record := newTestWalletRecord(mid, domain.CryptoETH, domain.WalletModeGenerated)

	vault.EXPECT().Generate(gomock.Any(), mid, domain.CryptoETH, "").Return(&ports.GeneratedWallet{
		Wallet:     record,
		PrivateKey: "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318",
	}, nil)

	w, c := newTestContext(http.MethodPost, "/api/v1/wallets/generate", map[string]string{
		"crypto_type": "eth",
	}, &mid)
	h.GenerateWallet(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318", data["private_key"])
	assert.Equal(t, generatedKeyWarning, data["warning"])
	wallet, ok := data["wallet"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "GENERATED", wallet["mode"])
}

func TestGenerateWallet_UnknownCrypto(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewWalletHandler(mocks.NewMockWalletService(ctrl), mocks.NewMockKeyVault(ctrl))
	mid := uuid.New()

	w, c := newTestContext(http.MethodPost, "/api/v1/wallets/generate", map[string]string{
		"crypto_type": "DOGE",
	}, &mid)
	h.GenerateWallet(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "PAY_008", decodeErrorCode(t, w))
}

func TestGenerateWallet_ShortPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewWalletHandler(mocks.NewMockWalletService(ctrl), mocks.NewMockKeyVault(ctrl))
	mid := uuid.New()

	w, c := newTestContext(http.MethodPost, "/api/v1/wallets/generate", map[string]string{
		"crypto_type":         "ETH",
		"encryption_password": "short",
	}, &mid)
	h.GenerateWallet(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "PAY_002", decodeErrorCode(t, w))
}

func TestImportWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vault := mocks.NewMockKeyVault(ctrl)
	h := NewWalletHandler(mocks.NewMockWalletService(ctrl), vault)
	mid := uuid.New()
	record := newTestWalletRecord(mid, domain.CryptoUSDTETH, domain.WalletModeImported)

	vault.EXPECT().
		Import(gomock.Any(), mid, domain.CryptoUSDTETH, "0xabc<def>", "correct horse battery").
		Return(record, nil)

	w, c := newTestContext(http.MethodPost, "/api/v1/wallets/import", map[string]string{
		"crypto_type":         "USDT_ETH",
		"private_key":         "  0xabc<def>  ",
		"encryption_password": "correct horse battery",
	}, &mid)
	h.ImportWallet(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, record.ID.String(), data["id"])
	assert.NotContains(t, w.Body.String(), "private_key")
}

func TestImportWallet_InvalidKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vault := mocks.NewMockKeyVault(ctrl)
	h := NewWalletHandler(mocks.NewMockWalletService(ctrl), vault)
	mid := uuid.New()

	vault.EXPECT().Import(gomock.Any(), mid, domain.CryptoSOL, "garbage", "").
		Return(nil, apperror.ErrInvalidPrivateKey())

	w, c := newTestContext(http.MethodPost, "/api/v1/wallets/import", map[string]string{
		"crypto_type": "SOL",
		"private_key": "garbage",
	}, &mid)
	h.ImportWallet(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "KEY_002", decodeErrorCode(t, w))
}

func TestConfigureAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vault := mocks.NewMockKeyVault(ctrl)
	h := NewWalletHandler(mocks.NewMockWalletService(ctrl), vault)
	mid := uuid.New()
	record := newTestWalletRecord(mid, domain.CryptoETH, domain.WalletModeAddressOnly)
	record.EncryptedPrivateKey = nil

	vault.EXPECT().ConfigureAddress(gomock.Any(), mid, domain.CryptoETH, record.Address).Return(record, nil)

	w, c := newTestContext(http.MethodPost, "/api/v1/wallets/configure-address", map[string]string{
		"crypto_type": "ETH",
		"address":     record.Address,
	}, &mid)
	h.ConfigureAddress(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ADDRESS_ONLY", decodeData(t, w)["mode"])
}

func TestConfigureAddress_InvalidAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vault := mocks.NewMockKeyVault(ctrl)
	h := NewWalletHandler(mocks.NewMockWalletService(ctrl), vault)
	mid := uuid.New()

	vault.EXPECT().ConfigureAddress(gomock.Any(), mid, domain.CryptoETH, "0x123").
		Return(nil, apperror.ErrInvalidAddress("ethereum"))

	w, c := newTestContext(http.MethodPost, "/api/v1/wallets/configure-address", map[string]string{
		"crypto_type": "ETH",
		"address":     "0x123",
	}, &mid)
	h.ConfigureAddress(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "PAY_009", decodeErrorCode(t, w))
}

func TestGasCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallets := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(wallets, mocks.NewMockKeyVault(ctrl))
	mid := uuid.New()

	wallets.EXPECT().GasCheck(gomock.Any(), mid, "USDT_ETH", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, _ string, amount decimal.Decimal) (*domain.GasValidationResult, error) {
			assert.True(t, decimal.RequireFromString("25.5").Equal(amount))
			return &domain.GasValidationResult{
				Status:         domain.GasInsufficientGas,
				GasRequired:    decimal.RequireFromString("0.0012"),
				GasAvailable:   decimal.RequireFromString("0.0002"),
				GasShortfall:   decimal.RequireFromString("0.001"),
				NativeCurrency: domain.CryptoETH,
				Network:        domain.NetworkEthereum,
			}, nil
		})

	w, c := newTestContext(http.MethodGet, "/api/v1/wallets/gas-check?crypto_type=USDT_ETH&amount=25.5", nil, &mid)
	h.GasCheck(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "INSUFFICIENT_GAS", data["status"])
	assert.Equal(t, false, data["can_withdraw"])
	assert.Equal(t, "0.001", data["gas_shortfall"])
}

func TestGasCheck_BadInput(t *testing.T) {
	tests := []struct {
		name  string
		query string
		code  string
	}{
		{"missing crypto type", "amount=1", "PAY_002"},
		{"missing amount", "crypto_type=ETH", "PAY_002"},
		{"zero amount", "crypto_type=ETH&amount=0", "PAY_002"},
		{"negative amount", "crypto_type=ETH&amount=-3", "PAY_002"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h := NewWalletHandler(mocks.NewMockWalletService(ctrl), mocks.NewMockKeyVault(ctrl))
			mid := uuid.New()

			w, c := newTestContext(http.MethodGet, "/api/v1/wallets/gas-check?"+tc.query, nil, &mid)
			h.GasCheck(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tc.code, decodeErrorCode(t, w))
		})
	}
}
