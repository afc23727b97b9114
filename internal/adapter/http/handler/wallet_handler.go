package handler

import (
	"cryptopay-gateway/internal/adapter/http/dto"
	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/apperror"
	"cryptopay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const generatedKeyWarning = "Store this private key securely. It will not be shown again."

// WalletHandler handles wallet endpoints of the merchant API.
type WalletHandler struct {
	wallets ports.WalletService
	vault   ports.KeyVault
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(wallets ports.WalletService, vault ports.KeyVault) *WalletHandler {
	return &WalletHandler{wallets: wallets, vault: vault}
}

// ListWallets handles GET /api/v1/wallets.
func (h *WalletHandler) ListWallets(c *gin.Context) {
	mid, ok := merchantID(c)
	if !ok {
		return
	}

	views, err := h.wallets.List(c.Request.Context(), mid)
	if err != nil {
		response.Error(c, err)
		return
	}
	if views == nil {
		views = []ports.WalletView{}
	}

	response.OK(c, views)
}

// GenerateWallet handles POST /api/v1/wallets/generate.
func (h *WalletHandler) GenerateWallet(c *gin.Context) {
	mid, ok := merchantID(c)
	if !ok {
		return
	}

	var req dto.GenerateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	ct, err := domain.ParseCryptoType(req.CryptoType)
	if err != nil {
		response.Error(c, apperror.ErrInvalidCryptoType(req.CryptoType))
		return
	}

	generated, err := h.vault.Generate(c.Request.Context(), mid, ct, req.EncryptionPassword)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.GeneratedWalletResponse{
		Wallet:     generated.Wallet,
		PrivateKey: generated.PrivateKey,
		Warning:    generatedKeyWarning,
	})
}

// ImportWallet handles POST /api/v1/wallets/import.
func (h *WalletHandler) ImportWallet(c *gin.Context) {
	mid, ok := merchantID(c)
	if !ok {
		return
	}

	var req dto.ImportWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	ct, err := domain.ParseCryptoType(req.CryptoType)
	if err != nil {
		response.Error(c, apperror.ErrInvalidCryptoType(req.CryptoType))
		return
	}

	wallet, err := h.vault.Import(c.Request.Context(), mid, ct, req.PrivateKey, req.EncryptionPassword)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, wallet)
}

// ConfigureAddress handles POST /api/v1/wallets/configure-address.
func (h *WalletHandler) ConfigureAddress(c *gin.Context) {
	mid, ok := merchantID(c)
	if !ok {
		return
	}

	var req dto.ConfigureAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	ct, err := domain.ParseCryptoType(req.CryptoType)
	if err != nil {
		response.Error(c, apperror.ErrInvalidCryptoType(req.CryptoType))
		return
	}

	wallet, err := h.vault.ConfigureAddress(c.Request.Context(), mid, ct, req.Address)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, wallet)
}

// GasCheck handles GET /api/v1/wallets/gas-check?crypto_type=&amount=.
func (h *WalletHandler) GasCheck(c *gin.Context) {
	mid, ok := merchantID(c)
	if !ok {
		return
	}

	cryptoType := c.Query("crypto_type")
	if cryptoType == "" {
		response.Error(c, apperror.Validation("crypto_type is required"))
		return
	}
	amount, err := decimal.NewFromString(c.Query("amount"))
	if err != nil || !amount.IsPositive() {
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}

	result, err := h.wallets.GasCheck(c.Request.Context(), mid, cryptoType, amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}
