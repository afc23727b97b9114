package service

import (
	"context"
	"fmt"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// WalletServiceImpl implements ports.WalletService.
type WalletServiceImpl struct {
	walletRepo ports.WalletRepository
	gas        ports.GasValidator
	prices     ports.PriceOracle
	log        zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(walletRepo ports.WalletRepository, gas ports.GasValidator, prices ports.PriceOracle, log zerolog.Logger) *WalletServiceImpl {
	return &WalletServiceImpl{
		walletRepo: walletRepo,
		gas:        gas,
		prices:     prices,
		log:        log,
	}
}

// List returns the merchant's wallets with balances priced in USD. A missing
// price leaves balance_usd at zero rather than failing the listing.
func (s *WalletServiceImpl) List(ctx context.Context, merchantID uuid.UUID) ([]ports.WalletView, error) {
	wallets, err := s.walletRepo.ListByMerchant(ctx, merchantID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list wallets: %w", err))
	}

	prices := make(map[domain.CryptoType]decimal.Decimal)
	views := make([]ports.WalletView, 0, len(wallets))
	for _, w := range wallets {
		price, ok := prices[w.CryptoType]
		if !ok {
			price, err = s.prices.USDPrice(ctx, w.CryptoType)
			if err != nil {
				s.log.Warn().Err(err).Str("crypto_type", string(w.CryptoType)).Msg("no price for wallet balance")
				price = decimal.Zero
			}
			prices[w.CryptoType] = price
		}
		views = append(views, ports.WalletView{
			WalletRecord: w,
			BalanceUSD:   w.AvailableBalance.Mul(price).Round(2),
		})
	}
	return views, nil
}

// GasCheck reports whether amount could be withdrawn from the merchant's
// custodial wallet of cryptoType with its network fee paid.
func (s *WalletServiceImpl) GasCheck(ctx context.Context, merchantID uuid.UUID, cryptoType string, amount decimal.Decimal) (*domain.GasValidationResult, error) {
	ct, err := domain.ParseCryptoType(cryptoType)
	if err != nil {
		return nil, apperror.ErrInvalidCryptoType(cryptoType)
	}
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	wallet, err := s.custodialWallet(ctx, merchantID, ct)
	if err != nil {
		return nil, err
	}
	check := ports.GasCheck{
		CryptoType: ct,
		Amount:     amount,
		Balance:    wallet.AvailableBalance,
	}
	if !ct.IsNative() {
		native, err := s.walletRepo.Get(ctx, merchantID, ct.NativeCurrency(), wallet.Mode)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("get native wallet: %w", err))
		}
		if native != nil {
			check.NativeBalance = native.AvailableBalance
		}
	}
	return s.gas.Validate(ctx, check)
}

func (s *WalletServiceImpl) custodialWallet(ctx context.Context, merchantID uuid.UUID, ct domain.CryptoType) (*domain.WalletRecord, error) {
	for _, mode := range []domain.WalletMode{domain.WalletModeGenerated, domain.WalletModeImported} {
		w, err := s.walletRepo.Get(ctx, merchantID, ct, mode)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
		}
		if w != nil {
			return w, nil
		}
	}
	return nil, apperror.ErrNotFound("wallet")
}
