package service

import (
	"context"
	"fmt"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// GasValidatorImpl implements ports.GasValidator.
type GasValidatorImpl struct {
	walletRepo ports.WalletRepository
	estimator  ports.GasEstimator
}

// NewGasValidator creates a new gas validator.
func NewGasValidator(walletRepo ports.WalletRepository, estimator ports.GasEstimator) *GasValidatorImpl {
	return &GasValidatorImpl{walletRepo: walletRepo, estimator: estimator}
}

// Validate decides whether check.Amount can leave the wallet with its network fee paid.
func (v *GasValidatorImpl) Validate(ctx context.Context, check ports.GasCheck) (*domain.GasValidationResult, error) {
	if !check.CryptoType.Valid() {
		return nil, apperror.ErrInvalidCryptoType(string(check.CryptoType))
	}
	if !check.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	gas, err := v.estimator.EstimateTransferFee(ctx, check.CryptoType)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("estimating gas: %w", err))
	}

	res := &domain.GasValidationResult{
		GasRequired:    gas,
		GasShortfall:   decimal.Zero,
		NativeCurrency: check.CryptoType.NativeCurrency(),
		Network:        check.CryptoType.Network(),
	}

	if check.CryptoType.IsNative() {
		// Fee comes out of the same balance as the amount.
		left := check.Balance.Sub(check.Amount)
		res.GasAvailable = decimal.Max(left, decimal.Zero)
		if left.GreaterThanOrEqual(gas) {
			res.Status = domain.GasSufficient
			res.CanWithdraw = true
			return res, nil
		}
		res.Status = domain.GasInsufficientNative
		res.GasShortfall = check.Amount.Add(gas).Sub(check.Balance)
		return res, nil
	}

	res.GasAvailable = check.NativeBalance
	if check.NativeBalance.LessThan(gas) {
		res.Status = domain.GasInsufficientGas
		res.GasShortfall = gas.Sub(check.NativeBalance)
		return res, nil
	}
	res.Status = domain.GasSufficient
	res.CanWithdraw = true
	return res, nil
}

// ValidateLocked validates against row-locked balances. wallet must already be
// locked by the caller in tx; for tokens the native wallet of the same mode is
// locked here. A missing native wallet counts as a zero native balance.
func (v *GasValidatorImpl) ValidateLocked(ctx context.Context, tx pgx.Tx, wallet *domain.WalletRecord, amount decimal.Decimal) (*domain.GasValidationResult, *domain.WalletRecord, error) {
	if wallet.CryptoType.IsNative() {
		res, err := v.Validate(ctx, ports.GasCheck{
			CryptoType: wallet.CryptoType,
			Amount:     amount,
			Balance:    wallet.AvailableBalance,
		})
		if err != nil {
			return nil, nil, err
		}
		return res, wallet, nil
	}

	native, err := v.walletRepo.GetForUpdate(ctx, tx, wallet.MerchantID, wallet.CryptoType.NativeCurrency(), wallet.Mode)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("locking native wallet: %w", err))
	}
	nativeBalance := decimal.Zero
	if native != nil {
		nativeBalance = native.AvailableBalance
	}

	res, err := v.Validate(ctx, ports.GasCheck{
		CryptoType:    wallet.CryptoType,
		Amount:        amount,
		Balance:       wallet.AvailableBalance,
		NativeBalance: nativeBalance,
	})
	if err != nil {
		return nil, nil, err
	}
	return res, native, nil
}
