package domain

import "github.com/shopspring/decimal"

// GasStatus is the outcome of a gas sufficiency check.
type GasStatus string

const (
	GasSufficient         GasStatus = "SUFFICIENT"
	GasInsufficientNative GasStatus = "INSUFFICIENT_NATIVE" // native withdrawal, amount + fee exceeds balance
	GasInsufficientGas    GasStatus = "INSUFFICIENT_GAS"    // token withdrawal, native wallet cannot pay the fee
)

// GasValidationResult is derived on every check and never stored.
type GasValidationResult struct {
	Status         GasStatus       `json:"status"`
	CanWithdraw    bool            `json:"can_withdraw"`
	GasRequired    decimal.Decimal `json:"gas_required"`
	GasAvailable   decimal.Decimal `json:"gas_available"`
	GasShortfall   decimal.Decimal `json:"gas_shortfall"`
	NativeCurrency CryptoType      `json:"native_currency"`
	Network        Network         `json:"network"`
}
