package service

import (
	"cryptopay-gateway/config"
	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/pkg/apperror"

	"github.com/shopspring/decimal"
)

// Platform bounds for any fee rate, default or merchant override.
var (
	minFeeRate = decimal.RequireFromString("0.001")
	maxFeeRate = decimal.RequireFromString("0.05")
)

const usdPlaces = 2

// FeeInput is everything a fee depends on.
type FeeInput struct {
	RequestedAmount decimal.Decimal
	FeeRate         decimal.Decimal
	MinFee          decimal.Decimal
	MaxFee          decimal.Decimal // zero means unbounded
	CustomerPaysFee bool
}

// FeeQuote is the settlement split of one payment, in USD.
type FeeQuote struct {
	RequestedAmount decimal.Decimal `json:"requested_amount"`
	FeeRate         decimal.Decimal `json:"fee_rate"`
	ProcessingFee   decimal.Decimal `json:"processing_fee"`
	CustomerAmount  decimal.Decimal `json:"customer_amount"`
	MerchantNet     decimal.Decimal `json:"merchant_net"`
	CustomerPaysFee bool            `json:"customer_pays_fee"`
}

// FeeCalculator computes processing fees. It holds no state besides the platform defaults.
type FeeCalculator struct {
	defaultRate decimal.Decimal
	minFee      decimal.Decimal
	maxFee      decimal.Decimal
}

// NewFeeCalculator creates a FeeCalculator from payment settings.
func NewFeeCalculator(cfg config.PaymentConfig) *FeeCalculator {
	return &FeeCalculator{
		defaultRate: cfg.FeeRate(),
		minFee:      cfg.MinFee(),
		maxFee:      cfg.MaxFee(),
	}
}

// Calculate returns fee = clamp(requested × rate, min, max) rounded half-up to cents.
// The fee never depends on who pays it.
func (c *FeeCalculator) Calculate(in FeeInput) (*FeeQuote, error) {
	if !in.RequestedAmount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	if in.FeeRate.LessThan(minFeeRate) || in.FeeRate.GreaterThan(maxFeeRate) {
		return nil, apperror.Validation("fee rate must be between 0.1% and 5%")
	}

	fee := in.RequestedAmount.Mul(in.FeeRate)
	if fee.LessThan(in.MinFee) {
		fee = in.MinFee
	}
	if in.MaxFee.IsPositive() && fee.GreaterThan(in.MaxFee) {
		fee = in.MaxFee
	}
	fee = fee.Round(usdPlaces)

	q := &FeeQuote{
		RequestedAmount: in.RequestedAmount,
		FeeRate:         in.FeeRate,
		ProcessingFee:   fee,
		CustomerPaysFee: in.CustomerPaysFee,
	}
	if in.CustomerPaysFee {
		q.CustomerAmount = in.RequestedAmount.Add(fee)
		q.MerchantNet = in.RequestedAmount
	} else {
		// A merchant-paid fee must leave the merchant something to receive.
		if !in.RequestedAmount.GreaterThan(fee) {
			return nil, apperror.Validation("amount must exceed the processing fee of " + fee.StringFixed(usdPlaces) + " USD when the merchant pays it")
		}
		q.CustomerAmount = in.RequestedAmount
		q.MerchantNet = in.RequestedAmount.Sub(fee)
	}
	return q, nil
}

// RateFor returns the merchant's override or the platform default.
func (c *FeeCalculator) RateFor(m *domain.Merchant) decimal.Decimal {
	if m != nil && m.FeeRateOverride.Valid {
		return m.FeeRateOverride.Decimal
	}
	return c.defaultRate
}

// Quote applies the platform bounds to a merchant's payment.
func (c *FeeCalculator) Quote(m *domain.Merchant, amount decimal.Decimal, customerPaysFee bool) (*FeeQuote, error) {
	return c.Calculate(FeeInput{
		RequestedAmount: amount,
		FeeRate:         c.RateFor(m),
		MinFee:          c.minFee,
		MaxFee:          c.maxFee,
		CustomerPaysFee: customerPaysFee,
	})
}
