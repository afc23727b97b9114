package service

import (
	"testing"

	"cryptopay-gateway/config"
	"cryptopay-gateway/internal/core/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeeCalculator_Calculate_CustomerPays(t *testing.T) {
	c := NewFeeCalculator(config.PaymentConfig{DefaultFeeRate: 0.0075})

	q, err := c.Calculate(FeeInput{
		RequestedAmount: dec("100.00"),
		FeeRate:         dec("0.0075"),
		CustomerPaysFee: true,
	})
	require.NoError(t, err)
	assertDecimal(t, "0.75", q.ProcessingFee)
	assertDecimal(t, "100.75", q.CustomerAmount)
	assertDecimal(t, "100.00", q.MerchantNet)
	assert.True(t, q.CustomerPaysFee)
}

func TestFeeCalculator_Calculate_MerchantPays(t *testing.T) {
	c := NewFeeCalculator(config.PaymentConfig{DefaultFeeRate: 0.0075})

	q, err := c.Calculate(FeeInput{
		RequestedAmount: dec("100.00"),
		FeeRate:         dec("0.0075"),
	})
	require.NoError(t, err)
	assertDecimal(t, "0.75", q.ProcessingFee)
	assertDecimal(t, "100.00", q.CustomerAmount)
	assertDecimal(t, "99.25", q.MerchantNet)
}

func TestFeeCalculator_Calculate_FeeIndependentOfPayer(t *testing.T) {
	c := NewFeeCalculator(config.PaymentConfig{})
	for _, amount := range []string{"0.11", "1", "19.99", "250.50", "12345.67"} {
		base := FeeInput{RequestedAmount: dec(amount), FeeRate: dec("0.0123"), MinFee: dec("0.10")}
		payer := base
		payer.CustomerPaysFee = true

		a, err := c.Calculate(base)
		require.NoError(t, err)
		b, err := c.Calculate(payer)
		require.NoError(t, err)

		assert.True(t, a.ProcessingFee.Equal(b.ProcessingFee), amount)
		assert.True(t, b.CustomerAmount.Sub(b.MerchantNet).Equal(b.ProcessingFee), amount)
		assert.True(t, a.CustomerAmount.Sub(a.MerchantNet).Equal(a.ProcessingFee), amount)
	}
}

func TestFeeCalculator_Calculate_Clamps(t *testing.T) {
	c := NewFeeCalculator(config.PaymentConfig{})

	tests := []struct {
		name    string
		amount  string
		minFee  string
		maxFee  string
		wantFee string
	}{
		{"below min", "10", "0.50", "0", "0.50"},
		{"above max", "10000", "0.50", "25", "25"},
		{"zero max is unbounded", "10000", "0", "0", "100"},
		{"rounds half up", "10.50", "0", "0", "0.11"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := c.Calculate(FeeInput{
				RequestedAmount: dec(tt.amount),
				FeeRate:         dec("0.01"),
				MinFee:          dec(tt.minFee),
				MaxFee:          dec(tt.maxFee),
			})
			require.NoError(t, err)
			assertDecimal(t, tt.wantFee, q.ProcessingFee)
		})
	}
}

func TestFeeCalculator_Calculate_InvalidAmount(t *testing.T) {
	c := NewFeeCalculator(config.PaymentConfig{})
	for _, amount := range []string{"0", "-5"} {
		_, err := c.Calculate(FeeInput{RequestedAmount: dec(amount), FeeRate: dec("0.01")})
		assertAppError(t, err, "PAY_002")
	}
}

func TestFeeCalculator_Calculate_MerchantPaidFeeExceedsAmount(t *testing.T) {
	c := NewFeeCalculator(config.PaymentConfig{})

	for _, amount := range []string{"0.30", "0.50"} {
		_, err := c.Calculate(FeeInput{RequestedAmount: dec(amount), FeeRate: dec("0.01"), MinFee: dec("0.50")})
		assertAppError(t, err, "PAY_002")
	}

	// The customer can still cover a fee larger than the price.
	q, err := c.Calculate(FeeInput{
		RequestedAmount: dec("0.30"),
		FeeRate:         dec("0.01"),
		MinFee:          dec("0.50"),
		CustomerPaysFee: true,
	})
	require.NoError(t, err)
	assertDecimal(t, "0.80", q.CustomerAmount)
	assertDecimal(t, "0.30", q.MerchantNet)

	q, err = c.Calculate(FeeInput{RequestedAmount: dec("0.51"), FeeRate: dec("0.01"), MinFee: dec("0.50")})
	require.NoError(t, err)
	assertDecimal(t, "0.01", q.MerchantNet)
}

func TestFeeCalculator_Calculate_RateOutOfBounds(t *testing.T) {
	c := NewFeeCalculator(config.PaymentConfig{})
	for _, rate := range []string{"0.0005", "0.06"} {
		_, err := c.Calculate(FeeInput{RequestedAmount: dec("100"), FeeRate: dec(rate)})
		assertAppError(t, err, "PAY_002")
	}
}

func TestFeeCalculator_RateFor(t *testing.T) {
	c := NewFeeCalculator(config.PaymentConfig{DefaultFeeRate: 0.01})

	assertDecimal(t, "0.01", c.RateFor(nil))
	assertDecimal(t, "0.01", c.RateFor(&domain.Merchant{}))

	m := &domain.Merchant{FeeRateOverride: decimal.NewNullDecimal(dec("0.005"))}
	assertDecimal(t, "0.005", c.RateFor(m))

	q, err := c.Quote(m, dec("200"), false)
	require.NoError(t, err)
	assertDecimal(t, "1.00", q.ProcessingFee)
	assertDecimal(t, "199.00", q.MerchantNet)
}
