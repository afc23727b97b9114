package service

import (
	"context"
	"fmt"
	"strings"

	"cryptopay-gateway/internal/core/domain"

	"github.com/shopspring/decimal"
)

// StaticPriceOracle prices crypto types from configured USD rates keyed by symbol.
type StaticPriceOracle struct {
	prices map[string]decimal.Decimal
}

// NewStaticPriceOracle builds an oracle from a symbol -> USD map. Keys are
// matched case-insensitively since viper lowercases map keys.
func NewStaticPriceOracle(prices map[string]float64) *StaticPriceOracle {
	o := &StaticPriceOracle{prices: make(map[string]decimal.Decimal, len(prices))}
	for symbol, price := range prices {
		o.prices[strings.ToUpper(symbol)] = decimal.NewFromFloat(price)
	}
	return o
}

// USDPrice returns the price of one unit of cryptoType.
func (o *StaticPriceOracle) USDPrice(_ context.Context, cryptoType domain.CryptoType) (decimal.Decimal, error) {
	if !cryptoType.Valid() {
		return decimal.Zero, fmt.Errorf("pricing %s: %w", cryptoType, domain.ErrUnknownCryptoType)
	}
	price, ok := o.prices[cryptoType.Symbol()]
	if !ok || !price.IsPositive() {
		return decimal.Zero, fmt.Errorf("no usd price configured for %s", cryptoType.Symbol())
	}
	return price, nil
}
