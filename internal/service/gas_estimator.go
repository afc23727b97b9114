package service

import (
	"context"
	"fmt"

	"cryptopay-gateway/config"
	"cryptopay-gateway/internal/core/domain"

	"github.com/shopspring/decimal"
)

var (
	gweiPerNative     = decimal.New(1, 9)
	lamportsPerNative = decimal.New(1, 9)
)

// ConfiguredGasEstimator returns transfer fees from static per-network settings.
type ConfiguredGasEstimator struct {
	chains map[domain.Network]config.ChainConfig
}

// NewConfiguredGasEstimator creates an estimator over the chains section of the config.
func NewConfiguredGasEstimator(chains map[string]config.ChainConfig) *ConfiguredGasEstimator {
	e := &ConfiguredGasEstimator{chains: make(map[domain.Network]config.ChainConfig, len(chains))}
	for name, c := range chains {
		e.chains[domain.Network(name)] = c
	}
	return e
}

// EstimateTransferFee returns the fee of one transfer of cryptoType in native units.
func (e *ConfiguredGasEstimator) EstimateTransferFee(_ context.Context, cryptoType domain.CryptoType) (decimal.Decimal, error) {
	network := cryptoType.Network()
	cfg, ok := e.chains[network]
	if !ok {
		return decimal.Zero, fmt.Errorf("no chain configured for %s", cryptoType)
	}

	if network == domain.NetworkSolana {
		lamports := cfg.FeeLamports
		if !cryptoType.IsNative() {
			lamports += cfg.TokenAccountLamports
		}
		return decimal.NewFromInt(int64(lamports)).Div(lamportsPerNative), nil
	}

	limit := cfg.GasLimitNative
	if !cryptoType.IsNative() {
		limit = cfg.GasLimitToken
	}
	price := decimal.NewFromFloat(cfg.GasPriceGwei)
	return price.Mul(decimal.NewFromInt(int64(limit))).Div(gweiPerNative), nil
}
