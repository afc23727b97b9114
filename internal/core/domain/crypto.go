package domain

import (
	"errors"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Network identifies a supported blockchain.
type Network string

const (
	NetworkEthereum Network = "ethereum"
	NetworkBSC      Network = "bsc"
	NetworkPolygon  Network = "polygon"
	NetworkArbitrum Network = "arbitrum"
	NetworkSolana   Network = "solana"
)

// AllNetworks lists every supported network.
func AllNetworks() []Network {
	return []Network{NetworkEthereum, NetworkBSC, NetworkPolygon, NetworkArbitrum, NetworkSolana}
}

// IsEVM returns true for account-model chains that share Ethereum tooling.
func (n Network) IsEVM() bool {
	switch n {
	case NetworkEthereum, NetworkBSC, NetworkPolygon, NetworkArbitrum:
		return true
	}
	return false
}

// Valid reports whether n is a supported network.
func (n Network) Valid() bool {
	return n.IsEVM() || n == NetworkSolana
}

// NativeCurrency returns the crypto type that pays fees on this network.
func (n Network) NativeCurrency() CryptoType {
	switch n {
	case NetworkEthereum:
		return CryptoETH
	case NetworkBSC:
		return CryptoBNB
	case NetworkPolygon:
		return CryptoMATIC
	case NetworkArbitrum:
		return CryptoARB
	case NetworkSolana:
		return CryptoSOL
	}
	return ""
}

// CryptoType is a (currency, network) pair a payment can be made in.
type CryptoType string

const (
	CryptoETH          CryptoType = "ETH"
	CryptoUSDTETH      CryptoType = "USDT_ETH"
	CryptoBNB          CryptoType = "BNB"
	CryptoUSDTBEP20    CryptoType = "USDT_BEP20"
	CryptoMATIC        CryptoType = "MATIC"
	CryptoUSDTPolygon  CryptoType = "USDT_POLYGON"
	CryptoARB          CryptoType = "ARB"
	CryptoUSDTArbitrum CryptoType = "USDT_ARBITRUM"
	CryptoSOL          CryptoType = "SOL"
	CryptoUSDTSPL      CryptoType = "USDT_SPL"
)

// ErrUnknownCryptoType is returned by ParseCryptoType.
var ErrUnknownCryptoType = errors.New("unknown crypto type")

type cryptoInfo struct {
	network  Network
	native   bool
	symbol   string
	decimals int32
}

var cryptoTable = map[CryptoType]cryptoInfo{
	CryptoETH:          {NetworkEthereum, true, "ETH", 18},
	CryptoUSDTETH:      {NetworkEthereum, false, "USDT", 6},
	CryptoBNB:          {NetworkBSC, true, "BNB", 18},
	CryptoUSDTBEP20:    {NetworkBSC, false, "USDT", 18},
	CryptoMATIC:        {NetworkPolygon, true, "MATIC", 18},
	CryptoUSDTPolygon:  {NetworkPolygon, false, "USDT", 6},
	CryptoARB:          {NetworkArbitrum, true, "ARB", 18},
	CryptoUSDTArbitrum: {NetworkArbitrum, false, "USDT", 6},
	CryptoSOL:          {NetworkSolana, true, "SOL", 9},
	CryptoUSDTSPL:      {NetworkSolana, false, "USDT", 6},
}

var cryptoAliases = map[string]CryptoType{
	"USDT_ERC20": CryptoUSDTETH,
	"USDT_BNB":   CryptoUSDTBEP20,
	"USDT_MATIC": CryptoUSDTPolygon,
	"USDT_ARB":   CryptoUSDTArbitrum,
	"USDT_SOL":   CryptoUSDTSPL,
}

// AllCryptoTypes lists the canonical crypto types in a stable order.
func AllCryptoTypes() []CryptoType {
	return []CryptoType{
		CryptoETH, CryptoUSDTETH,
		CryptoBNB, CryptoUSDTBEP20,
		CryptoMATIC, CryptoUSDTPolygon,
		CryptoARB, CryptoUSDTArbitrum,
		CryptoSOL, CryptoUSDTSPL,
	}
}

// ParseCryptoType resolves a canonical name or alias, case-insensitively.
func ParseCryptoType(s string) (CryptoType, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	if _, ok := cryptoTable[CryptoType(upper)]; ok {
		return CryptoType(upper), nil
	}
	if ct, ok := cryptoAliases[upper]; ok {
		return ct, nil
	}
	return "", ErrUnknownCryptoType
}

func (c CryptoType) Valid() bool {
	_, ok := cryptoTable[c]
	return ok
}

func (c CryptoType) Network() Network {
	return cryptoTable[c].network
}

// IsNative returns true when c is the fee currency of its network.
func (c CryptoType) IsNative() bool {
	return cryptoTable[c].native
}

// Symbol is the ticker used for pricing (USDT for every stablecoin variant).
func (c CryptoType) Symbol() string {
	return cryptoTable[c].symbol
}

func (c CryptoType) Decimals() int32 {
	return cryptoTable[c].decimals
}

// NativeCurrency returns the native crypto type of c's network.
func (c CryptoType) NativeCurrency() CryptoType {
	return c.Network().NativeCurrency()
}

// ToBaseUnits converts a human amount to the chain's integer unit, truncating dust.
func (c CryptoType) ToBaseUnits(amount decimal.Decimal) *big.Int {
	return amount.Shift(c.Decimals()).Truncate(0).BigInt()
}

// FromBaseUnits converts an integer chain amount to a human amount.
func (c CryptoType) FromBaseUnits(units *big.Int) decimal.Decimal {
	return decimal.NewFromBigInt(units, -c.Decimals())
}
