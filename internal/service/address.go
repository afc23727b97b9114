package service

import (
	"strings"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gagliardetto/solana-go"
)

// CanonicalAddress validates address for network and returns the form the
// gateway stores and matches on: EIP-55 for EVM chains, base58 for Solana.
func CanonicalAddress(network domain.Network, address string) (string, error) {
	address = strings.TrimSpace(address)
	switch {
	case network.IsEVM():
		if !common.IsHexAddress(address) {
			return "", apperror.ErrInvalidAddress(string(network))
		}
		checksummed := common.HexToAddress(address).Hex()
		body := strings.TrimPrefix(strings.TrimPrefix(address, "0x"), "0X")
		// All-lower or all-upper input carries no checksum; mixed case must match it.
		if body != strings.ToLower(body) && body != strings.ToUpper(body) && "0x"+body != checksummed {
			return "", apperror.ErrInvalidAddress(string(network))
		}
		return checksummed, nil
	case network == domain.NetworkSolana:
		pk, err := solana.PublicKeyFromBase58(address)
		if err != nil {
			return "", apperror.ErrInvalidAddress(string(network))
		}
		return pk.String(), nil
	}
	return "", apperror.ErrInvalidAddress(string(network))
}
