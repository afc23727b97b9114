package chain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"cryptopay-gateway/internal/core/ports"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"
)

// erc20TransferSelector is the first 4 bytes of keccak256("transfer(address,uint256)").
var erc20TransferSelector = []byte{0xa9, 0x05, 0x9c, 0xbb}

var errKeyMismatch = errors.New("signing key does not control the sending address")

// Signer implements ports.TxSigner for EVM networks and Solana.
type Signer struct{}

// NewSigner creates a new transfer signer.
func NewSigner() *Signer {
	return &Signer{}
}

// Sign produces a raw transaction from an unlocked key. The key is only read.
func (s *Signer) Sign(_ context.Context, key *ports.SigningKey, transfer *ports.UnsignedTransfer) (*ports.SignedTransfer, error) {
	if key == nil || key.Secret == nil || key.Secret.Destroyed() {
		return nil, errors.New("signing key is not available")
	}
	if transfer.Amount == nil || transfer.Amount.Sign() <= 0 {
		return nil, errors.New("transfer amount must be positive")
	}
	network := transfer.CryptoType.Network()
	if network.IsEVM() {
		return signEVM(key, transfer)
	}
	return signSolana(key, transfer)
}

func signEVM(key *ports.SigningKey, t *ports.UnsignedTransfer) (*ports.SignedTransfer, error) {
	priv, err := crypto.ToECDSA(key.Secret.Bytes())
	if err != nil {
		return nil, fmt.Errorf("loading evm key: %w", err)
	}
	defer zeroECDSA(priv)

	from := crypto.PubkeyToAddress(priv.PublicKey)
	if !strings.EqualFold(from.Hex(), t.From) {
		return nil, errKeyMismatch
	}
	if t.ChainID == nil || t.GasPrice == nil {
		return nil, errors.New("evm transfer needs chain id and gas price")
	}

	to := common.HexToAddress(t.To)
	legacy := &types.LegacyTx{
		Nonce:    t.Nonce,
		GasPrice: t.GasPrice,
		Gas:      t.GasLimit,
		To:       &to,
		Value:    t.Amount,
	}
	if !t.CryptoType.IsNative() {
		if !common.IsHexAddress(t.TokenContract) {
			return nil, fmt.Errorf("no token contract for %s", t.CryptoType)
		}
		contract := common.HexToAddress(t.TokenContract)
		legacy.To = &contract
		legacy.Value = new(big.Int)
		legacy.Data = erc20TransferData(to, t.Amount)
	}

	signed, err := types.SignTx(types.NewTx(legacy), types.NewEIP155Signer(t.ChainID), priv)
	if err != nil {
		return nil, fmt.Errorf("signing evm transaction: %w", err)
	}
	raw, err := signed.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("encoding evm transaction: %w", err)
	}
	return &ports.SignedTransfer{
		Network: t.CryptoType.Network(),
		TxHash:  signed.Hash().Hex(),
		Raw:     raw,
	}, nil
}

// erc20TransferData encodes transfer(to, amount).
func erc20TransferData(to common.Address, amount *big.Int) []byte {
	data := make([]byte, 0, 4+32+32)
	data = append(data, erc20TransferSelector...)
	data = append(data, common.LeftPadBytes(to.Bytes(), 32)...)
	data = append(data, common.LeftPadBytes(amount.Bytes(), 32)...)
	return data
}

func zeroECDSA(k *ecdsa.PrivateKey) {
	if k != nil && k.D != nil {
		k.D.SetInt64(0)
	}
}

func signSolana(key *ports.SigningKey, t *ports.UnsignedTransfer) (*ports.SignedTransfer, error) {
	raw := key.Secret.Bytes()
	if len(raw) != 64 {
		return nil, errors.New("solana key must be 64 bytes")
	}
	priv := solana.PrivateKey(raw)
	from := priv.PublicKey()
	if from.String() != t.From {
		return nil, errKeyMismatch
	}
	to, err := solana.PublicKeyFromBase58(t.To)
	if err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}
	blockhash, err := solana.HashFromBase58(t.RecentBlockhash)
	if err != nil {
		return nil, fmt.Errorf("invalid recent blockhash: %w", err)
	}
	if !t.Amount.IsUint64() {
		return nil, errors.New("amount exceeds u64")
	}
	amount := t.Amount.Uint64()

	var instructions []solana.Instruction
	if t.CryptoType.IsNative() {
		instructions = append(instructions, system.NewTransferInstruction(amount, from, to).Build())
	} else {
		mint, err := solana.PublicKeyFromBase58(t.TokenContract)
		if err != nil {
			return nil, fmt.Errorf("invalid token mint for %s: %w", t.CryptoType, err)
		}
		source, _, err := solana.FindAssociatedTokenAddress(from, mint)
		if err != nil {
			return nil, fmt.Errorf("deriving source token account: %w", err)
		}
		destination, _, err := solana.FindAssociatedTokenAddress(to, mint)
		if err != nil {
			return nil, fmt.Errorf("deriving destination token account: %w", err)
		}
		if t.CreateTokenAccount {
			instructions = append(instructions, associatedtokenaccount.NewCreateInstruction(from, to, mint).Build())
		}
		instructions = append(instructions, token.NewTransferCheckedInstruction(
			amount,
			uint8(t.CryptoType.Decimals()),
			source,
			mint,
			destination,
			from,
			nil,
		).Build())
	}

	tx, err := solana.NewTransaction(instructions, blockhash, solana.TransactionPayer(from))
	if err != nil {
		return nil, fmt.Errorf("building solana transaction: %w", err)
	}
	if _, err := tx.Sign(func(k solana.PublicKey) *solana.PrivateKey {
		if k.Equals(from) {
			return &priv
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("signing solana transaction: %w", err)
	}
	encoded, err := tx.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("encoding solana transaction: %w", err)
	}
	return &ports.SignedTransfer{
		Network: t.CryptoType.Network(),
		TxHash:  tx.Signatures[0].String(),
		Raw:     encoded,
	}, nil
}
