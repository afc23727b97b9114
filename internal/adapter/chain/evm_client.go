package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"cryptopay-gateway/config"
	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/apperror"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// evmBackend is the subset of ethclient.Client the gateway uses.
type evmBackend interface {
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	TransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error)
	BlockNumber(ctx context.Context) (uint64, error)
}

// EVMClient implements ports.ChainClient over JSON-RPC.
type EVMClient struct {
	network domain.Network
	backend evmBackend
	cfg     config.ChainConfig
	log     zerolog.Logger
}

// DialEVM connects to an EVM node.
func DialEVM(ctx context.Context, network domain.Network, cfg config.ChainConfig, log zerolog.Logger) (*EVMClient, error) {
	c, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dialing %s rpc: %w", network, err)
	}
	return newEVMClient(network, c, cfg, log), nil
}

func newEVMClient(network domain.Network, backend evmBackend, cfg config.ChainConfig, log zerolog.Logger) *EVMClient {
	return &EVMClient{
		network: network,
		backend: backend,
		cfg:     cfg,
		log:     log.With().Str("network", string(network)).Logger(),
	}
}

func (c *EVMClient) Network() domain.Network { return c.network }

// PrepareTransfer fills nonce, gas and chain parameters for a transfer.
func (c *EVMClient) PrepareTransfer(ctx context.Context, req ports.TransferRequest) (*ports.UnsignedTransfer, error) {
	if req.CryptoType.Network() != c.network {
		return nil, fmt.Errorf("%s is not a %s asset", req.CryptoType, c.network)
	}
	from := common.HexToAddress(req.From)
	nonce, err := c.backend.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, apperror.ErrUpstreamChain(fmt.Errorf("pending nonce: %w", err))
	}

	gasPrice, err := c.gasPrice(ctx)
	if err != nil {
		return nil, err
	}

	limit := c.cfg.GasLimitNative
	if !req.CryptoType.IsNative() {
		limit = c.cfg.GasLimitToken
	}

	return &ports.UnsignedTransfer{
		CryptoType:    req.CryptoType,
		From:          from.Hex(),
		To:            common.HexToAddress(req.To).Hex(),
		Amount:        req.CryptoType.ToBaseUnits(req.Amount),
		ChainID:       big.NewInt(c.cfg.ChainID),
		Nonce:         nonce,
		GasPrice:      gasPrice,
		GasLimit:      limit,
		TokenContract: c.cfg.TokenContract,
	}, nil
}

// gasPrice uses the configured price so the fee matches what gas validation reserved.
func (c *EVMClient) gasPrice(ctx context.Context) (*big.Int, error) {
	if c.cfg.GasPriceGwei > 0 {
		wei := decimal.NewFromFloat(c.cfg.GasPriceGwei).Shift(9).Truncate(0)
		return wei.BigInt(), nil
	}
	price, err := c.backend.SuggestGasPrice(ctx)
	if err != nil {
		return nil, apperror.ErrUpstreamChain(fmt.Errorf("suggest gas price: %w", err))
	}
	return price, nil
}

// Broadcast submits a signed transaction. A node that already knows the
// transaction counts as success.
func (c *EVMClient) Broadcast(ctx context.Context, signed *ports.SignedTransfer) error {
	tx := new(types.Transaction)
	if err := tx.UnmarshalBinary(signed.Raw); err != nil {
		return apperror.ErrChainRejected(fmt.Errorf("decoding transaction: %w", err))
	}
	err := c.backend.SendTransaction(ctx, tx)
	if err == nil {
		c.log.Info().Str("tx_hash", tx.Hash().Hex()).Msg("transaction broadcast")
		return nil
	}
	if strings.Contains(strings.ToLower(err.Error()), "already known") {
		return nil
	}
	return classifyEVMError(err)
}

// TxStatus reports CONFIRMED once the receipt succeeded with enough blocks on top.
func (c *EVMClient) TxStatus(ctx context.Context, txHash string) (domain.TxState, error) {
	hash := common.HexToHash(txHash)
	receipt, err := c.backend.TransactionReceipt(ctx, hash)
	if errors.Is(err, ethereum.NotFound) {
		_, pending, err := c.backend.TransactionByHash(ctx, hash)
		if errors.Is(err, ethereum.NotFound) {
			return domain.TxStateUnknown, nil
		}
		if err != nil {
			return domain.TxStateUnknown, apperror.ErrUpstreamChain(err)
		}
		if pending {
			return domain.TxStatePending, nil
		}
		return domain.TxStateUnknown, nil
	}
	if err != nil {
		return domain.TxStateUnknown, apperror.ErrUpstreamChain(err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return domain.TxStateFailed, nil
	}

	head, err := c.backend.BlockNumber(ctx)
	if err != nil {
		return domain.TxStateUnknown, apperror.ErrUpstreamChain(err)
	}
	if receipt.BlockNumber == nil {
		return domain.TxStatePending, nil
	}
	confirmations := int64(head) - receipt.BlockNumber.Int64() + 1
	if confirmations >= int64(c.cfg.Confirmations) {
		return domain.TxStateConfirmed, nil
	}
	return domain.TxStatePending, nil
}

// classifyEVMError separates node rejections from transport failures.
func classifyEVMError(err error) error {
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return apperror.ErrChainRejected(err)
	}
	return apperror.ErrUpstreamChain(err)
}
