package chain

import (
	"context"
	"errors"
	"fmt"

	"cryptopay-gateway/config"
	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/apperror"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
	"github.com/rs/zerolog"
)

// solanaBackend is the subset of rpc.Client the gateway uses.
type solanaBackend interface {
	GetLatestBlockhash(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error)
	GetAccountInfo(ctx context.Context, account solana.PublicKey) (*rpc.GetAccountInfoResult, error)
	SendRawTransaction(ctx context.Context, rawTx []byte) (solana.Signature, error)
	GetSignatureStatuses(ctx context.Context, searchTransactionHistory bool, transactionSignatures ...solana.Signature) (*rpc.GetSignatureStatusesResult, error)
}

// SolanaClient implements ports.ChainClient for Solana.
type SolanaClient struct {
	backend solanaBackend
	cfg     config.ChainConfig
	log     zerolog.Logger
}

// NewSolanaRPC creates a client for the configured endpoint.
func NewSolanaRPC(cfg config.ChainConfig, log zerolog.Logger) *SolanaClient {
	return newSolanaClient(rpc.New(cfg.RPCURL), cfg, log)
}

func newSolanaClient(backend solanaBackend, cfg config.ChainConfig, log zerolog.Logger) *SolanaClient {
	return &SolanaClient{
		backend: backend,
		cfg:     cfg,
		log:     log.With().Str("network", string(domain.NetworkSolana)).Logger(),
	}
}

func (c *SolanaClient) Network() domain.Network { return domain.NetworkSolana }

// PrepareTransfer fetches a recent blockhash and, for SPL transfers, whether
// the recipient still needs a token account.
func (c *SolanaClient) PrepareTransfer(ctx context.Context, req ports.TransferRequest) (*ports.UnsignedTransfer, error) {
	if req.CryptoType.Network() != domain.NetworkSolana {
		return nil, fmt.Errorf("%s is not a solana asset", req.CryptoType)
	}
	to, err := solana.PublicKeyFromBase58(req.To)
	if err != nil {
		return nil, apperror.ErrInvalidAddress(string(domain.NetworkSolana))
	}

	bh, err := c.backend.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return nil, apperror.ErrUpstreamChain(fmt.Errorf("latest blockhash: %w", err))
	}

	t := &ports.UnsignedTransfer{
		CryptoType:      req.CryptoType,
		From:            req.From,
		To:              to.String(),
		Amount:          req.CryptoType.ToBaseUnits(req.Amount),
		RecentBlockhash: bh.Value.Blockhash.String(),
	}
	if req.CryptoType.IsNative() {
		return t, nil
	}

	mint, err := solana.PublicKeyFromBase58(c.cfg.TokenContract)
	if err != nil {
		return nil, fmt.Errorf("invalid token mint: %w", err)
	}
	t.TokenContract = mint.String()
	ata, _, err := solana.FindAssociatedTokenAddress(to, mint)
	if err != nil {
		return nil, fmt.Errorf("deriving token account: %w", err)
	}
	_, err = c.backend.GetAccountInfo(ctx, ata)
	switch {
	case errors.Is(err, rpc.ErrNotFound):
		t.CreateTokenAccount = true
	case err != nil:
		return nil, apperror.ErrUpstreamChain(fmt.Errorf("token account lookup: %w", err))
	}
	return t, nil
}

// Broadcast submits a signed transaction with preflight checks.
func (c *SolanaClient) Broadcast(ctx context.Context, signed *ports.SignedTransfer) error {
	sig, err := c.backend.SendRawTransaction(ctx, signed.Raw)
	if err != nil {
		var rpcErr *jsonrpc.RPCError
		if errors.As(err, &rpcErr) {
			return apperror.ErrChainRejected(err)
		}
		return apperror.ErrUpstreamChain(err)
	}
	c.log.Info().Str("signature", sig.String()).Msg("transaction broadcast")
	return nil
}

// TxStatus maps signature status to TxState. Finalized always counts as confirmed.
func (c *SolanaClient) TxStatus(ctx context.Context, txHash string) (domain.TxState, error) {
	sig, err := solana.SignatureFromBase58(txHash)
	if err != nil {
		return domain.TxStateUnknown, fmt.Errorf("invalid signature: %w", err)
	}
	res, err := c.backend.GetSignatureStatuses(ctx, true, sig)
	if err != nil {
		return domain.TxStateUnknown, apperror.ErrUpstreamChain(err)
	}
	if res == nil || len(res.Value) == 0 || res.Value[0] == nil {
		return domain.TxStateUnknown, nil
	}
	status := res.Value[0]
	if status.Err != nil {
		return domain.TxStateFailed, nil
	}
	switch status.ConfirmationStatus {
	case rpc.ConfirmationStatusFinalized:
		return domain.TxStateConfirmed, nil
	case rpc.ConfirmationStatusConfirmed:
		if status.Confirmations == nil || int(*status.Confirmations) >= c.cfg.Confirmations {
			return domain.TxStateConfirmed, nil
		}
	}
	return domain.TxStatePending, nil
}
