package ports

//go:generate mockgen -source=chain.go -destination=mocks/mock_chain.go -package=mocks

import (
	"context"
	"math/big"

	"cryptopay-gateway/internal/core/domain"

	"github.com/shopspring/decimal"
)

// ChainEventSink receives observations from chain observers.
type ChainEventSink interface {
	OnChainEvent(ctx context.Context, event domain.ChainEvent) error
}

// ChainObserver watches one network and reports transfers to sink until ctx ends.
// Run returns an UpstreamChainError when the connection to the network is lost.
type ChainObserver interface {
	Network() domain.Network
	Run(ctx context.Context, sink ChainEventSink) error
}

// TransferRequest describes a transfer to prepare for signing.
type TransferRequest struct {
	CryptoType domain.CryptoType
	From       string
	To         string
	Amount     decimal.Decimal
}

// UnsignedTransfer carries everything a signer needs. Fields unused by a
// network stay zero.
type UnsignedTransfer struct {
	CryptoType      domain.CryptoType
	From            string
	To              string
	Amount          *big.Int // base units
	ChainID         *big.Int
	Nonce           uint64
	GasPrice        *big.Int
	GasLimit        uint64
	TokenContract   string
	RecentBlockhash string
	// CreateTokenAccount asks the signer to open the recipient's token account first.
	CreateTokenAccount bool
}

// SignedTransfer is a raw transaction ready for broadcast.
type SignedTransfer struct {
	Network domain.Network
	TxHash  string
	Raw     []byte
}

// ChainClient talks to one network's RPC endpoint.
type ChainClient interface {
	Network() domain.Network
	PrepareTransfer(ctx context.Context, req TransferRequest) (*UnsignedTransfer, error)
	Broadcast(ctx context.Context, tx *SignedTransfer) error
	TxStatus(ctx context.Context, txHash string) (domain.TxState, error)
}

// ChainRegistry resolves the client for a network.
type ChainRegistry interface {
	Client(network domain.Network) (ChainClient, error)
}

// TxSigner signs prepared transfers with an unlocked key.
type TxSigner interface {
	Sign(ctx context.Context, key *SigningKey, transfer *UnsignedTransfer) (*SignedTransfer, error)
}

// GasEstimator returns the network fee of a transfer in native units.
type GasEstimator interface {
	EstimateTransferFee(ctx context.Context, cryptoType domain.CryptoType) (decimal.Decimal, error)
}

// PriceOracle returns the USD price of one unit of a crypto type.
type PriceOracle interface {
	USDPrice(ctx context.Context, cryptoType domain.CryptoType) (decimal.Decimal, error)
}

// EventPublisher fans out webhook events to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, event *domain.WebhookEvent) error
}
