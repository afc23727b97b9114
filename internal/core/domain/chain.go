package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChainEvent is one observation of a transfer reported by a chain observer.
// The same transaction is reported again as confirmations grow.
type ChainEvent struct {
	Network       Network         `json:"network"`
	TxHash        string          `json:"tx_hash"`
	CryptoType    CryptoType      `json:"crypto_type"`
	Address       string          `json:"address"` // recipient
	Amount        decimal.Decimal `json:"amount"`
	Confirmations int             `json:"confirmations"`
	Reverted      bool            `json:"reverted"` // dropped by a reorg
	ObservedAt    time.Time       `json:"observed_at"`
}

// TxState is what a chain reports about a broadcast transaction.
type TxState string

const (
	TxStateUnknown   TxState = "UNKNOWN"
	TxStatePending   TxState = "PENDING"
	TxStateConfirmed TxState = "CONFIRMED"
	TxStateFailed    TxState = "FAILED"
)
