package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WithdrawalKind distinguishes why funds leave a custodial wallet.
type WithdrawalKind string

const (
	WithdrawalKindMerchant WithdrawalKind = "MERCHANT"
	WithdrawalKindForward  WithdrawalKind = "FORWARD"
	WithdrawalKindRefund   WithdrawalKind = "REFUND"
)

// WithdrawalStatus represents the lifecycle state of a withdrawal.
type WithdrawalStatus string

const (
	WithdrawalStatusCreated      WithdrawalStatus = "CREATED"
	WithdrawalStatusGasValidated WithdrawalStatus = "GAS_VALIDATED"
	WithdrawalStatusProcessing   WithdrawalStatus = "PROCESSING"
	WithdrawalStatusCompleted    WithdrawalStatus = "COMPLETED"
	WithdrawalStatusFailed       WithdrawalStatus = "FAILED"
	WithdrawalStatusRejected     WithdrawalStatus = "REJECTED"
)

// ApprovalStatus tracks administrative sign-off for large withdrawals.
type ApprovalStatus string

const (
	ApprovalNotRequired ApprovalStatus = "NOT_REQUIRED"
	ApprovalPending     ApprovalStatus = "PENDING"
	ApprovalApproved    ApprovalStatus = "APPROVED"
	ApprovalRejected    ApprovalStatus = "REJECTED"
)

var withdrawalTransitions = map[WithdrawalStatus][]WithdrawalStatus{
	WithdrawalStatusCreated:      {WithdrawalStatusGasValidated, WithdrawalStatusFailed, WithdrawalStatusRejected},
	WithdrawalStatusGasValidated: {WithdrawalStatusProcessing, WithdrawalStatusFailed},
	WithdrawalStatusProcessing:   {WithdrawalStatusCompleted, WithdrawalStatusFailed},
}

// CanTransitionWithdrawal reports whether from -> to is allowed.
func CanTransitionWithdrawal(from, to WithdrawalStatus) bool {
	for _, s := range withdrawalTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Withdrawal moves funds out of a custodial wallet.
type Withdrawal struct {
	ID                  uuid.UUID        `json:"id"`
	MerchantID          uuid.UUID        `json:"merchant_id"`
	WalletID            uuid.UUID        `json:"wallet_id"`
	Kind                WithdrawalKind   `json:"kind"`
	PaymentID           *string          `json:"payment_id,omitempty"`
	CryptoType          CryptoType       `json:"crypto_type"`
	Network             Network          `json:"network"`
	Amount              decimal.Decimal  `json:"amount"`
	ToAddress           string           `json:"to_address"`
	Status              WithdrawalStatus `json:"status"`
	Approval            ApprovalStatus   `json:"approval"`
	GasEstimate         decimal.Decimal  `json:"gas_estimate"`
	TransactionHash     *string          `json:"transaction_hash,omitempty"`
	FailureReason       *string          `json:"failure_reason,omitempty"`
	GasValidatedAt      *time.Time       `json:"gas_validated_at,omitempty"`
	ProcessingStartedAt *time.Time       `json:"processing_started_at,omitempty"`
	CompletedAt         *time.Time       `json:"completed_at,omitempty"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

// IsTerminal returns true if the withdrawal is in a final state.
func (w *Withdrawal) IsTerminal() bool {
	return w.Status == WithdrawalStatusCompleted ||
		w.Status == WithdrawalStatusFailed ||
		w.Status == WithdrawalStatusRejected
}

// AwaitingApproval returns true while an administrator has not signed off.
func (w *Withdrawal) AwaitingApproval() bool {
	return w.Approval == ApprovalPending || w.Approval == ApprovalRejected
}

// Transition moves w to status, stamping the matching timestamp.
func (w *Withdrawal) Transition(to WithdrawalStatus, now time.Time) bool {
	if !CanTransitionWithdrawal(w.Status, to) {
		return false
	}
	w.Status = to
	w.UpdatedAt = now
	switch to {
	case WithdrawalStatusGasValidated:
		w.GasValidatedAt = &now
	case WithdrawalStatusProcessing:
		w.ProcessingStartedAt = &now
	case WithdrawalStatusCompleted, WithdrawalStatusFailed, WithdrawalStatusRejected:
		w.CompletedAt = &now
	}
	return true
}

// Fail moves w to FAILED with a reason.
func (w *Withdrawal) Fail(reason string, now time.Time) bool {
	if !w.Transition(WithdrawalStatusFailed, now) {
		return false
	}
	w.FailureReason = &reason
	return true
}
