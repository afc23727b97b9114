package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SandboxServiceImpl confirms or fails payments of sandbox merchants. A
// successful simulation goes through the same chain event path as an
// observed transfer; a failed one is a forced transition.
type SandboxServiceImpl struct {
	merchants ports.MerchantRepository
	ledger    ports.PaymentLedger
	sink      ports.ChainEventSink
	audit     ports.AuditService
	log       zerolog.Logger
	now       func() time.Time
}

// NewSandboxService creates a new SandboxServiceImpl.
func NewSandboxService(merchants ports.MerchantRepository, ledger ports.PaymentLedger, sink ports.ChainEventSink, audit ports.AuditService, log zerolog.Logger) *SandboxServiceImpl {
	return &SandboxServiceImpl{
		merchants: merchants,
		ledger:    ledger,
		sink:      sink,
		audit:     audit,
		log:       log.With().Str("component", "sandbox").Logger(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Simulate settles req.PaymentID as if the customer paid it in full, or
// fails it, and returns the payment's state afterwards.
func (s *SandboxServiceImpl) Simulate(ctx context.Context, req ports.SimulationRequest) (*ports.SandboxSimulation, error) {
	merchant, err := s.merchants.GetByID(ctx, req.MerchantID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get merchant: %w", err))
	}
	if merchant == nil {
		return nil, apperror.ErrNotFound("merchant")
	}
	if !merchant.Sandbox {
		return nil, apperror.ErrSandboxOnly()
	}

	payment, err := s.ledger.GetPayment(ctx, req.MerchantID, req.PaymentID)
	if err != nil {
		return nil, err
	}
	if payment.Status != domain.PaymentStatusPending && payment.Status != domain.PaymentStatusConfirming {
		return nil, apperror.ErrStateConflict("only pending or confirming payments can be simulated")
	}
	if payment.TransactionHash != nil && !payment.Simulated() {
		return nil, apperror.ErrStateConflict("payment already has an observed transfer")
	}

	message := "payment confirmed by simulation"
	if req.Success {
		if err := s.sink.OnChainEvent(ctx, s.fullPayment(payment, req.TxHash)); err != nil {
			return nil, err
		}
	} else {
		message = "payment failed by simulation"
		actor := domain.ActorMerchant + ":sandbox"
		if _, err := s.ledger.ForceTransition(ctx, payment.ID, domain.PaymentStatusFailed, actor, message); err != nil {
			return nil, err
		}
	}

	payment, err = s.ledger.GetPayment(ctx, req.MerchantID, req.PaymentID)
	if err != nil {
		return nil, err
	}
	s.recordSimulation(ctx, payment, req.Success)
	s.log.Info().
		Str("merchant_id", req.MerchantID.String()).
		Str("payment_id", payment.ID).
		Str("status", string(payment.Status)).
		Msg("sandbox payment simulated")

	return &ports.SandboxSimulation{
		PaymentID:       payment.ID,
		SimulatedStatus: payment.Status,
		TransactionHash: payment.TransactionHash,
		Message:         message,
		Payment:         payment.View(),
	}, nil
}

// fullPayment builds the transfer a customer paying payment exactly would
// produce, already past the confirmation threshold.
func (s *SandboxServiceImpl) fullPayment(payment *domain.Payment, txHash string) domain.ChainEvent {
	hash := sandboxTxHash(txHash)
	if payment.TransactionHash != nil {
		hash = *payment.TransactionHash
	}
	confirmations := payment.RequiredConfirmations
	if confirmations < 1 {
		confirmations = 1
	}
	return domain.ChainEvent{
		Network:       payment.Network,
		TxHash:        hash,
		CryptoType:    payment.CryptoType,
		Address:       payment.Address,
		Amount:        payment.CryptoAmount,
		Confirmations: confirmations,
		ObservedAt:    s.now(),
	}
}

func (s *SandboxServiceImpl) recordSimulation(ctx context.Context, payment *domain.Payment, success bool) {
	outcome := "failed"
	if success {
		outcome = "confirmed"
	}
	s.audit.Log(ctx, &domain.AuditLog{
		ID:           uuid.New(),
		MerchantID:   &payment.MerchantID,
		Actor:        domain.ActorMerchant,
		Action:       domain.AuditActionSandboxSimulate,
		ResourceType: "payment",
		ResourceID:   payment.ID,
		Details:      fmt.Sprintf(`{"outcome":%q}`, outcome),
		CreatedAt:    s.now(),
	})
}

// sandboxTxHash prefixes a caller-chosen hash, or makes a random one.
func sandboxTxHash(requested string) string {
	requested = strings.TrimSpace(requested)
	if requested == "" {
		buf := make([]byte, 16)
		_, _ = rand.Read(buf)
		requested = hex.EncodeToString(buf)
	}
	if strings.HasPrefix(requested, domain.SandboxTxPrefix) {
		return requested
	}
	return domain.SandboxTxPrefix + requested
}
