package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cryptopay-gateway/config"
	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/apperror"
	"cryptopay-gateway/pkg/metrics"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const staleWithdrawalBatch = 100

// WithdrawalDeps groups the collaborators of the withdrawal processor.
type WithdrawalDeps struct {
	MerchantRepo   ports.MerchantRepository
	WalletRepo     ports.WalletRepository
	PaymentRepo    ports.PaymentRepository
	WithdrawalRepo ports.WithdrawalRepository
	Transactor     ports.DBTransactor
	Vault          ports.KeyVault
	Gas            ports.GasValidator
	Estimator      ports.GasEstimator
	Prices         ports.PriceOracle
	Chains         ports.ChainRegistry
	Signer         ports.TxSigner
	Locks          ports.WalletLock
	Webhooks       ports.WebhookDispatcher
	Audit          ports.AuditService
}

// WithdrawalConfig holds the settings the processor reads.
type WithdrawalConfig struct {
	Withdrawal    config.WithdrawalConfig
	Forwarding    config.ForwardingConfig
	Confirmations map[domain.Network]int
}

// WithdrawalProcessorImpl implements ports.WithdrawalProcessor.
type WithdrawalProcessorImpl struct {
	WithdrawalDeps
	cfg     WithdrawalConfig
	metrics *metrics.Metrics
	log     zerolog.Logger
	now     func() time.Time
}

// NewWithdrawalProcessor creates a new WithdrawalProcessorImpl.
func NewWithdrawalProcessor(deps WithdrawalDeps, cfg WithdrawalConfig, m *metrics.Metrics, log zerolog.Logger) *WithdrawalProcessorImpl {
	return &WithdrawalProcessorImpl{
		WithdrawalDeps: deps,
		cfg:            cfg,
		metrics:        m,
		log:            log,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// webhookNote is a notification queued until the transaction that caused it commits.
type webhookNote struct {
	merchantID uuid.UUID
	eventType  domain.WebhookEventType
	resourceID string
	data       any
}

// Create validates and records a merchant withdrawal. Nothing is persisted
// when funds or gas are short.
func (s *WithdrawalProcessorImpl) Create(ctx context.Context, req ports.CreateWithdrawalRequest) (*domain.Withdrawal, error) {
	ct, err := domain.ParseCryptoType(req.CryptoType)
	if err != nil {
		return nil, apperror.ErrInvalidCryptoType(req.CryptoType)
	}
	if !req.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	to, err := CanonicalAddress(ct.Network(), req.ToAddress)
	if err != nil {
		return nil, err
	}

	merchant, err := s.MerchantRepo.GetByID(ctx, req.MerchantID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get merchant: %w", err))
	}
	if merchant == nil {
		return nil, apperror.ErrNotFound("merchant")
	}
	if !merchant.IsActive() {
		return nil, apperror.ErrMerchantSuspended()
	}
	if merchant.Sandbox {
		return nil, apperror.ErrSandboxFunds()
	}

	wallet, err := s.sourceWallet(ctx, req.MerchantID, ct, req.WalletMode)
	if err != nil {
		return nil, err
	}

	approval := domain.ApprovalNotRequired
	price, err := s.Prices.USDPrice(ctx, ct)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("price %s: %w", ct, err))
	}
	if req.Amount.Mul(price).GreaterThan(s.cfg.Withdrawal.AutoApproveLimit()) {
		approval = domain.ApprovalPending
	}

	dbTx, err := s.Transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	res, err := s.checkFunds(ctx, dbTx, wallet.ID, req.Amount)
	if err != nil {
		return nil, err
	}

	now := s.now()
	w := &domain.Withdrawal{
		ID:          uuid.New(),
		MerchantID:  req.MerchantID,
		WalletID:    wallet.ID,
		Kind:        domain.WithdrawalKindMerchant,
		CryptoType:  ct,
		Network:     ct.Network(),
		Amount:      req.Amount,
		ToAddress:   to,
		Status:      domain.WithdrawalStatusCreated,
		Approval:    approval,
		GasEstimate: res.GasRequired,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.WithdrawalRepo.Create(ctx, dbTx, w); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create withdrawal: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.audit(ctx, w, domain.ActorMerchant, domain.AuditActionWithdrawalCreate, "")
	s.metrics.Withdrawal(string(w.Kind), string(w.Status))
	s.log.Info().
		Str("withdrawal_id", w.ID.String()).
		Str("merchant_id", w.MerchantID.String()).
		Str("crypto_type", string(ct)).
		Str("amount", w.Amount.String()).
		Str("approval", string(w.Approval)).
		Msg("withdrawal created")
	return w, nil
}

// sourceWallet picks the custodial wallet to withdraw from. An empty mode
// prefers GENERATED and falls back to IMPORTED.
func (s *WithdrawalProcessorImpl) sourceWallet(ctx context.Context, merchantID uuid.UUID, ct domain.CryptoType, mode domain.WalletMode) (*domain.WalletRecord, error) {
	modes := []domain.WalletMode{domain.WalletModeGenerated, domain.WalletModeImported}
	if mode != "" {
		if !mode.Custodial() {
			return nil, apperror.Validation("withdrawals require a GENERATED or IMPORTED wallet")
		}
		modes = []domain.WalletMode{mode}
	}
	for _, m := range modes {
		wallet, err := s.WalletRepo.Get(ctx, merchantID, ct, m)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
		}
		if wallet != nil {
			return wallet, nil
		}
	}
	return nil, apperror.ErrNotFound("wallet")
}

// checkFunds locks the wallet and its native counterpart and verifies amount
// and network fee are covered.
func (s *WithdrawalProcessorImpl) checkFunds(ctx context.Context, dbTx pgx.Tx, walletID uuid.UUID, amount decimal.Decimal) (*domain.GasValidationResult, error) {
	locked, err := s.WalletRepo.GetByIDForUpdate(ctx, dbTx, walletID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if locked == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	if amount.GreaterThan(locked.AvailableBalance) {
		return nil, apperror.ErrInsufficientFunds()
	}
	res, _, err := s.Gas.ValidateLocked(ctx, dbTx, locked, amount)
	if err != nil {
		return nil, err
	}
	if !res.CanWithdraw {
		return res, apperror.ErrInsufficientGas()
	}
	return res, nil
}

// Get returns a withdrawal owned by merchantID.
func (s *WithdrawalProcessorImpl) Get(ctx context.Context, merchantID, withdrawalID uuid.UUID) (*domain.Withdrawal, error) {
	w, err := s.WithdrawalRepo.GetByID(ctx, withdrawalID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get withdrawal: %w", err))
	}
	if w == nil || w.MerchantID != merchantID {
		return nil, apperror.ErrNotFound("withdrawal")
	}
	return w, nil
}

// Process signs and broadcasts a CREATED withdrawal.
func (s *WithdrawalProcessorImpl) Process(ctx context.Context, merchantID, withdrawalID uuid.UUID, password string) (*domain.Withdrawal, error) {
	w, err := s.Get(ctx, merchantID, withdrawalID)
	if err != nil {
		return nil, err
	}
	if err := processable(w); err != nil {
		return nil, err
	}
	return s.execute(ctx, w, password)
}

func processable(w *domain.Withdrawal) error {
	if w.Status != domain.WithdrawalStatusCreated {
		return apperror.ErrStateConflict("withdrawal is " + string(w.Status))
	}
	if w.AwaitingApproval() {
		return apperror.ErrApprovalRequired()
	}
	return nil
}

// execute runs a CREATED withdrawal to PROCESSING and broadcast while holding
// the wallet's signing lock.
func (s *WithdrawalProcessorImpl) execute(ctx context.Context, w *domain.Withdrawal, password string) (*domain.Withdrawal, error) {
	logger := s.log.With().Str("withdrawal_id", w.ID.String()).Str("kind", string(w.Kind)).Logger()

	token, err := s.Locks.Acquire(ctx, w.WalletID, s.cfg.Withdrawal.SigningLockTTL)
	if err != nil {
		return nil, apperror.ErrLockTimeout(fmt.Errorf("acquire signing lock: %w", err))
	}
	if token == "" {
		return nil, apperror.ErrLockTimeout(errors.New("wallet signing lock is held"))
	}
	defer func() {
		if err := s.Locks.Release(context.WithoutCancel(ctx), w.WalletID, token); err != nil {
			logger.Warn().Err(err).Msg("failed to release signing lock")
		}
	}()

	// Phase 1: re-validate against current balances.
	w, wallet, err := s.validateForSigning(ctx, w.ID)
	if err != nil {
		return nil, err
	}

	// Phase 2: prepare and sign outside any database transaction. Bounded so
	// the lock is still held when the transfer is broadcast.
	client, err := s.Chains.Client(w.Network)
	if err != nil {
		return s.fail(ctx, w.ID, "network unavailable", apperror.ErrUpstreamChain(err))
	}
	signed, reason, err := s.prepareAndSign(ctx, client, w, wallet, password)
	if err != nil {
		if apperror.Is(err, "KEY_001") {
			return s.fail(ctx, w.ID, "invalid encryption password", err)
		}
		return s.fail(ctx, w.ID, reason, asAppError(err))
	}

	// Phase 3: debit and enter PROCESSING with the hash recorded.
	w, err = s.markProcessing(ctx, w.ID, signed.TxHash)
	if err != nil {
		return nil, err
	}

	// Phase 4: broadcast, bounded.
	bctx, cancel := context.WithTimeout(ctx, s.cfg.Withdrawal.BroadcastTimeout)
	err = client.Broadcast(bctx, signed)
	cancel()
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || apperror.IsRetryable(err) {
			logger.Warn().Err(err).Str("tx_hash", signed.TxHash).Msg("broadcast unconfirmed, left processing for monitor")
			return w, nil
		}
		return s.fail(ctx, w.ID, "broadcast rejected", asAppError(err))
	}

	logger.Info().Str("tx_hash", signed.TxHash).Msg("withdrawal broadcast")
	if w.Kind != domain.WithdrawalKindMerchant {
		// Forwards and refunds complete when the transfer is seen confirmed.
		return w, nil
	}
	return s.completeAcknowledged(ctx, w.ID)
}

// prepareAndSign fetches nonce and fees and signs under the prepare timeout.
// On failure it also returns the reason recorded on the withdrawal.
func (s *WithdrawalProcessorImpl) prepareAndSign(ctx context.Context, client ports.ChainClient, w *domain.Withdrawal, wallet *domain.WalletRecord, password string) (*ports.SignedTransfer, string, error) {
	pctx, cancel := context.WithTimeout(ctx, s.cfg.Withdrawal.PrepareTimeout)
	defer cancel()

	prepared, err := client.PrepareTransfer(pctx, ports.TransferRequest{
		CryptoType: w.CryptoType,
		From:       wallet.Address,
		To:         w.ToAddress,
		Amount:     w.Amount,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, "prepare transfer timed out", apperror.ErrUpstreamChain(err)
		}
		return nil, "prepare transfer failed", err
	}

	var signed *ports.SignedTransfer
	err = s.Vault.WithKey(pctx, w.WalletID, password, func(key *ports.SigningKey) error {
		var signErr error
		signed, signErr = s.Signer.Sign(pctx, key, prepared)
		return signErr
	})
	if err != nil {
		return nil, "signing failed", err
	}
	return signed, "", nil
}

func (s *WithdrawalProcessorImpl) validateForSigning(ctx context.Context, id uuid.UUID) (*domain.Withdrawal, *domain.WalletRecord, error) {
	dbTx, err := s.Transactor.Begin(ctx)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	w, err := s.WithdrawalRepo.GetByIDForUpdate(ctx, dbTx, id)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("lock withdrawal: %w", err))
	}
	if w == nil {
		return nil, nil, apperror.ErrNotFound("withdrawal")
	}
	if err := processable(w); err != nil {
		return nil, nil, err
	}

	wallet, err := s.WalletRepo.GetByIDForUpdate(ctx, dbTx, w.WalletID)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil, nil, apperror.ErrNotFound("wallet")
	}

	now := s.now()
	var failure error
	switch {
	case w.Amount.GreaterThan(wallet.AvailableBalance):
		failure = apperror.ErrInsufficientFunds()
	default:
		res, _, err := s.Gas.ValidateLocked(ctx, dbTx, wallet, w.Amount)
		if err != nil {
			return nil, nil, err
		}
		if !res.CanWithdraw {
			failure = apperror.ErrInsufficientGas()
		} else {
			w.GasEstimate = res.GasRequired
			w.Transition(domain.WithdrawalStatusGasValidated, now)
		}
	}
	if failure != nil {
		w.Fail(failure.Error(), now)
	}

	if err := s.WithdrawalRepo.Update(ctx, dbTx, w); err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("update withdrawal: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	s.metrics.Withdrawal(string(w.Kind), string(w.Status))

	if failure != nil {
		s.notify(ctx, s.failureNote(w))
		return nil, nil, failure
	}
	return w, wallet, nil
}

func (s *WithdrawalProcessorImpl) markProcessing(ctx context.Context, id uuid.UUID, txHash string) (*domain.Withdrawal, error) {
	dbTx, err := s.Transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	w, err := s.WithdrawalRepo.GetByIDForUpdate(ctx, dbTx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock withdrawal: %w", err))
	}
	if w == nil {
		return nil, apperror.ErrNotFound("withdrawal")
	}
	if !w.Transition(domain.WithdrawalStatusProcessing, s.now()) {
		return nil, apperror.ErrStateConflict("withdrawal is " + string(w.Status))
	}
	w.TransactionHash = &txHash

	if err := s.adjustBalances(ctx, dbTx, w, true); err != nil {
		dbTx.Rollback(ctx) //nolint:errcheck
		return s.fail(ctx, id, "balance changed before broadcast", err)
	}
	if err := s.WithdrawalRepo.Update(ctx, dbTx, w); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update withdrawal: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	s.metrics.Withdrawal(string(w.Kind), string(w.Status))
	return w, nil
}

// adjustBalances debits (or on restore credits back) the withdrawal amount and
// its network fee. Native transfers pay the fee from the same wallet; token
// transfers pay it from the native wallet of the same mode.
func (s *WithdrawalProcessorImpl) adjustBalances(ctx context.Context, dbTx pgx.Tx, w *domain.Withdrawal, debit bool) error {
	wallet, err := s.WalletRepo.GetByIDForUpdate(ctx, dbTx, w.WalletID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return apperror.ErrNotFound("wallet")
	}

	amount := w.Amount
	if w.CryptoType.IsNative() {
		amount = amount.Add(w.GasEstimate)
	}
	if err := s.applyDelta(ctx, dbTx, wallet, amount, debit, apperror.ErrInsufficientFunds()); err != nil {
		return err
	}
	if w.CryptoType.IsNative() || !w.GasEstimate.IsPositive() {
		return nil
	}

	native, err := s.WalletRepo.GetForUpdate(ctx, dbTx, w.MerchantID, w.CryptoType.NativeCurrency(), wallet.Mode)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock native wallet: %w", err))
	}
	if native == nil {
		if debit {
			return apperror.ErrInsufficientGas()
		}
		return nil
	}
	return s.applyDelta(ctx, dbTx, native, w.GasEstimate, debit, apperror.ErrInsufficientGas())
}

func (s *WithdrawalProcessorImpl) applyDelta(ctx context.Context, dbTx pgx.Tx, wallet *domain.WalletRecord, amount decimal.Decimal, debit bool, short error) error {
	balance := wallet.AvailableBalance.Add(amount)
	if debit {
		balance = wallet.AvailableBalance.Sub(amount)
		if balance.IsNegative() {
			return short
		}
	}
	if err := s.WalletRepo.UpdateBalance(ctx, dbTx, wallet.ID, balance); err != nil {
		return apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}
	wallet.AvailableBalance = balance
	return nil
}

// fail marks a withdrawal FAILED, restoring balances if it had been debited,
// and returns cause.
func (s *WithdrawalProcessorImpl) fail(ctx context.Context, id uuid.UUID, reason string, cause error) (*domain.Withdrawal, error) {
	w, err := s.failWithdrawal(ctx, id, reason)
	if err != nil {
		s.log.Error().Err(err).Str("withdrawal_id", id.String()).Msg("failed to record withdrawal failure")
	}
	if w != nil {
		s.log.Warn().Err(cause).
			Str("withdrawal_id", id.String()).
			Str("reason", reason).
			Msg("withdrawal failed")
	}
	return nil, cause
}

func (s *WithdrawalProcessorImpl) failWithdrawal(ctx context.Context, id uuid.UUID, reason string) (*domain.Withdrawal, error) {
	ctx = context.WithoutCancel(ctx)
	dbTx, err := s.Transactor.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	w, err := s.WithdrawalRepo.GetByIDForUpdate(ctx, dbTx, id)
	if err != nil {
		return nil, fmt.Errorf("lock withdrawal: %w", err)
	}
	if w == nil || w.IsTerminal() {
		return nil, nil
	}
	if w.Status == domain.WithdrawalStatusProcessing {
		if err := s.adjustBalances(ctx, dbTx, w, false); err != nil {
			return nil, fmt.Errorf("restore balances: %w", err)
		}
	}
	w.Fail(reason, s.now())
	if err := s.WithdrawalRepo.Update(ctx, dbTx, w); err != nil {
		return nil, fmt.Errorf("update withdrawal: %w", err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	s.metrics.Withdrawal(string(w.Kind), string(w.Status))
	s.notify(ctx, s.failureNote(w))
	return w, nil
}

func (s *WithdrawalProcessorImpl) completeAcknowledged(ctx context.Context, id uuid.UUID) (*domain.Withdrawal, error) {
	dbTx, err := s.Transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	w, err := s.WithdrawalRepo.GetByIDForUpdate(ctx, dbTx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock withdrawal: %w", err))
	}
	if w == nil {
		return nil, apperror.ErrNotFound("withdrawal")
	}
	notes, err := s.completeLocked(ctx, dbTx, w)
	if err != nil {
		return nil, err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	s.notify(ctx, notes...)
	return w, nil
}

// completeLocked moves a PROCESSING withdrawal to COMPLETED and settles the
// payment it forwarded or refunded.
func (s *WithdrawalProcessorImpl) completeLocked(ctx context.Context, dbTx pgx.Tx, w *domain.Withdrawal) ([]webhookNote, error) {
	now := s.now()
	if !w.Transition(domain.WithdrawalStatusCompleted, now) {
		return nil, nil
	}
	if err := s.WithdrawalRepo.Update(ctx, dbTx, w); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update withdrawal: %w", err))
	}
	s.metrics.Withdrawal(string(w.Kind), string(w.Status))

	switch w.Kind {
	case domain.WithdrawalKindMerchant:
		return []webhookNote{{w.MerchantID, domain.EventWithdrawalComplete, w.ID.String(), w}}, nil
	case domain.WithdrawalKindForward, domain.WithdrawalKindRefund:
	default:
		return nil, nil
	}
	if w.PaymentID == nil {
		return nil, apperror.InternalError(fmt.Errorf("%s withdrawal %s has no payment", w.Kind, w.ID))
	}

	payment, err := s.PaymentRepo.GetByIDForUpdate(ctx, dbTx, *w.PaymentID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock payment: %w", err))
	}
	if payment == nil {
		return nil, apperror.ErrNotFound("payment")
	}

	target := domain.PaymentStatusForwarded
	if w.Kind == domain.WithdrawalKindRefund {
		target = domain.PaymentStatusRefunded
	}
	if !payment.Transition(target, now) {
		s.log.Warn().
			Str("payment_id", payment.ID).
			Str("status", string(payment.Status)).
			Str("withdrawal_id", w.ID.String()).
			Msg("payment not advanced by completed withdrawal")
		return nil, nil
	}
	if w.Kind == domain.WithdrawalKindForward {
		id := w.ID
		payment.ForwardWithdrawalID = &id
	}
	if err := s.PaymentRepo.Update(ctx, dbTx, payment); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update payment: %w", err))
	}
	s.metrics.PaymentTransition(string(target))

	if w.Kind == domain.WithdrawalKindRefund {
		return []webhookNote{{w.MerchantID, domain.EventRefundCompleted, w.ID.String(), w}}, nil
	}
	return []webhookNote{{payment.MerchantID, domain.EventPaymentForwarded, payment.ID, payment}}, nil
}

func (s *WithdrawalProcessorImpl) failureNote(w *domain.Withdrawal) webhookNote {
	eventType := domain.EventWithdrawalFailed
	if w.Kind == domain.WithdrawalKindRefund {
		eventType = domain.EventRefundFailed
	}
	return webhookNote{w.MerchantID, eventType, w.ID.String(), w}
}

func (s *WithdrawalProcessorImpl) notify(ctx context.Context, notes ...webhookNote) {
	for _, n := range notes {
		if err := s.Webhooks.Emit(ctx, n.merchantID, n.eventType, n.resourceID, n.data); err != nil {
			s.log.Error().Err(err).
				Str("resource_id", n.resourceID).
				Str("event_type", string(n.eventType)).
				Msg("failed to emit withdrawal webhook")
		}
	}
}

// Forward sends a confirmed custodial payment's net amount to the merchant's
// payout address, signing with the vault's default password.
func (s *WithdrawalProcessorImpl) Forward(ctx context.Context, paymentID string) (*domain.Withdrawal, error) {
	if !s.cfg.Forwarding.Enabled {
		return nil, apperror.ErrStateConflict("forwarding is disabled")
	}

	dbTx, err := s.Transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	payment, err := s.lockSettleablePayment(ctx, dbTx, paymentID)
	if err != nil {
		return nil, err
	}
	payout, err := s.WalletRepo.Get(ctx, payment.MerchantID, payment.CryptoType, domain.WalletModeAddressOnly)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get payout wallet: %w", err))
	}
	if payout == nil {
		return nil, apperror.ErrNotFound("payout wallet")
	}

	wallet, err := s.WalletRepo.GetByIDForUpdate(ctx, dbTx, *payment.WalletID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	if !wallet.UsesDefaultPassword {
		return nil, apperror.ErrStateConflict("deposit wallet is sealed with the merchant's password")
	}

	gas, err := s.Estimator.EstimateTransferFee(ctx, payment.CryptoType)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("estimating gas: %w", err))
	}
	amount := ForwardAmount(payment, gas, s.cfg.Forwarding.DeductGas)
	if !amount.IsPositive() {
		return nil, apperror.ErrStateConflict("forward amount does not cover the network fee")
	}

	w, err := s.createLinked(ctx, dbTx, payment, wallet, domain.WithdrawalKindForward, payout.Address, amount)
	if err != nil {
		return nil, err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	return s.execute(ctx, w, "")
}

// ForwardAmount is the merchant's net share in crypto at the payment's rate,
// truncated to chain precision, less the fee when it is paid from the same
// native balance.
func ForwardAmount(payment *domain.Payment, gas decimal.Decimal, deductGas bool) decimal.Decimal {
	if !payment.ExchangeRate.IsPositive() {
		return decimal.Zero
	}
	decimals := payment.CryptoType.Decimals()
	amount := payment.MerchantNetUSD.DivRound(payment.ExchangeRate, decimals+4).Truncate(decimals)
	if deductGas && payment.CryptoType.IsNative() {
		amount = amount.Sub(gas)
	}
	return amount
}

// Refund returns a confirmed custodial payment to the customer.
func (s *WithdrawalProcessorImpl) Refund(ctx context.Context, req ports.RefundRequest) (*domain.Withdrawal, error) {
	dbTx, err := s.Transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	payment, err := s.PaymentRepo.GetByIDForUpdate(ctx, dbTx, req.PaymentID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock payment: %w", err))
	}
	if payment == nil || payment.MerchantID != req.MerchantID {
		return nil, apperror.ErrNotFound("payment")
	}
	if !payment.IsRefundable() {
		return nil, apperror.ErrInvalidRefund()
	}
	if payment.Simulated() {
		return nil, apperror.ErrSandboxFunds()
	}
	to, err := CanonicalAddress(payment.Network, req.ToAddress)
	if err != nil {
		return nil, err
	}
	if err := s.ensureNoActiveWithdrawal(ctx, dbTx, payment.ID); err != nil {
		return nil, err
	}
	if payment.WalletID == nil {
		return nil, apperror.InternalError(fmt.Errorf("custodial payment %s has no wallet", payment.ID))
	}
	wallet, err := s.WalletRepo.GetByIDForUpdate(ctx, dbTx, *payment.WalletID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}

	amount := payment.ReceivedAmount
	if !amount.IsPositive() {
		amount = payment.CryptoAmount
	}
	w, err := s.createLinked(ctx, dbTx, payment, wallet, domain.WithdrawalKindRefund, to, amount)
	if err != nil {
		return nil, err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.audit(ctx, w, domain.ActorMerchant, domain.AuditActionRefund, "")
	return s.execute(ctx, w, req.Password)
}

func (s *WithdrawalProcessorImpl) lockSettleablePayment(ctx context.Context, dbTx pgx.Tx, paymentID string) (*domain.Payment, error) {
	payment, err := s.PaymentRepo.GetByIDForUpdate(ctx, dbTx, paymentID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock payment: %w", err))
	}
	if payment == nil {
		return nil, apperror.ErrNotFound("payment")
	}
	if payment.Status != domain.PaymentStatusConfirmed || !payment.WalletMode.Custodial() || payment.WalletID == nil {
		return nil, apperror.ErrStateConflict("payment is not a confirmed custodial payment")
	}
	if payment.Simulated() {
		return nil, apperror.ErrSandboxFunds()
	}
	if err := s.ensureNoActiveWithdrawal(ctx, dbTx, payment.ID); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *WithdrawalProcessorImpl) ensureNoActiveWithdrawal(ctx context.Context, dbTx pgx.Tx, paymentID string) error {
	active, err := s.WithdrawalRepo.HasActiveForPayment(ctx, dbTx, paymentID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("check payment withdrawals: %w", err))
	}
	if active {
		return apperror.ErrStateConflict("payment already has a withdrawal in progress")
	}
	return nil
}

// createLinked records a FORWARD or REFUND withdrawal against payment's deposit wallet.
func (s *WithdrawalProcessorImpl) createLinked(ctx context.Context, dbTx pgx.Tx, payment *domain.Payment, wallet *domain.WalletRecord, kind domain.WithdrawalKind, to string, amount decimal.Decimal) (*domain.Withdrawal, error) {
	if amount.GreaterThan(wallet.AvailableBalance) {
		return nil, apperror.ErrInsufficientFunds()
	}
	res, _, err := s.Gas.ValidateLocked(ctx, dbTx, wallet, amount)
	if err != nil {
		return nil, err
	}
	if !res.CanWithdraw {
		return nil, apperror.ErrInsufficientGas()
	}

	now := s.now()
	paymentID := payment.ID
	w := &domain.Withdrawal{
		ID:          uuid.New(),
		MerchantID:  payment.MerchantID,
		WalletID:    wallet.ID,
		Kind:        kind,
		PaymentID:   &paymentID,
		CryptoType:  payment.CryptoType,
		Network:     payment.Network,
		Amount:      amount,
		ToAddress:   to,
		Status:      domain.WithdrawalStatusCreated,
		Approval:    domain.ApprovalNotRequired,
		GasEstimate: res.GasRequired,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.WithdrawalRepo.Create(ctx, dbTx, w); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create withdrawal: %w", err))
	}
	s.metrics.Withdrawal(string(kind), string(w.Status))
	s.log.Info().
		Str("withdrawal_id", w.ID.String()).
		Str("payment_id", payment.ID).
		Str("kind", string(kind)).
		Str("amount", amount.String()).
		Msg("payment withdrawal created")
	return w, nil
}

// Approve signs off a withdrawal held for administrative approval.
func (s *WithdrawalProcessorImpl) Approve(ctx context.Context, withdrawalID uuid.UUID, actor, reason string) (*domain.Withdrawal, error) {
	return s.decide(ctx, withdrawalID, actor, reason, true)
}

// Reject refuses a withdrawal held for administrative approval.
func (s *WithdrawalProcessorImpl) Reject(ctx context.Context, withdrawalID uuid.UUID, actor, reason string) (*domain.Withdrawal, error) {
	return s.decide(ctx, withdrawalID, actor, reason, false)
}

func (s *WithdrawalProcessorImpl) decide(ctx context.Context, withdrawalID uuid.UUID, actor, reason string, approve bool) (*domain.Withdrawal, error) {
	dbTx, err := s.Transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	w, err := s.WithdrawalRepo.GetByIDForUpdate(ctx, dbTx, withdrawalID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock withdrawal: %w", err))
	}
	if w == nil {
		return nil, apperror.ErrNotFound("withdrawal")
	}
	if w.Approval != domain.ApprovalPending || w.Status != domain.WithdrawalStatusCreated {
		return nil, apperror.ErrStateConflict("withdrawal is not awaiting approval")
	}

	now := s.now()
	action := domain.AuditActionWithdrawalApprove
	if approve {
		w.Approval = domain.ApprovalApproved
		w.UpdatedAt = now
	} else {
		action = domain.AuditActionWithdrawalReject
		w.Approval = domain.ApprovalRejected
		w.Transition(domain.WithdrawalStatusRejected, now)
		if reason != "" {
			w.FailureReason = &reason
		}
	}
	if err := s.WithdrawalRepo.Update(ctx, dbTx, w); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update withdrawal: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.audit(ctx, w, actor, action, reason)
	s.log.Info().
		Str("withdrawal_id", w.ID.String()).
		Str("actor", actor).
		Str("approval", string(w.Approval)).
		Msg("withdrawal approval decided")
	if !approve {
		s.metrics.Withdrawal(string(w.Kind), string(w.Status))
		s.notify(ctx, s.failureNote(w))
	}
	return w, nil
}

// OnTransferObserved completes a FORWARD or REFUND withdrawal once its
// transfer reaches the network's confirmation threshold.
func (s *WithdrawalProcessorImpl) OnTransferObserved(ctx context.Context, event domain.ChainEvent) (bool, error) {
	dbTx, err := s.Transactor.Begin(ctx)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	w, err := s.WithdrawalRepo.GetByTxHashForUpdate(ctx, dbTx, event.Network, event.TxHash)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("lock withdrawal by hash: %w", err))
	}
	if w == nil {
		return false, nil
	}
	if w.Status != domain.WithdrawalStatusProcessing {
		return true, nil
	}
	if event.Reverted {
		s.log.Warn().
			Str("withdrawal_id", w.ID.String()).
			Str("tx_hash", event.TxHash).
			Msg("withdrawal transfer reverted, awaiting monitor")
		return true, nil
	}
	if event.Confirmations < s.requiredConfirmations(event.Network) {
		return true, nil
	}

	notes, err := s.completeLocked(ctx, dbTx, w)
	if err != nil {
		return true, err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return true, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	s.log.Info().
		Str("withdrawal_id", w.ID.String()).
		Str("kind", string(w.Kind)).
		Str("tx_hash", event.TxHash).
		Msg("withdrawal confirmed on chain")
	s.notify(ctx, notes...)
	return true, nil
}

func (s *WithdrawalProcessorImpl) requiredConfirmations(network domain.Network) int {
	if n := s.cfg.Confirmations[network]; n > 0 {
		return n
	}
	return defaultConfirmCount
}

// ResolveStale settles PROCESSING withdrawals older than the maximum wait by
// asking the chain. Confirmed completes; failed or unknown fails and restores
// balances; still pending is left for the next run.
func (s *WithdrawalProcessorImpl) ResolveStale(ctx context.Context) (int, error) {
	cutoff := s.now().Add(-s.cfg.Withdrawal.MaxProcessingWait)
	stale, err := s.WithdrawalRepo.ListStaleProcessing(ctx, cutoff, staleWithdrawalBatch)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("list stale withdrawals: %w", err))
	}

	resolved := 0
	for i := range stale {
		if ctx.Err() != nil {
			return resolved, ctx.Err()
		}
		w := &stale[i]
		logger := s.log.With().Str("withdrawal_id", w.ID.String()).Logger()

		if w.TransactionHash == nil {
			if _, err := s.failWithdrawal(ctx, w.ID, "processing without transaction hash"); err != nil {
				logger.Error().Err(err).Msg("failed to resolve withdrawal")
				continue
			}
			resolved++
			continue
		}

		client, err := s.Chains.Client(w.Network)
		if err != nil {
			logger.Warn().Err(err).Msg("no chain client for stale withdrawal")
			continue
		}
		state, err := client.TxStatus(ctx, *w.TransactionHash)
		if err != nil {
			logger.Warn().Err(err).Msg("tx status lookup failed")
			continue
		}

		switch state {
		case domain.TxStateConfirmed:
			_, err = s.completeAcknowledged(ctx, w.ID)
		case domain.TxStateFailed, domain.TxStateUnknown:
			_, err = s.failWithdrawal(ctx, w.ID, "transaction "+string(state)+" after maximum wait")
		default:
			continue
		}
		if err != nil {
			logger.Error().Err(err).Msg("failed to resolve withdrawal")
			continue
		}
		resolved++
		logger.Info().Str("tx_state", string(state)).Msg("stale withdrawal resolved")
	}
	return resolved, nil
}

func (s *WithdrawalProcessorImpl) audit(ctx context.Context, w *domain.Withdrawal, actor string, action domain.AuditAction, reason string) {
	details, _ := json.Marshal(map[string]string{
		"kind":       string(w.Kind),
		"amount":     w.Amount.String(),
		"to_address": w.ToAddress,
		"reason":     reason,
	})
	merchantID := w.MerchantID
	s.Audit.Log(ctx, &domain.AuditLog{
		ID:           uuid.New(),
		MerchantID:   &merchantID,
		Actor:        actor,
		Action:       action,
		ResourceType: "withdrawal",
		ResourceID:   w.ID.String(),
		Details:      string(details),
		CreatedAt:    s.now(),
	})
}

// asAppError keeps typed errors and wraps anything else as internal.
func asAppError(err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.InternalError(err)
}
