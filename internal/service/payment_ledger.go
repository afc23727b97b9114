package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
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

const (
	expirySweepBatch    = 100
	defaultListLimit    = 20
	maxListLimit        = 100
	defaultConfirmCount = 1
	forwardSweepBatch   = 50
)

// PaymentLedgerDeps groups the collaborators of the payment ledger.
type PaymentLedgerDeps struct {
	MerchantRepo ports.MerchantRepository
	WalletRepo   ports.WalletRepository
	PaymentRepo  ports.PaymentRepository
	IdempRepo    ports.IdempotencyRepository
	IdempCache   ports.IdempotencyCache
	Transactor   ports.DBTransactor
	Vault        ports.KeyVault
	Fees         *FeeCalculator
	Prices       ports.PriceOracle
	Dedup        ports.EventDedup
	Webhooks     ports.WebhookDispatcher
	Withdrawals  ports.WithdrawalProcessor
	Audit        ports.AuditService
}

// LedgerConfig holds the settings the ledger reads.
type LedgerConfig struct {
	Payment    config.PaymentConfig
	Forwarding config.ForwardingConfig
	// Confirmations required per network before a payment is CONFIRMED.
	Confirmations map[domain.Network]int
}

// ConfirmationsFrom extracts per-network thresholds from chain settings.
func ConfirmationsFrom(chains map[string]config.ChainConfig) map[domain.Network]int {
	out := make(map[domain.Network]int, len(chains))
	for name, c := range chains {
		out[domain.Network(name)] = c.Confirmations
	}
	return out
}

// PaymentLedgerImpl implements ports.PaymentLedger.
type PaymentLedgerImpl struct {
	PaymentLedgerDeps
	cfg     LedgerConfig
	metrics *metrics.Metrics
	log     zerolog.Logger
	now     func() time.Time
	// forwards tracks forwarding runs started after a confirmation.
	forwards sync.WaitGroup
}

// NewPaymentLedger creates a new PaymentLedgerImpl.
func NewPaymentLedger(deps PaymentLedgerDeps, cfg LedgerConfig, m *metrics.Metrics, log zerolog.Logger) *PaymentLedgerImpl {
	return &PaymentLedgerImpl{
		PaymentLedgerDeps: deps,
		cfg:               cfg,
		metrics:           m,
		log:               log,
		now:               func() time.Time { return time.Now().UTC() },
	}
}

// CreatePayment opens a custodial payment, or an address-only one when the
// request names the merchant's receiving address.
func (s *PaymentLedgerImpl) CreatePayment(ctx context.Context, req ports.CreatePaymentRequest) (*domain.Payment, error) {
	if req.MerchantAddress != nil || req.WalletMode == domain.WalletModeAddressOnly {
		return s.CreateAddressOnlyPayment(ctx, req)
	}
	if req.WalletMode == "" {
		req.WalletMode = domain.WalletModeGenerated
	}
	if !req.WalletMode.Custodial() {
		return nil, apperror.Validation("wallet_mode must be GENERATED, IMPORTED or ADDRESS_ONLY")
	}

	ct, err := s.validateRequest(req)
	if err != nil {
		return nil, err
	}
	if cached, err := s.lookupIdempotent(ctx, req); cached != nil || err != nil {
		return cached, err
	}
	if _, err := s.activeMerchant(ctx, req.MerchantID); err != nil {
		return nil, err
	}

	wallet, err := s.depositWallet(ctx, req.MerchantID, ct, req.WalletMode)
	if err != nil {
		return nil, err
	}
	return s.create(ctx, req, ct, wallet, wallet.Address)
}

// CreateAddressOnlyPayment opens a payment that the customer pays straight to
// the merchant. Without an explicit address the merchant's configured
// ADDRESS_ONLY wallet is used.
func (s *PaymentLedgerImpl) CreateAddressOnlyPayment(ctx context.Context, req ports.CreatePaymentRequest) (*domain.Payment, error) {
	req.WalletMode = domain.WalletModeAddressOnly
	ct, err := s.validateRequest(req)
	if err != nil {
		return nil, err
	}

	var address string
	var wallet *domain.WalletRecord
	if req.MerchantAddress != nil {
		address, err = CanonicalAddress(ct.Network(), *req.MerchantAddress)
		if err != nil {
			return nil, err
		}
	}

	if cached, err := s.lookupIdempotent(ctx, req); cached != nil || err != nil {
		return cached, err
	}
	if _, err := s.activeMerchant(ctx, req.MerchantID); err != nil {
		return nil, err
	}

	if address == "" {
		wallet, err = s.WalletRepo.Get(ctx, req.MerchantID, ct, domain.WalletModeAddressOnly)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("get address-only wallet: %w", err))
		}
		if wallet == nil {
			return nil, apperror.ErrNotFound("address-only wallet")
		}
		address = wallet.Address
	}
	return s.create(ctx, req, ct, wallet, address)
}

func (s *PaymentLedgerImpl) validateRequest(req ports.CreatePaymentRequest) (domain.CryptoType, error) {
	ct, err := domain.ParseCryptoType(req.CryptoType)
	if err != nil {
		return "", apperror.ErrInvalidCryptoType(req.CryptoType)
	}
	if !req.AmountUSD.IsPositive() {
		return "", apperror.ErrInvalidAmount()
	}
	return ct, nil
}

func (s *PaymentLedgerImpl) activeMerchant(ctx context.Context, merchantID uuid.UUID) (*domain.Merchant, error) {
	merchant, err := s.MerchantRepo.GetByID(ctx, merchantID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get merchant: %w", err))
	}
	if merchant == nil {
		return nil, apperror.ErrNotFound("merchant")
	}
	if !merchant.IsActive() {
		return nil, apperror.ErrMerchantSuspended()
	}
	return merchant, nil
}

// depositWallet returns the custodial wallet that receives the payment,
// generating one under the vault's default password on first use.
func (s *PaymentLedgerImpl) depositWallet(ctx context.Context, merchantID uuid.UUID, ct domain.CryptoType, mode domain.WalletMode) (*domain.WalletRecord, error) {
	wallet, err := s.WalletRepo.Get(ctx, merchantID, ct, mode)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet != nil {
		return wallet, nil
	}
	if mode == domain.WalletModeImported {
		return nil, apperror.ErrNotFound("imported wallet")
	}

	generated, err := s.Vault.Generate(ctx, merchantID, ct, "")
	if err == nil {
		s.log.Info().
			Str("merchant_id", merchantID.String()).
			Str("crypto_type", string(ct)).
			Str("address", generated.Wallet.Address).
			Msg("deposit wallet generated")
		return generated.Wallet, nil
	}
	if !apperror.Is(err, "PAY_011") {
		return nil, err
	}

	// Lost a race with a concurrent payment for the same wallet.
	wallet, err = s.WalletRepo.Get(ctx, merchantID, ct, mode)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	return wallet, nil
}

func (s *PaymentLedgerImpl) lookupIdempotent(ctx context.Context, req ports.CreatePaymentRequest) (*domain.Payment, error) {
	if req.OrderID == nil || *req.OrderID == "" {
		return nil, nil
	}
	idempKey := domain.BuildIdempotencyKey(req.MerchantID, *req.OrderID)

	// Layer 1: Redis idempotency check
	cached, err := s.IdempCache.Get(ctx, idempKey)
	if err != nil {
		s.log.Warn().Err(err).Str("key", idempKey).Msg("redis idempotency check failed, falling through to DB")
	}
	if cached != nil {
		return unmarshalPayment(cached)
	}

	// Layer 2: DB idempotency check
	idempLog, err := s.IdempRepo.Get(ctx, idempKey)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("db idempotency check: %w", err))
	}
	if idempLog != nil {
		return unmarshalPayment(idempLog.ResponseJSON)
	}
	return nil, nil
}

// replayIdempotent returns the payment recorded for the request's order after
// an insert lost a uniqueness race.
func (s *PaymentLedgerImpl) replayIdempotent(ctx context.Context, req ports.CreatePaymentRequest) (*domain.Payment, error) {
	payment, err := s.lookupIdempotent(ctx, req)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperror.ErrDuplicateTransaction()
	}
	return payment, nil
}

func (s *PaymentLedgerImpl) create(ctx context.Context, req ports.CreatePaymentRequest, ct domain.CryptoType, wallet *domain.WalletRecord, address string) (*domain.Payment, error) {
	price, err := s.Prices.USDPrice(ctx, ct)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("price %s: %w", ct, err))
	}

	dbTx, err := s.Transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	merchant, err := s.MerchantRepo.GetByIDForUpdate(ctx, dbTx, req.MerchantID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock merchant: %w", err))
	}
	if merchant == nil {
		return nil, apperror.ErrNotFound("merchant")
	}
	if !merchant.IsActive() {
		return nil, apperror.ErrMerchantSuspended()
	}

	quote, err := s.Fees.Quote(merchant, req.AmountUSD, req.CustomerPaysFee)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if merchant.ExceedsDailyLimit(req.AmountUSD, s.cfg.Payment.DailyLimit(), now) {
		return nil, apperror.ErrDailyVolumeLimitExceeded()
	}
	merchant.AddVolume(req.AmountUSD, now)
	if err := s.MerchantRepo.UpdateDailyVolume(ctx, dbTx, merchant.ID, merchant.DailyVolumeUSD, merchant.DailyVolumeDate); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update daily volume: %w", err))
	}

	payment := &domain.Payment{
		ID:                    domain.NewPaymentID(),
		MerchantID:            req.MerchantID,
		OrderID:               req.OrderID,
		CryptoType:            ct,
		Network:               ct.Network(),
		WalletMode:            req.WalletMode,
		Address:               address,
		AmountUSD:             quote.RequestedAmount,
		FeeUSD:                quote.ProcessingFee,
		CustomerAmountUSD:     quote.CustomerAmount,
		MerchantNetUSD:        quote.MerchantNet,
		CustomerPaysFee:       quote.CustomerPaysFee,
		CryptoAmount:          cryptoAmount(quote.CustomerAmount, price, ct),
		ExchangeRate:          price,
		ReceivedAmount:        decimal.Zero,
		Status:                domain.PaymentStatusPending,
		RequiredConfirmations: s.requiredConfirmations(ct.Network()),
		Description:           req.Description,
		CreatedAt:             now,
		ExpiresAt:             now.Add(s.cfg.Payment.ExpiryWindow),
		UpdatedAt:             now,
	}
	if wallet != nil {
		payment.WalletID = &wallet.ID
	}

	if err := s.PaymentRepo.Create(ctx, dbTx, payment); err != nil {
		if errors.Is(err, ports.ErrDuplicateRecord) && req.OrderID != nil && *req.OrderID != "" {
			// Same order committed by a concurrent request.
			dbTx.Rollback(ctx) //nolint:errcheck
			return s.replayIdempotent(ctx, req)
		}
		return nil, apperror.InternalError(fmt.Errorf("create payment: %w", err))
	}

	var respJSON []byte
	var idempKey string
	if req.OrderID != nil && *req.OrderID != "" {
		idempKey = domain.BuildIdempotencyKey(req.MerchantID, *req.OrderID)
		respJSON, err = json.Marshal(payment)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("marshal response: %w", err))
		}
		entry := &domain.IdempotencyLog{
			Key:          idempKey,
			ResourceID:   payment.ID,
			ResponseJSON: respJSON,
			CreatedAt:    now,
		}
		if err := s.IdempRepo.Create(ctx, dbTx, entry); err != nil {
			if errors.Is(err, ports.ErrDuplicateRecord) {
				// A concurrent request with the same order won; return its payment.
				dbTx.Rollback(ctx) //nolint:errcheck
				return s.replayIdempotent(ctx, req)
			}
			return nil, apperror.InternalError(fmt.Errorf("save idempotency log: %w", err))
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	if respJSON != nil {
		if err := s.IdempCache.Set(ctx, idempKey, respJSON, s.cfg.Payment.IdempotencyTTL); err != nil {
			s.log.Warn().Err(err).Str("key", idempKey).Msg("failed to cache idempotency in redis")
		}
	}

	s.metrics.PaymentCreated(string(ct), string(payment.WalletMode))
	s.log.Info().
		Str("payment_id", payment.ID).
		Str("merchant_id", req.MerchantID.String()).
		Str("crypto_type", string(ct)).
		Str("wallet_mode", string(payment.WalletMode)).
		Str("amount_usd", payment.AmountUSD.String()).
		Str("crypto_amount", payment.CryptoAmount.String()).
		Msg("payment created")

	return payment, nil
}

// cryptoAmount prices what the customer pays, rounded up to the chain's precision
// so an exact payment always covers the USD amount.
func cryptoAmount(customerUSD, price decimal.Decimal, ct domain.CryptoType) decimal.Decimal {
	return customerUSD.DivRound(price, ct.Decimals()+4).RoundUp(ct.Decimals())
}

func (s *PaymentLedgerImpl) requiredConfirmations(network domain.Network) int {
	if n := s.cfg.Confirmations[network]; n > 0 {
		return n
	}
	return defaultConfirmCount
}

// GetPayment returns a payment owned by merchantID.
func (s *PaymentLedgerImpl) GetPayment(ctx context.Context, merchantID uuid.UUID, paymentID string) (*domain.Payment, error) {
	payment, err := s.PaymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get payment: %w", err))
	}
	if payment == nil || payment.MerchantID != merchantID {
		return nil, apperror.ErrNotFound("payment")
	}
	return payment, nil
}

// ListPayments returns a page of the merchant's payments.
func (s *PaymentLedgerImpl) ListPayments(ctx context.Context, params ports.PaymentListParams) ([]domain.Payment, int64, error) {
	if params.Limit <= 0 {
		params.Limit = defaultListLimit
	}
	if params.Limit > maxListLimit {
		params.Limit = maxListLimit
	}
	if params.Offset < 0 {
		params.Offset = 0
	}
	payments, total, err := s.PaymentRepo.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list payments: %w", err))
	}
	return payments, total, nil
}

// pendingEmit is a webhook queued until the transaction that caused it commits.
type pendingEmit struct {
	eventType domain.WebhookEventType
	payment   *domain.Payment
}

// OnChainEvent applies one observer report. Duplicate and stale reports are
// dropped; a transaction hash binds to at most one payment.
func (s *PaymentLedgerImpl) OnChainEvent(ctx context.Context, event domain.ChainEvent) error {
	if err := validateChainEvent(event); err != nil {
		s.metrics.ChainEvent(string(event.Network), "invalid")
		return err
	}

	key := chainEventKey(event)
	first, err := s.Dedup.FirstSeen(ctx, key, s.cfg.Payment.ChainEventDedupWindow)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("chain event dedup failed, relying on row locks")
		first = true
	}
	if !first {
		s.metrics.ChainEvent(string(event.Network), "duplicate")
		return nil
	}

	if err := s.processChainEvent(ctx, event); err != nil {
		// The observer requeues failed events, so the redelivery must not
		// be mistaken for a duplicate.
		if ferr := s.Dedup.Forget(context.WithoutCancel(ctx), key); ferr != nil {
			s.log.Warn().Err(ferr).Str("key", key).Msg("chain event dedup release failed")
		}
		return err
	}
	return nil
}

// processChainEvent routes event to the withdrawal side or applies it to the
// matching payment.
func (s *PaymentLedgerImpl) processChainEvent(ctx context.Context, event domain.ChainEvent) error {
	handled, err := s.Withdrawals.OnTransferObserved(ctx, event)
	if handled || err != nil {
		if err == nil {
			s.metrics.ChainEvent(string(event.Network), "withdrawal")
		}
		return err
	}

	address, err := CanonicalAddress(event.Network, event.Address)
	if err != nil {
		s.metrics.ChainEvent(string(event.Network), "invalid")
		return err
	}
	event.Address = address

	dbTx, err := s.Transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	payment, err := s.PaymentRepo.GetByTxHashForUpdate(ctx, dbTx, event.Network, event.TxHash)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock payment by hash: %w", err))
	}
	if payment == nil && !event.Reverted {
		payment, err = s.PaymentRepo.FindPendingForUpdate(ctx, dbTx, event.CryptoType, event.Address, event.Amount)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("match pending payment: %w", err))
		}
		if payment != nil {
			hash := event.TxHash
			payment.TransactionHash = &hash
			payment.ReceivedAmount = event.Amount
		}
	}
	if payment == nil {
		s.metrics.ChainEvent(string(event.Network), "unmatched")
		s.log.Debug().
			Str("network", string(event.Network)).
			Str("tx_hash", event.TxHash).
			Str("address", event.Address).
			Msg("chain event matched no payment")
		return nil
	}

	emits, changed, err := s.applyChainEvent(ctx, dbTx, payment, event)
	if err != nil {
		return err
	}
	if !changed {
		s.metrics.ChainEvent(string(event.Network), "stale")
		return nil
	}
	if err := s.PaymentRepo.Update(ctx, dbTx, payment); err != nil {
		return apperror.InternalError(fmt.Errorf("update payment: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.metrics.ChainEvent(string(event.Network), "applied")
	s.log.Info().
		Str("payment_id", payment.ID).
		Str("tx_hash", event.TxHash).
		Int("confirmations", payment.Confirmations).
		Str("status", string(payment.Status)).
		Msg("payment advanced by chain event")

	s.afterCommit(ctx, emits)
	return nil
}

// applyChainEvent moves payment according to event inside dbTx. It reports
// whether anything changed.
func (s *PaymentLedgerImpl) applyChainEvent(ctx context.Context, dbTx pgx.Tx, payment *domain.Payment, event domain.ChainEvent) ([]pendingEmit, bool, error) {
	now := s.now()

	if event.Reverted {
		if !payment.Transition(domain.PaymentStatusFailed, now) {
			return nil, false, nil
		}
		s.metrics.PaymentTransition(string(domain.PaymentStatusFailed))
		if err := s.releaseVolume(ctx, dbTx, payment, now); err != nil {
			return nil, false, err
		}
		return []pendingEmit{{domain.EventPaymentFailed, payment}}, true, nil
	}

	if payment.TransactionHash == nil || *payment.TransactionHash != event.TxHash {
		return nil, false, nil
	}
	if event.Confirmations < payment.Confirmations && payment.Status != domain.PaymentStatusPending {
		return nil, false, nil
	}

	changed := false
	if event.Confirmations > payment.Confirmations {
		payment.Confirmations = event.Confirmations
		payment.UpdatedAt = now
		changed = true
	}
	if payment.Status == domain.PaymentStatusPending {
		payment.Transition(domain.PaymentStatusConfirming, now)
		s.metrics.PaymentTransition(string(domain.PaymentStatusConfirming))
		changed = true
	}
	if payment.Status != domain.PaymentStatusConfirming || payment.Confirmations < payment.RequiredConfirmations {
		return nil, changed, nil
	}

	emits, err := s.confirm(ctx, dbTx, payment, now)
	if err != nil {
		return nil, false, err
	}
	return emits, true, nil
}

// confirm moves a payment to CONFIRMED, credits custodial wallets and settles
// address-only payments.
func (s *PaymentLedgerImpl) confirm(ctx context.Context, dbTx pgx.Tx, payment *domain.Payment, now time.Time) ([]pendingEmit, error) {
	if payment.Status != domain.PaymentStatusConfirmed && !payment.Transition(domain.PaymentStatusConfirmed, now) {
		return nil, apperror.ErrStateConflict("payment cannot be confirmed from " + string(payment.Status))
	}
	s.metrics.PaymentTransition(string(domain.PaymentStatusConfirmed))

	if !payment.WalletMode.Custodial() {
		payment.Transition(domain.PaymentStatusSettled, now)
		s.metrics.PaymentTransition(string(domain.PaymentStatusSettled))
		return []pendingEmit{{domain.EventAddressOnlyPayment, payment}}, nil
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
	credit := payment.ReceivedAmount
	if !credit.IsPositive() {
		credit = payment.CryptoAmount
	}
	if err := s.WalletRepo.UpdateBalance(ctx, dbTx, wallet.ID, wallet.AvailableBalance.Add(credit)); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("credit wallet: %w", err))
	}
	return []pendingEmit{{domain.EventPaymentConfirmed, payment}}, nil
}

func (s *PaymentLedgerImpl) releaseVolume(ctx context.Context, dbTx pgx.Tx, payment *domain.Payment, now time.Time) error {
	merchant, err := s.MerchantRepo.GetByIDForUpdate(ctx, dbTx, payment.MerchantID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock merchant: %w", err))
	}
	if merchant == nil {
		return nil
	}
	merchant.ReleaseVolume(payment.AmountUSD, payment.CreatedAt, now)
	if err := s.MerchantRepo.UpdateDailyVolume(ctx, dbTx, merchant.ID, merchant.DailyVolumeUSD, merchant.DailyVolumeDate); err != nil {
		return apperror.InternalError(fmt.Errorf("release daily volume: %w", err))
	}
	return nil
}

// afterCommit sends webhooks and starts forwarding for newly confirmed
// custodial payments.
func (s *PaymentLedgerImpl) afterCommit(ctx context.Context, emits []pendingEmit) {
	for _, e := range emits {
		if err := s.Webhooks.Emit(ctx, e.payment.MerchantID, e.eventType, e.payment.ID, e.payment); err != nil {
			s.log.Error().Err(err).
				Str("payment_id", e.payment.ID).
				Str("event_type", string(e.eventType)).
				Msg("failed to emit payment webhook")
		}
		if e.eventType == domain.EventPaymentConfirmed {
			s.forwardInBackground(ctx, e.payment)
		}
	}
}

// forwardInBackground runs maybeForward off the caller's request with its own
// deadline, so a short observer callback cannot cut a forward off mid-sign.
// Payments it leaves behind are picked up by ForwardPending.
func (s *PaymentLedgerImpl) forwardInBackground(ctx context.Context, payment *domain.Payment) {
	if !s.cfg.Forwarding.Enabled || payment.WalletID == nil || payment.Simulated() {
		return
	}
	s.forwards.Add(1)
	go func() {
		defer s.forwards.Done()
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.Forwarding.Timeout)
		defer cancel()
		s.maybeForward(fctx, payment)
	}()
}

// Wait blocks until background forwarding runs finish.
func (s *PaymentLedgerImpl) Wait() {
	s.forwards.Wait()
}

// ForwardPending retries forwarding for confirmed custodial payments that
// have no forward in flight, and returns how many were started.
func (s *PaymentLedgerImpl) ForwardPending(ctx context.Context) (int, error) {
	if !s.cfg.Forwarding.Enabled {
		return 0, nil
	}
	cutoff := s.now().Add(-s.cfg.Forwarding.RetryAfter)
	ids, err := s.PaymentRepo.ListForwardable(ctx, cutoff, s.cfg.Forwarding.MaxAttempts, forwardSweepBatch)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("list forwardable payments: %w", err))
	}

	started := 0
	for _, id := range ids {
		if ctx.Err() != nil {
			return started, ctx.Err()
		}
		payment, err := s.PaymentRepo.GetByID(ctx, id)
		if err != nil || payment == nil {
			s.log.Warn().Err(err).Str("payment_id", id).Msg("forward sweep: payment unavailable")
			continue
		}
		fctx, cancel := context.WithTimeout(ctx, s.cfg.Forwarding.Timeout)
		if s.maybeForward(fctx, payment) {
			started++
		}
		cancel()
	}
	return started, nil
}

// maybeForward sends confirmed funds on to the merchant's payout address when
// the deposit wallet can be signed for without the merchant's password. It
// reports whether a forward was started.
func (s *PaymentLedgerImpl) maybeForward(ctx context.Context, payment *domain.Payment) bool {
	if !s.cfg.Forwarding.Enabled || payment.WalletID == nil || payment.Simulated() {
		return false
	}
	logger := s.log.With().Str("payment_id", payment.ID).Logger()

	wallet, err := s.WalletRepo.GetByID(ctx, *payment.WalletID)
	if err != nil || wallet == nil {
		logger.Warn().Err(err).Msg("forwarding skipped: deposit wallet unavailable")
		return false
	}
	if !wallet.UsesDefaultPassword {
		logger.Info().Msg("forwarding skipped: wallet sealed with merchant password")
		return false
	}
	payout, err := s.WalletRepo.Get(ctx, payment.MerchantID, payment.CryptoType, domain.WalletModeAddressOnly)
	if err != nil {
		logger.Warn().Err(err).Msg("forwarding skipped: payout lookup failed")
		return false
	}
	if payout == nil {
		return false
	}

	w, err := s.Withdrawals.Forward(ctx, payment.ID)
	if err != nil {
		logger.Error().Err(err).Msg("forwarding failed")
		return false
	}
	logger.Info().Str("withdrawal_id", w.ID.String()).Str("status", string(w.Status)).Msg("forwarding started")
	return true
}

// ExpirePending expires PENDING payments past their window and returns how
// many moved.
func (s *PaymentLedgerImpl) ExpirePending(ctx context.Context) (int, error) {
	now := s.now()
	ids, err := s.PaymentRepo.ListExpiredIDs(ctx, now, expirySweepBatch)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("list expired payments: %w", err))
	}

	expired := 0
	for _, id := range ids {
		if ctx.Err() != nil {
			return expired, ctx.Err()
		}
		payment, err := s.expireOne(ctx, id)
		if err != nil {
			s.log.Error().Err(err).Str("payment_id", id).Msg("failed to expire payment")
			continue
		}
		if payment == nil {
			continue
		}
		expired++
		s.afterCommit(ctx, []pendingEmit{{domain.EventPaymentExpired, payment}})
	}

	if expired > 0 {
		s.log.Info().Int("count", expired).Msg("expired pending payments")
	}
	return expired, nil
}

func (s *PaymentLedgerImpl) expireOne(ctx context.Context, id string) (*domain.Payment, error) {
	dbTx, err := s.Transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	payment, err := s.PaymentRepo.GetByIDForUpdate(ctx, dbTx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock payment: %w", err))
	}
	now := s.now()
	// A chain event may have claimed it since the listing.
	if payment == nil || !payment.IsExpired(now) {
		return nil, nil
	}
	payment.Transition(domain.PaymentStatusExpired, now)
	if err := s.releaseVolume(ctx, dbTx, payment, now); err != nil {
		return nil, err
	}
	if err := s.PaymentRepo.Update(ctx, dbTx, payment); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update payment: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	s.metrics.PaymentTransition(string(domain.PaymentStatusExpired))
	return payment, nil
}

// ForceTransition is the administrative override to CONFIRMED or FAILED.
func (s *PaymentLedgerImpl) ForceTransition(ctx context.Context, paymentID string, target domain.PaymentStatus, actor, reason string) (*domain.Payment, error) {
	if target != domain.PaymentStatusConfirmed && target != domain.PaymentStatusFailed {
		return nil, apperror.Validation("status must be CONFIRMED or FAILED")
	}

	dbTx, err := s.Transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	payment, err := s.PaymentRepo.GetByIDForUpdate(ctx, dbTx, paymentID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock payment: %w", err))
	}
	if payment == nil {
		return nil, apperror.ErrNotFound("payment")
	}

	from := payment.Status
	now := s.now()
	if !payment.Force(target, now) {
		return nil, apperror.ErrStateConflict(fmt.Sprintf("cannot force payment from %s to %s", from, target))
	}

	var emits []pendingEmit
	if target == domain.PaymentStatusConfirmed {
		emits, err = s.confirm(ctx, dbTx, payment, now)
		if err != nil {
			return nil, err
		}
	} else {
		s.metrics.PaymentTransition(string(domain.PaymentStatusFailed))
		if err := s.releaseVolume(ctx, dbTx, payment, now); err != nil {
			return nil, err
		}
		emits = []pendingEmit{{domain.EventPaymentFailed, payment}}
	}

	if err := s.PaymentRepo.Update(ctx, dbTx, payment); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update payment: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	details, _ := json.Marshal(map[string]string{"from": string(from), "to": string(target), "reason": reason})
	merchantID := payment.MerchantID
	s.Audit.Log(ctx, &domain.AuditLog{
		ID:           uuid.New(),
		MerchantID:   &merchantID,
		Actor:        actor,
		Action:       domain.AuditActionForceTransition,
		ResourceType: "payment",
		ResourceID:   payment.ID,
		Details:      string(details),
		CreatedAt:    now,
	})
	s.log.Warn().
		Str("payment_id", payment.ID).
		Str("actor", actor).
		Str("from", string(from)).
		Str("to", string(payment.Status)).
		Str("reason", reason).
		Msg("payment status forced")

	s.afterCommit(ctx, emits)
	return payment, nil
}

func validateChainEvent(event domain.ChainEvent) error {
	switch {
	case !event.Network.Valid():
		return apperror.Validation("unknown network")
	case !event.CryptoType.Valid() || event.CryptoType.Network() != event.Network:
		return apperror.ErrInvalidCryptoType(string(event.CryptoType))
	case event.TxHash == "":
		return apperror.Validation("tx_hash is required")
	case event.Confirmations < 0:
		return apperror.Validation("confirmations must not be negative")
	case event.Amount.IsNegative():
		return apperror.ErrInvalidAmount()
	}
	return nil
}

// chainEventKey identifies one observation: growing confirmations and a
// reorg are distinct reports of the same transaction.
func chainEventKey(event domain.ChainEvent) string {
	key := string(event.Network) + ":" + event.TxHash + ":" + strconv.Itoa(event.Confirmations)
	if event.Reverted {
		key += ":reverted"
	}
	return key
}

func unmarshalPayment(data []byte) (*domain.Payment, error) {
	var payment domain.Payment
	if err := json.Unmarshal(data, &payment); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("unmarshal cached payment: %w", err))
	}
	return &payment, nil
}
