package integration

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// --- In-Memory Transactor ---

// memTransactor serializes transactions: a tx holds the store-wide lock from
// Begin until Commit or Rollback, which stands in for row locks.
type memTransactor struct {
	mu sync.Mutex
}

func newMemTransactor() *memTransactor {
	return &memTransactor{}
}

func (t *memTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	return &memTx{release: t.mu.Unlock}, nil
}

// memTx records how to undo each write so Rollback restores the repos.
// Methods other than Commit and Rollback are never called by the repos.
type memTx struct {
	pgx.Tx
	release func()
	undo    []func()
	done    bool
}

func (tx *memTx) Commit(ctx context.Context) error {
	if tx.done {
		return pgx.ErrTxClosed
	}
	tx.done = true
	tx.undo = nil
	tx.release()
	return nil
}

func (tx *memTx) Rollback(ctx context.Context) error {
	if tx.done {
		return pgx.ErrTxClosed
	}
	tx.done = true
	for i := len(tx.undo) - 1; i >= 0; i-- {
		tx.undo[i]()
	}
	tx.undo = nil
	tx.release()
	return nil
}

func onRollback(tx pgx.Tx, fn func()) {
	if mt, ok := tx.(*memTx); ok {
		mt.undo = append(mt.undo, fn)
	}
}

// --- In-Memory Merchant Repo ---

type inMemoryMerchantRepo struct {
	mu        sync.RWMutex
	merchants map[uuid.UUID]domain.Merchant
}

func newInMemoryMerchantRepo() *inMemoryMerchantRepo {
	return &inMemoryMerchantRepo{merchants: make(map[uuid.UUID]domain.Merchant)}
}

func (r *inMemoryMerchantRepo) Create(ctx context.Context, m *domain.Merchant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.merchants {
		if existing.Username == m.Username || existing.AccessKey == m.AccessKey {
			return ports.ErrDuplicateRecord
		}
	}
	r.merchants[m.ID] = *m
	return nil
}

func (r *inMemoryMerchantRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Merchant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.merchants[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *inMemoryMerchantRepo) GetByAccessKey(ctx context.Context, accessKey string) (*domain.Merchant, error) {
	return r.find(func(m domain.Merchant) bool { return m.AccessKey == accessKey }), nil
}

func (r *inMemoryMerchantRepo) GetByUsername(ctx context.Context, username string) (*domain.Merchant, error) {
	return r.find(func(m domain.Merchant) bool { return m.Username == username }), nil
}

func (r *inMemoryMerchantRepo) find(match func(domain.Merchant) bool) *domain.Merchant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.merchants {
		if match(m) {
			return &m
		}
	}
	return nil
}

func (r *inMemoryMerchantRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Merchant, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryMerchantRepo) Update(ctx context.Context, m *domain.Merchant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.merchants[m.ID]; !ok {
		return errors.New("merchant not found")
	}
	r.merchants[m.ID] = *m
	return nil
}

func (r *inMemoryMerchantRepo) UpdateDailyVolume(ctx context.Context, tx pgx.Tx, id uuid.UUID, volume decimal.Decimal, day time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.merchants[id]
	if !ok {
		return errors.New("merchant not found")
	}
	prev := m
	m.DailyVolumeUSD = volume
	m.DailyVolumeDate = day
	r.merchants[id] = m
	onRollback(tx, func() { r.restore(prev) })
	return nil
}

func (r *inMemoryMerchantRepo) restore(m domain.Merchant) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.merchants[m.ID] = m
}

// --- In-Memory Wallet Repo ---

type inMemoryWalletRepo struct {
	mu      sync.RWMutex
	wallets map[uuid.UUID]domain.WalletRecord
}

func newInMemoryWalletRepo() *inMemoryWalletRepo {
	return &inMemoryWalletRepo{wallets: make(map[uuid.UUID]domain.WalletRecord)}
}

func (r *inMemoryWalletRepo) Create(ctx context.Context, w *domain.WalletRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.wallets {
		if existing.MerchantID == w.MerchantID && existing.CryptoType == w.CryptoType && existing.Mode == w.Mode {
			return ports.ErrDuplicateRecord
		}
	}
	r.wallets[w.ID] = *w
	return nil
}

func (r *inMemoryWalletRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WalletRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wallets[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (r *inMemoryWalletRepo) Get(ctx context.Context, merchantID uuid.UUID, cryptoType domain.CryptoType, mode domain.WalletMode) (*domain.WalletRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.wallets {
		if w.MerchantID == merchantID && w.CryptoType == cryptoType && w.Mode == mode {
			return &w, nil
		}
	}
	return nil, nil
}

func (r *inMemoryWalletRepo) ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]domain.WalletRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.WalletRecord
	for _, w := range r.wallets {
		if w.MerchantID == merchantID {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *inMemoryWalletRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, cryptoType domain.CryptoType, mode domain.WalletMode) (*domain.WalletRecord, error) {
	return r.Get(ctx, merchantID, cryptoType, mode)
}

func (r *inMemoryWalletRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.WalletRecord, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryWalletRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, balance decimal.Decimal) error {
	if balance.IsNegative() {
		return errors.New("balance must not be negative")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[walletID]
	if !ok {
		return errors.New("wallet not found")
	}
	prev := w
	w.AvailableBalance = balance
	w.UpdatedAt = time.Now().UTC()
	r.wallets[walletID] = w
	onRollback(tx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.wallets[prev.ID] = prev
	})
	return nil
}

// --- In-Memory Payment Repo ---

type inMemoryPaymentRepo struct {
	mu       sync.RWMutex
	payments map[string]domain.Payment
	// withdrawals answers the forwarding sweep's join.
	withdrawals *inMemoryWithdrawalRepo
	// failUpdates makes the next n Update calls fail.
	failUpdates atomic.Int32
}

func newInMemoryPaymentRepo() *inMemoryPaymentRepo {
	return &inMemoryPaymentRepo{payments: make(map[string]domain.Payment)}
}

func (r *inMemoryPaymentRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.payments {
		if conflicts(existing, *p) {
			return ports.ErrDuplicateRecord
		}
	}
	r.payments[p.ID] = *p
	onRollback(tx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.payments, p.ID)
	})
	return nil
}

// conflicts mirrors the unique indexes on order and transaction hash.
func conflicts(a, b domain.Payment) bool {
	if a.ID == b.ID {
		return true
	}
	if a.MerchantID == b.MerchantID && a.OrderID != nil && b.OrderID != nil && *a.OrderID == *b.OrderID {
		return true
	}
	return a.Network == b.Network && a.TransactionHash != nil && b.TransactionHash != nil &&
		*a.TransactionHash == *b.TransactionHash
}

func (r *inMemoryPaymentRepo) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.payments[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *inMemoryPaymentRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id string) (*domain.Payment, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryPaymentRepo) GetByTxHashForUpdate(ctx context.Context, tx pgx.Tx, network domain.Network, txHash string) (*domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.payments {
		if p.Network == network && p.TransactionHash != nil && *p.TransactionHash == txHash {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *inMemoryPaymentRepo) FindPendingForUpdate(ctx context.Context, tx pgx.Tx, cryptoType domain.CryptoType, address string, received decimal.Decimal) (*domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var oldest *domain.Payment
	for _, p := range r.payments {
		if p.Status != domain.PaymentStatusPending || p.CryptoType != cryptoType || p.Address != address {
			continue
		}
		if p.CryptoAmount.GreaterThan(received) {
			continue
		}
		if oldest == nil || p.CreatedAt.Before(oldest.CreatedAt) {
			match := p
			oldest = &match
		}
	}
	return oldest, nil
}

func (r *inMemoryPaymentRepo) Update(ctx context.Context, tx pgx.Tx, p *domain.Payment) error {
	for n := r.failUpdates.Load(); n > 0; n = r.failUpdates.Load() {
		if r.failUpdates.CompareAndSwap(n, n-1) {
			return errors.New("payment store unavailable")
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, ok := r.payments[p.ID]
	if !ok {
		return errors.New("payment not found")
	}
	r.payments[p.ID] = *p
	onRollback(tx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.payments[prev.ID] = prev
	})
	return nil
}

func (r *inMemoryPaymentRepo) ListExpiredIDs(ctx context.Context, now time.Time, limit int) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var ids []string
	for _, p := range r.payments {
		if p.Status == domain.PaymentStatusPending && !p.ExpiresAt.After(now) {
			ids = append(ids, p.ID)
		}
	}
	sort.Strings(ids)
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

func (r *inMemoryPaymentRepo) ListForwardable(ctx context.Context, confirmedBefore time.Time, maxAttempts, limit int) ([]string, error) {
	r.mu.RLock()
	var candidates []domain.Payment
	for _, p := range r.payments {
		if p.Status == domain.PaymentStatusConfirmed && p.WalletMode.Custodial() && p.WalletID != nil &&
			p.ConfirmedAt != nil && !p.ConfirmedAt.After(confirmedBefore) && !p.Simulated() {
			candidates = append(candidates, p)
		}
	}
	r.mu.RUnlock()
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].ConfirmedAt.Before(*candidates[j].ConfirmedAt) })

	var ids []string
	for _, p := range candidates {
		if len(ids) == limit {
			break
		}
		if r.withdrawals != nil {
			active, attempts := r.withdrawals.forwardState(p.ID)
			if active || attempts >= maxAttempts {
				continue
			}
		}
		ids = append(ids, p.ID)
	}
	return ids, nil
}

func (r *inMemoryPaymentRepo) List(ctx context.Context, params ports.PaymentListParams) ([]domain.Payment, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []domain.Payment
	for _, p := range r.payments {
		if p.MerchantID != params.MerchantID {
			continue
		}
		if params.Status != nil && p.Status != *params.Status {
			continue
		}
		if params.CryptoType != nil && p.CryptoType != *params.CryptoType {
			continue
		}
		if params.WalletMode != nil && p.WalletMode != *params.WalletMode {
			continue
		}
		matched = append(matched, p)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	total := int64(len(matched))
	if params.Offset >= len(matched) {
		return []domain.Payment{}, total, nil
	}
	matched = matched[params.Offset:]
	if params.Limit > 0 && len(matched) > params.Limit {
		matched = matched[:params.Limit]
	}
	return matched, total, nil
}

func (r *inMemoryPaymentRepo) GetStats(ctx context.Context, merchantID uuid.UUID, since *time.Time) (*ports.PaymentStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stats := &ports.PaymentStats{VolumeUSD: decimal.Zero, FeesUSD: decimal.Zero}
	for _, p := range r.payments {
		if p.MerchantID != merchantID || (since != nil && p.CreatedAt.Before(*since)) {
			continue
		}
		stats.TotalPayments++
		switch p.Status {
		case domain.PaymentStatusPending, domain.PaymentStatusConfirming:
			stats.Pending++
		case domain.PaymentStatusConfirmed, domain.PaymentStatusForwarded, domain.PaymentStatusSettled:
			stats.Completed++
			stats.VolumeUSD = stats.VolumeUSD.Add(p.AmountUSD)
			stats.FeesUSD = stats.FeesUSD.Add(p.FeeUSD)
		case domain.PaymentStatusFailed:
			stats.Failed++
		case domain.PaymentStatusExpired:
			stats.Expired++
		case domain.PaymentStatusRefunded:
			stats.Refunded++
		}
	}
	return stats, nil
}

// --- In-Memory Withdrawal Repo ---

type inMemoryWithdrawalRepo struct {
	mu          sync.RWMutex
	withdrawals map[uuid.UUID]domain.Withdrawal
}

func newInMemoryWithdrawalRepo() *inMemoryWithdrawalRepo {
	return &inMemoryWithdrawalRepo{withdrawals: make(map[uuid.UUID]domain.Withdrawal)}
}

func (r *inMemoryWithdrawalRepo) Create(ctx context.Context, tx pgx.Tx, w *domain.Withdrawal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.withdrawals[w.ID]; ok {
		return ports.ErrDuplicateRecord
	}
	r.withdrawals[w.ID] = *w
	onRollback(tx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.withdrawals, w.ID)
	})
	return nil
}

func (r *inMemoryWithdrawalRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Withdrawal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.withdrawals[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (r *inMemoryWithdrawalRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Withdrawal, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryWithdrawalRepo) GetByTxHashForUpdate(ctx context.Context, tx pgx.Tx, network domain.Network, txHash string) (*domain.Withdrawal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.withdrawals {
		if w.Network == network && w.TransactionHash != nil && *w.TransactionHash == txHash {
			return &w, nil
		}
	}
	return nil, nil
}

func (r *inMemoryWithdrawalRepo) HasActiveForPayment(ctx context.Context, tx pgx.Tx, paymentID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.withdrawals {
		if w.PaymentID == nil || *w.PaymentID != paymentID {
			continue
		}
		if w.Status != domain.WithdrawalStatusFailed && w.Status != domain.WithdrawalStatusRejected {
			return true, nil
		}
	}
	return false, nil
}

// forwardState reports whether paymentID has a live or completed withdrawal
// and how many forwards were attempted for it.
func (r *inMemoryWithdrawalRepo) forwardState(paymentID string) (active bool, attempts int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.withdrawals {
		if w.PaymentID == nil || *w.PaymentID != paymentID {
			continue
		}
		if w.Kind == domain.WithdrawalKindForward {
			attempts++
		}
		if w.Status != domain.WithdrawalStatusFailed && w.Status != domain.WithdrawalStatusRejected {
			active = true
		}
	}
	return active, attempts
}

func (r *inMemoryWithdrawalRepo) Update(ctx context.Context, tx pgx.Tx, w *domain.Withdrawal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, ok := r.withdrawals[w.ID]
	if !ok {
		return errors.New("withdrawal not found")
	}
	r.withdrawals[w.ID] = *w
	onRollback(tx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.withdrawals[prev.ID] = prev
	})
	return nil
}

func (r *inMemoryWithdrawalRepo) ListStaleProcessing(ctx context.Context, startedBefore time.Time, limit int) ([]domain.Withdrawal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Withdrawal
	for _, w := range r.withdrawals {
		if w.Status == domain.WithdrawalStatusProcessing && w.ProcessingStartedAt != nil && w.ProcessingStartedAt.Before(startedBefore) {
			out = append(out, w)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// --- In-Memory Webhook Repo ---

type inMemoryWebhookRepo struct {
	mu         sync.RWMutex
	events     map[uuid.UUID]domain.WebhookEvent
	deliveries map[uuid.UUID]domain.WebhookDelivery
}

func newInMemoryWebhookRepo() *inMemoryWebhookRepo {
	return &inMemoryWebhookRepo{
		events:     make(map[uuid.UUID]domain.WebhookEvent),
		deliveries: make(map[uuid.UUID]domain.WebhookDelivery),
	}
}

func (r *inMemoryWebhookRepo) CreateEvent(ctx context.Context, event *domain.WebhookEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[event.ID] = *event
	return nil
}

func (r *inMemoryWebhookRepo) CreateDelivery(ctx context.Context, d *domain.WebhookDelivery) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deliveries[d.ID] = *d
	return nil
}

func (r *inMemoryWebhookRepo) UpdateDelivery(ctx context.Context, d *domain.WebhookDelivery) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.deliveries[d.ID]
	if !ok {
		return errors.New("delivery not found")
	}
	if current.Status == domain.WebhookStatusDelivered {
		return nil
	}
	r.deliveries[d.ID] = *d
	return nil
}

func (r *inMemoryWebhookRepo) GetDelivery(ctx context.Context, id uuid.UUID) (*domain.WebhookDelivery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.deliveries[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (r *inMemoryWebhookRepo) ClaimDue(ctx context.Context, now, leaseUntil time.Time, limit int) ([]domain.WebhookDelivery, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.WebhookDelivery
	for id, d := range r.deliveries {
		if len(out) == limit {
			break
		}
		if d.Status == domain.WebhookStatusPending && d.NextRetryAt != nil && !d.NextRetryAt.After(now) {
			lease := leaseUntil
			d.NextRetryAt = &lease
			r.deliveries[id] = d
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *inMemoryWebhookRepo) ListByMerchant(ctx context.Context, merchantID uuid.UUID, status *domain.WebhookStatus, limit int) ([]domain.WebhookDelivery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.WebhookDelivery
	for _, d := range r.deliveries {
		if d.MerchantID != merchantID || (status != nil && d.Status != *status) {
			continue
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// --- In-Memory Idempotency Repo ---

type inMemoryIdempotencyRepo struct {
	mu   sync.RWMutex
	logs map[string]domain.IdempotencyLog
}

func newInMemoryIdempotencyRepo() *inMemoryIdempotencyRepo {
	return &inMemoryIdempotencyRepo{logs: make(map[string]domain.IdempotencyLog)}
}

func (r *inMemoryIdempotencyRepo) Create(ctx context.Context, tx pgx.Tx, log *domain.IdempotencyLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.logs[log.Key]; ok {
		return ports.ErrDuplicateRecord
	}
	r.logs[log.Key] = *log
	onRollback(tx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.logs, log.Key)
	})
	return nil
}

func (r *inMemoryIdempotencyRepo) Get(ctx context.Context, key string) (*domain.IdempotencyLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.logs[key]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

// --- In-Memory Audit Repo ---

type inMemoryAuditRepo struct {
	mu      sync.Mutex
	entries []domain.AuditLog
}

func newInMemoryAuditRepo() *inMemoryAuditRepo {
	return &inMemoryAuditRepo{}
}

func (r *inMemoryAuditRepo) Create(ctx context.Context, log *domain.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *log)
	return nil
}

func (r *inMemoryAuditRepo) actions() []domain.AuditAction {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AuditAction, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Action)
	}
	return out
}
