package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"cryptopay-gateway/config"
	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/apperror"
	"cryptopay-gateway/pkg/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Webhook request headers.
const (
	HeaderWebhookSignature = "X-Webhook-Signature"
	HeaderWebhookTimestamp = "X-Webhook-Timestamp"
	HeaderWebhookEventID   = "X-Webhook-Event-Id"
	HeaderWebhookEventType = "X-Webhook-Event-Type"
)

const (
	defaultDeliveryListLimit = 50
	maxDeliveryListLimit     = 200
	maxErrorBodyBytes        = 512
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WebhookDispatcherImpl implements ports.WebhookDispatcher.
type WebhookDispatcherImpl struct {
	merchantRepo ports.MerchantRepository
	webhookRepo  ports.WebhookRepository
	encSvc       ports.EncryptionService
	sigSvc       ports.SignatureService
	publisher    ports.EventPublisher
	httpClient   HTTPClient
	cfg          config.WebhookConfig
	metrics      *metrics.Metrics
	log          zerolog.Logger
	now          func() time.Time

	inflight sync.WaitGroup
}

// NewWebhookDispatcher creates a new webhook dispatcher. publisher may be nil
// when no broker is configured.
func NewWebhookDispatcher(
	merchantRepo ports.MerchantRepository,
	webhookRepo ports.WebhookRepository,
	encSvc ports.EncryptionService,
	sigSvc ports.SignatureService,
	publisher ports.EventPublisher,
	httpClient HTTPClient,
	cfg config.WebhookConfig,
	m *metrics.Metrics,
	log zerolog.Logger,
) *WebhookDispatcherImpl {
	return &WebhookDispatcherImpl{
		merchantRepo: merchantRepo,
		webhookRepo:  webhookRepo,
		encSvc:       encSvc,
		sigSvc:       sigSvc,
		publisher:    publisher,
		httpClient:   httpClient,
		cfg:          cfg,
		metrics:      m,
		log:          log,
		now:          time.Now,
	}
}

// Emit records an immutable event and schedules its delivery. The first
// attempt runs in the background under a lease; failures are picked up by
// RetryDue once the lease has passed.
func (s *WebhookDispatcherImpl) Emit(ctx context.Context, merchantID uuid.UUID, eventType domain.WebhookEventType, resourceID string, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("marshal webhook data: %w", err))
	}
	now := s.now().UTC()
	event := &domain.WebhookEvent{
		ID:         uuid.New(),
		MerchantID: merchantID,
		Type:       eventType,
		ResourceID: resourceID,
		Data:       raw,
		CreatedAt:  now,
	}
	if err := s.webhookRepo.CreateEvent(ctx, event); err != nil {
		return apperror.InternalError(fmt.Errorf("persist webhook event: %w", err))
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.log.Warn().Err(err).
				Str("event_id", event.ID.String()).
				Str("event_type", string(eventType)).
				Msg("webhook: broker publish failed")
		}
	}

	merchant, err := s.merchantRepo.GetByID(ctx, merchantID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load merchant: %w", err))
	}
	if merchant == nil || merchant.WebhookURL == nil || *merchant.WebhookURL == "" {
		s.log.Debug().Str("merchant_id", merchantID.String()).Msg("webhook: no webhook URL configured, skipping")
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("marshal webhook body: %w", err))
	}
	lease := now.Add(s.leaseDuration())
	delivery := &domain.WebhookDelivery{
		ID:          uuid.New(),
		EventID:     event.ID,
		MerchantID:  merchantID,
		EventType:   eventType,
		URL:         *merchant.WebhookURL,
		Payload:     string(body),
		Status:      domain.WebhookStatusPending,
		NextRetryAt: &lease,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.webhookRepo.CreateDelivery(ctx, delivery); err != nil {
		return apperror.InternalError(fmt.Errorf("persist webhook delivery: %w", err))
	}

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		s.attempt(context.WithoutCancel(ctx), delivery)
	}()
	return nil
}

// Wait blocks until background deliveries started by Emit have finished.
func (s *WebhookDispatcherImpl) Wait() {
	s.inflight.Wait()
}

// leaseDuration is how long a claimed delivery stays invisible to other
// workers. It outlasts one HTTP attempt.
func (s *WebhookDispatcherImpl) leaseDuration() time.Duration {
	return 2 * s.cfg.Timeout
}

// RetryDue re-attempts pending deliveries whose next_retry_at has passed.
func (s *WebhookDispatcherImpl) RetryDue(ctx context.Context) (int, error) {
	now := s.now().UTC()
	due, err := s.webhookRepo.ClaimDue(ctx, now, now.Add(s.leaseDuration()), s.cfg.RetryBatchSize)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("list due webhooks: %w", err))
	}
	for i := range due {
		if ctx.Err() != nil {
			return i, ctx.Err()
		}
		s.attempt(ctx, &due[i])
	}
	return len(due), nil
}

// Redeliver resets an undeliverable delivery and tries it once more right away.
func (s *WebhookDispatcherImpl) Redeliver(ctx context.Context, merchantID, deliveryID uuid.UUID) (*domain.WebhookDelivery, error) {
	d, err := s.webhookRepo.GetDelivery(ctx, deliveryID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load delivery: %w", err))
	}
	if d == nil || d.MerchantID != merchantID {
		return nil, apperror.ErrNotFound("webhook delivery")
	}
	if d.Status != domain.WebhookStatusUndeliverable {
		return nil, apperror.ErrStateConflict("only undeliverable webhooks can be redelivered")
	}

	now := s.now().UTC()
	d.Status = domain.WebhookStatusPending
	d.Attempt = 0
	d.NextRetryAt = &now
	d.LastError = nil
	s.attempt(ctx, d)
	return d, nil
}

// ListDeliveries returns the merchant's most recent deliveries.
func (s *WebhookDispatcherImpl) ListDeliveries(ctx context.Context, merchantID uuid.UUID, status *domain.WebhookStatus, limit int) ([]domain.WebhookDelivery, error) {
	if limit <= 0 {
		limit = defaultDeliveryListLimit
	}
	if limit > maxDeliveryListLimit {
		limit = maxDeliveryListLimit
	}
	list, err := s.webhookRepo.ListByMerchant(ctx, merchantID, status, limit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list deliveries: %w", err))
	}
	return list, nil
}

// VerifyInbound checks a signed callback addressed to merchantID.
func (s *WebhookDispatcherImpl) VerifyInbound(ctx context.Context, merchantID uuid.UUID, timestamp, signature string, body []byte) error {
	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return apperror.ErrTimestampExpired()
	}
	skew := s.now().Sub(time.Unix(ts, 0))
	if skew < 0 {
		skew = -skew
	}
	if skew > s.cfg.InboundTolerance {
		return apperror.ErrTimestampExpired()
	}

	merchant, err := s.merchantRepo.GetByID(ctx, merchantID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load merchant: %w", err))
	}
	if merchant == nil {
		return apperror.ErrNotFound("merchant")
	}
	secret, err := s.encSvc.Decrypt(merchant.WebhookSecretEnc)
	if err != nil {
		return apperror.ErrEncryptionFailure(err)
	}
	if !s.sigSvc.Verify(secret, s.sigSvc.BuildWebhookPayload(ts, body), signature) {
		return apperror.ErrInvalidSignature()
	}
	return nil
}

// attempt performs one HTTP delivery and records the outcome.
func (s *WebhookDispatcherImpl) attempt(ctx context.Context, d *domain.WebhookDelivery) {
	log := s.log.With().
		Str("delivery_id", d.ID.String()).
		Str("event_id", d.EventID.String()).
		Str("event_type", string(d.EventType)).
		Logger()

	status, err := s.send(ctx, d)
	now := s.now().UTC()
	d.Attempt++
	d.UpdatedAt = now
	if status != 0 {
		d.HTTPStatus = &status
	}

	switch {
	case err == nil:
		d.Status = domain.WebhookStatusDelivered
		d.NextRetryAt = nil
		d.LastError = nil
		s.metrics.WebhookDelivery("delivered")
		log.Info().Int("attempt", d.Attempt).Int("status", status).Msg("webhook: delivered successfully")
	case d.Attempt >= s.cfg.MaxAttempts:
		msg := err.Error()
		d.Status = domain.WebhookStatusUndeliverable
		d.NextRetryAt = nil
		d.LastError = &msg
		s.metrics.WebhookDelivery("undeliverable")
		log.Error().Err(err).Int("attempt", d.Attempt).Msg("webhook: all retry attempts exhausted")
	default:
		msg := err.Error()
		next := now.Add(domain.WebhookBackoff(d.Attempt, s.cfg.InitialBackoff, s.cfg.MaxBackoff))
		d.NextRetryAt = &next
		d.LastError = &msg
		s.metrics.WebhookDelivery("retry")
		log.Warn().Err(err).Int("attempt", d.Attempt).Time("next_retry_at", next).Msg("webhook: delivery failed, retrying")
	}

	if err := s.webhookRepo.UpdateDelivery(ctx, d); err != nil {
		log.Error().Err(err).Msg("webhook: failed to record delivery outcome")
	}
}

// send signs and posts the payload. It returns the HTTP status when one was received.
func (s *WebhookDispatcherImpl) send(ctx context.Context, d *domain.WebhookDelivery) (int, error) {
	merchant, err := s.merchantRepo.GetByID(ctx, d.MerchantID)
	if err != nil {
		return 0, fmt.Errorf("load merchant: %w", err)
	}
	if merchant == nil {
		return 0, fmt.Errorf("merchant %s not found", d.MerchantID)
	}
	secret, err := s.encSvc.Decrypt(merchant.WebhookSecretEnc)
	if err != nil {
		return 0, fmt.Errorf("decrypt webhook secret: %w", err)
	}

	body := []byte(d.Payload)
	ts := s.now().Unix()
	signature := s.sigSvc.Sign(secret, s.sigSvc.BuildWebhookPayload(ts, body))

	reqCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, d.URL, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderWebhookSignature, signature)
	req.Header.Set(HeaderWebhookTimestamp, strconv.FormatInt(ts, 10))
	req.Header.Set(HeaderWebhookEventID, d.EventID.String())
	req.Header.Set(HeaderWebhookEventType, string(d.EventType))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp.StatusCode, nil
	}
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	return resp.StatusCode, fmt.Errorf("non-2xx response %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
}
