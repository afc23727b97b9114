package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const deliveryColumnList = `id, event_id, merchant_id, event_type, url, payload,
	http_status, attempt, status, next_retry_at, last_error, created_at, updated_at`

type webhookRepo struct {
	pool Pool
}

// NewWebhookRepository creates a PostgreSQL-backed WebhookRepository.
func NewWebhookRepository(pool Pool) ports.WebhookRepository {
	return &webhookRepo{pool: pool}
}

func (r *webhookRepo) CreateEvent(ctx context.Context, e *domain.WebhookEvent) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO webhook_events (id, merchant_id, event_type, resource_id, data, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		e.ID, e.MerchantID, string(e.Type), e.ResourceID, []byte(e.Data), e.CreatedAt,
	)
	if err != nil {
		return wrapWriteErr("insert webhook event", err)
	}
	return nil
}

func (r *webhookRepo) CreateDelivery(ctx context.Context, d *domain.WebhookDelivery) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO webhook_deliveries (`+deliveryColumnList+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		d.ID, d.EventID, d.MerchantID, string(d.EventType), d.URL, d.Payload,
		d.HTTPStatus, d.Attempt, string(d.Status), d.NextRetryAt, d.LastError,
		d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return wrapWriteErr("insert webhook delivery", err)
	}
	return nil
}

// UpdateDelivery records an attempt outcome. A delivery already marked
// DELIVERED is never rewritten.
func (r *webhookRepo) UpdateDelivery(ctx context.Context, d *domain.WebhookDelivery) error {
	d.UpdatedAt = time.Now().UTC()
	_, err := r.pool.Exec(ctx,
		`UPDATE webhook_deliveries
		 SET http_status=$1, attempt=$2, status=$3, next_retry_at=$4, last_error=$5, updated_at=$6
		 WHERE id=$7 AND status <> 'DELIVERED'`,
		d.HTTPStatus, d.Attempt, string(d.Status),
		d.NextRetryAt, d.LastError, d.UpdatedAt, d.ID,
	)
	if err != nil {
		return fmt.Errorf("update webhook delivery: %w", err)
	}
	return nil
}

func (r *webhookRepo) GetDelivery(ctx context.Context, id uuid.UUID) (*domain.WebhookDelivery, error) {
	d, err := scanDelivery(r.pool.QueryRow(ctx,
		`SELECT `+deliveryColumnList+` FROM webhook_deliveries WHERE id=$1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get webhook delivery: %w", err)
	}
	return d, nil
}

// ClaimDue leases pending deliveries whose retry time has come, oldest first.
// Claimed rows move to leaseUntil so no other worker picks them up while the
// attempt is in flight.
func (r *webhookRepo) ClaimDue(ctx context.Context, now, leaseUntil time.Time, limit int) ([]domain.WebhookDelivery, error) {
	rows, err := r.pool.Query(ctx,
		`UPDATE webhook_deliveries SET next_retry_at = $2
		 WHERE id IN (
			SELECT id FROM webhook_deliveries
			WHERE status = 'PENDING' AND next_retry_at <= $1
			ORDER BY next_retry_at ASC
			LIMIT $3
			FOR UPDATE SKIP LOCKED)
		 RETURNING `+deliveryColumnList, now, leaseUntil, limit)
	if err != nil {
		return nil, fmt.Errorf("claim due deliveries: %w", err)
	}
	return collectDeliveries(rows)
}

func (r *webhookRepo) ListByMerchant(ctx context.Context, merchantID uuid.UUID, status *domain.WebhookStatus, limit int) ([]domain.WebhookDelivery, error) {
	query := `SELECT ` + deliveryColumnList + ` FROM webhook_deliveries WHERE merchant_id=$1`
	args := []any{merchantID}
	if status != nil {
		query += ` AND status=$2 ORDER BY created_at DESC LIMIT $3`
		args = append(args, string(*status), limit)
	} else {
		query += ` ORDER BY created_at DESC LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list merchant deliveries: %w", err)
	}
	return collectDeliveries(rows)
}

func collectDeliveries(rows pgx.Rows) ([]domain.WebhookDelivery, error) {
	defer rows.Close()

	var list []domain.WebhookDelivery
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, fmt.Errorf("scan webhook delivery: %w", err)
		}
		list = append(list, *d)
	}
	return list, rows.Err()
}

func scanDelivery(row pgx.Row) (*domain.WebhookDelivery, error) {
	var d domain.WebhookDelivery
	var eventType, status string
	if err := row.Scan(
		&d.ID, &d.EventID, &d.MerchantID, &eventType, &d.URL, &d.Payload,
		&d.HTTPStatus, &d.Attempt, &status, &d.NextRetryAt, &d.LastError,
		&d.CreatedAt, &d.UpdatedAt,
	); err != nil {
		return nil, err
	}
	d.EventType = domain.WebhookEventType(eventType)
	d.Status = domain.WebhookStatus(status)
	return &d, nil
}
