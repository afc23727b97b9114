package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"cryptopay-gateway/internal/core/domain"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// Publisher implements ports.EventPublisher on a durable topic exchange.
// Routing keys are the event types, e.g. "payment.confirmed".
type Publisher struct {
	source   ChannelSource
	exchange string
	log      zerolog.Logger

	mu sync.Mutex
	ch Channel
}

// NewPublisher creates a publisher for exchange.
func NewPublisher(source ChannelSource, exchange string, log zerolog.Logger) *Publisher {
	return &Publisher{
		source:   source,
		exchange: exchange,
		log:      log.With().Str("component", "event_publisher").Logger(),
	}
}

// Publish sends event to the exchange. A failed publish reopens the channel
// and retries once.
func (p *Publisher) Publish(ctx context.Context, event *domain.WebhookEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID.String(),
		Timestamp:    time.Now().UTC(),
		Type:         string(event.Type),
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.publish(ctx, string(event.Type), msg)
	if err == nil {
		return nil
	}
	p.log.Warn().Err(err).Str("event_id", event.ID.String()).Msg("publish failed; reopening channel")
	p.reset()
	return p.publish(ctx, string(event.Type), msg)
}

func (p *Publisher) publish(ctx context.Context, key string, msg amqp.Publishing) error {
	if p.ch == nil {
		ch, err := p.source.Channel()
		if err != nil {
			return err
		}
		if err := ch.ExchangeDeclare(p.exchange, "topic", true, false, false, false, nil); err != nil {
			ch.Close() //nolint:errcheck
			return fmt.Errorf("declare exchange %s: %w", p.exchange, err)
		}
		p.ch = ch
	}
	return p.ch.PublishWithContext(ctx, p.exchange, key, false, false, msg)
}

func (p *Publisher) reset() {
	if p.ch != nil {
		p.ch.Close() //nolint:errcheck
		p.ch = nil
	}
}

// Close releases the publishing channel.
func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
}
