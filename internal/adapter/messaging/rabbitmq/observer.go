package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/apperror"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

const observerPrefetch = 32

// ChainObserver consumes transfer observations for one network from the
// chain events exchange. Queue chain_events.<network> is bound to
// chain.<network>.tx.
type ChainObserver struct {
	source      ChannelSource
	network     domain.Network
	exchange    string
	queuePrefix string
	log         zerolog.Logger
}

// NewChainObserver creates an observer for network.
func NewChainObserver(source ChannelSource, network domain.Network, exchange, queuePrefix string, log zerolog.Logger) *ChainObserver {
	return &ChainObserver{
		source:      source,
		network:     network,
		exchange:    exchange,
		queuePrefix: queuePrefix,
		log: log.With().
			Str("component", "chain_observer").
			Str("network", string(network)).
			Logger(),
	}
}

// Network returns the observed network.
func (o *ChainObserver) Network() domain.Network {
	return o.network
}

// RoutingKey is the key producers publish this network's observations under.
func (o *ChainObserver) RoutingKey() string {
	return "chain." + string(o.network) + ".tx"
}

// QueueName is the durable queue the observer consumes.
func (o *ChainObserver) QueueName() string {
	return o.queuePrefix + "." + string(o.network)
}

// Run consumes until ctx ends. Losing the broker returns an upstream chain
// error so the supervisor reconnects with backoff.
func (o *ChainObserver) Run(ctx context.Context, sink ports.ChainEventSink) error {
	ch, err := o.source.Channel()
	if err != nil {
		return apperror.ErrUpstreamChain(err)
	}
	defer ch.Close() //nolint:errcheck

	deliveries, err := o.subscribe(ch)
	if err != nil {
		return apperror.ErrUpstreamChain(err)
	}
	o.log.Info().Str("queue", o.QueueName()).Msg("chain observer consuming")

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return apperror.ErrUpstreamChain(errors.New("delivery channel closed"))
			}
			o.handle(ctx, sink, d)
		}
	}
}

func (o *ChainObserver) subscribe(ch Channel) (<-chan amqp.Delivery, error) {
	if err := ch.ExchangeDeclare(o.exchange, "topic", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	q, err := ch.QueueDeclare(o.QueueName(), true, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("declare queue: %w", err)
	}
	if err := ch.QueueBind(q.Name, o.RoutingKey(), o.exchange, false, nil); err != nil {
		return nil, fmt.Errorf("bind queue: %w", err)
	}
	if err := ch.Qos(observerPrefetch, 0, false); err != nil {
		return nil, fmt.Errorf("set qos: %w", err)
	}
	return ch.Consume(q.Name, "", false, false, false, false, nil)
}

// handle acks processed and malformed messages and requeues transient failures.
func (o *ChainObserver) handle(ctx context.Context, sink ports.ChainEventSink, d amqp.Delivery) {
	event, err := o.decode(d.Body)
	if err != nil {
		o.log.Warn().Err(err).Str("message_id", d.MessageId).Msg("dropping malformed chain event")
		d.Ack(false) //nolint:errcheck
		return
	}

	if err := sink.OnChainEvent(ctx, event); err != nil {
		if requeue(err) {
			o.log.Warn().Err(err).Str("tx_hash", event.TxHash).Msg("chain event failed; requeueing")
			d.Nack(false, true) //nolint:errcheck
			return
		}
		o.log.Warn().Err(err).Str("tx_hash", event.TxHash).Msg("chain event rejected")
	}
	d.Ack(false) //nolint:errcheck
}

func (o *ChainObserver) decode(body []byte) (domain.ChainEvent, error) {
	var event domain.ChainEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return event, fmt.Errorf("decode: %w", err)
	}
	if event.Network == "" {
		event.Network = o.network
	}
	if event.Network != o.network {
		return event, fmt.Errorf("network %q on %s queue", event.Network, o.network)
	}
	if strings.TrimSpace(event.TxHash) == "" || event.Address == "" {
		return event, errors.New("missing tx_hash or address")
	}
	if !event.CryptoType.Valid() || event.CryptoType.Network() != o.network {
		return event, fmt.Errorf("crypto type %q not on %s", event.CryptoType, o.network)
	}
	if event.Amount.IsNegative() || event.Confirmations < 0 {
		return event, errors.New("negative amount or confirmations")
	}
	return event, nil
}

// requeue reports whether a sink error is worth another delivery. Client
// errors will fail the same way again.
func requeue(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || apperror.IsRetryable(err) {
		return true
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus >= http.StatusInternalServerError
	}
	return true
}
