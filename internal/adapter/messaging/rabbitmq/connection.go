package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// Channel is the subset of *amqp.Channel the publisher and observers use.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error
	Qos(prefetchCount, prefetchSize int, global bool) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// ChannelSource opens broker channels.
type ChannelSource interface {
	Channel() (Channel, error)
}

const dialTimeout = 10 * time.Second

// Connection dials the broker on first use and again after the link drops.
type Connection struct {
	url string
	log zerolog.Logger

	mu   sync.Mutex
	conn *amqp.Connection
}

// NewConnection validates amqpURL. Dialing is deferred to the first Channel call.
func NewConnection(amqpURL string, log zerolog.Logger) (*Connection, error) {
	clean, err := sanitizeURL(amqpURL)
	if err != nil {
		return nil, err
	}
	return &Connection{url: clean, log: log.With().Str("component", "rabbitmq").Logger()}, nil
}

// Channel opens a channel, redialing when the connection is closed.
func (c *Connection) Channel() (Channel, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil || c.conn.IsClosed() {
		conn, err := amqp.DialConfig(c.url, amqp.Config{Dial: amqp.DefaultDial(dialTimeout)})
		if err != nil {
			return nil, fmt.Errorf("dial rabbitmq: %w", err)
		}
		c.conn = conn
		c.log.Info().Msg("RabbitMQ connection established")
	}

	ch, err := c.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}
	return ch, nil
}

// Ping reports whether the broker is reachable.
func (c *Connection) Ping(_ context.Context) error {
	ch, err := c.Channel()
	if err != nil {
		return err
	}
	return ch.Close()
}

// Name returns the dependency name.
func (c *Connection) Name() string {
	return "rabbitmq"
}

// Close shuts the connection down.
func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	if errors.Is(err, amqp.ErrClosed) {
		return nil
	}
	return err
}

func sanitizeURL(raw string) (string, error) {
	clean := strings.Trim(strings.TrimSpace(raw), "\"'")
	u, err := url.Parse(clean)
	if err != nil {
		return "", fmt.Errorf("parse amqp url: %w", err)
	}
	if u.Scheme != "amqp" && u.Scheme != "amqps" {
		return "", fmt.Errorf("invalid AMQP scheme: %q", u.Scheme)
	}
	return clean, nil
}
