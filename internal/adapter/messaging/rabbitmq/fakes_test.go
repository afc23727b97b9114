package rabbitmq

import (
	"context"
	"errors"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

type fakeChannel struct {
	mu         sync.Mutex
	deliveries chan amqp.Delivery
	published  []amqp.Publishing
	keys       []string
	bindings   []string
	publishErr []error
	closed     bool
}

func newFakeChannel() *fakeChannel {
	return &fakeChannel{deliveries: make(chan amqp.Delivery, 8)}
}

func (f *fakeChannel) ExchangeDeclare(string, string, bool, bool, bool, bool, amqp.Table) error {
	return nil
}

func (f *fakeChannel) QueueDeclare(name string, _, _, _, _ bool, _ amqp.Table) (amqp.Queue, error) {
	return amqp.Queue{Name: name}, nil
}

func (f *fakeChannel) QueueBind(name, key, exchange string, _ bool, _ amqp.Table) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bindings = append(f.bindings, exchange+"/"+key+"->"+name)
	return nil
}

func (f *fakeChannel) Qos(int, int, bool) error { return nil }

func (f *fakeChannel) Consume(string, string, bool, bool, bool, bool, amqp.Table) (<-chan amqp.Delivery, error) {
	return f.deliveries, nil
}

func (f *fakeChannel) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.publishErr) > 0 {
		err := f.publishErr[0]
		f.publishErr = f.publishErr[1:]
		if err != nil {
			return err
		}
	}
	f.published = append(f.published, msg)
	f.keys = append(f.keys, key)
	return nil
}

func (f *fakeChannel) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// fakeSource hands out channels in order, then fails.
type fakeSource struct {
	mu       sync.Mutex
	channels []*fakeChannel
	opened   int
}

func (s *fakeSource) Channel() (Channel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.opened >= len(s.channels) {
		return nil, errors.New("connection refused")
	}
	ch := s.channels[s.opened]
	s.opened++
	return ch, nil
}

type ackResult struct {
	acked   bool
	nacked  bool
	requeue bool
}

type fakeAcknowledger struct {
	results chan ackResult
}

func newFakeAcknowledger() *fakeAcknowledger {
	return &fakeAcknowledger{results: make(chan ackResult, 8)}
}

func (a *fakeAcknowledger) Ack(uint64, bool) error {
	a.results <- ackResult{acked: true}
	return nil
}

func (a *fakeAcknowledger) Nack(_ uint64, _ bool, requeue bool) error {
	a.results <- ackResult{nacked: true, requeue: requeue}
	return nil
}

func (a *fakeAcknowledger) Reject(_ uint64, requeue bool) error {
	a.results <- ackResult{nacked: true, requeue: requeue}
	return nil
}
