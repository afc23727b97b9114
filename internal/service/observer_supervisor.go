package service

import (
	"context"
	"sync"
	"time"

	"cryptopay-gateway/config"
	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

const (
	defaultObserverRetryInitial = time.Second
	defaultObserverRetryMax     = 30 * time.Second
	defaultObserverCallback     = 10 * time.Second
)

// ObserverSupervisor keeps one chain observer running per network and
// restarts it with exponential backoff when its upstream connection drops.
type ObserverSupervisor struct {
	observers []ports.ChainObserver
	sink      ports.ChainEventSink
	cfg       config.ObserverConfig
	log       zerolog.Logger
	wait      func(ctx context.Context, d time.Duration) bool
}

// NewObserverSupervisor creates a supervisor feeding every observer into sink.
func NewObserverSupervisor(observers []ports.ChainObserver, sink ports.ChainEventSink, cfg config.ObserverConfig, log zerolog.Logger) *ObserverSupervisor {
	if cfg.RetryInitial <= 0 {
		cfg.RetryInitial = defaultObserverRetryInitial
	}
	if cfg.RetryMax < cfg.RetryInitial {
		cfg.RetryMax = max(defaultObserverRetryMax, cfg.RetryInitial)
	}
	if cfg.CallbackTimeout <= 0 {
		cfg.CallbackTimeout = defaultObserverCallback
	}
	return &ObserverSupervisor{
		observers: observers,
		sink:      sink,
		cfg:       cfg,
		log:       log.With().Str("component", "observer_supervisor").Logger(),
		wait:      sleepCtx,
	}
}

// Run blocks until ctx is cancelled and every observer has returned.
func (s *ObserverSupervisor) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, obs := range s.observers {
		wg.Go(func() {
			s.supervise(ctx, obs)
		})
	}
	wg.Wait()
}

func (s *ObserverSupervisor) supervise(ctx context.Context, obs ports.ChainObserver) {
	logger := s.log.With().Str("network", string(obs.Network())).Logger()
	sink := &boundedSink{next: s.sink, timeout: s.cfg.CallbackTimeout}
	backoff := s.cfg.RetryInitial

	for {
		started := time.Now()
		err := obs.Run(ctx, sink)
		if ctx.Err() != nil {
			logger.Info().Msg("observer stopped")
			return
		}
		if err == nil {
			logger.Warn().Msg("observer returned without error, not restarting")
			return
		}
		if !apperror.IsRetryable(err) {
			logger.Error().Err(err).Msg("observer failed permanently")
			return
		}

		// A run that outlived the backoff cap was healthy; start over.
		if time.Since(started) > s.cfg.RetryMax {
			backoff = s.cfg.RetryInitial
		}
		logger.Warn().Err(err).Dur("retry_in", backoff).Msg("observer disconnected")
		if !s.wait(ctx, backoff) {
			return
		}
		backoff = min(backoff*2, s.cfg.RetryMax)
	}
}

// boundedSink caps how long a single event callback may run.
type boundedSink struct {
	next    ports.ChainEventSink
	timeout time.Duration
}

func (b *boundedSink) OnChainEvent(ctx context.Context, event domain.ChainEvent) error {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()
	return b.next.OnChainEvent(ctx, event)
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
