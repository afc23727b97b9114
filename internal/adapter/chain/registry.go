package chain

import (
	"context"
	"fmt"
	"sync"

	"cryptopay-gateway/config"
	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

// Registry implements ports.ChainRegistry. Networks without an rpc_url are
// left out and report an error when asked for.
type Registry struct {
	mu      sync.RWMutex
	clients map[domain.Network]ports.ChainClient
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{clients: make(map[domain.Network]ports.ChainClient)}
}

// Connect dials every configured network.
func Connect(ctx context.Context, chains map[string]config.ChainConfig, log zerolog.Logger) (*Registry, error) {
	r := NewRegistry()
	for name, cfg := range chains {
		network := domain.Network(name)
		if !network.Valid() {
			return nil, fmt.Errorf("unknown network %q in chains config", name)
		}
		if cfg.RPCURL == "" {
			log.Warn().Str("network", name).Msg("no rpc_url configured, withdrawals disabled for network")
			continue
		}
		if network == domain.NetworkSolana {
			r.Register(NewSolanaRPC(cfg, log))
			continue
		}
		c, err := DialEVM(ctx, network, cfg, log)
		if err != nil {
			return nil, err
		}
		r.Register(c)
	}
	return r, nil
}

// Register adds or replaces the client for its network.
func (r *Registry) Register(c ports.ChainClient) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[c.Network()] = c
}

// Client returns the client for network.
func (r *Registry) Client(network domain.Network) (ports.ChainClient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.clients[network]
	if !ok {
		return nil, fmt.Errorf("no chain client for %s", network)
	}
	return c, nil
}
