package service

import (
	"context"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService creates a new audit service.
// If repo is nil, audit entries are only written to the logger.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log.With().Str("component", "audit").Logger()}
}

// Log records an audit entry asynchronously (fire-and-forget). The entry
// outlives the caller's request context.
func (s *auditService) Log(ctx context.Context, entry *domain.AuditLog) {
	if entry.Actor == "" {
		entry.Actor = domain.ActorSystem
	}
	ctx = context.WithoutCancel(ctx)
	go func() {
		ev := s.log.Info().
			Str("actor", entry.Actor).
			Str("action", string(entry.Action)).
			Str("resource_type", entry.ResourceType).
			Str("resource_id", entry.ResourceID)
		if entry.MerchantID != nil {
			ev = ev.Str("merchant_id", entry.MerchantID.String())
		}
		if entry.IPAddress != "" {
			ev = ev.Str("ip", entry.IPAddress)
		}
		ev.Msg("audit")

		if s.repo != nil {
			if err := s.repo.Create(ctx, entry); err != nil {
				s.log.Warn().Err(err).Str("action", string(entry.Action)).Msg("failed to persist audit log")
			}
		}
	}()
}
