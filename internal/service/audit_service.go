package service

import (
	"context"

	"micropay-gateway/internal/core/domain"
	"micropay-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

type auditService struct {
	log zerolog.Logger
}

// NewAuditService creates an audit service that writes entries to log.
// Entries are not persisted.
func NewAuditService(log zerolog.Logger) ports.AuditService {
	return &auditService{log: log}
}

// Log records an audit entry asynchronously (fire-and-forget).
func (s *auditService) Log(_ context.Context, entry *domain.AuditLog) {
	if entry == nil {
		return
	}
	go func() {
		s.log.Info().
			Str("audit_id", entry.ID.String()).
			Str("action", string(entry.Action)).
			Str("resource_type", entry.ResourceType).
			Str("resource_id", entry.ResourceID).
			Str("ip", entry.IPAddress).
			RawJSON("details", detailsJSON(entry.Details)).
			Time("at", entry.CreatedAt).
			Msg("audit")
	}()
}

func detailsJSON(details string) []byte {
	if details == "" {
		return []byte("{}")
	}
	return []byte(details)
}
