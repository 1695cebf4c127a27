package ports

import (
	"context"

	"github.com/userhub/accounts-api/internal/core/domain"
)

// AuditSink accepts authentication events for asynchronous persistence.
type AuditSink interface {
	Enqueue(event domain.AuthEvent)
}

// AuditRepository persists authentication audit events.
type AuditRepository interface {
	Record(ctx context.Context, event domain.AuthEvent) error
}
