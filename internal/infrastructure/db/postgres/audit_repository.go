package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/userhub/accounts-api/internal/core/domain"
)

// AuditRepository appends authentication events to the auth_events table.
type AuditRepository struct {
	pool *pgxpool.Pool
}

func NewAuditRepository(pool *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{pool: pool}
}

func (r *AuditRepository) Record(ctx context.Context, event domain.AuthEvent) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO auth_events (user_name, action, success, occurred_at)
		 VALUES ($1, $2, $3, $4)`,
		event.UserName, event.Action, event.Success, event.OccurredAt)
	if err != nil {
		return fmt.Errorf("record auth event: %w", err)
	}
	return nil
}
