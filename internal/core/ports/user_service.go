package ports

import (
	"context"

	"github.com/userhub/accounts-api/internal/core/domain"
)

// NewUser carries the fields required to create an account.
type NewUser struct {
	Name     string
	Password string
	Email    string
}

// UserService implements account CRUD with owner-or-admin gating on mutations.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, input NewUser) (*domain.User, error)
	// Update applies fields to the account identified by id on behalf of actor.
	Update(ctx context.Context, actor *domain.User, id int64, fields domain.UserUpdate) error
	// Delete removes the account identified by id on behalf of actor.
	Delete(ctx context.Context, actor *domain.User, id int64) error
}
