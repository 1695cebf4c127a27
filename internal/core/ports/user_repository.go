package ports

import (
	"context"

	"github.com/userhub/accounts-api/internal/core/domain"
)

// UserRepository defines the persistence boundary for registered users.
type UserRepository interface {
	FindByName(ctx context.Context, name string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, id int64, fields domain.UserUpdate) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
