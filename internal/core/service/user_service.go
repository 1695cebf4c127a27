package service

import (
	"context"
	"fmt"
	"time"

	"github.com/userhub/accounts-api/internal/core/auth"
	"github.com/userhub/accounts-api/internal/core/domain"
	"github.com/userhub/accounts-api/internal/core/ports"
)

// UserService implements account CRUD. Mutations are gated by the
// owner-or-admin policy; reads pass straight through to the repository.
type UserService struct {
	repo   ports.UserRepository
	hasher *auth.PasswordHasher
}

func NewUserService(repo ports.UserRepository, hasher *auth.PasswordHasher) *UserService {
	return &UserService{repo: repo, hasher: hasher}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Create registers a new account with the base permission level. The
// plaintext password is hashed before it reaches the repository.
func (s *UserService) Create(ctx context.Context, input ports.NewUser) (*domain.User, error) {
	required := []struct{ field, value string }{
		{"name", input.Name},
		{"password", input.Password},
		{"email", input.Email},
	}
	for _, r := range required {
		if r.value == "" {
			return nil, fmt.Errorf("%w: %s", domain.ErrMissingField, r.field)
		}
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return s.repo.Insert(ctx, &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		PermLevel:    domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// Update applies fields to the target account. Order of checks follows the
// API contract: target existence (404), then ownership (400), then the
// at-least-one-field validation (400). A supplied password is re-hashed.
func (s *UserService) Update(ctx context.Context, actor *domain.User, id int64, fields domain.UserUpdate) error {
	target, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if d := auth.CanUpdateUser(actor, target.Name); !d.Allowed {
		return domain.ErrNotOwner
	}
	if fields.Empty() {
		return domain.ErrNoFields
	}

	if fields.Password != "" {
		hash, err := s.hasher.Hash(fields.Password)
		if err != nil {
			return err
		}
		fields.Password = hash
	}

	rows, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Delete removes the target account. The admin check runs before the
// existence lookup, matching the API contract for this route.
func (s *UserService) Delete(ctx context.Context, actor *domain.User, id int64) error {
	if d := auth.CanDeleteUser(actor); !d.Allowed {
		return domain.ErrNotAdmin
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
