package ports

import (
	"context"
	"time"

	"github.com/userhub/accounts-api/internal/core/domain"
)

// AuthService implements the credential and token flows.
type AuthService interface {
	// Login verifies a name/password pair and returns a signed bearer token.
	Login(ctx context.Context, name, password string) (string, error)
	// Refresh issues a fresh token for an already-authenticated user.
	Refresh(ctx context.Context, user *domain.User) (string, error)
	// Logout revokes the token identified by jti for its remaining lifetime.
	Logout(ctx context.Context, user *domain.User, jti string, remaining time.Duration) error
}
