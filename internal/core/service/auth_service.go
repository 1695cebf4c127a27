package service

import (
	"context"
	"errors"
	"time"

	"github.com/userhub/accounts-api/internal/core/auth"
	"github.com/userhub/accounts-api/internal/core/domain"
	"github.com/userhub/accounts-api/internal/core/ports"
)

// AuthService implements login, refresh and logout.
type AuthService struct {
	repo     ports.UserRepository
	hasher   *auth.PasswordHasher
	tokens   *auth.TokenService
	denylist ports.TokenDenylist
	audit    ports.AuditSink
}

// NewAuthService wires the credential flows. denylist and audit may be nil;
// logout is then a no-op and no audit trail is recorded.
func NewAuthService(repo ports.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenService, denylist ports.TokenDenylist, audit ports.AuditSink) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, denylist: denylist, audit: audit}
}

// Login verifies the credential pair and issues a bearer token with
// subject = name and a user_id claim. Failure messages distinguish an unknown
// name from a wrong password, matching the API's documented contract.
func (s *AuthService) Login(ctx context.Context, name, password string) (string, error) {
	if name == "" || password == "" {
		return "", domain.ErrMissingField
	}

	user, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.record(name, domain.AuditLogin, false)
			return "", domain.ErrIncorrectName
		}
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.record(name, domain.AuditLogin, false)
		return "", domain.ErrIncorrectPassword
	}

	token, err := s.tokens.Issue(user.Name, user.ID)
	if err != nil {
		return "", err
	}

	s.record(name, domain.AuditLogin, true)
	return token, nil
}

// Refresh issues a fresh token for an already-authenticated user. No password
// re-verification: the auth gate has already proven the identity.
func (s *AuthService) Refresh(ctx context.Context, user *domain.User) (string, error) {
	token, err := s.tokens.Issue(user.Name, user.ID)
	if err != nil {
		return "", err
	}
	s.record(user.Name, domain.AuditRefresh, true)
	return token, nil
}

// Logout places the token's jti on the denylist until the token would have
// expired. Without a denylist configured, tokens stay valid until expiry and
// logout is a client-side affair.
func (s *AuthService) Logout(ctx context.Context, user *domain.User, jti string, remaining time.Duration) error {
	if s.denylist == nil || remaining <= 0 {
		return nil
	}
	if err := s.denylist.Revoke(ctx, jti, remaining); err != nil {
		return err
	}
	s.record(user.Name, domain.AuditLogout, true)
	return nil
}

func (s *AuthService) record(name, action string, success bool) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(domain.AuthEvent{
		UserName:   name,
		Action:     action,
		Success:    success,
		OccurredAt: time.Now().UTC(),
	})
}
