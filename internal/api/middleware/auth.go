package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/userhub/accounts-api/internal/api/metrics"
	"github.com/userhub/accounts-api/internal/core/auth"
	"github.com/userhub/accounts-api/internal/core/domain"
	"github.com/userhub/accounts-api/internal/core/ports"
)

// Context keys set by the Auth middleware.
const (
	ContextUserKey   = "auth_user"
	ContextClaimsKey = "auth_claims"
)

// Auth validates the bearer token, resolves it to a stored account and
// attaches both the account and the token claims to the request context.
// Any failure — absent or malformed header, bad signature, expiry, revoked
// jti, or a token referring to a since-deleted account — fails closed with
// 401 before the handler runs. denylist may be nil (revocation disabled).
func Auth(tokens *auth.TokenService, repo ports.UserRepository, denylist ports.TokenDenylist) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			if denylist != nil {
				revoked, err := denylist.IsRevoked(c.Request().Context(), claims.ID)
				if err != nil {
					return err
				}
				if revoked {
					metrics.TokenVerificationsTotal.WithLabelValues("revoked").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
			}

			user, err := repo.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.TokenVerificationsTotal.WithLabelValues("unknown_user").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
				return err
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set(ContextUserKey, user)
			c.Set(ContextClaimsKey, claims)

			return next(c)
		}
	}
}
