package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userhub/accounts-api/internal/api/middleware"
	"github.com/userhub/accounts-api/internal/core/auth"
	"github.com/userhub/accounts-api/internal/core/domain"
)

// currentUser extracts the identity attached by the Auth middleware. Presence
// proves the gate ran; its absence on a protected route is a wiring bug
// surfaced as 401 rather than a panic.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.ContextUserKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}

// currentClaims extracts the verified token claims attached by the Auth
// middleware.
func currentClaims(c echo.Context) (*auth.Claims, error) {
	claims, ok := c.Get(middleware.ContextClaimsKey).(*auth.Claims)
	if !ok || claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return claims, nil
}
