package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/userhub/accounts-api/internal/api/metrics"
	"github.com/userhub/accounts-api/internal/core/domain"
	"github.com/userhub/accounts-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	AuthToken string `json:"authToken"`
}

// Login verifies a name/password pair and returns a signed bearer token.
//
// @Summary      Log in with name and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      201   {object}  tokenResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/users/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.authService.Login(c.Request().Context(), req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrIncorrectName):
			metrics.LoginsTotal.WithLabelValues("bad_name").Inc()
		case errors.Is(err, domain.ErrIncorrectPassword):
			metrics.LoginsTotal.WithLabelValues("bad_password").Inc()
		default:
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.TokensIssuedTotal.WithLabelValues("login").Inc()
	return c.JSON(http.StatusCreated, tokenResponse{AuthToken: token})
}

// Refresh issues a fresh token for the authenticated caller.
//
// @Summary      Refresh the bearer token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      201   {object}  tokenResponse
// @Failure      401   {object}  map[string]string
// @Router       /api/users/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	token, err := h.authService.Refresh(c.Request().Context(), user)
	if err != nil {
		return err
	}

	metrics.TokensIssuedTotal.WithLabelValues("refresh").Inc()
	return c.JSON(http.StatusCreated, tokenResponse{AuthToken: token})
}

// Logout revokes the presented token for its remaining lifetime.
//
// @Summary      Revoke the presented bearer token
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401   {object}  map[string]string
// @Router       /api/users/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if err := h.authService.Logout(c.Request().Context(), user, claims.ID, remaining); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
