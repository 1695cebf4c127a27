package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

// APIKey gates the whole API behind a static shared secret, supplied by
// clients as the api_key query parameter. The comparison is constant-time.
func APIKey(key string) echo.MiddlewareFunc {
	expected := []byte(key)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			supplied := []byte(c.QueryParam("api_key"))
			if subtle.ConstantTimeCompare(supplied, expected) != 1 {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid API key provided")
			}
			return next(c)
		}
	}
}
