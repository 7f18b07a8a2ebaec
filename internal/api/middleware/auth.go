package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mistgo/inventory-api/internal/api/metrics"
	"github.com/mistgo/inventory-api/internal/core/token"
)

// Context keys under which the verified identity is exposed to handlers.
// The values live on the per-request echo.Context, never in shared state.
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
)

// TokenVerifier is the part of the token service the middleware needs.
type TokenVerifier interface {
	Verify(tokenString string) (token.Identity, error)
}

// Auth verifies the bearer token and injects the caller's identity into the
// request context. Missing header, malformed header, and failed verification
// all produce the same 401 so the response does not reveal which check failed.
func Auth(tokens TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return reject(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return reject(c)
			}

			id, err := tokens.Verify(parts[1])
			if err != nil {
				return reject(c)
			}

			c.Set(ContextUserID, id.UserID)
			c.Set(ContextUsername, id.Username)

			return next(c)
		}
	}
}

func reject(c echo.Context) error {
	metrics.AuthRejectionsTotal.Inc()
	return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
}
