package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses
	"strings"  // string utilities for prefix checking and trimming

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

	"github.com/openlot/account-service/internal/repository"
	"github.com/openlot/account-service/internal/utils"
)

// Context keys populated by JWTAuth for downstream middleware and handlers.
const (
	CtxUserID   = "user_id"   // uint64 subject of the verified token
	CtxRole     = "role"      // string role claim
	CtxTokenID  = "token_id"  // string jti claim, needed by logout
	CtxTokenExp = "token_exp" // time.Time expiry, bounds the denylist entry
)

// JWTAuth returns an Echo middleware that walks a request through the
// authentication states: a missing bearer is rejected with 401 before any
// parsing, a bad or expired token is rejected with 401 after verification,
// and a revoked token id is rejected even when the signature still checks
// out.  On success the decoded claims are stored in the context for the
// role check and the handler.  The secret is passed in at registration
// time; nothing here reads process-global state.
func JWTAuth(secret string, denylist *repository.TokenDenylist) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			claims, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			if denylist.IsRevoked(c.Request().Context(), claims.TokenID) {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxRole, claims.Role)
			c.Set(CtxTokenID, claims.TokenID)
			c.Set(CtxTokenExp, claims.ExpiresAt)
			return next(c)
		}
	}
}
