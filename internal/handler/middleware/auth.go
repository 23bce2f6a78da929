package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"hotel-booking-engine/internal/domain/staff"
	"hotel-booking-engine/internal/handler/httperr"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AccessTokenCookieName is set by the front-office web client.
const AccessTokenCookieName = "access_token"

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxActorKey = "actor"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.CodeUnauthorized,
				errs.ErrUnauthorized, "Access token required", nil)
			return
		}

		actor, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.CodeUnauthorized,
				err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxActorKey, actor)
		c.Next()
	}
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole staff.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errs.CodeInternal,
				errs.New("actor missing from context"), "Internal server error", nil)
			return
		}

		if !actor.Role.AtLeast(minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, errs.CodeUnauthorized,
				errs.Newf("role %s below %s", actor.Role, minRole), "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func GetActor(c *gin.Context) (staff.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return staff.Actor{}, false
	}

	actor, ok := v.(staff.Actor)
	return actor, ok
}
