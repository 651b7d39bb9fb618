package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"go-payment-admin/internal/commons/response"
	"go-payment-admin/pkg/token"
)

// TokenRevoker reports whether a raw token has been revoked by logout.
type TokenRevoker interface {
	IsRevoked(ctx context.Context, rawToken string) bool
}

type AuthMiddleware struct {
	logger     *logrus.Logger
	jwtManager *token.TokenManager
	revoker    TokenRevoker
}

func NewAuthMiddleware(logger *logrus.Logger, jwtManager *token.TokenManager, revoker TokenRevoker) *AuthMiddleware {
	return &AuthMiddleware{
		logger:     logger,
		jwtManager: jwtManager,
		revoker:    revoker,
	}
}

func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			resp := response.UnauthorizedErrorWithAdditionalInfo(nil, "Authorization header is required")
			c.AbortWithStatusJSON(resp.StatusCode, resp)
			return
		}

		bearerToken := strings.Split(authHeader, "Bearer ")

		if len(bearerToken) != 2 {
			resp := response.UnauthorizedErrorWithAdditionalInfo(nil, "Authorization header must be a bearer token")
			c.AbortWithStatusJSON(resp.StatusCode, resp)
			return
		}
		rawToken := bearerToken[1]

		payload, err := m.jwtManager.ValidateToken(rawToken)
		if err != nil {
			resp := response.UnauthorizedErrorWithAdditionalInfo(err.Error())
			c.AbortWithStatusJSON(resp.StatusCode, resp)
			return
		}

		if m.revoker != nil && m.revoker.IsRevoked(c.Request.Context(), rawToken) {
			resp := response.UnauthorizedErrorWithAdditionalInfo(nil, "Token has been revoked")
			c.AbortWithStatusJSON(resp.StatusCode, resp)
			return
		}

		userID, err := uuid.Parse(payload.AuthId)
		if err != nil {
			resp := response.UnauthorizedErrorWithAdditionalInfo(nil, "Invalid user ID in token")
			c.AbortWithStatusJSON(resp.StatusCode, resp)
			return
		}

		c.Set("user_id", userID)
		c.Set("role", payload.Role)
		c.Set("raw_token", rawToken)
		c.Next()
	}
}

// RequireAdmin gates mutation endpoints to users whose token carries the
// admin role.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role != "admin" {
			resp := response.ForbiddenError("admin role required")
			c.AbortWithStatusJSON(resp.StatusCode, resp)
			return
		}
		c.Next()
	}
}
