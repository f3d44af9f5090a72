package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sightlinehq/sightline/internal/auth"
	"github.com/sightlinehq/sightline/internal/dto"
)

// Context keys set by AuthRequired for downstream handlers.
const (
	ContextTenantID = "tenant_id"
	ContextEmail    = "tenant_email"
)

// AuthRequired validates the Bearer token and stores the tenant identity
// in the request context.
func AuthRequired(issuer *auth.TokenIssuer, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error:   "unauthorized",
				Message: "missing or invalid authorization header",
			})
			return
		}

		claims, err := issuer.Validate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			log.Warn("Rejected invalid token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error:   "unauthorized",
				Message: "invalid or expired token",
			})
			return
		}

		c.Set(ContextTenantID, claims.TenantID)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}
