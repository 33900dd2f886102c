package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"homestay/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxProfileIDKey = "profile_id"

// AuthMiddleware verifies bearer tokens minted by the external auth
// provider and exposes the profile identity to the handlers. Token
// issuance, profiles and sessions-with-the-provider are not this
// service's concern.
type AuthMiddleware struct {
	jwtService *jwt.Service
}

func NewAuthMiddleware(jwtService *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxProfileIDKey, claims.ProfileID)
		c.Next()
	}
}

func GetProfileID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(ctxProfileIDKey)
	if !exists {
		return uuid.Nil, false
	}
	profileID, ok := value.(uuid.UUID)
	return profileID, ok
}
