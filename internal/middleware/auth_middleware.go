package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"productpulse-backend-go/internal/core"
	"productpulse-backend-go/internal/models"
)

// ErrorResponse mirrors the one in internal/api to avoid an import cycle.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// AuthMiddleware provides bearer-token authentication and role gating.
type AuthMiddleware struct {
	tokens core.TokenService
	users  core.UserService
}

// NewAuthMiddleware creates an AuthMiddleware. The user service is used
// by the role gates to re-read the caller's stored role per request.
func NewAuthMiddleware(tokens core.TokenService, users core.UserService) *AuthMiddleware {
	if tokens == nil || users == nil {
		panic("AuthMiddleware requires token and user services")
	}
	return &AuthMiddleware{tokens: tokens, users: users}
}

// VerifyToken checks the Authorization header and puts the caller's
// email into the context under "userEmail".
func (m *AuthMiddleware) VerifyToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authorization header is required"})
			return
		}
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authorization header format must be 'Bearer {token}'"})
			return
		}
		claims, err := m.tokens.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid or expired authentication token"})
			return
		}
		c.Set("userEmail", claims.Email)
		c.Next()
	}
}

// RequireRole gates a route to callers whose stored role is one of the
// given roles. Must run after VerifyToken.
func (m *AuthMiddleware) RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("userEmail")
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
			return
		}
		user, err := m.users.GetByEmail(c.Request.Context(), email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
			return
		}
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
	}
}

// RequireModerator admits moderators and admins.
func (m *AuthMiddleware) RequireModerator() gin.HandlerFunc {
	return m.RequireRole(models.RoleModerator, models.RoleAdmin)
}

// RequireAdmin admits admins only.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return m.RequireRole(models.RoleAdmin)
}
