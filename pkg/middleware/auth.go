package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshcart/freshcart/internal/model"
	"github.com/freshcart/freshcart/internal/service"
	"github.com/freshcart/freshcart/internal/session"
)

type AuthMiddleware struct {
	authService *service.AuthService
	registry    *session.Registry
}

func NewAuthMiddleware(authService *service.AuthService, registry *session.Registry) *AuthMiddleware {
	return &AuthMiddleware{authService: authService, registry: registry}
}

// SessionAuth resolves the X-Session-ID header to a live session and its
// controller, and puts both on the request context.
func (m *AuthMiddleware) SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader("X-Session-ID")
		if sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "No session ID provided",
			})
			return
		}

		sess, err := m.authService.GetSession(c.Request.Context(), sessionID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired session",
			})
			return
		}

		var user model.User
		if err := json.Unmarshal(sess.Data, &user); err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to parse session data",
			})
			return
		}

		ctrl, ok := m.registry.Get(sessionID)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired session",
			})
			return
		}

		c.Set("session", sess)
		c.Set("user", user)
		c.Set("user_id", user.ID)
		c.Set("user_role", string(user.Role))
		c.Set("controller", ctrl)

		c.Next()
	}
}

// RequireRole gates a route on the session user's role.
func (m *AuthMiddleware) RequireRole(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("user_role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "No role information found",
			})
			return
		}

		roleStr, ok := userRole.(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "Invalid role format",
			})
			return
		}

		currentRole := model.Role(roleStr)
		allowed := false
		for _, role := range roles {
			if currentRole == role {
				allowed = true
				break
			}
		}

		if !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			return
		}

		c.Next()
	}
}
