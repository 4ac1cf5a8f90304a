package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshcart/freshcart/internal/service"
	"github.com/freshcart/freshcart/internal/session"
)

type AuthHandler struct {
	authService    *service.AuthService
	catalogService *service.CatalogService
	orderService   *service.OrderService
	registry       *session.Registry
}

func NewAuthHandler(authService *service.AuthService, catalogService *service.CatalogService, orderService *service.OrderService, registry *session.Registry) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		catalogService: catalogService,
		orderService:   orderService,
		registry:       registry,
	}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// newController builds the controller that will own this session's state.
func (h *AuthHandler) newController(c *gin.Context) *session.Controller {
	return session.NewController(c.Request.Context(), h.authService, h.catalogService, h.orderService, session.NewMemoryMarker())
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	ctrl := h.newController(c)
	if err := ctrl.Register(c.Request.Context(), req.Email, req.Password); err != nil {
		respondError(c, http.StatusBadRequest, "Registration failed", gin.H{
			"registration_error": err.Error(),
		})
		return
	}

	user := ctrl.User()
	sess, err := h.authService.CreateSession(*user)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create session", gin.H{
			"session_error": err.Error(),
		})
		return
	}
	h.registry.Put(sess.ID, ctrl)

	respond(c, http.StatusCreated, "User registered successfully", gin.H{
		"user":       user,
		"session_id": sess.ID,
		"expires_at": sess.ExpiresAt,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	ctrl := h.newController(c)
	if err := ctrl.Login(c.Request.Context(), req.Email, req.Password); err != nil {
		respondError(c, http.StatusUnauthorized, "Login failed", gin.H{
			"login_error": err.Error(),
		})
		return
	}

	user := ctrl.User()
	sess, err := h.authService.CreateSession(*user)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create session", gin.H{
			"session_error": err.Error(),
		})
		return
	}
	h.registry.Put(sess.ID, ctrl)

	respond(c, http.StatusOK, "Login successful", gin.H{
		"user":       user,
		"session_id": sess.ID,
		"expires_at": sess.ExpiresAt,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := c.GetHeader("X-Session-ID")

	if ctrl := controller(c); ctrl != nil {
		ctrl.Logout()
	}
	h.authService.DeleteSession(sessionID)
	h.registry.Delete(sessionID)

	respond(c, http.StatusOK, "Logged out successfully", nil)
}
