package v1

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/freshcart/freshcart/internal/session"
)

// APIResponse represents the standard API response format
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Errors  interface{} `json:"errors"`
	Meta    MetaData    `json:"meta"`
}

// MetaData represents metadata for API responses
type MetaData struct {
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

func meta(c *gin.Context) MetaData {
	return MetaData{
		RequestID: c.GetHeader("X-Request-ID"),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta(c),
	})
}

func respondError(c *gin.Context, status int, message string, errs interface{}) {
	c.JSON(status, APIResponse{
		Success: false,
		Message: message,
		Errors:  errs,
		Meta:    meta(c),
	})
}

func validationError(c *gin.Context, err error) {
	respondError(c, 400, "Invalid request parameters", gin.H{
		"validation_error": err.Error(),
	})
}

// controller pulls the session's cart controller placed on the context by
// the auth middleware.
func controller(c *gin.Context) *session.Controller {
	v, _ := c.Get("controller")
	ctrl, _ := v.(*session.Controller)
	return ctrl
}
