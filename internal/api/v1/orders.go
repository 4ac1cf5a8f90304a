package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct{}

func NewOrderHandler() *OrderHandler {
	return &OrderHandler{}
}

// Create checks out the session's cart. An empty cart is not an error; the
// checkout is simply skipped and the history returned unchanged.
func (h *OrderHandler) Create(c *gin.Context) {
	ctrl := controller(c)
	if err := ctrl.PlaceOrder(c.Request.Context()); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to place order", gin.H{
			"order_error": err.Error(),
		})
		return
	}
	respond(c, http.StatusOK, "Order placed successfully", gin.H{
		"orders": ctrl.Orders(),
		"cart":   ctrl.Cart(),
	})
}

// History returns the session user's orders, newest first.
func (h *OrderHandler) History(c *gin.Context) {
	respond(c, http.StatusOK, "Orders retrieved successfully", controller(c).Orders())
}
