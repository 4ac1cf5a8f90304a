package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type CartHandler struct{}

func NewCartHandler() *CartHandler {
	return &CartHandler{}
}

type AddToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

type UpdateQuantityRequest struct {
	// Quantity may legitimately be zero, which removes the entry, so there
	// is no required binding on it.
	Quantity int `json:"quantity"`
}

func (h *CartHandler) Get(c *gin.Context) {
	respond(c, http.StatusOK, "Cart retrieved successfully", controller(c).Cart())
}

// Add puts one unit of a catalog product into the cart. The snapshot comes
// from the session's cached catalog.
func (h *CartHandler) Add(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	ctrl := controller(c)
	product, ok := ctrl.Product(req.ProductID)
	if !ok {
		respondError(c, http.StatusNotFound, "Product not found", gin.H{
			"cart_error": "No such product in the catalog",
		})
		return
	}
	ctrl.AddToCart(product)
	respond(c, http.StatusOK, "Item added to cart", ctrl.Cart())
}

func (h *CartHandler) Update(c *gin.Context) {
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	ctrl := controller(c)
	ctrl.UpdateCartQuantity(c.Param("productId"), req.Quantity)
	respond(c, http.StatusOK, "Cart updated", ctrl.Cart())
}

func (h *CartHandler) Remove(c *gin.Context) {
	ctrl := controller(c)
	ctrl.RemoveFromCart(c.Param("productId"))
	respond(c, http.StatusOK, "Item removed from cart", ctrl.Cart())
}

func (h *CartHandler) Clear(c *gin.Context) {
	ctrl := controller(c)
	ctrl.ClearCart()
	respond(c, http.StatusOK, "Cart cleared", ctrl.Cart())
}
