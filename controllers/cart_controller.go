package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/models"
	"storefront/services"
)

type CartController struct {
	cart     *services.CartStore
	products *services.ProductService
}

func NewCartController(cart *services.CartStore, products *services.ProductService) *CartController {
	return &CartController{cart: cart, products: products}
}

// @Summary Get cart
// @Description Get cart items with derived totals
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart retrieved",
		Data:    ctrl.cart.GetState(),
	})
}

// @Summary Get cart summary
// @Description Item count and total price for the header badge
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart/summary [get]
func (ctrl *CartController) GetCartSummary(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart summary retrieved",
		Data:    ctrl.summary(),
	})
}

// @Summary Add item to cart
// @Description Add a catalog product; quantity defaults to 1, at most 99
// @Tags Cart
// @Accept json
// @Produce json
// @Param body body models.AddCartItemRequest true "Item"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	product, err := ctrl.products.GetProduct(req.ProductID)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Success: false,
				Message: "Product not found",
			})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to add item",
			Error:   err.Error(),
		})
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	for i := 0; i < quantity; i++ {
		ctrl.cart.AddItem(product)
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item added to cart",
		Data:    ctrl.cart.GetState(),
	})
}

// @Summary Update item quantity
// @Description Set the quantity of a cart item; zero or less removes it
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param body body models.UpdateCartItemRequest true "Quantity"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	ctrl.cart.UpdateQuantity(c.Param("id"), *req.Quantity)

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart updated",
		Data:    ctrl.cart.GetState(),
	})
}

// @Summary Remove item from cart
// @Tags Cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	ctrl.cart.RemoveItem(c.Param("id"))

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item removed from cart",
		Data:    ctrl.cart.GetState(),
	})
}

// @Summary Clear cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	ctrl.cart.ClearCart()

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart cleared",
		Data:    ctrl.cart.GetState(),
	})
}

// @Summary Checkout
// @Description Returns the cart totals. Payment is not processed and the cart is left untouched.
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart/checkout [post]
func (ctrl *CartController) Checkout(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Checkout is not available; no payment was taken",
		Data:    ctrl.summary(),
	})
}

// @Summary Stream cart changes
// @Description Server-sent events: the current cart on connect, then one "cart" event per change
// @Tags Cart
// @Produce text/event-stream
// @Success 200 {object} models.CartSnapshot
// @Router /cart/stream [get]
func (ctrl *CartController) StreamCart(c *gin.Context) {
	updates := make(chan models.CartSnapshot, 1)
	unsubscribe := ctrl.cart.Subscribe(func(snapshot models.CartSnapshot) {
		select {
		case updates <- snapshot:
		default:
			// The client is behind; replace the pending snapshot with the newer one.
			select {
			case <-updates:
			default:
			}
			updates <- snapshot
		}
	})
	defer unsubscribe()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	current := ctrl.cart.GetState()
	lastVersion := current.Version
	c.SSEvent("cart", current)
	c.Writer.Flush()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case snapshot := <-updates:
			if snapshot.Version <= lastVersion {
				continue
			}
			lastVersion = snapshot.Version
			c.SSEvent("cart", snapshot)
			c.Writer.Flush()
		}
	}
}

func (ctrl *CartController) summary() models.CartSummary {
	state := ctrl.cart.GetState()
	return models.CartSummary{
		TotalItems: state.TotalItems,
		TotalPrice: state.TotalPrice,
	}
}
