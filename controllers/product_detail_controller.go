package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/models"
	"storefront/services"
)

type ProductDetailController struct {
	products *services.ProductService
	cart     *services.CartStore
}

func NewProductDetailController(products *services.ProductService, cart *services.CartStore) *ProductDetailController {
	return &ProductDetailController{products: products, cart: cart}
}

// @Summary Get product detail page data
// @Description Product with its star breakdown and the quantity already in the cart
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id}/detail [get]
func (ctrl *ProductDetailController) GetProductDetail(c *gin.Context) {
	product, err := ctrl.products.GetProduct(c.Param("id"))
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
			Message: "Failed to get product",
			Error:   err.Error(),
		})
		return
	}

	inCart := 0
	for _, item := range ctrl.cart.Items() {
		if item.ID == product.ID {
			inCart = item.Quantity
			break
		}
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product detail retrieved",
		Data: models.ProductDetail{
			Product:      product,
			Stars:        product.Stars(),
			CartQuantity: inCart,
		},
	})
}
