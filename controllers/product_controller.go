package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/models"
	"storefront/services"
)

type ProductController struct {
	products *services.ProductService
}

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{products: products}
}

// @Summary Filter products
// @Description List products matching category, price range and title search. Malformed parameters are ignored.
// @Tags Products
// @Produce json
// @Param category query string false "Exact category, All for every category"
// @Param price query string false "Inclusive price range as min-max" example(100-500)
// @Param search query string false "Case-insensitive title substring"
// @Success 200 {object} models.ProductListResponse
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	filters := services.ParseFilterQuery(c.Request.URL.Query()).Apply(models.DefaultFilterState())

	products, err := ctrl.products.ListProducts(c.Request.Context(), filters)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to list products",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.ProductListResponse{
		Success:  true,
		Message:  "Products retrieved",
		Data:     products,
		Total:    len(products),
		Filters:  filters,
		Query:    services.ToFilterQuery(filters).Encode(),
		Location: services.FilterLocation("/", filters),
	})
}

// @Summary Get product detail
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
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

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product retrieved",
		Data:    product,
	})
}
