package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/models"
	"storefront/services"
)

type CategoryController struct {
	products *services.ProductService
}

func NewCategoryController(products *services.ProductService) *CategoryController {
	return &CategoryController{products: products}
}

// @Summary Get all categories
// @Description Get the category filter choices, starting with "All"
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *CategoryController) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Categories retrieved",
		Data:    models.CategoryList{Categories: ctrl.products.Categories()},
	})
}
