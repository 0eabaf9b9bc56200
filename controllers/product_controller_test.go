package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront/models"
)

func TestGetAllProductsFilters(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodGet, "/products?category=Electronics&price=100-500", nil)
	requireStatus(t, w, http.StatusOK)

	resp := decode[models.ProductListResponse](t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "Smartwatch", resp.Data[0].Title)
	assert.Equal(t, "Camera", resp.Data[1].Title)
	assert.Equal(t, "Electronics", resp.Filters.Category)
	assert.Equal(t, "category=Electronics&price=100-500", resp.Query)
	assert.Equal(t, "/?category=Electronics&price=100-500", resp.Location)
}

func TestGetAllProductsIgnoresMalformedParams(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodGet, "/products?price=cheap&search=shoe", nil)
	requireStatus(t, w, http.StatusOK)

	resp := decode[models.ProductListResponse](t, w)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "Shoes", resp.Data[0].Title)
	assert.True(t, resp.Filters.PriceRange.IsDefault())
	assert.Equal(t, "/?search=shoe", resp.Location)
}

func TestGetAllProductsEmptyResult(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodGet, "/products?price=500-100", nil)
	requireStatus(t, w, http.StatusOK)

	resp := decode[models.ProductListResponse](t, w)
	assert.Equal(t, 0, resp.Total)
	assert.NotNil(t, resp.Data)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestGetProductByID(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodGet, "/products/8", nil)
	requireStatus(t, w, http.StatusOK)
	resp := decode[envelope[models.Product]](t, w)
	assert.Equal(t, "Smartphone", resp.Data.Title)
	assert.Equal(t, "699", resp.Data.Price.String())

	w = srv.do(t, http.MethodGet, "/products/nope", nil)
	requireStatus(t, w, http.StatusNotFound)
	errResp := decode[models.ErrorResponse](t, w)
	assert.False(t, errResp.Success)
	assert.Equal(t, "Product not found", errResp.Message)
}

func TestGetProductDetail(t *testing.T) {
	srv := newTestServer(t)
	srv.do(t, http.MethodPost, "/cart/items", models.AddCartItemRequest{ProductID: "5", Quantity: 2})

	w := srv.do(t, http.MethodGet, "/products/5/detail", nil)
	requireStatus(t, w, http.StatusOK)

	resp := decode[envelope[models.ProductDetail]](t, w)
	assert.Equal(t, "Sunglasses", resp.Data.Title)
	assert.Equal(t, 2, resp.Data.CartQuantity)
	assert.Equal(t, &models.StarRating{Full: 4, Half: 1, Empty: 0}, resp.Data.Stars)

	w = srv.do(t, http.MethodGet, "/products/nope/detail", nil)
	requireStatus(t, w, http.StatusNotFound)
}

func TestGetCategories(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodGet, "/categories", nil)
	requireStatus(t, w, http.StatusOK)

	resp := decode[envelope[models.CategoryList]](t, w)
	assert.Equal(t, []string{"All", "Clothing", "Electronics", "Home"}, resp.Data.Categories)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	srv.cart.Subscribe(func(models.CartSnapshot) {})

	w := srv.do(t, http.MethodGet, "/health", nil)
	requireStatus(t, w, http.StatusOK)

	resp := decode[models.HealthResponse](t, w)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 8, resp.CatalogSize)
	assert.Equal(t, 1, resp.CartSubscribers)
}
