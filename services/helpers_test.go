package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"storefront/models"
	"storefront/repositories"
)

func fixtureCatalog(t *testing.T) *models.Catalog {
	t.Helper()
	products, err := repositories.NewFixtureRepository().LoadProducts(context.Background())
	require.NoError(t, err)
	catalog, err := models.NewCatalog(products)
	require.NoError(t, err)
	return catalog
}

func testProduct(id string, price int64) models.Product {
	return models.Product{
		ID:       id,
		Title:    "Product " + id,
		Category: "Electronics",
		Price:    decimal.NewFromInt(price),
	}
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func priceRange(lo, hi int64) models.PriceRange {
	return models.PriceRange{decimal.NewFromInt(lo), decimal.NewFromInt(hi)}
}
