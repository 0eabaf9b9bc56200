package services

import (
	"strings"

	"storefront/models"
)

// FilterProducts returns the products matching every filter, in their
// original order.
func FilterProducts(products []models.Product, filters models.FilterState) []models.Product {
	search := strings.ToLower(filters.SearchQuery)
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !matchesCategory(p, filters.Category) {
			continue
		}
		if !matchesPrice(p, filters.PriceRange) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Title), search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesCategory(p models.Product, category string) bool {
	return category == models.AllCategories || p.Category == category
}

// matchesPrice applies both bounds literally; an inverted range matches nothing.
func matchesPrice(p models.Product, r models.PriceRange) bool {
	return p.Price.GreaterThanOrEqual(r.Min()) && p.Price.LessThanOrEqual(r.Max())
}
